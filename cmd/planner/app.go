package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"text/tabwriter"
	"time"

	"github.com/urfave/cli/v2"
	"golang.org/x/text/language"

	"github.com/jhoicas/Abastecimiento-api/internal/application/dto"
	"github.com/jhoicas/Abastecimiento-api/internal/application/planner"
	"github.com/jhoicas/Abastecimiento-api/internal/domain/entity"
	"github.com/jhoicas/Abastecimiento-api/internal/domain/repository"
	"github.com/jhoicas/Abastecimiento-api/internal/infrastructure/memory"
	infrapdf "github.com/jhoicas/Abastecimiento-api/internal/infrastructure/pdf"
	"github.com/jhoicas/Abastecimiento-api/internal/infrastructure/postgres"
	"github.com/jhoicas/Abastecimiento-api/pkg/config"
	"github.com/jhoicas/Abastecimiento-api/pkg/jwt"
	"github.com/jhoicas/Abastecimiento-api/pkg/logger"
)

var demoFlag = &cli.BoolFlag{
	Name:  "demo",
	Usage: "usa la cadena de ejemplo en memoria en lugar de PostgreSQL",
}

func newApp(out, errOut io.Writer) *cli.App {
	return &cli.App{
		Name:      "planner",
		Usage:     "operación del motor de proyección ATP/CTP",
		Writer:    out,
		ErrWriter: errOut,
		Commands: []*cli.Command{
			{
				Name:   "migrate",
				Usage:  "aplica las migraciones embebidas",
				Action: migrateAction,
			},
			{
				Name:  "project",
				Usage: "imprime la tabla de proyección de un punto de stock",
				Flags: []cli.Flag{
					&cli.Int64Flag{Name: "stock-point", Aliases: []string{"s"}, Required: true},
					&cli.IntFlag{Name: "horizon", Usage: "días (1..730); 0 usa el valor configurado"},
					&cli.StringFlag{Name: "as-of", Usage: "fecha base YYYY-MM-DD (hoy por defecto)"},
					&cli.StringFlag{Name: "pdf", Usage: "escribe además el informe PDF en la ruta indicada"},
					demoFlag,
				},
				Action: projectAction,
			},
			{
				Name:  "execute-scheduled",
				Usage: "ejecuta las órdenes pendientes programadas para un día",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "day", Usage: "YYYY-MM-DD (hoy por defecto)"},
					demoFlag,
				},
				Action: executeScheduledAction,
			},
			{
				Name:  "token",
				Usage: "emite un JWT para operadores",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "role", Value: jwt.RolePlanner, Usage: "admin | planner | viewer"},
					&cli.StringFlag{Name: "user", Value: "cli"},
				},
				Action: tokenAction,
			},
		},
	}
}

// backend repositorios usados por los comandos; close libera la conexión.
type backend struct {
	catalog repository.Catalog
	orders  repository.MoveOrderRepository
	tx      planner.TxRunner
	close   func()
}

func openBackend(ctx context.Context, cfg *config.Config, demo bool, asOf time.Time) (*backend, error) {
	if demo {
		store := memory.NewStore()
		if err := store.Load(memory.ProductA(asOf)); err != nil {
			return nil, err
		}
		repos := store.Repositories()
		return &backend{catalog: repos.Catalog, orders: repos.Orders, tx: repos.Tx, close: func() {}}, nil
	}
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		return nil, err
	}
	return &backend{
		catalog: postgres.NewCatalog(pool),
		orders:  postgres.NewMoveOrderRepository(pool),
		tx:      postgres.NewTxRunner(pool),
		close:   pool.Close,
	}, nil
}

func parseDay(v string) (time.Time, error) {
	if v == "" {
		return entity.Day(time.Now()), nil
	}
	t, err := time.ParseInLocation(dto.DateLayout, v, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("fecha %q: se espera YYYY-MM-DD", v)
	}
	return t, nil
}

func newLogger(cfg *config.Config, out io.Writer) *logger.Logger {
	return logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.Log.Level, Output: out})
}

func migrateAction(c *cli.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	version, err := postgres.Migrate(cfg.DB.ConnectionString())
	if err != nil {
		return err
	}
	newLogger(cfg, c.App.ErrWriter).Info().Uint("version", version).Msg("esquema actualizado")
	return nil
}

func projectAction(c *cli.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	asOf, err := parseDay(c.String("as-of"))
	if err != nil {
		return err
	}
	b, err := openBackend(c.Context, cfg, c.Bool("demo"), asOf)
	if err != nil {
		return err
	}
	defer b.close()

	projection := planner.NewProjectionUseCase(b.catalog, b.orders, cfg.Projection.DefaultHorizon, cfg.Projection.OverviewWorkers)
	table, err := projection.Table(c.Context, c.Int64("stock-point"), asOf, c.Int("horizon"))
	if err != nil {
		return err
	}
	if err := printProjection(c.App.Writer, table); err != nil {
		return err
	}

	if path := c.String("pdf"); path != "" {
		report := planner.NewReportUseCase(b.catalog, infrapdf.NewMarotoProjectionReport(language.Spanish), cfg.Projection.DefaultHorizon)
		doc, err := report.ProjectionPDF(c.Context, c.Int64("stock-point"), asOf, c.Int("horizon"))
		if err != nil {
			return err
		}
		if err := os.WriteFile(path, doc, 0o644); err != nil {
			return fmt.Errorf("escribir %s: %w", path, err)
		}
	}
	return nil
}

func printProjection(w io.Writer, t *dto.ProjectionResponse) error {
	fmt.Fprintf(w, "%s (id %d) desde %s, %d días, stock inicial %d\n",
		t.StockPointName, t.StockPointID, t.AsOf, t.Horizon, t.StartingStock)
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "fecha\tdemanda\tsuministro\tinventario\tatp\tctp\t")
	for _, r := range t.Rows {
		fmt.Fprintf(tw, "%s\t%d\t%d\t%d\t%d\t%d\t\n", r.Date, r.Demand, r.Supply, r.Inventory, r.ATP, r.CTP)
	}
	return tw.Flush()
}

func executeScheduledAction(c *cli.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	day, err := parseDay(c.String("day"))
	if err != nil {
		return err
	}
	asOf, err := parseDay(c.String("as-of"))
	if err != nil {
		return err
	}
	b, err := openBackend(c.Context, cfg, c.Bool("demo"), asOf)
	if err != nil {
		return err
	}
	defer b.close()

	execute := planner.NewExecuteMoveUseCase(b.tx, b.orders, newLogger(cfg, c.App.ErrWriter))
	report, runErr := execute.ExecuteScheduled(c.Context, day)
	if report == nil {
		return runErr
	}
	enc := json.NewEncoder(c.App.Writer)
	enc.SetIndent("", "  ")
	if err := enc.Encode(report); err != nil {
		return err
	}
	return runErr
}

func tokenAction(c *cli.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	role := c.String("role")
	switch role {
	case jwt.RoleAdmin, jwt.RolePlanner, jwt.RoleViewer:
	default:
		return fmt.Errorf("rol desconocido %q", role)
	}
	tok, err := jwt.Generate(cfg.JWT.Secret, c.String("user"), role, cfg.JWT.Issuer, cfg.JWT.Expiration)
	if err != nil {
		return err
	}
	fmt.Fprintln(c.App.Writer, tok)
	return nil
}
