package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"golang.org/x/text/language"

	_ "github.com/jhoicas/Abastecimiento-api/docs"
	"github.com/jhoicas/Abastecimiento-api/internal/application/planner"
	"github.com/jhoicas/Abastecimiento-api/internal/application/usecase"
	infrapdf "github.com/jhoicas/Abastecimiento-api/internal/infrastructure/pdf"
	"github.com/jhoicas/Abastecimiento-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/Abastecimiento-api/internal/interfaces/http"
	"github.com/jhoicas/Abastecimiento-api/pkg/config"
	"github.com/jhoicas/Abastecimiento-api/pkg/logger"
)

// @title                       Abastecimiento API
// @version                     1.0
// @description                 Proyección de inventario, ATP y CTP sobre redes de suministro por producto.
// @BasePath                    /
// @securityDefinitions.apikey  Bearer
// @in                          header
// @name                        Authorization
func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.Log.Level,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Int("default_horizon", cfg.Projection.DefaultHorizon).
		Msg("iniciando aplicación")

	if cfg.DB.AutoMigrate {
		version, err := postgres.Migrate(cfg.DB.ConnectionString())
		if err != nil {
			log.Fatal().Err(err).Msg("migraciones")
		}
		log.Info().Uint("version", version).Msg("esquema actualizado")
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	productRepo := postgres.NewProductRepository(pool)
	stockPointRepo := postgres.NewStockPointRepository(pool)
	routeRepo := postgres.NewSupplyRouteRepository(pool)
	orderRepo := postgres.NewMoveOrderRepository(pool)
	catalog := postgres.NewCatalog(pool)
	txRunner := postgres.NewTxRunner(pool)

	productUC := usecase.NewProductUseCase(productRepo)
	stockPointUC := usecase.NewStockPointUseCase(stockPointRepo, productRepo)
	routeUC := usecase.NewRouteUseCase(routeRepo, stockPointRepo)
	projectionUC := planner.NewProjectionUseCase(catalog, orderRepo, cfg.Projection.DefaultHorizon, cfg.Projection.OverviewWorkers)
	requestUC := planner.NewRequestUseCase(txRunner)
	executeUC := planner.NewExecuteMoveUseCase(txRunner, orderRepo, log)

	// PDF: informe imprimible de la proyección
	pdfGenerator := infrapdf.NewMarotoProjectionReport(language.Spanish)
	reportUC := planner.NewReportUseCase(catalog, pdfGenerator, cfg.Projection.DefaultHorizon)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(httpRouter.RequestLogger(log))

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Abastecimiento API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		if err := pool.Ping(c.UserContext()); err != nil {
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"status": "degraded", "service": cfg.App.Name})
		}
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		ProductUC:    productUC,
		StockPointUC: stockPointUC,
		RouteUC:      routeUC,
		ProjectionUC: projectionUC,
		ReportUC:     reportUC,
		RequestUC:    requestUC,
		ExecuteUC:    executeUC,
		JWTSecret:    cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
