package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Abastecimiento-api/internal/domain"
	"github.com/jhoicas/Abastecimiento-api/internal/domain/entity"
	"github.com/jhoicas/Abastecimiento-api/internal/domain/repository"
)

var _ repository.SupplyRouteRepository = (*SupplyRouteRepo)(nil)

// SupplyRouteRepo implementación de SupplyRouteRepository sobre PostgreSQL.
type SupplyRouteRepo struct {
	q Querier
}

// NewSupplyRouteRepository construye el adaptador de rutas. Pasar pool o tx (Querier).
func NewSupplyRouteRepository(q Querier) *SupplyRouteRepo {
	return &SupplyRouteRepo{q: q}
}

const routeColumns = `id, product_id, sender_id, receiver_id, capacity, lead_time`

func scanRoute(row pgx.Row) (*entity.SupplyRoute, error) {
	var rt entity.SupplyRoute
	if err := row.Scan(&rt.ID, &rt.ProductID, &rt.SenderID, &rt.ReceiverID, &rt.Capacity, &rt.LeadTime); err != nil {
		return nil, err
	}
	return &rt, nil
}

// Create persiste una ruta. El par (emisor, receptor) repetido devuelve ErrDuplicate.
func (r *SupplyRouteRepo) Create(ctx context.Context, route *entity.SupplyRoute) error {
	if err := route.Validate(); err != nil {
		return err
	}
	query := `
		INSERT INTO supply_routes (product_id, sender_id, receiver_id, capacity, lead_time)
		SELECT $1::bigint, s.id, rc.id, $4::bigint, $5::integer
		FROM stock_points s, stock_points rc
		WHERE s.id = $2 AND rc.id = $3 AND s.product_id = $1 AND rc.product_id = $1
		RETURNING id`
	err := r.q.QueryRow(ctx, query,
		route.ProductID, route.SenderID, route.ReceiverID, route.Capacity, route.LeadTime,
	).Scan(&route.ID)
	if err != nil {
		switch {
		case errors.Is(err, pgx.ErrNoRows):
			// algún punto no existe o pertenece a otro producto
			return fmt.Errorf("insert route %d→%d: %w", route.SenderID, route.ReceiverID, domain.ErrInvalidInput)
		case isUniqueViolation(err):
			return fmt.Errorf("insert route %d→%d: %w", route.SenderID, route.ReceiverID, domain.ErrDuplicate)
		case isCheckViolation(err):
			return domain.ErrInvalidInput
		}
		return fmt.Errorf("insert route: %w", err)
	}
	return nil
}

// GetByID obtiene una ruta por ID; nil, nil si no existe.
func (r *SupplyRouteRepo) GetByID(ctx context.Context, id int64) (*entity.SupplyRoute, error) {
	rt, err := scanRoute(r.q.QueryRow(ctx, `SELECT `+routeColumns+` FROM supply_routes WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get route: %w", err)
	}
	return rt, nil
}

func (r *SupplyRouteRepo) list(ctx context.Context, query string, args ...any) ([]*entity.SupplyRoute, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list routes: %w", err)
	}
	list, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (*entity.SupplyRoute, error) {
		return scanRoute(row)
	})
	if err != nil {
		return nil, fmt.Errorf("scan routes: %w", err)
	}
	return list, nil
}

// List todas las rutas ordenadas por ID.
func (r *SupplyRouteRepo) List(ctx context.Context) ([]*entity.SupplyRoute, error) {
	return r.list(ctx, `SELECT `+routeColumns+` FROM supply_routes ORDER BY id`)
}

// ListIncoming rutas cuyo receptor es el punto de stock.
func (r *SupplyRouteRepo) ListIncoming(ctx context.Context, stockPointID int64) ([]*entity.SupplyRoute, error) {
	return r.list(ctx, `SELECT `+routeColumns+` FROM supply_routes WHERE receiver_id = $1 ORDER BY id`, stockPointID)
}

// ListOutgoing rutas cuyo emisor es el punto de stock.
func (r *SupplyRouteRepo) ListOutgoing(ctx context.Context, stockPointID int64) ([]*entity.SupplyRoute, error) {
	return r.list(ctx, `SELECT `+routeColumns+` FROM supply_routes WHERE sender_id = $1 ORDER BY id`, stockPointID)
}
