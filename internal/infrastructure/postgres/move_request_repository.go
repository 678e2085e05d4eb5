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

var _ repository.MoveRequestRepository = (*MoveRequestRepo)(nil)

// MoveRequestRepo implementación de MoveRequestRepository sobre PostgreSQL.
type MoveRequestRepo struct {
	q Querier
}

// NewMoveRequestRepository construye el adaptador de solicitudes. Pasar pool o tx (Querier).
func NewMoveRequestRepository(q Querier) *MoveRequestRepo {
	return &MoveRequestRepo{q: q}
}

const requestColumns = `id, route_id, quantity, registered_on, requested_delivery, quantity_delivered`

func scanRequest(row pgx.Row) (*entity.MoveRequest, error) {
	var m entity.MoveRequest
	err := row.Scan(&m.ID, &m.RouteID, &m.Quantity, &m.RegisteredOn, &m.RequestedDelivery, &m.QuantityDelivered)
	if err != nil {
		return nil, err
	}
	m.RegisteredOn = entity.Day(m.RegisteredOn)
	m.RequestedDelivery = entity.Day(m.RequestedDelivery)
	return &m, nil
}

// Create persiste una solicitud y asigna su ID.
func (r *MoveRequestRepo) Create(ctx context.Context, req *entity.MoveRequest) error {
	query := `
		INSERT INTO move_requests (route_id, quantity, registered_on, requested_delivery, quantity_delivered)
		VALUES ($1, $2, $3, $4, $5) RETURNING id`
	err := r.q.QueryRow(ctx, query,
		req.RouteID, req.Quantity, entity.Day(req.RegisteredOn), entity.Day(req.RequestedDelivery), req.QuantityDelivered,
	).Scan(&req.ID)
	if err != nil {
		if isForeignKeyViolation(err) {
			return fmt.Errorf("route %d: %w", req.RouteID, domain.ErrNotFound)
		}
		return fmt.Errorf("insert move request: %w", err)
	}
	return nil
}

func (r *MoveRequestRepo) getOne(ctx context.Context, query string, id int64) (*entity.MoveRequest, error) {
	m, err := scanRequest(r.q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get move request: %w", err)
	}
	return m, nil
}

// GetByID obtiene una solicitud por ID; nil, nil si no existe.
func (r *MoveRequestRepo) GetByID(ctx context.Context, id int64) (*entity.MoveRequest, error) {
	return r.getOne(ctx, `SELECT `+requestColumns+` FROM move_requests WHERE id = $1`, id)
}

// GetForUpdate obtiene la solicitud y bloquea la fila (SELECT FOR UPDATE).
func (r *MoveRequestRepo) GetForUpdate(ctx context.Context, id int64) (*entity.MoveRequest, error) {
	return r.getOne(ctx, `SELECT `+requestColumns+` FROM move_requests WHERE id = $1 FOR UPDATE`, id)
}

func (r *MoveRequestRepo) list(ctx context.Context, query string, args ...any) ([]*entity.MoveRequest, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list move requests: %w", err)
	}
	list, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (*entity.MoveRequest, error) {
		return scanRequest(row)
	})
	if err != nil {
		return nil, fmt.Errorf("scan move requests: %w", err)
	}
	return list, nil
}

// List todas las solicitudes ordenadas por ID.
func (r *MoveRequestRepo) List(ctx context.Context) ([]*entity.MoveRequest, error) {
	return r.list(ctx, `SELECT `+requestColumns+` FROM move_requests ORDER BY id`)
}

// ListByRoute solicitudes de la ruta.
func (r *MoveRequestRepo) ListByRoute(ctx context.Context, routeID int64) ([]*entity.MoveRequest, error) {
	return r.list(ctx, `SELECT `+requestColumns+` FROM move_requests WHERE route_id = $1 ORDER BY id`, routeID)
}

// UpdateDelivered fija la cantidad entregada.
func (r *MoveRequestRepo) UpdateDelivered(ctx context.Context, id int64, quantityDelivered int64) error {
	cmd, err := r.q.Exec(ctx, `UPDATE move_requests SET quantity_delivered = $2 WHERE id = $1`, id, quantityDelivered)
	if err != nil {
		return fmt.Errorf("update move request: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return fmt.Errorf("update move request %d: %w", id, domain.ErrNotFound)
	}
	return nil
}
