package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Abastecimiento-api/internal/domain"
	"github.com/jhoicas/Abastecimiento-api/internal/domain/entity"
	"github.com/jhoicas/Abastecimiento-api/internal/domain/repository"
)

var _ repository.MoveOrderRepository = (*MoveOrderRepo)(nil)

// MoveOrderRepo implementación de MoveOrderRepository sobre PostgreSQL.
type MoveOrderRepo struct {
	q Querier
}

// NewMoveOrderRepository construye el adaptador de órdenes. Pasar pool o tx (Querier).
func NewMoveOrderRepository(q Querier) *MoveOrderRepo {
	return &MoveOrderRepo{q: q}
}

const orderColumns = `o.id, o.request_id, o.quantity, o.order_date, o.status`

func scanOrder(row pgx.Row) (*entity.MoveOrder, error) {
	var (
		o      entity.MoveOrder
		status int16
	)
	if err := row.Scan(&o.ID, &o.RequestID, &o.Quantity, &o.OrderDate, &status); err != nil {
		return nil, err
	}
	o.OrderDate = entity.Day(o.OrderDate)
	o.Status = entity.OrderStatus(status)
	return &o, nil
}

// Create persiste una orden y asigna su ID.
func (r *MoveOrderRepo) Create(ctx context.Context, o *entity.MoveOrder) error {
	query := `
		INSERT INTO move_orders (request_id, quantity, order_date, status)
		VALUES ($1, $2, $3, $4) RETURNING id`
	o.OrderDate = entity.Day(o.OrderDate)
	err := r.q.QueryRow(ctx, query, o.RequestID, o.Quantity, o.OrderDate, int16(o.Status)).Scan(&o.ID)
	if err != nil {
		if isForeignKeyViolation(err) {
			return fmt.Errorf("move request %d: %w", o.RequestID, domain.ErrNotFound)
		}
		return fmt.Errorf("insert move order: %w", err)
	}
	return nil
}

func (r *MoveOrderRepo) getOne(ctx context.Context, query string, id int64) (*entity.MoveOrder, error) {
	o, err := scanOrder(r.q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get move order: %w", err)
	}
	return o, nil
}

// GetByID obtiene una orden por ID; nil, nil si no existe.
func (r *MoveOrderRepo) GetByID(ctx context.Context, id int64) (*entity.MoveOrder, error) {
	return r.getOne(ctx, `SELECT `+orderColumns+` FROM move_orders o WHERE o.id = $1`, id)
}

// GetForUpdate obtiene la orden y bloquea la fila (SELECT FOR UPDATE).
func (r *MoveOrderRepo) GetForUpdate(ctx context.Context, id int64) (*entity.MoveOrder, error) {
	return r.getOne(ctx, `SELECT `+orderColumns+` FROM move_orders o WHERE o.id = $1 FOR UPDATE`, id)
}

func (r *MoveOrderRepo) list(ctx context.Context, query string, args ...any) ([]*entity.MoveOrder, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list move orders: %w", err)
	}
	list, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (*entity.MoveOrder, error) {
		return scanOrder(row)
	})
	if err != nil {
		return nil, fmt.Errorf("scan move orders: %w", err)
	}
	return list, nil
}

// List todas las órdenes ordenadas por ID.
func (r *MoveOrderRepo) List(ctx context.Context) ([]*entity.MoveOrder, error) {
	return r.list(ctx, `SELECT `+orderColumns+` FROM move_orders o ORDER BY o.id`)
}

// ListByRequest órdenes de la solicitud.
func (r *MoveOrderRepo) ListByRequest(ctx context.Context, requestID int64) ([]*entity.MoveOrder, error) {
	return r.list(ctx, `SELECT `+orderColumns+` FROM move_orders o WHERE o.request_id = $1 ORDER BY o.id`, requestID)
}

// ListByStockPoint filtra en SQL por dirección y por el rango cerrado [from, to].
func (r *MoveOrderRepo) ListByStockPoint(
	ctx context.Context, stockPointID int64, dir repository.Direction, from, to time.Time,
) ([]*entity.MoveOrder, error) {
	from, to = entity.Day(from), entity.Day(to)
	if to.Before(from) {
		return nil, domain.ErrInvalidRange
	}
	var column string
	switch dir {
	case repository.DirectionIncoming:
		column = "s.receiver_id"
	case repository.DirectionOutgoing:
		column = "s.sender_id"
	default:
		return nil, fmt.Errorf("direction %d: %w", dir, domain.ErrInvalidInput)
	}
	query := `
		SELECT ` + orderColumns + `
		FROM move_orders o
		JOIN move_requests m ON m.id = o.request_id
		JOIN supply_routes s ON s.id = m.route_id
		WHERE ` + column + ` = $1 AND o.order_date BETWEEN $2 AND $3
		ORDER BY o.id`
	return r.list(ctx, query, stockPointID, from, to)
}

// ListScheduled órdenes pendientes con fecha exactamente day.
func (r *MoveOrderRepo) ListScheduled(ctx context.Context, day time.Time) ([]*entity.MoveOrder, error) {
	query := `SELECT ` + orderColumns + ` FROM move_orders o WHERE o.status = $1 AND o.order_date = $2 ORDER BY o.id`
	return r.list(ctx, query, int16(entity.OrderPending), entity.Day(day))
}

// MarkCompleted pasa la orden a Completed solo si sigue pendiente.
func (r *MoveOrderRepo) MarkCompleted(ctx context.Context, id int64) error {
	cmd, err := r.q.Exec(ctx,
		`UPDATE move_orders SET status = $2 WHERE id = $1 AND status = $3`,
		id, int16(entity.OrderCompleted), int16(entity.OrderPending),
	)
	if err != nil {
		return fmt.Errorf("update move order: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return fmt.Errorf("update move order %d: %w", id, domain.ErrAlreadyExecuted)
	}
	return nil
}
