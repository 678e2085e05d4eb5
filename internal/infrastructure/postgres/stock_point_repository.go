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

var _ repository.StockPointRepository = (*StockPointRepo)(nil)

// StockPointRepo implementación de StockPointRepository sobre PostgreSQL (usable con pool o tx).
type StockPointRepo struct {
	q Querier
}

// NewStockPointRepository construye el adaptador de puntos de stock. Pasar pool o tx (Querier).
func NewStockPointRepository(q Querier) *StockPointRepo {
	return &StockPointRepo{q: q}
}

const stockPointColumns = `id, product_id, name, current_stock`

func scanStockPoint(row pgx.Row) (*entity.StockPoint, error) {
	var sp entity.StockPoint
	if err := row.Scan(&sp.ID, &sp.ProductID, &sp.Name, &sp.CurrentStock); err != nil {
		return nil, err
	}
	return &sp, nil
}

// Create persiste un punto de stock y asigna su ID.
func (r *StockPointRepo) Create(ctx context.Context, sp *entity.StockPoint) error {
	query := `
		INSERT INTO stock_points (product_id, name, current_stock)
		VALUES ($1, $2, $3) RETURNING id`
	err := r.q.QueryRow(ctx, query, sp.ProductID, sp.Name, sp.CurrentStock).Scan(&sp.ID)
	if err != nil {
		switch {
		case isUniqueViolation(err):
			return domain.ErrDuplicate
		case isForeignKeyViolation(err):
			return fmt.Errorf("product %d: %w", sp.ProductID, domain.ErrNotFound)
		case isCheckViolation(err):
			return domain.ErrInvalidInput
		}
		return fmt.Errorf("insert stock point: %w", err)
	}
	return nil
}

func (r *StockPointRepo) getOne(ctx context.Context, query string, arg any) (*entity.StockPoint, error) {
	sp, err := scanStockPoint(r.q.QueryRow(ctx, query, arg))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get stock point: %w", err)
	}
	return sp, nil
}

// GetByID obtiene un punto de stock por ID; nil, nil si no existe.
func (r *StockPointRepo) GetByID(ctx context.Context, id int64) (*entity.StockPoint, error) {
	return r.getOne(ctx, `SELECT `+stockPointColumns+` FROM stock_points WHERE id = $1`, id)
}

// GetByName obtiene el punto de menor ID con ese nombre; nil, nil si no existe.
func (r *StockPointRepo) GetByName(ctx context.Context, name string) (*entity.StockPoint, error) {
	return r.getOne(ctx, `SELECT `+stockPointColumns+` FROM stock_points WHERE name = $1 ORDER BY id LIMIT 1`, name)
}

// GetForUpdate obtiene el punto y bloquea la fila para update (SELECT FOR UPDATE).
func (r *StockPointRepo) GetForUpdate(ctx context.Context, id int64) (*entity.StockPoint, error) {
	return r.getOne(ctx, `SELECT `+stockPointColumns+` FROM stock_points WHERE id = $1 FOR UPDATE`, id)
}

func (r *StockPointRepo) list(ctx context.Context, query string, args ...any) ([]*entity.StockPoint, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list stock points: %w", err)
	}
	list, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (*entity.StockPoint, error) {
		return scanStockPoint(row)
	})
	if err != nil {
		return nil, fmt.Errorf("scan stock points: %w", err)
	}
	return list, nil
}

// List todos los puntos de stock ordenados por ID.
func (r *StockPointRepo) List(ctx context.Context) ([]*entity.StockPoint, error) {
	return r.list(ctx, `SELECT `+stockPointColumns+` FROM stock_points ORDER BY id`)
}

// ListByProduct puntos de stock del producto.
func (r *StockPointRepo) ListByProduct(ctx context.Context, productID int64) ([]*entity.StockPoint, error) {
	return r.list(ctx, `SELECT `+stockPointColumns+` FROM stock_points WHERE product_id = $1 ORDER BY id`, productID)
}

// UpdateStock fija el stock actual; el CHECK de la tabla rechaza valores negativos.
func (r *StockPointRepo) UpdateStock(ctx context.Context, id int64, currentStock int64) error {
	cmd, err := r.q.Exec(ctx, `UPDATE stock_points SET current_stock = $2 WHERE id = $1`, id, currentStock)
	if err != nil {
		if isCheckViolation(err) {
			return fmt.Errorf("update stock point %d: %w", id, domain.ErrInsufficientStock)
		}
		return fmt.Errorf("update stock point: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return fmt.Errorf("update stock point %d: %w", id, domain.ErrNotFound)
	}
	return nil
}
