package repository

import (
	"context"

	"github.com/jhoicas/Abastecimiento-api/internal/domain/entity"
)

// StockPointRepository define el puerto para puntos de stock.
// Usado dentro de transacciones para garantizar consistencia del stock.
type StockPointRepository interface {
	Create(ctx context.Context, sp *entity.StockPoint) error
	GetByID(ctx context.Context, id int64) (*entity.StockPoint, error)
	// GetByName devuelve el punto de menor ID con ese nombre.
	GetByName(ctx context.Context, name string) (*entity.StockPoint, error)
	List(ctx context.Context) ([]*entity.StockPoint, error)
	ListByProduct(ctx context.Context, productID int64) ([]*entity.StockPoint, error)
	// GetForUpdate bloquea la fila hasta el fin de la transacción (SELECT FOR UPDATE).
	GetForUpdate(ctx context.Context, id int64) (*entity.StockPoint, error)
	UpdateStock(ctx context.Context, id int64, currentStock int64) error
}
