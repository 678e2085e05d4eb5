package repository

import (
	"context"
	"time"

	"github.com/jhoicas/Abastecimiento-api/internal/domain/entity"
)

// Direction clasifica órdenes respecto a un punto de stock.
type Direction int

const (
	DirectionIncoming Direction = iota + 1 // el punto es receptor de la ruta
	DirectionOutgoing                      // el punto es emisor de la ruta
)

// MoveOrderRepository define el puerto de persistencia para órdenes de movimiento.
// Las órdenes nunca se eliminan; solo cambian de Pending a Completed.
type MoveOrderRepository interface {
	Create(ctx context.Context, order *entity.MoveOrder) error
	GetByID(ctx context.Context, id int64) (*entity.MoveOrder, error)
	GetForUpdate(ctx context.Context, id int64) (*entity.MoveOrder, error)
	List(ctx context.Context) ([]*entity.MoveOrder, error)
	ListByRequest(ctx context.Context, requestID int64) ([]*entity.MoveOrder, error)
	// ListByStockPoint filtra en la capa de almacenamiento por dirección y rango cerrado [from, to].
	ListByStockPoint(ctx context.Context, stockPointID int64, dir Direction, from, to time.Time) ([]*entity.MoveOrder, error)
	// ListScheduled órdenes pendientes con fecha exactamente day.
	ListScheduled(ctx context.Context, day time.Time) ([]*entity.MoveOrder, error)
	MarkCompleted(ctx context.Context, id int64) error
}
