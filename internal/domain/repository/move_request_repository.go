package repository

import (
	"context"

	"github.com/jhoicas/Abastecimiento-api/internal/domain/entity"
)

// MoveRequestRepository define el puerto de persistencia para solicitudes de movimiento.
type MoveRequestRepository interface {
	Create(ctx context.Context, request *entity.MoveRequest) error
	GetByID(ctx context.Context, id int64) (*entity.MoveRequest, error)
	GetForUpdate(ctx context.Context, id int64) (*entity.MoveRequest, error)
	List(ctx context.Context) ([]*entity.MoveRequest, error)
	ListByRoute(ctx context.Context, routeID int64) ([]*entity.MoveRequest, error)
	UpdateDelivered(ctx context.Context, id int64, quantityDelivered int64) error
}
