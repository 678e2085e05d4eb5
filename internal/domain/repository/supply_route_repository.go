package repository

import (
	"context"

	"github.com/jhoicas/Abastecimiento-api/internal/domain/entity"
)

// SupplyRouteRepository define el puerto de persistencia para rutas de suministro.
// Create devuelve domain.ErrDuplicate si el par (emisor, receptor) ya existe.
type SupplyRouteRepository interface {
	Create(ctx context.Context, route *entity.SupplyRoute) error
	GetByID(ctx context.Context, id int64) (*entity.SupplyRoute, error)
	List(ctx context.Context) ([]*entity.SupplyRoute, error)
	ListIncoming(ctx context.Context, stockPointID int64) ([]*entity.SupplyRoute, error)
	ListOutgoing(ctx context.Context, stockPointID int64) ([]*entity.SupplyRoute, error)
}
