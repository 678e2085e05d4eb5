package repository

import (
	"context"

	"github.com/jhoicas/Abastecimiento-api/internal/domain/entity"
)

// Catalog es el puerto genérico de lectura de la capa de persistencia: todas las entidades
// de un tipo, o una por ID o por nombre. GetByName aplica solo a Product y StockPoint;
// para los demás tipos devuelve domain.ErrInvalidInput. Un nombre de punto de stock puede
// repetirse entre productos; GetByName devuelve entonces el de menor ID.
type Catalog interface {
	GetAll(ctx context.Context, kind entity.Kind) ([]entity.Entity, error)
	GetByID(ctx context.Context, kind entity.Kind, id int64) (entity.Entity, error)
	GetByName(ctx context.Context, kind entity.Kind, name string) (entity.Entity, error)
}
