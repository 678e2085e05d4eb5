package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/Abastecimiento-api/internal/domain"
	"github.com/jhoicas/Abastecimiento-api/internal/domain/entity"
	"github.com/jhoicas/Abastecimiento-api/internal/domain/repository"
)

var _ repository.Catalog = (*Catalog)(nil)

// Catalog lectura genérica por tipo de entidad, delegando en los repositorios concretos.
type Catalog struct {
	products    *ProductRepo
	stockPoints *StockPointRepo
	routes      *SupplyRouteRepo
	requests    *MoveRequestRepo
	orders      *MoveOrderRepo
}

// NewCatalog construye el catálogo sobre pool o tx.
func NewCatalog(q Querier) *Catalog {
	return &Catalog{
		products:    NewProductRepository(q),
		stockPoints: NewStockPointRepository(q),
		routes:      NewSupplyRouteRepository(q),
		requests:    NewMoveRequestRepository(q),
		orders:      NewMoveOrderRepository(q),
	}
}

// GetAll todas las entidades del tipo, ordenadas por ID.
func (c *Catalog) GetAll(ctx context.Context, kind entity.Kind) ([]entity.Entity, error) {
	switch kind {
	case entity.KindProduct:
		return collect[entity.Product](c.products.List(ctx))
	case entity.KindStockPoint:
		return collect[entity.StockPoint](c.stockPoints.List(ctx))
	case entity.KindSupplyRoute:
		return collect[entity.SupplyRoute](c.routes.List(ctx))
	case entity.KindMoveRequest:
		return collect[entity.MoveRequest](c.requests.List(ctx))
	case entity.KindMoveOrder:
		return collect[entity.MoveOrder](c.orders.List(ctx))
	}
	return nil, fmt.Errorf("catalog: %s: %w", kind, domain.ErrInvalidInput)
}

// GetByID entidad del tipo con ese ID; ErrNotFound si no existe.
func (c *Catalog) GetByID(ctx context.Context, kind entity.Kind, id int64) (entity.Entity, error) {
	var (
		e   entity.Entity
		err error
	)
	switch kind {
	case entity.KindProduct:
		e, err = one[entity.Product](c.products.GetByID(ctx, id))
	case entity.KindStockPoint:
		e, err = one[entity.StockPoint](c.stockPoints.GetByID(ctx, id))
	case entity.KindSupplyRoute:
		e, err = one[entity.SupplyRoute](c.routes.GetByID(ctx, id))
	case entity.KindMoveRequest:
		e, err = one[entity.MoveRequest](c.requests.GetByID(ctx, id))
	case entity.KindMoveOrder:
		e, err = one[entity.MoveOrder](c.orders.GetByID(ctx, id))
	default:
		return nil, fmt.Errorf("catalog: %s: %w", kind, domain.ErrInvalidInput)
	}
	if err != nil {
		return nil, err
	}
	if e == nil {
		return nil, fmt.Errorf("catalog: %s %d: %w", kind, id, domain.ErrNotFound)
	}
	return e, nil
}

// GetByName busca por nombre; solo Product y StockPoint tienen nombre.
func (c *Catalog) GetByName(ctx context.Context, kind entity.Kind, name string) (entity.Entity, error) {
	var (
		e   entity.Entity
		err error
	)
	switch kind {
	case entity.KindProduct:
		e, err = one[entity.Product](c.products.GetByName(ctx, name))
	case entity.KindStockPoint:
		e, err = one[entity.StockPoint](c.stockPoints.GetByName(ctx, name))
	default:
		return nil, fmt.Errorf("catalog: %s no tiene nombre: %w", kind, domain.ErrInvalidInput)
	}
	if err != nil {
		return nil, err
	}
	if e == nil {
		return nil, fmt.Errorf("catalog: %s %q: %w", kind, name, domain.ErrNotFound)
	}
	return e, nil
}

func collect[T entity.Entity](values []*T, err error) ([]entity.Entity, error) {
	if err != nil {
		return nil, err
	}
	out := make([]entity.Entity, 0, len(values))
	for _, v := range values {
		out = append(out, *v)
	}
	return out, nil
}

func one[T entity.Entity](v *T, err error) (entity.Entity, error) {
	if err != nil || v == nil {
		return nil, err
	}
	return *v, nil
}
