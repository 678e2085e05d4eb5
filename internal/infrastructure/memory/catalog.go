package memory

import (
	"context"
	"fmt"

	"github.com/jhoicas/Abastecimiento-api/internal/domain"
	"github.com/jhoicas/Abastecimiento-api/internal/domain/entity"
	"github.com/jhoicas/Abastecimiento-api/internal/domain/repository"
)

var _ repository.Catalog = (*Catalog)(nil)

// Catalog lectura genérica por tipo de entidad sobre el almacén en memoria.
type Catalog struct{ base }

// GetAll todas las entidades del tipo, ordenadas por ID.
func (c *Catalog) GetAll(_ context.Context, kind entity.Kind) (out []entity.Entity, err error) {
	err = c.read(func(d *dataset) error {
		switch kind {
		case entity.KindProduct:
			out = entities(list(d.products, productID, nil))
		case entity.KindStockPoint:
			out = entities(list(d.stockPoints, stockPointID, nil))
		case entity.KindSupplyRoute:
			out = entities(list(d.routes, routeID, nil))
		case entity.KindMoveRequest:
			out = entities(list(d.requests, requestID, nil))
		case entity.KindMoveOrder:
			out = entities(list(d.orders, orderID, nil))
		default:
			return fmt.Errorf("catalog: %s: %w", kind, domain.ErrInvalidInput)
		}
		return nil
	})
	return out, err
}

// GetByID entidad del tipo con ese ID; ErrNotFound si no existe.
func (c *Catalog) GetByID(_ context.Context, kind entity.Kind, id int64) (e entity.Entity, err error) {
	err = c.read(func(d *dataset) error {
		var ok bool
		switch kind {
		case entity.KindProduct:
			e, ok = lookup(d.products, id)
		case entity.KindStockPoint:
			e, ok = lookup(d.stockPoints, id)
		case entity.KindSupplyRoute:
			e, ok = lookup(d.routes, id)
		case entity.KindMoveRequest:
			e, ok = lookup(d.requests, id)
		case entity.KindMoveOrder:
			e, ok = lookup(d.orders, id)
		default:
			return fmt.Errorf("catalog: %s: %w", kind, domain.ErrInvalidInput)
		}
		if !ok {
			return fmt.Errorf("catalog: %s %d: %w", kind, id, domain.ErrNotFound)
		}
		return nil
	})
	return e, err
}

// GetByName busca por nombre; solo Product y StockPoint tienen nombre.
func (c *Catalog) GetByName(_ context.Context, kind entity.Kind, name string) (e entity.Entity, err error) {
	err = c.read(func(d *dataset) error {
		switch kind {
		case entity.KindProduct:
			for _, p := range d.products {
				if p.Name == name {
					e = p
					return nil
				}
			}
		case entity.KindStockPoint:
			if match := list(d.stockPoints, stockPointID, func(sp entity.StockPoint) bool { return sp.Name == name }); len(match) > 0 {
				e = *match[0]
				return nil
			}
		default:
			return fmt.Errorf("catalog: %s no tiene nombre: %w", kind, domain.ErrInvalidInput)
		}
		return fmt.Errorf("catalog: %s %q: %w", kind, name, domain.ErrNotFound)
	})
	return e, err
}

func entities[T entity.Entity](values []*T) []entity.Entity {
	out := make([]entity.Entity, 0, len(values))
	for _, v := range values {
		out = append(out, *v)
	}
	return out
}

func lookup[T entity.Entity](m map[int64]T, id int64) (entity.Entity, bool) {
	v, ok := m[id]
	if !ok {
		return nil, false
	}
	return v, true
}
