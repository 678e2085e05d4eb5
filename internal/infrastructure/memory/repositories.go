package memory

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/jhoicas/Abastecimiento-api/internal/domain"
	"github.com/jhoicas/Abastecimiento-api/internal/domain/entity"
	"github.com/jhoicas/Abastecimiento-api/internal/domain/repository"
)

var (
	_ repository.ProductRepository     = (*ProductRepo)(nil)
	_ repository.StockPointRepository  = (*StockPointRepo)(nil)
	_ repository.SupplyRouteRepository = (*SupplyRouteRepo)(nil)
	_ repository.MoveRequestRepository = (*MoveRequestRepo)(nil)
	_ repository.MoveOrderRepository   = (*MoveOrderRepo)(nil)
)

// list devuelve copias ordenadas por ID de los valores que cumplen keep.
func list[T any](m map[int64]T, id func(T) int64, keep func(T) bool) []*T {
	out := make([]*T, 0, len(m))
	for _, v := range m {
		if keep == nil || keep(v) {
			v := v
			out = append(out, &v)
		}
	}
	sort.Slice(out, func(i, j int) bool { return id(*out[i]) < id(*out[j]) })
	return out
}

func get[T any](m map[int64]T, id int64) *T {
	v, ok := m[id]
	if !ok {
		return nil
	}
	return &v
}

func productID(p entity.Product) int64       { return p.ID }
func stockPointID(s entity.StockPoint) int64 { return s.ID }
func routeID(r entity.SupplyRoute) int64     { return r.ID }
func requestID(r entity.MoveRequest) int64   { return r.ID }
func orderID(o entity.MoveOrder) int64       { return o.ID }

// ProductRepo adaptador en memoria de ProductRepository.
type ProductRepo struct{ base }

// Create persiste un producto; el nombre es único.
func (r *ProductRepo) Create(_ context.Context, p *entity.Product) error {
	return r.write(func(d *dataset) error {
		if _, dup := d.products[p.ID]; dup && p.ID != 0 {
			return fmt.Errorf("insert product %d: %w", p.ID, domain.ErrDuplicate)
		}
		for _, other := range d.products {
			if p.NameClash(other) {
				return fmt.Errorf("insert product %q: %w", p.Name, domain.ErrDuplicate)
			}
		}
		p.ID = d.nextID(entity.KindProduct, p.ID)
		d.products[p.ID] = *p
		return nil
	})
}

// GetByID devuelve nil, nil si no existe.
func (r *ProductRepo) GetByID(_ context.Context, id int64) (p *entity.Product, err error) {
	err = r.read(func(d *dataset) error {
		p = get(d.products, id)
		return nil
	})
	return p, err
}

// GetByName devuelve nil, nil si no existe.
func (r *ProductRepo) GetByName(_ context.Context, name string) (p *entity.Product, err error) {
	err = r.read(func(d *dataset) error {
		for _, v := range d.products {
			if v.Name == name {
				p = &v
				return nil
			}
		}
		return nil
	})
	return p, err
}

// List todos los productos ordenados por ID.
func (r *ProductRepo) List(_ context.Context) (out []*entity.Product, err error) {
	err = r.read(func(d *dataset) error {
		out = list(d.products, productID, nil)
		return nil
	})
	return out, err
}

// Delete elimina el producto con sus puntos de stock, rutas, solicitudes y órdenes.
func (r *ProductRepo) Delete(_ context.Context, id int64) error {
	return r.write(func(d *dataset) error {
		if _, ok := d.products[id]; !ok {
			return fmt.Errorf("delete product %d: %w", id, domain.ErrNotFound)
		}
		delete(d.products, id)
		for spID, sp := range d.stockPoints {
			if sp.ProductID == id {
				delete(d.stockPoints, spID)
			}
		}
		for rID, route := range d.routes {
			if route.ProductID != id {
				continue
			}
			delete(d.routes, rID)
			for reqID, req := range d.requests {
				if req.RouteID != rID {
					continue
				}
				delete(d.requests, reqID)
				for oID, o := range d.orders {
					if o.RequestID == reqID {
						delete(d.orders, oID)
					}
				}
			}
		}
		return nil
	})
}

// StockPointRepo adaptador en memoria de StockPointRepository.
type StockPointRepo struct{ base }

// Create persiste un punto de stock; el producto debe existir y el nombre es único dentro de él.
func (r *StockPointRepo) Create(_ context.Context, sp *entity.StockPoint) error {
	return r.write(func(d *dataset) error {
		if _, ok := d.products[sp.ProductID]; !ok {
			return fmt.Errorf("insert stock point: product %d: %w", sp.ProductID, domain.ErrNotFound)
		}
		if _, dup := d.stockPoints[sp.ID]; dup && sp.ID != 0 {
			return fmt.Errorf("insert stock point %d: %w", sp.ID, domain.ErrDuplicate)
		}
		for _, other := range d.stockPoints {
			if sp.NameClash(other) {
				return fmt.Errorf("insert stock point %q: %w", sp.Name, domain.ErrDuplicate)
			}
		}
		sp.ID = d.nextID(entity.KindStockPoint, sp.ID)
		d.stockPoints[sp.ID] = *sp
		return nil
	})
}

// GetByID devuelve nil, nil si no existe.
func (r *StockPointRepo) GetByID(_ context.Context, id int64) (sp *entity.StockPoint, err error) {
	err = r.read(func(d *dataset) error {
		sp = get(d.stockPoints, id)
		return nil
	})
	return sp, err
}

// GetByName devuelve el punto de menor ID con ese nombre; nil, nil si no existe.
func (r *StockPointRepo) GetByName(_ context.Context, name string) (sp *entity.StockPoint, err error) {
	err = r.read(func(d *dataset) error {
		if match := list(d.stockPoints, stockPointID, func(v entity.StockPoint) bool { return v.Name == name }); len(match) > 0 {
			sp = match[0]
		}
		return nil
	})
	return sp, err
}

// List todos los puntos de stock ordenados por ID.
func (r *StockPointRepo) List(_ context.Context) (out []*entity.StockPoint, err error) {
	err = r.read(func(d *dataset) error {
		out = list(d.stockPoints, stockPointID, nil)
		return nil
	})
	return out, err
}

// ListByProduct puntos de stock del producto.
func (r *StockPointRepo) ListByProduct(_ context.Context, productID int64) (out []*entity.StockPoint, err error) {
	err = r.read(func(d *dataset) error {
		out = list(d.stockPoints, stockPointID, func(sp entity.StockPoint) bool { return sp.ProductID == productID })
		return nil
	})
	return out, err
}

// GetForUpdate en memoria equivale a GetByID: el bloqueo lo da el mutex del TxRunner.
func (r *StockPointRepo) GetForUpdate(ctx context.Context, id int64) (*entity.StockPoint, error) {
	return r.GetByID(ctx, id)
}

// UpdateStock fija el stock actual; debe ser no negativo.
func (r *StockPointRepo) UpdateStock(_ context.Context, id int64, currentStock int64) error {
	return r.write(func(d *dataset) error {
		sp, ok := d.stockPoints[id]
		if !ok {
			return fmt.Errorf("update stock point %d: %w", id, domain.ErrNotFound)
		}
		if currentStock < 0 {
			return fmt.Errorf("update stock point %d a %d: %w", id, currentStock, domain.ErrInsufficientStock)
		}
		sp.CurrentStock = currentStock
		d.stockPoints[id] = sp
		return nil
	})
}

// SupplyRouteRepo adaptador en memoria de SupplyRouteRepository.
type SupplyRouteRepo struct{ base }

// Create persiste una ruta. Emisor y receptor deben existir; el par es único.
func (r *SupplyRouteRepo) Create(_ context.Context, route *entity.SupplyRoute) error {
	return r.write(func(d *dataset) error {
		if err := route.Validate(); err != nil {
			return err
		}
		for _, spID := range []int64{route.SenderID, route.ReceiverID} {
			sp, ok := d.stockPoints[spID]
			if !ok {
				return fmt.Errorf("insert route: stock point %d: %w", spID, domain.ErrNotFound)
			}
			if sp.ProductID != route.ProductID {
				return fmt.Errorf("insert route: stock point %d es de otro producto: %w", spID, domain.ErrInvalidInput)
			}
		}
		for _, other := range d.routes {
			if other.SenderID == route.SenderID && other.ReceiverID == route.ReceiverID {
				return fmt.Errorf("insert route %d→%d: %w", route.SenderID, route.ReceiverID, domain.ErrDuplicate)
			}
		}
		if _, dup := d.routes[route.ID]; dup && route.ID != 0 {
			return fmt.Errorf("insert route %d: %w", route.ID, domain.ErrDuplicate)
		}
		route.ID = d.nextID(entity.KindSupplyRoute, route.ID)
		d.routes[route.ID] = *route
		return nil
	})
}

// GetByID devuelve nil, nil si no existe.
func (r *SupplyRouteRepo) GetByID(_ context.Context, id int64) (route *entity.SupplyRoute, err error) {
	err = r.read(func(d *dataset) error {
		route = get(d.routes, id)
		return nil
	})
	return route, err
}

// List todas las rutas ordenadas por ID.
func (r *SupplyRouteRepo) List(_ context.Context) (out []*entity.SupplyRoute, err error) {
	err = r.read(func(d *dataset) error {
		out = list(d.routes, routeID, nil)
		return nil
	})
	return out, err
}

// ListIncoming rutas cuyo receptor es el punto de stock.
func (r *SupplyRouteRepo) ListIncoming(_ context.Context, spID int64) (out []*entity.SupplyRoute, err error) {
	err = r.read(func(d *dataset) error {
		out = list(d.routes, routeID, func(rt entity.SupplyRoute) bool { return rt.ReceiverID == spID })
		return nil
	})
	return out, err
}

// ListOutgoing rutas cuyo emisor es el punto de stock.
func (r *SupplyRouteRepo) ListOutgoing(_ context.Context, spID int64) (out []*entity.SupplyRoute, err error) {
	err = r.read(func(d *dataset) error {
		out = list(d.routes, routeID, func(rt entity.SupplyRoute) bool { return rt.SenderID == spID })
		return nil
	})
	return out, err
}

// MoveRequestRepo adaptador en memoria de MoveRequestRepository.
type MoveRequestRepo struct{ base }

// Create persiste una solicitud sobre una ruta existente.
func (r *MoveRequestRepo) Create(_ context.Context, req *entity.MoveRequest) error {
	return r.write(func(d *dataset) error {
		if _, ok := d.routes[req.RouteID]; !ok {
			return fmt.Errorf("insert move request: route %d: %w", req.RouteID, domain.ErrNotFound)
		}
		if _, dup := d.requests[req.ID]; dup && req.ID != 0 {
			return fmt.Errorf("insert move request %d: %w", req.ID, domain.ErrDuplicate)
		}
		req.ID = d.nextID(entity.KindMoveRequest, req.ID)
		d.requests[req.ID] = *req
		return nil
	})
}

// GetByID devuelve nil, nil si no existe.
func (r *MoveRequestRepo) GetByID(_ context.Context, id int64) (req *entity.MoveRequest, err error) {
	err = r.read(func(d *dataset) error {
		req = get(d.requests, id)
		return nil
	})
	return req, err
}

// GetForUpdate equivale a GetByID dentro del TxRunner en memoria.
func (r *MoveRequestRepo) GetForUpdate(ctx context.Context, id int64) (*entity.MoveRequest, error) {
	return r.GetByID(ctx, id)
}

// List todas las solicitudes ordenadas por ID.
func (r *MoveRequestRepo) List(_ context.Context) (out []*entity.MoveRequest, err error) {
	err = r.read(func(d *dataset) error {
		out = list(d.requests, requestID, nil)
		return nil
	})
	return out, err
}

// ListByRoute solicitudes de la ruta.
func (r *MoveRequestRepo) ListByRoute(_ context.Context, rID int64) (out []*entity.MoveRequest, err error) {
	err = r.read(func(d *dataset) error {
		out = list(d.requests, requestID, func(req entity.MoveRequest) bool { return req.RouteID == rID })
		return nil
	})
	return out, err
}

// UpdateDelivered fija la cantidad entregada.
func (r *MoveRequestRepo) UpdateDelivered(_ context.Context, id int64, quantityDelivered int64) error {
	return r.write(func(d *dataset) error {
		req, ok := d.requests[id]
		if !ok {
			return fmt.Errorf("update move request %d: %w", id, domain.ErrNotFound)
		}
		req.QuantityDelivered = quantityDelivered
		d.requests[id] = req
		return nil
	})
}

// MoveOrderRepo adaptador en memoria de MoveOrderRepository.
type MoveOrderRepo struct{ base }

// Create persiste una orden sobre una solicitud existente.
func (r *MoveOrderRepo) Create(_ context.Context, o *entity.MoveOrder) error {
	return r.write(func(d *dataset) error {
		if _, ok := d.requests[o.RequestID]; !ok {
			return fmt.Errorf("insert move order: request %d: %w", o.RequestID, domain.ErrNotFound)
		}
		if _, dup := d.orders[o.ID]; dup && o.ID != 0 {
			return fmt.Errorf("insert move order %d: %w", o.ID, domain.ErrDuplicate)
		}
		o.ID = d.nextID(entity.KindMoveOrder, o.ID)
		o.OrderDate = entity.Day(o.OrderDate)
		d.orders[o.ID] = *o
		return nil
	})
}

// GetByID devuelve nil, nil si no existe.
func (r *MoveOrderRepo) GetByID(_ context.Context, id int64) (o *entity.MoveOrder, err error) {
	err = r.read(func(d *dataset) error {
		o = get(d.orders, id)
		return nil
	})
	return o, err
}

// GetForUpdate equivale a GetByID dentro del TxRunner en memoria.
func (r *MoveOrderRepo) GetForUpdate(ctx context.Context, id int64) (*entity.MoveOrder, error) {
	return r.GetByID(ctx, id)
}

// List todas las órdenes ordenadas por ID.
func (r *MoveOrderRepo) List(_ context.Context) (out []*entity.MoveOrder, err error) {
	err = r.read(func(d *dataset) error {
		out = list(d.orders, orderID, nil)
		return nil
	})
	return out, err
}

// ListByRequest órdenes de la solicitud.
func (r *MoveOrderRepo) ListByRequest(_ context.Context, reqID int64) (out []*entity.MoveOrder, err error) {
	err = r.read(func(d *dataset) error {
		out = list(d.orders, orderID, func(o entity.MoveOrder) bool { return o.RequestID == reqID })
		return nil
	})
	return out, err
}

// ListByStockPoint órdenes entrantes o salientes del punto con fecha en [from, to].
func (r *MoveOrderRepo) ListByStockPoint(
	_ context.Context, spID int64, dir repository.Direction, from, to time.Time,
) (out []*entity.MoveOrder, err error) {
	from, to = entity.Day(from), entity.Day(to)
	if to.Before(from) {
		return nil, domain.ErrInvalidRange
	}
	err = r.read(func(d *dataset) error {
		out = list(d.orders, orderID, func(o entity.MoveOrder) bool {
			req, ok := d.requests[o.RequestID]
			if !ok {
				return false
			}
			route, ok := d.routes[req.RouteID]
			if !ok {
				return false
			}
			switch dir {
			case repository.DirectionIncoming:
				if route.ReceiverID != spID {
					return false
				}
			case repository.DirectionOutgoing:
				if route.SenderID != spID {
					return false
				}
			default:
				return false
			}
			date := entity.Day(o.OrderDate)
			return !date.Before(from) && !date.After(to)
		})
		return nil
	})
	return out, err
}

// ListScheduled órdenes pendientes con fecha exactamente day.
func (r *MoveOrderRepo) ListScheduled(_ context.Context, day time.Time) (out []*entity.MoveOrder, err error) {
	day = entity.Day(day)
	err = r.read(func(d *dataset) error {
		out = list(d.orders, orderID, func(o entity.MoveOrder) bool {
			return o.IsPending() && entity.Day(o.OrderDate).Equal(day)
		})
		return nil
	})
	return out, err
}

// MarkCompleted pasa la orden a Completed; falla con ErrAlreadyExecuted si ya lo estaba.
func (r *MoveOrderRepo) MarkCompleted(_ context.Context, id int64) error {
	return r.write(func(d *dataset) error {
		o, ok := d.orders[id]
		if !ok {
			return fmt.Errorf("update move order %d: %w", id, domain.ErrNotFound)
		}
		if !o.IsPending() {
			return fmt.Errorf("update move order %d: %w", id, domain.ErrAlreadyExecuted)
		}
		o.Status = entity.OrderCompleted
		d.orders[id] = o
		return nil
	})
}
