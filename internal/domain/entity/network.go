package entity

import (
	"fmt"
	"sort"

	"github.com/jhoicas/Abastecimiento-api/internal/domain"
)

// Network es un arena de solo lectura con las entidades de la cadena de suministro,
// indexadas por ID. Las relaciones se resuelven por los campos *ID de cada entidad;
// no hay punteros hacia atrás.
type Network struct {
	products    map[int64]Product
	stockPoints map[int64]StockPoint
	routes      map[int64]SupplyRoute
	requests    map[int64]MoveRequest
	orders      map[int64]MoveOrder
}

// NewNetwork construye un arena vacío.
func NewNetwork() *Network {
	return &Network{
		products:    map[int64]Product{},
		stockPoints: map[int64]StockPoint{},
		routes:      map[int64]SupplyRoute{},
		requests:    map[int64]MoveRequest{},
		orders:      map[int64]MoveOrder{},
	}
}

// Add incorpora una entidad al arena. Un ID repetido dentro del mismo tipo devuelve ErrDuplicate.
func (n *Network) Add(e Entity) error {
	var (
		exists bool
		ok     bool
	)
	switch e.Kind() {
	case KindProduct:
		var v Product
		if v, ok = e.(Product); ok {
			exists = insert(n.products, v.ID, v)
		}
	case KindStockPoint:
		var v StockPoint
		if v, ok = e.(StockPoint); ok {
			exists = insert(n.stockPoints, v.ID, v)
		}
	case KindSupplyRoute:
		var v SupplyRoute
		if v, ok = e.(SupplyRoute); ok {
			exists = insert(n.routes, v.ID, v)
		}
	case KindMoveRequest:
		var v MoveRequest
		if v, ok = e.(MoveRequest); ok {
			exists = insert(n.requests, v.ID, v)
		}
	case KindMoveOrder:
		var v MoveOrder
		if v, ok = e.(MoveOrder); ok {
			exists = insert(n.orders, v.ID, v)
		}
	}
	if !ok {
		return fmt.Errorf("network: %s con valor %T: %w", e.Kind(), e, domain.ErrInvalidInput)
	}
	if exists {
		return fmt.Errorf("network: %s %d: %w", e.Kind(), e.EntityID(), domain.ErrDuplicate)
	}
	return nil
}

func insert[T any](m map[int64]T, id int64, v T) (exists bool) {
	if _, exists = m[id]; !exists {
		m[id] = v
	}
	return exists
}

// AddAll incorpora varias entidades; se detiene en el primer error.
func (n *Network) AddAll(entities ...Entity) error {
	for _, e := range entities {
		if err := n.Add(e); err != nil {
			return err
		}
	}
	return nil
}

func (n *Network) Product(id int64) (Product, bool) {
	p, ok := n.products[id]
	return p, ok
}

func (n *Network) StockPoint(id int64) (StockPoint, bool) {
	s, ok := n.stockPoints[id]
	return s, ok
}

func (n *Network) Route(id int64) (SupplyRoute, bool) {
	r, ok := n.routes[id]
	return r, ok
}

func (n *Network) Request(id int64) (MoveRequest, bool) {
	r, ok := n.requests[id]
	return r, ok
}

func (n *Network) Order(id int64) (MoveOrder, bool) {
	o, ok := n.orders[id]
	return o, ok
}

// RouteOfOrder resuelve la ruta de la solicitud padre de una orden.
func (n *Network) RouteOfOrder(o MoveOrder) (SupplyRoute, bool) {
	req, ok := n.requests[o.RequestID]
	if !ok {
		return SupplyRoute{}, false
	}
	return n.Route(req.RouteID)
}

// Products devuelve los productos ordenados por ID.
func (n *Network) Products() []Product {
	return sortedValues(n.products, func(p Product) int64 { return p.ID })
}

// StockPoints devuelve los puntos de stock ordenados por ID.
func (n *Network) StockPoints() []StockPoint {
	return sortedValues(n.stockPoints, func(s StockPoint) int64 { return s.ID })
}

// StockPointsOf devuelve los puntos de stock de un producto ordenados por ID.
func (n *Network) StockPointsOf(productID int64) []StockPoint {
	var out []StockPoint
	for _, s := range n.StockPoints() {
		if s.ProductID == productID {
			out = append(out, s)
		}
	}
	return out
}

// Routes devuelve las rutas ordenadas por ID.
func (n *Network) Routes() []SupplyRoute {
	return sortedValues(n.routes, func(r SupplyRoute) int64 { return r.ID })
}

// Requests devuelve las solicitudes ordenadas por ID.
func (n *Network) Requests() []MoveRequest {
	return sortedValues(n.requests, func(r MoveRequest) int64 { return r.ID })
}

// Orders devuelve todas las órdenes ordenadas por ID.
func (n *Network) Orders() []MoveOrder {
	return sortedValues(n.orders, func(o MoveOrder) int64 { return o.ID })
}

// OrdersOf devuelve las órdenes de una solicitud ordenadas por ID.
func (n *Network) OrdersOf(requestID int64) []MoveOrder {
	var out []MoveOrder
	for _, o := range n.Orders() {
		if o.RequestID == requestID {
			out = append(out, o)
		}
	}
	return out
}

// Validate comprueba la integridad referencial del arena: padres existentes,
// nombres de producto únicos, nombres de punto únicos dentro de su producto,
// rutas entre puntos distintos del mismo producto y pares (emisor, receptor) únicos.
func (n *Network) Validate() error {
	products := n.Products()
	for i, p := range products {
		for _, o := range products[:i] {
			if p.NameClash(o) {
				return fmt.Errorf("product %d repite el nombre %q: %w", p.ID, p.Name, domain.ErrDuplicate)
			}
		}
	}
	points := n.StockPoints()
	for i, s := range points {
		for _, o := range points[:i] {
			if s.NameClash(o) {
				return fmt.Errorf("stock point %d repite el nombre %q: %w", s.ID, s.Name, domain.ErrDuplicate)
			}
		}
	}
	for _, s := range points {
		if _, ok := n.products[s.ProductID]; !ok {
			return fmt.Errorf("stock point %d: producto %d: %w", s.ID, s.ProductID, domain.ErrNotFound)
		}
		if s.CurrentStock < 0 {
			return fmt.Errorf("stock point %d: stock negativo: %w", s.ID, domain.ErrInvalidInput)
		}
	}
	pairs := make(map[[2]int64]int64, len(n.routes))
	for _, r := range n.Routes() {
		if err := r.Validate(); err != nil {
			return fmt.Errorf("route %d: %w", r.ID, err)
		}
		sender, okS := n.stockPoints[r.SenderID]
		receiver, okR := n.stockPoints[r.ReceiverID]
		if !okS || !okR {
			return fmt.Errorf("route %d: %w", r.ID, domain.ErrNotFound)
		}
		if sender.ProductID != r.ProductID || receiver.ProductID != r.ProductID {
			return fmt.Errorf("route %d: puntos de otro producto: %w", r.ID, domain.ErrInvalidInput)
		}
		key := [2]int64{r.SenderID, r.ReceiverID}
		if other, dup := pairs[key]; dup {
			return fmt.Errorf("route %d repite la ruta %d: %w", r.ID, other, domain.ErrDuplicate)
		}
		pairs[key] = r.ID
	}
	for _, req := range n.Requests() {
		if _, ok := n.routes[req.RouteID]; !ok {
			return fmt.Errorf("request %d: ruta %d: %w", req.ID, req.RouteID, domain.ErrNotFound)
		}
	}
	for _, o := range n.Orders() {
		if _, ok := n.requests[o.RequestID]; !ok {
			return fmt.Errorf("order %d: solicitud %d: %w", o.ID, o.RequestID, domain.ErrNotFound)
		}
	}
	return nil
}

func sortedValues[T any](m map[int64]T, id func(T) int64) []T {
	out := make([]T, 0, len(m))
	for _, v := range m {
		out = append(out, v)
	}
	sort.Slice(out, func(i, j int) bool { return id(out[i]) < id(out[j]) })
	return out
}
