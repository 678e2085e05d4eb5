package memory

import (
	"fmt"
	"time"

	"github.com/jhoicas/Abastecimiento-api/internal/domain/entity"
)

// Seed conjunto de entidades con IDs explícitos para precargar el almacén.
type Seed struct {
	Products    []entity.Product
	StockPoints []entity.StockPoint
	Routes      []entity.SupplyRoute
	Requests    []entity.MoveRequest
	Orders      []entity.MoveOrder
}

func (s Seed) entities() []entity.Entity {
	var out []entity.Entity
	for _, v := range s.Products {
		out = append(out, v)
	}
	for _, v := range s.StockPoints {
		out = append(out, v)
	}
	for _, v := range s.Routes {
		out = append(out, v)
	}
	for _, v := range s.Requests {
		out = append(out, v)
	}
	for _, v := range s.Orders {
		out = append(out, v)
	}
	return out
}

// Load valida la semilla junto con lo ya cargado y la incorpora de forma atómica.
func (s *Store) Load(seed Seed) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	work := s.data.clone()
	net := entity.NewNetwork()
	if err := net.AddAll(snapshot(work)...); err != nil {
		return err
	}
	if err := net.AddAll(seed.entities()...); err != nil {
		return fmt.Errorf("seed: %w", err)
	}
	if err := net.Validate(); err != nil {
		return fmt.Errorf("seed: %w", err)
	}
	for _, v := range seed.Products {
		v.ID = work.nextID(entity.KindProduct, v.ID)
		work.products[v.ID] = v
	}
	for _, v := range seed.StockPoints {
		v.ID = work.nextID(entity.KindStockPoint, v.ID)
		work.stockPoints[v.ID] = v
	}
	for _, v := range seed.Routes {
		v.ID = work.nextID(entity.KindSupplyRoute, v.ID)
		work.routes[v.ID] = v
	}
	for _, v := range seed.Requests {
		v.ID = work.nextID(entity.KindMoveRequest, v.ID)
		work.requests[v.ID] = v
	}
	for _, v := range seed.Orders {
		v.ID = work.nextID(entity.KindMoveOrder, v.ID)
		v.OrderDate = entity.Day(v.OrderDate)
		work.orders[v.ID] = v
	}
	s.data = work
	return nil
}

func snapshot(d *dataset) []entity.Entity {
	var out []entity.Entity
	for _, v := range d.products {
		out = append(out, v)
	}
	for _, v := range d.stockPoints {
		out = append(out, v)
	}
	for _, v := range d.routes {
		out = append(out, v)
	}
	for _, v := range d.requests {
		out = append(out, v)
	}
	for _, v := range d.orders {
		out = append(out, v)
	}
	return out
}

// ProductA cadena de tres etapas de datos de demostración, con fechas relativas a asOf:
//
//	(1) Unfinished goods 630 ──ruta 1 cap 20──▶ (2) Finished goods 150 ──ruta 2 cap 0──▶ (3) Shipped 0
func ProductA(asOf time.Time) Seed {
	asOf = entity.Day(asOf)
	day := func(n int) time.Time { return entity.AddDays(asOf, n) }
	return Seed{
		Products: []entity.Product{{ID: 1, Name: "Product A", Price: 100}},
		StockPoints: []entity.StockPoint{
			{ID: 1, ProductID: 1, Name: "Unfinished goods", CurrentStock: 630},
			{ID: 2, ProductID: 1, Name: "Finished goods", CurrentStock: 150},
			{ID: 3, ProductID: 1, Name: "Shipped Product A", CurrentStock: 0},
		},
		Routes: []entity.SupplyRoute{
			{ID: 1, ProductID: 1, SenderID: 1, ReceiverID: 2, Capacity: 20, LeadTime: entity.DefaultLeadTime},
			{ID: 2, ProductID: 1, SenderID: 2, ReceiverID: 3, Capacity: 0, LeadTime: entity.DefaultLeadTime},
		},
		Requests: []entity.MoveRequest{
			{ID: 1, RouteID: 1, Quantity: 100, RegisteredOn: asOf, RequestedDelivery: day(4)},
			{ID: 2, RouteID: 1, Quantity: 160, RegisteredOn: asOf, RequestedDelivery: day(4)},
			{ID: 3, RouteID: 2, Quantity: 60, RegisteredOn: asOf, RequestedDelivery: day(2)},
			{ID: 4, RouteID: 2, Quantity: 100, RegisteredOn: asOf, RequestedDelivery: day(6)},
			{ID: 5, RouteID: 2, Quantity: 50, RegisteredOn: asOf, RequestedDelivery: day(7)},
			{ID: 6, RouteID: 2, Quantity: 100, RegisteredOn: asOf, RequestedDelivery: day(11)},
		},
		Orders: []entity.MoveOrder{
			{ID: 1, RequestID: 1, Quantity: 100, OrderDate: day(4)},
			{ID: 2, RequestID: 2, Quantity: 100, OrderDate: day(9)},
			{ID: 3, RequestID: 2, Quantity: 60, OrderDate: day(9)},
			{ID: 4, RequestID: 3, Quantity: 60, OrderDate: day(2)},
			{ID: 5, RequestID: 4, Quantity: 100, OrderDate: day(6)},
			{ID: 6, RequestID: 5, Quantity: 50, OrderDate: day(7)},
			{ID: 7, RequestID: 6, Quantity: 100, OrderDate: day(11)},
		},
	}
}
