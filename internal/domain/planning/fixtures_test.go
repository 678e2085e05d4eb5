package planning_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Abastecimiento-api/internal/domain/entity"
)

var asOf = time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

func day(n int) time.Time { return entity.AddDays(asOf, n) }

// productA arma la cadena de tres etapas usada como dato de prueba:
//
//	(1) Unfinished goods 630 ──route 1 cap 20──▶ (2) Finished goods 150 ──route 2 cap 0──▶ (3) Shipped 0
func productA(t *testing.T) *entity.Network {
	t.Helper()
	net := entity.NewNetwork()
	require.NoError(t, net.AddAll(
		entity.Product{ID: 1, Name: "Product A", Price: 100},
		entity.StockPoint{ID: 1, ProductID: 1, Name: "Unfinished goods", CurrentStock: 630},
		entity.StockPoint{ID: 2, ProductID: 1, Name: "Finished goods", CurrentStock: 150},
		entity.StockPoint{ID: 3, ProductID: 1, Name: "Shipped Product A", CurrentStock: 0},
		entity.SupplyRoute{ID: 1, ProductID: 1, SenderID: 1, ReceiverID: 2, Capacity: 20, LeadTime: entity.DefaultLeadTime},
		entity.SupplyRoute{ID: 2, ProductID: 1, SenderID: 2, ReceiverID: 3, Capacity: 0, LeadTime: entity.DefaultLeadTime},

		entity.MoveRequest{ID: 1, RouteID: 1, Quantity: 100, RegisteredOn: asOf, RequestedDelivery: day(4)},
		entity.MoveRequest{ID: 2, RouteID: 1, Quantity: 160, RegisteredOn: asOf, RequestedDelivery: day(4)},
		entity.MoveRequest{ID: 3, RouteID: 2, Quantity: 60, RegisteredOn: asOf, RequestedDelivery: day(2)},
		entity.MoveRequest{ID: 4, RouteID: 2, Quantity: 100, RegisteredOn: asOf, RequestedDelivery: day(6)},
		entity.MoveRequest{ID: 5, RouteID: 2, Quantity: 50, RegisteredOn: asOf, RequestedDelivery: day(7)},
		entity.MoveRequest{ID: 6, RouteID: 2, Quantity: 100, RegisteredOn: asOf, RequestedDelivery: day(11)},

		entity.MoveOrder{ID: 1, RequestID: 1, Quantity: 100, OrderDate: day(4)},
		entity.MoveOrder{ID: 2, RequestID: 2, Quantity: 100, OrderDate: day(9)},
		entity.MoveOrder{ID: 3, RequestID: 2, Quantity: 60, OrderDate: day(9)},
		entity.MoveOrder{ID: 4, RequestID: 3, Quantity: 60, OrderDate: day(2)},
		entity.MoveOrder{ID: 5, RequestID: 4, Quantity: 100, OrderDate: day(6)},
		entity.MoveOrder{ID: 6, RequestID: 5, Quantity: 50, OrderDate: day(7)},
		entity.MoveOrder{ID: 7, RequestID: 6, Quantity: 100, OrderDate: day(11)},
	))
	require.NoError(t, net.Validate())
	return net
}

// twoPointsOneRoute A(0) → B(0) con capacidad 20/día y lead time 2, sin órdenes.
func twoPointsOneRoute(t *testing.T) *entity.Network {
	t.Helper()
	net := entity.NewNetwork()
	require.NoError(t, net.AddAll(
		entity.Product{ID: 1, Name: "Route test"},
		entity.StockPoint{ID: 1, ProductID: 1, Name: "A"},
		entity.StockPoint{ID: 2, ProductID: 1, Name: "B"},
		entity.SupplyRoute{ID: 1, ProductID: 1, SenderID: 1, ReceiverID: 2, Capacity: 20, LeadTime: 2},
	))
	return net
}

func ids(orders []entity.MoveOrder) []int64 {
	out := make([]int64, 0, len(orders))
	for _, o := range orders {
		out = append(out, o.ID)
	}
	return out
}

func nonDecreasing(values []int64) bool {
	for i := 1; i < len(values); i++ {
		if values[i] < values[i-1] {
			return false
		}
	}
	return true
}
