package planning_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Abastecimiento-api/internal/domain"
	"github.com/jhoicas/Abastecimiento-api/internal/domain/entity"
	"github.com/jhoicas/Abastecimiento-api/internal/domain/planning"
)

func TestAddRequest(t *testing.T) {
	route := entity.SupplyRoute{ID: 2, SenderID: 2, ReceiverID: 3}
	req := planning.AddRequest(route, 4, 31, asOf.Add(15*time.Hour))

	assert.Equal(t, int64(2), req.RouteID)
	assert.Equal(t, int64(31), req.Quantity)
	assert.Equal(t, asOf, req.RegisteredOn)
	assert.Equal(t, day(4), req.RequestedDelivery)
	assert.Equal(t, int64(0), req.QuantityDelivered)
}

func TestFillRequest_CubreElRemanente(t *testing.T) {
	req := planning.AddRequest(entity.SupplyRoute{ID: 1}, 4, 31, asOf)
	req.ID = 10

	partial := entity.MoveOrder{ID: 1, RequestID: 10, Quantity: req.Quantity / 2, OrderDate: day(2)}
	fill, err := planning.FillRequest(req, []entity.MoveOrder{partial})
	require.NoError(t, err)

	assert.Equal(t, req.Quantity, partial.Quantity+fill.Quantity)
	assert.Equal(t, day(4), fill.OrderDate)
	assert.Equal(t, entity.OrderPending, fill.Status)
	assert.Equal(t, int64(10), fill.RequestID)
	assert.Equal(t, int64(0), req.UnansweredQuantity([]entity.MoveOrder{partial, fill}))

	// ejecutar ambas órdenes completa la entrega
	sender := entity.StockPoint{ID: 1, CurrentStock: 100}
	receiver := entity.StockPoint{ID: 2}
	require.NoError(t, planning.ApplyMove(&partial, &req, &sender, &receiver))
	require.NoError(t, planning.ApplyMove(&fill, &req, &sender, &receiver))
	assert.Equal(t, req.Quantity, req.QuantityDelivered)
}

func TestFillRequest_NadaPendiente(t *testing.T) {
	req := entity.MoveRequest{ID: 1, Quantity: 20}
	_, err := planning.FillRequest(req, []entity.MoveOrder{{RequestID: 1, Quantity: 20}})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestUnansweredQuantity_IgnoraOtrasSolicitudes(t *testing.T) {
	req := entity.MoveRequest{ID: 1, Quantity: 160}
	orders := []entity.MoveOrder{{RequestID: 1, Quantity: 100}, {RequestID: 2, Quantity: 60}}
	assert.Equal(t, int64(60), req.UnansweredQuantity(orders))
}
