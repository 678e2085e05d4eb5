package planning_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Abastecimiento-api/internal/domain"
	"github.com/jhoicas/Abastecimiento-api/internal/domain/entity"
	"github.com/jhoicas/Abastecimiento-api/internal/domain/planning"
)

type moveCase struct {
	order    entity.MoveOrder
	request  entity.MoveRequest
	sender   entity.StockPoint
	receiver entity.StockPoint
}

func newMoveCase(senderStock, receiverStock, quantity int64) moveCase {
	return moveCase{
		order:    entity.MoveOrder{ID: 1, RequestID: 1, Quantity: quantity, OrderDate: asOf},
		request:  entity.MoveRequest{ID: 1, RouteID: 1, Quantity: quantity},
		sender:   entity.StockPoint{ID: 1, CurrentStock: senderStock},
		receiver: entity.StockPoint{ID: 2, CurrentStock: receiverStock},
	}
}

func (c *moveCase) apply() error {
	return planning.ApplyMove(&c.order, &c.request, &c.sender, &c.receiver)
}

func TestApplyMove_Conservacion(t *testing.T) {
	c := newMoveCase(150, 0, 60)
	require.NoError(t, c.apply())

	assert.Equal(t, int64(90), c.sender.CurrentStock)
	assert.Equal(t, int64(60), c.receiver.CurrentStock)
	assert.Equal(t, entity.OrderCompleted, c.order.Status)
	assert.Equal(t, int64(60), c.request.QuantityDelivered)
}

func TestApplyMove_StockInsuficiente(t *testing.T) {
	c := newMoveCase(50, 0, 100)
	err := c.apply()
	require.ErrorIs(t, err, domain.ErrInsufficientStock)

	assert.Equal(t, int64(50), c.sender.CurrentStock)
	assert.Equal(t, int64(0), c.receiver.CurrentStock)
	assert.Equal(t, entity.OrderPending, c.order.Status)
	assert.Equal(t, int64(0), c.request.QuantityDelivered)
}

func TestApplyMove_YaEjecutada(t *testing.T) {
	c := newMoveCase(150, 0, 60)
	require.NoError(t, c.apply())

	before := c
	err := c.apply()
	require.ErrorIs(t, err, domain.ErrAlreadyExecuted)
	assert.Equal(t, before, c, "una orden completada no modifica nada")
}

func TestApplyMove_Reversa(t *testing.T) {
	c := newMoveCase(10, 40, -30)
	require.NoError(t, c.apply())
	assert.Equal(t, int64(40), c.sender.CurrentStock)
	assert.Equal(t, int64(10), c.receiver.CurrentStock)
	assert.Equal(t, int64(-30), c.request.QuantityDelivered)

	c = newMoveCase(10, 20, -30)
	require.ErrorIs(t, c.apply(), domain.ErrInsufficientStock)
	assert.Equal(t, int64(20), c.receiver.CurrentStock)
	assert.Equal(t, int64(10), c.sender.CurrentStock)
}

func TestApplyMove_SolicitudAjena(t *testing.T) {
	c := newMoveCase(10, 0, 5)
	c.request.ID = 7
	require.ErrorIs(t, c.apply(), domain.ErrInvalidInput)
	assert.Equal(t, int64(10), c.sender.CurrentStock)
}

func TestApplyMove_StockNuncaNegativo(t *testing.T) {
	sender := entity.StockPoint{ID: 1, CurrentStock: 100}
	receiver := entity.StockPoint{ID: 2, CurrentStock: 0}
	request := entity.MoveRequest{ID: 1}
	quantities := []int64{40, 70, 60, -30, -200, 0, 30}
	for i, q := range quantities {
		order := entity.MoveOrder{ID: int64(i + 1), RequestID: 1, Quantity: q}
		_ = planning.ApplyMove(&order, &request, &sender, &receiver)
		assert.GreaterOrEqual(t, sender.CurrentStock, int64(0))
		assert.GreaterOrEqual(t, receiver.CurrentStock, int64(0))
		assert.Equal(t, int64(100), sender.CurrentStock+receiver.CurrentStock)
	}
	assert.Equal(t, receiver.CurrentStock, request.QuantityDelivered)
}
