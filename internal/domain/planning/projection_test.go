package planning_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Abastecimiento-api/internal/domain"
	"github.com/jhoicas/Abastecimiento-api/internal/domain/entity"
	"github.com/jhoicas/Abastecimiento-api/internal/domain/planning"
)

func TestProjectInventory_FinishedGoods(t *testing.T) {
	net := productA(t)
	p, err := planning.ProjectInventory(net, 2, asOf, 30)
	require.NoError(t, err)

	assert.Equal(t, "Finished goods", p.StockPointName)
	assert.Equal(t, int64(150), p.StartingStock)
	assert.Equal(t, 31, p.Len())
	assert.Equal(t, asOf, p.Start)
	assert.Equal(t, day(30), p.End())
	assert.Len(t, p.Included, 7)

	assert.Equal(t, int64(100), p.Supply[4])
	assert.Equal(t, int64(160), p.Supply[9])
	assert.Equal(t, int64(-60), p.Demand[2])
	assert.Equal(t, int64(-100), p.Demand[6])

	want := map[int]int64{0: 150, 1: 150, 2: 90, 3: 90, 4: 190, 6: 90, 7: 40, 8: 40, 9: 200, 10: 200, 11: 100, 30: 100}
	for d, inv := range want {
		assert.Equal(t, inv, p.Inventory[d], "inventario día %d", d)
	}
}

func TestProjectInventory_NoRecortaNegativos(t *testing.T) {
	net := twoPointsOneRoute(t)
	require.NoError(t, net.AddAll(
		entity.MoveRequest{ID: 1, RouteID: 1, Quantity: 30, RegisteredOn: asOf, RequestedDelivery: day(3)},
		entity.MoveOrder{ID: 1, RequestID: 1, Quantity: 30, OrderDate: day(3)},
	))

	sender, err := planning.ProjectATP(net, 1, asOf, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(0), sender.Inventory[2])
	assert.Equal(t, int64(-30), sender.Inventory[3])
	assert.Equal(t, int64(-30), sender.Inventory[10])
	assert.Equal(t, int64(-30), sender.ATP[0])

	receiver, err := planning.ProjectInventory(net, 2, asOf, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(30), receiver.Inventory[3])
}

func TestProjectInventory_Horizonte(t *testing.T) {
	net := productA(t)
	for _, h := range []int{0, -1, planning.MaxHorizon + 1} {
		_, err := planning.ProjectInventory(net, 2, asOf, h)
		assert.ErrorIs(t, err, domain.ErrInvalidHorizon, "horizonte %d", h)
	}
	p, err := planning.ProjectInventory(net, 2, asOf, planning.DefaultHorizon)
	require.NoError(t, err)
	assert.Len(t, p.Inventory, planning.DefaultHorizon+1)
}

func TestProjectInventory_StockPointInexistente(t *testing.T) {
	_, err := planning.ProjectInventory(productA(t), 99, asOf, 10)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestProjectInventory_IgnoraOrdenesFueraDeVentana(t *testing.T) {
	net := productA(t)
	// desde el día 5 las órdenes de los días 2 y 4 quedan fuera
	p, err := planning.ProjectInventory(net, 2, day(5), 30)
	require.NoError(t, err)
	assert.Equal(t, int64(150), p.Inventory[0])
	assert.Equal(t, int64(50), p.Inventory[1])  // día 6: -100
	assert.Equal(t, int64(0), p.Inventory[2])   // día 7: -50
	assert.Equal(t, int64(160), p.Inventory[4]) // día 9: +160
}

func TestProject_Determinista(t *testing.T) {
	net := productA(t)
	a, err := planning.Project(net, 2, asOf, planning.DefaultHorizon)
	require.NoError(t, err)
	b, err := planning.Project(net, 2, asOf, planning.DefaultHorizon)
	require.NoError(t, err)
	assert.Equal(t, a.Rows(), b.Rows())
}

func TestATP_MinimoFuturo(t *testing.T) {
	net := productA(t)
	for _, sp := range net.StockPoints() {
		p, err := planning.ProjectATP(net, sp.ID, asOf, 60)
		require.NoError(t, err)
		for d := range p.ATP {
			assert.LessOrEqual(t, p.ATP[d], p.Inventory[d])
			minimum := p.Inventory[d]
			for _, v := range p.Inventory[d:] {
				minimum = min(minimum, v)
			}
			assert.Equal(t, minimum, p.ATP[d], "stock point %d día %d", sp.ID, d)
		}
		// los datos de prueba generan un ATP no decreciente
		assert.True(t, nonDecreasing(p.ATP), "stock point %d", sp.ID)
	}
}

func TestATP_FinishedGoods(t *testing.T) {
	p, err := planning.ProjectATP(productA(t), 2, asOf, 30)
	require.NoError(t, err)
	for d := 0; d <= 8; d++ {
		assert.Equal(t, int64(40), p.ATP[d], "día %d", d)
	}
	for d := 9; d <= 30; d++ {
		assert.Equal(t, int64(100), p.ATP[d], "día %d", d)
	}
}

func TestSuffixMin(t *testing.T) {
	assert.Equal(t, []int64{1, 1, 2, 2, 5}, planning.SuffixMin([]int64{3, 1, 4, 2, 5}))
	assert.Equal(t, []int64{-2, -2, 0}, planning.SuffixMin([]int64{4, -2, 0}))
	assert.Empty(t, planning.SuffixMin(nil))
}

func TestRows(t *testing.T) {
	p, err := planning.Project(productA(t), 2, asOf, 10)
	require.NoError(t, err)
	rows := p.Rows()
	require.Len(t, rows, 11)
	assert.Equal(t, day(9), rows[9].Date)
	assert.Equal(t, int64(160), rows[9].Supply)
	assert.Equal(t, int64(200), rows[9].Inventory)
	// el horizonte termina antes de la salida del día 11
	assert.Equal(t, int64(200), rows[9].ATP)
	assert.Equal(t, rows[9].ATP, rows[9].CTP)
}
