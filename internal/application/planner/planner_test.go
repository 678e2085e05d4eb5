package planner_test

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Abastecimiento-api/internal/application/dto"
	"github.com/jhoicas/Abastecimiento-api/internal/application/planner"
	"github.com/jhoicas/Abastecimiento-api/internal/domain"
	"github.com/jhoicas/Abastecimiento-api/internal/domain/entity"
	"github.com/jhoicas/Abastecimiento-api/internal/domain/planning"
	"github.com/jhoicas/Abastecimiento-api/internal/domain/repository"
	"github.com/jhoicas/Abastecimiento-api/internal/infrastructure/memory"
	"github.com/jhoicas/Abastecimiento-api/pkg/logger"
)

var asOf = time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

func day(n int) time.Time { return entity.AddDays(asOf, n) }

var _ planner.TxRunner = (*memory.TxRunner)(nil)

func seeded(t *testing.T) memory.Repositories {
	t.Helper()
	store := memory.NewStore()
	require.NoError(t, store.Load(memory.ProductA(asOf)))
	return store.Repositories()
}

func TestLoadNetwork(t *testing.T) {
	repos := seeded(t)
	net, err := planner.LoadNetwork(context.Background(), repos.Catalog)
	require.NoError(t, err)
	require.NoError(t, net.Validate())
	assert.Len(t, net.StockPoints(), 3)
	assert.Len(t, net.Orders(), 7)
}

func TestProjectionUseCase_Table(t *testing.T) {
	repos := seeded(t)
	uc := planner.NewProjectionUseCase(repos.Catalog, repos.Orders, 30, 2)

	table, err := uc.Table(context.Background(), 2, asOf, 0)
	require.NoError(t, err)
	assert.Equal(t, 30, table.Horizon)
	require.Len(t, table.Rows, 31)
	assert.Equal(t, "2024-03-01", table.Rows[0].Date)
	assert.Equal(t, int64(150), table.Rows[0].Inventory)
	assert.Equal(t, int64(90), table.Rows[2].Inventory)
	assert.Equal(t, int64(40), table.Rows[0].ATP)
	assert.Equal(t, int64(100), table.Rows[9].ATP)
	assert.Equal(t, int64(120), table.Rows[15].CTP)

	_, err = uc.Table(context.Background(), 2, asOf, 731)
	assert.ErrorIs(t, err, domain.ErrInvalidHorizon)
	_, err = uc.Table(context.Background(), 99, asOf, 10)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestProjectionUseCase_ListOrdersCoincideConOrderFilter(t *testing.T) {
	ctx := context.Background()
	repos := seeded(t)
	uc := planner.NewProjectionUseCase(repos.Catalog, repos.Orders, 30, 2)
	net, err := planner.LoadNetwork(ctx, repos.Catalog)
	require.NoError(t, err)

	for _, window := range [][2]int{{0, 30}, {4, 9}, {6, 6}, {12, 20}} {
		got, err := uc.ListOrders(ctx, 2, planner.OrderQuery{From: day(window[0]), To: day(window[1])})
		require.NoError(t, err)

		in, err := planning.OrderFilter(net, 2, day(window[0]), day(window[1]), true, false, planning.StatusAny)
		require.NoError(t, err)
		out, err := planning.OrderFilter(net, 2, day(window[0]), day(window[1]), false, true, planning.StatusAny)
		require.NoError(t, err)

		assert.Equal(t, orderIDs(in), responseIDs(got.Incoming), "entrantes %v", window)
		assert.Equal(t, orderIDs(out), responseIDs(got.Outgoing), "salientes %v", window)
	}
}

func TestProjectionUseCase_ListOrdersFiltros(t *testing.T) {
	ctx := context.Background()
	repos := seeded(t)
	uc := planner.NewProjectionUseCase(repos.Catalog, repos.Orders, 30, 2)

	got, err := uc.ListOrders(ctx, 2, planner.OrderQuery{Incoming: true, From: day(0), To: day(30), Status: planning.StatusPending})
	require.NoError(t, err)
	assert.Equal(t, []int64{1, 2, 3}, responseIDs(got.Incoming))
	assert.Empty(t, got.Outgoing)
	assert.Equal(t, int64(1), got.Incoming[0].SenderID)
	assert.Equal(t, "pending", got.Incoming[0].Status)

	_, err = uc.ListOrders(ctx, 2, planner.OrderQuery{From: day(5), To: day(1)})
	assert.ErrorIs(t, err, domain.ErrInvalidRange)
	_, err = uc.ListOrders(ctx, 42, planner.OrderQuery{From: day(0), To: day(1)})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestProjectionUseCase_Overview(t *testing.T) {
	repos := seeded(t)
	uc := planner.NewProjectionUseCase(repos.Catalog, repos.Orders, 30, 2)

	ov, err := uc.Overview(context.Background(), 1, asOf, 0)
	require.NoError(t, err)
	assert.Equal(t, "Product A", ov.ProductName)
	require.Len(t, ov.StockPoints, 3)

	finished := ov.StockPoints[1]
	assert.Equal(t, int64(2), finished.StockPointID)
	assert.Equal(t, int64(40), finished.ATP)
	assert.Equal(t, int64(40), finished.MinInventory)
	assert.Empty(t, finished.FirstShortage)

	_, err = uc.Overview(context.Background(), 9, asOf, 0)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestProjectionUseCase_OverviewFaltante(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	require.NoError(t, store.Load(memory.Seed{
		Products:    []entity.Product{{ID: 1, Name: "P"}},
		StockPoints: []entity.StockPoint{{ID: 1, ProductID: 1, Name: "A"}, {ID: 2, ProductID: 1, Name: "B"}},
		Routes:      []entity.SupplyRoute{{ID: 1, ProductID: 1, SenderID: 1, ReceiverID: 2, Capacity: 20, LeadTime: 2}},
		Requests:    []entity.MoveRequest{{ID: 1, RouteID: 1, Quantity: 30, RegisteredOn: asOf, RequestedDelivery: day(3)}},
		Orders:      []entity.MoveOrder{{ID: 1, RequestID: 1, Quantity: 30, OrderDate: day(3)}},
	}))
	repos := store.Repositories()
	uc := planner.NewProjectionUseCase(repos.Catalog, repos.Orders, 10, 1)

	ov, err := uc.Overview(ctx, 1, asOf, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(-30), ov.StockPoints[0].MinInventory)
	assert.Equal(t, "2024-03-04", ov.StockPoints[0].FirstShortage)
}

func newExecutor(repos memory.Repositories, buf *bytes.Buffer) *planner.ExecuteMoveUseCase {
	log := logger.New(logger.Config{Env: "production", Level: "info", Output: buf})
	return planner.NewExecuteMoveUseCase(repos.Tx, repos.Orders, log)
}

func TestExecute_ConservaYCompleta(t *testing.T) {
	ctx := context.Background()
	repos := seeded(t)
	var buf bytes.Buffer
	uc := newExecutor(repos, &buf)

	res, err := uc.Execute(ctx, 1)
	require.NoError(t, err)
	assert.NotEmpty(t, res.RunID)
	assert.Equal(t, int64(530), res.SenderStock)
	assert.Equal(t, int64(250), res.ReceiverStock)

	o, err := repos.Orders.GetByID(ctx, 1)
	require.NoError(t, err)
	assert.False(t, o.IsPending())
	req, err := repos.Requests.GetByID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(100), req.QuantityDelivered)

	var entry map[string]any
	line := strings.Split(strings.TrimSpace(buf.String()), "\n")[0]
	require.NoError(t, json.Unmarshal([]byte(line), &entry))
	assert.Equal(t, "execution", entry["component"])
	assert.Equal(t, res.RunID, entry["run_id"])

	_, err = uc.Execute(ctx, 1)
	assert.ErrorIs(t, err, domain.ErrAlreadyExecuted)
	_, err = uc.Execute(ctx, 70)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestExecute_StockInsuficienteNoCambiaNada(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	require.NoError(t, store.Load(memory.Seed{
		Products:    []entity.Product{{ID: 1, Name: "P"}},
		StockPoints: []entity.StockPoint{{ID: 1, ProductID: 1, Name: "A", CurrentStock: 50}, {ID: 2, ProductID: 1, Name: "B"}},
		Routes:      []entity.SupplyRoute{{ID: 1, ProductID: 1, SenderID: 1, ReceiverID: 2, Capacity: 20, LeadTime: 2}},
		Requests:    []entity.MoveRequest{{ID: 1, RouteID: 1, Quantity: 100, RegisteredOn: asOf, RequestedDelivery: asOf}},
		Orders:      []entity.MoveOrder{{ID: 1, RequestID: 1, Quantity: 100, OrderDate: asOf}},
	}))
	repos := store.Repositories()
	var buf bytes.Buffer

	_, err := newExecutor(repos, &buf).Execute(ctx, 1)
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.Contains(t, buf.String(), "orden no ejecutada")

	a, err := repos.StockPoints.GetByID(ctx, 1)
	require.NoError(t, err)
	b, err := repos.StockPoints.GetByID(ctx, 2)
	require.NoError(t, err)
	o, err := repos.Orders.GetByID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(50), a.CurrentStock)
	assert.Equal(t, int64(0), b.CurrentStock)
	assert.True(t, o.IsPending())
}

func TestExecuteScheduled_AislaFallos(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	require.NoError(t, store.Load(memory.Seed{
		Products: []entity.Product{{ID: 1, Name: "P"}},
		StockPoints: []entity.StockPoint{
			{ID: 1, ProductID: 1, Name: "A", CurrentStock: 70},
			{ID: 2, ProductID: 1, Name: "B", CurrentStock: 0},
		},
		Routes:   []entity.SupplyRoute{{ID: 1, ProductID: 1, SenderID: 1, ReceiverID: 2, Capacity: 20, LeadTime: 2}},
		Requests: []entity.MoveRequest{{ID: 1, RouteID: 1, Quantity: 150, RegisteredOn: asOf, RequestedDelivery: day(1)}},
		Orders: []entity.MoveOrder{
			{ID: 1, RequestID: 1, Quantity: 50, OrderDate: day(1)},
			{ID: 2, RequestID: 1, Quantity: 50, OrderDate: day(1)}, // solo quedan 20
			{ID: 3, RequestID: 1, Quantity: 20, OrderDate: day(1)},
			{ID: 4, RequestID: 1, Quantity: 30, OrderDate: day(2)},
		},
	}))
	repos := store.Repositories()
	var buf bytes.Buffer

	report, err := newExecutor(repos, &buf).ExecuteScheduled(ctx, day(1))
	require.NoError(t, err)
	assert.Equal(t, "2024-03-02", report.Day)
	require.Len(t, report.Executed, 2)
	assert.Equal(t, int64(1), report.Executed[0].OrderID)
	assert.Equal(t, int64(3), report.Executed[1].OrderID)
	assert.Equal(t, report.RunID, report.Executed[0].RunID)
	require.Len(t, report.Failed, 1)
	assert.Equal(t, int64(2), report.Failed[0].OrderID)
	assert.Contains(t, report.Failed[0].Reason, domain.ErrInsufficientStock.Error())

	a, err := repos.StockPoints.GetByID(ctx, 1)
	require.NoError(t, err)
	b, err := repos.StockPoints.GetByID(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(0), a.CurrentStock)
	assert.Equal(t, int64(70), b.CurrentStock)
	assert.Equal(t, int64(70), a.CurrentStock+b.CurrentStock)
}

// cancelAfterFirst cancela el contexto del lote tras confirmar la primera transacción.
type cancelAfterFirst struct {
	planner.TxRunner
	cancel context.CancelFunc
}

func (c cancelAfterFirst) Run(ctx context.Context, fn func(
	repository.StockPointRepository,
	repository.SupplyRouteRepository,
	repository.MoveRequestRepository,
	repository.MoveOrderRepository,
) error) error {
	defer c.cancel()
	return c.TxRunner.Run(ctx, fn)
}

func TestExecuteScheduled_CancelacionDevuelveInformeParcial(t *testing.T) {
	store := memory.NewStore()
	require.NoError(t, store.Load(memory.Seed{
		Products: []entity.Product{{ID: 1, Name: "P"}},
		StockPoints: []entity.StockPoint{
			{ID: 1, ProductID: 1, Name: "A", CurrentStock: 100},
			{ID: 2, ProductID: 1, Name: "B", CurrentStock: 0},
		},
		Routes:   []entity.SupplyRoute{{ID: 1, ProductID: 1, SenderID: 1, ReceiverID: 2, LeadTime: 2}},
		Requests: []entity.MoveRequest{{ID: 1, RouteID: 1, Quantity: 60, RegisteredOn: asOf, RequestedDelivery: day(1)}},
		Orders: []entity.MoveOrder{
			{ID: 1, RequestID: 1, Quantity: 30, OrderDate: day(1)},
			{ID: 2, RequestID: 1, Quantity: 30, OrderDate: day(1)},
		},
	}))
	repos := store.Repositories()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	uc := planner.NewExecuteMoveUseCase(cancelAfterFirst{TxRunner: repos.Tx, cancel: cancel}, repos.Orders, nil)
	report, err := uc.ExecuteScheduled(ctx, day(1))
	require.ErrorIs(t, err, context.Canceled)
	require.NotNil(t, report)
	require.Len(t, report.Executed, 1)
	assert.Equal(t, int64(1), report.Executed[0].OrderID)
	assert.Empty(t, report.Failed)

	pending, err := repos.Orders.ListScheduled(context.Background(), day(1))
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, int64(2), pending[0].ID)
}

func TestRequestUseCase_AddYFill(t *testing.T) {
	ctx := context.Background()
	repos := seeded(t)
	uc := planner.NewRequestUseCase(repos.Tx)

	req, err := uc.AddRequest(ctx, 1, dto.CreateMoveRequestRequest{DeliveryOffsetDays: 5, Quantity: 40}, asOf.Add(10*time.Hour))
	require.NoError(t, err)
	assert.Equal(t, int64(7), req.ID)
	assert.Equal(t, "2024-03-01", req.RegisteredOn)
	assert.Equal(t, "2024-03-06", req.RequestedDelivery)

	order, err := uc.FillRequest(ctx, req.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(8), order.ID)
	assert.Equal(t, int64(40), order.Quantity)
	assert.Equal(t, "2024-03-06", order.OrderDate)
	assert.Equal(t, int64(2), order.ReceiverID)

	_, err = uc.FillRequest(ctx, req.ID)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	// la solicitud 2 pidió 160 y ya tiene órdenes por 160
	_, err = uc.FillRequest(ctx, 2)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	_, err = uc.FillRequest(ctx, 99)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestRequestUseCase_Validaciones(t *testing.T) {
	ctx := context.Background()
	repos := seeded(t)
	uc := planner.NewRequestUseCase(repos.Tx)

	_, err := uc.AddRequest(ctx, 1, dto.CreateMoveRequestRequest{DeliveryOffsetDays: 1}, asOf)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	_, err = uc.AddRequest(ctx, 1, dto.CreateMoveRequestRequest{DeliveryOffsetDays: -1, Quantity: 5}, asOf)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	_, err = uc.AddRequest(ctx, 9, dto.CreateMoveRequestRequest{Quantity: 5}, asOf)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func orderIDs(orders []entity.MoveOrder) []int64 {
	out := []int64{}
	for _, o := range orders {
		out = append(out, o.ID)
	}
	return out
}

func responseIDs(orders []dto.MoveOrderResponse) []int64 {
	out := []int64{}
	for _, o := range orders {
		out = append(out, o.ID)
	}
	return out
}
