package memory_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Abastecimiento-api/internal/domain"
	"github.com/jhoicas/Abastecimiento-api/internal/domain/entity"
	"github.com/jhoicas/Abastecimiento-api/internal/domain/repository"
	"github.com/jhoicas/Abastecimiento-api/internal/infrastructure/memory"
)

var asOf = time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

func seeded(t *testing.T) (*memory.Store, memory.Repositories) {
	t.Helper()
	store := memory.NewStore()
	require.NoError(t, store.Load(memory.ProductA(asOf)))
	return store, store.Repositories()
}

func TestLoad_RechazaSemillaInvalida(t *testing.T) {
	store := memory.NewStore()
	seed := memory.Seed{
		StockPoints: []entity.StockPoint{{ID: 1, ProductID: 99, Name: "huérfano"}},
	}
	err := store.Load(seed)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	all, err := store.Repositories().StockPoints.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestCreate_AsignaIDsSecuenciales(t *testing.T) {
	ctx := context.Background()
	_, repos := seeded(t)

	p := &entity.Product{Name: "Product B"}
	require.NoError(t, repos.Products.Create(ctx, p))
	assert.Equal(t, int64(2), p.ID)

	sp := &entity.StockPoint{ProductID: p.ID, Name: "B warehouse"}
	require.NoError(t, repos.StockPoints.Create(ctx, sp))
	assert.Equal(t, int64(4), sp.ID)

	err := repos.Products.Create(ctx, &entity.Product{Name: "Product B"})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestStockPoint_NombreUnicoPorProducto(t *testing.T) {
	ctx := context.Background()
	_, repos := seeded(t)

	b := &entity.Product{Name: "Product B"}
	require.NoError(t, repos.Products.Create(ctx, b))
	for _, name := range []string{"Unfinished goods", "Finished goods"} {
		require.NoError(t, repos.StockPoints.Create(ctx, &entity.StockPoint{ProductID: b.ID, Name: name}))
	}
	err := repos.StockPoints.Create(ctx, &entity.StockPoint{ProductID: b.ID, Name: "Finished goods"})
	assert.ErrorIs(t, err, domain.ErrDuplicate)

	inB, err := repos.StockPoints.ListByProduct(ctx, b.ID)
	require.NoError(t, err)
	assert.Len(t, inB, 2)

	sp, err := repos.StockPoints.GetByName(ctx, "Finished goods")
	require.NoError(t, err)
	require.NotNil(t, sp)
	assert.Equal(t, int64(2), sp.ID, "ante nombres repetidos gana el menor ID")

	e, err := repos.Catalog.GetByName(ctx, entity.KindStockPoint, "Finished goods")
	require.NoError(t, err)
	assert.Equal(t, int64(2), e.EntityID())
}

func TestLoad_AplicaLasMismasReglasDeNombre(t *testing.T) {
	store, _ := seeded(t)

	repetido := memory.Seed{
		StockPoints: []entity.StockPoint{{ID: 10, ProductID: 1, Name: "Finished goods"}},
	}
	assert.ErrorIs(t, store.Load(repetido), domain.ErrDuplicate)

	otroProducto := memory.Seed{
		Products:    []entity.Product{{ID: 2, Name: "Product B"}},
		StockPoints: []entity.StockPoint{{ID: 10, ProductID: 2, Name: "Finished goods"}},
	}
	assert.NoError(t, store.Load(otroProducto))

	productoRepetido := memory.Seed{Products: []entity.Product{{ID: 3, Name: "Product A"}}}
	assert.ErrorIs(t, store.Load(productoRepetido), domain.ErrDuplicate)
}

func TestSupplyRoute_ParUnico(t *testing.T) {
	ctx := context.Background()
	_, repos := seeded(t)

	err := repos.Routes.Create(ctx, &entity.SupplyRoute{ProductID: 1, SenderID: 1, ReceiverID: 2, Capacity: 5})
	assert.ErrorIs(t, err, domain.ErrDuplicate)

	back := &entity.SupplyRoute{ProductID: 1, SenderID: 2, ReceiverID: 1, Capacity: 5}
	require.NoError(t, repos.Routes.Create(ctx, back))
	assert.Equal(t, int64(3), back.ID)

	err = repos.Routes.Create(ctx, &entity.SupplyRoute{ProductID: 1, SenderID: 3, ReceiverID: 3})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestListByStockPoint_DireccionYVentana(t *testing.T) {
	ctx := context.Background()
	_, repos := seeded(t)

	in, err := repos.Orders.ListByStockPoint(ctx, 2, repository.DirectionIncoming, asOf, entity.AddDays(asOf, 30))
	require.NoError(t, err)
	assert.Equal(t, []int64{1, 2, 3}, orderIDs(in))

	out, err := repos.Orders.ListByStockPoint(ctx, 2, repository.DirectionOutgoing, entity.AddDays(asOf, 6), entity.AddDays(asOf, 7))
	require.NoError(t, err)
	assert.Equal(t, []int64{5, 6}, orderIDs(out))

	_, err = repos.Orders.ListByStockPoint(ctx, 2, repository.DirectionOutgoing, entity.AddDays(asOf, 7), asOf)
	assert.ErrorIs(t, err, domain.ErrInvalidRange)
}

func TestListScheduled(t *testing.T) {
	ctx := context.Background()
	_, repos := seeded(t)

	got, err := repos.Orders.ListScheduled(ctx, entity.AddDays(asOf, 9).Add(15*time.Hour))
	require.NoError(t, err)
	assert.Equal(t, []int64{2, 3}, orderIDs(got))
}

func TestProductDelete_Cascada(t *testing.T) {
	ctx := context.Background()
	_, repos := seeded(t)

	require.NoError(t, repos.Products.Delete(ctx, 1))

	for _, kind := range entity.Kinds() {
		all, err := repos.Catalog.GetAll(ctx, kind)
		require.NoError(t, err)
		assert.Empty(t, all, kind.String())
	}
	assert.ErrorIs(t, repos.Products.Delete(ctx, 1), domain.ErrNotFound)
}

func TestCatalog(t *testing.T) {
	ctx := context.Background()
	_, repos := seeded(t)

	routes, err := repos.Catalog.GetAll(ctx, entity.KindSupplyRoute)
	require.NoError(t, err)
	require.Len(t, routes, 2)
	assert.Equal(t, int64(1), routes[0].EntityID())

	e, err := repos.Catalog.GetByID(ctx, entity.KindMoveOrder, 7)
	require.NoError(t, err)
	order, ok := e.(entity.MoveOrder)
	require.True(t, ok)
	assert.Equal(t, int64(100), order.Quantity)

	_, err = repos.Catalog.GetByID(ctx, entity.KindMoveOrder, 70)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	e, err = repos.Catalog.GetByName(ctx, entity.KindStockPoint, "Finished goods")
	require.NoError(t, err)
	assert.Equal(t, int64(2), e.EntityID())

	_, err = repos.Catalog.GetByName(ctx, entity.KindSupplyRoute, "x")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestTxRunner_RollbackDescartaCambios(t *testing.T) {
	ctx := context.Background()
	_, repos := seeded(t)
	boom := errors.New("boom")

	err := repos.Tx.Run(ctx, func(
		stockRepo repository.StockPointRepository,
		_ repository.SupplyRouteRepository,
		requestRepo repository.MoveRequestRepository,
		orderRepo repository.MoveOrderRepository,
	) error {
		require.NoError(t, stockRepo.UpdateStock(ctx, 1, 0))
		require.NoError(t, orderRepo.MarkCompleted(ctx, 1))
		require.NoError(t, requestRepo.UpdateDelivered(ctx, 1, 100))
		return boom
	})
	assert.ErrorIs(t, err, boom)

	sp, err := repos.StockPoints.GetByID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(630), sp.CurrentStock)
	o, err := repos.Orders.GetByID(ctx, 1)
	require.NoError(t, err)
	assert.True(t, o.IsPending())
}

func TestTxRunner_Commit(t *testing.T) {
	ctx := context.Background()
	_, repos := seeded(t)

	err := repos.Tx.Run(ctx, func(
		stockRepo repository.StockPointRepository,
		_ repository.SupplyRouteRepository,
		_ repository.MoveRequestRepository,
		orderRepo repository.MoveOrderRepository,
	) error {
		if err := stockRepo.UpdateStock(ctx, 1, 530); err != nil {
			return err
		}
		return orderRepo.MarkCompleted(ctx, 1)
	})
	require.NoError(t, err)

	sp, err := repos.StockPoints.GetByID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(530), sp.CurrentStock)
	assert.ErrorIs(t, repos.Orders.MarkCompleted(ctx, 1), domain.ErrAlreadyExecuted)
}

func TestUpdateStock_NoNegativo(t *testing.T) {
	_, repos := seeded(t)
	err := repos.StockPoints.UpdateStock(context.Background(), 1, -1)
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
}

func TestConcurrencia_TransaccionesSerializadas(t *testing.T) {
	ctx := context.Background()
	_, repos := seeded(t)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = repos.Tx.Run(ctx, func(
				stockRepo repository.StockPointRepository,
				_ repository.SupplyRouteRepository,
				_ repository.MoveRequestRepository,
				_ repository.MoveOrderRepository,
			) error {
				sp, err := stockRepo.GetForUpdate(ctx, 3)
				if err != nil {
					return err
				}
				return stockRepo.UpdateStock(ctx, 3, sp.CurrentStock+1)
			})
		}()
	}
	wg.Wait()

	sp, err := repos.StockPoints.GetByID(ctx, 3)
	require.NoError(t, err)
	assert.Equal(t, int64(20), sp.CurrentStock)
}

func orderIDs(orders []*entity.MoveOrder) []int64 {
	out := make([]int64, 0, len(orders))
	for _, o := range orders {
		out = append(out, o.ID)
	}
	return out
}
