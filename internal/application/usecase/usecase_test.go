package usecase_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Abastecimiento-api/internal/application/dto"
	"github.com/jhoicas/Abastecimiento-api/internal/application/usecase"
	"github.com/jhoicas/Abastecimiento-api/internal/domain"
	"github.com/jhoicas/Abastecimiento-api/internal/domain/entity"
	"github.com/jhoicas/Abastecimiento-api/internal/infrastructure/memory"
)

func TestProductUseCase(t *testing.T) {
	ctx := context.Background()
	repos := memory.NewStore().Repositories()
	uc := usecase.NewProductUseCase(repos.Products)

	created, err := uc.Create(ctx, dto.CreateProductRequest{Name: " Product A ", Price: decimal.RequireFromString("12.345")})
	require.NoError(t, err)
	assert.Equal(t, "Product A", created.Name)
	assert.Equal(t, "12.35", created.Price.StringFixed(2))

	stored, err := repos.Products.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1235), stored.Price)

	_, err = uc.Create(ctx, dto.CreateProductRequest{Name: "Product A"})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
	_, err = uc.Create(ctx, dto.CreateProductRequest{Name: "B", Price: decimal.NewFromInt(-1)})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	_, err = uc.Create(ctx, dto.CreateProductRequest{Name: "C", Price: decimal.RequireFromString("1e30")})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	_, err = uc.Create(ctx, dto.CreateProductRequest{Name: "  "})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	list, err := uc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, list.Items, 1)

	require.NoError(t, uc.Delete(ctx, created.ID))
	_, err = uc.GetByID(ctx, created.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestStockPointYRouteUseCase(t *testing.T) {
	ctx := context.Background()
	repos := memory.NewStore().Repositories()
	products := usecase.NewProductUseCase(repos.Products)
	points := usecase.NewStockPointUseCase(repos.StockPoints, repos.Products)
	routes := usecase.NewRouteUseCase(repos.Routes, repos.StockPoints)

	p, err := products.Create(ctx, dto.CreateProductRequest{Name: "P"})
	require.NoError(t, err)
	other, err := products.Create(ctx, dto.CreateProductRequest{Name: "Q"})
	require.NoError(t, err)

	a, err := points.Create(ctx, dto.CreateStockPointRequest{ProductID: p.ID, Name: "A", CurrentStock: 10})
	require.NoError(t, err)
	b, err := points.Create(ctx, dto.CreateStockPointRequest{ProductID: p.ID, Name: "B"})
	require.NoError(t, err)
	q, err := points.Create(ctx, dto.CreateStockPointRequest{ProductID: other.ID, Name: "Q1"})
	require.NoError(t, err)

	_, err = points.Create(ctx, dto.CreateStockPointRequest{ProductID: 99, Name: "X"})
	assert.ErrorIs(t, err, domain.ErrNotFound)
	_, err = points.Create(ctx, dto.CreateStockPointRequest{ProductID: p.ID, Name: "Y", CurrentStock: -1})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	got, err := points.GetByID(ctx, a.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(10), got.CurrentStock)

	r, err := routes.Create(ctx, dto.CreateRouteRequest{SenderID: a.ID, ReceiverID: b.ID, Capacity: 20})
	require.NoError(t, err)
	assert.Equal(t, entity.DefaultLeadTime, r.LeadTime)
	assert.Equal(t, p.ID, r.ProductID)

	_, err = routes.Create(ctx, dto.CreateRouteRequest{SenderID: a.ID, ReceiverID: b.ID, Capacity: 5})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
	_, err = routes.Create(ctx, dto.CreateRouteRequest{SenderID: a.ID, ReceiverID: q.ID})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	_, err = routes.Create(ctx, dto.CreateRouteRequest{SenderID: a.ID, ReceiverID: a.ID})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	lead := -1
	_, err = routes.Create(ctx, dto.CreateRouteRequest{SenderID: b.ID, ReceiverID: a.ID, LeadTime: &lead})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	_, err = routes.Create(ctx, dto.CreateRouteRequest{SenderID: b.ID, ReceiverID: 77})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
