package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/jhoicas/Abastecimiento-api/internal/application/dto"
	"github.com/jhoicas/Abastecimiento-api/internal/domain"
	"github.com/jhoicas/Abastecimiento-api/internal/domain/entity"
	"github.com/jhoicas/Abastecimiento-api/internal/domain/repository"
)

// StockPointUseCase casos de uso para puntos de stock.
type StockPointUseCase struct {
	repo     repository.StockPointRepository
	products repository.ProductRepository
}

// NewStockPointUseCase construye el caso de uso.
func NewStockPointUseCase(repo repository.StockPointRepository, products repository.ProductRepository) *StockPointUseCase {
	return &StockPointUseCase{repo: repo, products: products}
}

// Create crea un punto de stock del producto con su stock inicial.
func (uc *StockPointUseCase) Create(ctx context.Context, in dto.CreateStockPointRequest) (*dto.StockPointResponse, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" || in.CurrentStock < 0 {
		return nil, domain.ErrInvalidInput
	}
	product, err := uc.products.GetByID(ctx, in.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, fmt.Errorf("product %d: %w", in.ProductID, domain.ErrNotFound)
	}
	sp := &entity.StockPoint{ProductID: product.ID, Name: name, CurrentStock: in.CurrentStock}
	if err := uc.repo.Create(ctx, sp); err != nil {
		return nil, err
	}
	return toStockPointResponse(sp), nil
}

// GetByID obtiene un punto de stock por ID.
func (uc *StockPointUseCase) GetByID(ctx context.Context, id int64) (*dto.StockPointResponse, error) {
	sp, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if sp == nil {
		return nil, fmt.Errorf("stock point %d: %w", id, domain.ErrNotFound)
	}
	return toStockPointResponse(sp), nil
}

func toStockPointResponse(sp *entity.StockPoint) *dto.StockPointResponse {
	return &dto.StockPointResponse{
		ID:           sp.ID,
		ProductID:    sp.ProductID,
		Name:         sp.Name,
		CurrentStock: sp.CurrentStock,
	}
}
