package usecase

import (
	"context"
	"fmt"

	"github.com/jhoicas/Abastecimiento-api/internal/application/dto"
	"github.com/jhoicas/Abastecimiento-api/internal/domain"
	"github.com/jhoicas/Abastecimiento-api/internal/domain/entity"
	"github.com/jhoicas/Abastecimiento-api/internal/domain/repository"
)

// RouteUseCase casos de uso para rutas de suministro.
type RouteUseCase struct {
	repo        repository.SupplyRouteRepository
	stockPoints repository.StockPointRepository
}

// NewRouteUseCase construye el caso de uso.
func NewRouteUseCase(repo repository.SupplyRouteRepository, stockPoints repository.StockPointRepository) *RouteUseCase {
	return &RouteUseCase{repo: repo, stockPoints: stockPoints}
}

// Create crea una ruta entre dos puntos del mismo producto. El producto se toma del emisor.
func (uc *RouteUseCase) Create(ctx context.Context, in dto.CreateRouteRequest) (*dto.RouteResponse, error) {
	sender, err := uc.stockPoints.GetByID(ctx, in.SenderID)
	if err != nil {
		return nil, err
	}
	receiver, err := uc.stockPoints.GetByID(ctx, in.ReceiverID)
	if err != nil {
		return nil, err
	}
	if sender == nil || receiver == nil {
		return nil, fmt.Errorf("route %d→%d: %w", in.SenderID, in.ReceiverID, domain.ErrNotFound)
	}
	if sender.ProductID != receiver.ProductID {
		return nil, fmt.Errorf("route %d→%d entre productos distintos: %w", in.SenderID, in.ReceiverID, domain.ErrInvalidInput)
	}

	route := &entity.SupplyRoute{
		ProductID:  sender.ProductID,
		SenderID:   sender.ID,
		ReceiverID: receiver.ID,
		Capacity:   in.Capacity,
		LeadTime:   entity.DefaultLeadTime,
	}
	if in.LeadTime != nil {
		route.LeadTime = *in.LeadTime
	}
	if err := route.Validate(); err != nil {
		return nil, err
	}
	if err := uc.repo.Create(ctx, route); err != nil {
		return nil, err
	}
	return &dto.RouteResponse{
		ID:         route.ID,
		ProductID:  route.ProductID,
		SenderID:   route.SenderID,
		ReceiverID: route.ReceiverID,
		Capacity:   route.Capacity,
		LeadTime:   route.LeadTime,
	}, nil
}
