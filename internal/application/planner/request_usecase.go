package planner

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/Abastecimiento-api/internal/application/dto"
	"github.com/jhoicas/Abastecimiento-api/internal/domain"
	"github.com/jhoicas/Abastecimiento-api/internal/domain/entity"
	"github.com/jhoicas/Abastecimiento-api/internal/domain/planning"
	"github.com/jhoicas/Abastecimiento-api/internal/domain/repository"
)

// RequestUseCase registra solicitudes sobre rutas y las convierte en órdenes.
type RequestUseCase struct {
	txRunner TxRunner
}

// NewRequestUseCase construye el caso de uso.
func NewRequestUseCase(txRunner TxRunner) *RequestUseCase {
	return &RequestUseCase{txRunner: txRunner}
}

// AddRequest registra en asOf una solicitud sobre la ruta con entrega a DeliveryOffsetDays días.
func (uc *RequestUseCase) AddRequest(ctx context.Context, routeID int64, in dto.CreateMoveRequestRequest, asOf time.Time) (*dto.MoveRequestResponse, error) {
	if in.Quantity == 0 || in.DeliveryOffsetDays < 0 {
		return nil, domain.ErrInvalidInput
	}
	var created entity.MoveRequest
	err := uc.txRunner.Run(ctx, func(
		_ repository.StockPointRepository,
		routeRepo repository.SupplyRouteRepository,
		requestRepo repository.MoveRequestRepository,
		_ repository.MoveOrderRepository,
	) error {
		route, err := routeRepo.GetByID(ctx, routeID)
		if err != nil {
			return err
		}
		if route == nil {
			return fmt.Errorf("route %d: %w", routeID, domain.ErrNotFound)
		}
		created = planning.AddRequest(*route, in.DeliveryOffsetDays, in.Quantity, asOf)
		return requestRepo.Create(ctx, &created)
	})
	if err != nil {
		return nil, err
	}
	return toMoveRequestResponse(&created), nil
}

// FillRequest crea la orden por la cantidad aún no respondida de la solicitud.
func (uc *RequestUseCase) FillRequest(ctx context.Context, requestID int64) (*dto.MoveOrderResponse, error) {
	var (
		created entity.MoveOrder
		route   *entity.SupplyRoute
	)
	err := uc.txRunner.Run(ctx, func(
		_ repository.StockPointRepository,
		routeRepo repository.SupplyRouteRepository,
		requestRepo repository.MoveRequestRepository,
		orderRepo repository.MoveOrderRepository,
	) error {
		request, err := requestRepo.GetForUpdate(ctx, requestID)
		if err != nil {
			return err
		}
		if request == nil {
			return fmt.Errorf("move request %d: %w", requestID, domain.ErrNotFound)
		}
		existing, err := orderRepo.ListByRequest(ctx, requestID)
		if err != nil {
			return err
		}
		orders := make([]entity.MoveOrder, 0, len(existing))
		for _, o := range existing {
			orders = append(orders, *o)
		}
		created, err = planning.FillRequest(*request, orders)
		if err != nil {
			return err
		}
		if route, err = routeRepo.GetByID(ctx, request.RouteID); err != nil {
			return err
		}
		return orderRepo.Create(ctx, &created)
	})
	if err != nil {
		return nil, err
	}
	res := toMoveOrderResponse(&created, route)
	return &res, nil
}
