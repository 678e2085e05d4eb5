package planner

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Abastecimiento-api/internal/application/dto"
	"github.com/jhoicas/Abastecimiento-api/internal/domain"
	"github.com/jhoicas/Abastecimiento-api/internal/domain/entity"
	"github.com/jhoicas/Abastecimiento-api/internal/domain/planning"
	"github.com/jhoicas/Abastecimiento-api/internal/domain/repository"
	"github.com/jhoicas/Abastecimiento-api/pkg/logger"
)

// ExecuteMoveUseCase ejecuta órdenes de movimiento de forma transaccional: bloquea orden,
// solicitud y los dos puntos de stock (SELECT FOR UPDATE), aplica la regla de ejecución
// y hace Commit o Rollback.
type ExecuteMoveUseCase struct {
	txRunner TxRunner
	orders   repository.MoveOrderRepository
	log      *logger.Logger
}

// NewExecuteMoveUseCase construye el caso de uso.
func NewExecuteMoveUseCase(txRunner TxRunner, orders repository.MoveOrderRepository, log *logger.Logger) *ExecuteMoveUseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &ExecuteMoveUseCase{txRunner: txRunner, orders: orders, log: log.Component("execution")}
}

// Execute ejecuta una orden pendiente en su propia transacción.
func (uc *ExecuteMoveUseCase) Execute(ctx context.Context, orderID int64) (*dto.ExecutionResult, error) {
	return uc.execute(ctx, uuid.New().String(), orderID)
}

// ExecuteScheduled ejecuta las órdenes pendientes fechadas en day, cada una en su transacción.
// Los fallos individuales quedan en el informe; un error al listar aborta el lote. Si ctx se
// cancela a mitad, devuelve el informe parcial de lo ya confirmado junto con el error.
func (uc *ExecuteMoveUseCase) ExecuteScheduled(ctx context.Context, day time.Time) (*dto.BatchExecutionResponse, error) {
	day = entity.Day(day)
	runID := uuid.New().String()
	orders, err := uc.orders.ListScheduled(ctx, day)
	if err != nil {
		return nil, fmt.Errorf("list scheduled orders: %w", err)
	}

	report := &dto.BatchExecutionResponse{
		RunID:    runID,
		Day:      dto.FormatDate(day),
		Executed: []dto.ExecutionResult{},
		Failed:   []dto.ExecutionFailure{},
	}
	for _, o := range orders {
		if err := ctx.Err(); err != nil {
			uc.log.Warn().Err(err).
				Str("run_id", runID).
				Int("executed", len(report.Executed)).
				Msg("lote interrumpido")
			return report, err
		}
		res, err := uc.execute(ctx, runID, o.ID)
		if err != nil {
			report.Failed = append(report.Failed, dto.ExecutionFailure{OrderID: o.ID, Reason: err.Error()})
			continue
		}
		report.Executed = append(report.Executed, *res)
	}
	uc.log.Info().
		Str("run_id", runID).
		Str("day", report.Day).
		Int("executed", len(report.Executed)).
		Int("failed", len(report.Failed)).
		Msg("lote de órdenes programadas")
	return report, nil
}

func (uc *ExecuteMoveUseCase) execute(ctx context.Context, runID string, orderID int64) (*dto.ExecutionResult, error) {
	var result dto.ExecutionResult
	err := uc.txRunner.Run(ctx, func(
		stockRepo repository.StockPointRepository,
		routeRepo repository.SupplyRouteRepository,
		requestRepo repository.MoveRequestRepository,
		orderRepo repository.MoveOrderRepository,
	) error {
		order, err := orderRepo.GetForUpdate(ctx, orderID)
		if err != nil {
			return err
		}
		if order == nil {
			return fmt.Errorf("move order %d: %w", orderID, domain.ErrNotFound)
		}
		request, err := requestRepo.GetForUpdate(ctx, order.RequestID)
		if err != nil {
			return err
		}
		if request == nil {
			return fmt.Errorf("move request %d: %w", order.RequestID, domain.ErrNotFound)
		}
		route, err := routeRepo.GetByID(ctx, request.RouteID)
		if err != nil {
			return err
		}
		if route == nil {
			return fmt.Errorf("route %d: %w", request.RouteID, domain.ErrNotFound)
		}
		sender, receiver, err := lockPair(ctx, stockRepo, route.SenderID, route.ReceiverID)
		if err != nil {
			return err
		}

		if err := planning.ApplyMove(order, request, sender, receiver); err != nil {
			return err
		}

		if err := stockRepo.UpdateStock(ctx, sender.ID, sender.CurrentStock); err != nil {
			return err
		}
		if err := stockRepo.UpdateStock(ctx, receiver.ID, receiver.CurrentStock); err != nil {
			return err
		}
		if err := requestRepo.UpdateDelivered(ctx, request.ID, request.QuantityDelivered); err != nil {
			return err
		}
		if err := orderRepo.MarkCompleted(ctx, order.ID); err != nil {
			return err
		}

		result = dto.ExecutionResult{
			RunID:         runID,
			OrderID:       order.ID,
			Quantity:      order.Quantity,
			SenderID:      sender.ID,
			SenderStock:   sender.CurrentStock,
			ReceiverID:    receiver.ID,
			ReceiverStock: receiver.CurrentStock,
		}
		return nil
	})
	if err != nil {
		uc.log.Warn().Err(err).Str("run_id", runID).Int64("order_id", orderID).Msg("orden no ejecutada")
		return nil, err
	}
	uc.log.Info().
		Str("run_id", runID).
		Int64("order_id", result.OrderID).
		Int64("quantity", result.Quantity).
		Int64("sender_id", result.SenderID).
		Int64("receiver_id", result.ReceiverID).
		Msg("orden ejecutada")
	return &result, nil
}

// lockPair bloquea los dos puntos en orden ascendente de ID para evitar interbloqueos.
func lockPair(ctx context.Context, repo repository.StockPointRepository, senderID, receiverID int64) (sender, receiver *entity.StockPoint, err error) {
	first, second := senderID, receiverID
	if second < first {
		first, second = second, first
	}
	locked := make(map[int64]*entity.StockPoint, 2)
	for _, id := range []int64{first, second} {
		sp, err := repo.GetForUpdate(ctx, id)
		if err != nil {
			return nil, nil, err
		}
		if sp == nil {
			return nil, nil, fmt.Errorf("stock point %d: %w", id, domain.ErrNotFound)
		}
		locked[id] = sp
	}
	return locked[senderID], locked[receiverID], nil
}
