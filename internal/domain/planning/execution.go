package planning

import (
	"fmt"

	"github.com/jhoicas/Abastecimiento-api/internal/domain"
	"github.com/jhoicas/Abastecimiento-api/internal/domain/entity"
)

// ApplyMove ejecuta la transición Pending → Completed de una orden sobre copias de sus
// entidades. Las precondiciones se verifican en orden y, si alguna falla, no se modifica nada:
//  1. la orden está pendiente (ErrAlreadyExecuted);
//  2. cantidad >= 0: el emisor tiene al menos la cantidad (ErrInsufficientStock);
//  3. cantidad < 0 (reversa): el receptor tiene al menos |cantidad| (ErrInsufficientStock).
//
// El llamador persiste los cuatro valores dentro de una misma transacción.
func ApplyMove(order *entity.MoveOrder, request *entity.MoveRequest, sender, receiver *entity.StockPoint) error {
	if order.Status != entity.OrderPending {
		return fmt.Errorf("order %d: %w", order.ID, domain.ErrAlreadyExecuted)
	}
	if order.RequestID != request.ID {
		return fmt.Errorf("order %d no pertenece a la solicitud %d: %w", order.ID, request.ID, domain.ErrInvalidInput)
	}
	q := order.Quantity
	if q >= 0 && sender.CurrentStock < q {
		return fmt.Errorf("order %d: emisor %d tiene %d, requiere %d: %w",
			order.ID, sender.ID, sender.CurrentStock, q, domain.ErrInsufficientStock)
	}
	if q < 0 && receiver.CurrentStock < -q {
		return fmt.Errorf("order %d: reversa, receptor %d tiene %d, requiere %d: %w",
			order.ID, receiver.ID, receiver.CurrentStock, -q, domain.ErrInsufficientStock)
	}

	sender.CurrentStock -= q
	receiver.CurrentStock += q
	order.Status = entity.OrderCompleted
	request.QuantityDelivered += q
	return nil
}
