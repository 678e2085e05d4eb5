package planning

import (
	"fmt"
	"time"

	"github.com/jhoicas/Abastecimiento-api/internal/domain"
	"github.com/jhoicas/Abastecimiento-api/internal/domain/entity"
)

// AddRequest construye una solicitud sobre la ruta con entrega en asOf + deliveryOffsetDays.
// No persiste nada; el llamador guarda la solicitud.
func AddRequest(route entity.SupplyRoute, deliveryOffsetDays int, quantity int64, asOf time.Time) entity.MoveRequest {
	registered := entity.Day(asOf)
	return entity.MoveRequest{
		RouteID:           route.ID,
		Quantity:          quantity,
		RegisteredOn:      registered,
		RequestedDelivery: entity.AddDays(registered, deliveryOffsetDays),
	}
}

// FillRequest construye la orden que cubre la cantidad no respondida de la solicitud,
// fechada en la entrega solicitada. orders son las órdenes existentes de la solicitud.
// Si no queda nada por cubrir devuelve ErrInvalidInput.
func FillRequest(request entity.MoveRequest, orders []entity.MoveOrder) (entity.MoveOrder, error) {
	quantity := request.UnansweredQuantity(orders)
	if quantity == 0 {
		return entity.MoveOrder{}, fmt.Errorf("request %d sin cantidad pendiente: %w", request.ID, domain.ErrInvalidInput)
	}
	return entity.MoveOrder{
		RequestID: request.ID,
		Quantity:  quantity,
		OrderDate: entity.Day(request.RequestedDelivery),
		Status:    entity.OrderPending,
	}, nil
}
