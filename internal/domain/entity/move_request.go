package entity

import "time"

// MoveRequest es una solicitud de movimiento sobre una ruta, a entregar en RequestedDelivery.
// QuantityDelivered solo aumenta al ejecutar órdenes asociadas.
type MoveRequest struct {
	ID                int64
	RouteID           int64
	Quantity          int64
	RegisteredOn      time.Time
	RequestedDelivery time.Time
	QuantityDelivered int64
}

func (m MoveRequest) Kind() Kind      { return KindMoveRequest }
func (m MoveRequest) EntityID() int64 { return m.ID }

// UnansweredQuantity es la parte de la solicitud que aún no cubre ninguna orden.
// orders debe contener las órdenes de esta solicitud (las demás se ignoran).
func (m MoveRequest) UnansweredQuantity(orders []MoveOrder) int64 {
	covered := int64(0)
	for _, o := range orders {
		if o.RequestID == m.ID {
			covered += o.Quantity
		}
	}
	return m.Quantity - covered
}
