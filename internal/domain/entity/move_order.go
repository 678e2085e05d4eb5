package entity

import "time"

// OrderStatus estado de una MoveOrder. Pending → Completed es la única transición.
type OrderStatus int

const (
	OrderPending   OrderStatus = 0
	OrderCompleted OrderStatus = 1
)

func (s OrderStatus) String() string {
	switch s {
	case OrderPending:
		return "pending"
	case OrderCompleted:
		return "completed"
	}
	return "invalid"
}

// MoveOrder es un movimiento concreto planificado para OrderDate.
// Quantity negativa representa una reversa (del receptor hacia el emisor).
type MoveOrder struct {
	ID        int64
	RequestID int64
	Quantity  int64
	OrderDate time.Time
	Status    OrderStatus
}

func (o MoveOrder) Kind() Kind      { return KindMoveOrder }
func (o MoveOrder) EntityID() int64 { return o.ID }

// IsPending indica si la orden aún no se ha ejecutado.
func (o MoveOrder) IsPending() bool { return o.Status == OrderPending }
