package planning

import (
	"fmt"
	"strings"
	"time"

	"github.com/jhoicas/Abastecimiento-api/internal/domain"
	"github.com/jhoicas/Abastecimiento-api/internal/domain/entity"
)

// StatusFilter restringe las órdenes por estado de ejecución.
type StatusFilter int

const (
	StatusAny StatusFilter = iota
	StatusPending
	StatusCompleted
)

// ParseStatusFilter interpreta "pending", "completed" o vacío/"all".
func ParseStatusFilter(s string) (StatusFilter, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "all", "any":
		return StatusAny, nil
	case "pending":
		return StatusPending, nil
	case "completed":
		return StatusCompleted, nil
	}
	return StatusAny, fmt.Errorf("estado %q: %w", s, domain.ErrInvalidInput)
}

func (f StatusFilter) match(o entity.MoveOrder) bool {
	switch f {
	case StatusPending:
		return o.Status == entity.OrderPending
	case StatusCompleted:
		return o.Status == entity.OrderCompleted
	}
	return true
}

// IncomingRoutes rutas cuyo receptor es el punto de stock.
func IncomingRoutes(net *entity.Network, stockPointID int64) []entity.SupplyRoute {
	var out []entity.SupplyRoute
	for _, r := range net.Routes() {
		if r.ReceiverID == stockPointID {
			out = append(out, r)
		}
	}
	return out
}

// OutgoingRoutes rutas cuyo emisor es el punto de stock.
func OutgoingRoutes(net *entity.Network, stockPointID int64) []entity.SupplyRoute {
	var out []entity.SupplyRoute
	for _, r := range net.Routes() {
		if r.SenderID == stockPointID {
			out = append(out, r)
		}
	}
	return out
}

// IncomingOrders órdenes cuya ruta tiene al punto de stock como receptor.
func IncomingOrders(net *entity.Network, stockPointID int64) []entity.MoveOrder {
	return ordersWhere(net, func(r entity.SupplyRoute) bool { return r.ReceiverID == stockPointID })
}

// OutgoingOrders órdenes cuya ruta tiene al punto de stock como emisor.
func OutgoingOrders(net *entity.Network, stockPointID int64) []entity.MoveOrder {
	return ordersWhere(net, func(r entity.SupplyRoute) bool { return r.SenderID == stockPointID })
}

func ordersWhere(net *entity.Network, keep func(entity.SupplyRoute) bool) []entity.MoveOrder {
	var out []entity.MoveOrder
	for _, o := range net.Orders() {
		route, ok := net.RouteOfOrder(o)
		if ok && keep(route) {
			out = append(out, o)
		}
	}
	return out
}

// FilterByDate conserva las órdenes con OrderDate dentro de [start, end] (intervalo cerrado).
func FilterByDate(orders []entity.MoveOrder, start, end time.Time) ([]entity.MoveOrder, error) {
	start, end = entity.Day(start), entity.Day(end)
	if end.Before(start) {
		return nil, fmt.Errorf("rango %s..%s: %w", start.Format(time.DateOnly), end.Format(time.DateOnly), domain.ErrInvalidRange)
	}
	var out []entity.MoveOrder
	for _, o := range orders {
		d := entity.Day(o.OrderDate)
		if !d.Before(start) && !d.After(end) {
			out = append(out, o)
		}
	}
	return out, nil
}

// FilterByStatus conserva las órdenes que coinciden con el filtro de estado.
func FilterByStatus(orders []entity.MoveOrder, status StatusFilter) []entity.MoveOrder {
	var out []entity.MoveOrder
	for _, o := range orders {
		if status.match(o) {
			out = append(out, o)
		}
	}
	return out
}

// PendingOrders atajo para FilterByStatus(orders, StatusPending).
func PendingOrders(orders []entity.MoveOrder) []entity.MoveOrder {
	return FilterByStatus(orders, StatusPending)
}

// CompletedOrders atajo para FilterByStatus(orders, StatusCompleted).
func CompletedOrders(orders []entity.MoveOrder) []entity.MoveOrder {
	return FilterByStatus(orders, StatusCompleted)
}

// OrderFilter combina dirección (entrantes y/o salientes), ventana de fechas y estado
// para un punto de stock. Las entrantes preceden a las salientes en el resultado.
func OrderFilter(
	net *entity.Network,
	stockPointID int64,
	start, end time.Time,
	incoming, outgoing bool,
	status StatusFilter,
) ([]entity.MoveOrder, error) {
	var orders []entity.MoveOrder
	if incoming {
		orders = append(orders, IncomingOrders(net, stockPointID)...)
	}
	if outgoing {
		orders = append(orders, OutgoingOrders(net, stockPointID)...)
	}
	orders, err := FilterByDate(orders, start, end)
	if err != nil {
		return nil, err
	}
	return FilterByStatus(orders, status), nil
}

// ScheduledOrders órdenes pendientes programadas exactamente para day.
func ScheduledOrders(net *entity.Network, day time.Time) []entity.MoveOrder {
	day = entity.Day(day)
	var out []entity.MoveOrder
	for _, o := range net.Orders() {
		if o.IsPending() && entity.Day(o.OrderDate).Equal(day) {
			out = append(out, o)
		}
	}
	return out
}
