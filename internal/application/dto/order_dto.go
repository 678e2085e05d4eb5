package dto

// CreateMoveRequestRequest entrada para registrar una solicitud sobre una ruta.
type CreateMoveRequestRequest struct {
	DeliveryOffsetDays int   `json:"delivery_offset_days" validate:"min=0"`
	Quantity           int64 `json:"quantity" validate:"required"`
}

// MoveRequestResponse salida de una solicitud de movimiento.
type MoveRequestResponse struct {
	ID                int64  `json:"id"`
	RouteID           int64  `json:"route_id"`
	Quantity          int64  `json:"quantity"`
	RegisteredOn      string `json:"registered_on"`
	RequestedDelivery string `json:"requested_delivery"`
	QuantityDelivered int64  `json:"quantity_delivered"`
}

// MoveOrderResponse salida de una orden de movimiento.
type MoveOrderResponse struct {
	ID         int64  `json:"id"`
	RequestID  int64  `json:"request_id"`
	RouteID    int64  `json:"route_id,omitempty"`
	Quantity   int64  `json:"quantity"`
	OrderDate  string `json:"order_date"`
	Status     string `json:"status"`
	SenderID   int64  `json:"sender_id,omitempty"`
	ReceiverID int64  `json:"receiver_id,omitempty"`
}

// OrderListResponse órdenes de un punto de stock separadas por dirección.
type OrderListResponse struct {
	StockPointID int64               `json:"stock_point_id"`
	From         string              `json:"from"`
	To           string              `json:"to"`
	Incoming     []MoveOrderResponse `json:"incoming"`
	Outgoing     []MoveOrderResponse `json:"outgoing"`
}
