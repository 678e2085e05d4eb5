package dto

// CreateStockPointRequest entrada para crear un punto de stock.
type CreateStockPointRequest struct {
	ProductID    int64  `json:"product_id" validate:"required"`
	Name         string `json:"name" validate:"required,min=1,max=200"`
	CurrentStock int64  `json:"current_stock" validate:"min=0"`
}

// StockPointResponse salida de un punto de stock.
type StockPointResponse struct {
	ID           int64  `json:"id"`
	ProductID    int64  `json:"product_id"`
	Name         string `json:"name"`
	CurrentStock int64  `json:"current_stock"`
}

// CreateRouteRequest entrada para crear una ruta de suministro.
// LeadTime nil toma el valor por defecto (2 días).
type CreateRouteRequest struct {
	SenderID   int64 `json:"sender_id" validate:"required"`
	ReceiverID int64 `json:"receiver_id" validate:"required"`
	Capacity   int64 `json:"capacity" validate:"min=0"`
	LeadTime   *int  `json:"lead_time" validate:"omitempty,min=0"`
}

// RouteResponse salida de una ruta de suministro.
type RouteResponse struct {
	ID         int64 `json:"id"`
	ProductID  int64 `json:"product_id"`
	SenderID   int64 `json:"sender_id"`
	ReceiverID int64 `json:"receiver_id"`
	Capacity   int64 `json:"capacity"`
	LeadTime   int   `json:"lead_time"`
}
