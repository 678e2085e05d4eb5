package dto

// ExecutionResult resultado de ejecutar una orden.
type ExecutionResult struct {
	RunID         string `json:"run_id"`
	OrderID       int64  `json:"order_id"`
	Quantity      int64  `json:"quantity"`
	SenderID      int64  `json:"sender_id"`
	SenderStock   int64  `json:"sender_stock"`
	ReceiverID    int64  `json:"receiver_id"`
	ReceiverStock int64  `json:"receiver_stock"`
}

// ExecutionFailure orden que no pudo ejecutarse dentro de un lote.
type ExecutionFailure struct {
	OrderID int64  `json:"order_id"`
	Reason  string `json:"reason"`
}

// BatchExecutionResponse informe de la ejecución de las órdenes programadas de un día.
type BatchExecutionResponse struct {
	RunID    string             `json:"run_id"`
	Day      string             `json:"day"`
	Executed []ExecutionResult  `json:"executed"`
	Failed   []ExecutionFailure `json:"failed"`
}
