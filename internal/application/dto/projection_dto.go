package dto

// ProjectionRow fila diaria de la tabla de proyección.
type ProjectionRow struct {
	Date      string `json:"date"`
	Demand    int64  `json:"demand"`
	Supply    int64  `json:"supply"`
	Inventory int64  `json:"inventory"`
	ATP       int64  `json:"atp"`
	CTP       int64  `json:"ctp"`
}

// ProjectionResponse tabla de proyección de un punto de stock.
type ProjectionResponse struct {
	StockPointID   int64           `json:"stock_point_id"`
	StockPointName string          `json:"stock_point_name"`
	AsOf           string          `json:"as_of"`
	Horizon        int             `json:"horizon"`
	StartingStock  int64           `json:"starting_stock"`
	Rows           []ProjectionRow `json:"rows"`
}

// StockPointSummary resumen de un punto de stock dentro del resumen por producto.
type StockPointSummary struct {
	StockPointID   int64  `json:"stock_point_id"`
	StockPointName string `json:"stock_point_name"`
	CurrentStock   int64  `json:"current_stock"`
	ATP            int64  `json:"atp"`           // disponible hoy
	CTP            int64  `json:"ctp"`           // comprometible hoy
	MinInventory   int64  `json:"min_inventory"` // mínimo del horizonte
	FirstShortage  string `json:"first_shortage,omitempty"`
}

// ProductOverviewResponse proyección resumida de todos los puntos de un producto.
type ProductOverviewResponse struct {
	ProductID   int64               `json:"product_id"`
	ProductName string              `json:"product_name"`
	AsOf        string              `json:"as_of"`
	Horizon     int                 `json:"horizon"`
	StockPoints []StockPointSummary `json:"stock_points"`
}
