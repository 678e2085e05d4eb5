package entity

// StockPoint es una ubicación o etapa donde el inventario de un producto reposa físicamente.
// CurrentStock nunca es negativo y solo cambia al ejecutar una MoveOrder.
type StockPoint struct {
	ID           int64
	ProductID    int64
	Name         string
	CurrentStock int64
}

func (s StockPoint) Kind() Kind      { return KindStockPoint }
func (s StockPoint) EntityID() int64 { return s.ID }

// NameClash indica si o es otro punto del mismo producto con el mismo nombre.
// Productos distintos pueden repetir nombres de etapa ("Finished goods").
func (s StockPoint) NameClash(o StockPoint) bool {
	return s.ID != o.ID && s.ProductID == o.ProductID && s.Name == o.Name
}
