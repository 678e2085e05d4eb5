package dto

import (
	"github.com/shopspring/decimal"
)

// CreateProductRequest entrada para crear un producto. Price con dos decimales.
type CreateProductRequest struct {
	Name  string          `json:"name" validate:"required,min=1,max=200"`
	Price decimal.Decimal `json:"price"`
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID    int64           `json:"id"`
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
}

// ProductListResponse lista de productos.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
}

// PriceFromCents convierte la unidad menor almacenada a decimal con dos posiciones.
func PriceFromCents(cents int64) decimal.Decimal {
	return decimal.New(cents, -2)
}

// PriceToCents redondea a centavos; false si el precio es negativo o no cabe en int64.
func PriceToCents(price decimal.Decimal) (int64, bool) {
	if price.IsNegative() {
		return 0, false
	}
	cents := price.Shift(2).Round(0).BigInt()
	if !cents.IsInt64() {
		return 0, false
	}
	return cents.Int64(), true
}
