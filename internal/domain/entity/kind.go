package entity

import "fmt"

// Kind identifica el tipo de entidad del modelo de cadena de suministro.
// Los switch sobre Kind deben ser exhaustivos (ver Network.Add y los catálogos de persistencia).
type Kind int

const (
	KindProduct Kind = iota + 1
	KindStockPoint
	KindSupplyRoute
	KindMoveRequest
	KindMoveOrder
)

// Kinds devuelve todos los tipos en orden de dependencia (padres primero).
func Kinds() []Kind {
	return []Kind{KindProduct, KindStockPoint, KindSupplyRoute, KindMoveRequest, KindMoveOrder}
}

func (k Kind) String() string {
	switch k {
	case KindProduct:
		return "product"
	case KindStockPoint:
		return "stock_point"
	case KindSupplyRoute:
		return "supply_route"
	case KindMoveRequest:
		return "move_request"
	case KindMoveOrder:
		return "move_order"
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// Entity es la unión etiquetada sobre las cinco entidades del modelo.
type Entity interface {
	Kind() Kind
	EntityID() int64
}
