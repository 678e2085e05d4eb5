package entity

import "github.com/jhoicas/Abastecimiento-api/internal/domain"

// DefaultLeadTime días de retraso asignados a una ruta nueva si no se indican.
const DefaultLeadTime = 2

// SupplyRoute es una arista dirigida entre dos puntos de stock del mismo producto.
// Capacity: unidades entregables por día. LeadTime: días antes de que la capacidad sea utilizable.
type SupplyRoute struct {
	ID         int64
	ProductID  int64
	SenderID   int64
	ReceiverID int64
	Capacity   int64
	LeadTime   int
}

func (r SupplyRoute) Kind() Kind      { return KindSupplyRoute }
func (r SupplyRoute) EntityID() int64 { return r.ID }

// Capability devuelve la cantidad acumulada que la ruta puede entregar hasta el día indicado
// (día 0 = hoy). No es lo mismo que Capacity: nada llega antes de cumplir el lead time.
func (r SupplyRoute) Capability(day int) (int64, error) {
	if day < 0 {
		return 0, domain.ErrArgumentType
	}
	if day < r.LeadTime {
		return 0, nil
	}
	return r.Capacity * int64(day+1-r.LeadTime), nil
}

// Validate verifica las restricciones propias de la ruta.
func (r SupplyRoute) Validate() error {
	if r.SenderID == r.ReceiverID || r.Capacity < 0 || r.LeadTime < 0 {
		return domain.ErrInvalidInput
	}
	return nil
}
