package planning

import (
	"fmt"

	"github.com/jhoicas/Abastecimiento-api/internal/domain"
	"github.com/jhoicas/Abastecimiento-api/internal/domain/entity"
)

// PotentialCapacity suma, para cada día 0..days-1, la capacidad acumulada (Capability)
// de todas las rutas.
func PotentialCapacity(routes []entity.SupplyRoute, days int) ([]int64, error) {
	total := make([]int64, days)
	for _, r := range routes {
		for d := range total {
			c, err := r.Capability(d)
			if err != nil {
				return nil, fmt.Errorf("route %d: %w", r.ID, err)
			}
			total[d] += c
		}
	}
	return total, nil
}

// UnusedCapacity capacidad potencial no consumida por la oferta ya comprometida,
// con la pasada de corrección aplicada.
//
// Recorriendo desde el horizonte hacia atrás, en el primer día con capacidad libre <= 0
// ese día y todos los anteriores quedan en 0: la capacidad previa a un día saturado está
// reservada para esa entrega; solo es libre la que queda después del último día saturado.
func UnusedCapacity(potential, supply []int64) []int64 {
	cumSupply := CumulativeSum(supply)
	unused := make([]int64, len(potential))
	for d := range potential {
		if free := potential[d] - cumSupply[d]; free > 0 {
			unused[d] = free
		}
	}
	for d := len(unused) - 1; d >= 0; d-- {
		if unused[d] <= 0 {
			clear(unused[:d+1])
			break
		}
	}
	return unused
}

// CTP calcula la columna Capable-To-Promise de p usando las rutas indicadas.
// Requiere p.ATP calculado. Sin rutas, CTP = ATP.
func CTP(p *Projection, routes []entity.SupplyRoute) ([]int64, error) {
	if len(p.ATP) != p.Len() {
		p.ATP = SuffixMin(p.Inventory)
	}
	if len(routes) == 0 {
		return append([]int64(nil), p.ATP...), nil
	}
	for _, r := range routes {
		if r.ReceiverID != p.StockPointID {
			return nil, fmt.Errorf("route %d hacia %d, proyección de %d: %w",
				r.ID, r.ReceiverID, p.StockPointID, domain.ErrRouteDirectionMismatch)
		}
	}
	potential, err := PotentialCapacity(routes, p.Len())
	if err != nil {
		return nil, err
	}
	unused := UnusedCapacity(potential, p.Supply)

	potentialInventory := make([]int64, p.Len())
	for d := range potentialInventory {
		potentialInventory[d] = p.Inventory[d] + unused[d]
	}
	ctp := SuffixMin(potentialInventory)
	for d := range ctp {
		ctp[d] = max(ctp[d], p.ATP[d])
	}
	return ctp, nil
}

// ProjectRouteCTP calcula el CTP de p considerando una sola ruta. Solo tiene sentido desde
// el lado receptor: si el punto proyectado no es el receptor devuelve ErrRouteDirectionMismatch.
func ProjectRouteCTP(net *entity.Network, p *Projection, routeID int64) ([]int64, error) {
	route, ok := net.Route(routeID)
	if !ok {
		return nil, fmt.Errorf("route %d: %w", routeID, domain.ErrNotFound)
	}
	return CTP(p, []entity.SupplyRoute{route})
}
