// Package planning contiene el motor de promesa de entrega: filtros de órdenes,
// proyección de inventario, ATP, CTP y las reglas de ejecución de movimientos.
//
// Todas las funciones trabajan sobre un entity.Network (instantánea de solo lectura)
// y una fecha de referencia explícita (asOf); ninguna lee el reloj del sistema.
package planning

import (
	"fmt"
	"time"

	"github.com/jhoicas/Abastecimiento-api/internal/domain"
	"github.com/jhoicas/Abastecimiento-api/internal/domain/entity"
)

// Límites del horizonte de proyección, en días a partir de asOf.
const (
	DefaultHorizon = 365
	MinHorizon     = 1
	MaxHorizon     = 730
)

// Projection tabla diaria de un punto de stock para [Start, Start+Horizon].
// Cada columna tiene Horizon+1 posiciones; el índice d corresponde a Start+d días.
// Demand se guarda en negativo para que la suma sea uniforme.
type Projection struct {
	StockPointID   int64
	StockPointName string
	Start          time.Time
	Horizon        int
	StartingStock  int64

	Demand    []int64
	Supply    []int64
	Inventory []int64
	ATP       []int64
	CTP       []int64

	// Órdenes pendientes consideradas (salientes primero, luego entrantes).
	Included []entity.MoveOrder
}

// Row fila de la tabla de proyección para la capa de presentación.
type Row struct {
	Date      time.Time
	Demand    int64
	Supply    int64
	Inventory int64
	ATP       int64
	CTP       int64
}

// Len número de días de la tabla (Horizon+1).
func (p *Projection) Len() int { return p.Horizon + 1 }

// Date fecha del índice d.
func (p *Projection) Date(d int) time.Time { return entity.AddDays(p.Start, d) }

// End última fecha cubierta.
func (p *Projection) End() time.Time { return p.Date(p.Horizon) }

// Rows materializa la tabla. Las columnas aún no calculadas salen en cero.
func (p *Projection) Rows() []Row {
	rows := make([]Row, p.Len())
	for d := range rows {
		rows[d] = Row{
			Date:      p.Date(d),
			Demand:    p.Demand[d],
			Supply:    p.Supply[d],
			Inventory: p.Inventory[d],
			ATP:       at(p.ATP, d),
			CTP:       at(p.CTP, d),
		}
	}
	return rows
}

func at(col []int64, d int) int64 {
	if d < len(col) {
		return col[d]
	}
	return 0
}

// ValidateHorizon verifica que el horizonte esté en [MinHorizon, MaxHorizon].
func ValidateHorizon(horizon int) error {
	if horizon < MinHorizon || horizon > MaxHorizon {
		return fmt.Errorf("horizonte %d (válido %d..%d): %w", horizon, MinHorizon, MaxHorizon, domain.ErrInvalidHorizon)
	}
	return nil
}

// ProjectInventory construye demanda, oferta e inventario proyectado a partir de las
// órdenes pendientes del punto de stock. El inventario no se recorta en cero:
// un valor negativo señala un faltante futuro.
func ProjectInventory(net *entity.Network, stockPointID int64, asOf time.Time, horizon int) (*Projection, error) {
	if err := ValidateHorizon(horizon); err != nil {
		return nil, err
	}
	sp, ok := net.StockPoint(stockPointID)
	if !ok {
		return nil, fmt.Errorf("stock point %d: %w", stockPointID, domain.ErrNotFound)
	}
	start := entity.Day(asOf)
	end := entity.AddDays(start, horizon)

	receipts, err := OrderFilter(net, sp.ID, start, end, true, false, StatusPending)
	if err != nil {
		return nil, err
	}
	sends, err := OrderFilter(net, sp.ID, start, end, false, true, StatusPending)
	if err != nil {
		return nil, err
	}

	p := &Projection{
		StockPointID:   sp.ID,
		StockPointName: sp.Name,
		Start:          start,
		Horizon:        horizon,
		StartingStock:  sp.CurrentStock,
		Demand:         make([]int64, horizon+1),
		Supply:         make([]int64, horizon+1),
		Inventory:      make([]int64, horizon+1),
		Included:       append(append([]entity.MoveOrder{}, sends...), receipts...),
	}
	for _, o := range receipts {
		p.Supply[entity.DaysBetween(start, o.OrderDate)] += o.Quantity
	}
	for _, o := range sends {
		p.Demand[entity.DaysBetween(start, o.OrderDate)] -= o.Quantity
	}

	level := sp.CurrentStock
	for d := range p.Inventory {
		level += p.Supply[d] + p.Demand[d]
		p.Inventory[d] = level
	}
	return p, nil
}

// ProjectATP proyecta el inventario y agrega la columna ATP.
func ProjectATP(net *entity.Network, stockPointID int64, asOf time.Time, horizon int) (*Projection, error) {
	p, err := ProjectInventory(net, stockPointID, asOf, horizon)
	if err != nil {
		return nil, err
	}
	p.ATP = SuffixMin(p.Inventory)
	return p, nil
}

// Project construye la tabla completa: demanda, oferta, inventario, ATP y CTP
// considerando todas las rutas entrantes del punto de stock.
func Project(net *entity.Network, stockPointID int64, asOf time.Time, horizon int) (*Projection, error) {
	p, err := ProjectATP(net, stockPointID, asOf, horizon)
	if err != nil {
		return nil, err
	}
	ctp, err := CTP(p, IncomingRoutes(net, stockPointID))
	if err != nil {
		return nil, err
	}
	p.CTP = ctp
	return p, nil
}

// SuffixMin devuelve out[i] = min(values[i:]) en una pasada de derecha a izquierda.
func SuffixMin(values []int64) []int64 {
	out := make([]int64, len(values))
	for i := len(values) - 1; i >= 0; i-- {
		out[i] = values[i]
		if i+1 < len(values) && out[i+1] < out[i] {
			out[i] = out[i+1]
		}
	}
	return out
}

// CumulativeSum devuelve la suma prefija de values.
func CumulativeSum(values []int64) []int64 {
	out := make([]int64, len(values))
	var acc int64
	for i, v := range values {
		acc += v
		out[i] = acc
	}
	return out
}
