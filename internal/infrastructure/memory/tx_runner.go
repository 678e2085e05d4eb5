package memory

import (
	"context"

	"github.com/jhoicas/Abastecimiento-api/internal/domain/repository"
)

// TxRunner ejecuta callbacks sobre una copia de trabajo del almacén con el mutex tomado.
// Si fn devuelve error la copia se descarta; si no, reemplaza al estado publicado.
type TxRunner struct {
	s *Store
}

// NewTxRunner construye el runner para el almacén.
func NewTxRunner(s *Store) *TxRunner {
	return &TxRunner{s: s}
}

// Run inicia la transacción, ejecuta fn con repos atados a la copia y la confirma o descarta.
func (r *TxRunner) Run(ctx context.Context, fn func(
	stockRepo repository.StockPointRepository,
	routeRepo repository.SupplyRouteRepository,
	requestRepo repository.MoveRequestRepository,
	orderRepo repository.MoveOrderRepository,
) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	b := base{s: r.s, tx: r.s.data.clone()}
	if err := fn(&StockPointRepo{b}, &SupplyRouteRepo{b}, &MoveRequestRepo{b}, &MoveOrderRepo{b}); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	r.s.data = b.tx
	return nil
}
