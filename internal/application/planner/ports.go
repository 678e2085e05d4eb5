package planner

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Abastecimiento-api/internal/domain/planning"
	"github.com/jhoicas/Abastecimiento-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando repositorios atados a esa tx.
// Garantiza atomicidad para la ejecución de órdenes y la creación de solicitudes.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		stockRepo repository.StockPointRepository,
		routeRepo repository.SupplyRouteRepository,
		requestRepo repository.MoveRequestRepository,
		orderRepo repository.MoveOrderRepository,
	) error) error
}

// ProjectionReport datos necesarios para imprimir la proyección de un punto de stock.
type ProjectionReport struct {
	ProductName string
	Price       decimal.Decimal
	Projection  *planning.Projection
}

// ProjectionPDFGenerator genera el informe PDF de una proyección.
type ProjectionPDFGenerator interface {
	GenerateProjectionPDF(ctx context.Context, report ProjectionReport) ([]byte, error)
}
