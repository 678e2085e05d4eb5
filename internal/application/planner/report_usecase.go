package planner

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/Abastecimiento-api/internal/application/dto"
	"github.com/jhoicas/Abastecimiento-api/internal/domain"
	"github.com/jhoicas/Abastecimiento-api/internal/domain/planning"
	"github.com/jhoicas/Abastecimiento-api/internal/domain/repository"
)

// ReportUseCase arma el informe imprimible de la proyección.
type ReportUseCase struct {
	catalog        repository.Catalog
	generator      ProjectionPDFGenerator
	defaultHorizon int
}

func NewReportUseCase(catalog repository.Catalog, generator ProjectionPDFGenerator, defaultHorizon int) *ReportUseCase {
	if defaultHorizon == 0 {
		defaultHorizon = planning.DefaultHorizon
	}
	return &ReportUseCase{catalog: catalog, generator: generator, defaultHorizon: defaultHorizon}
}

// ProjectionPDF proyecta el punto de stock y devuelve el PDF generado.
func (uc *ReportUseCase) ProjectionPDF(ctx context.Context, stockPointID int64, asOf time.Time, horizon int) ([]byte, error) {
	if horizon == 0 {
		horizon = uc.defaultHorizon
	}
	if err := planning.ValidateHorizon(horizon); err != nil {
		return nil, err
	}
	net, err := LoadNetwork(ctx, uc.catalog)
	if err != nil {
		return nil, err
	}
	p, err := planning.Project(net, stockPointID, asOf, horizon)
	if err != nil {
		return nil, err
	}
	sp, _ := net.StockPoint(stockPointID)
	product, ok := net.Product(sp.ProductID)
	if !ok {
		return nil, fmt.Errorf("product %d: %w", sp.ProductID, domain.ErrNotFound)
	}
	return uc.generator.GenerateProjectionPDF(ctx, ProjectionReport{
		ProductName: product.Name,
		Price:       dto.PriceFromCents(product.Price),
		Projection:  p,
	})
}
