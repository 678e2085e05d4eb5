package planner

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/jhoicas/Abastecimiento-api/internal/application/dto"
	"github.com/jhoicas/Abastecimiento-api/internal/domain"
	"github.com/jhoicas/Abastecimiento-api/internal/domain/entity"
	"github.com/jhoicas/Abastecimiento-api/internal/domain/planning"
	"github.com/jhoicas/Abastecimiento-api/internal/domain/repository"
)

// ProjectionUseCase consultas de solo lectura del motor: tabla de proyección,
// órdenes por punto de stock y resumen por producto.
type ProjectionUseCase struct {
	catalog        repository.Catalog
	orders         repository.MoveOrderRepository
	defaultHorizon int
	workers        int
}

// NewProjectionUseCase construye el caso de uso. defaultHorizon se usa cuando la consulta
// no indica horizonte; workers acota las proyecciones en paralelo del resumen.
func NewProjectionUseCase(
	catalog repository.Catalog,
	orders repository.MoveOrderRepository,
	defaultHorizon, workers int,
) *ProjectionUseCase {
	if defaultHorizon == 0 {
		defaultHorizon = planning.DefaultHorizon
	}
	if workers < 1 {
		workers = 1
	}
	return &ProjectionUseCase{catalog: catalog, orders: orders, defaultHorizon: defaultHorizon, workers: workers}
}

// DefaultHorizon horizonte aplicado cuando la consulta no indica uno.
func (uc *ProjectionUseCase) DefaultHorizon() int { return uc.defaultHorizon }

func (uc *ProjectionUseCase) horizon(h int) int {
	if h == 0 {
		return uc.defaultHorizon
	}
	return h
}

// Project calcula la proyección completa (inventario, ATP y CTP) del punto de stock.
// horizon 0 usa el horizonte por defecto.
func (uc *ProjectionUseCase) Project(ctx context.Context, stockPointID int64, asOf time.Time, horizon int) (*planning.Projection, error) {
	horizon = uc.horizon(horizon)
	if err := planning.ValidateHorizon(horizon); err != nil {
		return nil, err
	}
	net, err := LoadNetwork(ctx, uc.catalog)
	if err != nil {
		return nil, err
	}
	return planning.Project(net, stockPointID, asOf, horizon)
}

// Table proyección como DTO para la capa de presentación.
func (uc *ProjectionUseCase) Table(ctx context.Context, stockPointID int64, asOf time.Time, horizon int) (*dto.ProjectionResponse, error) {
	p, err := uc.Project(ctx, stockPointID, asOf, horizon)
	if err != nil {
		return nil, err
	}
	return toProjectionResponse(p), nil
}

// OrderQuery filtros para ListOrders. Incoming y Outgoing en false equivalen a ambos.
type OrderQuery struct {
	Incoming bool
	Outgoing bool
	From     time.Time
	To       time.Time
	Status   planning.StatusFilter
}

// ListOrders órdenes del punto de stock en la ventana cerrada [From, To], separadas por dirección.
func (uc *ProjectionUseCase) ListOrders(ctx context.Context, stockPointID int64, q OrderQuery) (*dto.OrderListResponse, error) {
	from, to := entity.Day(q.From), entity.Day(q.To)
	if to.Before(from) {
		return nil, domain.ErrInvalidRange
	}
	if _, err := uc.catalog.GetByID(ctx, entity.KindStockPoint, stockPointID); err != nil {
		return nil, err
	}
	if !q.Incoming && !q.Outgoing {
		q.Incoming, q.Outgoing = true, true
	}

	out := &dto.OrderListResponse{
		StockPointID: stockPointID,
		From:         dto.FormatDate(from),
		To:           dto.FormatDate(to),
		Incoming:     []dto.MoveOrderResponse{},
		Outgoing:     []dto.MoveOrderResponse{},
	}
	routes := map[int64]*entity.SupplyRoute{}
	collect := func(dir repository.Direction, dst *[]dto.MoveOrderResponse) error {
		orders, err := uc.orders.ListByStockPoint(ctx, stockPointID, dir, from, to)
		if err != nil {
			return err
		}
		for _, o := range orders {
			if !statusMatches(q.Status, o) {
				continue
			}
			route, err := uc.routeOf(ctx, routes, o)
			if err != nil {
				return err
			}
			*dst = append(*dst, toMoveOrderResponse(o, route))
		}
		return nil
	}
	if q.Incoming {
		if err := collect(repository.DirectionIncoming, &out.Incoming); err != nil {
			return nil, err
		}
	}
	if q.Outgoing {
		if err := collect(repository.DirectionOutgoing, &out.Outgoing); err != nil {
			return nil, err
		}
	}
	return out, nil
}

func statusMatches(f planning.StatusFilter, o *entity.MoveOrder) bool {
	return len(planning.FilterByStatus([]entity.MoveOrder{*o}, f)) == 1
}

func (uc *ProjectionUseCase) routeOf(ctx context.Context, cache map[int64]*entity.SupplyRoute, o *entity.MoveOrder) (*entity.SupplyRoute, error) {
	e, err := uc.catalog.GetByID(ctx, entity.KindMoveRequest, o.RequestID)
	if err != nil {
		return nil, err
	}
	req := e.(entity.MoveRequest)
	if r, ok := cache[req.RouteID]; ok {
		return r, nil
	}
	e, err = uc.catalog.GetByID(ctx, entity.KindSupplyRoute, req.RouteID)
	if err != nil {
		return nil, err
	}
	route := e.(entity.SupplyRoute)
	cache[req.RouteID] = &route
	return &route, nil
}

// Overview proyecta en paralelo todos los puntos de stock del producto sobre la misma instantánea.
func (uc *ProjectionUseCase) Overview(ctx context.Context, productID int64, asOf time.Time, horizon int) (*dto.ProductOverviewResponse, error) {
	horizon = uc.horizon(horizon)
	if err := planning.ValidateHorizon(horizon); err != nil {
		return nil, err
	}
	net, err := LoadNetwork(ctx, uc.catalog)
	if err != nil {
		return nil, err
	}
	product, ok := net.Product(productID)
	if !ok {
		return nil, fmt.Errorf("product %d: %w", productID, domain.ErrNotFound)
	}

	points := net.StockPointsOf(productID)
	summaries := make([]dto.StockPointSummary, len(points))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(uc.workers)
	for i, sp := range points {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			p, err := planning.Project(net, sp.ID, asOf, horizon)
			if err != nil {
				return fmt.Errorf("stock point %d: %w", sp.ID, err)
			}
			summaries[i] = summarize(sp, p)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &dto.ProductOverviewResponse{
		ProductID:   product.ID,
		ProductName: product.Name,
		AsOf:        dto.FormatDate(entity.Day(asOf)),
		Horizon:     horizon,
		StockPoints: summaries,
	}, nil
}

func summarize(sp entity.StockPoint, p *planning.Projection) dto.StockPointSummary {
	s := dto.StockPointSummary{
		StockPointID:   sp.ID,
		StockPointName: sp.Name,
		CurrentStock:   sp.CurrentStock,
		ATP:            p.ATP[0],
		CTP:            p.CTP[0],
		MinInventory:   p.Inventory[0],
	}
	shortage := -1
	for d, inv := range p.Inventory {
		if inv < s.MinInventory {
			s.MinInventory = inv
		}
		if inv < 0 && shortage < 0 {
			shortage = d
		}
	}
	if shortage >= 0 {
		s.FirstShortage = dto.FormatDate(p.Date(shortage))
	}
	return s
}
