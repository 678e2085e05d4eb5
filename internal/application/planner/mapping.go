package planner

import (
	"github.com/jhoicas/Abastecimiento-api/internal/application/dto"
	"github.com/jhoicas/Abastecimiento-api/internal/domain/entity"
	"github.com/jhoicas/Abastecimiento-api/internal/domain/planning"
)

func toProjectionResponse(p *planning.Projection) *dto.ProjectionResponse {
	rows := p.Rows()
	out := &dto.ProjectionResponse{
		StockPointID:   p.StockPointID,
		StockPointName: p.StockPointName,
		AsOf:           dto.FormatDate(p.Start),
		Horizon:        p.Horizon,
		StartingStock:  p.StartingStock,
		Rows:           make([]dto.ProjectionRow, 0, len(rows)),
	}
	for _, r := range rows {
		out.Rows = append(out.Rows, dto.ProjectionRow{
			Date:      dto.FormatDate(r.Date),
			Demand:    r.Demand,
			Supply:    r.Supply,
			Inventory: r.Inventory,
			ATP:       r.ATP,
			CTP:       r.CTP,
		})
	}
	return out
}

func toMoveRequestResponse(r *entity.MoveRequest) *dto.MoveRequestResponse {
	return &dto.MoveRequestResponse{
		ID:                r.ID,
		RouteID:           r.RouteID,
		Quantity:          r.Quantity,
		RegisteredOn:      dto.FormatDate(r.RegisteredOn),
		RequestedDelivery: dto.FormatDate(r.RequestedDelivery),
		QuantityDelivered: r.QuantityDelivered,
	}
}

// toMoveOrderResponse route puede ser nil cuando no se conoce la ruta.
func toMoveOrderResponse(o *entity.MoveOrder, route *entity.SupplyRoute) dto.MoveOrderResponse {
	out := dto.MoveOrderResponse{
		ID:        o.ID,
		RequestID: o.RequestID,
		Quantity:  o.Quantity,
		OrderDate: dto.FormatDate(o.OrderDate),
		Status:    o.Status.String(),
	}
	if route != nil {
		out.RouteID = route.ID
		out.SenderID = route.SenderID
		out.ReceiverID = route.ReceiverID
	}
	return out
}
