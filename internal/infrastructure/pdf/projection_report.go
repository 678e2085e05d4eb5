// Package pdf genera el informe imprimible de la proyección de un punto de stock.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Producto + Punto de stock │ Fecha base + Horizonte  │
//	│  ─────────────────────────────────────────────────────────  │
//	│  RESUMEN: Stock inicial / ATP hoy / CTP hoy / Precio         │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Fecha | Demanda | Suministro | Inventario | ATP | CTP│
//	│  ─────────────────────────────────────────────────────────  │
//	│  FOOTER: leyenda                                             │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"github.com/jhoicas/Abastecimiento-api/internal/application/planner"
	"github.com/jhoicas/Abastecimiento-api/internal/domain/planning"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorWhite   = &props.Color{Red: 255, Green: 255, Blue: 255}
	colorAlert   = &props.Color{Red: 176, Green: 0, Blue: 32}
	colorHeader  = &props.Color{Red: 0, Green: 70, Blue: 127}
)

var _ planner.ProjectionPDFGenerator = (*MarotoProjectionReport)(nil)

// MarotoProjectionReport implementa planner.ProjectionPDFGenerator usando Maroto v2.
type MarotoProjectionReport struct {
	printer *message.Printer
}

// NewMarotoProjectionReport construye el generador; las cantidades se formatean en el idioma indicado.
func NewMarotoProjectionReport(tag language.Tag) *MarotoProjectionReport {
	return &MarotoProjectionReport{printer: message.NewPrinter(tag)}
}

// GenerateProjectionPDF genera el PDF y devuelve sus bytes.
func (g *MarotoProjectionReport) GenerateProjectionPDF(_ context.Context, report planner.ProjectionReport) ([]byte, error) {
	p := report.Projection
	if p == nil {
		return nil, fmt.Errorf("pdf: proyección vacía")
	}

	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Proyección "+p.StockPointName, true).
		WithAuthor(report.ProductName, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(g.headerRow(report))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(g.summaryRow(report))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	m.AddRows(g.tableRows(p)...)

	m.AddRows(line.NewRow(3))
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(footerRow())

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

func (g *MarotoProjectionReport) headerRow(report planner.ProjectionReport) core.Row {
	p := report.Projection
	return row.New(18).Add(
		col.New(7).Add(
			text.New(report.ProductName, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Punto de stock: "+p.StockPointName, props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("PROYECCIÓN DE INVENTARIO", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New(p.Start.Format("02/01/2006")+" – "+p.End().Format("02/01/2006"), props.Text{
				Style: fontstyle.Bold, Size: 11, Align: align.Right, Top: 7,
			}),
			text.New(g.printer.Sprintf("Horizonte: %d días", p.Horizon), props.Text{
				Size: 8, Align: align.Right, Top: 14, Color: colorGray,
			}),
		),
	)
}

func (g *MarotoProjectionReport) summaryRow(report planner.ProjectionReport) core.Row {
	p := report.Projection
	cell := func(label, value string) core.Col {
		return col.New(3).Add(
			text.New(label, props.Text{Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1}),
			text.New(value, props.Text{Size: 10, Top: 6}),
		)
	}
	return row.New(14).Add(
		cell("STOCK INICIAL", g.qty(p.StartingStock)),
		cell("ATP HOY", g.qty(p.ATP[0])),
		cell("CTP HOY", g.qty(p.CTP[0])),
		cell("PRECIO UNITARIO", g.money(report.Price)),
	)
}

func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorWhite, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Fecha", 2, align.Left),
		h("Demanda", 2, align.Right),
		h("Suministro", 2, align.Right),
		h("Inventario", 2, align.Right),
		h("ATP", 2, align.Right),
		h("CTP", 2, align.Right),
	).WithStyle(&props.Cell{BackgroundColor: colorHeader})
}

// tableRows una fila por día; el inventario negativo se resalta.
func (g *MarotoProjectionReport) tableRows(p *planning.Projection) []core.Row {
	rows := p.Rows()
	result := make([]core.Row, 0, len(rows))
	for _, r := range rows {
		cell := func(v int64) core.Col {
			return col.New(2).Add(text.New(g.qty(v), props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1}))
		}
		inventory := props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1}
		if r.Inventory < 0 {
			inventory.Style = fontstyle.Bold
			inventory.Color = colorAlert
		}
		result = append(result, row.New(6).Add(
			col.New(2).Add(text.New(r.Date.Format("02/01/2006"), props.Text{Size: 8, Top: 1, Left: 1})),
			cell(r.Demand),
			cell(r.Supply),
			col.New(2).Add(text.New(g.qty(r.Inventory), inventory)),
			cell(r.ATP),
			cell(r.CTP),
		))
	}
	return result
}

func footerRow() core.Row {
	return row.New(8).Add(col.New(12).Add(
		text.New(
			"ATP: cantidad comprometible sin nuevo suministro. "+
				"CTP: cantidad comprometible usando la capacidad libre de las rutas entrantes.",
			props.Text{Size: 6.5, Color: colorGray, Top: 2},
		),
	))
}

// ── helpers ───────────────────────────────────────────────────────────────────

func (g *MarotoProjectionReport) qty(v int64) string {
	return g.printer.Sprintf("%d", v)
}

func (g *MarotoProjectionReport) money(v decimal.Decimal) string {
	return "$" + g.printer.Sprint(number.Decimal(v.InexactFloat64(), number.Scale(2)))
}
