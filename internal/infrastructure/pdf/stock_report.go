// Package pdf genera el reporte de stock de una tienda con Maroto v2.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Tienda + email        │  REPORTE DE STOCK + fecha   │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: ID | Producto | P.Unit | Stock | Valor               │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTALES: Productos / Unidades / Valor del inventario        │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"fmt"
	"strconv"

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

	"github.com/jhoicas/Inventario-tiendas/internal/application/dto"
	"github.com/jhoicas/Inventario-tiendas/internal/application/usecase"
)

var _ usecase.StockReportGenerator = (*StockReportGenerator)(nil)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorAlert   = &props.Color{Red: 180, Green: 30, Blue: 30}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// StockReportGenerator implementa usecase.StockReportGenerator usando Maroto v2.
type StockReportGenerator struct{}

// NewStockReportGenerator construye el generador.
func NewStockReportGenerator() *StockReportGenerator { return &StockReportGenerator{} }

// StockReport genera el PDF y devuelve sus bytes.
func (g *StockReportGenerator) StockReport(report dto.StockReport) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Reporte de stock", true).
		WithAuthor(report.Store.Name, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(report))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	m.AddRows(tableHeaderRow())
	m.AddRows(tableRows(report.Products)...)

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalsRow(report.Products))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generate stock report: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

func headerRow(report dto.StockReport) core.Row {
	return row.New(18).Add(
		col.New(7).Add(
			text.New(report.Store.Name, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New(report.Store.Email, props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("REPORTE DE STOCK", props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New("Generado: "+report.GeneratedAt.Format("02/01/2006 15:04"), props.Text{
				Size: 8, Align: align.Right, Top: 9, Color: colorGray,
			}),
		),
	)
}

func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("ID", 1, align.Center),
		h("Producto", 5, align.Left),
		h("Precio Unit.", 2, align.Right),
		h("Stock", 2, align.Right),
		h("Valor", 2, align.Right),
	)
}

// tableRows: una fila por producto. El stock negativo se resalta.
func tableRows(products []dto.ProductResponse) []core.Row {
	rows := make([]core.Row, 0, len(products))
	for _, p := range products {
		stockProps := props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1}
		if p.StockQuantity < 0 {
			stockProps.Color = colorAlert
		}
		rows = append(rows, row.New(7).Add(
			col.New(1).Add(text.New(strconv.FormatInt(p.ID, 10), props.Text{Size: 8, Align: align.Center, Top: 1})),
			col.New(5).Add(text.New(p.Name, props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(2).Add(text.New(p.UnitPrice.StringFixed(2), props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
			col.New(2).Add(text.New(strconv.FormatInt(p.StockQuantity, 10), stockProps)),
			col.New(2).Add(text.New(stockValue(p).StringFixed(2), props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
		))
	}
	if len(rows) == 0 {
		rows = append(rows, row.New(8).Add(
			col.New(12).Add(text.New("La tienda no tiene productos registrados.", props.Text{
				Size: 8, Align: align.Center, Top: 2, Color: colorGray,
			})),
		))
	}
	return rows
}

func totalsRow(products []dto.ProductResponse) core.Row {
	var units int64
	total := decimal.Zero
	for _, p := range products {
		units += p.StockQuantity
		total = total.Add(stockValue(p))
	}
	label := func(s string, top float64) core.Component {
		return text.New(s, props.Text{Size: 9, Align: align.Right, Top: top, Color: colorGray})
	}
	value := func(s string, top float64) core.Component {
		return text.New(s, props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right, Top: top})
	}
	return row.New(20).Add(
		col.New(8).Add(
			label("Productos:", 1),
			label("Unidades en stock:", 7),
			label("Valor del inventario:", 13),
		),
		col.New(4).Add(
			value(strconv.Itoa(len(products)), 1),
			value(strconv.FormatInt(units, 10), 7),
			value(total.StringFixed(2), 13),
		),
	)
}

// stockValue precio unitario por stock; el stock negativo no resta valor.
func stockValue(p dto.ProductResponse) decimal.Decimal {
	if p.StockQuantity <= 0 {
		return decimal.Zero
	}
	return p.UnitPrice.Mul(decimal.NewFromInt(p.StockQuantity))
}
