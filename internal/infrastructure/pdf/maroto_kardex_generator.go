// Package pdf implementa la representación gráfica del kardex valorizado de
// un producto con Maroto v2.
//
// Layout de la página A4 horizontal:
//
//	┌──────────────────────────────────────────────────────────────────────┐
//	│  HEADER: Producto + código  │  Rango de fechas del reporte           │
//	│  ──────────────────────────────────────────────────────────────────  │
//	│  TABLA: Fecha | Op | NCF | Contraparte | Cant | Monto | Balances     │
//	│  ──────────────────────────────────────────────────────────────────  │
//	│  TOTALES: compras / ventas / margen bruto / balance final            │
//	└──────────────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/orientation"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/gestionrd/gestion-api/internal/application/dto"
	"github.com/gestionrd/gestion-api/internal/domain/fiscal"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoKardexGenerator implementa reports.KardexPDFGenerator usando Maroto v2.
type MarotoKardexGenerator struct{}

// NewMarotoKardexGenerator construye el generador.
func NewMarotoKardexGenerator() *MarotoKardexGenerator { return &MarotoKardexGenerator{} }

// GenerateKardexPDF genera el PDF del kardex de un producto y devuelve sus bytes.
func (g *MarotoKardexGenerator) GenerateKardexPDF(
	_ context.Context,
	sheet dto.KardexSheetDTO,
	from, to time.Time,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithOrientation(orientation.Horizontal).
		WithLeftMargin(8).WithRightMargin(8).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 8}).
		WithTitle("Kardex valorizado", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(sheet, from, to))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(tableHeaderRow())
	for _, r := range tableDetailRows(sheet.Rows) {
		m.AddRows(r)
	}
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalsRows(sheet.Totals)...)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: producto + código (izq) y rango del reporte (der).
func headerRow(sheet dto.KardexSheetDTO, from, to time.Time) core.Row {
	rango := from.Format("02/01/2006") + " — " + to.Format("02/01/2006")
	return row.New(16).Add(
		col.New(8).Add(
			text.New(sheet.ProductName, props.Text{
				Style: fontstyle.Bold, Size: 12, Color: colorPrimary, Top: 1,
			}),
			text.New(fmt.Sprintf("Código: %s   |   Unidad: %s",
				nonEmpty(sheet.ProductCode, "—"),
				nonEmpty(sheet.UnitMeasure, "—"),
			), props.Text{Size: 8, Top: 9, Color: colorGray}),
		),
		col.New(4).Add(
			text.New("KARDEX VALORIZADO (COSTO PROMEDIO)", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New(rango, props.Text{
				Size: 9, Align: align.Right, Top: 8, Color: colorGray,
			}),
		),
	)
}

// tableHeaderRow: cabecera de la tabla del kardex.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 7, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Fecha", 1, align.Left),
		h("Op.", 1, align.Center),
		h("NCF", 1, align.Left),
		h("Contraparte", 2, align.Left),
		h("Cant.", 1, align.Right),
		h("Monto", 2, align.Right),
		h("Bal. Cant.", 1, align.Right),
		h("Costo Prom.", 1, align.Right),
		h("Bal. Monto", 2, align.Right),
	)
}

// tableDetailRows: una fila por movimiento con su balance posterior.
func tableDetailRows(rows []dto.KardexRowDTO) []core.Row {
	cell := func(s string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(s, props.Text{
			Size: 7, Align: a, Top: 1, Left: 1, Right: 1,
		}))
	}
	result := make([]core.Row, 0, len(rows))
	for _, r := range rows {
		contraparte := nonEmpty(r.CounterpartyName, "—")
		if rnc := fiscal.FormatRNC(r.CounterpartyRNC); rnc != "" {
			contraparte += " · " + rnc
		}
		result = append(result, row.New(6).Add(
			cell(r.Date.Format("02/01/2006"), 1, align.Left),
			cell(r.Operation, 1, align.Center),
			cell(nonEmpty(r.NCF, "—"), 1, align.Left),
			cell(contraparte, 2, align.Left),
			cell(r.Quantity.StringFixed(2), 1, align.Right),
			cell("RD$"+r.Amount.StringFixed(2), 2, align.Right),
			cell(r.BalanceQuantity.StringFixed(2), 1, align.Right),
			cell(r.AverageUnitCost.StringFixed(2), 1, align.Right),
			cell("RD$"+r.BalanceAmount.StringFixed(2), 2, align.Right),
		))
	}
	return result
}

// totalsRows: bloque de totales del período.
func totalsRows(t dto.KardexTotalsDTO) []core.Row {
	label := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: align.Right, Right: 2,
		})
	}
	value := func(s string) core.Component {
		return text.New(s, props.Text{Size: 8, Align: align.Right, Right: 1})
	}
	pair := func(l, v string) core.Row {
		return row.New(5).Add(
			col.New(6),
			col.New(3).Add(label(l)),
			col.New(3).Add(value(v)),
		)
	}
	return []core.Row{
		pair("Cantidad comprada:", t.PurchasedQuantity.StringFixed(2)),
		pair("Cantidad vendida:", t.SoldQuantity.StringFixed(2)),
		pair("Compras del período:", "RD$"+t.Cost.StringFixed(2)),
		pair("Ventas del período:", "RD$"+t.Revenue.StringFixed(2)),
		pair("Margen bruto:", "RD$"+t.GrossMargin.StringFixed(2)),
		pair("Margen % sobre ventas:", t.GrossMarginPctOnRevenue.StringFixed(2)+"%"),
		pair("Balance final:", fmt.Sprintf("%s und / RD$%s",
			t.FinalBalanceQuantity.StringFixed(2), t.FinalBalanceAmount.StringFixed(2))),
	}
}

// ── helpers ───────────────────────────────────────────────────────────────────

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}
