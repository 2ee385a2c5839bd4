// Package pdf implementa la generación del reporte de reposición de stock.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Título del reporte │ Fecha de generación           │
//	│  ─────────────────────────────────────────────────────────  │
//	│  RESUMEN: totales por prioridad (alta / media / baja)       │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: SKU | Producto | Stock | Mín | Estado | Urgencia    │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FOOTER: leyenda de interpretación                          │
//	└─────────────────────────────────────────────────────────────┘
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
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	appinventory "github.com/jhoicas/kardex-api/internal/application/inventory"
	"github.com/jhoicas/kardex-api/internal/domain/entity"
)

var _ appinventory.RestockReportGenerator = (*MarotoReportGenerator)(nil)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorDanger  = &props.Color{Red: 180, Green: 30, Blue: 30}
	colorWarning = &props.Color{Red: 190, Green: 120, Blue: 0}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoReportGenerator genera reportes de reposición usando Maroto v2.
type MarotoReportGenerator struct{}

// NewMarotoReportGenerator construye el generador.
func NewMarotoReportGenerator() *MarotoReportGenerator { return &MarotoReportGenerator{} }

// GenerateRestockReport genera el PDF con las alertas (ya ordenadas por
// urgencia) y devuelve sus bytes.
func (g *MarotoReportGenerator) GenerateRestockReport(
	_ context.Context,
	alerts []entity.StockAlert,
	generatedAt time.Time,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Reporte de Reposición de Stock", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(generatedAt))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(summaryRow(alerts))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	if len(alerts) == 0 {
		m.AddRows(row.New(10).Add(col.New(12).Add(
			text.New("Sin alertas: todos los productos activos están por encima de su stock mínimo.", props.Text{
				Size: 9, Align: align.Center, Color: colorGray, Top: 3,
			}),
		)))
	}
	for _, r := range tableAlertRows(alerts) {
		m.AddRows(r)
	}

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

// headerRow: título (izq) y fecha de generación (der).
func headerRow(generatedAt time.Time) core.Row {
	return row.New(16).Add(
		col.New(8).Add(
			text.New("REPORTE DE REPOSICIÓN DE STOCK", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Productos bajo stock mínimo, ordenados por urgencia", props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(4).Add(
			text.New("Generado", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New(generatedAt.Format("02/01/2006 15:04"), props.Text{
				Size: 10, Align: align.Right, Top: 7,
			}),
		),
	)
}

// summaryRow: conteo de alertas por prioridad.
func summaryRow(alerts []entity.StockAlert) core.Row {
	var high, medium, low int
	for _, a := range alerts {
		switch a.Priority {
		case entity.AlertPriorityHigh:
			high++
		case entity.AlertPriorityMedium:
			medium++
		default:
			low++
		}
	}

	counter := func(label string, count int, color *props.Color) core.Col {
		return col.New(4).Add(
			text.New(fmt.Sprintf("%d", count), props.Text{
				Style: fontstyle.Bold, Size: 14, Align: align.Center,
				Color: color, Top: 1,
			}),
			text.New(label, props.Text{
				Size: 8, Align: align.Center, Color: colorGray, Top: 9,
			}),
		)
	}
	return row.New(16).Add(
		counter("Prioridad alta (agotados)", high, colorDanger),
		counter("Prioridad media (críticos)", medium, colorWarning),
		counter("Prioridad baja (bajo mínimo)", low, colorPrimary),
	)
}

// tableHeaderRow: cabecera de la tabla de alertas.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("SKU", 2, align.Left),
		h("Producto", 4, align.Left),
		h("Stock", 1, align.Center),
		h("Mín.", 1, align.Center),
		h("Estado", 2, align.Center),
		h("Último mov.", 1, align.Center),
		h("Urgencia", 1, align.Center),
	)
}

// tableAlertRows: una fila por alerta, en el orden recibido.
func tableAlertRows(alerts []entity.StockAlert) []core.Row {
	result := make([]core.Row, 0, len(alerts))
	for _, a := range alerts {
		lastMov := "—"
		if a.LastMovement != nil {
			lastMov = a.LastMovement.Format("02/01/06")
		}
		result = append(result, row.New(7).Add(
			col.New(2).Add(text.New(
				a.ProductSKU,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(4).Add(text.New(
				a.ProductName,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(1).Add(text.New(
				fmt.Sprintf("%d", a.CurrentStock),
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
			col.New(1).Add(text.New(
				fmt.Sprintf("%d", a.MinStock),
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
			col.New(2).Add(text.New(
				statusLabel(a.Status),
				props.Text{Size: 8, Align: align.Center, Top: 1, Color: statusColor(a.Status)},
			)),
			col.New(1).Add(text.New(
				lastMov,
				props.Text{Size: 7.5, Align: align.Center, Top: 1, Color: colorGray},
			)),
			col.New(1).Add(text.New(
				fmt.Sprintf("%d", a.UrgencyScore),
				props.Text{Style: fontstyle.Bold, Size: 8, Align: align.Center, Top: 1},
			)),
		))
	}
	return result
}

// footerRow: leyenda de interpretación.
func footerRow() core.Row {
	return row.New(10).Add(col.New(12).Add(
		text.New(
			"Urgencia: base 10 agotado / 8 crítico / 5 bajo mínimo, "+
				"+2 si el último movimiento tiene más de 7 días y +3 adicional si supera 30 días. "+
				"Reponer primero los productos al inicio de la tabla.",
			props.Text{Size: 6.5, Color: colorGray, Top: 2},
		),
	))
}

// ── helpers ───────────────────────────────────────────────────────────────────

func statusLabel(status string) string {
	switch status {
	case entity.StockStatusOutOfStock:
		return "AGOTADO"
	case entity.StockStatusCritical:
		return "CRÍTICO"
	case entity.StockStatusLow:
		return "BAJO"
	default:
		return status
	}
}

func statusColor(status string) *props.Color {
	switch status {
	case entity.StockStatusOutOfStock:
		return colorDanger
	case entity.StockStatusCritical:
		return colorWarning
	default:
		return colorPrimary
	}
}
