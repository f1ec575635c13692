// Package pdf implementa el reporte imprimible de alertas de inventario.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Título + fecha de generación                       │
//	│  UMBRALES: stock bajo < N  |  sin movimiento desde fecha     │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Producto | Cant. | Costo | Último mov. | Alertas     │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FOOTER: total de registros                                  │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strconv"
	"strings"

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

	appinventory "github.com/jhoicas/backoffice-api/internal/application/inventory"
	"github.com/jhoicas/backoffice-api/internal/domain/entity"
	"github.com/jhoicas/backoffice-api/internal/domain/inventory"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorAlert   = &props.Color{Red: 180, Green: 30, Blue: 30}
)

const missingProduct = "(producto eliminado)"

// ── Generator ─────────────────────────────────────────────────────────────────

var _ appinventory.AlertReportGenerator = (*MarotoPDFGenerator)(nil)

// MarotoPDFGenerator implementa inventory.AlertReportGenerator usando Maroto v2.
type MarotoPDFGenerator struct {
	author string
}

// NewMarotoPDFGenerator construye el generador; author va a los metadatos del PDF.
func NewMarotoPDFGenerator(author string) *MarotoPDFGenerator {
	return &MarotoPDFGenerator{author: author}
}

// GenerateAlertReport genera el PDF y devuelve sus bytes.
func (g *MarotoPDFGenerator) GenerateAlertReport(_ context.Context, report appinventory.AlertReport) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Alertas de inventario", true).
		WithAuthor(g.author, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(report))
	m.AddRows(thresholdsRow(report.Thresholds))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	m.AddRows(tableHeaderRow())
	for _, r := range tableDetailRows(report.Records, report.Thresholds) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(footerRow(len(report.Records)))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

func headerRow(report appinventory.AlertReport) core.Row {
	return row.New(14).Add(
		col.New(8).Add(
			text.New("ALERTAS DE INVENTARIO", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
		),
		col.New(4).Add(
			text.New("Generado: "+report.GeneratedAt.UTC().Format("02/01/2006 15:04")+" UTC", props.Text{
				Size: 8, Align: align.Right, Top: 3, Color: colorGray,
			}),
		),
	)
}

func thresholdsRow(th inventory.Thresholds) core.Row {
	return row.New(8).Add(
		col.New(12).Add(
			text.New(fmt.Sprintf("Stock bajo: cantidad < %d   |   Sin movimiento desde: %s (%d días)",
				th.LowStock,
				th.StaleDate.UTC().Format("02/01/2006"),
				th.StaleDays,
			), props.Text{Size: 8, Top: 2, Color: colorGray}),
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
		h("Producto", 4, align.Left),
		h("Cant.", 1, align.Center),
		h("Costo alm.", 2, align.Right),
		h("Último mov.", 2, align.Center),
		h("Alertas", 3, align.Left),
	)
}

// tableDetailRows: una fila por registro; la columna de alertas dice qué condición disparó.
func tableDetailRows(records []*entity.InventoryRecord, th inventory.Thresholds) []core.Row {
	result := make([]core.Row, 0, len(records))
	for _, r := range records {
		name := missingProduct
		if r.Product != nil {
			name = r.Product.Name
		}
		result = append(result, row.New(7).Add(
			col.New(4).Add(text.New(name, props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1})),
			col.New(1).Add(text.New(strconv.FormatInt(r.Quantity, 10),
				props.Text{Size: 8, Align: align.Center, Top: 1})),
			col.New(2).Add(text.New("$"+r.StorageCost.StringFixed(2),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
			col.New(2).Add(text.New(r.LastMovement.UTC().Format("02/01/2006"),
				props.Text{Size: 8, Align: align.Center, Top: 1})),
			col.New(3).Add(text.New(triggered(r, th),
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1, Color: colorAlert})),
		))
	}
	return result
}

func footerRow(total int) core.Row {
	return row.New(10).Add(col.New(12).Add(
		text.New(fmt.Sprintf("Registros en alerta: %d", total), props.Text{
			Style: fontstyle.Bold, Size: 9, Align: align.Right, Top: 2,
		}),
	))
}

// ── helpers ───────────────────────────────────────────────────────────────────

func triggered(r *entity.InventoryRecord, th inventory.Thresholds) string {
	var reasons []string
	if r.Alerts.LowStock && r.Quantity < int64(th.LowStock) {
		reasons = append(reasons, "stock bajo")
	}
	if r.Alerts.HighTimeWithoutMovement && r.LastMovement.Before(th.StaleDate) {
		reasons = append(reasons, "sin movimiento")
	}
	return strings.Join(reasons, ", ")
}
