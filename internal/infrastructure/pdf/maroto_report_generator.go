// Package pdf implementa el reporte de valorización de stock en PDF.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Título + fecha de emisión                          │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Código | Descripción | Unid | Saldo | Costo | Valor │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTAL: valor total del stock                               │
//	│  FOOTER: advertencias (huérfanos, saldos negativos)         │
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

	appinventory "github.com/tu-usuario/almacen-pro/internal/application/inventory"
	"github.com/tu-usuario/almacen-pro/internal/application/dto"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorDanger  = &props.Color{Red: 180, Green: 30, Blue: 30}
)

// ── Generator ─────────────────────────────────────────────────────────────────

var _ appinventory.BalanceReportGenerator = (*MarotoReportGenerator)(nil)

// MarotoReportGenerator implementa inventory.BalanceReportGenerator usando Maroto v2.
type MarotoReportGenerator struct{}

// NewMarotoReportGenerator construye el generador.
func NewMarotoReportGenerator() *MarotoReportGenerator { return &MarotoReportGenerator{} }

// GenerateBalanceReport genera el PDF y devuelve sus bytes.
func (g *MarotoReportGenerator) GenerateBalanceReport(_ context.Context, balances *dto.BalanceListResponse) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Valorización de stock", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow())
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	m.AddRows(tableHeaderRow())
	for _, item := range balances.Items {
		m.AddRows(tableDetailRow(item))
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalRow(balances))

	if warnings := footerWarnings(balances); len(warnings) > 0 {
		m.AddRows(line.NewRow(3))
		m.AddRows(warnings...)
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

func headerRow() core.Row {
	fecha := time.Now().Format("02/01/2006 15:04")
	return row.New(14).Add(
		col.New(8).Add(
			text.New("Valorización de stock", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
		),
		col.New(4).Add(
			text.New("Emitido: "+fecha, props.Text{
				Size: 9, Top: 4, Color: colorGray, Align: align.Right,
			}),
		),
	)
}

func tableHeaderRow() core.Row {
	h := func(size int, label string, al align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Align: al,
		}))
	}
	return row.New(7).Add(
		h(2, "Código", align.Left),
		h(4, "Descripción", align.Left),
		h(1, "Unid", align.Center),
		h(1, "Saldo", align.Right),
		h(2, "Costo prom.", align.Right),
		h(2, "Valor", align.Right),
	)
}

func tableDetailRow(item dto.ProductBalanceResponse) core.Row {
	stockColor := colorGray
	if item.NegativeStock {
		stockColor = colorDanger
	}
	c := func(size int, value string, al align.Type, color *props.Color) core.Col {
		return col.New(size).Add(text.New(value, props.Text{Size: 8, Align: al, Color: color}))
	}
	return row.New(5).Add(
		c(2, item.Code, align.Left, nil),
		c(4, item.Description, align.Left, nil),
		c(1, item.Unit, align.Center, colorGray),
		c(1, item.CurrentStock.StringFixed(2), align.Right, stockColor),
		c(2, item.WeightedAvgCost.StringFixed(2), align.Right, nil),
		c(2, item.TotalStockValue.StringFixed(2), align.Right, nil),
	)
}

func totalRow(balances *dto.BalanceListResponse) core.Row {
	return row.New(9).Add(
		col.New(8).Add(text.New(
			fmt.Sprintf("%d productos", len(balances.Items)),
			props.Text{Size: 8, Top: 2, Color: colorGray},
		)),
		col.New(4).Add(text.New(
			"TOTAL: "+balances.TotalValue.StringFixed(2),
			props.Text{Style: fontstyle.Bold, Size: 11, Top: 1, Align: align.Right, Color: colorPrimary},
		)),
	)
}

// footerWarnings lista advertencias de integridad: movimientos huérfanos fuera
// del cálculo y productos con saldo negativo.
func footerWarnings(balances *dto.BalanceListResponse) []core.Row {
	var rows []core.Row
	if n := len(balances.Orphans); n > 0 {
		rows = append(rows, row.New(5).Add(col.New(12).Add(text.New(
			fmt.Sprintf("Advertencia: %d movimiento(s) huérfano(s) excluidos del cálculo.", n),
			props.Text{Size: 8, Color: colorDanger},
		))))
	}
	negatives := 0
	for _, item := range balances.Items {
		if item.NegativeStock {
			negatives++
		}
	}
	if negatives > 0 {
		rows = append(rows, row.New(5).Add(col.New(12).Add(text.New(
			fmt.Sprintf("Advertencia: %d producto(s) con saldo negativo.", negatives),
			props.Text{Size: 8, Color: colorDanger},
		))))
	}
	return rows
}
