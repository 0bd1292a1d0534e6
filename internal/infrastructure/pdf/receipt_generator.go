// Package pdf implementa la generación del acta de entrega de dotación.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: ACTA DE ENTREGA DE DOTACIÓN  │  N° Acta + Fecha    │
//	│  ─────────────────────────────────────────────────────────  │
//	│  DESTINATARIO: empleado o puesto de trabajo                  │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Código | Descripción | Cantidad                      │
//	│  ─────────────────────────────────────────────────────────  │
//	│  OBSERVACIONES + líneas de firma (entrega / recibe)          │
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

	"github.com/serviza/dotaciones-api/internal/application/supplies"
	"github.com/serviza/dotaciones-api/internal/domain/entity"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ── Generator ─────────────────────────────────────────────────────────────────

var _ supplies.ReceiptGenerator = (*MarotoReceiptGenerator)(nil)

// MarotoReceiptGenerator implementa supplies.ReceiptGenerator usando Maroto v2.
type MarotoReceiptGenerator struct {
	companyName string
}

// NewMarotoReceiptGenerator construye el generador.
func NewMarotoReceiptGenerator(companyName string) *MarotoReceiptGenerator {
	return &MarotoReceiptGenerator{companyName: companyName}
}

// GenerateDeliveryReceipt genera el acta de entrega y devuelve sus bytes.
func (g *MarotoReceiptGenerator) GenerateDeliveryReceipt(
	_ context.Context,
	mov *entity.Movement,
	product *entity.Product,
	holderName string,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Acta de Entrega de Dotación", true).
		WithAuthor(g.companyName, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(g.headerRow(mov))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(holderRow(mov, holderName))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	m.AddRows(tableDetailRow(mov, product))

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	if mov.Note != "" {
		m.AddRows(row.New(8).Add(
			text.NewCol(12, "Observaciones: "+mov.Note, props.Text{Size: 8, Color: colorGray}),
		))
	}
	m.AddRows(signatureRow())

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("generar acta PDF: %w", err)
	}
	return documentBytes(doc), nil
}

func documentBytes(doc core.Document) []byte {
	return doc.GetBytes()
}

func (g *MarotoReceiptGenerator) headerRow(mov *entity.Movement) core.Row {
	return row.New(14).Add(
		col.New(7).Add(
			text.New("ACTA DE ENTREGA DE DOTACIÓN", props.Text{
				Size: 13, Style: fontstyle.Bold, Color: colorPrimary,
			}),
			text.New(g.companyName, props.Text{Size: 9, Top: 6, Color: colorGray}),
		),
		col.New(5).Add(
			text.New("Acta N° "+mov.ID, props.Text{Size: 8, Align: align.Right}),
			text.New("Fecha: "+mov.OccurredOn.Format("2006-01-02"), props.Text{
				Size: 9, Top: 5, Align: align.Right,
			}),
		),
	)
}

func holderRow(mov *entity.Movement, holderName string) core.Row {
	label := "Empleado"
	if mov.Holder.Kind == entity.HolderKindPost {
		label = "Puesto de trabajo"
	}
	return row.New(10).Add(
		col.New(12).Add(
			text.New(label+": "+holderName, props.Text{Size: 10, Style: fontstyle.Bold}),
		),
	)
}

func tableHeaderRow() core.Row {
	style := props.Text{Size: 9, Style: fontstyle.Bold, Color: colorPrimary}
	return row.New(7).Add(
		text.NewCol(3, "Código", style),
		text.NewCol(7, "Descripción", style),
		text.NewCol(2, "Cantidad", props.Text{
			Size: 9, Style: fontstyle.Bold, Color: colorPrimary, Align: align.Right,
		}),
	)
}

func tableDetailRow(mov *entity.Movement, product *entity.Product) core.Row {
	desc := product.Name
	if product.Detail != "" {
		desc += " - " + product.Detail
	}
	return row.New(6).Add(
		text.NewCol(3, product.Code, props.Text{Size: 8}),
		text.NewCol(7, desc, props.Text{Size: 8}),
		text.NewCol(2, fmt.Sprintf("%d", mov.Quantity), props.Text{Size: 8, Align: align.Right}),
	)
}

func signatureRow() core.Row {
	lineStyle := props.Text{Size: 9, Top: 18, Align: align.Center}
	labelStyle := props.Text{Size: 8, Top: 23, Color: colorGray, Align: align.Center}
	return row.New(30).Add(
		col.New(6).Add(
			text.New("_______________________", lineStyle),
			text.New("Entrega (bodega)", labelStyle),
		),
		col.New(6).Add(
			text.New("_______________________", lineStyle),
			text.New("Recibe (destinatario)", labelStyle),
		),
	)
}
