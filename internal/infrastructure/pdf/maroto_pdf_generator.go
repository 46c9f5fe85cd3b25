// Package pdf genera la versión imprimible del pedido de compra.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│                     PEDIDO DE COMPRA          Nº / Fecha     │
//	│  ─────────────────────────────────────────────────────────  │
//	│  EMPRESA / ENDEREÇO / CNPJ / TELEFONE                        │
//	│  FORNECEDOR / OBRA                                           │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Item | Descrição | Quant. | Unidade | P.Unit | Total │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FRETE / TOTAL GERAL                                         │
//	│  OBSERVAÇÃO                                                  │
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
	"github.com/shopspring/decimal"

	"github.com/jhoicas/melo-compras/internal/application/procurement"
	"github.com/jhoicas/melo-compras/internal/domain/entity"
)

var _ procurement.OrderPDFGenerator = (*MarotoPDFGenerator)(nil)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 110, Blue: 63}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoPDFGenerator implementa procurement.OrderPDFGenerator usando Maroto v2.
type MarotoPDFGenerator struct{}

// NewMarotoPDFGenerator construye el generador.
func NewMarotoPDFGenerator() *MarotoPDFGenerator { return &MarotoPDFGenerator{} }

// GenerateOrderPDF genera el PDF y devuelve sus bytes. Imprime los montos tal como
// vienen en doc.Order; el caller es quien garantiza que estén recalculados.
func (g *MarotoPDFGenerator) GenerateOrderPDF(_ context.Context, doc procurement.OrderDocument) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Pedido de Compra", true).
		WithAuthor(doc.Company.Name, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(doc.Order))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(companyRows(doc.Company)...)
	m.AddRows(line.NewRow(2))
	m.AddRows(partiesRows(doc.SupplierName, doc.SiteName)...)
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	m.AddRows(tableDetailRows(doc.Order.Items)...)

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalsRow(doc.Order))

	if strings.TrimSpace(doc.Order.Note) != "" {
		m.AddRows(line.NewRow(3))
		m.AddRows(noteRow(doc.Order.Note))
	}

	out, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return out.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: título centrado y, si existe, número y fecha del pedido.
func headerRow(o entity.PurchaseOrder) core.Row {
	ref := ""
	if o.Number != "" {
		ref = "Nº " + o.Number
	}
	if !o.CreatedAt.IsZero() {
		ref = strings.TrimSpace(ref + "   " + o.CreatedAt.Format("02/01/2006"))
	}
	return row.New(14).Add(
		col.New(2),
		col.New(8).Add(
			text.New("PEDIDO DE COMPRA", props.Text{
				Style: fontstyle.Bold, Size: 16, Align: align.Center,
				Color: colorPrimary, Top: 3,
			}),
		),
		col.New(2).Add(
			text.New(ref, props.Text{Size: 8, Align: align.Right, Top: 5, Color: colorGray}),
		),
	)
}

func labeled(label, value string) core.Row {
	return row.New(5).Add(
		col.New(12).Add(text.New(label+": "+value, props.Text{Size: 9, Top: 1})),
	)
}

// companyRows: membrete de la empresa compradora.
func companyRows(c entity.CompanyProfile) []core.Row {
	return []core.Row{
		labeled("EMPRESA", nonEmpty(c.Name, "N/A")),
		labeled("ENDEREÇO", nonEmpty(c.Address, "N/A")),
		labeled("CNPJ", nonEmpty(c.CNPJ, "N/A")),
		labeled("TELEFONE", nonEmpty(c.Phone, "N/A")),
	}
}

func partiesRows(supplier, site string) []core.Row {
	return []core.Row{
		labeled("FORNECEDOR", nonEmpty(supplier, "N/A")),
		labeled("OBRA", nonEmpty(site, "N/A")),
	}
}

// tableHeaderRow: cabecera de la tabla de líneas.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("ITEM", 1, align.Center),
		h("DESCRIÇÃO", 4, align.Left),
		h("QUANT.", 1, align.Center),
		h("UNIDADE", 2, align.Center),
		h("PREÇO UNIT.", 2, align.Right),
		h("PREÇO TOTAL", 2, align.Right),
	)
}

// tableDetailRows: una fila por línea del pedido, numeradas desde 1.
func tableDetailRows(items []entity.LineItem) []core.Row {
	result := make([]core.Row, 0, len(items))
	for i, it := range items {
		result = append(result, row.New(7).Add(
			col.New(1).Add(text.New(strconv.Itoa(i+1), props.Text{Size: 8, Align: align.Center, Top: 1})),
			col.New(4).Add(text.New(it.Description, props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1})),
			col.New(1).Add(text.New(it.Quantity.String(), props.Text{Size: 8, Align: align.Center, Top: 1})),
			col.New(2).Add(text.New(it.Unit, props.Text{Size: 8, Align: align.Center, Top: 1})),
			col.New(2).Add(text.New(Money(it.UnitPrice), props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
			col.New(2).Add(text.New(Money(it.LineTotal), props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
		))
	}
	return result
}

// totalsRow: frete y total general alineados a la derecha.
func totalsRow(o entity.PurchaseOrder) core.Row {
	return row.New(14).Add(
		col.New(6),
		col.New(3).Add(
			text.New("FRETE:", props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2, Top: 1}),
			text.New("TOTAL GERAL:", props.Text{
				Style: fontstyle.Bold, Size: 11, Align: align.Right, Color: colorPrimary, Right: 2, Top: 7,
			}),
		),
		col.New(3).Add(
			text.New(Money(o.ShippingCost), props.Text{Size: 9, Align: align.Right, Right: 1, Top: 1}),
			text.New(Money(o.GrandTotal), props.Text{
				Style: fontstyle.Bold, Size: 11, Align: align.Right, Color: colorPrimary, Right: 1, Top: 7,
			}),
		),
	)
}

func noteRow(note string) core.Row {
	return row.New(12).Add(col.New(12).Add(
		text.New("OBSERVAÇÃO", props.Text{Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1}),
		text.New(note, props.Text{Size: 8, Top: 6, Color: colorGray}),
	))
}

// ── helpers ───────────────────────────────────────────────────────────────────

func nonEmpty(s, fallback string) string {
	if strings.TrimSpace(s) != "" {
		return s
	}
	return fallback
}

// Money "R$ 1.234,50": dos decimales, puntos de miles y coma decimal.
func Money(d decimal.Decimal) string {
	s := d.StringFixed(2)
	neg := strings.HasPrefix(s, "-")
	s = strings.TrimPrefix(s, "-")
	intPart, frac, _ := strings.Cut(s, ".")
	out := "R$ " + groupThousands(intPart) + "," + frac
	if neg {
		out = "-" + out
	}
	return out
}

// groupThousands inserta puntos de miles en un string numérico sin decimales.
// Ej: "25000" → "25.000", "1000000" → "1.000.000"
func groupThousands(s string) string {
	n := len(s)
	if n <= 3 {
		return s
	}
	buf := make([]byte, 0, n+n/3)
	for i, c := range []byte(s) {
		if i > 0 && (n-i)%3 == 0 {
			buf = append(buf, '.')
		}
		buf = append(buf, c)
	}
	return string(buf)
}
