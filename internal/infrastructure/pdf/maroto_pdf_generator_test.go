package pdf_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/melo-compras/internal/application/procurement"
	"github.com/jhoicas/melo-compras/internal/domain/entity"
	"github.com/jhoicas/melo-compras/internal/infrastructure/pdf"
)

func TestGenerateOrderPDF_DevuelvePDF(t *testing.T) {
	doc := procurement.OrderDocument{
		Company:      entity.CompanyProfile{Name: "Melo Engenharia", CNPJ: "26.914.893/0001-74"},
		SupplierName: "Casa do Construtor",
		SiteName:     "N/A",
		Order: entity.PurchaseOrder{
			Number:       "42",
			Note:         "Entregar no canteiro",
			ShippingCost: decimal.NewFromInt(3),
			GrandTotal:   decimal.RequireFromString("29"),
			Items: []entity.LineItem{
				{Description: "Cimento CP-II", Quantity: decimal.NewFromInt(2), Unit: "SC",
					UnitPrice: decimal.RequireFromString("10.5"), LineTotal: decimal.RequireFromString("21")},
				{Description: "Areia", Quantity: decimal.NewFromInt(1), Unit: "M3",
					UnitPrice: decimal.NewFromInt(5), LineTotal: decimal.NewFromInt(5)},
			},
		},
	}

	out, err := pdf.NewMarotoPDFGenerator().GenerateOrderPDF(context.Background(), doc)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")), "la salida debe ser un PDF")
	assert.Equal(t, "pedido_42.pdf", doc.FileName())
}

func TestGenerateOrderPDF_PedidoVacio(t *testing.T) {
	out, err := pdf.NewMarotoPDFGenerator().GenerateOrderPDF(context.Background(), procurement.OrderDocument{})
	require.NoError(t, err)
	assert.NotEmpty(t, out)
	assert.Equal(t, "pedido_novo.pdf", procurement.OrderDocument{}.FileName())
}

func TestMoney(t *testing.T) {
	cases := map[string]string{
		"0":          "R$ 0,00",
		"29":         "R$ 29,00",
		"10.5":       "R$ 10,50",
		"1234.567":   "R$ 1.234,57",
		"1000000.01": "R$ 1.000.000,01",
	}
	for in, want := range cases {
		assert.Equal(t, want, pdf.Money(decimal.RequireFromString(in)), in)
	}
}
