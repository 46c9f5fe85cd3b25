package procurement_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/melo-compras/internal/application/dto"
	"github.com/jhoicas/melo-compras/internal/application/procurement"
	"github.com/jhoicas/melo-compras/internal/domain"
	"github.com/jhoicas/melo-compras/internal/domain/entity"
)

var company = entity.CompanyProfile{Name: "Melo Engenharia", CNPJ: "26.914.893/0001-74"}

func TestExport_OrderPDF_ResuelveNombresYRecalcula(t *testing.T) {
	orders := newFakeOrders(&entity.PurchaseOrder{
		ID: "p1", Number: "15", SupplierRef: "f1", SiteRef: "o-desconocida",
		ShippingCost: d("3"), GrandTotal: d("0"),
		Items: []entity.LineItem{{Quantity: d("2"), UnitPrice: d("13")}},
	})
	pdf := &capturePDF{}
	uc := procurement.NewExportUseCase(orders,
		&fakeSuppliers{list: []*entity.Supplier{{ID: "f1", Name: "Casa do Construtor LTDA"}}},
		&fakeSites{list: []*entity.Site{{ID: "o1", Name: "Aurora"}}},
		pdf, &captureSheet{}, company, nil)

	out, name, err := uc.OrderPDF(ctx, sess, "p1")
	require.NoError(t, err)
	assert.Equal(t, "%PDF-fake", string(out))
	assert.Equal(t, "pedido_15.pdf", name)
	assert.Equal(t, "Casa do Construtor LTDA", pdf.last.SupplierName)
	assert.Equal(t, "N/A", pdf.last.SiteName)
	assert.True(t, pdf.last.Order.GrandTotal.Equal(d("29")))
	assert.Equal(t, company, pdf.last.Company)
}

func TestExport_DraftPDF_SinNumeroYFallaDeFornecedores(t *testing.T) {
	pdf := &capturePDF{}
	uc := procurement.NewExportUseCase(newFakeOrders(),
		&fakeSuppliers{err: domain.ErrForbidden}, &fakeSites{},
		pdf, &captureSheet{}, company, nil)

	in := draft("0", line("1", "5"))
	in.SupplierID = "f1"
	_, name, err := uc.DraftPDF(ctx, sess, in)
	require.NoError(t, err)
	assert.Equal(t, "pedido_novo.pdf", name)
	assert.Equal(t, "N/A", pdf.last.SupplierName)
	assert.Equal(t, "N/A", pdf.last.SiteName)
}

func TestExport_OrdersSpreadsheet(t *testing.T) {
	orders := newFakeOrders(&entity.PurchaseOrder{ID: "p1", SiteRef: "o1", ShippingCost: d("1")})
	sheet := &captureSheet{}
	uc := procurement.NewExportUseCase(orders, &fakeSuppliers{},
		&fakeSites{list: []*entity.Site{{ID: "o1", Name: "Aurora"}}},
		&capturePDF{}, sheet, company, nil)

	out, err := uc.OrdersSpreadsheet(ctx, sess, dto.OrderFilterRequest{})
	require.NoError(t, err)
	assert.Equal(t, "xlsx", string(out))
	require.Len(t, sheet.rows, 1)
	assert.Equal(t, "Aurora", sheet.rows[0].SiteName)
	assert.True(t, sheet.rows[0].Order.GrandTotal.Equal(d("1")))

	_, err = uc.OrdersSpreadsheet(ctx, sess, dto.OrderFilterRequest{From: "2024/01/01"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
