package procurement_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/melo-compras/internal/application/procurement"
	"github.com/jhoicas/melo-compras/internal/domain"
	"github.com/jhoicas/melo-compras/internal/domain/entity"
)

func TestBuildOrderFromRequest_TotalIncluyeFrete(t *testing.T) {
	req := &entity.PurchaseRequest{
		SiteRef: "o1", SupplierRef: "f1", Note: "urgente", Shipping: d("10"),
		Items: []entity.RequestItem{
			{ItemID: "i1", Quantity: d("2"), Description: "Cimento CP-II", Unit: "SC", UnitPrice: d("38.90")},
			{ItemID: "i2", Quantity: d("1")},
			{ItemID: "i-borrado", Quantity: d("4")},
		},
	}
	catalog := map[string]entity.CatalogItem{"i2": {ID: "i2", Description: "Areia média", Unit: "M3", UnitPrice: d("120")}}

	o := procurement.BuildOrderFromRequest(req, catalog)
	require.Len(t, o.Items, 3)
	assert.Equal(t, "Areia média", o.Items[1].Description)
	assert.Equal(t, "Desconhecido", o.Items[2].Description)
	assert.Equal(t, "N/A", o.Items[2].Unit)
	assert.True(t, o.Items[2].LineTotal.IsZero())
	// 2×38.90 + 1×120 + 4×0 + 10 de frete
	assert.True(t, o.GrandTotal.Equal(d("207.80")), o.GrandTotal.String())
	assert.Equal(t, "urgente", o.Note)
}

func TestToOrder_GuardaElPedido(t *testing.T) {
	orders := newFakeOrders()
	cat := catalogFixture()
	requests := &fakeRequests{byID: map[string]*entity.PurchaseRequest{
		"s1": {ID: "s1", SiteRef: "o1", Items: []entity.RequestItem{{ItemID: "i1", Quantity: d("3")}}},
		"s2": {ID: "s2", SiteRef: "o1"},
	}}
	uc := procurement.NewRequestConversion(requests, cat, procurement.NewOrderEditor(orders, cat, nil))

	_, err := uc.ToOrder(ctx, sess, "s1", "")
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "sin fornecedor el pedido no se puede guardar")

	out, err := uc.ToOrder(ctx, sess, "s1", "f9")
	require.NoError(t, err)
	require.Len(t, orders.created, 1)
	assert.Equal(t, "f9", orders.created[0].SupplierRef)
	assert.Equal(t, "116.70", out.GrandTotal)

	_, err = uc.ToOrder(ctx, sess, "s2", "f9")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.ToOrder(ctx, sess, "nope", "f9")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
