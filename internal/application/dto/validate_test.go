package dto_test

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/melo-compras/internal/application/dto"
	"github.com/jhoicas/melo-compras/internal/domain"
)

func TestValidate_OrderSinFornecedorNiObra(t *testing.T) {
	err := dto.Validate(dto.OrderDTO{})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	var ve *dto.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "required", ve.Fields["supplier_id"])
	assert.Equal(t, "required", ve.Fields["site_id"])
}

func TestValidate_SolicitacaoItensConCantidadPositiva(t *testing.T) {
	req := dto.PurchaseRequestDTO{
		SiteID: "o1",
		Items: []dto.PurchaseRequestItemDTO{
			{ItemID: "i1", Quantity: decimal.NewFromInt(2)},
			{ItemID: "", Quantity: decimal.Zero},
		},
	}
	err := dto.Validate(req)
	var ve *dto.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "required", ve.Fields["items[1].item_id"])
	assert.Equal(t, "gt=0", ve.Fields["items[1].quantity"])
	assert.NotContains(t, ve.Fields, "items[0].quantity")

	req.Items = nil
	err = dto.Validate(req)
	require.ErrorAs(t, err, &ve)
	assert.Contains(t, ve.Fields, "items")
}

func TestValidate_FiltroFechas(t *testing.T) {
	assert.NoError(t, dto.Validate(dto.OrderFilterRequest{From: "2024-01-31"}))
	assert.NoError(t, dto.Validate(dto.OrderFilterRequest{}))
	assert.ErrorIs(t, dto.Validate(dto.OrderFilterRequest{To: "31/01/2024"}), domain.ErrInvalidInput)
}

func TestValidate_RolDeUsuario(t *testing.T) {
	ok := dto.UserRequest{Name: "Ana", Email: "ana@melo.com.br", Role: "engenheiro"}
	assert.NoError(t, dto.Validate(ok))

	bad := ok
	bad.Role = "root"
	assert.ErrorIs(t, dto.Validate(bad), domain.ErrInvalidInput)
}

func TestRawValue_AceptaStringNumeroYNull(t *testing.T) {
	var req dto.ShippingEditRequest
	for in, want := range map[string]string{
		`{"value": "10,50"}`: "10,50",
		`{"value": 12.5}`:    "12.5",
		`{"value": null}`:    "",
		`{}`:                 "",
	} {
		req = dto.ShippingEditRequest{}
		require.NoError(t, json.Unmarshal([]byte(in), &req), in)
		assert.Equal(t, want, string(req.Value), in)
	}
}
