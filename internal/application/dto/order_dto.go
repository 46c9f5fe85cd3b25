package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// LineItemDTO línea de pedido. line_total se ignora en la entrada: siempre se recalcula.
type LineItemDTO struct {
	Description string          `json:"description"`
	Quantity    decimal.Decimal `json:"quantity"`
	Unit        string          `json:"unit"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	LineTotal   decimal.Decimal `json:"line_total"`
}

// OrderDTO pedido de compra en la API del BFF. Los borradores viajan completos en cada
// operación de edición (el servidor no guarda estado). supplier_id y site_id solo se
// exigen al guardar.
type OrderDTO struct {
	ID           string          `json:"id,omitempty"`
	Number       string          `json:"number,omitempty"`
	Status       string          `json:"status,omitempty"`
	SupplierID   string          `json:"supplier_id" validate:"required"`
	SupplierName string          `json:"supplier_name,omitempty"`
	SiteID       string          `json:"site_id" validate:"required"`
	SiteName     string          `json:"site_name,omitempty"`
	Note         string          `json:"note"`
	Items        []LineItemDTO   `json:"items"`
	ShippingCost decimal.Decimal `json:"shipping_cost"`
	GrandTotal   decimal.Decimal `json:"grand_total"`
	CreatedAt    *time.Time      `json:"created_at,omitempty"`
}

// DraftResponse pedido recalculado más los totales ya formateados para mostrar.
type DraftResponse struct {
	Order        OrderDTO `json:"order"`
	LineTotals   []string `json:"line_totals_display"`
	GrandTotal   string   `json:"grand_total_display"`
	ShippingCost string   `json:"shipping_cost_display"`
}

// DraftRequest borrador sin operación (recalcular, exportar a PDF, agregar línea).
type DraftRequest struct {
	Order OrderDTO `json:"order"`
}

// LineEditRequest edición de un campo de una línea del borrador.
// field: description | quantity | unit | unit_price (también los nombres de la API).
type LineEditRequest struct {
	Order OrderDTO `json:"order"`
	Field string   `json:"field"`
	Value RawValue `json:"value"`
}

// ShippingEditRequest nuevo valor de frete para el borrador.
type ShippingEditRequest struct {
	Order OrderDTO `json:"order"`
	Value RawValue `json:"value"`
}

// OrderFilterRequest filtros del listado; usa los nombres de la API remota.
type OrderFilterRequest struct {
	Site     string `query:"obra" json:"obra"`
	Supplier string `query:"fornecedor" json:"fornecedor"`
	From     string `query:"dataInicio" json:"dataInicio" validate:"omitempty,datetime=2006-01-02"`
	To       string `query:"dataFim" json:"dataFim" validate:"omitempty,datetime=2006-01-02"`
}
