package entity

import "github.com/shopspring/decimal"

// PurchaseRequest solicitação de materiales levantada por un ingeniero para una obra;
// un admin la convierte después en pedido de compra.
type PurchaseRequest struct {
	ID          string
	SiteRef     string
	SiteName    string
	SupplierRef string
	Note        string
	Shipping    decimal.Decimal
	Items       []RequestItem
}

// RequestItem línea de la solicitação. Description/Unit/UnitPrice solo vienen cuando
// la API devuelve el ítem del catálogo poblado.
type RequestItem struct {
	ItemID      string
	Quantity    decimal.Decimal
	Description string
	Unit        string
	UnitPrice   decimal.Decimal
}
