package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de pedido conocidos (los asigna la API remota).
const (
	OrderStatusPending  = "pendente"
	OrderStatusApproved = "aprovado"
	OrderStatusCanceled = "cancelado"
)

// LineItem línea de un pedido. LineTotal siempre es Quantity × UnitPrice en reposo;
// nunca se edita directamente.
type LineItem struct {
	Description string
	Quantity    decimal.Decimal
	Unit        string
	UnitPrice   decimal.Decimal
	LineTotal   decimal.Decimal
}

// NewLineItem línea vacía: cantidad 1, sin ítem elegido.
func NewLineItem() LineItem {
	return LineItem{
		Quantity:  decimal.NewFromInt(1),
		UnitPrice: decimal.Zero,
		LineTotal: decimal.Zero,
	}
}

// PurchaseOrder cabecera + líneas de un pedido de compra.
// Sin ID todavía no existe en la API (guardar = crear); con ID guardar = actualizar.
type PurchaseOrder struct {
	ID           string
	Number       string
	Status       string
	SupplierRef  string
	SupplierName string // solo si la API devolvió el fornecedor poblado
	SiteRef      string
	SiteName     string // solo si la API devolvió la obra poblada
	Note         string
	Items        []LineItem
	ShippingCost decimal.Decimal
	GrandTotal   decimal.Decimal
	CreatedAt    time.Time
}

// IsNew true si el pedido aún no fue persistido.
func (o *PurchaseOrder) IsNew() bool { return o.ID == "" }

// Clone copia profunda (las líneas no se comparten con el original).
func (o PurchaseOrder) Clone() PurchaseOrder {
	items := make([]LineItem, len(o.Items))
	copy(items, o.Items)
	o.Items = items
	return o
}

// OrderFilter filtros del listado de pedidos; los vacíos no se envían.
type OrderFilter struct {
	Site     string // obra
	Supplier string // fornecedor
	From     string // YYYY-MM-DD
	To       string // YYYY-MM-DD
}

// CompanyProfile membrete de la empresa compradora.
type CompanyProfile struct {
	Name    string
	Address string
	CNPJ    string
	Phone   string
}
