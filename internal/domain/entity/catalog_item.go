package entity

import "github.com/shopspring/decimal"

// CatalogItem ítem del catálogo de materiales. Description ("discriminação") es la
// clave con la que el editor de pedidos resuelve unidad y precio.
type CatalogItem struct {
	ID          string
	Description string
	Unit        string
	UnitPrice   decimal.Decimal
}
