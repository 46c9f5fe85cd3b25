// Package pricing mantiene consistentes los totales de un pedido de compra.
//
// Cada operación recibe un pedido y devuelve otro nuevo: la entrada nunca se modifica.
// El total general se recalcula completo en cada operación a partir de las líneas
// (ComputeGrandTotal), nunca se acumula de forma incremental.
//
// El motor no devuelve errores: la entrada numérica malformada vale 0 y una
// descripción que no está en el catálogo deja unidad y precio como estaban.
package pricing

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/melo-compras/internal/domain/entity"
)

// Field campo editable de una línea.
type Field string

const (
	FieldDescription Field = "description"
	FieldQuantity    Field = "quantity"
	FieldUnit        Field = "unit"
	FieldUnitPrice   Field = "unitPrice"
)

// ParseField acepta el nombre en inglés, snake_case o el de la API (português).
func ParseField(s string) (Field, bool) {
	switch s {
	case "description", "discriminacao":
		return FieldDescription, true
	case "quantity", "quantidade":
		return FieldQuantity, true
	case "unit", "unidade":
		return FieldUnit, true
	case "unitPrice", "unit_price", "precoUnitario":
		return FieldUnitPrice, true
	}
	return "", false
}

// affectsTotal campos cuya edición obliga a recalcular el total de la línea.
func (f Field) affectsTotal() bool {
	return f == FieldQuantity || f == FieldUnitPrice || f == FieldDescription
}

// LineTotal cantidad × precio unitario.
func LineTotal(quantity, unitPrice decimal.Decimal) decimal.Decimal {
	return quantity.Mul(unitPrice)
}

// ComputeGrandTotal flete + Σ total de línea. Única fuente de verdad del agregado.
// Un flete negativo cuenta como 0.
func ComputeGrandTotal(items []entity.LineItem, shipping decimal.Decimal) decimal.Decimal {
	total := NonNegative(shipping)
	for _, it := range items {
		total = total.Add(it.LineTotal)
	}
	return total
}

// AddLine agrega una línea vacía (cantidad 1, precio 0) al final.
func AddLine(order entity.PurchaseOrder) entity.PurchaseOrder {
	out := order.Clone()
	line := entity.NewLineItem()
	line.LineTotal = LineTotal(line.Quantity, line.UnitPrice)
	out.Items = append(out.Items, line)
	out.GrandTotal = ComputeGrandTotal(out.Items, out.ShippingCost)
	return out
}

// RemoveLine quita la línea index. Un índice fuera de rango no cambia las líneas.
func RemoveLine(order entity.PurchaseOrder, index int) entity.PurchaseOrder {
	out := order.Clone()
	if index >= 0 && index < len(out.Items) {
		out.Items = append(out.Items[:index], out.Items[index+1:]...)
	}
	out.GrandTotal = ComputeGrandTotal(out.Items, out.ShippingCost)
	return out
}

// SetLineField asigna raw al campo de la línea index y recalcula.
// Elegir una descripción que existe en el catálogo pisa unidad y precio con los del
// catálogo; si no existe, unidad y precio quedan como estaban. Después de elegir el
// ítem el precio sigue siendo editable y no se vuelve a resolver hasta el próximo
// cambio de descripción.
func SetLineField(order entity.PurchaseOrder, index int, field Field, raw string, catalog Catalog) entity.PurchaseOrder {
	out := order.Clone()
	if index < 0 || index >= len(out.Items) {
		out.GrandTotal = ComputeGrandTotal(out.Items, out.ShippingCost)
		return out
	}

	line := &out.Items[index]
	switch field {
	case FieldDescription:
		line.Description = raw
		if catalog != nil {
			if item, ok := catalog.FindByDescription(raw); ok {
				line.Unit = item.Unit
				line.UnitPrice = NonNegative(item.UnitPrice)
			}
		}
	case FieldQuantity:
		line.Quantity = ParseAmount(raw)
	case FieldUnit:
		line.Unit = raw
	case FieldUnitPrice:
		line.UnitPrice = ParseAmount(raw)
	}

	if field.affectsTotal() {
		line.LineTotal = LineTotal(line.Quantity, line.UnitPrice)
	}
	out.GrandTotal = ComputeGrandTotal(out.Items, out.ShippingCost)
	return out
}

// SetShipping fija el flete (0 si no es numérico) y recalcula el total general.
func SetShipping(order entity.PurchaseOrder, raw string) entity.PurchaseOrder {
	out := order.Clone()
	out.ShippingCost = ParseAmount(raw)
	out.GrandTotal = ComputeGrandTotal(out.Items, out.ShippingCost)
	return out
}

// Recalculate vuelve a derivar todos los totales de línea y el total general.
// Se usa al cargar un pedido persistido o recibido de un cliente: los totales
// guardados no se toman como válidos.
func Recalculate(order entity.PurchaseOrder) entity.PurchaseOrder {
	out := order.Clone()
	for i := range out.Items {
		line := &out.Items[i]
		line.Quantity = NonNegative(line.Quantity)
		line.UnitPrice = NonNegative(line.UnitPrice)
		line.LineTotal = LineTotal(line.Quantity, line.UnitPrice)
	}
	out.ShippingCost = NonNegative(out.ShippingCost)
	out.GrandTotal = ComputeGrandTotal(out.Items, out.ShippingCost)
	return out
}
