package procurement

import (
	"context"
	"io"

	"github.com/jhoicas/melo-compras/internal/domain/entity"
)

// OrderDocument datos ya resueltos para imprimir un pedido: los nombres de
// fornecedor y obra vienen con "N/A" cuando no se pudieron resolver.
type OrderDocument struct {
	Company      entity.CompanyProfile
	Order        entity.PurchaseOrder
	SupplierName string
	SiteName     string
}

// FileName pedido_<número>.pdf, o pedido_novo.pdf si aún no tiene número.
func (d OrderDocument) FileName() string {
	n := d.Order.Number
	if n == "" {
		n = "novo"
	}
	return "pedido_" + n + ".pdf"
}

// OrderPDFGenerator puerto de salida para la representación impresa del pedido.
type OrderPDFGenerator interface {
	GenerateOrderPDF(ctx context.Context, doc OrderDocument) ([]byte, error)
}

// OrdersSheetWriter puerto de salida para exportar el listado de pedidos a planilla.
type OrdersSheetWriter interface {
	WriteOrders(ctx context.Context, w io.Writer, rows []OrderDocument) error
}
