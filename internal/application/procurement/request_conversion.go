package procurement

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/melo-compras/internal/application/dto"
	"github.com/jhoicas/melo-compras/internal/domain"
	"github.com/jhoicas/melo-compras/internal/domain/entity"
	"github.com/jhoicas/melo-compras/internal/domain/pricing"
	"github.com/jhoicas/melo-compras/internal/domain/repository"
)

const (
	unknownDescription = "Desconhecido"
	unknownUnit        = "N/A"
)

// RequestConversion convierte una solicitação en pedido de compra.
type RequestConversion struct {
	requests repository.PurchaseRequestRepository
	catalog  repository.CatalogRepository
	editor   *OrderEditor
}

// NewRequestConversion construye el caso de uso.
func NewRequestConversion(requests repository.PurchaseRequestRepository, catalog repository.CatalogRepository, editor *OrderEditor) *RequestConversion {
	return &RequestConversion{requests: requests, catalog: catalog, editor: editor}
}

// ToOrder arma el pedido línea por línea con el motor de precios y lo guarda.
// supplierID reemplaza al fornecedor de la solicitação si viene no vacío.
func (uc *RequestConversion) ToOrder(ctx context.Context, sess entity.Session, requestID, supplierID string) (*dto.DraftResponse, error) {
	req, err := uc.requests.GetByID(ctx, sess, requestID)
	if err != nil {
		return nil, err
	}
	if len(req.Items) == 0 {
		return nil, fmt.Errorf("%w: la solicitação no tiene ítems", domain.ErrInvalidInput)
	}

	byID, err := uc.catalogByID(ctx, sess, req.Items)
	if err != nil {
		return nil, err
	}

	order := BuildOrderFromRequest(req, byID)
	if supplierID != "" {
		order.SupplierRef = supplierID
	}
	return uc.editor.Save(ctx, sess, OrderToDTO(order))
}

// catalogByID solo consulta el catálogo si algún ítem llegó sin poblar.
func (uc *RequestConversion) catalogByID(ctx context.Context, sess entity.Session, items []entity.RequestItem) (map[string]entity.CatalogItem, error) {
	idx := map[string]entity.CatalogItem{}
	need := false
	for _, it := range items {
		if it.Description == "" {
			need = true
			break
		}
	}
	if !need {
		return idx, nil
	}
	list, err := uc.catalog.List(ctx, sess)
	if err != nil {
		return nil, fmt.Errorf("cargar catálogo: %w", err)
	}
	for _, c := range list {
		idx[c.ID] = *c
	}
	return idx, nil
}

// BuildOrderFromRequest pedido a partir de la solicitação. Cada ítem pasa por el motor
// (AddLine + asignación de campos), así que el total general incluye el frete.
// Un ítem que no se puede resolver queda como "Desconhecido", unidad "N/A", precio 0.
func BuildOrderFromRequest(req *entity.PurchaseRequest, catalog map[string]entity.CatalogItem) entity.PurchaseOrder {
	o := entity.PurchaseOrder{
		Status:      entity.OrderStatusPending,
		SupplierRef: req.SupplierRef,
		SiteRef:     req.SiteRef,
		SiteName:    req.SiteName,
		Note:        req.Note,
	}
	for i, it := range req.Items {
		desc, unit, price := it.Description, it.Unit, it.UnitPrice
		if desc == "" {
			if c, ok := catalog[it.ItemID]; ok {
				desc, unit, price = c.Description, c.Unit, c.UnitPrice
			}
		}
		if desc == "" {
			desc = unknownDescription
		}
		if unit == "" {
			unit = unknownUnit
		}

		o = pricing.AddLine(o)
		o = pricing.SetLineField(o, i, pricing.FieldDescription, desc, nil)
		o = pricing.SetLineField(o, i, pricing.FieldUnit, unit, nil)
		o = pricing.SetLineField(o, i, pricing.FieldUnitPrice, amountText(price), nil)
		o = pricing.SetLineField(o, i, pricing.FieldQuantity, amountText(it.Quantity), nil)
	}
	return pricing.SetShipping(o, amountText(req.Shipping))
}

func amountText(d decimal.Decimal) string { return d.String() }
