package procurement

import (
	"github.com/jhoicas/melo-compras/internal/application/dto"
	"github.com/jhoicas/melo-compras/internal/domain/entity"
	"github.com/jhoicas/melo-compras/internal/domain/pricing"
)

// OrderFromDTO convierte y recalcula: los totales que traiga el cliente se descartan.
func OrderFromDTO(in dto.OrderDTO) entity.PurchaseOrder {
	o := entity.PurchaseOrder{
		ID:           in.ID,
		Number:       in.Number,
		Status:       in.Status,
		SupplierRef:  in.SupplierID,
		SupplierName: in.SupplierName,
		SiteRef:      in.SiteID,
		SiteName:     in.SiteName,
		Note:         in.Note,
		ShippingCost: in.ShippingCost,
		Items:        make([]entity.LineItem, 0, len(in.Items)),
	}
	if in.CreatedAt != nil {
		o.CreatedAt = *in.CreatedAt
	}
	for _, it := range in.Items {
		o.Items = append(o.Items, entity.LineItem{
			Description: it.Description,
			Quantity:    it.Quantity,
			Unit:        it.Unit,
			UnitPrice:   it.UnitPrice,
		})
	}
	return pricing.Recalculate(o)
}

// OrderToDTO salida de un pedido.
func OrderToDTO(o entity.PurchaseOrder) dto.OrderDTO {
	out := dto.OrderDTO{
		ID:           o.ID,
		Number:       o.Number,
		Status:       o.Status,
		SupplierID:   o.SupplierRef,
		SupplierName: o.SupplierName,
		SiteID:       o.SiteRef,
		SiteName:     o.SiteName,
		Note:         o.Note,
		ShippingCost: o.ShippingCost,
		GrandTotal:   o.GrandTotal,
		Items:        make([]dto.LineItemDTO, 0, len(o.Items)),
	}
	if !o.CreatedAt.IsZero() {
		t := o.CreatedAt
		out.CreatedAt = &t
	}
	for _, it := range o.Items {
		out.Items = append(out.Items, dto.LineItemDTO{
			Description: it.Description,
			Quantity:    it.Quantity,
			Unit:        it.Unit,
			UnitPrice:   it.UnitPrice,
			LineTotal:   it.LineTotal,
		})
	}
	return out
}

func toDraftResponse(o entity.PurchaseOrder) *dto.DraftResponse {
	lines := make([]string, 0, len(o.Items))
	for _, it := range o.Items {
		lines = append(lines, pricing.FormatAmount(it.LineTotal))
	}
	return &dto.DraftResponse{
		Order:        OrderToDTO(o),
		LineTotals:   lines,
		GrandTotal:   pricing.FormatAmount(o.GrandTotal),
		ShippingCost: pricing.FormatAmount(o.ShippingCost),
	}
}
