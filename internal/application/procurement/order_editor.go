// Package procurement casos de uso de pedidos de compra: edición de borradores con el
// motor de precios, persistencia en la API remota, exportación y conversión de
// solicitações en pedidos.
package procurement

import (
	"context"
	"fmt"

	"github.com/jhoicas/melo-compras/internal/application/dto"
	"github.com/jhoicas/melo-compras/internal/domain"
	"github.com/jhoicas/melo-compras/internal/domain/entity"
	"github.com/jhoicas/melo-compras/internal/domain/pricing"
	"github.com/jhoicas/melo-compras/internal/domain/repository"
	"github.com/jhoicas/melo-compras/pkg/logger"
)

// OrderEditor edición y persistencia de pedidos. El borrador viaja completo en cada
// llamada; el editor no guarda estado entre peticiones.
type OrderEditor struct {
	orders  repository.PurchaseOrderRepository
	catalog repository.CatalogRepository
	log     *logger.Logger
}

// NewOrderEditor construye el caso de uso.
func NewOrderEditor(orders repository.PurchaseOrderRepository, catalog repository.CatalogRepository, log *logger.Logger) *OrderEditor {
	if log == nil {
		log = logger.Nop()
	}
	return &OrderEditor{orders: orders, catalog: catalog, log: log.Named("order_editor")}
}

// NewDraft pedido vacío: sin líneas, frete 0, total 0.
func (e *OrderEditor) NewDraft() *dto.DraftResponse {
	return toDraftResponse(pricing.Recalculate(entity.PurchaseOrder{Status: entity.OrderStatusPending}))
}

// Recalculate devuelve el borrador con todos los totales derivados de nuevo.
func (e *OrderEditor) Recalculate(in dto.DraftRequest) *dto.DraftResponse {
	return toDraftResponse(OrderFromDTO(in.Order))
}

// AddLine agrega una línea vacía al final del borrador.
func (e *OrderEditor) AddLine(in dto.DraftRequest) *dto.DraftResponse {
	return toDraftResponse(pricing.AddLine(OrderFromDTO(in.Order)))
}

// RemoveLine quita la línea index.
func (e *OrderEditor) RemoveLine(in dto.DraftRequest, index int) (*dto.DraftResponse, error) {
	o := OrderFromDTO(in.Order)
	if err := checkIndex(o, index); err != nil {
		return nil, err
	}
	return toDraftResponse(pricing.RemoveLine(o, index)), nil
}

// SetLineField asigna un campo de la línea index. Solo al editar la descripción se
// consulta el catálogo (una vez por llamada).
func (e *OrderEditor) SetLineField(ctx context.Context, sess entity.Session, in dto.LineEditRequest, index int) (*dto.DraftResponse, error) {
	field, ok := pricing.ParseField(in.Field)
	if !ok {
		return nil, fmt.Errorf("%w: campo %q no editable", domain.ErrInvalidInput, in.Field)
	}
	o := OrderFromDTO(in.Order)
	if err := checkIndex(o, index); err != nil {
		return nil, err
	}

	var catalog pricing.Catalog
	if field == pricing.FieldDescription {
		items, err := e.catalog.List(ctx, sess)
		if err != nil {
			return nil, fmt.Errorf("cargar catálogo: %w", err)
		}
		catalog = pricing.NewCatalogIndex(items)
	}
	return toDraftResponse(pricing.SetLineField(o, index, field, string(in.Value), catalog)), nil
}

// SetShipping fija el frete del borrador.
func (e *OrderEditor) SetShipping(in dto.ShippingEditRequest) *dto.DraftResponse {
	return toDraftResponse(pricing.SetShipping(OrderFromDTO(in.Order), string(in.Value)))
}

// Load trae un pedido guardado y lo recalcula antes de devolverlo.
func (e *OrderEditor) Load(ctx context.Context, sess entity.Session, id string) (*dto.DraftResponse, error) {
	o, err := e.orders.GetByID(ctx, sess, id)
	if err != nil {
		return nil, err
	}
	e.warnIfDrifted(o)
	return toDraftResponse(pricing.Recalculate(*o)), nil
}

// Save exige fornecedor y obra. Sin id crea, con id actualiza. Se envían los totales
// recalculados, nunca los que mandó el cliente.
func (e *OrderEditor) Save(ctx context.Context, sess entity.Session, in dto.OrderDTO) (*dto.DraftResponse, error) {
	if err := dto.Validate(in); err != nil {
		return nil, err
	}
	o := OrderFromDTO(in)

	var (
		saved *entity.PurchaseOrder
		err   error
	)
	if o.IsNew() {
		saved, err = e.orders.Create(ctx, sess, &o)
	} else {
		saved, err = e.orders.Update(ctx, sess, &o)
	}
	if err != nil {
		return nil, err
	}
	e.log.Info().Str("order_id", saved.ID).Str("grand_total", o.GrandTotal.String()).Bool("created", o.IsNew()).Msg("pedido guardado")
	return toDraftResponse(pricing.Recalculate(mergeSaved(o, saved))), nil
}

// mergeSaved si la API respondió sin ítems (204 o cuerpo parcial) se parte de lo enviado
// y solo se toman los campos que asigna el servidor.
func mergeSaved(sent entity.PurchaseOrder, reply *entity.PurchaseOrder) entity.PurchaseOrder {
	if len(reply.Items) > 0 {
		return *reply
	}
	out := sent.Clone()
	if reply.ID != "" {
		out.ID = reply.ID
	}
	if reply.Number != "" {
		out.Number = reply.Number
	}
	if reply.Status != "" {
		out.Status = reply.Status
	}
	if !reply.CreatedAt.IsZero() {
		out.CreatedAt = reply.CreatedAt
	}
	return out
}

// Delete elimina el pedido en la API remota.
func (e *OrderEditor) Delete(ctx context.Context, sess entity.Session, id string) error {
	return e.orders.Delete(ctx, sess, id)
}

// Duplicate crea una copia del pedido y la devuelve lista para editar.
func (e *OrderEditor) Duplicate(ctx context.Context, sess entity.Session, id string) (*dto.DraftResponse, error) {
	o, err := e.orders.Duplicate(ctx, sess, id)
	if err != nil {
		return nil, err
	}
	return toDraftResponse(pricing.Recalculate(*o)), nil
}

// List pedidos según filtro; fechas en formato YYYY-MM-DD.
func (e *OrderEditor) List(ctx context.Context, sess entity.Session, f dto.OrderFilterRequest) (dto.ListResponse[dto.OrderDTO], error) {
	if err := dto.Validate(f); err != nil {
		return dto.ListResponse[dto.OrderDTO]{}, err
	}
	orders, err := e.orders.List(ctx, sess, filterFromDTO(f))
	if err != nil {
		return dto.ListResponse[dto.OrderDTO]{}, err
	}
	out := make([]dto.OrderDTO, 0, len(orders))
	for _, o := range orders {
		out = append(out, OrderToDTO(pricing.Recalculate(*o)))
	}
	return dto.NewList(out), nil
}

func filterFromDTO(f dto.OrderFilterRequest) entity.OrderFilter {
	return entity.OrderFilter{Site: f.Site, Supplier: f.Supplier, From: f.From, To: f.To}
}

func checkIndex(o entity.PurchaseOrder, index int) error {
	if index < 0 || index >= len(o.Items) {
		return fmt.Errorf("%w: línea %d inexistente (el pedido tiene %d)", domain.ErrInvalidInput, index, len(o.Items))
	}
	return nil
}

// warnIfDrifted registra pedidos guardados cuyo total no coincide con el recalculado.
func (e *OrderEditor) warnIfDrifted(o *entity.PurchaseOrder) {
	want := pricing.Recalculate(*o).GrandTotal
	if !want.Equal(o.GrandTotal) {
		e.log.Warn().Str("order_id", o.ID).Str("stored", o.GrandTotal.String()).Str("computed", want.String()).Msg("total guardado difiere del recalculado")
	}
}
