package meloapi

import (
	"context"
	"net/http"
	"net/url"

	"github.com/jhoicas/melo-compras/internal/domain"
	"github.com/jhoicas/melo-compras/internal/domain/entity"
	"github.com/jhoicas/melo-compras/internal/domain/repository"
)

var _ repository.PurchaseOrderRepository = (*OrderRepo)(nil)

type lineWire struct {
	Discriminacao string       `json:"discriminacao"`
	Quantidade    looseDecimal `json:"quantidade"`
	Unidade       string       `json:"unidade"`
	PrecoUnitario looseDecimal `json:"precoUnitario"`
	PrecoTotal    looseDecimal `json:"precoTotal"`
}

type orderWire struct {
	ID           string       `json:"_id,omitempty"`
	NumeroPedido looseString  `json:"numeroPedido,omitempty"`
	Status       string       `json:"status,omitempty"`
	Fornecedor   ref          `json:"fornecedor"`
	Obra         ref          `json:"obra"`
	Observacao   string       `json:"observacao"`
	Items        []lineWire   `json:"items"`
	Frete        looseDecimal `json:"frete"`
	TotalGeral   looseDecimal `json:"totalGeral"`
	CreatedAt    *looseTime   `json:"createdAt,omitempty"`
}

// toEntity los totales se copian tal como llegan; el editor los vuelve a derivar.
func (w *orderWire) toEntity() *entity.PurchaseOrder {
	o := &entity.PurchaseOrder{
		ID:           w.ID,
		Number:       string(w.NumeroPedido),
		Status:       w.Status,
		SupplierRef:  w.Fornecedor.ID,
		SupplierName: w.Fornecedor.Name,
		SiteRef:      w.Obra.ID,
		SiteName:     w.Obra.Name,
		Note:         w.Observacao,
		ShippingCost: w.Frete.Decimal(),
		GrandTotal:   w.TotalGeral.Decimal(),
		Items:        make([]entity.LineItem, 0, len(w.Items)),
	}
	if w.CreatedAt != nil {
		o.CreatedAt = w.CreatedAt.t
	}
	for _, l := range w.Items {
		o.Items = append(o.Items, entity.LineItem{
			Description: l.Discriminacao,
			Quantity:    l.Quantidade.Decimal(),
			Unit:        l.Unidade,
			UnitPrice:   l.PrecoUnitario.Decimal(),
			LineTotal:   l.PrecoTotal.Decimal(),
		})
	}
	return o
}

// orderToWire cuerpo para POST/PUT. No envía _id, número, estado ni fecha: los asigna la API.
func orderToWire(o *entity.PurchaseOrder) *orderWire {
	w := &orderWire{
		Fornecedor: ref{ID: o.SupplierRef},
		Obra:       ref{ID: o.SiteRef},
		Observacao: o.Note,
		Frete:      dec(o.ShippingCost),
		TotalGeral: dec(o.GrandTotal),
		Items:      make([]lineWire, 0, len(o.Items)),
	}
	for _, it := range o.Items {
		w.Items = append(w.Items, lineWire{
			Discriminacao: it.Description,
			Quantidade:    dec(it.Quantity),
			Unidade:       it.Unit,
			PrecoUnitario: dec(it.UnitPrice),
			PrecoTotal:    dec(it.LineTotal),
		})
	}
	return w
}

// OrderRepo implementación de PurchaseOrderRepository sobre /pedidos.
type OrderRepo struct {
	c *Client
}

// NewOrderRepository construye el adaptador.
func NewOrderRepository(c *Client) *OrderRepo {
	return &OrderRepo{c: c}
}

// List GET /pedidos con filtros obra, fornecedor, dataInicio, dataFim (los vacíos se omiten).
func (r *OrderRepo) List(ctx context.Context, sess entity.Session, f entity.OrderFilter) ([]*entity.PurchaseOrder, error) {
	q := url.Values{}
	if f.Site != "" {
		q.Set("obra", f.Site)
	}
	if f.Supplier != "" {
		q.Set("fornecedor", f.Supplier)
	}
	if f.From != "" {
		q.Set("dataInicio", f.From)
	}
	if f.To != "" {
		q.Set("dataFim", f.To)
	}
	var out []orderWire
	if err := r.c.do(ctx, sess, http.MethodGet, "/pedidos", q, nil, &out); err != nil {
		return nil, err
	}
	list := make([]*entity.PurchaseOrder, 0, len(out))
	for i := range out {
		list = append(list, out[i].toEntity())
	}
	return list, nil
}

// GetByID GET /pedidos/:id.
func (r *OrderRepo) GetByID(ctx context.Context, sess entity.Session, id string) (*entity.PurchaseOrder, error) {
	var env orderEnvelope
	if err := r.c.do(ctx, sess, http.MethodGet, "/pedidos/"+escape(id), nil, nil, &env); err != nil {
		return nil, err
	}
	return r.decoded(&env, id)
}

// Create POST /pedidos.
func (r *OrderRepo) Create(ctx context.Context, sess entity.Session, o *entity.PurchaseOrder) (*entity.PurchaseOrder, error) {
	var env orderEnvelope
	if err := r.c.do(ctx, sess, http.MethodPost, "/pedidos", nil, orderToWire(o), &env); err != nil {
		return nil, err
	}
	return r.decoded(&env, "")
}

// Update PUT /pedidos/:id.
func (r *OrderRepo) Update(ctx context.Context, sess entity.Session, o *entity.PurchaseOrder) (*entity.PurchaseOrder, error) {
	if o.ID == "" {
		return nil, domain.ErrInvalidInput
	}
	var env orderEnvelope
	if err := r.c.do(ctx, sess, http.MethodPut, "/pedidos/"+escape(o.ID), nil, orderToWire(o), &env); err != nil {
		return nil, err
	}
	return r.decoded(&env, o.ID)
}

// Delete DELETE /pedidos/:id.
func (r *OrderRepo) Delete(ctx context.Context, sess entity.Session, id string) error {
	return r.c.do(ctx, sess, http.MethodDelete, "/pedidos/"+escape(id), nil, nil, nil)
}

// Duplicate POST /pedidos/:id/copy. La API responde {"pedido": {...}}.
func (r *OrderRepo) Duplicate(ctx context.Context, sess entity.Session, id string) (*entity.PurchaseOrder, error) {
	var env orderEnvelope
	if err := r.c.do(ctx, sess, http.MethodPost, "/pedidos/"+escape(id)+"/copy", nil, nil, &env); err != nil {
		return nil, err
	}
	return r.decoded(&env, "")
}

// decoded si la API respondió sin cuerpo (o sin _id) en un update, conserva el id conocido.
func (r *OrderRepo) decoded(env *orderEnvelope, knownID string) (*entity.PurchaseOrder, error) {
	o := env.order().toEntity()
	if o.ID == "" {
		o.ID = knownID
	}
	return o, nil
}
