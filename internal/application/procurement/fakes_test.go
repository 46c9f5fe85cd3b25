package procurement_test

import (
	"context"
	"io"
	"strconv"

	"github.com/jhoicas/melo-compras/internal/application/procurement"
	"github.com/jhoicas/melo-compras/internal/domain"
	"github.com/jhoicas/melo-compras/internal/domain/entity"
)

// fakeOrders repositorio de pedidos en memoria.
type fakeOrders struct {
	byID    map[string]*entity.PurchaseOrder
	created []*entity.PurchaseOrder
	updated []*entity.PurchaseOrder
	filter  entity.OrderFilter
	seq     int
	// reply si no es nil reemplaza la respuesta de Create/Update (API que contesta parcial).
	reply func(saved *entity.PurchaseOrder) *entity.PurchaseOrder
}

func newFakeOrders(orders ...*entity.PurchaseOrder) *fakeOrders {
	f := &fakeOrders{byID: map[string]*entity.PurchaseOrder{}}
	for _, o := range orders {
		f.byID[o.ID] = o
	}
	return f
}

func (f *fakeOrders) List(_ context.Context, _ entity.Session, filter entity.OrderFilter) ([]*entity.PurchaseOrder, error) {
	f.filter = filter
	out := make([]*entity.PurchaseOrder, 0, len(f.byID))
	for _, o := range f.byID {
		out = append(out, o)
	}
	return out, nil
}

func (f *fakeOrders) GetByID(_ context.Context, _ entity.Session, id string) (*entity.PurchaseOrder, error) {
	o, ok := f.byID[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	c := o.Clone()
	return &c, nil
}

func (f *fakeOrders) Create(_ context.Context, _ entity.Session, o *entity.PurchaseOrder) (*entity.PurchaseOrder, error) {
	f.seq++
	c := o.Clone()
	c.ID = "p" + strconv.Itoa(f.seq)
	c.Number = strconv.Itoa(100 + f.seq)
	f.byID[c.ID] = &c
	f.created = append(f.created, &c)
	if f.reply != nil {
		return f.reply(&c), nil
	}
	return &c, nil
}

func (f *fakeOrders) Update(_ context.Context, _ entity.Session, o *entity.PurchaseOrder) (*entity.PurchaseOrder, error) {
	if _, ok := f.byID[o.ID]; !ok {
		return nil, domain.ErrNotFound
	}
	c := o.Clone()
	f.byID[c.ID] = &c
	f.updated = append(f.updated, &c)
	if f.reply != nil {
		return f.reply(&c), nil
	}
	return &c, nil
}

func (f *fakeOrders) Delete(_ context.Context, _ entity.Session, id string) error {
	if _, ok := f.byID[id]; !ok {
		return domain.ErrNotFound
	}
	delete(f.byID, id)
	return nil
}

func (f *fakeOrders) Duplicate(ctx context.Context, sess entity.Session, id string) (*entity.PurchaseOrder, error) {
	o, err := f.GetByID(ctx, sess, id)
	if err != nil {
		return nil, err
	}
	o.ID = ""
	return f.Create(ctx, sess, o)
}

// fakeCatalog catálogo en memoria; calls cuenta los List.
type fakeCatalog struct {
	items []*entity.CatalogItem
	calls int
	err   error
}

func (f *fakeCatalog) List(context.Context, entity.Session) ([]*entity.CatalogItem, error) {
	f.calls++
	return f.items, f.err
}
func (f *fakeCatalog) GetByID(context.Context, entity.Session, string) (*entity.CatalogItem, error) {
	return nil, domain.ErrNotFound
}
func (f *fakeCatalog) Create(_ context.Context, _ entity.Session, it *entity.CatalogItem) (*entity.CatalogItem, error) {
	return it, nil
}
func (f *fakeCatalog) Update(_ context.Context, _ entity.Session, it *entity.CatalogItem) (*entity.CatalogItem, error) {
	return it, nil
}
func (f *fakeCatalog) Delete(context.Context, entity.Session, string) error { return nil }

type fakeSuppliers struct {
	list []*entity.Supplier
	err  error
}

func (f *fakeSuppliers) List(context.Context, entity.Session) ([]*entity.Supplier, error) {
	return f.list, f.err
}
func (f *fakeSuppliers) GetByID(context.Context, entity.Session, string) (*entity.Supplier, error) {
	return nil, domain.ErrNotFound
}
func (f *fakeSuppliers) Create(_ context.Context, _ entity.Session, s *entity.Supplier) (*entity.Supplier, error) {
	return s, nil
}
func (f *fakeSuppliers) Update(_ context.Context, _ entity.Session, s *entity.Supplier) (*entity.Supplier, error) {
	return s, nil
}
func (f *fakeSuppliers) Delete(context.Context, entity.Session, string) error { return nil }

type fakeSites struct {
	list []*entity.Site
}

func (f *fakeSites) List(context.Context, entity.Session) ([]*entity.Site, error) { return f.list, nil }
func (f *fakeSites) GetByID(context.Context, entity.Session, string) (*entity.Site, error) {
	return nil, domain.ErrNotFound
}
func (f *fakeSites) Create(_ context.Context, _ entity.Session, s *entity.Site) (*entity.Site, error) {
	return s, nil
}
func (f *fakeSites) Update(_ context.Context, _ entity.Session, s *entity.Site) (*entity.Site, error) {
	return s, nil
}
func (f *fakeSites) Delete(context.Context, entity.Session, string) error { return nil }

type fakeRequests struct {
	byID map[string]*entity.PurchaseRequest
}

func (f *fakeRequests) List(context.Context, entity.Session) ([]*entity.PurchaseRequest, error) {
	return nil, nil
}
func (f *fakeRequests) GetByID(_ context.Context, _ entity.Session, id string) (*entity.PurchaseRequest, error) {
	r, ok := f.byID[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return r, nil
}
func (f *fakeRequests) Create(_ context.Context, _ entity.Session, r *entity.PurchaseRequest) (*entity.PurchaseRequest, error) {
	return r, nil
}
func (f *fakeRequests) Update(_ context.Context, _ entity.Session, r *entity.PurchaseRequest) (*entity.PurchaseRequest, error) {
	return r, nil
}
func (f *fakeRequests) Delete(context.Context, entity.Session, string) error { return nil }

// capturePDF guarda el último documento recibido.
type capturePDF struct {
	last procurement.OrderDocument
}

func (c *capturePDF) GenerateOrderPDF(_ context.Context, doc procurement.OrderDocument) ([]byte, error) {
	c.last = doc
	return []byte("%PDF-fake"), nil
}

type captureSheet struct {
	rows []procurement.OrderDocument
}

func (c *captureSheet) WriteOrders(_ context.Context, w io.Writer, rows []procurement.OrderDocument) error {
	c.rows = rows
	_, err := io.WriteString(w, "xlsx")
	return err
}
