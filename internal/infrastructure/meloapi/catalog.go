package meloapi

import (
	"context"

	"github.com/jhoicas/melo-compras/internal/domain/entity"
	"github.com/jhoicas/melo-compras/internal/domain/repository"
)

var _ repository.CatalogRepository = (*CatalogRepo)(nil)

type catalogItemWire struct {
	ID            string       `json:"_id,omitempty"`
	Discriminacao string       `json:"discriminacao"`
	Unidade       string       `json:"unidade"`
	PrecoUnitario looseDecimal `json:"precoUnitario"`
}

func (w *catalogItemWire) toEntity() *entity.CatalogItem {
	return &entity.CatalogItem{
		ID:          w.ID,
		Description: w.Discriminacao,
		Unit:        w.Unidade,
		UnitPrice:   w.PrecoUnitario.Decimal(),
	}
}

func catalogItemToWire(it *entity.CatalogItem) *catalogItemWire {
	return &catalogItemWire{
		Discriminacao: it.Description,
		Unidade:       it.Unit,
		PrecoUnitario: dec(it.UnitPrice),
	}
}

// CatalogRepo catálogo de materiales sobre /items.
type CatalogRepo struct {
	res resource[catalogItemWire]
}

// NewCatalogRepository construye el adaptador.
func NewCatalogRepository(c *Client) *CatalogRepo {
	return &CatalogRepo{res: resource[catalogItemWire]{c: c, path: "/items"}}
}

func (r *CatalogRepo) List(ctx context.Context, sess entity.Session) ([]*entity.CatalogItem, error) {
	ws, err := r.res.list(ctx, sess)
	if err != nil {
		return nil, err
	}
	out := make([]*entity.CatalogItem, 0, len(ws))
	for i := range ws {
		out = append(out, ws[i].toEntity())
	}
	return out, nil
}

func (r *CatalogRepo) GetByID(ctx context.Context, sess entity.Session, id string) (*entity.CatalogItem, error) {
	w, err := r.res.get(ctx, sess, id)
	if err != nil {
		return nil, err
	}
	return w.toEntity(), nil
}

func (r *CatalogRepo) Create(ctx context.Context, sess entity.Session, it *entity.CatalogItem) (*entity.CatalogItem, error) {
	w, err := r.res.create(ctx, sess, catalogItemToWire(it))
	if err != nil {
		return nil, err
	}
	return w.toEntity(), nil
}

func (r *CatalogRepo) Update(ctx context.Context, sess entity.Session, it *entity.CatalogItem) (*entity.CatalogItem, error) {
	w, err := r.res.update(ctx, sess, it.ID, catalogItemToWire(it))
	if err != nil {
		return nil, err
	}
	out := w.toEntity()
	if out.ID == "" {
		out.ID = it.ID
	}
	return out, nil
}

func (r *CatalogRepo) Delete(ctx context.Context, sess entity.Session, id string) error {
	return r.res.delete(ctx, sess, id)
}
