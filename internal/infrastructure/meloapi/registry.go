package meloapi

import (
	"context"

	"github.com/jhoicas/melo-compras/internal/domain/entity"
	"github.com/jhoicas/melo-compras/internal/domain/repository"
)

var (
	_ repository.SupplierRepository        = (*SupplierRepo)(nil)
	_ repository.SiteRepository            = (*SiteRepo)(nil)
	_ repository.EngineerRepository        = (*EngineerRepo)(nil)
	_ repository.PurchaseRequestRepository = (*RequestRepo)(nil)
)

// mapAll convierte una lista de wire a entidades.
func mapAll[W any, E any](ws []W, conv func(*W) *E) []*E {
	out := make([]*E, 0, len(ws))
	for i := range ws {
		out = append(out, conv(&ws[i]))
	}
	return out
}

// keepID completa el id cuando la API respondió sin él.
func keepID(got *string, known string) {
	if *got == "" {
		*got = known
	}
}

// ── Fornecedores ──────────────────────────────────────────────────────────────

type supplierWire struct {
	ID           string `json:"_id,omitempty"`
	Fornecedor   string `json:"fornecedor"`
	NomeFantasia string `json:"nomeFantasia"`
	Endereco     string `json:"endereco"`
	Cidade       string `json:"cidade"`
	Estado       string `json:"estado"`
	CEP          string `json:"cep"`
	Telefone     string `json:"telefone"`
	Email        string `json:"email"`
	CNPJ         string `json:"cnpj"`
	InscEstadual string `json:"inscEstadual"`
}

func (w *supplierWire) toEntity() *entity.Supplier {
	return &entity.Supplier{
		ID: w.ID, Name: w.Fornecedor, TradeName: w.NomeFantasia, Address: w.Endereco,
		City: w.Cidade, State: w.Estado, ZipCode: w.CEP, Phone: w.Telefone, Email: w.Email,
		CNPJ: w.CNPJ, StateRegistration: w.InscEstadual,
	}
}

func supplierToWire(s *entity.Supplier) *supplierWire {
	return &supplierWire{
		Fornecedor: s.Name, NomeFantasia: s.TradeName, Endereco: s.Address, Cidade: s.City,
		Estado: s.State, CEP: s.ZipCode, Telefone: s.Phone, Email: s.Email, CNPJ: s.CNPJ,
		InscEstadual: s.StateRegistration,
	}
}

// SupplierRepo fornecedores sobre /fornecedores.
type SupplierRepo struct {
	res resource[supplierWire]
}

// NewSupplierRepository construye el adaptador.
func NewSupplierRepository(c *Client) *SupplierRepo {
	return &SupplierRepo{res: resource[supplierWire]{c: c, path: "/fornecedores"}}
}

func (r *SupplierRepo) List(ctx context.Context, sess entity.Session) ([]*entity.Supplier, error) {
	ws, err := r.res.list(ctx, sess)
	if err != nil {
		return nil, err
	}
	return mapAll(ws, (*supplierWire).toEntity), nil
}

func (r *SupplierRepo) GetByID(ctx context.Context, sess entity.Session, id string) (*entity.Supplier, error) {
	w, err := r.res.get(ctx, sess, id)
	if err != nil {
		return nil, err
	}
	return w.toEntity(), nil
}

func (r *SupplierRepo) Create(ctx context.Context, sess entity.Session, s *entity.Supplier) (*entity.Supplier, error) {
	w, err := r.res.create(ctx, sess, supplierToWire(s))
	if err != nil {
		return nil, err
	}
	return w.toEntity(), nil
}

func (r *SupplierRepo) Update(ctx context.Context, sess entity.Session, s *entity.Supplier) (*entity.Supplier, error) {
	w, err := r.res.update(ctx, sess, s.ID, supplierToWire(s))
	if err != nil {
		return nil, err
	}
	out := w.toEntity()
	keepID(&out.ID, s.ID)
	return out, nil
}

func (r *SupplierRepo) Delete(ctx context.Context, sess entity.Session, id string) error {
	return r.res.delete(ctx, sess, id)
}

// ── Obras ─────────────────────────────────────────────────────────────────────

type siteWire struct {
	ID          string `json:"_id,omitempty"`
	Name        string `json:"name"`
	Location    string `json:"location"`
	Description string `json:"description"`
}

func (w *siteWire) toEntity() *entity.Site {
	return &entity.Site{ID: w.ID, Name: w.Name, Location: w.Location, Description: w.Description}
}

// SiteRepo obras sobre /obras.
type SiteRepo struct {
	res resource[siteWire]
}

// NewSiteRepository construye el adaptador.
func NewSiteRepository(c *Client) *SiteRepo {
	return &SiteRepo{res: resource[siteWire]{c: c, path: "/obras"}}
}

func (r *SiteRepo) List(ctx context.Context, sess entity.Session) ([]*entity.Site, error) {
	ws, err := r.res.list(ctx, sess)
	if err != nil {
		return nil, err
	}
	return mapAll(ws, (*siteWire).toEntity), nil
}

func (r *SiteRepo) GetByID(ctx context.Context, sess entity.Session, id string) (*entity.Site, error) {
	w, err := r.res.get(ctx, sess, id)
	if err != nil {
		return nil, err
	}
	return w.toEntity(), nil
}

func (r *SiteRepo) Create(ctx context.Context, sess entity.Session, s *entity.Site) (*entity.Site, error) {
	w, err := r.res.create(ctx, sess, &siteWire{Name: s.Name, Location: s.Location, Description: s.Description})
	if err != nil {
		return nil, err
	}
	return w.toEntity(), nil
}

func (r *SiteRepo) Update(ctx context.Context, sess entity.Session, s *entity.Site) (*entity.Site, error) {
	w, err := r.res.update(ctx, sess, s.ID, &siteWire{Name: s.Name, Location: s.Location, Description: s.Description})
	if err != nil {
		return nil, err
	}
	out := w.toEntity()
	keepID(&out.ID, s.ID)
	return out, nil
}

func (r *SiteRepo) Delete(ctx context.Context, sess entity.Session, id string) error {
	return r.res.delete(ctx, sess, id)
}

// ── Engenheiros ───────────────────────────────────────────────────────────────

type engineerWire struct {
	ID    string `json:"_id,omitempty"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Obras []ref  `json:"obras"`
}

func (w *engineerWire) toEntity() *entity.Engineer {
	e := &entity.Engineer{ID: w.ID, Name: w.Name, Email: w.Email, SiteIDs: make([]string, 0, len(w.Obras))}
	for _, o := range w.Obras {
		if o.ID != "" {
			e.SiteIDs = append(e.SiteIDs, o.ID)
		}
	}
	return e
}

func engineerToWire(e *entity.Engineer) *engineerWire {
	w := &engineerWire{Name: e.Name, Email: e.Email, Obras: make([]ref, 0, len(e.SiteIDs))}
	for _, id := range e.SiteIDs {
		w.Obras = append(w.Obras, ref{ID: id})
	}
	return w
}

// EngineerRepo engenheiros sobre /engenheiros.
type EngineerRepo struct {
	res resource[engineerWire]
}

// NewEngineerRepository construye el adaptador.
func NewEngineerRepository(c *Client) *EngineerRepo {
	return &EngineerRepo{res: resource[engineerWire]{c: c, path: "/engenheiros"}}
}

func (r *EngineerRepo) List(ctx context.Context, sess entity.Session) ([]*entity.Engineer, error) {
	ws, err := r.res.list(ctx, sess)
	if err != nil {
		return nil, err
	}
	return mapAll(ws, (*engineerWire).toEntity), nil
}

func (r *EngineerRepo) GetByID(ctx context.Context, sess entity.Session, id string) (*entity.Engineer, error) {
	w, err := r.res.get(ctx, sess, id)
	if err != nil {
		return nil, err
	}
	return w.toEntity(), nil
}

func (r *EngineerRepo) Create(ctx context.Context, sess entity.Session, e *entity.Engineer) (*entity.Engineer, error) {
	w, err := r.res.create(ctx, sess, engineerToWire(e))
	if err != nil {
		return nil, err
	}
	return w.toEntity(), nil
}

func (r *EngineerRepo) Update(ctx context.Context, sess entity.Session, e *entity.Engineer) (*entity.Engineer, error) {
	w, err := r.res.update(ctx, sess, e.ID, engineerToWire(e))
	if err != nil {
		return nil, err
	}
	out := w.toEntity()
	keepID(&out.ID, e.ID)
	return out, nil
}

func (r *EngineerRepo) Delete(ctx context.Context, sess entity.Session, id string) error {
	return r.res.delete(ctx, sess, id)
}

// ── Solicitações ──────────────────────────────────────────────────────────────

type requestItemWire struct {
	ItemID     itemRef      `json:"itemId"`
	Quantidade looseDecimal `json:"quantidade"`
}

type requestWire struct {
	ID         string            `json:"_id,omitempty"`
	Obra       ref               `json:"obra"`
	Itens      []requestItemWire `json:"itens"`
	Fornecedor ref               `json:"fornecedor"`
	Observacao string            `json:"observacao"`
	Frete      looseDecimal      `json:"frete"`
}

func (w *requestWire) toEntity() *entity.PurchaseRequest {
	r := &entity.PurchaseRequest{
		ID:          w.ID,
		SiteRef:     w.Obra.ID,
		SiteName:    w.Obra.Name,
		SupplierRef: w.Fornecedor.ID,
		Note:        w.Observacao,
		Shipping:    w.Frete.Decimal(),
		Items:       make([]entity.RequestItem, 0, len(w.Itens)),
	}
	for _, it := range w.Itens {
		r.Items = append(r.Items, entity.RequestItem{
			ItemID:      it.ItemID.ID,
			Quantity:    it.Quantidade.Decimal(),
			Description: it.ItemID.Description,
			Unit:        it.ItemID.Unit,
			UnitPrice:   it.ItemID.UnitPrice.Decimal(),
		})
	}
	return r
}

func requestToWire(r *entity.PurchaseRequest) *requestWire {
	w := &requestWire{
		Obra:       ref{ID: r.SiteRef},
		Fornecedor: ref{ID: r.SupplierRef},
		Observacao: r.Note,
		Frete:      dec(r.Shipping),
		Itens:      make([]requestItemWire, 0, len(r.Items)),
	}
	for _, it := range r.Items {
		w.Itens = append(w.Itens, requestItemWire{ItemID: itemRef{ID: it.ItemID}, Quantidade: dec(it.Quantity)})
	}
	return w
}

// RequestRepo solicitações sobre /solicitacoes.
type RequestRepo struct {
	res resource[requestWire]
}

// NewRequestRepository construye el adaptador.
func NewRequestRepository(c *Client) *RequestRepo {
	return &RequestRepo{res: resource[requestWire]{c: c, path: "/solicitacoes"}}
}

func (r *RequestRepo) List(ctx context.Context, sess entity.Session) ([]*entity.PurchaseRequest, error) {
	ws, err := r.res.list(ctx, sess)
	if err != nil {
		return nil, err
	}
	return mapAll(ws, (*requestWire).toEntity), nil
}

func (r *RequestRepo) GetByID(ctx context.Context, sess entity.Session, id string) (*entity.PurchaseRequest, error) {
	w, err := r.res.get(ctx, sess, id)
	if err != nil {
		return nil, err
	}
	return w.toEntity(), nil
}

func (r *RequestRepo) Create(ctx context.Context, sess entity.Session, pr *entity.PurchaseRequest) (*entity.PurchaseRequest, error) {
	w, err := r.res.create(ctx, sess, requestToWire(pr))
	if err != nil {
		return nil, err
	}
	return w.toEntity(), nil
}

func (r *RequestRepo) Update(ctx context.Context, sess entity.Session, pr *entity.PurchaseRequest) (*entity.PurchaseRequest, error) {
	w, err := r.res.update(ctx, sess, pr.ID, requestToWire(pr))
	if err != nil {
		return nil, err
	}
	out := w.toEntity()
	keepID(&out.ID, pr.ID)
	return out, nil
}

func (r *RequestRepo) Delete(ctx context.Context, sess entity.Session, id string) error {
	return r.res.delete(ctx, sess, id)
}
