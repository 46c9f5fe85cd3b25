package usecase_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/melo-compras/internal/application/dto"
	"github.com/jhoicas/melo-compras/internal/application/usecase"
	"github.com/jhoicas/melo-compras/internal/domain"
	"github.com/jhoicas/melo-compras/internal/domain/entity"
)

var (
	ctx  = context.Background()
	sess = entity.Session{Token: "t", UserID: "admin-1", Role: entity.RoleAdmin}
)

type catalogRepo struct {
	items   []*entity.CatalogItem
	created *entity.CatalogItem
}

func (r *catalogRepo) List(context.Context, entity.Session) ([]*entity.CatalogItem, error) {
	return r.items, nil
}
func (r *catalogRepo) GetByID(context.Context, entity.Session, string) (*entity.CatalogItem, error) {
	return nil, domain.ErrNotFound
}
func (r *catalogRepo) Create(_ context.Context, _ entity.Session, it *entity.CatalogItem) (*entity.CatalogItem, error) {
	r.created = it
	c := *it
	c.ID = "novo"
	return &c, nil
}
func (r *catalogRepo) Update(_ context.Context, _ entity.Session, it *entity.CatalogItem) (*entity.CatalogItem, error) {
	return it, nil
}
func (r *catalogRepo) Delete(context.Context, entity.Session, string) error { return nil }

func TestCatalog_ListFiltraPorDescripcion(t *testing.T) {
	uc := usecase.NewCatalogUseCase(&catalogRepo{items: []*entity.CatalogItem{
		{ID: "1", Description: "Cimento CP-II"},
		{ID: "2", Description: "Areia média"},
	}})

	all, err := uc.List(ctx, sess, "")
	require.NoError(t, err)
	assert.Equal(t, 2, all.Total)

	got, err := uc.List(ctx, sess, "  CIMENTO ")
	require.NoError(t, err)
	require.Equal(t, 1, got.Total)
	assert.Equal(t, "1", got.Items[0].ID)
}

func TestCatalog_CreateValidaPrecio(t *testing.T) {
	repo := &catalogRepo{}
	uc := usecase.NewCatalogUseCase(repo)

	_, err := uc.Create(ctx, sess, dto.CatalogItemDTO{Description: "Brita", Unit: "M3", UnitPrice: decimal.NewFromInt(-1)})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Nil(t, repo.created)

	out, err := uc.Create(ctx, sess, dto.CatalogItemDTO{Description: "Brita", Unit: "M3", UnitPrice: decimal.NewFromInt(90)})
	require.NoError(t, err)
	assert.Equal(t, "novo", out.ID)
}

type userRepo struct {
	password string
	deleted  string
}

func (r *userRepo) List(context.Context, entity.Session) ([]*entity.User, error) { return nil, nil }
func (r *userRepo) Create(_ context.Context, _ entity.Session, u *entity.User, pw string) (*entity.User, error) {
	r.password = pw
	return u, nil
}
func (r *userRepo) Update(_ context.Context, _ entity.Session, u *entity.User, pw string) (*entity.User, error) {
	r.password = pw
	return u, nil
}
func (r *userRepo) Delete(_ context.Context, _ entity.Session, id string) error {
	r.deleted = id
	return nil
}

func TestUser_CreateExigePassword(t *testing.T) {
	repo := &userRepo{}
	uc := usecase.NewUserUseCase(repo)
	in := dto.UserRequest{Name: "Ana", Email: "ana@melo.com.br", Role: "engenheiro"}

	_, err := uc.Create(ctx, sess, in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	in.Password = "segredo1"
	_, err = uc.Create(ctx, sess, in)
	require.NoError(t, err)
	assert.Equal(t, "segredo1", repo.password)

	in.Password = ""
	_, err = uc.Update(ctx, sess, "u2", in)
	require.NoError(t, err)
	assert.Empty(t, repo.password, "sin password no se cambia")
}

func TestUser_NoSePuedeBorrarASiMismo(t *testing.T) {
	repo := &userRepo{}
	uc := usecase.NewUserUseCase(repo)

	assert.ErrorIs(t, uc.Delete(ctx, sess, "admin-1"), domain.ErrConflict)
	require.NoError(t, uc.Delete(ctx, sess, "u2"))
	assert.Equal(t, "u2", repo.deleted)
}

type engineerRepo struct {
	got *entity.Engineer
}

func (r *engineerRepo) List(context.Context, entity.Session) ([]*entity.Engineer, error) {
	return []*entity.Engineer{{ID: "e1"}}, nil
}
func (r *engineerRepo) GetByID(context.Context, entity.Session, string) (*entity.Engineer, error) {
	return nil, domain.ErrNotFound
}
func (r *engineerRepo) Create(_ context.Context, _ entity.Session, e *entity.Engineer) (*entity.Engineer, error) {
	r.got = e
	return e, nil
}
func (r *engineerRepo) Update(_ context.Context, _ entity.Session, e *entity.Engineer) (*entity.Engineer, error) {
	r.got = e
	return e, nil
}
func (r *engineerRepo) Delete(context.Context, entity.Session, string) error { return nil }

func TestEngineer_ObrasSinRepetidos(t *testing.T) {
	repo := &engineerRepo{}
	uc := usecase.NewEngineerUseCase(repo)

	_, err := uc.Update(ctx, sess, "e1", dto.EngineerDTO{Name: "Ana", Email: "ana@melo.com.br", SiteIDs: []string{"o1", "o2", "o1"}})
	require.NoError(t, err)
	assert.Equal(t, "e1", repo.got.ID)
	assert.Equal(t, []string{"o1", "o2"}, repo.got.SiteIDs)

	list, err := uc.List(ctx, sess)
	require.NoError(t, err)
	assert.Equal(t, []string{}, list.Items[0].SiteIDs, "nunca null en JSON")
}

type requestRepo struct {
	created *entity.PurchaseRequest
}

func (r *requestRepo) List(context.Context, entity.Session) ([]*entity.PurchaseRequest, error) {
	return nil, nil
}
func (r *requestRepo) GetByID(context.Context, entity.Session, string) (*entity.PurchaseRequest, error) {
	return nil, domain.ErrNotFound
}
func (r *requestRepo) Create(_ context.Context, _ entity.Session, pr *entity.PurchaseRequest) (*entity.PurchaseRequest, error) {
	r.created = pr
	return pr, nil
}
func (r *requestRepo) Update(_ context.Context, _ entity.Session, pr *entity.PurchaseRequest) (*entity.PurchaseRequest, error) {
	return pr, nil
}
func (r *requestRepo) Delete(context.Context, entity.Session, string) error { return nil }

func TestRequest_CreateValidaItens(t *testing.T) {
	repo := &requestRepo{}
	uc := usecase.NewRequestUseCase(repo)

	_, err := uc.Create(ctx, sess, dto.PurchaseRequestDTO{SiteID: "o1"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Create(ctx, sess, dto.PurchaseRequestDTO{
		SiteID: "o1",
		Items:  []dto.PurchaseRequestItemDTO{{ItemID: "i1", Quantity: decimal.NewFromInt(3)}},
	})
	require.NoError(t, err)
	require.Len(t, repo.created.Items, 1)
	assert.Equal(t, "i1", repo.created.Items[0].ItemID)
}
