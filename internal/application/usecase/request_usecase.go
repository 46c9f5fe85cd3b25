package usecase

import (
	"context"

	"github.com/jhoicas/melo-compras/internal/application/dto"
	"github.com/jhoicas/melo-compras/internal/domain/entity"
	"github.com/jhoicas/melo-compras/internal/domain/repository"
)

// RequestUseCase CRUD de solicitações. Toda solicitação tiene obra y al menos un ítem,
// cada uno con item_id y cantidad > 0.
type RequestUseCase struct {
	repo repository.PurchaseRequestRepository
}

// NewRequestUseCase construye el caso de uso.
func NewRequestUseCase(repo repository.PurchaseRequestRepository) *RequestUseCase {
	return &RequestUseCase{repo: repo}
}

func (uc *RequestUseCase) List(ctx context.Context, sess entity.Session) (dto.ListResponse[dto.PurchaseRequestDTO], error) {
	list, err := uc.repo.List(ctx, sess)
	if err != nil {
		return dto.ListResponse[dto.PurchaseRequestDTO]{}, err
	}
	return dto.NewList(mapSlice(list, toRequestDTO)), nil
}

func (uc *RequestUseCase) GetByID(ctx context.Context, sess entity.Session, id string) (*dto.PurchaseRequestDTO, error) {
	r, err := uc.repo.GetByID(ctx, sess, id)
	if err != nil {
		return nil, err
	}
	out := toRequestDTO(r)
	return &out, nil
}

func (uc *RequestUseCase) Create(ctx context.Context, sess entity.Session, in dto.PurchaseRequestDTO) (*dto.PurchaseRequestDTO, error) {
	if err := dto.Validate(in); err != nil {
		return nil, err
	}
	r, err := uc.repo.Create(ctx, sess, requestFromDTO(in))
	if err != nil {
		return nil, err
	}
	out := toRequestDTO(r)
	return &out, nil
}

func (uc *RequestUseCase) Update(ctx context.Context, sess entity.Session, id string, in dto.PurchaseRequestDTO) (*dto.PurchaseRequestDTO, error) {
	if err := dto.Validate(in); err != nil {
		return nil, err
	}
	in.ID = id
	r, err := uc.repo.Update(ctx, sess, requestFromDTO(in))
	if err != nil {
		return nil, err
	}
	out := toRequestDTO(r)
	return &out, nil
}

func (uc *RequestUseCase) Delete(ctx context.Context, sess entity.Session, id string) error {
	return uc.repo.Delete(ctx, sess, id)
}

func requestFromDTO(in dto.PurchaseRequestDTO) *entity.PurchaseRequest {
	r := &entity.PurchaseRequest{
		ID: in.ID, SiteRef: in.SiteID, SupplierRef: in.SupplierID, Note: in.Note, Shipping: in.Shipping,
		Items: make([]entity.RequestItem, 0, len(in.Items)),
	}
	for _, it := range in.Items {
		r.Items = append(r.Items, entity.RequestItem{ItemID: it.ItemID, Quantity: it.Quantity})
	}
	return r
}

func toRequestDTO(r *entity.PurchaseRequest) dto.PurchaseRequestDTO {
	out := dto.PurchaseRequestDTO{
		ID: r.ID, SiteID: r.SiteRef, SiteName: r.SiteName, SupplierID: r.SupplierRef,
		Note: r.Note, Shipping: r.Shipping,
		Items: make([]dto.PurchaseRequestItemDTO, 0, len(r.Items)),
	}
	for _, it := range r.Items {
		out.Items = append(out.Items, dto.PurchaseRequestItemDTO{
			ItemID: it.ItemID, Quantity: it.Quantity,
			Description: it.Description, Unit: it.Unit, UnitPrice: it.UnitPrice,
		})
	}
	return out
}
