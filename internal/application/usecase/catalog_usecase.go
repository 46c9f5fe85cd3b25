package usecase

import (
	"context"
	"strings"

	"github.com/jhoicas/melo-compras/internal/application/dto"
	"github.com/jhoicas/melo-compras/internal/domain/entity"
	"github.com/jhoicas/melo-compras/internal/domain/repository"
)

// CatalogUseCase CRUD del catálogo de materiales.
type CatalogUseCase struct {
	repo repository.CatalogRepository
}

// NewCatalogUseCase construye el caso de uso.
func NewCatalogUseCase(repo repository.CatalogRepository) *CatalogUseCase {
	return &CatalogUseCase{repo: repo}
}

// List catálogo completo. search filtra por descripción (contiene, sin distinguir mayúsculas).
func (uc *CatalogUseCase) List(ctx context.Context, sess entity.Session, search string) (dto.ListResponse[dto.CatalogItemDTO], error) {
	list, err := uc.repo.List(ctx, sess)
	if err != nil {
		return dto.ListResponse[dto.CatalogItemDTO]{}, err
	}
	if q := strings.ToLower(strings.TrimSpace(search)); q != "" {
		filtered := list[:0:0]
		for _, it := range list {
			if strings.Contains(strings.ToLower(it.Description), q) {
				filtered = append(filtered, it)
			}
		}
		list = filtered
	}
	return dto.NewList(mapSlice(list, toCatalogItemDTO)), nil
}

// GetByID un ítem.
func (uc *CatalogUseCase) GetByID(ctx context.Context, sess entity.Session, id string) (*dto.CatalogItemDTO, error) {
	it, err := uc.repo.GetByID(ctx, sess, id)
	if err != nil {
		return nil, err
	}
	out := toCatalogItemDTO(it)
	return &out, nil
}

// Create alta de ítem. El precio no puede ser negativo.
func (uc *CatalogUseCase) Create(ctx context.Context, sess entity.Session, in dto.CatalogItemDTO) (*dto.CatalogItemDTO, error) {
	if err := dto.Validate(in); err != nil {
		return nil, err
	}
	it, err := uc.repo.Create(ctx, sess, catalogItemFromDTO(in))
	if err != nil {
		return nil, err
	}
	out := toCatalogItemDTO(it)
	return &out, nil
}

// Update edición de ítem.
func (uc *CatalogUseCase) Update(ctx context.Context, sess entity.Session, id string, in dto.CatalogItemDTO) (*dto.CatalogItemDTO, error) {
	if err := dto.Validate(in); err != nil {
		return nil, err
	}
	e := catalogItemFromDTO(in)
	e.ID = id
	it, err := uc.repo.Update(ctx, sess, e)
	if err != nil {
		return nil, err
	}
	out := toCatalogItemDTO(it)
	return &out, nil
}

// Delete baja de ítem.
func (uc *CatalogUseCase) Delete(ctx context.Context, sess entity.Session, id string) error {
	return uc.repo.Delete(ctx, sess, id)
}

func catalogItemFromDTO(in dto.CatalogItemDTO) *entity.CatalogItem {
	return &entity.CatalogItem{ID: in.ID, Description: in.Description, Unit: in.Unit, UnitPrice: in.UnitPrice}
}

func toCatalogItemDTO(it *entity.CatalogItem) dto.CatalogItemDTO {
	return dto.CatalogItemDTO{ID: it.ID, Description: it.Description, Unit: it.Unit, UnitPrice: it.UnitPrice}
}
