package usecase

import (
	"context"

	"github.com/jhoicas/melo-compras/internal/application/dto"
	"github.com/jhoicas/melo-compras/internal/domain/entity"
	"github.com/jhoicas/melo-compras/internal/domain/repository"
)

// SiteUseCase CRUD de obras.
type SiteUseCase struct {
	repo repository.SiteRepository
}

// NewSiteUseCase construye el caso de uso.
func NewSiteUseCase(repo repository.SiteRepository) *SiteUseCase {
	return &SiteUseCase{repo: repo}
}

func (uc *SiteUseCase) List(ctx context.Context, sess entity.Session) (dto.ListResponse[dto.SiteDTO], error) {
	list, err := uc.repo.List(ctx, sess)
	if err != nil {
		return dto.ListResponse[dto.SiteDTO]{}, err
	}
	return dto.NewList(mapSlice(list, toSiteDTO)), nil
}

func (uc *SiteUseCase) GetByID(ctx context.Context, sess entity.Session, id string) (*dto.SiteDTO, error) {
	s, err := uc.repo.GetByID(ctx, sess, id)
	if err != nil {
		return nil, err
	}
	out := toSiteDTO(s)
	return &out, nil
}

func (uc *SiteUseCase) Create(ctx context.Context, sess entity.Session, in dto.SiteDTO) (*dto.SiteDTO, error) {
	if err := dto.Validate(in); err != nil {
		return nil, err
	}
	s, err := uc.repo.Create(ctx, sess, &entity.Site{Name: in.Name, Location: in.Location, Description: in.Description})
	if err != nil {
		return nil, err
	}
	out := toSiteDTO(s)
	return &out, nil
}

func (uc *SiteUseCase) Update(ctx context.Context, sess entity.Session, id string, in dto.SiteDTO) (*dto.SiteDTO, error) {
	if err := dto.Validate(in); err != nil {
		return nil, err
	}
	s, err := uc.repo.Update(ctx, sess, &entity.Site{ID: id, Name: in.Name, Location: in.Location, Description: in.Description})
	if err != nil {
		return nil, err
	}
	out := toSiteDTO(s)
	return &out, nil
}

func (uc *SiteUseCase) Delete(ctx context.Context, sess entity.Session, id string) error {
	return uc.repo.Delete(ctx, sess, id)
}

func toSiteDTO(s *entity.Site) dto.SiteDTO {
	return dto.SiteDTO{ID: s.ID, Name: s.Name, Location: s.Location, Description: s.Description}
}
