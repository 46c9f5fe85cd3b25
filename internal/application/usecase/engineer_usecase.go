package usecase

import (
	"context"

	"github.com/jhoicas/melo-compras/internal/application/dto"
	"github.com/jhoicas/melo-compras/internal/domain/entity"
	"github.com/jhoicas/melo-compras/internal/domain/repository"
)

// EngineerUseCase CRUD de engenheiros y sus obras.
type EngineerUseCase struct {
	repo repository.EngineerRepository
}

// NewEngineerUseCase construye el caso de uso.
func NewEngineerUseCase(repo repository.EngineerRepository) *EngineerUseCase {
	return &EngineerUseCase{repo: repo}
}

func (uc *EngineerUseCase) List(ctx context.Context, sess entity.Session) (dto.ListResponse[dto.EngineerDTO], error) {
	list, err := uc.repo.List(ctx, sess)
	if err != nil {
		return dto.ListResponse[dto.EngineerDTO]{}, err
	}
	return dto.NewList(mapSlice(list, toEngineerDTO)), nil
}

func (uc *EngineerUseCase) GetByID(ctx context.Context, sess entity.Session, id string) (*dto.EngineerDTO, error) {
	e, err := uc.repo.GetByID(ctx, sess, id)
	if err != nil {
		return nil, err
	}
	out := toEngineerDTO(e)
	return &out, nil
}

func (uc *EngineerUseCase) Create(ctx context.Context, sess entity.Session, in dto.EngineerDTO) (*dto.EngineerDTO, error) {
	if err := dto.Validate(in); err != nil {
		return nil, err
	}
	e, err := uc.repo.Create(ctx, sess, engineerFromDTO(in))
	if err != nil {
		return nil, err
	}
	out := toEngineerDTO(e)
	return &out, nil
}

func (uc *EngineerUseCase) Update(ctx context.Context, sess entity.Session, id string, in dto.EngineerDTO) (*dto.EngineerDTO, error) {
	if err := dto.Validate(in); err != nil {
		return nil, err
	}
	in.ID = id
	e, err := uc.repo.Update(ctx, sess, engineerFromDTO(in))
	if err != nil {
		return nil, err
	}
	out := toEngineerDTO(e)
	return &out, nil
}

func (uc *EngineerUseCase) Delete(ctx context.Context, sess entity.Session, id string) error {
	return uc.repo.Delete(ctx, sess, id)
}

// engineerFromDTO descarta ids de obra repetidos.
func engineerFromDTO(in dto.EngineerDTO) *entity.Engineer {
	seen := make(map[string]bool, len(in.SiteIDs))
	ids := make([]string, 0, len(in.SiteIDs))
	for _, id := range in.SiteIDs {
		if !seen[id] {
			seen[id] = true
			ids = append(ids, id)
		}
	}
	return &entity.Engineer{ID: in.ID, Name: in.Name, Email: in.Email, SiteIDs: ids}
}

func toEngineerDTO(e *entity.Engineer) dto.EngineerDTO {
	ids := e.SiteIDs
	if ids == nil {
		ids = []string{}
	}
	return dto.EngineerDTO{ID: e.ID, Name: e.Name, Email: e.Email, SiteIDs: ids}
}
