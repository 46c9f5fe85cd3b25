package usecase

import (
	"context"

	"github.com/jhoicas/melo-compras/internal/application/dto"
	"github.com/jhoicas/melo-compras/internal/domain/entity"
	"github.com/jhoicas/melo-compras/internal/domain/repository"
)

// SupplierUseCase CRUD de fornecedores.
type SupplierUseCase struct {
	repo repository.SupplierRepository
}

// NewSupplierUseCase construye el caso de uso.
func NewSupplierUseCase(repo repository.SupplierRepository) *SupplierUseCase {
	return &SupplierUseCase{repo: repo}
}

// List todos los fornecedores.
func (uc *SupplierUseCase) List(ctx context.Context, sess entity.Session) (dto.ListResponse[dto.SupplierDTO], error) {
	list, err := uc.repo.List(ctx, sess)
	if err != nil {
		return dto.ListResponse[dto.SupplierDTO]{}, err
	}
	return dto.NewList(mapSlice(list, toSupplierDTO)), nil
}

// GetByID un fornecedor.
func (uc *SupplierUseCase) GetByID(ctx context.Context, sess entity.Session, id string) (*dto.SupplierDTO, error) {
	s, err := uc.repo.GetByID(ctx, sess, id)
	if err != nil {
		return nil, err
	}
	out := toSupplierDTO(s)
	return &out, nil
}

// Create alta de fornecedor.
func (uc *SupplierUseCase) Create(ctx context.Context, sess entity.Session, in dto.SupplierDTO) (*dto.SupplierDTO, error) {
	if err := dto.Validate(in); err != nil {
		return nil, err
	}
	s, err := uc.repo.Create(ctx, sess, supplierFromDTO(in))
	if err != nil {
		return nil, err
	}
	out := toSupplierDTO(s)
	return &out, nil
}

// Update edición de fornecedor.
func (uc *SupplierUseCase) Update(ctx context.Context, sess entity.Session, id string, in dto.SupplierDTO) (*dto.SupplierDTO, error) {
	if err := dto.Validate(in); err != nil {
		return nil, err
	}
	e := supplierFromDTO(in)
	e.ID = id
	s, err := uc.repo.Update(ctx, sess, e)
	if err != nil {
		return nil, err
	}
	out := toSupplierDTO(s)
	return &out, nil
}

// Delete baja de fornecedor.
func (uc *SupplierUseCase) Delete(ctx context.Context, sess entity.Session, id string) error {
	return uc.repo.Delete(ctx, sess, id)
}

func supplierFromDTO(in dto.SupplierDTO) *entity.Supplier {
	return &entity.Supplier{
		ID: in.ID, Name: in.Name, TradeName: in.TradeName, Address: in.Address, City: in.City,
		State: in.State, ZipCode: in.ZipCode, Phone: in.Phone, Email: in.Email, CNPJ: in.CNPJ,
		StateRegistration: in.StateRegistration,
	}
}

func toSupplierDTO(s *entity.Supplier) dto.SupplierDTO {
	return dto.SupplierDTO{
		ID: s.ID, Name: s.Name, TradeName: s.TradeName, Address: s.Address, City: s.City,
		State: s.State, ZipCode: s.ZipCode, Phone: s.Phone, Email: s.Email, CNPJ: s.CNPJ,
		StateRegistration: s.StateRegistration,
	}
}

// mapSlice convierte una lista de entidades a DTOs.
func mapSlice[E any, D any](in []*E, conv func(*E) D) []D {
	out := make([]D, 0, len(in))
	for _, e := range in {
		if e != nil {
			out = append(out, conv(e))
		}
	}
	return out
}
