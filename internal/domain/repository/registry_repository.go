package repository

import (
	"context"

	"github.com/jhoicas/melo-compras/internal/domain/entity"
)

// SupplierRepository puerto de fornecedores.
type SupplierRepository interface {
	List(ctx context.Context, sess entity.Session) ([]*entity.Supplier, error)
	GetByID(ctx context.Context, sess entity.Session, id string) (*entity.Supplier, error)
	Create(ctx context.Context, sess entity.Session, s *entity.Supplier) (*entity.Supplier, error)
	Update(ctx context.Context, sess entity.Session, s *entity.Supplier) (*entity.Supplier, error)
	Delete(ctx context.Context, sess entity.Session, id string) error
}

// SiteRepository puerto de obras.
type SiteRepository interface {
	List(ctx context.Context, sess entity.Session) ([]*entity.Site, error)
	GetByID(ctx context.Context, sess entity.Session, id string) (*entity.Site, error)
	Create(ctx context.Context, sess entity.Session, s *entity.Site) (*entity.Site, error)
	Update(ctx context.Context, sess entity.Session, s *entity.Site) (*entity.Site, error)
	Delete(ctx context.Context, sess entity.Session, id string) error
}

// EngineerRepository puerto de engenheiros.
type EngineerRepository interface {
	List(ctx context.Context, sess entity.Session) ([]*entity.Engineer, error)
	GetByID(ctx context.Context, sess entity.Session, id string) (*entity.Engineer, error)
	Create(ctx context.Context, sess entity.Session, e *entity.Engineer) (*entity.Engineer, error)
	Update(ctx context.Context, sess entity.Session, e *entity.Engineer) (*entity.Engineer, error)
	Delete(ctx context.Context, sess entity.Session, id string) error
}

// PurchaseRequestRepository puerto de solicitações.
type PurchaseRequestRepository interface {
	List(ctx context.Context, sess entity.Session) ([]*entity.PurchaseRequest, error)
	GetByID(ctx context.Context, sess entity.Session, id string) (*entity.PurchaseRequest, error)
	Create(ctx context.Context, sess entity.Session, r *entity.PurchaseRequest) (*entity.PurchaseRequest, error)
	Update(ctx context.Context, sess entity.Session, r *entity.PurchaseRequest) (*entity.PurchaseRequest, error)
	Delete(ctx context.Context, sess entity.Session, id string) error
}
