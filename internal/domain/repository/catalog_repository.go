package repository

import (
	"context"

	"github.com/jhoicas/melo-compras/internal/domain/entity"
)

// CatalogRepository puerto del catálogo de materiales (/items).
type CatalogRepository interface {
	List(ctx context.Context, sess entity.Session) ([]*entity.CatalogItem, error)
	GetByID(ctx context.Context, sess entity.Session, id string) (*entity.CatalogItem, error)
	Create(ctx context.Context, sess entity.Session, item *entity.CatalogItem) (*entity.CatalogItem, error)
	Update(ctx context.Context, sess entity.Session, item *entity.CatalogItem) (*entity.CatalogItem, error)
	Delete(ctx context.Context, sess entity.Session, id string) error
}
