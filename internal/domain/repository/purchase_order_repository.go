package repository

import (
	"context"

	"github.com/jhoicas/melo-compras/internal/domain/entity"
)

// PurchaseOrderRepository define el puerto de persistencia de pedidos (DIP).
// La persistencia real vive en la API remota; cada llamada lleva la sesión del usuario.
type PurchaseOrderRepository interface {
	List(ctx context.Context, sess entity.Session, filter entity.OrderFilter) ([]*entity.PurchaseOrder, error)
	GetByID(ctx context.Context, sess entity.Session, id string) (*entity.PurchaseOrder, error)
	Create(ctx context.Context, sess entity.Session, order *entity.PurchaseOrder) (*entity.PurchaseOrder, error)
	Update(ctx context.Context, sess entity.Session, order *entity.PurchaseOrder) (*entity.PurchaseOrder, error)
	Delete(ctx context.Context, sess entity.Session, id string) error
	// Duplicate crea en la API una copia del pedido id y la devuelve.
	Duplicate(ctx context.Context, sess entity.Session, id string) (*entity.PurchaseOrder, error)
}
