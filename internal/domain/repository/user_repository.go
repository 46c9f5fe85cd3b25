package repository

import (
	"context"

	"github.com/jhoicas/melo-compras/internal/domain/entity"
)

// UserRepository puerto de usuarios. password va en claro hacia la API remota, que
// es la única que lo guarda (hash incluido); vacío en Update = no cambiar.
type UserRepository interface {
	List(ctx context.Context, sess entity.Session) ([]*entity.User, error)
	Create(ctx context.Context, sess entity.Session, u *entity.User, password string) (*entity.User, error)
	Update(ctx context.Context, sess entity.Session, u *entity.User, password string) (*entity.User, error)
	Delete(ctx context.Context, sess entity.Session, id string) error
}

// AuthGateway autenticación delegada en la API remota.
type AuthGateway interface {
	Login(ctx context.Context, email, password string) (accessToken string, user *entity.User, err error)
}
