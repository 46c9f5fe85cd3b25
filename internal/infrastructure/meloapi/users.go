package meloapi

import (
	"context"
	"net/http"

	"github.com/jhoicas/melo-compras/internal/domain"
	"github.com/jhoicas/melo-compras/internal/domain/entity"
	"github.com/jhoicas/melo-compras/internal/domain/repository"
)

var (
	_ repository.UserRepository = (*UserRepo)(nil)
	_ repository.AuthGateway    = (*AuthRepo)(nil)
)

type userWire struct {
	ID       string `json:"_id,omitempty"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Role     string `json:"role"`
	Password string `json:"password,omitempty"`
}

func (w *userWire) toEntity() *entity.User {
	return &entity.User{ID: w.ID, Name: w.Name, Email: w.Email, Role: w.Role}
}

// UserRepo usuarios sobre /users (alta en /users/register).
type UserRepo struct {
	res resource[userWire]
}

// NewUserRepository construye el adaptador.
func NewUserRepository(c *Client) *UserRepo {
	return &UserRepo{res: resource[userWire]{c: c, path: "/users"}}
}

func (r *UserRepo) List(ctx context.Context, sess entity.Session) ([]*entity.User, error) {
	ws, err := r.res.list(ctx, sess)
	if err != nil {
		return nil, err
	}
	return mapAll(ws, (*userWire).toEntity), nil
}

func (r *UserRepo) Create(ctx context.Context, sess entity.Session, u *entity.User, password string) (*entity.User, error) {
	in := &userWire{Name: u.Name, Email: u.Email, Role: u.Role, Password: password}
	w, err := r.res.send(ctx, sess, http.MethodPost, "/users/register", in)
	if err != nil {
		return nil, err
	}
	return w.toEntity(), nil
}

// Update password vacío no se envía: la API conserva la contraseña actual.
func (r *UserRepo) Update(ctx context.Context, sess entity.Session, u *entity.User, password string) (*entity.User, error) {
	in := &userWire{Name: u.Name, Email: u.Email, Role: u.Role, Password: password}
	w, err := r.res.update(ctx, sess, u.ID, in)
	if err != nil {
		return nil, err
	}
	out := w.toEntity()
	keepID(&out.ID, u.ID)
	return out, nil
}

func (r *UserRepo) Delete(ctx context.Context, sess entity.Session, id string) error {
	return r.res.delete(ctx, sess, id)
}

// AuthRepo POST /auth/login.
type AuthRepo struct {
	c *Client
}

// NewAuthGateway construye el adaptador.
func NewAuthGateway(c *Client) *AuthRepo {
	return &AuthRepo{c: c}
}

type loginWire struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponseWire struct {
	AccessToken string   `json:"accessToken"`
	User        userWire `json:"user"`
}

// Login devuelve el token de acceso y el usuario. Credenciales rechazadas → ErrUnauthorized.
func (r *AuthRepo) Login(ctx context.Context, email, password string) (string, *entity.User, error) {
	var out loginResponseWire
	err := r.c.do(ctx, entity.Session{}, http.MethodPost, "/auth/login", nil, loginWire{Email: email, Password: password}, &out)
	if err != nil {
		if IsStatus(err, http.StatusBadRequest) || IsStatus(err, http.StatusNotFound) {
			return "", nil, domain.ErrUnauthorized
		}
		return "", nil, err
	}
	if out.AccessToken == "" {
		return "", nil, domain.ErrUnauthorized
	}
	return out.AccessToken, out.User.toEntity(), nil
}
