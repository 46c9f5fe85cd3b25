package usecase

import (
	"context"
	"fmt"

	"github.com/jhoicas/melo-compras/internal/application/dto"
	"github.com/jhoicas/melo-compras/internal/domain"
	"github.com/jhoicas/melo-compras/internal/domain/entity"
	"github.com/jhoicas/melo-compras/internal/domain/repository"
)

// UserUseCase administración de usuarios (solo admin, lo controla el router).
type UserUseCase struct {
	repo repository.UserRepository
}

// NewUserUseCase construye el caso de uso con el puerto de persistencia.
func NewUserUseCase(repo repository.UserRepository) *UserUseCase {
	return &UserUseCase{repo: repo}
}

func (uc *UserUseCase) List(ctx context.Context, sess entity.Session) (dto.ListResponse[dto.UserResponse], error) {
	list, err := uc.repo.List(ctx, sess)
	if err != nil {
		return dto.ListResponse[dto.UserResponse]{}, err
	}
	return dto.NewList(mapSlice(list, entityToUserResponse)), nil
}

// Create alta de usuario: la contraseña es obligatoria.
func (uc *UserUseCase) Create(ctx context.Context, sess entity.Session, in dto.UserRequest) (*dto.UserResponse, error) {
	if err := dto.Validate(in); err != nil {
		return nil, err
	}
	if in.Password == "" {
		return nil, &dto.ValidationError{Fields: map[string]string{"password": "required"}}
	}
	u, err := uc.repo.Create(ctx, sess, &entity.User{Name: in.Name, Email: in.Email, Role: in.Role}, in.Password)
	if err != nil {
		return nil, err
	}
	out := entityToUserResponse(u)
	return &out, nil
}

// Update edición; password vacío conserva la actual.
func (uc *UserUseCase) Update(ctx context.Context, sess entity.Session, id string, in dto.UserRequest) (*dto.UserResponse, error) {
	if err := dto.Validate(in); err != nil {
		return nil, err
	}
	u, err := uc.repo.Update(ctx, sess, &entity.User{ID: id, Name: in.Name, Email: in.Email, Role: in.Role}, in.Password)
	if err != nil {
		return nil, err
	}
	out := entityToUserResponse(u)
	return &out, nil
}

// Delete baja de usuario. Un admin no puede borrarse a sí mismo.
func (uc *UserUseCase) Delete(ctx context.Context, sess entity.Session, id string) error {
	if id == sess.UserID {
		return fmt.Errorf("%w: no se puede eliminar el usuario de la sesión actual", domain.ErrConflict)
	}
	return uc.repo.Delete(ctx, sess, id)
}

func entityToUserResponse(u *entity.User) dto.UserResponse {
	return dto.UserResponse{ID: u.ID, Name: u.Name, Email: u.Email, Role: u.Role}
}
