package auth

import (
	"context"
	"fmt"

	"github.com/jhoicas/melo-compras/internal/application/dto"
	"github.com/jhoicas/melo-compras/internal/domain"
	"github.com/jhoicas/melo-compras/internal/domain/entity"
	"github.com/jhoicas/melo-compras/internal/domain/repository"
	"github.com/jhoicas/melo-compras/pkg/jwt"
	"github.com/jhoicas/melo-compras/pkg/logger"
)

// AuthUseCase login delegado en la API remota. El BFF no guarda el token: lo devuelve
// al cliente, que lo reenvía como Bearer en cada petición.
type AuthUseCase struct {
	gateway repository.AuthGateway
	log     *logger.Logger
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(gateway repository.AuthGateway, log *logger.Logger) *AuthUseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &AuthUseCase{gateway: gateway, log: log.Named("auth")}
}

// Login valida la entrada, autentica contra la API y lee el vencimiento del token.
// Un token que no es JWT se rechaza: sin claims no hay rol que aplicar.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	if err := dto.Validate(in); err != nil {
		return nil, err
	}
	token, user, err := uc.gateway.Login(ctx, in.Email, in.Password)
	if err != nil {
		uc.log.Info().Str("email", in.Email).Err(err).Msg("login rechazado")
		return nil, err
	}
	claims, err := jwt.Decode(token)
	if err != nil {
		return nil, fmt.Errorf("%w: token emitido por la API no es un JWT: %v", domain.ErrUpstream, err)
	}

	resp := &dto.LoginResponse{
		AccessToken: token,
		TokenType:   "Bearer",
		User:        toUserResponse(user, claims),
	}
	if exp := claims.ExpiresAtTime(); !exp.IsZero() {
		resp.ExpiresAt = exp.Unix()
	}
	return resp, nil
}

// toUserResponse completa con los claims lo que la API no devolvió en user.
func toUserResponse(u *entity.User, c *jwt.Claims) dto.UserResponse {
	out := dto.UserResponse{}
	if u != nil {
		out = dto.UserResponse{ID: u.ID, Name: u.Name, Email: u.Email, Role: u.Role}
	}
	if out.ID == "" {
		out.ID = c.Subject()
	}
	if out.Name == "" {
		out.Name = c.Name
	}
	if out.Email == "" {
		out.Email = c.Email
	}
	if out.Role == "" {
		out.Role = c.Role
	}
	return out
}
