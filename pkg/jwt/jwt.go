package jwt

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrMalformed el token no tiene la forma header.payload.signature o el payload no es JSON.
var ErrMalformed = errors.New("jwt: token malformado")

// Claims del access token emitido por la API de Melo.
// La firma la valida la API remota en cada petición; aquí solo se leen los claims
// para decidir menú/roles y rechazar tokens vencidos sin ir a la red.
type Claims struct {
	jwt.RegisteredClaims
	ID     string `json:"id,omitempty"`
	UserID string `json:"userId,omitempty"`
	Name   string `json:"name,omitempty"`
	Email  string `json:"email,omitempty"`
	Role   string `json:"role,omitempty"` // "admin" | "user" | "engenheiro"
}

// Decode lee los claims sin verificar la firma.
func Decode(tokenString string) (*Claims, error) {
	tokenString = strings.TrimSpace(tokenString)
	if strings.Count(tokenString, ".") != 2 {
		return nil, ErrMalformed
	}
	claims := &Claims{}
	if _, _, err := jwt.NewParser().ParseUnverified(tokenString, claims); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	return claims, nil
}

// Subject devuelve el identificador del usuario, sea cual sea el claim que use el emisor.
func (c *Claims) Subject() string {
	switch {
	case c.UserID != "":
		return c.UserID
	case c.ID != "":
		return c.ID
	default:
		return c.RegisteredClaims.Subject
	}
}

// Expired true si el token trae exp y ya pasó. Sin exp se considera vigente.
func (c *Claims) Expired(now time.Time) bool {
	if c.ExpiresAt == nil {
		return false
	}
	return !c.ExpiresAt.After(now)
}

// ExpiresAtTime devuelve exp o el tiempo cero.
func (c *Claims) ExpiresAtTime() time.Time {
	if c.ExpiresAt == nil {
		return time.Time{}
	}
	return c.ExpiresAt.Time
}
