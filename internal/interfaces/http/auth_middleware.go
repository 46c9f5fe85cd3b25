package http

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/melo-compras/internal/application/dto"
	"github.com/jhoicas/melo-compras/internal/domain/entity"
	"github.com/jhoicas/melo-compras/pkg/jwt"
)

// Locals keys en Fiber.
const (
	LocalSession   = "session"
	LocalRequestID = "requestid"
)

// AuthMiddleware lee el Bearer token, decodifica sus claims (la firma la verifica la
// API remota) y deja la entity.Session en c.Locals. Un token vencido se rechaza aquí
// sin llegar a la red.
func AuthMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "Authorization header requerido"})
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "formato: Bearer <token>"})
		}
		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "token vacío"})
		}
		claims, err := jwt.Decode(tokenString)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "token inválido"})
		}
		if claims.Expired(time.Now()) {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "TOKEN_EXPIRED", Message: "sesión expirada, inicie sesión de nuevo"})
		}
		c.Locals(LocalSession, entity.Session{
			Token:     tokenString,
			UserID:    claims.Subject(),
			Name:      claims.Name,
			Role:      claims.Role,
			ExpiresAt: claims.ExpiresAtTime(),
			RequestID: GetRequestID(c),
		})
		return c.Next()
	}
}

// RequireRole autoriza solo los roles indicados. Debe usarse después de AuthMiddleware.
func RequireRole(roles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sess := GetSession(c)
		if sess.Role == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_ROLE", Message: "el token no trae rol"})
		}
		if !sess.HasRole(roles...) {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "rol sin acceso a este recurso"})
		}
		return c.Next()
	}
}

// GetSession devuelve la sesión del contexto (vacía si no pasó por AuthMiddleware).
func GetSession(c *fiber.Ctx) entity.Session {
	s, _ := c.Locals(LocalSession).(entity.Session)
	return s
}

// GetRole rol del usuario autenticado.
func GetRole(c *fiber.Ctx) string { return GetSession(c).Role }

// GetUserID id del usuario autenticado.
func GetUserID(c *fiber.Ctx) string { return GetSession(c).UserID }

// GetRequestID id de la petición que puso el middleware requestid.
func GetRequestID(c *fiber.Ctx) string {
	s, _ := c.Locals(LocalRequestID).(string)
	return s
}
