package entity

import "time"

// Session credenciales de quien hace la petición. Se pasa explícitamente a cada
// llamada que llega a la API remota; no existe estado global con el token.
type Session struct {
	Token     string
	UserID    string
	Name      string
	Role      string
	ExpiresAt time.Time
	RequestID string
}

// Authenticated true si hay token.
func (s Session) Authenticated() bool { return s.Token != "" }

// HasRole true si el rol de la sesión está entre los indicados.
func (s Session) HasRole(roles ...string) bool {
	for _, r := range roles {
		if s.Role == r {
			return true
		}
	}
	return false
}
