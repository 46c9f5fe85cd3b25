package entity

// Roles válidos para User (los define la API de autenticación remota).
const (
	RoleAdmin      = "admin"
	RoleUser       = "user"
	RoleEngenheiro = "engenheiro"
)

// User representa un usuario del sistema. La contraseña nunca se guarda aquí:
// viaja directo a la API remota en alta/edición.
type User struct {
	ID    string
	Name  string
	Email string
	Role  string // admin, user, engenheiro
}
