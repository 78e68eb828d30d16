package entity

import "time"

// Roles válidos para User.
const (
	RoleAdmin       = "admin"
	RoleCoordinador = "coordinador"
	RoleAuxiliar    = "auxiliar"
)

// ValidRole indica si s es uno de los roles conocidos.
func ValidRole(s string) bool {
	switch s {
	case RoleAdmin, RoleCoordinador, RoleAuxiliar:
		return true
	}
	return false
}

// User representa una cuenta del sistema.
type User struct {
	ID           string
	Username     string
	Email        string // normalizado a minúsculas al registrar
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Role         string // admin, coordinador, auxiliar
	Active       bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
