// Package authz implementa la puerta de roles: decisiones puras de
// autorización sobre la identidad decodificada del token. No consulta la DB;
// los handlers que necesiten estado vivo de la cuenta lo verifican aparte.
package authz

import (
	"fmt"
	"strings"

	"github.com/jhoicas/catalogo-api/internal/domain"
	"github.com/jhoicas/catalogo-api/internal/domain/entity"
)

// Identity son los claims confiables derivados de un token verificado.
type Identity struct {
	SubjectID string
	Role      string
	Email     string
}

// Authorize permite o deniega por pertenencia simple al conjunto de roles.
// No hay jerarquía: admin NO está implícito en una regla solo-coordinador.
// Un rol ausente o desconocido se trata como sesión inválida (ErrInvalidToken),
// distinto de la denegación por privilegio insuficiente (ErrForbidden, que
// lleva el conjunto requerido en el mensaje).
func Authorize(id Identity, allowed ...string) error {
	if !entity.ValidRole(id.Role) {
		return fmt.Errorf("%w: rol ausente o desconocido", domain.ErrInvalidToken)
	}
	for _, r := range allowed {
		if id.Role == r {
			return nil
		}
	}
	return fmt.Errorf("%w: requiere rol %s", domain.ErrForbidden, strings.Join(allowed, " o "))
}

// SelfScope restringe a un auxiliar a su propio registro de usuario.
// Se aplica encima de (no en lugar de) la verificación base de rol.
func SelfScope(id Identity, targetUserID string) error {
	if id.Role == entity.RoleAuxiliar && id.SubjectID != targetUserID {
		return fmt.Errorf("%w: un auxiliar solo accede a su propia cuenta", domain.ErrForbidden)
	}
	return nil
}

// CanViewUser decide si la identidad puede leer o mutar el usuario destino.
// Regla de visibilidad: un coordinador nunca ve ni modifica cuentas admin.
func CanViewUser(id Identity, target *entity.User) error {
	if id.Role == entity.RoleCoordinador && target.Role == entity.RoleAdmin {
		return fmt.Errorf("%w: cuenta fuera del alcance del rol", domain.ErrForbidden)
	}
	return SelfScope(id, target.ID)
}

// CanDestroyUser aplica la regla de autoprotección en operaciones destructivas
// (desactivar / eliminar): un admin no puede actuar sobre OTRO admin; siempre
// puede actuar sobre su propia cuenta o sobre cuentas no-admin.
func CanDestroyUser(id Identity, target *entity.User) error {
	if target.Role == entity.RoleAdmin && target.ID != id.SubjectID {
		return fmt.Errorf("%w: no se puede desactivar ni eliminar a otro admin", domain.ErrForbidden)
	}
	return nil
}
