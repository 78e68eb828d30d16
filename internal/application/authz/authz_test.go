package authz_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/catalogo-api/internal/application/authz"
	"github.com/jhoicas/catalogo-api/internal/domain"
	"github.com/jhoicas/catalogo-api/internal/domain/entity"
)

func TestAuthorize_PertenenciaSimple(t *testing.T) {
	admin := authz.Identity{SubjectID: "u1", Role: entity.RoleAdmin}
	coord := authz.Identity{SubjectID: "u2", Role: entity.RoleCoordinador}
	aux := authz.Identity{SubjectID: "u3", Role: entity.RoleAuxiliar}

	assert.NoError(t, authz.Authorize(admin, entity.RoleAdmin))
	assert.NoError(t, authz.Authorize(coord, entity.RoleAdmin, entity.RoleCoordinador))
	assert.NoError(t, authz.Authorize(aux, entity.RoleAdmin, entity.RoleCoordinador, entity.RoleAuxiliar))

	assert.ErrorIs(t, authz.Authorize(coord, entity.RoleAdmin), domain.ErrForbidden)
	assert.ErrorIs(t, authz.Authorize(aux, entity.RoleAdmin, entity.RoleCoordinador), domain.ErrForbidden)
}

func TestAuthorize_SinJerarquia(t *testing.T) {
	// admin NO está implícito en una regla que solo admite coordinador.
	admin := authz.Identity{SubjectID: "u1", Role: entity.RoleAdmin}
	assert.ErrorIs(t, authz.Authorize(admin, entity.RoleCoordinador), domain.ErrForbidden)
}

func TestAuthorize_RolDesconocidoEsSesionInvalida(t *testing.T) {
	for _, role := range []string{"", "superuser", "ADMIN"} {
		err := authz.Authorize(authz.Identity{SubjectID: "u1", Role: role}, entity.RoleAdmin)
		assert.ErrorIs(t, err, domain.ErrInvalidToken, "rol %q", role)
		assert.NotErrorIs(t, err, domain.ErrForbidden)
	}
}

func TestAuthorize_MensajeIncluyeRolesRequeridos(t *testing.T) {
	aux := authz.Identity{SubjectID: "u3", Role: entity.RoleAuxiliar}
	err := authz.Authorize(aux, entity.RoleAdmin, entity.RoleCoordinador)
	assert.ErrorContains(t, err, "admin")
	assert.ErrorContains(t, err, "coordinador")
}

func TestSelfScope(t *testing.T) {
	aux := authz.Identity{SubjectID: "u3", Role: entity.RoleAuxiliar}
	assert.NoError(t, authz.SelfScope(aux, "u3"))
	assert.ErrorIs(t, authz.SelfScope(aux, "u9"), domain.ErrForbidden)

	// Los roles de gestión no quedan restringidos a su propia cuenta.
	coord := authz.Identity{SubjectID: "u2", Role: entity.RoleCoordinador}
	assert.NoError(t, authz.SelfScope(coord, "u9"))
}

func TestCanViewUser_CoordinadorVsAdmin(t *testing.T) {
	coord := authz.Identity{SubjectID: "u2", Role: entity.RoleCoordinador}
	admin := &entity.User{ID: "u1", Role: entity.RoleAdmin}
	aux := &entity.User{ID: "u3", Role: entity.RoleAuxiliar}

	assert.ErrorIs(t, authz.CanViewUser(coord, admin), domain.ErrForbidden)
	assert.NoError(t, authz.CanViewUser(coord, aux))
}

func TestCanDestroyUser_Autoproteccion(t *testing.T) {
	adminA := authz.Identity{SubjectID: "a", Role: entity.RoleAdmin}
	otroAdmin := &entity.User{ID: "b", Role: entity.RoleAdmin}
	propio := &entity.User{ID: "a", Role: entity.RoleAdmin}
	coord := &entity.User{ID: "c", Role: entity.RoleCoordinador}

	assert.ErrorIs(t, authz.CanDestroyUser(adminA, otroAdmin), domain.ErrForbidden)
	assert.NoError(t, authz.CanDestroyUser(adminA, propio))
	assert.NoError(t, authz.CanDestroyUser(adminA, coord))
}
