package usecase_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/catalogo-api/internal/application/authz"
	"github.com/jhoicas/catalogo-api/internal/application/dto"
	"github.com/jhoicas/catalogo-api/internal/application/usecase"
	"github.com/jhoicas/catalogo-api/internal/domain"
	"github.com/jhoicas/catalogo-api/internal/domain/entity"
)

func seedUser(t *testing.T, repo *memUsers, username, role string) *entity.User {
	t.Helper()
	now := time.Now()
	u := &entity.User{
		ID:           uuid.New().String(),
		Username:     username,
		Email:        username + "@acme.co",
		PasswordHash: "$2a$04$stub",
		Role:         role,
		Active:       true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	require.NoError(t, repo.Create(u))
	return u
}

func identityOf(u *entity.User) authz.Identity {
	return authz.Identity{SubjectID: u.ID, Role: u.Role, Email: u.Email}
}

func TestUserGetByID_AuxiliarSoloSuCuenta(t *testing.T) {
	repo := newMemUsers()
	uc := usecase.NewUserUseCase(repo, bcrypt.MinCost)
	aux := seedUser(t, repo, "auxi", entity.RoleAuxiliar)
	otro := seedUser(t, repo, "otro", entity.RoleAuxiliar)

	got, err := uc.GetByID(identityOf(aux), aux.ID)
	require.NoError(t, err)
	assert.Equal(t, aux.ID, got.ID)

	_, err = uc.GetByID(identityOf(aux), otro.ID)
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestUserGetByID_AuxiliarAjenoNoRevelaExistencia(t *testing.T) {
	repo := newMemUsers()
	uc := usecase.NewUserUseCase(repo, bcrypt.MinCost)
	aux := seedUser(t, repo, "auxi", entity.RoleAuxiliar)

	// La denegación sobre un id inexistente es idéntica a la de uno real.
	_, err := uc.GetByID(identityOf(aux), uuid.New().String())
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestUserGetByID_CoordinadorNoVeAdmin(t *testing.T) {
	repo := newMemUsers()
	uc := usecase.NewUserUseCase(repo, bcrypt.MinCost)
	coord := seedUser(t, repo, "coord", entity.RoleCoordinador)
	admin := seedUser(t, repo, "root", entity.RoleAdmin)
	aux := seedUser(t, repo, "auxi", entity.RoleAuxiliar)

	_, err := uc.GetByID(identityOf(coord), admin.ID)
	assert.ErrorIs(t, err, domain.ErrForbidden)

	got, err := uc.GetByID(identityOf(coord), aux.ID)
	require.NoError(t, err)
	assert.Equal(t, aux.ID, got.ID)
}

func TestUserList_CoordinadorSinAdmins(t *testing.T) {
	repo := newMemUsers()
	uc := usecase.NewUserUseCase(repo, bcrypt.MinCost)
	coord := seedUser(t, repo, "coord", entity.RoleCoordinador)
	admin := seedUser(t, repo, "root", entity.RoleAdmin)
	seedUser(t, repo, "auxi", entity.RoleAuxiliar)

	list, err := uc.List(identityOf(coord), dto.ListQuery{})
	require.NoError(t, err)
	require.Len(t, list.Items, 2)
	for _, it := range list.Items {
		assert.NotEqual(t, entity.RoleAdmin, it.Role)
	}

	list, err = uc.List(identityOf(admin), dto.ListQuery{})
	require.NoError(t, err)
	assert.Len(t, list.Items, 3)
}

func TestUserDeactivate_AutoproteccionAdmin(t *testing.T) {
	repo := newMemUsers()
	uc := usecase.NewUserUseCase(repo, bcrypt.MinCost)
	adminA := seedUser(t, repo, "admin-a", entity.RoleAdmin)
	adminB := seedUser(t, repo, "admin-b", entity.RoleAdmin)
	coord := seedUser(t, repo, "coord", entity.RoleCoordinador)

	// Un admin no desactiva a otro admin.
	_, err := uc.Deactivate(identityOf(adminA), adminB.ID)
	assert.ErrorIs(t, err, domain.ErrForbidden)
	assert.True(t, repo.m[adminB.ID].Active)

	// Su propia cuenta sí.
	got, err := uc.Deactivate(identityOf(adminA), adminA.ID)
	require.NoError(t, err)
	assert.False(t, got.Active)

	// Y cualquier cuenta no-admin.
	got, err = uc.Deactivate(identityOf(adminB), coord.ID)
	require.NoError(t, err)
	assert.False(t, got.Active)
}

func TestUserDelete_AutoproteccionAdmin(t *testing.T) {
	repo := newMemUsers()
	uc := usecase.NewUserUseCase(repo, bcrypt.MinCost)
	adminA := seedUser(t, repo, "admin-a", entity.RoleAdmin)
	adminB := seedUser(t, repo, "admin-b", entity.RoleAdmin)

	err := uc.Delete(identityOf(adminA), adminB.ID)
	assert.ErrorIs(t, err, domain.ErrForbidden)
	assert.Contains(t, repo.m, adminB.ID)

	require.NoError(t, uc.Delete(identityOf(adminA), adminA.ID))
	assert.NotContains(t, repo.m, adminA.ID)
}

func TestUserCreate_RolInvalido(t *testing.T) {
	repo := newMemUsers()
	uc := usecase.NewUserUseCase(repo, bcrypt.MinCost)

	_, err := uc.Create(dto.CreateUserRequest{
		Username: "nuevo",
		Email:    "nuevo@acme.co",
		Password: "secreto123",
		Role:     "superuser",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestUserUpdate_PasswordSeRehashea(t *testing.T) {
	repo := newMemUsers()
	uc := usecase.NewUserUseCase(repo, bcrypt.MinCost)
	admin := seedUser(t, repo, "root", entity.RoleAdmin)

	nueva := "otra-clave-123"
	_, err := uc.Update(identityOf(admin), admin.ID, dto.UpdateUserRequest{Password: &nueva})
	require.NoError(t, err)

	stored := repo.m[admin.ID]
	assert.NotEqual(t, "$2a$04$stub", stored.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte(nueva)))
}

func TestUserUpdate_CambioDeRolSoloAdmin(t *testing.T) {
	repo := newMemUsers()
	uc := usecase.NewUserUseCase(repo, bcrypt.MinCost)
	coord := seedUser(t, repo, "coord", entity.RoleCoordinador)
	aux := seedUser(t, repo, "auxi", entity.RoleAuxiliar)
	admin := seedUser(t, repo, "root", entity.RoleAdmin)

	promover := entity.RoleCoordinador
	_, err := uc.Update(identityOf(coord), aux.ID, dto.UpdateUserRequest{Role: &promover})
	assert.ErrorIs(t, err, domain.ErrForbidden)
	assert.Equal(t, entity.RoleAuxiliar, repo.m[aux.ID].Role)

	got, err := uc.Update(identityOf(admin), aux.ID, dto.UpdateUserRequest{Role: &promover})
	require.NoError(t, err)
	assert.Equal(t, entity.RoleCoordinador, got.Role)
}

func TestUserUpdate_EmailSeNormaliza(t *testing.T) {
	repo := newMemUsers()
	uc := usecase.NewUserUseCase(repo, bcrypt.MinCost)
	admin := seedUser(t, repo, "root", entity.RoleAdmin)

	email := "  Root@ACME.co "
	got, err := uc.Update(identityOf(admin), admin.ID, dto.UpdateUserRequest{Email: &email})
	require.NoError(t, err)
	assert.Equal(t, "root@acme.co", got.Email)
}
