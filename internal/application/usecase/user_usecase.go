package usecase

import (
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/catalogo-api/internal/application/auth"
	"github.com/jhoicas/catalogo-api/internal/application/authz"
	"github.com/jhoicas/catalogo-api/internal/application/dto"
	"github.com/jhoicas/catalogo-api/internal/domain"
	"github.com/jhoicas/catalogo-api/internal/domain/entity"
	"github.com/jhoicas/catalogo-api/internal/domain/repository"
)

// UserUseCase directorio de usuarios. Recibe la identidad del actor en cada
// operación y aplica encima del rol base las reglas de alcance: auxiliar solo
// su cuenta, coordinador nunca ve admins, y un admin no destruye a otro admin.
type UserUseCase struct {
	repo       repository.UserRepository
	bcryptCost int
}

// NewUserUseCase construye el caso de uso. bcryptCost 0 usa bcrypt.DefaultCost.
func NewUserUseCase(repo repository.UserRepository, bcryptCost int) *UserUseCase {
	if bcryptCost == 0 {
		bcryptCost = bcrypt.DefaultCost
	}
	return &UserUseCase{repo: repo, bcryptCost: bcryptCost}
}

// Create alta emitida por un admin con role explícito.
func (uc *UserUseCase) Create(in dto.CreateUserRequest) (*dto.UserResponse, error) {
	if !entity.ValidRole(in.Role) {
		return nil, domain.ErrInvalidInput
	}
	email := auth.NormalizeEmail(in.Email)
	if existing, err := uc.repo.GetByUsername(in.Username); err != nil {
		return nil, err
	} else if existing != nil {
		return nil, domain.ErrDuplicate
	}
	if existing, err := uc.repo.GetByEmail(email); err != nil {
		return nil, err
	} else if existing != nil {
		return nil, domain.ErrDuplicate
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), uc.bcryptCost)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	user := &entity.User{
		ID:           uuid.New().String(),
		Username:     in.Username,
		Email:        email,
		PasswordHash: string(hash),
		Role:         in.Role,
		Active:       true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.repo.Create(user); err != nil {
		return nil, err
	}
	return auth.ToUserResponse(user), nil
}

// GetByID lee un usuario aplicando visibilidad y auto-alcance del actor.
// El auto-alcance se evalúa antes del lookup: la denegación a un auxiliar no
// revela si el recurso existe.
func (uc *UserUseCase) GetByID(actor authz.Identity, id string) (*dto.UserResponse, error) {
	if err := authz.SelfScope(actor, id); err != nil {
		return nil, err
	}
	user, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrNotFound
	}
	if err := authz.CanViewUser(actor, user); err != nil {
		return nil, err
	}
	return auth.ToUserResponse(user), nil
}

// List lista usuarios. A un coordinador se le ocultan las cuentas admin.
func (uc *UserUseCase) List(actor authz.Identity, q dto.ListQuery) (*dto.UserListResponse, error) {
	q.Defaults()
	list, err := uc.repo.List(q.Limit, q.Offset, q.IncludeInactive)
	if err != nil {
		return nil, err
	}
	items := make([]dto.UserResponse, 0, len(list))
	for _, u := range list {
		if actor.Role == entity.RoleCoordinador && u.Role == entity.RoleAdmin {
			continue
		}
		items = append(items, *auth.ToUserResponse(u))
	}
	return &dto.UserListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: q.Limit, Offset: q.Offset},
	}, nil
}

// Update actualización parcial. Password presente se re-hashea; cambio de
// role requiere actor admin y respeta la autoprotección.
func (uc *UserUseCase) Update(actor authz.Identity, id string, in dto.UpdateUserRequest) (*dto.UserResponse, error) {
	if err := authz.SelfScope(actor, id); err != nil {
		return nil, err
	}
	user, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrNotFound
	}
	if err := authz.CanViewUser(actor, user); err != nil {
		return nil, err
	}
	if in.Username != nil && *in.Username != user.Username {
		dup, err := uc.repo.GetByUsername(*in.Username)
		if err != nil {
			return nil, err
		}
		if dup != nil {
			return nil, domain.ErrDuplicate
		}
		user.Username = *in.Username
	}
	if in.Email != nil {
		email := auth.NormalizeEmail(*in.Email)
		if email != user.Email {
			dup, err := uc.repo.GetByEmail(email)
			if err != nil {
				return nil, err
			}
			if dup != nil {
				return nil, domain.ErrDuplicate
			}
			user.Email = email
		}
	}
	if in.Password != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*in.Password), uc.bcryptCost)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = string(hash)
	}
	if in.Role != nil && *in.Role != user.Role {
		if err := authz.Authorize(actor, entity.RoleAdmin); err != nil {
			return nil, err
		}
		if err := authz.CanDestroyUser(actor, user); err != nil {
			return nil, err
		}
		if !entity.ValidRole(*in.Role) {
			return nil, domain.ErrInvalidInput
		}
		user.Role = *in.Role
	}
	user.UpdatedAt = time.Now()
	if err := uc.repo.Update(user); err != nil {
		return nil, err
	}
	return auth.ToUserResponse(user), nil
}

// Deactivate apaga la cuenta (solo admin en el router; aquí la autoprotección).
func (uc *UserUseCase) Deactivate(actor authz.Identity, id string) (*dto.UserResponse, error) {
	user, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrNotFound
	}
	if err := authz.CanDestroyUser(actor, user); err != nil {
		return nil, err
	}
	user.Active = false
	user.UpdatedAt = time.Now()
	if err := uc.repo.Update(user); err != nil {
		return nil, err
	}
	return auth.ToUserResponse(user), nil
}

// Reactivate vuelve a habilitar la cuenta.
func (uc *UserUseCase) Reactivate(actor authz.Identity, id string) (*dto.UserResponse, error) {
	user, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrNotFound
	}
	user.Active = true
	user.UpdatedAt = time.Now()
	if err := uc.repo.Update(user); err != nil {
		return nil, err
	}
	return auth.ToUserResponse(user), nil
}

// Delete borrado permanente con autoprotección de admins.
func (uc *UserUseCase) Delete(actor authz.Identity, id string) error {
	user, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if user == nil {
		return domain.ErrNotFound
	}
	if err := authz.CanDestroyUser(actor, user); err != nil {
		return err
	}
	return uc.repo.Delete(id)
}
