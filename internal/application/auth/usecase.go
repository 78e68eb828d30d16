package auth

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/text/cases"

	"github.com/jhoicas/catalogo-api/internal/application/dto"
	"github.com/jhoicas/catalogo-api/internal/domain"
	"github.com/jhoicas/catalogo-api/internal/domain/entity"
	"github.com/jhoicas/catalogo-api/internal/domain/repository"
	"github.com/jhoicas/catalogo-api/pkg/jwt"
)

// Config parámetros de emisión de credenciales. Se pasa explícita al
// constructor; el core nunca lee estado global.
type Config struct {
	Secret     string
	ExpSeconds int
	Issuer     string
	BcryptCost int // 0 -> bcrypt.DefaultCost
}

// UseCase emisor de credenciales: registro y login.
type UseCase struct {
	users repository.UserRepository
	cfg   Config
}

// NewUseCase construye el caso de uso de auth.
func NewUseCase(users repository.UserRepository, cfg Config) *UseCase {
	if cfg.BcryptCost == 0 {
		cfg.BcryptCost = bcrypt.DefaultCost
	}
	return &UseCase{users: users, cfg: cfg}
}

// NormalizeEmail pliega mayúsculas/minúsculas con case folding Unicode y
// recorta espacios; los emails se comparan y almacenan siempre normalizados.
func NormalizeEmail(s string) string {
	return cases.Fold().String(strings.TrimSpace(s))
}

// Register crea un usuario: verifica unicidad de username y email (este
// último insensible a mayúsculas), hashea el password con bcrypt y emite el
// token de acceso. Role vacío se asigna auxiliar; role desconocido es error.
func (uc *UseCase) Register(in dto.RegisterRequest) (*dto.AuthResponse, error) {
	role := in.Role
	if role == "" {
		role = entity.RoleAuxiliar
	}
	if !entity.ValidRole(role) {
		return nil, domain.ErrInvalidInput
	}

	email := NormalizeEmail(in.Email)
	if existing, err := uc.users.GetByUsername(in.Username); err != nil {
		return nil, err
	} else if existing != nil {
		return nil, domain.ErrDuplicate
	}
	if existing, err := uc.users.GetByEmail(email); err != nil {
		return nil, err
	} else if existing != nil {
		return nil, domain.ErrDuplicate
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), uc.cfg.BcryptCost)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	user := &entity.User{
		ID:           uuid.New().String(),
		Username:     in.Username,
		Email:        email,
		PasswordHash: string(hash),
		Role:         role,
		Active:       true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.users.Create(user); err != nil {
		return nil, err
	}
	return uc.issue(user)
}

// Login acepta username o email como clave de búsqueda. Cuenta inexistente o
// inactiva retorna ErrNotFound y password incorrecto ErrInvalidCredentials;
// la capa HTTP responde igual en ambos casos para no revelar cuál falló.
func (uc *UseCase) Login(in dto.LoginRequest) (*dto.AuthResponse, error) {
	user, err := uc.users.GetByUsername(in.Login)
	if err != nil {
		return nil, err
	}
	if user == nil {
		user, err = uc.users.GetByEmail(NormalizeEmail(in.Login))
		if err != nil {
			return nil, err
		}
	}
	if user == nil || !user.Active {
		return nil, domain.ErrNotFound
	}
	// bcrypt compara en tiempo constante.
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrInvalidCredentials
	}
	return uc.issue(user)
}

// issue emite el access token de corta vida con {sub, role, email}.
func (uc *UseCase) issue(user *entity.User) (*dto.AuthResponse, error) {
	token, err := jwt.Generate(uc.cfg.Secret, user.ID, user.Role, user.Email, uc.cfg.Issuer, uc.cfg.ExpSeconds)
	if err != nil {
		return nil, err
	}
	return &dto.AuthResponse{
		Token: token,
		User:  *ToUserResponse(user),
	}, nil
}

// ToUserResponse mapea la entidad a su DTO sin exponer el hash.
func ToUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		Role:      u.Role,
		Active:    u.Active,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}
