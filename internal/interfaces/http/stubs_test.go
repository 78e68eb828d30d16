package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/catalogo-api/internal/application/auth"
	"github.com/jhoicas/catalogo-api/internal/application/usecase"
	"github.com/jhoicas/catalogo-api/internal/domain"
	"github.com/jhoicas/catalogo-api/internal/domain/entity"
	"github.com/jhoicas/catalogo-api/internal/domain/repository"
	apihttp "github.com/jhoicas/catalogo-api/internal/interfaces/http"
	"github.com/jhoicas/catalogo-api/pkg/jwt"
)

const testSecret = "secreto-de-prueba"

// ──────────────────────────────────────────────────────────────────────────────
// Repositorios en memoria para levantar la app completa sin Postgres
// ──────────────────────────────────────────────────────────────────────────────

type memUsers struct{ m map[string]*entity.User }

func (r *memUsers) Create(u *entity.User) error {
	for _, e := range r.m {
		if e.Username == u.Username || e.Email == u.Email {
			return domain.ErrDuplicate
		}
	}
	r.m[u.ID] = u
	return nil
}
func (r *memUsers) GetByID(id string) (*entity.User, error) { return r.m[id], nil }
func (r *memUsers) GetByUsername(username string) (*entity.User, error) {
	for _, e := range r.m {
		if e.Username == username {
			return e, nil
		}
	}
	return nil, nil
}
func (r *memUsers) GetByEmail(email string) (*entity.User, error) {
	for _, e := range r.m {
		if e.Email == email {
			return e, nil
		}
	}
	return nil, nil
}
func (r *memUsers) Update(u *entity.User) error { r.m[u.ID] = u; return nil }
func (r *memUsers) List(limit, offset int, includeInactive bool) ([]*entity.User, error) {
	var out []*entity.User
	for _, e := range r.m {
		if includeInactive || e.Active {
			out = append(out, e)
		}
	}
	return out, nil
}
func (r *memUsers) Delete(id string) error { delete(r.m, id); return nil }
func (r *memUsers) Count() (int, error)    { return len(r.m), nil }

type memCategories struct{ m map[string]*entity.Category }

func (r *memCategories) Create(c *entity.Category) error {
	for _, e := range r.m {
		if e.Name == c.Name {
			return domain.ErrDuplicate
		}
	}
	r.m[c.ID] = c
	return nil
}
func (r *memCategories) GetByID(id string) (*entity.Category, error) { return r.m[id], nil }
func (r *memCategories) GetByName(name string) (*entity.Category, error) {
	for _, e := range r.m {
		if e.Name == name {
			return e, nil
		}
	}
	return nil, nil
}
func (r *memCategories) Update(c *entity.Category) error { r.m[c.ID] = c; return nil }
func (r *memCategories) List(limit, offset int, includeInactive bool) ([]*entity.Category, error) {
	var out []*entity.Category
	for _, e := range r.m {
		if includeInactive || e.Active {
			out = append(out, e)
		}
	}
	return out, nil
}
func (r *memCategories) Delete(id string) error { delete(r.m, id); return nil }

type memSubcategories struct{ m map[string]*entity.Subcategory }

func (r *memSubcategories) Create(s *entity.Subcategory) error {
	for _, e := range r.m {
		if e.Name == s.Name {
			return domain.ErrDuplicate
		}
	}
	r.m[s.ID] = s
	return nil
}
func (r *memSubcategories) GetByID(id string) (*entity.Subcategory, error) { return r.m[id], nil }
func (r *memSubcategories) GetByName(name string) (*entity.Subcategory, error) {
	for _, e := range r.m {
		if e.Name == name {
			return e, nil
		}
	}
	return nil, nil
}
func (r *memSubcategories) Update(s *entity.Subcategory) error { r.m[s.ID] = s; return nil }
func (r *memSubcategories) List(limit, offset int, includeInactive bool) ([]*entity.Subcategory, error) {
	var out []*entity.Subcategory
	for _, e := range r.m {
		if includeInactive || e.Active {
			out = append(out, e)
		}
	}
	return out, nil
}
func (r *memSubcategories) ListByCategory(categoryID string, includeInactive bool) ([]*entity.Subcategory, error) {
	var out []*entity.Subcategory
	for _, e := range r.m {
		if e.CategoryID == categoryID && (includeInactive || e.Active) {
			out = append(out, e)
		}
	}
	return out, nil
}
func (r *memSubcategories) Delete(id string) error { delete(r.m, id); return nil }
func (r *memSubcategories) DeactivateByCategory(categoryID string) (int64, error) {
	var n int64
	for _, e := range r.m {
		if e.CategoryID == categoryID && e.Active {
			e.Active = false
			n++
		}
	}
	return n, nil
}
func (r *memSubcategories) DeleteByCategory(categoryID string) (int64, error) {
	var n int64
	for id, e := range r.m {
		if e.CategoryID == categoryID {
			delete(r.m, id)
			n++
		}
	}
	return n, nil
}

type memProducts struct{ m map[string]*entity.Product }

func (r *memProducts) Create(p *entity.Product) error {
	for _, e := range r.m {
		if e.Name == p.Name {
			return domain.ErrDuplicate
		}
	}
	r.m[p.ID] = p
	return nil
}
func (r *memProducts) GetByID(id string) (*entity.Product, error) { return r.m[id], nil }
func (r *memProducts) GetByName(name string) (*entity.Product, error) {
	for _, e := range r.m {
		if e.Name == name {
			return e, nil
		}
	}
	return nil, nil
}
func (r *memProducts) Update(p *entity.Product) error { r.m[p.ID] = p; return nil }
func (r *memProducts) List(limit, offset int, includeInactive bool) ([]*entity.Product, error) {
	var out []*entity.Product
	for _, e := range r.m {
		if includeInactive || e.Active {
			out = append(out, e)
		}
	}
	return out, nil
}
func (r *memProducts) Delete(id string) error { delete(r.m, id); return nil }
func (r *memProducts) DeactivateByCategory(categoryID string) (int64, error) {
	var n int64
	for _, e := range r.m {
		if e.CategoryID == categoryID && e.Active {
			e.Active = false
			n++
		}
	}
	return n, nil
}
func (r *memProducts) DeactivateBySubcategory(subcategoryID string) (int64, error) {
	var n int64
	for _, e := range r.m {
		if e.SubcategoryID == subcategoryID && e.Active {
			e.Active = false
			n++
		}
	}
	return n, nil
}
func (r *memProducts) DeleteByCategory(categoryID string) (int64, error) {
	var n int64
	for id, e := range r.m {
		if e.CategoryID == categoryID {
			delete(r.m, id)
			n++
		}
	}
	return n, nil
}
func (r *memProducts) DeleteBySubcategory(subcategoryID string) (int64, error) {
	var n int64
	for id, e := range r.m {
		if e.SubcategoryID == subcategoryID {
			delete(r.m, id)
			n++
		}
	}
	return n, nil
}

type memTx struct {
	cats  *memCategories
	subs  *memSubcategories
	prods *memProducts
}

func (t *memTx) Run(_ context.Context, fn func(
	repository.CategoryRepository,
	repository.SubcategoryRepository,
	repository.ProductRepository,
) error) error {
	return fn(t.cats, t.subs, t.prods)
}

// ──────────────────────────────────────────────────────────────────────────────
// App de prueba y helpers de requests
// ──────────────────────────────────────────────────────────────────────────────

type testEnv struct {
	app   *fiber.App
	users *memUsers
}

func newTestEnv() *testEnv {
	users := &memUsers{m: make(map[string]*entity.User)}
	cats := &memCategories{m: make(map[string]*entity.Category)}
	subs := &memSubcategories{m: make(map[string]*entity.Subcategory)}
	prods := &memProducts{m: make(map[string]*entity.Product)}
	tx := &memTx{cats: cats, subs: subs, prods: prods}

	authUC := auth.NewUseCase(users, auth.Config{
		Secret:     testSecret,
		ExpSeconds: 3600,
		Issuer:     "catalogo-api-test",
		BcryptCost: bcrypt.MinCost,
	})

	app := fiber.New()
	apihttp.Router(app, apihttp.RouterDeps{
		AuthUC:        authUC,
		UserUC:        usecase.NewUserUseCase(users, bcrypt.MinCost),
		CategoryUC:    usecase.NewCategoryUseCase(cats, subs, tx),
		SubcategoryUC: usecase.NewSubcategoryUseCase(subs, cats, tx),
		ProductUC:     usecase.NewProductUseCase(prods, cats, subs),
		JWTSecret:     testSecret,
	})
	return &testEnv{app: app, users: users}
}

// tokenForRole emite un token válido para un usuario sintético con el rol dado.
func tokenForRole(t *testing.T, role string) string {
	t.Helper()
	token, err := jwt.Generate(testSecret, uuid.New().String(), role, role+"@acme.co", "catalogo-api-test", 3600)
	require.NoError(t, err)
	return token
}

func doRequest(t *testing.T, app *fiber.App, method, path, token string, body any) *http.Response {
	t.Helper()
	var buf io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		buf = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeJSON[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	defer resp.Body.Close()
	var out T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}
