package usecase_test

import (
	"context"

	"github.com/jhoicas/catalogo-api/internal/application/usecase"
	"github.com/jhoicas/catalogo-api/internal/domain"
	"github.com/jhoicas/catalogo-api/internal/domain/entity"
	"github.com/jhoicas/catalogo-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Stubs en memoria de los puertos de persistencia
// ──────────────────────────────────────────────────────────────────────────────

type memCategories struct {
	m map[string]*entity.Category
}

func newMemCategories() *memCategories {
	return &memCategories{m: make(map[string]*entity.Category)}
}

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

func (r *memCategories) Update(c *entity.Category) error {
	if _, ok := r.m[c.ID]; !ok {
		return domain.ErrNotFound
	}
	r.m[c.ID] = c
	return nil
}

func (r *memCategories) List(limit, offset int, includeInactive bool) ([]*entity.Category, error) {
	var out []*entity.Category
	for _, e := range r.m {
		if includeInactive || e.Active {
			out = append(out, e)
		}
	}
	return out, nil
}

func (r *memCategories) Delete(id string) error {
	delete(r.m, id)
	return nil
}

type memSubcategories struct {
	m map[string]*entity.Subcategory
}

func newMemSubcategories() *memSubcategories {
	return &memSubcategories{m: make(map[string]*entity.Subcategory)}
}

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

func (r *memSubcategories) Update(s *entity.Subcategory) error {
	if _, ok := r.m[s.ID]; !ok {
		return domain.ErrNotFound
	}
	r.m[s.ID] = s
	return nil
}

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

func (r *memSubcategories) Delete(id string) error {
	delete(r.m, id)
	return nil
}

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

type memProducts struct {
	m map[string]*entity.Product
}

func newMemProducts() *memProducts {
	return &memProducts{m: make(map[string]*entity.Product)}
}

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

func (r *memProducts) Update(p *entity.Product) error {
	if _, ok := r.m[p.ID]; !ok {
		return domain.ErrNotFound
	}
	r.m[p.ID] = p
	return nil
}

func (r *memProducts) List(limit, offset int, includeInactive bool) ([]*entity.Product, error) {
	var out []*entity.Product
	for _, e := range r.m {
		if includeInactive || e.Active {
			out = append(out, e)
		}
	}
	return out, nil
}

func (r *memProducts) Delete(id string) error {
	delete(r.m, id)
	return nil
}

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

type memUsers struct {
	m map[string]*entity.User
}

func newMemUsers() *memUsers {
	return &memUsers{m: make(map[string]*entity.User)}
}

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

func (r *memUsers) Update(u *entity.User) error {
	if _, ok := r.m[u.ID]; !ok {
		return domain.ErrNotFound
	}
	r.m[u.ID] = u
	return nil
}

func (r *memUsers) List(limit, offset int, includeInactive bool) ([]*entity.User, error) {
	var out []*entity.User
	for _, e := range r.m {
		if includeInactive || e.Active {
			out = append(out, e)
		}
	}
	return out, nil
}

func (r *memUsers) Delete(id string) error {
	delete(r.m, id)
	return nil
}

func (r *memUsers) Count() (int, error) { return len(r.m), nil }

// memTx ejecuta la función de cascada directamente sobre los stubs; sin
// transacción real, igual que la semántica best-effort del contrato.
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

// catalogFixture agrupa stubs y use cases listos para los tests de ciclo de vida.
type catalogFixture struct {
	cats  *memCategories
	subs  *memSubcategories
	prods *memProducts
	catUC *usecase.CategoryUseCase
	subUC *usecase.SubcategoryUseCase
	prdUC *usecase.ProductUseCase
}

func newCatalogFixture() *catalogFixture {
	cats := newMemCategories()
	subs := newMemSubcategories()
	prods := newMemProducts()
	tx := &memTx{cats: cats, subs: subs, prods: prods}
	return &catalogFixture{
		cats:  cats,
		subs:  subs,
		prods: prods,
		catUC: usecase.NewCategoryUseCase(cats, subs, tx),
		subUC: usecase.NewSubcategoryUseCase(subs, cats, tx),
		prdUC: usecase.NewProductUseCase(prods, cats, subs),
	}
}
