package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/catalogo-api/internal/application/dto"
	"github.com/jhoicas/catalogo-api/internal/domain"
	"github.com/jhoicas/catalogo-api/internal/domain/entity"
	"github.com/jhoicas/catalogo-api/internal/domain/repository"
)

// CategoryUseCase CRUD y ciclo de vida de categorías, raíz de la jerarquía.
// Desactivar y borrar cascadean hacia subcategorías y productos; reactivar NO
// cascadea (asimetría deliberada: tras una desactivación masiva el caller
// reactiva descendientes de forma selectiva).
type CategoryUseCase struct {
	repo repository.CategoryRepository
	subs repository.SubcategoryRepository
	tx   CascadeTxRunner
}

// NewCategoryUseCase construye el caso de uso.
func NewCategoryUseCase(repo repository.CategoryRepository, subs repository.SubcategoryRepository, tx CascadeTxRunner) *CategoryUseCase {
	return &CategoryUseCase{repo: repo, subs: subs, tx: tx}
}

// Create crea una categoría con nombre único.
func (uc *CategoryUseCase) Create(in dto.CreateCategoryRequest) (*dto.CategoryResponse, error) {
	existing, err := uc.repo.GetByName(in.Name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	now := time.Now()
	cat := &entity.Category{
		ID:          uuid.New().String(),
		Name:        in.Name,
		Description: in.Description,
		Active:      true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(cat); err != nil {
		return nil, err
	}
	return toCategoryResponse(cat), nil
}

// GetByID obtiene una categoría por ID.
func (uc *CategoryUseCase) GetByID(id string) (*dto.CategoryResponse, error) {
	cat, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if cat == nil {
		return nil, domain.ErrNotFound
	}
	return toCategoryResponse(cat), nil
}

// List lista categorías; por defecto omite las inactivas.
func (uc *CategoryUseCase) List(q dto.ListQuery) (*dto.CategoryListResponse, error) {
	q.Defaults()
	list, err := uc.repo.List(q.Limit, q.Offset, q.IncludeInactive)
	if err != nil {
		return nil, err
	}
	items := make([]dto.CategoryResponse, 0, len(list))
	for _, c := range list {
		items = append(items, *toCategoryResponse(c))
	}
	return &dto.CategoryListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: q.Limit, Offset: q.Offset},
	}, nil
}

// Update actualiza nombre/descripción verificando unicidad del nuevo nombre.
func (uc *CategoryUseCase) Update(id string, in dto.UpdateCategoryRequest) (*dto.CategoryResponse, error) {
	cat, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if cat == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil && *in.Name != cat.Name {
		dup, err := uc.repo.GetByName(*in.Name)
		if err != nil {
			return nil, err
		}
		if dup != nil {
			return nil, domain.ErrDuplicate
		}
		cat.Name = *in.Name
	}
	if in.Description != nil {
		cat.Description = *in.Description
	}
	cat.UpdatedAt = time.Now()
	if err := uc.repo.Update(cat); err != nil {
		return nil, err
	}
	return toCategoryResponse(cat), nil
}

// Deactivate apaga la categoría y cascadea: primero la propia categoría,
// luego todas sus subcategorías y por último todos los productos cuya
// referencia category_id coincida (directa, sin re-derivar por subcategoría,
// para evitar un round-trip extra). Corre dentro de una transacción; el
// summary reporta hasta dónde llegó la cascada si un paso falla.
func (uc *CategoryUseCase) Deactivate(ctx context.Context, id string) (*dto.CascadeSummary, error) {
	cat, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if cat == nil {
		return nil, domain.ErrNotFound
	}
	summary := &dto.CascadeSummary{Kind: "category", ID: id}
	err = uc.tx.Run(ctx, func(catRepo repository.CategoryRepository, subRepo repository.SubcategoryRepository, prodRepo repository.ProductRepository) error {
		cat.Active = false
		cat.UpdatedAt = time.Now()
		if err := catRepo.Update(cat); err != nil {
			return err
		}
		n, err := subRepo.DeactivateByCategory(id)
		summary.SubcategoriesAffected = n
		if err != nil {
			return err
		}
		m, err := prodRepo.DeactivateByCategory(id)
		summary.ProductsAffected = m
		if err != nil {
			return err
		}
		return nil
	})
	if err != nil {
		return summary, err
	}
	summary.Completed = true
	return summary, nil
}

// Reactivate enciende SOLO el flag de la propia categoría. Los descendientes
// desactivados por una cascada previa permanecen inactivos hasta que el
// caller los reactive explícitamente.
func (uc *CategoryUseCase) Reactivate(id string) (*dto.CategoryResponse, error) {
	cat, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if cat == nil {
		return nil, domain.ErrNotFound
	}
	cat.Active = true
	cat.UpdatedAt = time.Now()
	if err := uc.repo.Update(cat); err != nil {
		return nil, err
	}
	return toCategoryResponse(cat), nil
}

// HardDelete elimina la categoría y todos sus descendientes en orden
// hijo-antes-que-padre: productos, subcategorías y al final la categoría.
// Así ningún producto o subcategoría queda apuntando a un padre ausente
// aunque la secuencia se interrumpa.
func (uc *CategoryUseCase) HardDelete(ctx context.Context, id string) (*dto.CascadeSummary, error) {
	cat, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if cat == nil {
		return nil, domain.ErrNotFound
	}
	summary := &dto.CascadeSummary{Kind: "category", ID: id}
	err = uc.tx.Run(ctx, func(catRepo repository.CategoryRepository, subRepo repository.SubcategoryRepository, prodRepo repository.ProductRepository) error {
		m, err := prodRepo.DeleteByCategory(id)
		summary.ProductsAffected = m
		if err != nil {
			return err
		}
		n, err := subRepo.DeleteByCategory(id)
		summary.SubcategoriesAffected = n
		if err != nil {
			return err
		}
		return catRepo.Delete(id)
	})
	if err != nil {
		return summary, err
	}
	summary.Completed = true
	return summary, nil
}

// Subcategories lista las subcategorías que cuelgan de la categoría.
func (uc *CategoryUseCase) Subcategories(id string, includeInactive bool) ([]dto.SubcategoryResponse, error) {
	cat, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if cat == nil {
		return nil, domain.ErrNotFound
	}
	list, err := uc.subs.ListByCategory(id, includeInactive)
	if err != nil {
		return nil, err
	}
	items := make([]dto.SubcategoryResponse, 0, len(list))
	for _, s := range list {
		items = append(items, *toSubcategoryResponse(s))
	}
	return items, nil
}

func toCategoryResponse(c *entity.Category) *dto.CategoryResponse {
	if c == nil {
		return nil
	}
	return &dto.CategoryResponse{
		ID:          c.ID,
		Name:        c.Name,
		Description: c.Description,
		Active:      c.Active,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}
