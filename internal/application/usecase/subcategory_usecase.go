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

// SubcategoryUseCase CRUD y ciclo de vida del nivel intermedio. Crear o
// mover una subcategoría exige que la categoría destino exista; la
// verificación corre antes de cualquier escritura.
type SubcategoryUseCase struct {
	repo repository.SubcategoryRepository
	cats repository.CategoryRepository
	tx   CascadeTxRunner
}

// NewSubcategoryUseCase construye el caso de uso.
func NewSubcategoryUseCase(repo repository.SubcategoryRepository, cats repository.CategoryRepository, tx CascadeTxRunner) *SubcategoryUseCase {
	return &SubcategoryUseCase{repo: repo, cats: cats, tx: tx}
}

// Create crea una subcategoría bajo una categoría existente.
func (uc *SubcategoryUseCase) Create(in dto.CreateSubcategoryRequest) (*dto.SubcategoryResponse, error) {
	cat, err := uc.cats.GetByID(in.CategoryID)
	if err != nil {
		return nil, err
	}
	if cat == nil {
		return nil, domain.ErrNotFound
	}
	existing, err := uc.repo.GetByName(in.Name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	now := time.Now()
	sub := &entity.Subcategory{
		ID:          uuid.New().String(),
		Name:        in.Name,
		Description: in.Description,
		CategoryID:  in.CategoryID,
		Active:      true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(sub); err != nil {
		return nil, err
	}
	return toSubcategoryResponse(sub), nil
}

// GetByID obtiene una subcategoría por ID.
func (uc *SubcategoryUseCase) GetByID(id string) (*dto.SubcategoryResponse, error) {
	sub, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if sub == nil {
		return nil, domain.ErrNotFound
	}
	return toSubcategoryResponse(sub), nil
}

// List lista subcategorías; por defecto omite las inactivas.
func (uc *SubcategoryUseCase) List(q dto.ListQuery) (*dto.SubcategoryListResponse, error) {
	q.Defaults()
	list, err := uc.repo.List(q.Limit, q.Offset, q.IncludeInactive)
	if err != nil {
		return nil, err
	}
	items := make([]dto.SubcategoryResponse, 0, len(list))
	for _, s := range list {
		items = append(items, *toSubcategoryResponse(s))
	}
	return &dto.SubcategoryListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: q.Limit, Offset: q.Offset},
	}, nil
}

// Update actualiza la subcategoría. Cambiar de categoría verifica que la
// nueva exista antes de escribir.
func (uc *SubcategoryUseCase) Update(id string, in dto.UpdateSubcategoryRequest) (*dto.SubcategoryResponse, error) {
	sub, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if sub == nil {
		return nil, domain.ErrNotFound
	}
	if in.CategoryID != nil && *in.CategoryID != sub.CategoryID {
		cat, err := uc.cats.GetByID(*in.CategoryID)
		if err != nil {
			return nil, err
		}
		if cat == nil {
			return nil, domain.ErrNotFound
		}
		sub.CategoryID = *in.CategoryID
	}
	if in.Name != nil && *in.Name != sub.Name {
		dup, err := uc.repo.GetByName(*in.Name)
		if err != nil {
			return nil, err
		}
		if dup != nil {
			return nil, domain.ErrDuplicate
		}
		sub.Name = *in.Name
	}
	if in.Description != nil {
		sub.Description = *in.Description
	}
	sub.UpdatedAt = time.Now()
	if err := uc.repo.Update(sub); err != nil {
		return nil, err
	}
	return toSubcategoryResponse(sub), nil
}

// Deactivate apaga la subcategoría y cascadea a sus productos. Los productos
// de subcategorías hermanas no se tocan.
func (uc *SubcategoryUseCase) Deactivate(ctx context.Context, id string) (*dto.CascadeSummary, error) {
	sub, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if sub == nil {
		return nil, domain.ErrNotFound
	}
	summary := &dto.CascadeSummary{Kind: "subcategory", ID: id}
	err = uc.tx.Run(ctx, func(_ repository.CategoryRepository, subRepo repository.SubcategoryRepository, prodRepo repository.ProductRepository) error {
		sub.Active = false
		sub.UpdatedAt = time.Now()
		if err := subRepo.Update(sub); err != nil {
			return err
		}
		m, err := prodRepo.DeactivateBySubcategory(id)
		summary.ProductsAffected = m
		return err
	})
	if err != nil {
		return summary, err
	}
	summary.Completed = true
	return summary, nil
}

// Reactivate enciende SOLO el flag propio; no revive productos.
func (uc *SubcategoryUseCase) Reactivate(id string) (*dto.SubcategoryResponse, error) {
	sub, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if sub == nil {
		return nil, domain.ErrNotFound
	}
	sub.Active = true
	sub.UpdatedAt = time.Now()
	if err := uc.repo.Update(sub); err != nil {
		return nil, err
	}
	return toSubcategoryResponse(sub), nil
}

// HardDelete elimina primero los productos dependientes y luego la
// subcategoría (hijo antes que padre).
func (uc *SubcategoryUseCase) HardDelete(ctx context.Context, id string) (*dto.CascadeSummary, error) {
	sub, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if sub == nil {
		return nil, domain.ErrNotFound
	}
	summary := &dto.CascadeSummary{Kind: "subcategory", ID: id}
	err = uc.tx.Run(ctx, func(_ repository.CategoryRepository, subRepo repository.SubcategoryRepository, prodRepo repository.ProductRepository) error {
		m, err := prodRepo.DeleteBySubcategory(id)
		summary.ProductsAffected = m
		if err != nil {
			return err
		}
		return subRepo.Delete(id)
	})
	if err != nil {
		return summary, err
	}
	summary.Completed = true
	return summary, nil
}

func toSubcategoryResponse(s *entity.Subcategory) *dto.SubcategoryResponse {
	if s == nil {
		return nil
	}
	return &dto.SubcategoryResponse{
		ID:          s.ID,
		Name:        s.Name,
		Description: s.Description,
		CategoryID:  s.CategoryID,
		Active:      s.Active,
		CreatedAt:   s.CreatedAt,
		UpdatedAt:   s.UpdatedAt,
	}
}
