package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/catalogo-api/internal/application/dto"
	"github.com/jhoicas/catalogo-api/internal/domain"
	"github.com/jhoicas/catalogo-api/internal/domain/entity"
	"github.com/jhoicas/catalogo-api/internal/domain/repository"
)

// ProductUseCase CRUD y ciclo de vida de productos, la hoja de la jerarquía.
// Create y Update verifican la referencia cruzada: la subcategoría debe
// existir Y pertenecer a la categoría indicada. Una subcategoría válida bajo
// el padre equivocado es ErrReferentialMismatch, distinto de ErrNotFound.
type ProductUseCase struct {
	repo repository.ProductRepository
	cats repository.CategoryRepository
	subs repository.SubcategoryRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository, cats repository.CategoryRepository, subs repository.SubcategoryRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo, cats: cats, subs: subs}
}

// checkHierarchy valida categoría y subcategoría antes de cualquier escritura.
func (uc *ProductUseCase) checkHierarchy(categoryID, subcategoryID string) error {
	cat, err := uc.cats.GetByID(categoryID)
	if err != nil {
		return err
	}
	if cat == nil {
		return domain.ErrNotFound
	}
	sub, err := uc.subs.GetByID(subcategoryID)
	if err != nil {
		return err
	}
	if sub == nil {
		return domain.ErrNotFound
	}
	if sub.CategoryID != categoryID {
		return domain.ErrReferentialMismatch
	}
	return nil
}

// Create crea un producto con nombre único, precio y stock no negativos y
// referencias consistentes. createdBy es el usuario autenticado que lo crea.
func (uc *ProductUseCase) Create(createdBy string, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if in.Price.IsNegative() || in.Stock < 0 {
		return nil, domain.ErrInvalidInput
	}
	if err := uc.checkHierarchy(in.CategoryID, in.SubcategoryID); err != nil {
		return nil, err
	}
	existing, err := uc.repo.GetByName(in.Name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	now := time.Now()
	product := &entity.Product{
		ID:            uuid.New().String(),
		Name:          in.Name,
		Description:   in.Description,
		Price:         in.Price,
		Stock:         in.Stock,
		CategoryID:    in.CategoryID,
		SubcategoryID: in.SubcategoryID,
		CreatedBy:     createdBy,
		Images:        in.Images,
		Active:        true,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := uc.repo.Create(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// GetByID obtiene un producto por ID.
func (uc *ProductUseCase) GetByID(id string) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	return toProductResponse(product), nil
}

// List lista productos; por defecto omite los inactivos (los desactivados en
// cascada aparecen solo con includeInactive=true).
func (uc *ProductUseCase) List(q dto.ListQuery) (*dto.ProductListResponse, error) {
	q.Defaults()
	list, err := uc.repo.List(q.Limit, q.Offset, q.IncludeInactive)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProductResponse(p))
	}
	return &dto.ProductListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: q.Limit, Offset: q.Offset},
	}, nil
}

// Update actualiza el producto. Si cambia la categoría o la subcategoría se
// re-verifica el par efectivo completo antes de escribir.
func (uc *ProductUseCase) Update(id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	categoryID := product.CategoryID
	subcategoryID := product.SubcategoryID
	if in.CategoryID != nil {
		categoryID = *in.CategoryID
	}
	if in.SubcategoryID != nil {
		subcategoryID = *in.SubcategoryID
	}
	if categoryID != product.CategoryID || subcategoryID != product.SubcategoryID {
		if err := uc.checkHierarchy(categoryID, subcategoryID); err != nil {
			return nil, err
		}
		product.CategoryID = categoryID
		product.SubcategoryID = subcategoryID
	}
	if in.Name != nil && *in.Name != product.Name {
		dup, err := uc.repo.GetByName(*in.Name)
		if err != nil {
			return nil, err
		}
		if dup != nil {
			return nil, domain.ErrDuplicate
		}
		product.Name = *in.Name
	}
	if in.Description != nil {
		product.Description = *in.Description
	}
	if in.Price != nil {
		if in.Price.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		product.Price = *in.Price
	}
	if in.Stock != nil {
		if *in.Stock < 0 {
			return nil, domain.ErrInvalidInput
		}
		product.Stock = *in.Stock
	}
	if in.Images != nil {
		product.Images = in.Images
	}
	product.UpdatedAt = time.Now()
	if err := uc.repo.Update(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// Deactivate apaga el producto. Es hoja: la cascada no alcanza a nadie más,
// pero el contrato devuelve el mismo summary que el resto de la jerarquía.
func (uc *ProductUseCase) Deactivate(id string) (*dto.CascadeSummary, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	product.Active = false
	product.UpdatedAt = time.Now()
	if err := uc.repo.Update(product); err != nil {
		return nil, err
	}
	return &dto.CascadeSummary{Kind: "product", ID: id, Completed: true}, nil
}

// Reactivate enciende el flag del producto.
func (uc *ProductUseCase) Reactivate(id string) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	product.Active = true
	product.UpdatedAt = time.Now()
	if err := uc.repo.Update(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// HardDelete elimina el producto definitivamente.
func (uc *ProductUseCase) HardDelete(id string) (*dto.CascadeSummary, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	if err := uc.repo.Delete(id); err != nil {
		return nil, err
	}
	return &dto.CascadeSummary{Kind: "product", ID: id, Completed: true}, nil
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductResponse{
		ID:            p.ID,
		Name:          p.Name,
		Description:   p.Description,
		Price:         p.Price,
		Stock:         p.Stock,
		CategoryID:    p.CategoryID,
		SubcategoryID: p.SubcategoryID,
		CreatedBy:     p.CreatedBy,
		Images:        p.Images,
		Active:        p.Active,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
}
