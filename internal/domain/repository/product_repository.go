package repository

import "github.com/jhoicas/catalogo-api/internal/domain/entity"

// ProductRepository define el puerto de persistencia para Product (DIP).
// Las operaciones masivas por categoría filtran por la referencia category_id
// propia del producto, sin re-derivar a través de las subcategorías.
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	GetByName(name string) (*entity.Product, error)
	Update(product *entity.Product) error
	List(limit, offset int, includeInactive bool) ([]*entity.Product, error)
	Delete(id string) error
	DeactivateByCategory(categoryID string) (int64, error)
	DeactivateBySubcategory(subcategoryID string) (int64, error)
	DeleteByCategory(categoryID string) (int64, error)
	DeleteBySubcategory(subcategoryID string) (int64, error)
}
