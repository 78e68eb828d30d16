package repository

import "github.com/jhoicas/catalogo-api/internal/domain/entity"

// SubcategoryRepository define el puerto de persistencia para Subcategory (DIP).
// DeactivateByCategory y DeleteByCategory son las operaciones masivas que usa
// el motor de cascada; devuelven cuántas filas tocaron.
type SubcategoryRepository interface {
	Create(sub *entity.Subcategory) error
	GetByID(id string) (*entity.Subcategory, error)
	GetByName(name string) (*entity.Subcategory, error)
	Update(sub *entity.Subcategory) error
	List(limit, offset int, includeInactive bool) ([]*entity.Subcategory, error)
	ListByCategory(categoryID string, includeInactive bool) ([]*entity.Subcategory, error)
	Delete(id string) error
	DeactivateByCategory(categoryID string) (int64, error)
	DeleteByCategory(categoryID string) (int64, error)
}
