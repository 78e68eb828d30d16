package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateCategoryRequest alta de categoría.
type CreateCategoryRequest struct {
	Name        string `json:"name" validate:"required,min=1,max=120"`
	Description string `json:"description" validate:"omitempty,max=500"`
}

// UpdateCategoryRequest actualización parcial de categoría.
type UpdateCategoryRequest struct {
	Name        *string `json:"name" validate:"omitempty,min=1,max=120"`
	Description *string `json:"description" validate:"omitempty,max=500"`
}

// CategoryResponse salida de una categoría.
type CategoryResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Active      bool      `json:"active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// CategoryListResponse listado paginado de categorías.
type CategoryListResponse struct {
	Items []CategoryResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}

// CreateSubcategoryRequest alta de subcategoría. CategoryID debe existir.
type CreateSubcategoryRequest struct {
	Name        string `json:"name" validate:"required,min=1,max=120"`
	Description string `json:"description" validate:"omitempty,max=500"`
	CategoryID  string `json:"category_id" validate:"required,uuid"`
}

// UpdateSubcategoryRequest actualización parcial de subcategoría.
type UpdateSubcategoryRequest struct {
	Name        *string `json:"name" validate:"omitempty,min=1,max=120"`
	Description *string `json:"description" validate:"omitempty,max=500"`
	CategoryID  *string `json:"category_id" validate:"omitempty,uuid"`
}

// SubcategoryResponse salida de una subcategoría.
type SubcategoryResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CategoryID  string    `json:"category_id"`
	Active      bool      `json:"active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// SubcategoryListResponse listado paginado de subcategorías.
type SubcategoryListResponse struct {
	Items []SubcategoryResponse `json:"items"`
	Page  PageResponse          `json:"page"`
}

// CreateProductRequest alta de producto. La subcategoría debe existir y
// pertenecer a la categoría indicada.
type CreateProductRequest struct {
	Name          string          `json:"name" validate:"required,min=1,max=120"`
	Description   string          `json:"description" validate:"omitempty,max=500"`
	Price         decimal.Decimal `json:"price"`
	Stock         int             `json:"stock" validate:"min=0"`
	CategoryID    string          `json:"category_id" validate:"required,uuid"`
	SubcategoryID string          `json:"subcategory_id" validate:"required,uuid"`
	Images        []string        `json:"images" validate:"omitempty,dive,max=500"`
}

// UpdateProductRequest actualización parcial de producto.
type UpdateProductRequest struct {
	Name          *string          `json:"name" validate:"omitempty,min=1,max=120"`
	Description   *string          `json:"description" validate:"omitempty,max=500"`
	Price         *decimal.Decimal `json:"price"`
	Stock         *int             `json:"stock" validate:"omitempty,min=0"`
	CategoryID    *string          `json:"category_id" validate:"omitempty,uuid"`
	SubcategoryID *string          `json:"subcategory_id" validate:"omitempty,uuid"`
	Images        []string         `json:"images" validate:"omitempty,dive,max=500"`
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	Description   string          `json:"description"`
	Price         decimal.Decimal `json:"price"`
	Stock         int             `json:"stock"`
	CategoryID    string          `json:"category_id"`
	SubcategoryID string          `json:"subcategory_id"`
	CreatedBy     string          `json:"created_by,omitempty"`
	Images        []string        `json:"images,omitempty"`
	Active        bool            `json:"active"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// ProductListResponse listado paginado de productos.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}

// CascadeSummary reporta el resultado de una desactivación o borrado en
// cascada. Si un paso falla, los contadores reflejan hasta dónde llegó la
// cascada y Completed queda en false.
type CascadeSummary struct {
	Kind                  string `json:"kind"` // category, subcategory, product
	ID                    string `json:"id"`
	SubcategoriesAffected int64  `json:"subcategories_affected"`
	ProductsAffected      int64  `json:"products_affected"`
	Completed             bool   `json:"completed"`
}
