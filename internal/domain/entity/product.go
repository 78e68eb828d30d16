package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product es la hoja de la jerarquía Category → Subcategory → Product.
// Invariante: la subcategoría referenciada debe pertenecer a la categoría
// referenciada; se verifica en la capa de lógica antes de cualquier escritura.
type Product struct {
	ID            string
	Name          string // único
	Description   string
	Price         decimal.Decimal // >= 0
	Stock         int             // >= 0
	CategoryID    string
	SubcategoryID string
	CreatedBy     string // usuario creador, opcional
	Images        []string
	Active        bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
