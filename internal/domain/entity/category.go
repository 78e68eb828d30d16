package entity

import "time"

// Category es la raíz de la jerarquía del catálogo. Agrupa subcategorías.
type Category struct {
	ID          string
	Name        string // único
	Description string
	Active      bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
