package entity

import "time"

// Subcategory pertenece a exactamente una Category.
// CategoryID debe apuntar a una categoría existente; se valida en create/update,
// no hay foreign key viva en el dominio.
type Subcategory struct {
	ID          string
	Name        string // único
	Description string
	CategoryID  string
	Active      bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
