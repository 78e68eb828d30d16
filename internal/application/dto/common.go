package dto

// ListQuery paginación y visibilidad para listados.
// IncludeInactive en false (por defecto) omite los registros desactivados.
type ListQuery struct {
	Limit           int  `query:"limit"`
	Offset          int  `query:"offset"`
	IncludeInactive bool `query:"includeInactive"`
}

// Defaults aplica valores por defecto si Limit/Offset son cero o negativos.
func (q *ListQuery) Defaults() {
	if q.Limit <= 0 {
		q.Limit = 20
	}
	if q.Limit > 100 {
		q.Limit = 100
	}
	if q.Offset < 0 {
		q.Offset = 0
	}
}

// PageResponse metadatos de página en respuestas.
type PageResponse struct {
	Limit  int `json:"limit"`
	Offset int `json:"offset"`
}

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
