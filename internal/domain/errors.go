package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	// ErrUnauthenticated: la petición no trae credencial en ninguna de las
	// cabeceras aceptadas, o la credencial es ilegible.
	ErrUnauthenticated = errors.New("autenticación requerida")
	// ErrInvalidToken: credencial presente pero firma inválida o token expirado.
	ErrInvalidToken = errors.New("token inválido o expirado")
	ErrForbidden    = errors.New("acceso denegado")
	ErrNotFound     = errors.New("recurso no encontrado")
	ErrDuplicate    = errors.New("recurso duplicado")
	// ErrReferentialMismatch: la referencia existe pero cuelga del padre
	// equivocado (ej. subcategoría de otra categoría). Distinto de ErrNotFound.
	ErrReferentialMismatch = errors.New("la referencia no pertenece al padre indicado")
	ErrInvalidCredentials  = errors.New("credenciales inválidas")
	ErrInvalidInput        = errors.New("entrada inválida")
)
