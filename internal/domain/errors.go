package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound        = errors.New("recurso no encontrado")
	ErrInvalidInput    = errors.New("entrada inválida")
	ErrDuplicate       = errors.New("recurso duplicado")
	ErrUnauthorized    = errors.New("no autorizado")
	ErrForbidden       = errors.New("acceso denegado")
	ErrEstadoInvalido  = errors.New("estado de pedido inválido")
	ErrCredenciales    = errors.New("credenciales inválidas")
	ErrEmailRegistrado = errors.New("el email ya está registrado")
)
