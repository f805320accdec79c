package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrConflict           = errors.New("conflicto con el estado actual")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrPendingEditExpired = errors.New("edición pendiente no encontrada o ya descartada")
)
