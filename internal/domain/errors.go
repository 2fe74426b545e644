package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrUserNotFound       = errors.New("usuario no encontrado")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")
	ErrConflict           = errors.New("conflicto con el estado actual")

	// ErrNoWorkersAvailable distingue "no hay repartidores" de "no hay paradas pendientes":
	// con cero workers el optimizador no puede planear y el caller debe saberlo.
	ErrNoWorkersAvailable = errors.New("no hay repartidores disponibles")

	// ErrInvalidTransition: cambio de estado de ruta fuera del ciclo
	// planned → in_progress → completed.
	ErrInvalidTransition = errors.New("transición de estado de ruta inválida")
)
