package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound     = errors.New("recurso no encontrado")
	ErrInvalidInput = errors.New("entrada inválida")
	ErrDuplicate    = errors.New("recurso duplicado")

	// Motor de proyección y ejecución de movimientos.
	ErrInvalidRange           = errors.New("la fecha final no puede ser anterior a la fecha inicial")
	ErrInvalidHorizon         = errors.New("horizonte de proyección fuera de rango")
	ErrInsufficientStock      = errors.New("stock insuficiente")
	ErrAlreadyExecuted        = errors.New("la orden ya fue ejecutada o es inválida")
	ErrRouteDirectionMismatch = errors.New("el punto de stock no es el receptor de la ruta")
	ErrArgumentType           = errors.New("los días hasta la entrega deben ser un entero positivo o cero")
)
