package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound     = errors.New("recurso no encontrado")
	ErrUnauthorized = errors.New("no autorizado")
)

// FatalError falla de infraestructura no recuperable. Error() devuelve el mensaje
// fijo para el usuario; la causa solo se expone vía Unwrap para logs.
type FatalError struct {
	Message string
	Err     error
}

// NewFatalError envuelve la causa con el mensaje visible de la operación.
func NewFatalError(message string, cause error) *FatalError {
	return &FatalError{Message: message, Err: cause}
}

func (e *FatalError) Error() string { return e.Message }

func (e *FatalError) Unwrap() error { return e.Err }

// IsFatal indica si err (o alguno de sus envueltos) es un FatalError.
func IsFatal(err error) bool {
	var fe *FatalError
	return errors.As(err, &fe)
}
