package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas). Los fallos de la capa REST
// se envuelven en Failure y se comparan contra estos centinelas con errors.Is.
var (
	ErrValidation   = errors.New("entrada inválida")
	ErrRequest      = errors.New("fallo de red")
	ErrServer       = errors.New("error del servidor")
	ErrConflict     = errors.New("conflicto con el estado actual")
	ErrNotFound     = errors.New("recurso no encontrado")
	ErrUnauthorized = errors.New("no autorizado")
)

// FailureKind clase de fallo según la taxonomía de la capa de datos.
type FailureKind string

const (
	// FailureValidation verificación local de campos; nunca llega a la red.
	FailureValidation FailureKind = "validation"
	// FailureRequest error de transporte, sin respuesta del servidor.
	FailureRequest FailureKind = "request"
	// FailureServer respuesta no-2xx del servidor.
	FailureServer FailureKind = "server"
	// FailureConflict clave duplicada o restricción referencial en escritura.
	FailureConflict FailureKind = "conflict"
	// FailureNotFound mutación contra una clave inexistente.
	FailureNotFound FailureKind = "not_found"
	// FailureUnauthorized credencial ausente, vencida o rechazada.
	FailureUnauthorized FailureKind = "unauthorized"
)

// Failure fallo normalizado de la capa de datos: clase, mensaje legible y,
// cuando hubo respuesta HTTP, el status original. Nunca cruza esta frontera
// un error sin normalizar.
type Failure struct {
	Kind    FailureKind
	Status  int    // 0 si no hubo respuesta HTTP
	Message string // legible para el usuario
	Cause   error  // error subyacente, opcional
}

func (f *Failure) Error() string {
	if f.Status > 0 {
		return fmt.Sprintf("%s (HTTP %d): %s", f.Kind, f.Status, f.Message)
	}
	return fmt.Sprintf("%s: %s", f.Kind, f.Message)
}

// Unwrap expone la causa subyacente para errors.Is/As.
func (f *Failure) Unwrap() error { return f.Cause }

// Is hace que errors.Is(err, ErrNotFound) etc. funcione sobre la clase.
func (f *Failure) Is(target error) bool {
	switch target {
	case ErrValidation:
		return f.Kind == FailureValidation
	case ErrRequest:
		return f.Kind == FailureRequest
	case ErrServer:
		return f.Kind == FailureServer
	case ErrConflict:
		return f.Kind == FailureConflict
	case ErrNotFound:
		return f.Kind == FailureNotFound
	case ErrUnauthorized:
		return f.Kind == FailureUnauthorized
	}
	return false
}

// NewValidationFailure fallo local de formulario (campo requerido o tipo).
func NewValidationFailure(message string) *Failure {
	return &Failure{Kind: FailureValidation, Message: message}
}

// NewRequestFailure fallo de transporte sin respuesta.
func NewRequestFailure(message string, cause error) *Failure {
	return &Failure{Kind: FailureRequest, Message: message, Cause: cause}
}

// NewServerFailure fallo con respuesta no-2xx. El kind se deriva del status:
// 404 → not_found, 409 → conflict, 401/403 → unauthorized, resto → server.
func NewServerFailure(status int, message string) *Failure {
	kind := FailureServer
	switch status {
	case 404:
		kind = FailureNotFound
	case 409:
		kind = FailureConflict
	case 401, 403:
		kind = FailureUnauthorized
	}
	return &Failure{Kind: kind, Status: status, Message: message}
}

// AsFailure extrae el *Failure de un error, si lo hay.
func AsFailure(err error) (*Failure, bool) {
	var f *Failure
	if errors.As(err, &f) {
		return f, true
	}
	return nil, false
}

// UserMessage devuelve el mensaje legible de un error de esta capa, o el
// Error() genérico si no es un Failure.
func UserMessage(err error) string {
	if f, ok := AsFailure(err); ok && f.Message != "" {
		return f.Message
	}
	if err != nil {
		return err.Error()
	}
	return ""
}
