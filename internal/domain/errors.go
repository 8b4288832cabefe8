package domain

import "errors"

// Tipos de error de dominio (sin dependencias externas). El handler HTTP
// traduce cada tipo a su código de estado.
var (
	ErrInvalidInput = errors.New("invalid input")
	ErrUnauthorized = errors.New("not authorized")
	ErrNotFound     = errors.New("resource not found")
	ErrConflict     = errors.New("conflict with current state")
)

// Error es un fallo de dominio con código estable y mensaje fijo.
// errors.Is funciona tanto con el valor concreto como con su Kind.
type Error struct {
	Kind    error
	Code    string
	Message string
}

func (e *Error) Error() string { return e.Message }

// Unwrap expone el tipo para errors.Is(err, domain.ErrNotFound).
func (e *Error) Unwrap() error { return e.Kind }

func newError(kind error, code, message string) *Error {
	return &Error{Kind: kind, Code: code, Message: message}
}

// Invalid construye un error de validación con el mensaje del primer campo inválido.
func Invalid(message string) *Error {
	return newError(ErrInvalidInput, "VALIDATION", message)
}

// Errores concretos de inventario.
var (
	ErrStoreNotFound            = newError(ErrNotFound, "STORE_NOT_FOUND", "store not found")
	ErrProductNotFound          = newError(ErrNotFound, "PRODUCT_NOT_FOUND", "product not found")
	ErrEntranceNotFound         = newError(ErrNotFound, "ENTRANCE_NOT_FOUND", "entrance not found")
	ErrExitNotFound             = newError(ErrNotFound, "EXIT_NOT_FOUND", "exit not found")
	ErrDevolutionNotFound       = newError(ErrNotFound, "DEVOLUTION_NOT_FOUND", "devolution not found")
	ErrDefectiveProductNotFound = newError(ErrNotFound, "DEFECTIVE_PRODUCT_NOT_FOUND", "defective product not found")
	ErrInvalidEmail             = newError(ErrNotFound, "INVALID_EMAIL", "invalid email")

	ErrNotAuthorized   = newError(ErrUnauthorized, "NOT_AUTHORIZED", "not authorized to modify this resource")
	ErrInvalidPassword = newError(ErrUnauthorized, "INVALID_PASSWORD", "invalid password")
	ErrMissingToken    = newError(ErrUnauthorized, "MISSING_TOKEN", "authorization token required")
	ErrInvalidToken    = newError(ErrUnauthorized, "INVALID_TOKEN", "invalid or expired token")

	ErrProductNameExists = newError(ErrConflict, "PRODUCT_EXISTS", "a product with this name already exists")
	ErrStoreNameExists   = newError(ErrConflict, "STORE_NAME_EXISTS", "a store with this name already exists")
	ErrEmailExists       = newError(ErrConflict, "EMAIL_EXISTS", "email already registered")
	ErrNoStock           = newError(ErrConflict, "INSUFFICIENT_STOCK", "insufficient stock")
)
