package errors

import (
	"net/http"

	"github.com/pkg/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// Is matches any BaseError carrying the same business code, so variants
// produced by WithDetails still satisfy errors.Is against the predefined value.
func (e *BaseError) Is(target error) bool {
	other, ok := target.(*BaseError)
	if !ok {
		return false
	}

	return other.errorCode == e.errorCode
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error types
var (
	// Authentication-related errors
	ErrInvalidCredentials = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_CREDENTIALS",
		"Usuario o contraseña incorrectos",
		"",
	)

	ErrUserNotConfirmed = NewBaseError(
		http.StatusForbidden,
		"USER_NOT_CONFIRMED",
		"La cuenta aún no ha sido confirmada",
		"",
	)

	ErrUserAlreadyExists = NewBaseError(
		http.StatusConflict,
		"USER_ALREADY_EXISTS",
		"Ya existe una cuenta con este usuario",
		"",
	)

	ErrInvalidConfirmationCode = NewBaseError(
		http.StatusBadRequest,
		"INVALID_CONFIRMATION_CODE",
		"Código de confirmación inválido o expirado",
		"",
	)

	ErrPasswordPolicy = NewBaseError(
		http.StatusBadRequest,
		"PASSWORD_POLICY",
		"La contraseña no cumple la política de seguridad",
		"",
	)

	ErrNewPasswordRequired = NewBaseError(
		http.StatusConflict,
		"NEW_PASSWORD_REQUIRED",
		"Debe establecer una nueva contraseña",
		"",
	)

	ErrNoPendingChallenge = NewBaseError(
		http.StatusBadRequest,
		"NO_PENDING_CHALLENGE",
		"No hay un cambio de contraseña pendiente",
		"",
	)

	ErrRateLimited = NewBaseError(
		http.StatusTooManyRequests,
		"RATE_LIMITED",
		"Demasiados intentos, inténtelo más tarde",
		"",
	)

	ErrUnauthenticated = NewBaseError(
		http.StatusUnauthorized,
		"UNAUTHENTICATED",
		"Debe iniciar sesión",
		"",
	)

	ErrInvalidIdentifier = NewBaseError(
		http.StatusBadRequest,
		"INVALID_IDENTIFIER",
		"Correo o teléfono inválido",
		"",
	)

	ErrIdentityProvider = NewBaseError(
		http.StatusBadGateway,
		"IDENTITY_PROVIDER_ERROR",
		"Error del servicio de autenticación",
		"",
	)

	ErrRegistrationNotFound = NewBaseError(
		http.StatusNotFound,
		"REGISTRATION_NOT_FOUND",
		"No se encontraron datos de registro pendientes",
		"",
	)

	// Profile-related errors
	ErrNoProfileLoaded = NewBaseError(
		http.StatusPreconditionFailed,
		"NO_PROFILE_LOADED",
		"No hay perfil para actualizar",
		"",
	)

	ErrProfileLoadFailed = NewBaseError(
		http.StatusInternalServerError,
		"PROFILE_LOAD_FAILED",
		"Error al cargar perfil",
		"",
	)

	ErrProfileCreateFailed = NewBaseError(
		http.StatusInternalServerError,
		"PROFILE_CREATE_FAILED",
		"Error al crear perfil",
		"",
	)

	ErrProfileUpdateFailed = NewBaseError(
		http.StatusInternalServerError,
		"PROFILE_UPDATE_FAILED",
		"Error al actualizar perfil",
		"",
	)

	ErrProfileNotFound = NewBaseError(
		http.StatusNotFound,
		"PROFILE_NOT_FOUND",
		"No se encontró el perfil",
		"",
	)

	// Catalog and order errors
	ErrProductNotFound = NewBaseError(
		http.StatusNotFound,
		"PRODUCT_NOT_FOUND",
		"No se encontró el producto",
		"",
	)

	ErrOrderNotFound = NewBaseError(
		http.StatusNotFound,
		"ORDER_NOT_FOUND",
		"No se encontró el pedido",
		"",
	)

	ErrCartNotFound = NewBaseError(
		http.StatusNotFound,
		"CART_NOT_FOUND",
		"No hay un carrito activo",
		"",
	)

	ErrWishlistDuplicate = NewBaseError(
		http.StatusConflict,
		"WISHLIST_DUPLICATE",
		"El producto ya está en la lista de deseos",
		"",
	)

	ErrNoPaymentLink = NewBaseError(
		http.StatusNotFound,
		"NO_PAYMENT_LINK",
		"El pedido no tiene enlace de pago",
		"",
	)

	ErrObjectNotFound = NewBaseError(
		http.StatusNotFound,
		"OBJECT_NOT_FOUND",
		"No se encontró el archivo",
		"",
	)

	// Validation-related errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Datos de entrada inválidos",
		"",
	)

	// Transaction-related errors
	ErrTransactionFailed = NewBaseError(
		http.StatusInternalServerError,
		"TRANSACTION_FAILED",
		"Falló la transacción de base de datos",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Error interno del sistema",
		"",
	)

	ErrForbidden = NewBaseError(
		http.StatusForbidden,
		"FORBIDDEN",
		"Acceso denegado",
		"",
	)

	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"Recurso no encontrado",
		"",
	)

	ErrConflict = NewBaseError(
		http.StatusConflict,
		"CONFLICT",
		"Conflicto de recursos",
		"",
	)
)

// DatabaseExecuteError represents a database execution error, implementing the AppError interface
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

// Unwrap exposes the driver error
func (e *DatabaseExecuteError) Unwrap() error {
	return e.err
}

// HTTPCode returns the HTTP status code
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

// Message returns the user-friendly error message
func (e *DatabaseExecuteError) Message() string {
	return "Error al ejecutar la operación en la base de datos"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}
