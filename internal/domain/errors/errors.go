package errors

import (
	"net/http"
	"strconv"

	"marketplace/internal/errors"
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
	if e.details != "" {
		return e.message + ": " + e.details
	}

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

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Is matches on error code so that WithDetails copies still compare equal to the predefined value.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)
	if !ok {
		return false
	}

	return e.errorCode == t.errorCode
}

// Predefined error types
var (
	// Buyer-related errors
	ErrBuyerNotFound = NewBaseError(
		http.StatusNotFound,
		"BUYER_NOT_FOUND",
		"Usuario no encontrado",
		"",
	)

	ErrEmailAlreadyRegistered = NewBaseError(
		http.StatusConflict,
		"EMAIL_ALREADY_REGISTERED",
		"El email ya está registrado",
		"",
	)

	ErrEmailNotRegistered = NewBaseError(
		http.StatusNotFound,
		"EMAIL_NOT_REGISTERED",
		"El email ingresado no se encuentra registrado",
		"",
	)

	ErrPasswordHashFailed = NewBaseError(
		http.StatusInternalServerError,
		"PASSWORD_HASH_FAILED",
		"No se ha podido cambiar la contraseña",
		"",
	)

	// Seller-related errors
	ErrSellerAlreadyExists = NewBaseError(
		http.StatusConflict,
		"SELLER_ALREADY_EXISTS",
		"Ya estás registrado como vendedor.",
		"",
	)

	ErrSellerNotFound = NewBaseError(
		http.StatusNotFound,
		"SELLER_NOT_FOUND",
		"Vendedor no encontrado",
		"",
	)

	// Publication-related errors
	ErrPublicationNotFound = NewBaseError(
		http.StatusNotFound,
		"PUBLICATION_NOT_FOUND",
		"Publicación no encontrada",
		"",
	)

	ErrOwnPublicationPurchase = NewBaseError(
		http.StatusBadRequest,
		"OWN_PUBLICATION_PURCHASE",
		"No puedes comprar tu propia publicación",
		"",
	)

	// Chat-related errors
	ErrChatNotFound = NewBaseError(
		http.StatusNotFound,
		"CHAT_NOT_FOUND",
		"Chat no encontrado",
		"",
	)

	ErrNotChatParticipant = NewBaseError(
		http.StatusForbidden,
		"NOT_CHAT_PARTICIPANT",
		"No participas en este chat",
		"",
	)

	// Notification-related errors
	ErrNotificationNotFound = NewBaseError(
		http.StatusNotFound,
		"NOTIFICATION_NOT_FOUND",
		"Notificación no encontrada",
		"",
	)

	// Token-related errors
	ErrTokenMissing = NewBaseError(
		http.StatusUnauthorized,
		"TOKEN_MISSING",
		"No posee autorización requerida",
		"",
	)

	ErrTokenInvalid = NewBaseError(
		http.StatusForbidden,
		"TOKEN_INVALID",
		"No posee permisos correctos",
		"",
	)

	// Validation-related errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Los datos ingresados no son válidos",
		"",
	)

	ErrImageRequired = NewBaseError(
		http.StatusBadRequest,
		"IMAGE_REQUIRED",
		"La imagen es obligatoria",
		"",
	)

	ErrImageInvalidType = NewBaseError(
		http.StatusBadRequest,
		"IMAGE_INVALID_TYPE",
		"Solo se permiten imágenes",
		"",
	)

	ErrImageTooLarge = NewBaseError(
		http.StatusBadRequest,
		"IMAGE_TOO_LARGE",
		"La imagen supera el tamaño máximo permitido",
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
		"Error interno del servidor",
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
		"Conflicto con un recurso existente",
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

// DataIntegrityError is raised when a related record that must exist is missing.
type DataIntegrityError struct {
	entity string
	id     uint
}

// NewDataIntegrityError reports that entity with id was expected but not found.
func NewDataIntegrityError(entity string, id uint) AppError {
	return &DataIntegrityError{entity: entity, id: id}
}

func (e *DataIntegrityError) Error() string {
	return "data integrity violation: " + e.Details()
}

func (e *DataIntegrityError) HTTPCode() int {
	return http.StatusInternalServerError
}

func (e *DataIntegrityError) ErrorCode() string {
	return "DATA_INTEGRITY"
}

func (e *DataIntegrityError) Message() string {
	return "Los datos relacionados son inconsistentes"
}

func (e *DataIntegrityError) Details() string {
	return e.entity + " " + strconv.FormatUint(uint64(e.id), 10) + " is missing"
}

// Entity returns the name of the missing entity.
func (e *DataIntegrityError) Entity() string {
	return e.entity
}

// UpstreamError wraps a failure of an external collaborator (media host, mail server).
type UpstreamError struct {
	err     error
	service string
	message string
}

// NewUpstreamError wraps err raised by service. message is shown to the client.
func NewUpstreamError(err error, service, message string) AppError {
	return &UpstreamError{err: err, service: service, message: message}
}

func (e *UpstreamError) Error() string {
	return errors.Wrapf(e.err, "%s failed", e.service).Error()
}

func (e *UpstreamError) Unwrap() error {
	return e.err
}

func (e *UpstreamError) HTTPCode() int {
	return http.StatusBadGateway
}

func (e *UpstreamError) ErrorCode() string {
	return "UPSTREAM_FAILED"
}

func (e *UpstreamError) Message() string {
	return e.message
}

func (e *UpstreamError) Details() string {
	return e.service
}
