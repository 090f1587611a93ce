// Package errors defines the application error contract exposed to the
// delivery layer, mapping domain failures onto HTTP semantics.
package errors

import (
	"net/http"

	"bikesafe/internal/errors"
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
	// Validation errors: the ingest is rejected, no state is mutated.
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Input validation failed",
		"",
	)

	ErrUnknownSensorKind = NewBaseError(
		http.StatusBadRequest,
		"UNKNOWN_SENSOR_KIND",
		"Unknown sensor kind",
		"",
	)

	ErrMissingReadingFields = NewBaseError(
		http.StatusBadRequest,
		"MISSING_READING_FIELDS",
		"Telemetry payload is missing the fields required for the sensor kind",
		"",
	)

	// Not-found errors: surfaced to the caller, no retry.
	ErrUserNotFound = NewBaseError(
		http.StatusNotFound,
		"USER_NOT_FOUND",
		"User not found",
		"",
	)

	ErrSensorNotFound = NewBaseError(
		http.StatusNotFound,
		"SENSOR_NOT_FOUND",
		"Sensor not found",
		"",
	)

	ErrSafeZoneNotFound = NewBaseError(
		http.StatusNotFound,
		"SAFE_ZONE_NOT_FOUND",
		"No safe zone configured for this user",
		"",
	)

	ErrHistoryNotFound = NewBaseError(
		http.StatusNotFound,
		"HISTORY_NOT_FOUND",
		"No sensor history found",
		"",
	)

	ErrDeviceNotFound = NewBaseError(
		http.StatusNotFound,
		"DEVICE_NOT_FOUND",
		"Device not found",
		"",
	)

	// Conflict/ownership errors.
	ErrSensorAlreadyExists = NewBaseError(
		http.StatusConflict,
		"SENSOR_ALREADY_EXISTS",
		"A sensor with this ID already exists",
		"",
	)

	ErrSensorOwnership = NewBaseError(
		http.StatusForbidden,
		"SENSOR_OWNERSHIP_VIOLATION",
		"Sensor is bound to another user",
		"",
	)

	// Storage errors: the ingest failed as a whole; the caller should retry.
	ErrStorageFailed = NewBaseError(
		http.StatusInternalServerError,
		"STORAGE_FAILED",
		"Persistence failed, the update was not applied",
		"",
	)

	// General errors.
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal server error",
		"",
	)

	ErrForbidden = NewBaseError(
		http.StatusForbidden,
		"FORBIDDEN",
		"Access denied",
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
	return "Database execution failed"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}
