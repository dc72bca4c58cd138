package errors

import (
	"errors"
	"fmt"
)

// Kind classifies an AppError by how the command stream reports it
type Kind string

const (
	// KindRoutine errors are expected outcomes of a command sequence and are
	// reported as a result line carrying the error code.
	KindRoutine Kind = "routine"
	// KindDuplicate is raised when an entity ID is already registered.
	KindDuplicate Kind = "duplicate"
	// KindNotFound is raised when an entity ID is unknown.
	KindNotFound Kind = "not_found"
	// KindValidation is raised when an input precondition does not hold.
	KindValidation Kind = "validation"
	// KindInternal covers everything else.
	KindInternal Kind = "internal"
)

// Result codes printed for routine failures
const (
	CodeInvalidRide      = "INVALID_RIDE"
	CodeRideNotCompleted = "RIDE_NOT_COMPLETED"
	CodeInvalidRider     = "INVALID_RIDER"
)

// AppError represents an application error with a stable code
type AppError struct {
	Code    string
	Message string
	Kind    Kind
	Err     error
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the wrapped error
func (e *AppError) Unwrap() error {
	return e.Err
}

// Routine reports whether the error is a routine command outcome
func (e *AppError) Routine() bool {
	return e.Kind == KindRoutine
}

// NewAppError creates a new AppError
func NewAppError(code, message string, kind Kind, err error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Kind:    kind,
		Err:     err,
	}
}

// Common error constructors

// Routine creates an error that is reported as the given result code
func Routine(code, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Kind: KindRoutine, Err: err}
}

// Duplicate creates a duplicate-entity error
func Duplicate(message string, err error) *AppError {
	return &AppError{Code: "DUPLICATE_ENTITY", Message: message, Kind: KindDuplicate, Err: err}
}

// NotFound creates a not-found error
func NotFound(message string, err error) *AppError {
	return &AppError{Code: "NOT_FOUND", Message: message, Kind: KindNotFound, Err: err}
}

// Validation creates a validation error
func Validation(message string, err error) *AppError {
	return &AppError{Code: "VALIDATION_FAILED", Message: message, Kind: KindValidation, Err: err}
}

// Internal creates an internal error
func Internal(message string, err error) *AppError {
	return &AppError{Code: "INTERNAL_ERROR", Message: message, Kind: KindInternal, Err: err}
}

// IsAppError checks if an error is an AppError
func IsAppError(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr)
}

// GetAppError attempts to convert an error to AppError
func GetAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return Internal("An unexpected error occurred", err)
}

// IsKind reports whether err is an AppError of the given kind
func IsKind(err error, kind Kind) bool {
	var appErr *AppError
	return errors.As(err, &appErr) && appErr.Kind == kind
}

// Wrap wraps an error with additional context
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}
