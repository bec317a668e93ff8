// Package errors defines the application error taxonomy shared by the
// service, data, and HTTP layers.
package errors

import (
	"errors"
	"fmt"
)

// ErrorCode represents a category of application error.
type ErrorCode string

const (
	// ErrCodeValidation indicates malformed input. Never retried.
	ErrCodeValidation ErrorCode = "validation"
	// ErrCodePrecondition indicates an action attempted from a state that
	// forbids it (e.g. cancelling an in-progress job).
	ErrCodePrecondition ErrorCode = "precondition"
	// ErrCodeConflict indicates two operations raced for the same exclusive
	// resource. The caller must refetch before retrying.
	ErrCodeConflict ErrorCode = "conflict"
	// ErrCodePaymentRequired indicates completion was attempted with an
	// outstanding balance. The caller's next action is to pay, not to wait.
	ErrCodePaymentRequired ErrorCode = "payment_required"
	// ErrCodeForbidden indicates the acting party is not allowed to perform
	// the operation on this resource.
	ErrCodeForbidden ErrorCode = "forbidden"
	// ErrCodeNotFound indicates the referenced resource does not exist or is
	// not visible to the caller.
	ErrCodeNotFound ErrorCode = "not_found"
	// ErrCodeForeignKey indicates a foreign key constraint violation.
	ErrCodeForeignKey ErrorCode = "foreign_key"
	// ErrCodeUpstream indicates a failure in an external collaborator
	// (geo directory, payment provider).
	ErrCodeUpstream ErrorCode = "upstream"
	// ErrCodeInternal indicates an internal error.
	ErrCodeInternal ErrorCode = "internal"
	// ErrCodeTimeout indicates a timeout occurred.
	ErrCodeTimeout ErrorCode = "timeout"
	// ErrCodeCanceled indicates the operation was canceled.
	ErrCodeCanceled ErrorCode = "canceled"
)

// AppError is a structured application error with a code, message, and
// optional cause. It supports errors.Is and errors.As through Unwrap.
type AppError struct {
	// Code categorizes the error type
	Code ErrorCode
	// Message is a human-readable error message
	Message string
	// Cause is the underlying error (optional)
	Cause error
	// Field names the offending field for validation errors (optional)
	Field string
	// State carries the current resource state for precondition errors
	// (optional), so callers can see what forbade the action.
	State string
}

// Error implements the error interface.
func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

// Unwrap returns the underlying cause.
func (e *AppError) Unwrap() error {
	return e.Cause
}

// Validation creates a new Validation error.
func Validation(message string) *AppError {
	return &AppError{Code: ErrCodeValidation, Message: message}
}

// Validationf creates a new Validation error with a formatted message.
func Validationf(format string, args ...any) *AppError {
	return &AppError{Code: ErrCodeValidation, Message: fmt.Sprintf(format, args...)}
}

// ValidationField creates a new Validation error for a specific field.
func ValidationField(field, message string) *AppError {
	return &AppError{Code: ErrCodeValidation, Message: message, Field: field}
}

// Precondition creates a new Precondition error carrying the current state.
func Precondition(message, state string) *AppError {
	return &AppError{Code: ErrCodePrecondition, Message: message, State: state}
}

// Preconditionf creates a new Precondition error with a formatted message.
func Preconditionf(format string, args ...any) *AppError {
	return &AppError{Code: ErrCodePrecondition, Message: fmt.Sprintf(format, args...)}
}

// Conflict creates a new Conflict error.
func Conflict(message string) *AppError {
	return &AppError{Code: ErrCodeConflict, Message: message}
}

// PaymentRequired creates a new PaymentRequired error.
func PaymentRequired(message string) *AppError {
	return &AppError{Code: ErrCodePaymentRequired, Message: message}
}

// Forbidden creates a new Forbidden error.
func Forbidden(message string) *AppError {
	return &AppError{Code: ErrCodeForbidden, Message: message}
}

// NotFound creates a new NotFound error.
func NotFound(message string) *AppError {
	return &AppError{Code: ErrCodeNotFound, Message: message}
}

// NotFoundf creates a new NotFound error with a formatted message.
func NotFoundf(format string, args ...any) *AppError {
	return &AppError{Code: ErrCodeNotFound, Message: fmt.Sprintf(format, args...)}
}

// Upstream wraps an external-collaborator failure.
func Upstream(err error, message string) *AppError {
	return &AppError{Code: ErrCodeUpstream, Message: message, Cause: err}
}

// Internal creates a new Internal error.
func Internal(message string) *AppError {
	return &AppError{Code: ErrCodeInternal, Message: message}
}

// Wrap wraps an existing error with an AppError, preserving the cause.
func Wrap(err error, code ErrorCode, message string) *AppError {
	if err == nil {
		return nil
	}
	return &AppError{Code: code, Message: message, Cause: err}
}

// Wrapf wraps an existing error with an AppError and a formatted message.
func Wrapf(err error, code ErrorCode, format string, args ...any) *AppError {
	if err == nil {
		return nil
	}
	return &AppError{Code: code, Message: fmt.Sprintf(format, args...), Cause: err}
}

// isCode checks if an error carries a specific error code.
func isCode(err error, code ErrorCode) bool {
	var appErr *AppError
	return errors.As(err, &appErr) && appErr.Code == code
}

// IsValidation checks if an error is a Validation error.
func IsValidation(err error) bool { return isCode(err, ErrCodeValidation) }

// IsPrecondition checks if an error is a Precondition error.
func IsPrecondition(err error) bool { return isCode(err, ErrCodePrecondition) }

// IsConflict checks if an error is a Conflict error.
func IsConflict(err error) bool { return isCode(err, ErrCodeConflict) }

// IsPaymentRequired checks if an error is a PaymentRequired error.
func IsPaymentRequired(err error) bool { return isCode(err, ErrCodePaymentRequired) }

// IsForbidden checks if an error is a Forbidden error.
func IsForbidden(err error) bool { return isCode(err, ErrCodeForbidden) }

// IsNotFound checks if an error is a NotFound error.
func IsNotFound(err error) bool { return isCode(err, ErrCodeNotFound) }

// IsForeignKey checks if an error is a ForeignKey error.
func IsForeignKey(err error) bool { return isCode(err, ErrCodeForeignKey) }

// IsUpstream checks if an error is an Upstream error.
func IsUpstream(err error) bool { return isCode(err, ErrCodeUpstream) }

// IsInternal checks if an error is an Internal error.
func IsInternal(err error) bool { return isCode(err, ErrCodeInternal) }

// GetCode returns the ErrorCode from an error, or empty string if the error
// is not an AppError.
func GetCode(err error) ErrorCode {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code
	}
	return ""
}

// GetField returns the Field from an error, or empty string.
func GetField(err error) string {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Field
	}
	return ""
}
