package errors

import (
	"fmt"
	"net/http"

	"favorites/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
}

// Kind classifies a domain failure. The delivery layer maps kinds to status codes.
type Kind string

const (
	KindValidation       Kind = "VALIDATION"
	KindNotFound         Kind = "NOT_FOUND"
	KindAuthorization    Kind = "AUTHORIZATION"
	KindForbidden        Kind = "FORBIDDEN"
	KindConflict         Kind = "CONFLICT"
	KindIntegrity        Kind = "INTEGRITY"
	KindMethodNotAllowed Kind = "METHOD_NOT_ALLOWED"
	KindInternal         Kind = "INTERNAL"
)

// Reason narrows down a validation failure.
type Reason string

const (
	ReasonNone     Reason = ""
	ReasonFormat   Reason = "FORMAT"
	ReasonRange    Reason = "RANGE"
	ReasonLength   Reason = "LENGTH"
	ReasonEmpty    Reason = "EMPTY"
	ReasonRequired Reason = "REQUIRED"
)

var defaultStatus = map[Kind]int{
	KindValidation:       http.StatusBadRequest,
	KindNotFound:         http.StatusNotFound,
	KindAuthorization:    http.StatusForbidden,
	KindForbidden:        http.StatusForbidden,
	KindConflict:         http.StatusConflict,
	KindIntegrity:        http.StatusInternalServerError,
	KindMethodNotAllowed: http.StatusMethodNotAllowed,
	KindInternal:         http.StatusInternalServerError,
}

// DomainError is the error value produced by entities, repositories and use cases.
type DomainError struct {
	kind    Kind
	reason  Reason
	status  int
	message string
	cause   error
}

func newError(kind Kind, reason Reason, message string) *DomainError {
	return &DomainError{
		kind:    kind,
		reason:  reason,
		status:  defaultStatus[kind],
		message: message,
	}
}

// Error implements the error interface
func (e *DomainError) Error() string {
	if e.cause != nil {
		return e.message + ": " + e.cause.Error()
	}

	return e.message
}

// Unwrap exposes the underlying cause, if any.
func (e *DomainError) Unwrap() error {
	return e.cause
}

// Is matches any DomainError of the same kind and reason.
func (e *DomainError) Is(target error) bool {
	t, ok := target.(*DomainError)
	if !ok {
		return false
	}

	return t.kind == e.kind && (t.reason == ReasonNone || t.reason == e.reason)
}

// Kind returns the failure class.
func (e *DomainError) Kind() Kind {
	return e.kind
}

// Reason returns the validation reason, empty for other kinds.
func (e *DomainError) Reason() Reason {
	return e.reason
}

// HTTPCode returns the HTTP status code
func (e *DomainError) HTTPCode() int {
	return e.status
}

// ErrorCode returns the business error code
func (e *DomainError) ErrorCode() string {
	if e.reason != ReasonNone {
		return string(e.kind) + "_" + string(e.reason)
	}

	return string(e.kind)
}

// Message returns the client-facing message. Causes are never included.
func (e *DomainError) Message() string {
	return e.message
}

// WithStatus returns a copy reporting a different status code.
func (e *DomainError) WithStatus(status int) *DomainError {
	clone := *e
	clone.status = status

	return &clone
}

// WithCause returns a copy wrapping cause.
func (e *DomainError) WithCause(cause error) *DomainError {
	clone := *e
	clone.cause = cause

	return &clone
}

// Validation failures.

func InvalidFormat(format string, args ...any) *DomainError {
	return newError(KindValidation, ReasonFormat, fmt.Sprintf(format, args...))
}

func OutOfRange(format string, args ...any) *DomainError {
	return newError(KindValidation, ReasonRange, fmt.Sprintf(format, args...))
}

func TooLong(format string, args ...any) *DomainError {
	return newError(KindValidation, ReasonLength, fmt.Sprintf(format, args...))
}

func Empty(format string, args ...any) *DomainError {
	return newError(KindValidation, ReasonEmpty, fmt.Sprintf(format, args...))
}

// MissingField reports an absent required request field. It answers 405 like the rest of the API contract.
func MissingField(message string) *DomainError {
	return newError(KindValidation, ReasonRequired, message).WithStatus(http.StatusMethodNotAllowed)
}

func NotFound(message string) *DomainError {
	return newError(KindNotFound, ReasonNone, message)
}

func Unauthorized(message string) *DomainError {
	return newError(KindAuthorization, ReasonNone, message)
}

func Forbidden(message string) *DomainError {
	return newError(KindForbidden, ReasonNone, message)
}

func Conflict(message string) *DomainError {
	return newError(KindConflict, ReasonNone, message)
}

func Integrity(message string, cause error) *DomainError {
	return newError(KindIntegrity, ReasonNone, message).WithCause(cause)
}

func MethodNotAllowed(message string) *DomainError {
	return newError(KindMethodNotAllowed, ReasonNone, message)
}

// DatabaseExecute wraps a store failure that has no better classification.
func DatabaseExecute(cause error, details string) *DomainError {
	return newError(KindInternal, ReasonNone, "database execution failed").WithCause(errors.Wrap(cause, details))
}

// Sentinels for errors.Is checks on kind only.
var (
	ErrValidation       = newError(KindValidation, ReasonNone, "validation failed")
	ErrNotFound         = newError(KindNotFound, ReasonNone, "resource not found")
	ErrAuthorization    = newError(KindAuthorization, ReasonNone, "not signed in")
	ErrForbidden        = newError(KindForbidden, ReasonNone, "access denied")
	ErrConflict         = newError(KindConflict, ReasonNone, "resource conflict")
	ErrIntegrity        = newError(KindIntegrity, ReasonNone, "stored data failed validation")
	ErrMethodNotAllowed = newError(KindMethodNotAllowed, ReasonNone, "method not allowed")
	ErrInternal         = newError(KindInternal, ReasonNone, "internal server error")

	ErrInvalidFormat = newError(KindValidation, ReasonFormat, "invalid format")
	ErrOutOfRange    = newError(KindValidation, ReasonRange, "out of range")
	ErrTooLong       = newError(KindValidation, ReasonLength, "too long")
	ErrEmpty         = newError(KindValidation, ReasonEmpty, "empty")
	ErrMissingField  = newError(KindValidation, ReasonRequired, "missing field")
)

// KindOf returns the kind of the first DomainError in err's tree, or KindInternal.
func KindOf(err error) Kind {
	if de, ok := errors.AsType[*DomainError](err); ok {
		return de.kind
	}

	return KindInternal
}
