// Package apperror defines the typed failure taxonomy surfaced by the
// usecase layer. Every error carries a machine-readable code the HTTP
// collaborator maps onto a status, plus a human-readable message.
package apperror

import (
	"errors"
	"fmt"
	"net/http"
)

// Error codes. All are terminal for the current request; nothing is retried
// internally.
const (
	EInvalidIdentifier = "invalid_identifier"
	EInvalidContent    = "invalid_content"
	ENotFound          = "not_found"
	EForbidden         = "forbidden"
	EOwnerMissing      = "owner_missing"
	EUnauthorized      = "unauthorized"
	EInternal          = "internal"
)

// Error is an application error with a code and a message safe to show to
// the caller. Err, when set, wraps the underlying store failure.
type Error struct {
	Code    string
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Errorf builds an Error with a formatted message.
func Errorf(code, format string, args ...interface{}) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// Wrap marks an underlying failure (usually a store error) as an internal
// application error without losing the cause.
func Wrap(err error, format string, args ...interface{}) *Error {
	return &Error{
		Code:    EInternal,
		Message: fmt.Sprintf(format, args...),
		Err:     err,
	}
}

// ErrorCode extracts the code from err. Unknown errors report EInternal.
func ErrorCode(err error) string {
	var e *Error
	if err == nil {
		return ""
	}
	if errors.As(err, &e) {
		return e.Code
	}
	return EInternal
}

// ErrorMessage extracts the caller-safe message from err. Unknown errors get
// a generic message so store internals never leak to the caller.
func ErrorMessage(err error) string {
	var e *Error
	if err == nil {
		return ""
	}
	if errors.As(err, &e) {
		return e.Message
	}
	return "An internal error has occurred."
}

// HTTPStatus maps an error code onto the HTTP status the routing layer
// responds with.
func HTTPStatus(code string) int {
	switch code {
	case EInvalidIdentifier, EInvalidContent:
		return http.StatusBadRequest
	case EForbidden, EOwnerMissing:
		return http.StatusForbidden
	case EUnauthorized:
		return http.StatusUnauthorized
	case ENotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
