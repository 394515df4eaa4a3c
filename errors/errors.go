// Package errors defines the closed vocabulary of domain error codes the API
// surfaces to clients. Usecases never leak raw infrastructure errors; they
// normalize everything to one of these.
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Actions used in error codes.
const (
	ActionGet    = "GET"
	ActionList   = "LIST"
	ActionCreate = "CREATE"
	ActionUpdate = "UPDATE"
	ActionDelete = "DELETE"
)

// Error is a string-coded domain error. Code is stable and client-visible;
// Err keeps the underlying cause for diagnostics only.
type Error struct {
	Code string
	Err  error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Code, e.Err)
	}
	return e.Code
}

func (e *Error) Unwrap() error { return e.Err }

// Is matches two domain errors by code, so sentinel comparisons with
// errors.Is work across wrapping.
func (e *Error) Is(target error) bool {
	var t *Error
	if errors.As(target, &t) {
		return e.Code == t.Code
	}
	return false
}

// Global errors outside the per-entity vocabulary.
var (
	ErrUnauthenticated    = &Error{Code: "UNAUTHENTICATED"}
	ErrInvalidCredentials = &Error{Code: "INVALID_CREDENTIALS"}
	ErrUserNotFound       = &Error{Code: "USER_NOT_FOUND"}
	ErrInvalidObjectID    = &Error{Code: "INVALID_OBJECT_ID"}
)

// Forbidden builds the `<ACTION>_<ENTITY>_FORBIDDEN` denial for a guarded
// operation. Denials are expected user behavior and are never logged.
func Forbidden(action, entity string) *Error {
	return &Error{Code: fmt.Sprintf("%s_%s_FORBIDDEN", action, entity)}
}

// Usecase builds the `<ACTION>_<ENTITY>_USECASE` failure wrapping an
// unexpected infrastructure error.
func Usecase(action, entity string, err error) *Error {
	return &Error{Code: fmt.Sprintf("%s_%s_USECASE", action, entity), Err: err}
}

// Invalid builds the `INVALID_<ENTITY>_DATA` rejection for a payload that
// failed domain validation.
func Invalid(entity string, err error) *Error {
	return &Error{Code: fmt.Sprintf("INVALID_%s_DATA", entity), Err: err}
}

// Code extracts the domain code from err, or empty when err is not a domain
// error.
func Code(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// IsForbidden reports whether err is an access denial.
func IsForbidden(err error) bool {
	var e *Error
	return errors.As(err, &e) && strings.HasSuffix(e.Code, "_FORBIDDEN")
}

// IsUsecase reports whether err is a normalized infrastructure failure.
func IsUsecase(err error) bool {
	var e *Error
	return errors.As(err, &e) && strings.HasSuffix(e.Code, "_USECASE")
}
