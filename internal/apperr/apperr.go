// Package apperr defines the domain error taxonomy. Every constructor logs
// the error's module, status and code at the point of construction — this is
// the single audit trail for security-relevant failures (failed logins,
// forbidden attempts), so rejection paths must go through these constructors
// rather than raw errors. Payload data must never contain passwords or
// token values.
package apperr

import (
	"errors"
	"net/http"

	"github.com/rs/zerolog/log"
)

// Code identifies an error kind on the wire.
type Code string

const (
	CodeValidation   Code = "VALIDATION_ERROR"
	CodeNotFound     Code = "NOT_FOUND"
	CodeConflict     Code = "CONFLICT"
	CodeUnauthorized Code = "UNAUTHORIZED"
	CodeForbidden    Code = "FORBIDDEN"
	CodeInternal     Code = "INTERNAL_ERROR"
)

// Error is a structured domain error carrying an HTTP status, a stable
// error code and optional payload data exposed to the client.
type Error struct {
	Status  int               `json:"-"`
	Code    Code              `json:"code"`
	Message string            `json:"message"`
	Module  string            `json:"-"`
	Data    any               `json:"data,omitempty"`
	Fields  map[string]string `json:"fields,omitempty"`
}

func (e *Error) Error() string {
	return e.Message
}

// As unwraps err into *Error if it is one.
func As(err error) (*Error, bool) {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

func newError(status int, code Code, message, module string, data any, fields map[string]string) *Error {
	e := &Error{
		Status:  status,
		Code:    code,
		Message: message,
		Module:  module,
		Data:    data,
		Fields:  fields,
	}
	log.Error().
		Str("module", module).
		Int("status", status).
		Str("code", string(code)).
		Interface("data", data).
		Msg(message)
	return e
}

// Validation builds a 400 error for malformed or missing input.
func Validation(message, module string) *Error {
	return newError(http.StatusBadRequest, CodeValidation, message, module, nil, nil)
}

// ValidationFields builds a 400 error carrying field-level problems.
func ValidationFields(message, module string, fields map[string]string) *Error {
	return newError(http.StatusBadRequest, CodeValidation, message, module, nil, fields)
}

// NotFound builds a 404 error.
func NotFound(message, module string) *Error {
	return newError(http.StatusNotFound, CodeNotFound, message, module, nil, nil)
}

// Conflict builds a 409 error. Data lets the client disambiguate the
// conflicting resource (e.g. the existing account's id and email).
func Conflict(message, module string, data any) *Error {
	return newError(http.StatusConflict, CodeConflict, message, module, data, nil)
}

// Unauthorized builds a 401 error. The message is deliberately generic —
// callers must not reveal why verification failed.
func Unauthorized(module string) *Error {
	return newError(http.StatusUnauthorized, CodeUnauthorized, "Unauthorized", module, nil, nil)
}

// Forbidden builds a 403 error for authenticated callers lacking the
// required role or ownership.
func Forbidden(module string) *Error {
	return newError(http.StatusForbidden, CodeForbidden, "Forbidden", module, nil, nil)
}

// Internal builds a 500 error. The underlying cause is logged but never
// surfaced to the client.
func Internal(module string, cause error) *Error {
	log.Error().Str("module", module).Err(cause).Msg("internal error")
	return &Error{
		Status:  http.StatusInternalServerError,
		Code:    CodeInternal,
		Message: "Internal server error",
		Module:  module,
	}
}
