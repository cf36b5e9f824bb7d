// Package errs defines the error shape returned to API clients.
//
// Every failure a handler reports is converted into an *HTTPError so that
// clients always receive the same JSON envelope and internal error text
// never leaves the process.
package errs

import (
	"net/http"
	"strings"
)

// FieldError describes a single invalid or missing request field.
type FieldError struct {
	// Field is the JSON name of the offending field.
	Field string `json:"field"`
	// Error is the human-readable problem with the field.
	Error string `json:"error"`
}

// HTTPError is the error envelope written to clients.
type HTTPError struct {
	Code    string       `json:"code"`
	Message string       `json:"message"`
	Status  int          `json:"status"`
	Errors  []FieldError `json:"errors,omitempty"`
}

// Error returns the client-facing message.
func (e *HTTPError) Error() string {
	return e.Message
}

// Is reports whether target is also an *HTTPError.
func (e *HTTPError) Is(target error) bool {
	_, ok := target.(*HTTPError)
	return ok
}

// MakeUpperCaseWithUnderscores turns "Bad Request" into "BAD_REQUEST".
func MakeUpperCaseWithUnderscores(str string) string {
	return strings.ToUpper(strings.ReplaceAll(str, " ", "_"))
}

func newHTTPError(status int, message string) *HTTPError {
	return &HTTPError{
		Code:    MakeUpperCaseWithUnderscores(http.StatusText(status)),
		Message: message,
		Status:  status,
	}
}

// NewBadRequestError creates a 400 error, optionally carrying field errors.
func NewBadRequestError(message string, fields []FieldError) *HTTPError {
	e := newHTTPError(http.StatusBadRequest, message)
	e.Errors = fields
	return e
}

// NewNotFoundError creates a 404 error.
func NewNotFoundError(message string) *HTTPError {
	return newHTTPError(http.StatusNotFound, message)
}

// NewConflictError creates a 409 error.
func NewConflictError(message string) *HTTPError {
	return newHTTPError(http.StatusConflict, message)
}

// NewInternalServerError creates a 500 error with the generic status text.
func NewInternalServerError() *HTTPError {
	return newHTTPError(http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError))
}
