// Package httpx defines the API error taxonomy and the response helper
// shared by all controllers. Every failure leaving a controller goes through
// Respond so the status mapping lives in exactly one place.
package httpx

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Error is a transport-mapped API error. Status selects the HTTP status
// code, Message is safe for callers, ValidValues optionally lists accepted
// enum values on validation failures, and Detail carries the underlying
// cause when the taxonomy allows exposing it.
type Error struct {
	Status      int      `json:"-"`
	Message     string   `json:"error"`
	ValidValues []string `json:"validValues,omitempty"`
	Detail      string   `json:"detail,omitempty"`
	cause       error
}

func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.cause)
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.cause }

// Validation builds a 400 error with a human message.
func Validation(msg string) *Error {
	return &Error{Status: http.StatusBadRequest, Message: msg}
}

// Validationf builds a 400 error from a format string.
func Validationf(format string, args ...any) *Error {
	return Validation(fmt.Sprintf(format, args...))
}

// ValidationValues builds a 400 error carrying the set of accepted values.
func ValidationValues(msg string, values []string) *Error {
	e := Validation(msg)
	e.ValidValues = values
	return e
}

// Unauthorized builds a 401 error: missing, malformed or expired credentials.
func Unauthorized(msg string) *Error {
	return &Error{Status: http.StatusUnauthorized, Message: msg}
}

// Forbidden builds a 403 error: authenticated but not permitted.
func Forbidden(msg string) *Error {
	return &Error{Status: http.StatusForbidden, Message: msg}
}

// NotFound builds a 404 error for a missing entity.
func NotFound(msg string) *Error {
	return &Error{Status: http.StatusNotFound, Message: msg}
}

// Upstream builds a 502 error for a failed external collaborator. The body
// stays a generic "service unavailable"; the cause is kept for logs only.
func Upstream(cause error) *Error {
	return &Error{Status: http.StatusBadGateway, Message: "service unavailable", cause: cause}
}

// Internal builds a 500 error. The cause message is attached to the body for
// diagnostics; never pass errors whose text contains credentials.
func Internal(cause error) *Error {
	e := &Error{Status: http.StatusInternalServerError, Message: "internal server error", cause: cause}
	if cause != nil {
		e.Detail = cause.Error()
	}
	return e
}

// Respond writes err to the response. Values outside the taxonomy are
// treated as internal faults.
func Respond(c *gin.Context, err error) {
	var apiErr *Error
	if !errors.As(err, &apiErr) {
		apiErr = Internal(err)
	}
	c.JSON(apiErr.Status, apiErr)
}
