package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

// Error is an application error carrying the HTTP status it should render as.
type Error struct {
	Status  int    `json:"-"`
	Message string `json:"error"`
	Err     error  `json:"-"`
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

// Validation reports a client mistake (bad params, invalid reference).
func Validation(format string, args ...interface{}) *Error {
	return &Error{Status: http.StatusBadRequest, Message: fmt.Sprintf(format, args...)}
}

// NotFound reports a missing entity.
func NotFound(format string, args ...interface{}) *Error {
	return &Error{Status: http.StatusNotFound, Message: fmt.Sprintf(format, args...)}
}

// Internal wraps a database or storage failure. The message shown to clients
// stays generic; the wrapped cause is for server-side logs only.
func Internal(message string, err error) *Error {
	return &Error{Status: http.StatusInternalServerError, Message: message, Err: err}
}

// From extracts an *Error, mapping unknown errors to a generic 500.
func From(err error) *Error {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr
	}
	return &Error{Status: http.StatusInternalServerError, Message: "internal error", Err: err}
}

// Status returns the HTTP status for any error.
func Status(err error) int { return From(err).Status }
