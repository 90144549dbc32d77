// Package apperr defines the {code, message} error pairs business operations
// fail with. Codes match the HTTP status the controller layer responds with,
// but only controllers translate them into transport responses.
package apperr

import (
	"errors"
	"fmt"
)

const (
	CodeValidation     = 422
	CodeNotFound       = 404
	CodeAuthentication = 401
	CodeAuthorization  = 403
	CodeStorage        = 500
)

// Error is a tagged business error.
type Error struct {
	Code    int
	Message string
	cause   error
}

func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%d %s: %v", e.Code, e.Message, e.cause)
	}
	return fmt.Sprintf("%d %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error { return e.cause }

// Validation reports malformed or incomplete input.
func Validation(msg string) *Error {
	return &Error{Code: CodeValidation, Message: msg}
}

// Required reports a missing required field, preserving the
// "<Field> are required" message surface of the original service.
func Required(field string) *Error {
	return Validation(field + " are required")
}

// NotFound reports a referenced entity that does not exist.
func NotFound(msg string) *Error {
	return &Error{Code: CodeNotFound, Message: msg}
}

// Authentication reports a credential mismatch.
func Authentication(msg string) *Error {
	return &Error{Code: CodeAuthentication, Message: msg}
}

// Authorization reports a missing or invalid token.
func Authorization(msg string) *Error {
	return &Error{Code: CodeAuthorization, Message: msg}
}

// Storage wraps a persistence failure.
func Storage(err error) *Error {
	return &Error{Code: CodeStorage, Message: "storage failure", cause: err}
}

// StorageInvalid wraps a persistence failure the driver classified as
// invalid data; it carries the validation code instead of a server error.
func StorageInvalid(err error) *Error {
	return &Error{Code: CodeValidation, Message: "invalid data", cause: err}
}

// CodeOf extracts the code from err, defaulting to a server error.
func CodeOf(err error) int {
	var ae *Error
	if errors.As(err, &ae) {
		return ae.Code
	}
	return CodeStorage
}
