package pbcerrors

import (
	"errors"
	"fmt"
)

// Code is a machine-readable error classification.
type Code string

const (
	CodeNotFound         Code = "NOT_FOUND"
	CodeAlreadyExists    Code = "ALREADY_EXISTS"
	CodeInvalidInput     Code = "INVALID_INPUT"
	CodeInvalidShortName Code = "INVALID_SHORT_NAME"
	CodeNoCurrentPlay    Code = "NO_CURRENT_PLAY"
	CodeUnauthorized     Code = "UNAUTHORIZED"
	CodeInternal         Code = "INTERNAL_ERROR"
)

// Sentinels for errors.Is checks. Any *Error with the same code matches.
var (
	ErrNotFound         = New(CodeNotFound, "item not found")
	ErrAlreadyExists    = New(CodeAlreadyExists, "item already exists")
	ErrInvalidInput     = New(CodeInvalidInput, "invalid input")
	ErrInvalidShortName = New(CodeInvalidShortName, "invalid short name: must be exactly 4 characters")
	ErrNoCurrentPlay    = New(CodeNoCurrentPlay, "no current play to save")
	ErrUnauthorized     = New(CodeUnauthorized, "not authorized")
)

// Error is the domain error type carried through every package.
type Error struct {
	Code     Code              // Machine-readable error code
	Message  string            // Human readable message
	Metadata map[string]string // Extra context, e.g. the offending name
	Cause    error             // Wrapped underlying error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

// Unwrap returns the underlying cause for error chain traversal.
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error by code.
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Code == t.Code
	}
	return false
}

// New creates a simple domain error with a code and message.
func New(code Code, message string) *Error {
	return &Error{
		Code:    code,
		Message: message,
	}
}

// Wrap creates a domain error that wraps an underlying cause.
func Wrap(code Code, message string, cause error) *Error {
	return &Error{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// NotFound builds a NOT_FOUND error for an entity kind and name, e.g.
// NotFound("Formation", "Spread Right").
func NotFound(kind, name string) *Error {
	return &Error{
		Code:     CodeNotFound,
		Message:  fmt.Sprintf("%s '%s' not found", kind, name),
		Metadata: map[string]string{"kind": kind, "name": name},
	}
}

// InvalidInput builds an INVALID_INPUT error with a formatted message.
func InvalidInput(format string, args ...any) *Error {
	return New(CodeInvalidInput, fmt.Sprintf(format, args...))
}

// CodeOf returns the code of the first *Error in err's chain, or
// CodeInternal when there is none.
func CodeOf(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return CodeInternal
}
