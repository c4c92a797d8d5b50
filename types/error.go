package types

import (
	"errors"
	"fmt"
)

// ErrorCode classifies evaluation failures
type ErrorCode int

const (
	E_NONE    ErrorCode = 0
	E_TYPE    ErrorCode = 1 // coercion requested on the wrong variant
	E_NAME    ErrorCode = 2 // unknown identifier, keyword, function or variable
	E_INVALID ErrorCode = 3 // invalid operand or malformed node
)

// String returns the code name
func (e ErrorCode) String() string {
	switch e {
	case E_NONE:
		return "E_NONE"
	case E_TYPE:
		return "E_TYPE"
	case E_NAME:
		return "E_NAME"
	case E_INVALID:
		return "E_INVALID"
	default:
		return "E_UNKNOWN"
	}
}

// Message returns a human-readable message for an error code
func (e ErrorCode) Message() string {
	switch e {
	case E_NONE:
		return "No error"
	case E_TYPE:
		return "Type mismatch"
	case E_NAME:
		return "Unknown name"
	case E_INVALID:
		return "Invalid operation"
	default:
		return "Unknown error"
	}
}

// Error lets a bare code be used as a sentinel with errors.Is
func (e ErrorCode) Error() string {
	return e.Message()
}

// ErrorFromString converts a string like "E_TYPE" to an ErrorCode
func ErrorFromString(s string) (ErrorCode, bool) {
	switch s {
	case "E_NONE":
		return E_NONE, true
	case "E_TYPE":
		return E_TYPE, true
	case "E_NAME":
		return E_NAME, true
	case "E_INVALID":
		return E_INVALID, true
	default:
		return E_NONE, false
	}
}

// Error is a failure raised at the point of detection
type Error struct {
	Code ErrorCode
	Msg  string
}

// NewError creates an Error
func NewError(code ErrorCode, msg string) *Error {
	return &Error{Code: code, Msg: msg}
}

// Errorf creates an Error with a formatted message
func Errorf(code ErrorCode, format string, args ...interface{}) *Error {
	return &Error{Code: code, Msg: fmt.Sprintf(format, args...)}
}

func (e *Error) Error() string {
	if e.Msg == "" {
		return e.Code.Message()
	}
	return e.Msg
}

// Is matches a bare ErrorCode target
func (e *Error) Is(target error) bool {
	code, ok := target.(ErrorCode)
	return ok && code == e.Code
}

// ExprError carries the source text of the top-level expression whose
// evaluation failed. Err is the underlying failure.
type ExprError struct {
	Source string
	Err    error
}

func (e *ExprError) Error() string {
	return fmt.Sprintf("Error while evaluating expression '%s': %s", e.Source, e.Err)
}

func (e *ExprError) Unwrap() error {
	return e.Err
}

// CodeOf extracts the ErrorCode from err, or E_NONE if err carries none
func CodeOf(err error) ErrorCode {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	var code ErrorCode
	if errors.As(err, &code) {
		return code
	}
	return E_NONE
}
