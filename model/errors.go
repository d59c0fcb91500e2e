package model

import "fmt"

// ErrorCode is a machine-readable error category.
type ErrorCode string

const (
	CodeTypeNotFound      ErrorCode = "type_not_found"
	CodeWrongKind         ErrorCode = "wrong_kind"
	CodeMalformedInherits ErrorCode = "malformed_inherits"
	CodeDecode            ErrorCode = "decode"
)

// Sentinels for use with errors.Is. An *Error matches a sentinel with the
// same Code.
var (
	ErrTypeNotFound      = &Error{Code: CodeTypeNotFound}
	ErrWrongKind         = &Error{Code: CodeWrongKind}
	ErrMalformedInherits = &Error{Code: CodeMalformedInherits}
	ErrDecode            = &Error{Code: CodeDecode}
)

// Error is a model lookup, transform or decoding failure.
type Error struct {
	Code    ErrorCode
	Message string

	// Type is the type name the error is about, if any.
	Type TypeName
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Is reports whether target is an *Error with the same code.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Code == e.Code
}

// Errorf creates a new model error with a formatted message.
func Errorf(code ErrorCode, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

// WithType returns a copy of e that records the type name it is about.
func (e *Error) WithType(name TypeName) *Error {
	return &Error{Code: e.Code, Message: e.Message, Type: name}
}
