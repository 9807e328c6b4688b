package apperr

import "errors"

// Code identifies one of the error kinds exposed on the wire.
type Code string

const (
	CodeInvalidRequest       Code = "invalid_request"
	CodeInvalidSignature     Code = "invalid_signature"
	CodeInvalidPayloadFormat Code = "invalid_payload_format"
	CodeDatabaseError        Code = "database_error"
)

// Error is a structured, non-fatal failure surfaced to the caller.
// Expired or stale tokens are not errors; they come back as negative
// verification results instead.
type Error struct {
	Code    Code
	Message string
}

func (e *Error) Error() string {
	return string(e.Code) + ": " + e.Message
}

func New(code Code, message string) *Error {
	return &Error{Code: code, Message: message}
}

func InvalidRequest(message string) *Error {
	return New(CodeInvalidRequest, message)
}

func InvalidSignature(message string) *Error {
	return New(CodeInvalidSignature, message)
}

func InvalidPayload(message string) *Error {
	return New(CodeInvalidPayloadFormat, message)
}

// Database wraps a store failure, passing its message through.
func Database(err error) *Error {
	return New(CodeDatabaseError, err.Error())
}

// FromError returns err as an *Error when it already is one, and
// collapses anything else into a database_error.
func FromError(err error) *Error {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr
	}
	return Database(err)
}
