package apperrors

import "fmt"

// Kind classifies a request failure. Every value maps to exactly one
// HTTP status at the response boundary.
type Kind int

const (
	KindInternal Kind = iota
	KindValidation
	KindConflict
	KindNotFound
	KindUnauthorized
	KindForbidden
)

// FieldViolation describes one failed validation rule on a named field.
type FieldViolation struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Error is the failure value returned by every component on the request
// path. It is created where the condition is detected and translated
// into an HTTP response exactly once, by the response package.
type Error struct {
	Kind       Kind
	Message    string
	Violations []FieldViolation
	cause      error
}

func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.cause)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.cause
}

// Validation reports malformed or out-of-policy input. It carries the
// full list of field violations so the caller sees every problem, not
// just the first.
func Validation(violations []FieldViolation) *Error {
	return &Error{Kind: KindValidation, Message: "validation failed", Violations: violations}
}

// Conflict reports a uniqueness violation on create.
func Conflict(message string) *Error {
	return &Error{Kind: KindConflict, Message: message}
}

// NotFound reports an absent entity.
func NotFound(message string) *Error {
	return &Error{Kind: KindNotFound, Message: message}
}

// Unauthorized reports a missing or invalid credential.
func Unauthorized(message string) *Error {
	return &Error{Kind: KindUnauthorized, Message: message}
}

// Forbidden reports an authenticated caller that does not own the
// target resource.
func Forbidden(message string) *Error {
	return &Error{Kind: KindForbidden, Message: message}
}

// Internal wraps an unexpected persistence or runtime error. It fails
// the single request without exposing the underlying cause.
func Internal(err error) *Error {
	return &Error{Kind: KindInternal, Message: "internal error", cause: err}
}
