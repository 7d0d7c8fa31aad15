package apperr

import (
	"fmt"
	"net/http"
)

// Kind classifies a failure. The set is closed: every error that crosses a
// service boundary carries exactly one of these kinds, and the router maps
// each kind to a single HTTP status code.
type Kind int

const (
	// Validation indicates a malformed or schema-invalid request.
	Validation Kind = iota
	// Authentication indicates failed credentials or an invalid token.
	Authentication
	// NotFound indicates a missing resource.
	NotFound
	// Conflict indicates a uniqueness violation.
	Conflict
	// Internal indicates an unexpected failure, i.e. a bug.
	Internal
)

// Status returns the HTTP status code for the kind.
func (k Kind) Status() int {
	switch k {
	case Validation:
		return http.StatusBadRequest
	case Authentication:
		return http.StatusUnauthorized
	case NotFound:
		return http.StatusNotFound
	case Conflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// Code returns the wire identifier used in error envelopes.
func (k Kind) Code() string {
	switch k {
	case Validation:
		return "VALIDATION_ERROR"
	case Authentication:
		return "AUTHENTICATION_ERROR"
	case NotFound:
		return "NOT_FOUND"
	case Conflict:
		return "CONFLICT"
	default:
		return "INTERNAL_ERROR"
	}
}

// Error is a typed failure with a fixed kind and a human-readable message.
// Values are immutable once constructed.
type Error struct {
	Kind    Kind
	Message string
}

// Error implements the error interface.
func (e *Error) Error() string {
	return e.Message
}

// New creates an Error with the given kind and message.
func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// Newf creates an Error with a formatted message.
func Newf(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// Default messages for kinds that have one. Validation errors always carry
// a specific message, so there is no default for that kind.
const (
	defaultAuthenticationMessage = "Authentication failed"
	defaultNotFoundMessage       = "Resource not found"
	defaultConflictMessage       = "Resource conflict"
	defaultInternalMessage       = "An unexpected error occurred"
)

// NewValidation creates a Validation error.
func NewValidation(message string) *Error {
	return New(Validation, message)
}

// NewAuthentication creates an Authentication error.
// An empty message selects the default.
func NewAuthentication(message string) *Error {
	if message == "" {
		message = defaultAuthenticationMessage
	}
	return New(Authentication, message)
}

// NewNotFound creates a NotFound error.
// An empty message selects the default.
func NewNotFound(message string) *Error {
	if message == "" {
		message = defaultNotFoundMessage
	}
	return New(NotFound, message)
}

// NewConflict creates a Conflict error.
// An empty message selects the default.
func NewConflict(message string) *Error {
	if message == "" {
		message = defaultConflictMessage
	}
	return New(Conflict, message)
}

// NewInternal creates an Internal error with the fixed generic message.
// The underlying cause is logged server-side, never sent to the caller.
func NewInternal() *Error {
	return New(Internal, defaultInternalMessage)
}
