package domain

import (
	"errors"
	"fmt"
	"strings"
)

var ErrNotFound = errors.New("resource not found")

var (
	ErrClientNotFound = fmt.Errorf("client: %w", ErrNotFound)
	ErrMobileNotFound = fmt.Errorf("mobile: %w", ErrNotFound)
	ErrUserNotFound   = fmt.Errorf("user: %w", ErrNotFound)
)

var ErrForbidden = errors.New("access forbidden")
var ErrUnauthenticated = errors.New("authentication required")
var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrEmailTaken = errors.New("this email address is already registered")
var ErrClientHasUsers = errors.New("client still owns users; delete or move them first")

// ErrAdminMustTargetClient is returned when an administrator tries to create a
// user without naming the client it belongs to.
var ErrAdminMustTargetClient = fmt.Errorf("%w: ADMIN must use the path /api/admin/user/{id} to associate a new user with a customer", ErrForbidden)

// FieldViolation is a single failed constraint on an inbound field.
type FieldViolation struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError aggregates every violation found on a payload or query.
type ValidationError struct {
	Violations []FieldViolation
}

// NewValidationError builds a ValidationError holding one violation.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Violations: []FieldViolation{{Field: field, Message: message}}}
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Violations))
	for _, v := range e.Violations {
		parts = append(parts, v.Field+": "+v.Message)
	}
	return "The JSON sent contains invalid data: " + strings.Join(parts, "; ")
}

// Add appends a violation.
func (e *ValidationError) Add(field, message string) {
	e.Violations = append(e.Violations, FieldViolation{Field: field, Message: message})
}

// IsValidation reports whether err carries a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
