package shared

import (
	"errors"
	"fmt"
)

// DomainError represents a domain-level error
type DomainError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Error implements the error interface
func (e *DomainError) Error() string {
	return e.Message
}

// NewDomainError creates a new domain error
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// ErrNotFound is returned by repositories when the referenced entity is
// absent. Code-specific errors elsewhere carry contextual messages via the
// constructors below.
var ErrNotFound = NewDomainError("NOT_FOUND", "Resource not found")

// NewValidationError creates a VALIDATION_ERROR with a specific message
func NewValidationError(message string) *DomainError {
	return &DomainError{Code: "VALIDATION_ERROR", Message: message}
}

// NewPersistenceError wraps a storage failure as a PERSISTENCE_ERROR.
// Storage failures are surfaced to callers rather than logged and swallowed;
// the underlying error text is preserved for operators.
func NewPersistenceError(op string, err error) *DomainError {
	return &DomainError{
		Code:    "PERSISTENCE_ERROR",
		Message: fmt.Sprintf("%s: %v", op, err),
	}
}

// WrapPersistence passes domain errors through untouched and wraps anything
// else as a PERSISTENCE_ERROR. Read paths use it so a NOT_FOUND from the
// repository keeps its code while a store failure is still surfaced as a
// persistence failure.
func WrapPersistence(op string, err error) error {
	var domainErr *DomainError
	if errors.As(err, &domainErr) {
		return err
	}
	return NewPersistenceError(op, err)
}
