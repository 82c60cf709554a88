package shared

import (
	"fmt"
	"strings"
)

// DomainError represents a domain-level error
type DomainError struct {
	Code    string `json:"code"`
	Message string `json:"message"`

	cause error
}

// Error implements the error interface
func (e *DomainError) Error() string {
	return e.Message
}

// Unwrap exposes the underlying cause, if any
func (e *DomainError) Unwrap() error {
	return e.cause
}

// NewDomainError creates a new domain error
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// Error codes used across the service
const (
	CodeNotFound    = "NOT_FOUND"
	CodeValidation  = "VALIDATION_FAILED"
	CodePersistence = "PERSISTENCE_FAILED"
	CodeEnrichment  = "ENRICHMENT_FAILED"
)

// Common domain errors
var (
	ErrNotFound = NewDomainError(CodeNotFound, "Resource not found")
)

// NewValidationError reports required fields missing for the named operation.
// Raised before any persistence attempt; resubmitting corrected data recovers.
func NewValidationError(op string, missing []string) *DomainError {
	return NewDomainError(CodeValidation,
		fmt.Sprintf("%s: required fields missing: %s", op, strings.Join(missing, ", ")))
}

// NewPersistenceError wraps a transaction failure. The transaction is already
// rolled back when this is returned.
func NewPersistenceError(op string, cause error) *DomainError {
	return &DomainError{
		Code:    CodePersistence,
		Message: fmt.Sprintf("%s: persistence failed: %v", op, cause),
		cause:   cause,
	}
}

// NewEnrichmentError wraps a failed remote fetch during the enrichment join.
func NewEnrichmentError(cause error) *DomainError {
	return &DomainError{
		Code:    CodeEnrichment,
		Message: fmt.Sprintf("enrichment failed: %v", cause),
		cause:   cause,
	}
}
