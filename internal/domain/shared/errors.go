package shared

import "errors"

// Error codes carried by DomainError.
const (
	CodeNotFound         = "NOT_FOUND"
	CodeAlreadyExists    = "ALREADY_EXISTS"
	CodeInvalidInput     = "INVALID_INPUT"
	CodeValidationFailed = "VALIDATION_FAILED"
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

// Is reports whether target is a DomainError with the same code, so that
// errors.Is(err, ErrNotFound) matches entity-specific not-found errors.
func (e *DomainError) Is(target error) bool {
	t, ok := target.(*DomainError)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

// NewDomainError creates a new domain error
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// NewNotFoundError returns a NOT_FOUND error with the "<entity> not found" message.
func NewNotFoundError(entity string) *DomainError {
	return NewDomainError(CodeNotFound, entity+" not found")
}

// TranslateNotFound replaces a generic not-found error from a repository with
// the entity-specific one. Any other error is returned unchanged.
func TranslateNotFound(err error, entity string) error {
	if errors.Is(err, ErrNotFound) {
		return NewNotFoundError(entity)
	}
	return err
}

// Common domain errors
var (
	ErrNotFound      = NewDomainError(CodeNotFound, "Resource not found")
	ErrAlreadyExists = NewDomainError(CodeAlreadyExists, "Resource already exists")
	ErrInvalidInput  = NewDomainError(CodeInvalidInput, "Invalid input provided")
)
