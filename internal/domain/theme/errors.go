package theme

import (
	"errors"
	"fmt"
	"strings"
)

// ErrorCode identifies well-known error categories raised while building
// registries and resolving themes.
type ErrorCode string

const (
	ErrCodeValidation    ErrorCode = "VALIDATION_ERROR"
	ErrCodeDuplicate     ErrorCode = "DUPLICATE_ID"
	ErrCodeCycle         ErrorCode = "CIRCULAR_EXTENDS"
	ErrCodeThemeNotFound ErrorCode = "THEME_NOT_FOUND"
	ErrCodeNotFound      ErrorCode = "NOT_FOUND"
	ErrCodeCancelled     ErrorCode = "CANCELLED"
	ErrCodeInternal      ErrorCode = "INTERNAL_ERROR"
)

// DomainError represents a typed error enriched with contextual data while
// remaining free from infrastructure dependencies.
type DomainError struct {
	Code    ErrorCode
	Message string
	Cause   error
	Context map[string]interface{}
}

// Error implements the error interface.
func (e *DomainError) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap exposes the wrapped cause for errors.Is / errors.As usage.
func (e *DomainError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Cause
}

// Is allows errors.Is comparisons against other DomainError values.
func (e *DomainError) Is(target error) bool {
	var domainErr *DomainError
	if !errors.As(target, &domainErr) {
		return false
	}
	return e.Code == domainErr.Code && e.Message == domainErr.Message
}

// WithContext clones the error with additional contextual metadata.
func (e *DomainError) WithContext(ctx map[string]interface{}) *DomainError {
	if e == nil {
		return nil
	}
	merged := make(map[string]interface{}, len(e.Context)+len(ctx))
	for k, v := range e.Context {
		merged[k] = v
	}
	for k, v := range ctx {
		merged[k] = v
	}
	return &DomainError{
		Code:    e.Code,
		Message: e.Message,
		Cause:   e.Cause,
		Context: merged,
	}
}

// HasCode reports whether err is, or wraps, a DomainError with the given code.
func HasCode(err error, code ErrorCode) bool {
	var domainErr *DomainError
	if !errors.As(err, &domainErr) {
		return false
	}
	return domainErr.Code == code
}

func newDomainError(code ErrorCode, message string, cause error, context map[string]interface{}) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
		Cause:   cause,
		Context: context,
	}
}

func newValidationError(message string, context map[string]interface{}) *DomainError {
	return newDomainError(ErrCodeValidation, message, nil, context)
}

func newDuplicateError(identifier string) *DomainError {
	return newDomainError(ErrCodeDuplicate, "duplicate theme id", nil, map[string]interface{}{
		"id": identifier,
	})
}

func newCycleError(path []string) *DomainError {
	return newDomainError(ErrCodeCycle, fmt.Sprintf("circular extends detected: %s", strings.Join(path, " -> ")), nil, map[string]interface{}{
		"path": path,
	})
}

// NewThemeNotFoundError reports a missing theme together with the ids that
// could have been selected instead.
func NewThemeNotFoundError(id string, available []string) *DomainError {
	list := "none"
	if len(available) > 0 {
		list = strings.Join(available, ", ")
	}
	return newDomainError(ErrCodeThemeNotFound, fmt.Sprintf("theme %q not found (available: %s)", id, list), nil, map[string]interface{}{
		"id":        id,
		"available": append([]string(nil), available...),
	})
}
