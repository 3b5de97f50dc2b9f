// Package error defines domain-specific errors for the club ledger.
package error

import "errors"

// Taxonomy (category and section) domain errors.
var (
	// ErrCategoryNotFound is returned when a category is not found in the store.
	ErrCategoryNotFound = errors.New("category not found")

	// ErrSectionNotFound is returned when a section is not found in the store.
	ErrSectionNotFound = errors.New("section not found")

	// ErrInvalidCategoryKind is returned when a kind filter is neither income nor expense.
	ErrInvalidCategoryKind = errors.New("invalid category kind")
)

// TaxonomyErrorCode defines error codes for taxonomy errors.
type TaxonomyErrorCode string

const (
	ErrCodeInvalidCategoryKind   TaxonomyErrorCode = "TAX-010001"
	ErrCodeTaxonomyInternalError TaxonomyErrorCode = "TAX-990001"
)

// TaxonomyError represents a taxonomy error with code and message.
type TaxonomyError struct {
	Code    TaxonomyErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *TaxonomyError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *TaxonomyError) Unwrap() error {
	return e.Err
}

// ErrorCode returns the code as a plain string.
func (e *TaxonomyError) ErrorCode() string {
	return string(e.Code)
}

// NewTaxonomyError creates a new TaxonomyError with the given code and message.
func NewTaxonomyError(code TaxonomyErrorCode, message string, err error) *TaxonomyError {
	return &TaxonomyError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
