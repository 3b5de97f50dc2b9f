// Package error defines domain-specific errors for the club ledger.
package error

import "errors"

// Transaction domain errors.
var (
	// ErrInvalidTransactionDate is returned when the date does not parse as a calendar date.
	ErrInvalidTransactionDate = errors.New("invalid transaction date")

	// ErrInvalidTransactionAmount is returned when the amount does not parse as a decimal number.
	ErrInvalidTransactionAmount = errors.New("invalid transaction amount")

	// ErrInvalidReferenceID is returned when a category or section id is not a positive integer.
	ErrInvalidReferenceID = errors.New("invalid reference id")

	// ErrMissingTransactionField is returned when a required field is empty.
	ErrMissingTransactionField = errors.New("missing required field")

	// ErrCategoryNotFoundForTransaction is returned when the referenced category does not exist.
	ErrCategoryNotFoundForTransaction = errors.New("category not found")

	// ErrSectionNotFoundForTransaction is returned when the referenced section does not exist.
	ErrSectionNotFoundForTransaction = errors.New("section not found")
)

// TransactionErrorCode defines error codes for transaction errors.
// Format: TXN-XXYYYY where XX is the error class and YYYY the specific error.
type TransactionErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeMissingTransactionFields TransactionErrorCode = "TXN-010001"
	ErrCodeInvalidTransactionDate   TransactionErrorCode = "TXN-010002"
	ErrCodeInvalidTransactionAmount TransactionErrorCode = "TXN-010003"
	ErrCodeInvalidReferenceID       TransactionErrorCode = "TXN-010004"

	// Reference errors (02XXXX)
	ErrCodeTxnCategoryNotFound TransactionErrorCode = "TXN-020001"
	ErrCodeTxnSectionNotFound  TransactionErrorCode = "TXN-020002"

	// Internal errors (99XXXX)
	ErrCodeTransactionInternalError TransactionErrorCode = "TXN-990001"
)

// TransactionError represents a transaction error with code and message.
type TransactionError struct {
	Code    TransactionErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *TransactionError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *TransactionError) Unwrap() error {
	return e.Err
}

// ErrorCode returns the code as a plain string.
func (e *TransactionError) ErrorCode() string {
	return string(e.Code)
}

// NewTransactionError creates a new TransactionError with the given code and message.
func NewTransactionError(code TransactionErrorCode, message string, err error) *TransactionError {
	return &TransactionError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
