// Package error defines domain-specific errors for the club ledger.
package error

import "errors"

// Report domain errors.
var (
	// ErrInvalidYear is returned when the year is missing or out of range.
	ErrInvalidYear = errors.New("invalid year")

	// ErrInvalidMonth is returned when the month is not between 1 and 12.
	ErrInvalidMonth = errors.New("invalid month")

	// ErrInvalidDateRange is returned when the end date is before the start date.
	ErrInvalidDateRange = errors.New("end date must not be before start date")

	// ErrInvalidSectionFilter is returned when the section filter is not an integer.
	ErrInvalidSectionFilter = errors.New("invalid section filter")

	// ErrUnsupportedExportFormat is returned when the export format is unknown.
	ErrUnsupportedExportFormat = errors.New("unsupported export format")

	// ErrExportEncoding is returned when a row could not be encoded.
	ErrExportEncoding = errors.New("export encoding failed")
)

// ReportErrorCode defines error codes for summary, comparison and export errors.
// Format: RPT-XXYYYY where XX is the error class and YYYY the specific error.
type ReportErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidYear             ReportErrorCode = "RPT-010001"
	ErrCodeInvalidMonth            ReportErrorCode = "RPT-010002"
	ErrCodeInvalidDateRange        ReportErrorCode = "RPT-010003"
	ErrCodeInvalidSectionFilter    ReportErrorCode = "RPT-010004"
	ErrCodeUnsupportedExportFormat ReportErrorCode = "RPT-010005"

	// Internal errors (99XXXX)
	ErrCodeExportEncoding      ReportErrorCode = "RPT-990001"
	ErrCodeReportInternalError ReportErrorCode = "RPT-990002"
)

// ReportError represents a report error with code and message.
type ReportError struct {
	Code    ReportErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *ReportError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *ReportError) Unwrap() error {
	return e.Err
}

// ErrorCode returns the code as a plain string.
func (e *ReportError) ErrorCode() string {
	return string(e.Code)
}

// NewReportError creates a new ReportError with the given code and message.
func NewReportError(code ReportErrorCode, message string, err error) *ReportError {
	return &ReportError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
