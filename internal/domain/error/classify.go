// Package error defines domain-specific errors for the club ledger.
package error

import (
	"errors"
	"strings"
)

// ErrCodeRateLimited is returned by the write throttle.
const ErrCodeRateLimited = "RATE-010001"

// Class groups error codes into the ledger's error taxonomy.
type Class string

const (
	ClassValidation Class = "validation"
	ClassReference  Class = "reference"
	ClassInternal   Class = "internal"
)

// CodedError is implemented by every coded domain error.
type CodedError interface {
	error
	ErrorCode() string
}

// ClassOf returns the class of the first coded error in err's chain.
// Errors without a code are internal.
func ClassOf(err error) Class {
	var coded CodedError
	if !errors.As(err, &coded) {
		return ClassInternal
	}
	code := coded.ErrorCode()
	idx := strings.IndexByte(code, '-')
	if idx < 0 || len(code) < idx+3 {
		return ClassInternal
	}
	switch code[idx+1 : idx+3] {
	case "01":
		return ClassValidation
	case "02":
		return ClassReference
	default:
		return ClassInternal
	}
}

// IsValidationError reports whether err is a malformed-input error.
func IsValidationError(err error) bool {
	return ClassOf(err) == ClassValidation
}

// IsReferenceError reports whether err points at a missing category or section.
func IsReferenceError(err error) bool {
	return ClassOf(err) == ClassReference
}
