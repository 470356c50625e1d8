package errors

import (
	"errors"
	"fmt"
)

// ErrorCategory classifies failures of the checksum services so callers can
// report them and pick an exit status.
type ErrorCategory int

const (
	// ErrorConfig indicates an unusable algorithm or option set.
	ErrorConfig ErrorCategory = iota + 1

	// ErrorIO indicates the input could not be opened or read.
	ErrorIO

	// ErrorDecompress indicates compressed input could not be decoded.
	ErrorDecompress

	// ErrorMismatch indicates a computed checksum differs from the expected one.
	ErrorMismatch
)

// String returns the string representation of the error category.
func (c ErrorCategory) String() string {
	switch c {
	case ErrorConfig:
		return "config"
	case ErrorIO:
		return "io"
	case ErrorDecompress:
		return "decompress"
	case ErrorMismatch:
		return "mismatch"
	default:
		return "unknown"
	}
}

// ChecksumError is returned by the checksum services.
type ChecksumError struct {
	Err       error
	Operation string
	Category  ErrorCategory
}

// NewChecksumError wraps err with an operation name and category.
func NewChecksumError(category ErrorCategory, operation string, err error) *ChecksumError {
	return &ChecksumError{Err: err, Operation: operation, Category: category}
}

func (e *ChecksumError) Error() string {
	return fmt.Sprintf("[%v] %s: %v", e.Category, e.Operation, e.Err)
}

func (e *ChecksumError) Unwrap() error {
	return e.Err
}

// IsCategory reports whether err wraps a ChecksumError of the given category.
func IsCategory(err error, category ErrorCategory) bool {
	var ce *ChecksumError
	return errors.As(err, &ce) && ce.Category == category
}
