package generator

import (
	"errors"
	"fmt"
)

// GeneratorErrorType categorizes generator errors.
type GeneratorErrorType int

const (
	// GeneratorWriteFailed indicates a file write operation failed.
	GeneratorWriteFailed GeneratorErrorType = iota
	// GeneratorInvalidDirectory indicates the target directory is missing or not a directory.
	GeneratorInvalidDirectory
	// GeneratorEncodingFailed indicates the content cannot be represented in the target encoding.
	GeneratorEncodingFailed
	// GeneratorCancelled indicates the user declined to overwrite an existing file.
	GeneratorCancelled
	// GeneratorInvalidRequest indicates the request is incomplete (e.g. empty name).
	GeneratorInvalidRequest
)

// String returns a short name for the error type.
func (t GeneratorErrorType) String() string {
	switch t {
	case GeneratorWriteFailed:
		return "io error"
	case GeneratorInvalidDirectory:
		return "invalid directory"
	case GeneratorEncodingFailed:
		return "encoding error"
	case GeneratorCancelled:
		return "cancelled"
	case GeneratorInvalidRequest:
		return "invalid request"
	default:
		return "unknown"
	}
}

// GeneratorError represents generator-specific errors.
type GeneratorError struct {
	// Type categorizes the error.
	Type GeneratorErrorType
	// Message is the error message.
	Message string
	// File is the file path related to the error (if applicable).
	File string
	// Cause is the underlying error (if any).
	Cause error
}

// Error implements the error interface.
func (e *GeneratorError) Error() string {
	if e.File != "" {
		if e.Cause != nil {
			return fmt.Sprintf("%s (file: %s): %v", e.Message, e.File, e.Cause)
		}
		return fmt.Sprintf("%s (file: %s)", e.Message, e.File)
	}

	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}

	return e.Message
}

// Unwrap returns the underlying cause error for error unwrapping.
func (e *GeneratorError) Unwrap() error {
	return e.Cause
}

// newGeneratorError creates a new GeneratorError.
func newGeneratorError(typ GeneratorErrorType, message, file string, cause error) *GeneratorError {
	return &GeneratorError{
		Type:    typ,
		Message: message,
		File:    file,
		Cause:   cause,
	}
}

// ErrorType returns the GeneratorErrorType carried by err, if any.
func ErrorType(err error) (GeneratorErrorType, bool) {
	var genErr *GeneratorError
	if errors.As(err, &genErr) {
		return genErr.Type, true
	}
	return 0, false
}

// IsCancelled reports whether err is a declined overwrite.
func IsCancelled(err error) bool {
	typ, ok := ErrorType(err)
	return ok && typ == GeneratorCancelled
}
