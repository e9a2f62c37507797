package app

import "fmt"

// AppErrorType represents the type of application error.
type AppErrorType int

const (
	// NewFileFailed indicates file creation failed.
	NewFileFailed AppErrorType = iota
	// ConfigInitFailed indicates writing the configuration file failed.
	ConfigInitFailed
	// ConfigLoadFailed indicates loading the configuration file failed.
	ConfigLoadFailed
	// ValidationFailed indicates validation failed.
	ValidationFailed
)

// AppError represents an application-layer error.
type AppError struct {
	// Type is the error type.
	Type AppErrorType
	// Message is the error message.
	Message string
	// Cause is the underlying error.
	Cause error
}

// Error returns the error message.
func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *AppError) Unwrap() error {
	return e.Cause
}

// NewAppError creates a new AppError.
func NewAppError(errType AppErrorType, message string, cause error) *AppError {
	return &AppError{
		Type:    errType,
		Message: message,
		Cause:   cause,
	}
}

// NewNewFileError creates a file creation error.
func NewNewFileError(message string, cause error) *AppError {
	return NewAppError(NewFileFailed, message, cause)
}

// NewConfigInitError creates a config init error.
func NewConfigInitError(message string, cause error) *AppError {
	return NewAppError(ConfigInitFailed, message, cause)
}

// NewConfigLoadError creates a config load error.
func NewConfigLoadError(message string, cause error) *AppError {
	return NewAppError(ConfigLoadFailed, message, cause)
}

// NewValidationError creates a validation error.
func NewValidationError(message string, cause error) *AppError {
	return NewAppError(ValidationFailed, message, cause)
}
