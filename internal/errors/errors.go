package errors

import (
	"errors"
	"fmt"
)

// Exit codes for lan-address-gen
const (
	ExitSuccess        = 0
	ExitGeneralError   = 1
	ExitInvalidPattern = 2
	ExitConfigError    = 3
	ExitExhausted      = 4
)

// AppError is the base error type for lan-address-gen
type AppError struct {
	Code    int
	Message string
	Cause   error
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

// ExitCode returns the exit code for this error
func (e *AppError) ExitCode() int {
	return e.Code
}

// New creates a new AppError
func New(code int, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
	}
}

// Wrap wraps an existing error with an AppError
func Wrap(code int, message string, cause error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// Common error constructors

// MissingInput returns an error for an invocation without the input string
func MissingInput() *AppError {
	return New(ExitGeneralError, "input string is required")
}

// InvalidPattern returns an error for an unusable address pattern
func InvalidPattern(pattern string, cause error) *AppError {
	return Wrap(ExitInvalidPattern, fmt.Sprintf("pattern %q rejected", pattern), cause)
}

// ConfigError returns an error for configuration issues
func ConfigError(message string, cause error) *AppError {
	return Wrap(ExitConfigError, message, cause)
}

// Exhausted returns an error when the opt-in attempt limit ran out
func Exhausted(cause error) *AppError {
	return Wrap(ExitExhausted, "no available address found", cause)
}

// ValidationError returns an error for input validation failures
func ValidationError(message string) *AppError {
	return New(ExitGeneralError, message)
}

// GetExitCode extracts the exit code from an error
func GetExitCode(err error) int {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.ExitCode()
	}
	return ExitGeneralError
}

// Is checks if an error is of a specific type
func Is(err, target error) bool {
	return errors.Is(err, target)
}
