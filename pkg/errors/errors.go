package errors

import (
	"errors"
	"fmt"
)

// ErrorCode represents a unique error code for stable testing
type ErrorCode string

// Error codes for different error categories
const (
	// General errors
	ErrUnknown        ErrorCode = "UNKNOWN"
	ErrInternal       ErrorCode = "INTERNAL"
	ErrInvalidInput   ErrorCode = "INVALID_INPUT"
	ErrNotImplemented ErrorCode = "NOT_IMPLEMENTED"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"
	ErrConfigValid ErrorCode = "CONFIG_INVALID"

	// Catalog errors
	ErrResetInvalid  ErrorCode = "RESET_INVALID"
	ErrGroupMismatch ErrorCode = "GROUP_MISMATCH"
	ErrUnknownGroup  ErrorCode = "UNKNOWN_GROUP"
	ErrUnknownStyle  ErrorCode = "UNKNOWN_STYLE"

	// Palette source errors
	ErrSourceUnavailable ErrorCode = "SOURCE_UNAVAILABLE"
	ErrSourceInvalid     ErrorCode = "SOURCE_INVALID"

	// Markup errors
	ErrMarkupParse ErrorCode = "MARKUP_PARSE"
)

// StyleError represents a structured error with code and details
type StyleError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *StyleError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *StyleError) Unwrap() error {
	return e.Wrapped
}

// Is matches any StyleError carrying the same code.
func (e *StyleError) Is(target error) bool {
	var targetErr *StyleError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new StyleError with the given code and message
func New(code ErrorCode, message string) *StyleError {
	return &StyleError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new StyleError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *StyleError {
	return &StyleError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a StyleError
func Wrap(err error, code ErrorCode, message string) *StyleError {
	if err == nil {
		return nil
	}
	return &StyleError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *StyleError {
	if err == nil {
		return nil
	}
	return &StyleError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *StyleError) WithDetail(key string, value interface{}) *StyleError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var styleErr *StyleError
	if errors.As(err, &styleErr) {
		return styleErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a StyleError
func GetErrorCode(err error) ErrorCode {
	var styleErr *StyleError
	if errors.As(err, &styleErr) {
		return styleErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a StyleError
func GetErrorDetails(err error) map[string]interface{} {
	var styleErr *StyleError
	if errors.As(err, &styleErr) {
		return styleErr.Details
	}
	return nil
}
