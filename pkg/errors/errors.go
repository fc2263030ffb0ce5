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
	ErrUnknown      ErrorCode = "UNKNOWN"
	ErrInternal     ErrorCode = "INTERNAL"
	ErrInvalidInput ErrorCode = "INVALID_INPUT"

	// Traversal root errors
	ErrRootNotFound ErrorCode = "ROOT_NOT_FOUND"
	ErrRootNotDir   ErrorCode = "ROOT_NOT_DIR"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"
	ErrConfigValid ErrorCode = "CONFIG_INVALID"

	// Output errors
	ErrRender      ErrorCode = "RENDER"
	ErrOutputWrite ErrorCode = "OUTPUT_WRITE"
)

// BonsaiError represents a structured error with code and details
type BonsaiError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *BonsaiError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *BonsaiError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *BonsaiError) Is(target error) bool {
	var targetErr *BonsaiError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new BonsaiError with the given code and message
func New(code ErrorCode, message string) *BonsaiError {
	return &BonsaiError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new BonsaiError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *BonsaiError {
	return &BonsaiError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a BonsaiError
func Wrap(err error, code ErrorCode, message string) *BonsaiError {
	if err == nil {
		return nil
	}
	return &BonsaiError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *BonsaiError {
	if err == nil {
		return nil
	}
	return &BonsaiError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *BonsaiError) WithDetail(key string, value interface{}) *BonsaiError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var bonsaiErr *BonsaiError
	if errors.As(err, &bonsaiErr) {
		return bonsaiErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a BonsaiError
func GetErrorCode(err error) ErrorCode {
	var bonsaiErr *BonsaiError
	if errors.As(err, &bonsaiErr) {
		return bonsaiErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a BonsaiError
func GetErrorDetails(err error) map[string]interface{} {
	var bonsaiErr *BonsaiError
	if errors.As(err, &bonsaiErr) {
		return bonsaiErr.Details
	}
	return nil
}

// UserMessage formats err for display: the message of the outermost
// BonsaiError followed by its cause, without the error code. Other errors
// are returned as err.Error().
func UserMessage(err error) string {
	if err == nil {
		return ""
	}
	var bonsaiErr *BonsaiError
	if !errors.As(err, &bonsaiErr) {
		return err.Error()
	}
	if bonsaiErr.Wrapped != nil {
		return bonsaiErr.Message + ": " + bonsaiErr.Wrapped.Error()
	}
	return bonsaiErr.Message
}
