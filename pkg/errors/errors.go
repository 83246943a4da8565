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
	ErrInvalidInput ErrorCode = "INVALID_INPUT"

	// Sweep errors
	ErrNoProgress ErrorCode = "NO_PROGRESS"
	ErrCanceled   ErrorCode = "CANCELED"

	// Input errors
	ErrParse ErrorCode = "PARSE"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"
	ErrConfigValid ErrorCode = "CONFIG_INVALID"

	// FileSystem errors
	ErrFileNotFound ErrorCode = "FILE_NOT_FOUND"
	ErrFileAccess   ErrorCode = "FILE_ACCESS"

	// Output errors
	ErrRender ErrorCode = "RENDER"
	ErrWatch  ErrorCode = "WATCH"
)

// SweepError represents a structured error with code and details
type SweepError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *SweepError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *SweepError) Unwrap() error {
	return e.Wrapped
}

// Is reports whether target is a SweepError carrying the same code
func (e *SweepError) Is(target error) bool {
	var targetErr *SweepError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new SweepError with the given code and message
func New(code ErrorCode, message string) *SweepError {
	return &SweepError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new SweepError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *SweepError {
	return New(code, fmt.Sprintf(format, args...))
}

// Wrap wraps an existing error. A nil err yields nil.
func Wrap(err error, code ErrorCode, message string) *SweepError {
	if err == nil {
		return nil
	}
	e := New(code, message)
	e.Wrapped = err
	return e
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *SweepError {
	return Wrap(err, code, fmt.Sprintf(format, args...))
}

// WithDetail adds a detail to the error
func (e *SweepError) WithDetail(key string, value interface{}) *SweepError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// WithDetails adds multiple details to the error
func (e *SweepError) WithDetails(details map[string]interface{}) *SweepError {
	for k, v := range details {
		e.WithDetail(k, v)
	}
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var sweepErr *SweepError
	if errors.As(err, &sweepErr) {
		return sweepErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a SweepError
func GetErrorCode(err error) ErrorCode {
	var sweepErr *SweepError
	if errors.As(err, &sweepErr) {
		return sweepErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a SweepError
func GetErrorDetails(err error) map[string]interface{} {
	var sweepErr *SweepError
	if errors.As(err, &sweepErr) {
		return sweepErr.Details
	}
	return nil
}
