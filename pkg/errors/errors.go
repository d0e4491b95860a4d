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
	ErrUnknown       ErrorCode = "UNKNOWN"
	ErrInternal      ErrorCode = "INTERNAL"
	ErrInvalidInput  ErrorCode = "INVALID_INPUT"
	ErrNotFound      ErrorCode = "NOT_FOUND"
	ErrAlreadyExists ErrorCode = "ALREADY_EXISTS"

	// Puzzle errors
	ErrParse      ErrorCode = "PARSE"
	ErrNoData     ErrorCode = "NO_DATA"
	ErrUnsolvable ErrorCode = "UNSOLVABLE"
	ErrInputRead  ErrorCode = "INPUT_READ"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"
	ErrConfigValid ErrorCode = "CONFIG_INVALID"
)

// AdventError represents a structured error with code and details
type AdventError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *AdventError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *AdventError) Unwrap() error {
	return e.Wrapped
}

// Is matches any AdventError carrying the same code
func (e *AdventError) Is(target error) bool {
	var targetErr *AdventError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new AdventError with the given code and message
func New(code ErrorCode, message string) *AdventError {
	return &AdventError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new AdventError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *AdventError {
	return New(code, fmt.Sprintf(format, args...))
}

// Wrap wraps an existing error. A nil err stays nil.
func Wrap(err error, code ErrorCode, message string) error {
	if err == nil {
		return nil
	}
	e := New(code, message)
	e.Wrapped = err
	return e
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Wrap(err, code, fmt.Sprintf(format, args...))
}

// WithDetail adds a detail to the error
func (e *AdventError) WithDetail(key string, value interface{}) *AdventError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var adventErr *AdventError
	if errors.As(err, &adventErr) {
		return adventErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not an AdventError
func GetErrorCode(err error) ErrorCode {
	var adventErr *AdventError
	if errors.As(err, &adventErr) {
		return adventErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not an AdventError
func GetErrorDetails(err error) map[string]interface{} {
	var adventErr *AdventError
	if errors.As(err, &adventErr) {
		return adventErr.Details
	}
	return nil
}
