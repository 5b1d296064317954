package errors

import (
	"errors"
	"fmt"
)

// ErrorCode identifies a class of failure independently of its message.
type ErrorCode string

const (
	ErrUnknown ErrorCode = "UNKNOWN"

	// Configuration errors, raised before any source is touched
	ErrMissingPattern ErrorCode = "MISSING_PATTERN"
	ErrEmptyPattern   ErrorCode = "EMPTY_PATTERN"
	ErrUnknownOption  ErrorCode = "UNKNOWN_OPTION"

	// Source errors
	ErrSourceOpen ErrorCode = "SOURCE_OPEN"
	ErrSourceRead ErrorCode = "SOURCE_READ"

	// Output errors
	ErrOutputWrite ErrorCode = "OUTPUT_WRITE"
)

// SearchError is a structured error with a stable code and optional details.
type SearchError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface. The code is not part of the text:
// messages are printed to users as-is.
func (e *SearchError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Wrapped)
	}
	return e.Message
}

// Unwrap implements the errors.Unwrap interface
func (e *SearchError) Unwrap() error {
	return e.Wrapped
}

// Is matches any *SearchError carrying the same code.
func (e *SearchError) Is(target error) bool {
	var targetErr *SearchError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new SearchError with the given code and message
func New(code ErrorCode, message string) *SearchError {
	return &SearchError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new SearchError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *SearchError {
	return New(code, fmt.Sprintf(format, args...))
}

// Wrap wraps an existing error with a SearchError. A nil err yields nil.
func Wrap(err error, code ErrorCode, message string) *SearchError {
	if err == nil {
		return nil
	}
	e := New(code, message)
	e.Wrapped = err
	return e
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *SearchError {
	return Wrap(err, code, fmt.Sprintf(format, args...))
}

// WithDetail adds a detail to the error
func (e *SearchError) WithDetail(key string, value interface{}) *SearchError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	return GetErrorCode(err) == code
}

// GetErrorCode returns the error code from an error, or ErrUnknown if it is
// not a SearchError
func GetErrorCode(err error) ErrorCode {
	var searchErr *SearchError
	if errors.As(err, &searchErr) {
		return searchErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if it is not a
// SearchError
func GetErrorDetails(err error) map[string]interface{} {
	var searchErr *SearchError
	if errors.As(err, &searchErr) {
		return searchErr.Details
	}
	return nil
}

// IsConfigError reports whether err came from option resolution.
func IsConfigError(err error) bool {
	switch GetErrorCode(err) {
	case ErrMissingPattern, ErrEmptyPattern, ErrUnknownOption:
		return true
	}
	return false
}
