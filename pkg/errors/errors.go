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

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"

	// Sheet errors: the input spreadsheet is missing, unreadable,
	// in an unsupported format, or the requested column is absent.
	// Always fatal, raised before any copying starts.
	ErrInputFormat ErrorCode = "INPUT_FORMAT"

	// Access errors: fatal directory-level failures
	ErrSourceAccess ErrorCode = "SOURCE_ACCESS"
	ErrOutputAccess ErrorCode = "OUTPUT_ACCESS"
	ErrLockHeld     ErrorCode = "LOCK_HELD"
	ErrReportWrite  ErrorCode = "REPORT_WRITE"

	// Per-item errors: caught at the copier boundary and downgraded
	// to a logged outcome, never fatal.
	ErrCopyFailed ErrorCode = "COPY_FAILED"
)

// PickError represents a structured error with code and details
type PickError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *PickError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *PickError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *PickError) Is(target error) bool {
	var targetErr *PickError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new PickError with the given code and message
func New(code ErrorCode, message string) *PickError {
	return &PickError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new PickError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *PickError {
	return &PickError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a PickError
func Wrap(err error, code ErrorCode, message string) *PickError {
	if err == nil {
		return nil
	}
	return &PickError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *PickError {
	if err == nil {
		return nil
	}
	return &PickError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *PickError) WithDetail(key string, value interface{}) *PickError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var pickErr *PickError
	if errors.As(err, &pickErr) {
		return pickErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a PickError
func GetErrorCode(err error) ErrorCode {
	var pickErr *PickError
	if errors.As(err, &pickErr) {
		return pickErr.Code
	}
	return ErrUnknown
}

// IsFatal reports whether the error belongs to a category that must
// abort the run before (or instead of) producing a report.
func IsFatal(err error) bool {
	switch GetErrorCode(err) {
	case ErrInputFormat, ErrSourceAccess, ErrOutputAccess, ErrLockHeld,
		ErrReportWrite, ErrConfigLoad, ErrConfigParse:
		return true
	}
	return false
}
