// Package errors provides structured error handling with typed error codes.
//
// Error codes are organized into categories:
//   - General errors (1-99): Unknown and general errors
//   - Validation errors (100-199): Client-side order validation failures
//   - Data/feed errors (200-299): Poll and fetch failures
//   - Session errors (300-399): Token session lifecycle errors
//   - Submission errors (500-599): Order submission and backend rejections
//
// Usage:
//
//	// Create a new error
//	err := errors.New(errors.ErrCodeInvalidQuantity, "quantity must be a whole number")
//
//	// Create a formatted error
//	err := errors.Newf(errors.ErrCodeInsufficientCash, "insufficient cash, max buy: %d", maxBuy)
//
//	// Wrap an existing error
//	err := errors.Wrap(errors.ErrCodeQuoteFetchFailed, "failed to fetch quote", originalErr)
//
//	// Check error code
//	if errors.HasCode(err, errors.ErrCodeOrderRejected) { ... }
package errors

import (
	"errors"
	"fmt"
)

// Error represents a structured error with an error code and message.
type Error struct {
	Code    ErrorCode
	Message string
	Cause   error
}

// New creates a new Error with the given code and message.
func New(code ErrorCode, message string) *Error {
	return &Error{
		Code:    code,
		Message: message,
		Cause:   nil,
	}
}

// Newf creates a new Error with the given code and formatted message.
func Newf(code ErrorCode, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Cause:   nil,
	}
}

// Wrap wraps an existing error with a new Error containing the given code and message.
func Wrap(code ErrorCode, message string, cause error) *Error {
	return &Error{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// Wrapf wraps an existing error with a new Error containing the given code and formatted message.
func Wrapf(code ErrorCode, cause error, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Cause:   cause,
	}
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%d] %s: %v", e.Code, e.Message, e.Cause)
	}

	return fmt.Sprintf("[%d] %s", e.Code, e.Message)
}

// Unwrap returns the underlying error cause.
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether any error in err's chain matches target.
// This is a convenience wrapper around the standard errors.Is function.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target.
// This is a convenience wrapper around the standard errors.As function.
func As(err error, target any) bool {
	return errors.As(err, target)
}

// GetCode extracts the ErrorCode from an error if it's an *Error type.
// Returns ErrCodeUnknown if the error is not an *Error type.
func GetCode(err error) ErrorCode {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}

	return ErrCodeUnknown
}

// HasCode checks if an error has a specific ErrorCode.
func HasCode(err error, code ErrorCode) bool {
	return GetCode(err) == code
}

// BackendError represents a non-2xx response from the trading backend.
// Detail carries the backend-provided message verbatim when present.
type BackendError struct {
	StatusCode int    // HTTP status of the response
	Detail     string // Backend "detail" field, may be empty
}

// NewBackendError creates a new BackendError.
func NewBackendError(statusCode int, detail string) *BackendError {
	return &BackendError{
		StatusCode: statusCode,
		Detail:     detail,
	}
}

// Error implements the error interface.
func (e *BackendError) Error() string {
	if e.Detail != "" {
		return e.Detail
	}

	return fmt.Sprintf("backend returned status %d", e.StatusCode)
}

// IsBackendError checks if an error is a BackendError.
// It uses errors.As to check the error chain.
func IsBackendError(err error) bool {
	var backendErr *BackendError

	return errors.As(err, &backendErr)
}

// BackendDetail extracts the backend detail message from an error chain.
// Returns the empty string when the error is not a BackendError or carries
// no detail.
func BackendDetail(err error) string {
	var backendErr *BackendError
	if errors.As(err, &backendErr) {
		return backendErr.Detail
	}

	return ""
}
