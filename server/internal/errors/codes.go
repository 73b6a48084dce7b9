// Package errors defines the coded error type shared by the API layer.
package errors

import (
	"fmt"
)

// ErrorCode represents a specific error type for API operations.
type ErrorCode string

const (
	// ErrCodeInvalidArgument indicates the caller omitted or malformed a required field.
	ErrCodeInvalidArgument ErrorCode = "INVALID_ARGUMENT"
	// ErrCodeContentRejected indicates the content policy blocked the text.
	// This is a normal outcome, not a system failure.
	ErrCodeContentRejected ErrorCode = "CONTENT_REJECTED"
	// ErrCodeNotFound indicates the referenced entity is absent from the store.
	ErrCodeNotFound ErrorCode = "NOT_FOUND"
	// ErrCodeUpstreamUnavailable indicates the generation service did not respond
	// or returned malformed data. Always recovered locally, never user-visible.
	ErrCodeUpstreamUnavailable ErrorCode = "UPSTREAM_UNAVAILABLE"
	// ErrCodeInternal indicates an unexpected server failure.
	ErrCodeInternal ErrorCode = "INTERNAL"
)

// APIError represents a structured error for API operations.
type APIError struct {
	Code ErrorCode
	// Message is the developer-facing description.
	Message string
	// Guidance is the child-appropriate text shown to the end user, if any.
	Guidance string
	Cause    error
}

// Error implements the error interface.
func (e *APIError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause.
func (e *APIError) Unwrap() error {
	return e.Cause
}

// InvalidArgument creates an invalid argument error.
func InvalidArgument(msg string) *APIError {
	return &APIError{Code: ErrCodeInvalidArgument, Message: msg}
}

// InvalidArgumentf creates an invalid argument error with formatting.
func InvalidArgumentf(format string, args ...any) *APIError {
	return &APIError{Code: ErrCodeInvalidArgument, Message: fmt.Sprintf(format, args...)}
}

// ContentRejected creates a content policy rejection with guidance text.
func ContentRejected(msg, guidance string) *APIError {
	return &APIError{Code: ErrCodeContentRejected, Message: msg, Guidance: guidance}
}

// NotFound creates a not found error.
func NotFound(msg string) *APIError {
	return &APIError{Code: ErrCodeNotFound, Message: msg}
}

// UpstreamUnavailable creates an upstream unavailable error.
func UpstreamUnavailable(msg string, cause error) *APIError {
	return &APIError{Code: ErrCodeUpstreamUnavailable, Message: msg, Cause: cause}
}

// Internal creates an internal error.
func Internal(msg string, cause error) *APIError {
	return &APIError{Code: ErrCodeInternal, Message: msg, Cause: cause}
}

// IsCode checks if an error is of a specific code.
func IsCode(err error, code ErrorCode) bool {
	if apiErr, ok := err.(*APIError); ok {
		return apiErr.Code == code
	}
	return false
}

// CodeOf extracts the error code from any error.
// Returns ErrCodeInternal if the error is not an APIError.
func CodeOf(err error) ErrorCode {
	if apiErr, ok := err.(*APIError); ok {
		return apiErr.Code
	}
	return ErrCodeInternal
}
