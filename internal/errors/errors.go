// Package errors provides consistent error types for Stardeck.
// UserError covers input the user can fix; SystemError covers storage and
// network failures the user cannot directly fix.
package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors for common conditions.
var (
	ErrInvalidTimeRange   = errors.New("start time must be before end time")
	ErrTimeOutOfRange     = errors.New("time of day must be between 0000 and 2359")
	ErrInvalidTime        = errors.New("invalid time of day")
	ErrEmptyDescription   = errors.New("description is required")
	ErrEmptyTask          = errors.New("task text is required")
	ErrInvalidID          = errors.New("invalid id")
	ErrInvalidDate        = errors.New("invalid date")
	ErrUnknownAction      = errors.New("unknown action")
	ErrMissingArgument    = errors.New("missing argument")
	ErrNetworkUnavailable = errors.New("network unavailable")
	ErrStorage            = errors.New("storage failure")
)

// UserError represents an error that the user can fix.
type UserError struct {
	Err        error  // Sentinel describing the condition
	Message    string // What happened
	Suggestion string // How to fix it
	Field      string // The input that caused the error (optional)
	Value      string // The rejected value (optional)
}

func (e *UserError) Error() string {
	if e.Field != "" && e.Value != "" {
		return fmt.Sprintf("%s: '%s'", e.Message, e.Value)
	}
	return e.Message
}

func (e *UserError) Unwrap() error {
	return e.Err
}

// NewUserError creates a UserError for a sentinel condition.
func NewUserError(err error, suggestion string) *UserError {
	return &UserError{
		Err:        err,
		Message:    err.Error(),
		Suggestion: suggestion,
	}
}

// NewUserErrorWithField creates a UserError carrying the rejected input.
func NewUserErrorWithField(err error, field, value, suggestion string) *UserError {
	return &UserError{
		Err:        err,
		Message:    err.Error(),
		Field:      field,
		Value:      value,
		Suggestion: suggestion,
	}
}

// SystemError represents a storage or network failure.
type SystemError struct {
	Message string // What happened
	Cause   error  // The underlying error
	Op      string // The operation that failed (optional)
}

func (e *SystemError) Error() string {
	msg := e.Message
	if e.Op != "" {
		msg = fmt.Sprintf("%s during %s", e.Message, e.Op)
	}
	if e.Cause != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Cause)
	}
	return msg
}

func (e *SystemError) Unwrap() error {
	return e.Cause
}

// NewSystemErrorWithOp creates a SystemError with operation context.
func NewSystemErrorWithOp(op, message string, cause error) *SystemError {
	return &SystemError{
		Message: message,
		Cause:   cause,
		Op:      op,
	}
}

// StorageError wraps a key-value backend failure.
func StorageError(op string, cause error) error {
	if cause == nil {
		return nil
	}
	return NewSystemErrorWithOp(op, ErrStorage.Error(), fmt.Errorf("%w: %w", ErrStorage, cause))
}

// IsUserError checks if an error is a UserError.
func IsUserError(err error) bool {
	var ue *UserError
	return errors.As(err, &ue)
}

// IsSystemError checks if an error is a SystemError.
func IsSystemError(err error) bool {
	var se *SystemError
	return errors.As(err, &se)
}

// AsUserError extracts a UserError from an error chain.
func AsUserError(err error) (*UserError, bool) {
	var ue *UserError
	ok := errors.As(err, &ue)
	return ue, ok
}

// Is is re-exported from the standard errors package.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// Wrap wraps an error with additional context.
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}
