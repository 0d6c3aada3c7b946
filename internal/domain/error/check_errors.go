// Package error defines domain-specific errors for the Habit Tracker application.
package error

import "errors"

// Check domain errors.
var (
	// ErrCheckNotFound is returned when a check is not found or does not belong to the caller.
	ErrCheckNotFound = errors.New("check not found")

	// ErrCheckGoalNotFound is returned when toggling a check for a goal the caller does not own.
	ErrCheckGoalNotFound = errors.New("goal not found")

	// ErrInvalidCheckDate is returned when a check date cannot be parsed.
	ErrInvalidCheckDate = errors.New("invalid check date")
)

// CheckErrorCode defines error codes for check errors.
// Format: CHK-XXYYYY where XX is category and YYYY is specific error.
type CheckErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeCheckNotFound     CheckErrorCode = "CHK-010001"
	ErrCodeCheckGoalNotFound CheckErrorCode = "CHK-010002"
	ErrCodeInvalidCheckDate  CheckErrorCode = "CHK-010003"
)

// CheckError represents a check error with code and message.
type CheckError struct {
	Code    CheckErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *CheckError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *CheckError) Unwrap() error {
	return e.Err
}

// NewCheckError creates a new CheckError with the given code and message.
func NewCheckError(code CheckErrorCode, message string, err error) *CheckError {
	return &CheckError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
