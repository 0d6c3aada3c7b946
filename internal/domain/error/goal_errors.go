// Package error defines domain-specific errors for the Habit Tracker application.
package error

import "errors"

// Goal domain errors.
var (
	// ErrGoalNotFound is returned when a goal is not found or does not belong to the caller.
	ErrGoalNotFound = errors.New("goal not found")

	// ErrInvalidGoalPoints is returned when the point value is outside the allowed range.
	ErrInvalidGoalPoints = errors.New("invalid goal points")

	// ErrMissingGoalName is returned when a goal is created without a name.
	ErrMissingGoalName = errors.New("goal name is required")

	// ErrGoalCategoryNotFound is returned when the category for a goal is not found.
	ErrGoalCategoryNotFound = errors.New("category not found")

	// ErrInvalidGoalOrder is returned when a reorder request references foreign or unknown goals.
	ErrInvalidGoalOrder = errors.New("some goals do not exist or do not belong to you")
)

// GoalErrorCode defines error codes for goal errors.
// Format: GOL-XXYYYY where XX is category and YYYY is specific error.
type GoalErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeGoalNotFound         GoalErrorCode = "GOL-010001"
	ErrCodeInvalidGoalPoints    GoalErrorCode = "GOL-010002"
	ErrCodeMissingGoalName      GoalErrorCode = "GOL-010003"
	ErrCodeGoalCategoryNotFound GoalErrorCode = "GOL-010004"
	ErrCodeInvalidGoalOrder     GoalErrorCode = "GOL-010005"
	ErrCodeMissingGoalFields    GoalErrorCode = "GOL-010006"
)

// GoalError represents a goal error with code and message.
type GoalError struct {
	Code    GoalErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *GoalError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *GoalError) Unwrap() error {
	return e.Err
}

// NewGoalError creates a new GoalError with the given code and message.
func NewGoalError(code GoalErrorCode, message string, err error) *GoalError {
	return &GoalError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
