// Package error defines domain-specific errors for the Habit Tracker application.
package error

import "errors"

// Category domain errors.
var (
	// ErrCategoryNotFound is returned when a category is not found or does not belong to the caller.
	ErrCategoryNotFound = errors.New("category not found")

	// ErrCategoryNameExists is returned when a category with the same name already exists for the user.
	ErrCategoryNameExists = errors.New("category name already exists")

	// ErrCategoryInUse is returned when deleting a category that still has goals assigned.
	ErrCategoryInUse = errors.New("category has goals assigned to it")

	// ErrMissingCategoryName is returned when a category is created without a name.
	ErrMissingCategoryName = errors.New("category name is required")

	// ErrInvalidCategoryColor is returned when the color is not a hex triplet.
	ErrInvalidCategoryColor = errors.New("invalid category color")
)

// CategoryErrorCode defines error codes for category errors.
// Format: CAT-XXYYYY where XX is category and YYYY is specific error.
type CategoryErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeCategoryNotFound     CategoryErrorCode = "CAT-010001"
	ErrCodeCategoryNameExists   CategoryErrorCode = "CAT-010002"
	ErrCodeCategoryInUse        CategoryErrorCode = "CAT-010003"
	ErrCodeMissingCategoryName  CategoryErrorCode = "CAT-010004"
	ErrCodeInvalidCategoryColor CategoryErrorCode = "CAT-010005"
)

// CategoryError represents a category error with code and message.
type CategoryError struct {
	Code    CategoryErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *CategoryError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *CategoryError) Unwrap() error {
	return e.Err
}

// NewCategoryError creates a new CategoryError with the given code and message.
func NewCategoryError(code CategoryErrorCode, message string, err error) *CategoryError {
	return &CategoryError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
