// Package error defines domain-specific errors for the Habit Tracker application.
package error

import "errors"

// Stats domain errors.
var (
	// ErrInvalidDateRange is returned when the end date precedes the start date.
	ErrInvalidDateRange = errors.New("end date must not be before start date")

	// ErrInvalidStatsDate is returned when a stats date parameter cannot be parsed.
	ErrInvalidStatsDate = errors.New("invalid date format, expected YYYY-MM-DD")
)

// StatsErrorCode defines error codes for statistics errors.
// Format: STA-XXYYYY where XX is category and YYYY is specific error.
type StatsErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidDateRange StatsErrorCode = "STA-010001"
	ErrCodeInvalidStatsDate StatsErrorCode = "STA-010002"
)

// StatsError represents a statistics error with code and message.
type StatsError struct {
	Code    StatsErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *StatsError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *StatsError) Unwrap() error {
	return e.Err
}

// NewStatsError creates a new StatsError with the given code and message.
func NewStatsError(code StatsErrorCode, message string, err error) *StatsError {
	return &StatsError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
