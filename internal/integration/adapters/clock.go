// Package adapters implements adapter interfaces from the application layer.
package adapters

import (
	"time"

	"github.com/habit-tracker/backend/internal/application/adapter"
)

// systemClock implements the adapter.Clock interface with the system time.
type systemClock struct{}

// NewSystemClock creates a clock backed by the system time.
func NewSystemClock() adapter.Clock {
	return &systemClock{}
}

// Now returns the current instant in UTC.
func (systemClock) Now() time.Time {
	return time.Now().UTC()
}
