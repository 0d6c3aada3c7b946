// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Check records the completion state of one goal on one calendar day.
// At most one Check exists per (user, goal, date); the date carries no
// meaningful time-of-day component and is always normalized to midnight
// UTC. A missing Check is equivalent to one with Completed = false.
type Check struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	GoalID    uuid.UUID
	Date      time.Time
	Completed bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewCheck creates a new Check entity for the given day, marked completed.
func NewCheck(userID, goalID uuid.UUID, date time.Time) *Check {
	now := time.Now().UTC()

	return &Check{
		ID:        uuid.New(),
		UserID:    userID,
		GoalID:    goalID,
		Date:      NormalizeDate(date),
		Completed: true,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Toggle flips the completion state of the check.
func (c *Check) Toggle() {
	c.Completed = !c.Completed
	c.UpdatedAt = time.Now().UTC()
}

// NormalizeDate truncates a timestamp to midnight UTC, the canonical
// representation of a calendar date throughout the system.
func NormalizeDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
