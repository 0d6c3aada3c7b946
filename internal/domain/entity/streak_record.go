// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// StreakRecord is the durable high-water mark for a streak: the longest
// streak ever observed for a user, either across all goals (GoalID nil)
// or for a single goal. Records are only ever updated to a strictly
// greater value, so the stored value is monotonically non-decreasing.
type StreakRecord struct {
	ID         uuid.UUID
	UserID     uuid.UUID
	GoalID     *uuid.UUID
	Value      int
	ObservedAt time.Time
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// NewStreakRecord creates a new StreakRecord observed on the given day.
func NewStreakRecord(userID uuid.UUID, goalID *uuid.UUID, value int, observedAt time.Time) *StreakRecord {
	now := time.Now().UTC()

	return &StreakRecord{
		ID:         uuid.New(),
		UserID:     userID,
		GoalID:     goalID,
		Value:      value,
		ObservedAt: NormalizeDate(observedAt),
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}
