// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/habit-tracker/backend/internal/domain/entity"
)

// CheckRepository defines the interface for check persistence operations.
// All dates are calendar dates normalized to midnight UTC.
type CheckRepository interface {
	// Create creates a new check in the database.
	Create(ctx context.Context, check *entity.Check) error

	// FindByID retrieves a check by its ID scoped to the owning user,
	// or nil when none exists.
	FindByID(ctx context.Context, userID, id uuid.UUID) (*entity.Check, error)

	// FindByGoalAndDate retrieves the check for one goal on one day,
	// or nil when none exists.
	FindByGoalAndDate(ctx context.Context, userID, goalID uuid.UUID, date time.Time) (*entity.Check, error)

	// FindByDateRange retrieves the user's checks with date in [start, end].
	FindByDateRange(ctx context.Context, userID uuid.UUID, start, end time.Time) ([]*entity.Check, error)

	// FindCompletedByDateRange retrieves the user's completed checks with
	// date in [start, end].
	FindCompletedByDateRange(ctx context.Context, userID uuid.UUID, start, end time.Time) ([]*entity.Check, error)

	// CountCompletedForGoals counts completed checks in [start, end] that
	// reference one of the given goals.
	CountCompletedForGoals(ctx context.Context, userID uuid.UUID, goalIDs []uuid.UUID, start, end time.Time) (int64, error)

	// Update updates an existing check in the database.
	Update(ctx context.Context, check *entity.Check) error

	// Delete removes a check from the database.
	Delete(ctx context.Context, id uuid.UUID) error
}
