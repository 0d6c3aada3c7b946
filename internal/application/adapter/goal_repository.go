// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/habit-tracker/backend/internal/domain/entity"
)

// GoalRepository defines the interface for goal persistence operations.
type GoalRepository interface {
	// Create creates a new goal in the database.
	Create(ctx context.Context, goal *entity.Goal) error

	// FindByID retrieves a goal by its ID, or nil when none exists.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Goal, error)

	// FindActiveByUserID retrieves the user's active goals ordered by display order.
	FindActiveByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.Goal, error)

	// FindByIDs retrieves the user's goals matching the given IDs.
	FindByIDs(ctx context.Context, userID uuid.UUID, ids []uuid.UUID) ([]*entity.Goal, error)

	// CountByUserID counts all goals belonging to a user.
	CountByUserID(ctx context.Context, userID uuid.UUID) (int64, error)

	// CountActiveByUserID counts the user's active goals.
	CountActiveByUserID(ctx context.Context, userID uuid.UUID) (int64, error)

	// CountByCategory counts the user's goals assigned to a category.
	CountByCategory(ctx context.Context, userID, categoryID uuid.UUID) (int64, error)

	// MaxOrder returns the highest display order among the user's goals,
	// or -1 when the user has none.
	MaxOrder(ctx context.Context, userID uuid.UUID) (int, error)

	// Update updates an existing goal in the database.
	Update(ctx context.Context, goal *entity.Goal) error

	// UpdateOrder sets the display order of a single goal.
	UpdateOrder(ctx context.Context, id uuid.UUID, order int) error

	// Delete removes a goal from the database.
	Delete(ctx context.Context, id uuid.UUID) error

	// CompactOrdersAfter decrements the display order of the user's goals
	// that follow the given position, closing the gap left by a delete.
	CompactOrdersAfter(ctx context.Context, userID uuid.UUID, order int) error
}
