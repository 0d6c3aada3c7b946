// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/habit-tracker/backend/internal/domain/entity"
)

// CategoryRepository defines the interface for category persistence operations.
type CategoryRepository interface {
	// Create creates a new category in the database.
	Create(ctx context.Context, category *entity.Category) error

	// FindByID retrieves a category by its ID, or nil when none exists.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Category, error)

	// FindByUserID retrieves all categories for a user ordered by display order.
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.Category, error)

	// ExistsByUserAndName checks if the user already has a category with the given name.
	ExistsByUserAndName(ctx context.Context, userID uuid.UUID, name string) (bool, error)

	// MaxOrder returns the highest display order among the user's categories,
	// or -1 when the user has none.
	MaxOrder(ctx context.Context, userID uuid.UUID) (int, error)

	// Update updates an existing category in the database.
	Update(ctx context.Context, category *entity.Category) error

	// Delete removes a category from the database.
	Delete(ctx context.Context, id uuid.UUID) error

	// CompactOrdersAfter decrements the display order of the user's categories
	// that follow the given position, closing the gap left by a delete.
	CompactOrdersAfter(ctx context.Context, userID uuid.UUID, order int) error
}
