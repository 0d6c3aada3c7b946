// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// DefaultCategoryColor is the default color for categories.
const DefaultCategoryColor = "#3498db"

// Category groups a user's goals for display purposes. Category names are
// unique per user and carry a dense, user-scoped display order.
type Category struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Name      string
	Color     string
	Order     int
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewCategory creates a new Category entity placed at the given order position.
func NewCategory(userID uuid.UUID, name, color string, order int) *Category {
	now := time.Now().UTC()

	return &Category{
		ID:        uuid.New(),
		UserID:    userID,
		Name:      name,
		Color:     color,
		Order:     order,
		CreatedAt: now,
		UpdatedAt: now,
	}
}
