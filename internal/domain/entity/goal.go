// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

const (
	// MinGoalPoints is the lowest point value a goal may carry.
	MinGoalPoints = 1
	// MaxGoalPoints is the highest point value a goal may carry.
	MaxGoalPoints = 5
)

// DefaultGoalIcon is the default icon for goals.
const DefaultGoalIcon = "check-circle"

// Goal represents a daily habit goal in the Habit Tracker system.
// Positive goals add their points to the daily score when completed;
// negative goals subtract them. Inactive goals are excluded from streak
// and score computations but keep their historical checks.
type Goal struct {
	ID         uuid.UUID
	UserID     uuid.UUID
	Name       string
	Icon       string
	Positive   bool
	Points     int
	Order      int
	Active     bool
	CategoryID *uuid.UUID
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// NewGoal creates a new Goal entity placed at the given order position.
func NewGoal(userID uuid.UUID, name, icon string, positive bool, points, order int, categoryID *uuid.UUID) *Goal {
	now := time.Now().UTC()

	return &Goal{
		ID:         uuid.New(),
		UserID:     userID,
		Name:       name,
		Icon:       icon,
		Positive:   positive,
		Points:     points,
		Order:      order,
		Active:     true,
		CategoryID: categoryID,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

// ScoreWeight returns the signed score contribution of one completed check.
func (g *Goal) ScoreWeight() int {
	if g.Positive {
		return g.Points
	}
	return -g.Points
}
