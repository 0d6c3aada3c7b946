// Package goal contains goal-related use cases.
package goal

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/habit-tracker/backend/internal/application/adapter"
	"github.com/habit-tracker/backend/internal/domain/entity"
)

// GoalOutput represents a single goal in use case responses.
type GoalOutput struct {
	ID         uuid.UUID
	Name       string
	Icon       string
	Positive   bool
	Points     int
	Order      int
	Active     bool
	CategoryID *uuid.UUID
}

func toGoalOutput(g *entity.Goal) *GoalOutput {
	return &GoalOutput{
		ID:         g.ID,
		Name:       g.Name,
		Icon:       g.Icon,
		Positive:   g.Positive,
		Points:     g.Points,
		Order:      g.Order,
		Active:     g.Active,
		CategoryID: g.CategoryID,
	}
}

// ListGoalsInput represents the input for the goal listing.
type ListGoalsInput struct {
	UserID uuid.UUID
}

// ListGoalsOutput represents the goal listing response.
type ListGoalsOutput struct {
	Goals []*GoalOutput
}

// ListGoalsUseCase lists the user's active goals in display order.
type ListGoalsUseCase struct {
	goalRepo adapter.GoalRepository
}

// NewListGoalsUseCase creates a new ListGoalsUseCase instance.
func NewListGoalsUseCase(goalRepo adapter.GoalRepository) *ListGoalsUseCase {
	return &ListGoalsUseCase{goalRepo: goalRepo}
}

// Execute performs the goal listing.
func (uc *ListGoalsUseCase) Execute(ctx context.Context, input ListGoalsInput) (*ListGoalsOutput, error) {
	goals, err := uc.goalRepo.FindActiveByUserID(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to list goals: %w", err)
	}

	output := make([]*GoalOutput, len(goals))
	for i, g := range goals {
		output[i] = toGoalOutput(g)
	}

	return &ListGoalsOutput{Goals: output}, nil
}
