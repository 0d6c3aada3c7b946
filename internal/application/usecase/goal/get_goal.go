// Package goal contains goal-related use cases.
package goal

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/habit-tracker/backend/internal/application/adapter"
	domainerror "github.com/habit-tracker/backend/internal/domain/error"
)

// GetGoalInput represents the input for a single goal read.
type GetGoalInput struct {
	UserID uuid.UUID
	GoalID uuid.UUID
}

// GetGoalOutput represents the single goal response.
type GetGoalOutput struct {
	Goal *GoalOutput
}

// GetGoalUseCase retrieves a single goal owned by the caller.
type GetGoalUseCase struct {
	goalRepo adapter.GoalRepository
}

// NewGetGoalUseCase creates a new GetGoalUseCase instance.
func NewGetGoalUseCase(goalRepo adapter.GoalRepository) *GetGoalUseCase {
	return &GetGoalUseCase{goalRepo: goalRepo}
}

// Execute performs the single goal read.
func (uc *GetGoalUseCase) Execute(ctx context.Context, input GetGoalInput) (*GetGoalOutput, error) {
	goal, err := uc.goalRepo.FindByID(ctx, input.GoalID)
	if err != nil {
		return nil, fmt.Errorf("failed to find goal: %w", err)
	}
	if goal == nil || goal.UserID != input.UserID {
		return nil, domainerror.NewGoalError(
			domainerror.ErrCodeGoalNotFound,
			"goal not found",
			domainerror.ErrGoalNotFound,
		)
	}

	return &GetGoalOutput{Goal: toGoalOutput(goal)}, nil
}
