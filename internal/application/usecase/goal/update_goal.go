// Package goal contains goal-related use cases.
package goal

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/habit-tracker/backend/internal/application/adapter"
	"github.com/habit-tracker/backend/internal/domain/entity"
	domainerror "github.com/habit-tracker/backend/internal/domain/error"
)

// UpdateGoalInput represents the input for goal update. Nil fields are
// left untouched.
type UpdateGoalInput struct {
	UserID     uuid.UUID
	GoalID     uuid.UUID
	Name       *string
	Icon       *string
	Positive   *bool
	Points     *int
	Active     *bool
	CategoryID *uuid.UUID
	// ClearCategory detaches the goal from its category. It wins over
	// CategoryID when both are set.
	ClearCategory bool
}

// UpdateGoalOutput represents the output of goal update.
type UpdateGoalOutput struct {
	Goal *GoalOutput
}

// UpdateGoalUseCase handles partial goal updates, including pausing and
// resuming via the active flag.
type UpdateGoalUseCase struct {
	goalRepo     adapter.GoalRepository
	categoryRepo adapter.CategoryRepository
}

// NewUpdateGoalUseCase creates a new UpdateGoalUseCase instance.
func NewUpdateGoalUseCase(goalRepo adapter.GoalRepository, categoryRepo adapter.CategoryRepository) *UpdateGoalUseCase {
	return &UpdateGoalUseCase{
		goalRepo:     goalRepo,
		categoryRepo: categoryRepo,
	}
}

// Execute performs the goal update.
func (uc *UpdateGoalUseCase) Execute(ctx context.Context, input UpdateGoalInput) (*UpdateGoalOutput, error) {
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

	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		if name == "" {
			return nil, domainerror.NewGoalError(
				domainerror.ErrCodeMissingGoalName,
				"goal name is required",
				domainerror.ErrMissingGoalName,
			)
		}
		goal.Name = name
	}

	if input.Icon != nil {
		goal.Icon = *input.Icon
	}

	if input.Positive != nil {
		goal.Positive = *input.Positive
	}

	if input.Points != nil {
		if *input.Points < entity.MinGoalPoints || *input.Points > entity.MaxGoalPoints {
			return nil, domainerror.NewGoalError(
				domainerror.ErrCodeInvalidGoalPoints,
				fmt.Sprintf("points must be between %d and %d", entity.MinGoalPoints, entity.MaxGoalPoints),
				domainerror.ErrInvalidGoalPoints,
			)
		}
		goal.Points = *input.Points
	}

	if input.Active != nil {
		goal.Active = *input.Active
	}

	if input.ClearCategory {
		goal.CategoryID = nil
	} else if input.CategoryID != nil {
		category, err := uc.categoryRepo.FindByID(ctx, *input.CategoryID)
		if err != nil {
			return nil, fmt.Errorf("failed to find category: %w", err)
		}
		if category == nil || category.UserID != input.UserID {
			return nil, domainerror.NewGoalError(
				domainerror.ErrCodeGoalCategoryNotFound,
				"category not found",
				domainerror.ErrGoalCategoryNotFound,
			)
		}
		goal.CategoryID = input.CategoryID
	}

	goal.UpdatedAt = time.Now().UTC()

	if err := uc.goalRepo.Update(ctx, goal); err != nil {
		return nil, fmt.Errorf("failed to update goal: %w", err)
	}

	return &UpdateGoalOutput{Goal: toGoalOutput(goal)}, nil
}
