// Package goal contains goal-related use cases.
package goal

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/habit-tracker/backend/internal/application/adapter"
	"github.com/habit-tracker/backend/internal/domain/entity"
	domainerror "github.com/habit-tracker/backend/internal/domain/error"
)

// MaxGoalNameLength is the maximum allowed length for goal names.
const MaxGoalNameLength = 100

// CreateGoalInput represents the input for goal creation.
type CreateGoalInput struct {
	UserID     uuid.UUID
	Name       string
	Icon       *string    // Optional, defaults to check-circle
	Positive   *bool      // Optional, defaults to true
	Points     *int       // Optional, defaults to 1
	CategoryID *uuid.UUID // Optional
}

// CreateGoalOutput represents the output of goal creation.
type CreateGoalOutput struct {
	Goal *GoalOutput
}

// CreateGoalUseCase handles goal creation logic. New goals are appended at
// the end of the user's display order.
type CreateGoalUseCase struct {
	goalRepo     adapter.GoalRepository
	categoryRepo adapter.CategoryRepository
}

// NewCreateGoalUseCase creates a new CreateGoalUseCase instance.
func NewCreateGoalUseCase(goalRepo adapter.GoalRepository, categoryRepo adapter.CategoryRepository) *CreateGoalUseCase {
	return &CreateGoalUseCase{
		goalRepo:     goalRepo,
		categoryRepo: categoryRepo,
	}
}

// Execute performs the goal creation.
func (uc *CreateGoalUseCase) Execute(ctx context.Context, input CreateGoalInput) (*CreateGoalOutput, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, domainerror.NewGoalError(
			domainerror.ErrCodeMissingGoalName,
			"goal name is required",
			domainerror.ErrMissingGoalName,
		)
	}
	if len(name) > MaxGoalNameLength {
		return nil, domainerror.NewGoalError(
			domainerror.ErrCodeMissingGoalFields,
			fmt.Sprintf("goal name must not exceed %d characters", MaxGoalNameLength),
			domainerror.ErrMissingGoalName,
		)
	}

	// Apply defaults
	icon := entity.DefaultGoalIcon
	if input.Icon != nil && *input.Icon != "" {
		icon = *input.Icon
	}

	positive := true
	if input.Positive != nil {
		positive = *input.Positive
	}

	points := entity.MinGoalPoints
	if input.Points != nil {
		points = *input.Points
	}
	if points < entity.MinGoalPoints || points > entity.MaxGoalPoints {
		return nil, domainerror.NewGoalError(
			domainerror.ErrCodeInvalidGoalPoints,
			fmt.Sprintf("points must be between %d and %d", entity.MinGoalPoints, entity.MaxGoalPoints),
			domainerror.ErrInvalidGoalPoints,
		)
	}

	// Validate category ownership if provided
	if input.CategoryID != nil {
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
	}

	// Place the new goal at the end of the display order
	maxOrder, err := uc.goalRepo.MaxOrder(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to determine goal order: %w", err)
	}

	goal := entity.NewGoal(input.UserID, name, icon, positive, points, maxOrder+1, input.CategoryID)

	if err := uc.goalRepo.Create(ctx, goal); err != nil {
		return nil, fmt.Errorf("failed to create goal: %w", err)
	}

	return &CreateGoalOutput{Goal: toGoalOutput(goal)}, nil
}
