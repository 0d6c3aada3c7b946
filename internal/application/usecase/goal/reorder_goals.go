// Package goal contains goal-related use cases.
package goal

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/habit-tracker/backend/internal/application/adapter"
	domainerror "github.com/habit-tracker/backend/internal/domain/error"
)

// GoalOrderInput assigns a display order to one goal.
type GoalOrderInput struct {
	GoalID uuid.UUID
	Order  int
}

// ReorderGoalsInput represents the input for a bulk reorder.
type ReorderGoalsInput struct {
	UserID uuid.UUID
	Goals  []GoalOrderInput
}

// ReorderGoalsUseCase applies a client-supplied display order to a set of
// goals. The whole batch is rejected when any referenced goal is missing
// or foreign.
type ReorderGoalsUseCase struct {
	goalRepo adapter.GoalRepository
}

// NewReorderGoalsUseCase creates a new ReorderGoalsUseCase instance.
func NewReorderGoalsUseCase(goalRepo adapter.GoalRepository) *ReorderGoalsUseCase {
	return &ReorderGoalsUseCase{goalRepo: goalRepo}
}

// Execute performs the bulk reorder.
func (uc *ReorderGoalsUseCase) Execute(ctx context.Context, input ReorderGoalsInput) error {
	if len(input.Goals) == 0 {
		return nil
	}

	ids := make([]uuid.UUID, len(input.Goals))
	for i, g := range input.Goals {
		ids[i] = g.GoalID
	}

	owned, err := uc.goalRepo.FindByIDs(ctx, input.UserID, ids)
	if err != nil {
		return fmt.Errorf("failed to verify goal ownership: %w", err)
	}
	if len(owned) != len(ids) {
		return domainerror.NewGoalError(
			domainerror.ErrCodeInvalidGoalOrder,
			"some goals do not exist or do not belong to you",
			domainerror.ErrInvalidGoalOrder,
		)
	}

	for _, g := range input.Goals {
		if err := uc.goalRepo.UpdateOrder(ctx, g.GoalID, g.Order); err != nil {
			return fmt.Errorf("failed to reorder goal %s: %w", g.GoalID, err)
		}
	}

	return nil
}
