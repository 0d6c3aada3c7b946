// Package goal contains goal-related use cases.
package goal

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/habit-tracker/backend/internal/application/adapter"
	domainerror "github.com/habit-tracker/backend/internal/domain/error"
)

// DeleteGoalInput represents the input for goal deletion.
type DeleteGoalInput struct {
	UserID uuid.UUID
	GoalID uuid.UUID
}

// DeleteGoalUseCase removes a goal and closes the gap it leaves in the
// display order. Checks referencing the goal are kept: they still count
// toward daily completed totals, they just stop carrying points.
type DeleteGoalUseCase struct {
	goalRepo    adapter.GoalRepository
	scoresCache adapter.ScoresCache
}

// NewDeleteGoalUseCase creates a new DeleteGoalUseCase instance.
// scoresCache may be nil when score caching is disabled.
func NewDeleteGoalUseCase(goalRepo adapter.GoalRepository, scoresCache adapter.ScoresCache) *DeleteGoalUseCase {
	return &DeleteGoalUseCase{
		goalRepo:    goalRepo,
		scoresCache: scoresCache,
	}
}

// Execute performs the goal deletion.
func (uc *DeleteGoalUseCase) Execute(ctx context.Context, input DeleteGoalInput) error {
	goal, err := uc.goalRepo.FindByID(ctx, input.GoalID)
	if err != nil {
		return fmt.Errorf("failed to find goal: %w", err)
	}
	if goal == nil || goal.UserID != input.UserID {
		return domainerror.NewGoalError(
			domainerror.ErrCodeGoalNotFound,
			"goal not found",
			domainerror.ErrGoalNotFound,
		)
	}

	if err := uc.goalRepo.Delete(ctx, goal.ID); err != nil {
		return fmt.Errorf("failed to delete goal: %w", err)
	}

	if err := uc.goalRepo.CompactOrdersAfter(ctx, input.UserID, goal.Order); err != nil {
		return fmt.Errorf("failed to compact goal orders: %w", err)
	}

	if uc.scoresCache != nil {
		if err := uc.scoresCache.InvalidateUser(ctx, input.UserID); err != nil {
			slog.Warn("scores cache invalidation failed", "user_id", input.UserID, "error", err)
		}
	}

	return nil
}
