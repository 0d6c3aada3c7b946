// Package check contains check-related use cases.
package check

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/habit-tracker/backend/internal/application/adapter"
	"github.com/habit-tracker/backend/internal/domain/entity"
	domainerror "github.com/habit-tracker/backend/internal/domain/error"
)

// CheckOutput represents a single check in use case responses.
type CheckOutput struct {
	ID        uuid.UUID
	GoalID    uuid.UUID
	Date      string
	Completed bool
}

// ToggleCheckInput represents the input for a check toggle.
type ToggleCheckInput struct {
	UserID uuid.UUID
	GoalID uuid.UUID
	Date   time.Time
}

// ToggleCheckOutput represents the output of a check toggle.
type ToggleCheckOutput struct {
	Check *CheckOutput
}

// ToggleCheckUseCase flips the check for a goal on a day: an existing check
// has its completed flag inverted, a missing one is created completed. The
// unique (user, goal, date) index keeps concurrent toggles from producing
// duplicates.
type ToggleCheckUseCase struct {
	checkRepo   adapter.CheckRepository
	goalRepo    adapter.GoalRepository
	scoresCache adapter.ScoresCache
}

// NewToggleCheckUseCase creates a new ToggleCheckUseCase instance.
// scoresCache may be nil when score caching is disabled.
func NewToggleCheckUseCase(checkRepo adapter.CheckRepository, goalRepo adapter.GoalRepository, scoresCache adapter.ScoresCache) *ToggleCheckUseCase {
	return &ToggleCheckUseCase{
		checkRepo:   checkRepo,
		goalRepo:    goalRepo,
		scoresCache: scoresCache,
	}
}

// Execute performs the check toggle.
func (uc *ToggleCheckUseCase) Execute(ctx context.Context, input ToggleCheckInput) (*ToggleCheckOutput, error) {
	goal, err := uc.goalRepo.FindByID(ctx, input.GoalID)
	if err != nil || goal == nil || goal.UserID != input.UserID {
		return nil, domainerror.NewCheckError(
			domainerror.ErrCodeCheckGoalNotFound,
			"goal not found",
			domainerror.ErrCheckGoalNotFound,
		)
	}

	date := entity.NormalizeDate(input.Date)

	check, err := uc.checkRepo.FindByGoalAndDate(ctx, input.UserID, input.GoalID, date)
	if err != nil {
		return nil, fmt.Errorf("failed to look up check: %w", err)
	}

	if check != nil {
		check.Toggle()
		if err := uc.checkRepo.Update(ctx, check); err != nil {
			return nil, fmt.Errorf("failed to update check: %w", err)
		}
	} else {
		check = entity.NewCheck(input.UserID, input.GoalID, date)
		if err := uc.checkRepo.Create(ctx, check); err != nil {
			return nil, fmt.Errorf("failed to create check: %w", err)
		}
	}

	uc.invalidateScores(ctx, input.UserID)

	return &ToggleCheckOutput{
		Check: &CheckOutput{
			ID:        check.ID,
			GoalID:    check.GoalID,
			Date:      check.Date.Format("2006-01-02"),
			Completed: check.Completed,
		},
	}, nil
}

// invalidateScores drops cached score ranges after a ledger mutation,
// best-effort.
func (uc *ToggleCheckUseCase) invalidateScores(ctx context.Context, userID uuid.UUID) {
	if uc.scoresCache == nil {
		return
	}
	if err := uc.scoresCache.InvalidateUser(ctx, userID); err != nil {
		slog.Warn("scores cache invalidation failed", "user_id", userID, "error", err)
	}
}
