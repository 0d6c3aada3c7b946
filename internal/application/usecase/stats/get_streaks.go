// Package stats contains statistics-related use cases.
package stats

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/habit-tracker/backend/internal/application/adapter"
	"github.com/habit-tracker/backend/internal/domain/entity"
)

// GetStreaksInput represents the input for the per-goal streaks read.
type GetStreaksInput struct {
	UserID uuid.UUID
}

// GoalStreakOutput represents the streak state of a single goal.
type GoalStreakOutput struct {
	GoalID        uuid.UUID
	GoalName      string
	CurrentStreak int
	LongestStreak int
}

// GetStreaksOutput represents the per-goal streaks response.
type GetStreaksOutput struct {
	Streaks []*GoalStreakOutput
}

// GetStreaksUseCase computes the current and best-ever streak for every
// active goal. Goals are evaluated concurrently; a failure on one goal
// degrades that entry to 0 instead of failing the batch, matching the
// advisory error policy of streak computation. This path never writes
// high-water marks: only the dashboard read does.
type GetStreaksUseCase struct {
	goalRepo   adapter.GoalRepository
	checkRepo  adapter.CheckRepository
	streakRepo adapter.StreakRecordRepository
	clock      adapter.Clock
}

// NewGetStreaksUseCase creates a new GetStreaksUseCase instance.
func NewGetStreaksUseCase(
	goalRepo adapter.GoalRepository,
	checkRepo adapter.CheckRepository,
	streakRepo adapter.StreakRecordRepository,
	clock adapter.Clock,
) *GetStreaksUseCase {
	return &GetStreaksUseCase{
		goalRepo:   goalRepo,
		checkRepo:  checkRepo,
		streakRepo: streakRepo,
		clock:      clock,
	}
}

// Execute performs the per-goal streaks read.
func (uc *GetStreaksUseCase) Execute(ctx context.Context, input GetStreaksInput) (*GetStreaksOutput, error) {
	goals, err := uc.goalRepo.FindActiveByUserID(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to list active goals: %w", err)
	}

	today := entity.NormalizeDate(uc.clock.Now())
	streaks := make([]*GoalStreakOutput, len(goals))

	var wg sync.WaitGroup
	for i, g := range goals {
		wg.Add(1)
		go func(i int, g *entity.Goal) {
			defer wg.Done()
			streaks[i] = uc.goalStreak(ctx, input.UserID, g, today)
		}(i, g)
	}
	wg.Wait()

	return &GetStreaksOutput{Streaks: streaks}, nil
}

// goalStreak computes the streak entry for one goal, degrading each value
// to 0 on error.
func (uc *GetStreaksUseCase) goalStreak(ctx context.Context, userID uuid.UUID, goal *entity.Goal, today time.Time) *GoalStreakOutput {
	goalComplete := func(ctx context.Context, day time.Time) (bool, error) {
		check, err := uc.checkRepo.FindByGoalAndDate(ctx, userID, goal.ID, day)
		if err != nil {
			return false, err
		}
		return check != nil && check.Completed, nil
	}

	current, err := currentStreak(ctx, today, goalComplete, 0)
	if err != nil {
		slog.Error("goal streak computation failed",
			"user_id", userID,
			"goal_id", goal.ID,
			"error", err,
		)
		current = 0
	}

	best, err := uc.streakRepo.BestValue(ctx, userID, &goal.ID)
	if err != nil {
		slog.Error("failed to read best goal streak",
			"user_id", userID,
			"goal_id", goal.ID,
			"error", err,
		)
		best = 0
	}

	return &GoalStreakOutput{
		GoalID:        goal.ID,
		GoalName:      goal.Name,
		CurrentStreak: current,
		LongestStreak: best,
	}
}
