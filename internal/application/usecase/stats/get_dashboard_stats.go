// Package stats contains statistics-related use cases.
package stats

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/habit-tracker/backend/internal/application/adapter"
	"github.com/habit-tracker/backend/internal/domain/entity"
)

// completionWindowDays is the size of the trailing window used for the
// dashboard completion rate.
const completionWindowDays = 30

// milestoneInterval is the streak length granularity at which a new best
// streak triggers a congratulation email.
const milestoneInterval = 7

// GetDashboardStatsInput represents the input for the dashboard stats read.
type GetDashboardStatsInput struct {
	UserID uuid.UUID
}

// GetDashboardStatsOutput represents the dashboard stats response.
type GetDashboardStatsOutput struct {
	TotalGoals     int64
	ActiveGoals    int64
	CurrentStreak  int
	LongestStreak  int
	CompletionRate float64
}

// GetDashboardStatsUseCase composes goal counts, the aggregate streak, the
// streak high-water mark, and the 30-day completion rate. It is the only
// stats read that mutates state: a current streak exceeding the stored
// high-water mark is persisted as the new best.
type GetDashboardStatsUseCase struct {
	goalRepo     adapter.GoalRepository
	checkRepo    adapter.CheckRepository
	streakRepo   adapter.StreakRecordRepository
	userRepo     adapter.UserRepository
	emailService adapter.EmailService
	clock        adapter.Clock
	lookbackDays int
}

// NewGetDashboardStatsUseCase creates a new GetDashboardStatsUseCase instance.
// emailService may be nil when milestone notifications are disabled.
func NewGetDashboardStatsUseCase(
	goalRepo adapter.GoalRepository,
	checkRepo adapter.CheckRepository,
	streakRepo adapter.StreakRecordRepository,
	userRepo adapter.UserRepository,
	emailService adapter.EmailService,
	clock adapter.Clock,
	lookbackDays int,
) *GetDashboardStatsUseCase {
	if lookbackDays <= 0 {
		lookbackDays = DefaultStreakLookbackDays
	}
	return &GetDashboardStatsUseCase{
		goalRepo:     goalRepo,
		checkRepo:    checkRepo,
		streakRepo:   streakRepo,
		userRepo:     userRepo,
		emailService: emailService,
		clock:        clock,
		lookbackDays: lookbackDays,
	}
}

// Execute performs the dashboard stats read.
func (uc *GetDashboardStatsUseCase) Execute(ctx context.Context, input GetDashboardStatsInput) (*GetDashboardStatsOutput, error) {
	today := entity.NormalizeDate(uc.clock.Now())

	totalGoals, err := uc.goalRepo.CountByUserID(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to count goals: %w", err)
	}

	activeGoals, err := uc.goalRepo.FindActiveByUserID(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to list active goals: %w", err)
	}

	completionRate, err := uc.completionRate(ctx, input.UserID, activeGoals, today)
	if err != nil {
		return nil, fmt.Errorf("failed to compute completion rate: %w", err)
	}

	// Streak computation is advisory: any failure degrades to 0 rather
	// than failing the dashboard read.
	current, err := uc.aggregateStreak(ctx, input.UserID, activeGoals, today)
	if err != nil {
		slog.Error("aggregate streak computation failed",
			"user_id", input.UserID,
			"error", err,
		)
		current = 0
	}

	best, err := uc.streakRepo.BestValue(ctx, input.UserID, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to read best streak: %w", err)
	}

	if current > best {
		record := entity.NewStreakRecord(input.UserID, nil, current, today)
		if err := uc.streakRepo.UpsertIfGreater(ctx, record); err != nil {
			return nil, fmt.Errorf("failed to record best streak: %w", err)
		}
		best = current
		uc.notifyMilestone(ctx, input.UserID, current, today)
	}

	return &GetDashboardStatsOutput{
		TotalGoals:     totalGoals,
		ActiveGoals:    int64(len(activeGoals)),
		CurrentStreak:  current,
		LongestStreak:  best,
		CompletionRate: completionRate,
	}, nil
}

// completionRate computes the percentage of possible checks completed over
// the trailing 30 days, rounded to one decimal place. Zero active goals
// yield a rate of 0.
func (uc *GetDashboardStatsUseCase) completionRate(ctx context.Context, userID uuid.UUID, activeGoals []*entity.Goal, today time.Time) (float64, error) {
	if len(activeGoals) == 0 {
		return 0, nil
	}

	goalIDs := make([]uuid.UUID, len(activeGoals))
	for i, g := range activeGoals {
		goalIDs[i] = g.ID
	}

	windowStart := today.AddDate(0, 0, -completionWindowDays)
	completed, err := uc.checkRepo.CountCompletedForGoals(ctx, userID, goalIDs, windowStart, today)
	if err != nil {
		return 0, err
	}

	possible := int64(len(activeGoals) * completionWindowDays)
	rate := decimal.NewFromInt(completed).
		Mul(decimal.NewFromInt(100)).
		Div(decimal.NewFromInt(possible)).
		Round(1)

	return rate.InexactFloat64(), nil
}

// aggregateStreak computes the user's all-goals streak: a day counts when
// its completed check count reaches the number of currently active goals.
// All completed checks inside the lookback window are fetched in one query
// and the backward walk runs against the in-memory per-day counts.
func (uc *GetDashboardStatsUseCase) aggregateStreak(ctx context.Context, userID uuid.UUID, activeGoals []*entity.Goal, today time.Time) (int, error) {
	if len(activeGoals) == 0 {
		return 0, nil
	}

	windowStart := today.AddDate(0, 0, -uc.lookbackDays)
	checks, err := uc.checkRepo.FindCompletedByDateRange(ctx, userID, windowStart, today)
	if err != nil {
		return 0, err
	}

	completedByDay := make(map[string]int)
	for _, c := range checks {
		completedByDay[c.Date.Format(dateLayout)]++
	}

	required := len(activeGoals)
	allGoalsComplete := func(_ context.Context, day time.Time) (bool, error) {
		return completedByDay[day.Format(dateLayout)] >= required, nil
	}

	return currentStreak(ctx, today, allGoalsComplete, uc.lookbackDays)
}

// notifyMilestone queues a congratulation email when the new best streak
// lands on a milestone. Failures are logged, never surfaced: the dashboard
// read must not depend on the notification pipeline.
func (uc *GetDashboardStatsUseCase) notifyMilestone(ctx context.Context, userID uuid.UUID, streak int, today time.Time) {
	if uc.emailService == nil || streak%milestoneInterval != 0 {
		return
	}

	user, err := uc.userRepo.FindByID(ctx, userID)
	if err != nil {
		slog.Error("failed to load user for streak milestone email",
			"user_id", userID,
			"error", err,
		)
		return
	}
	if !user.EmailNotifications {
		return
	}

	err = uc.emailService.QueueStreakMilestoneEmail(ctx, adapter.QueueStreakMilestoneInput{
		UserEmail:  user.Email,
		UserName:   user.Name,
		StreakDays: streak,
		ObservedOn: today.Format(dateLayout),
	})
	if err != nil {
		slog.Error("failed to queue streak milestone email",
			"user_id", userID,
			"streak", streak,
			"error", err,
		)
	}
}
