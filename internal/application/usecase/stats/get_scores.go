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
	domainerror "github.com/habit-tracker/backend/internal/domain/error"
)

// GetScoresInput represents the input for the scores read.
type GetScoresInput struct {
	UserID    uuid.UUID
	StartDate time.Time
	EndDate   time.Time
}

// ScoreEntry represents the score of a single day.
type ScoreEntry struct {
	Date           string
	Value          int
	CompletedCount int
	TotalCount     int
}

// GetScoresOutput represents the scores response.
type GetScoresOutput struct {
	Start  string
	End    string
	Scores []ScoreEntry
}

// GetScoresUseCase produces one entry per day in a closed date range: the
// day's signed point total, its completed check count, and the number of
// currently active goals. The active goal count is evaluated once and
// applied uniformly across the range, a deliberate approximation that
// ignores goals activated or deactivated mid-range. Results are cached per
// (user, range) until the user's checks change.
type GetScoresUseCase struct {
	goalRepo  adapter.GoalRepository
	checkRepo adapter.CheckRepository
	cache     adapter.ScoresCache
}

// NewGetScoresUseCase creates a new GetScoresUseCase instance.
// cache may be nil when score caching is disabled.
func NewGetScoresUseCase(goalRepo adapter.GoalRepository, checkRepo adapter.CheckRepository, cache adapter.ScoresCache) *GetScoresUseCase {
	return &GetScoresUseCase{
		goalRepo:  goalRepo,
		checkRepo: checkRepo,
		cache:     cache,
	}
}

// Execute performs the scores read.
func (uc *GetScoresUseCase) Execute(ctx context.Context, input GetScoresInput) (*GetScoresOutput, error) {
	start := entity.NormalizeDate(input.StartDate)
	end := entity.NormalizeDate(input.EndDate)

	if end.Before(start) {
		return nil, domainerror.NewStatsError(
			domainerror.ErrCodeInvalidDateRange,
			"end date must not be before start date",
			domainerror.ErrInvalidDateRange,
		)
	}

	output := &GetScoresOutput{
		Start: start.Format(dateLayout),
		End:   end.Format(dateLayout),
	}

	if cached := uc.fromCache(ctx, input.UserID, start, end); cached != nil {
		output.Scores = cached
		return output, nil
	}

	goals, err := uc.goalRepo.FindActiveByUserID(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to list active goals: %w", err)
	}

	// Checks whose goal was deleted or deactivated since find no weight
	// here and contribute zero points, while still counting as completed.
	weights := make(map[uuid.UUID]int, len(goals))
	for _, g := range goals {
		weights[g.ID] = g.ScoreWeight()
	}
	totalCount := len(goals)

	days := int(end.Sub(start).Hours()/24) + 1
	scores := make([]ScoreEntry, days)
	errs := make([]error, days)

	var wg sync.WaitGroup
	for i := 0; i < days; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			day := start.AddDate(0, 0, i)
			checks, err := uc.checkRepo.FindCompletedByDateRange(ctx, input.UserID, day, day)
			if err != nil {
				errs[i] = err
				return
			}

			value := 0
			for _, c := range checks {
				value += weights[c.GoalID]
			}

			scores[i] = ScoreEntry{
				Date:           day.Format(dateLayout),
				Value:          value,
				CompletedCount: len(checks),
				TotalCount:     totalCount,
			}
		}(i)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, fmt.Errorf("failed to compute scores: %w", err)
		}
	}

	uc.toCache(ctx, input.UserID, start, end, scores)

	output.Scores = scores
	return output, nil
}

// fromCache returns the cached entries for the range, or nil on a miss.
// Cache failures are logged and treated as misses.
func (uc *GetScoresUseCase) fromCache(ctx context.Context, userID uuid.UUID, start, end time.Time) []ScoreEntry {
	if uc.cache == nil {
		return nil
	}

	cached, err := uc.cache.Get(ctx, userID, start, end)
	if err != nil {
		slog.Warn("scores cache read failed", "user_id", userID, "error", err)
		return nil
	}
	if cached == nil {
		return nil
	}

	scores := make([]ScoreEntry, len(cached))
	for i, e := range cached {
		scores[i] = ScoreEntry{
			Date:           e.Date,
			Value:          e.Value,
			CompletedCount: e.CompletedCount,
			TotalCount:     e.TotalCount,
		}
	}
	return scores
}

// toCache stores computed entries, best-effort.
func (uc *GetScoresUseCase) toCache(ctx context.Context, userID uuid.UUID, start, end time.Time, scores []ScoreEntry) {
	if uc.cache == nil {
		return
	}

	entries := make([]adapter.CachedScoreEntry, len(scores))
	for i, s := range scores {
		entries[i] = adapter.CachedScoreEntry{
			Date:           s.Date,
			Value:          s.Value,
			CompletedCount: s.CompletedCount,
			TotalCount:     s.TotalCount,
		}
	}

	if err := uc.cache.Set(ctx, userID, start, end, entries); err != nil {
		slog.Warn("scores cache write failed", "user_id", userID, "error", err)
	}
}
