// Package stats contains statistics-related use cases: streak and score
// computation over a user's goals and checks.
package stats

import (
	"context"
	"time"

	"github.com/habit-tracker/backend/internal/domain/entity"
)

// dateLayout is the canonical calendar-date format used throughout stats.
const dateLayout = "2006-01-02"

// DefaultStreakLookbackDays bounds the backward walk of the aggregate
// streak. The aggregate engine prefetches all completed checks inside this
// trailing window and stops at its edge, trading exactness for a single
// bounded query: streaks longer than the window are reported as the window
// length. Per-goal streaks query day by day and pass 0 (unbounded).
const DefaultStreakLookbackDays = 30

// dayPredicate reports whether the completion condition holds for one
// calendar day (midnight UTC).
type dayPredicate func(ctx context.Context, date time.Time) (bool, error)

// currentStreak counts consecutive complete days walking backward from
// today. Today itself is counted when complete, but an incomplete today
// does not end a streak that was alive yesterday: the walk simply starts
// counting at yesterday. The walk stops at the first incomplete day, or
// once the cursor passes today minus lookbackDays (lookbackDays <= 0
// disables the horizon). Predicate errors abort the walk.
func currentStreak(ctx context.Context, today time.Time, isComplete dayPredicate, lookbackDays int) (int, error) {
	today = entity.NormalizeDate(today)

	complete, err := isComplete(ctx, today)
	if err != nil {
		return 0, err
	}

	streak := 0
	if complete {
		streak = 1
	}

	horizon := today.AddDate(0, 0, -lookbackDays)
	cursor := today.AddDate(0, 0, -1)

	for lookbackDays <= 0 || !cursor.Before(horizon) {
		complete, err := isComplete(ctx, cursor)
		if err != nil {
			return 0, err
		}
		if !complete {
			break
		}
		streak++
		cursor = cursor.AddDate(0, 0, -1)
	}

	return streak, nil
}
