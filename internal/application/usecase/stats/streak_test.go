package stats

import (
	"context"
	"errors"
	"testing"
	"time"
)

func testDay(t *testing.T, offset int) time.Time {
	t.Helper()
	base := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)
	return base.AddDate(0, 0, -offset)
}

// predicateFromOffsets marks the given day offsets (0 = today) as complete.
func predicateFromOffsets(t *testing.T, offsets ...int) dayPredicate {
	t.Helper()
	complete := make(map[string]bool, len(offsets))
	for _, off := range offsets {
		complete[testDay(t, off).Format(dateLayout)] = true
	}
	return func(ctx context.Context, date time.Time) (bool, error) {
		return complete[date.Format(dateLayout)], nil
	}
}

func TestCurrentStreak(t *testing.T) {
	tests := []struct {
		name         string
		completeDays []int
		lookbackDays int
		want         int
	}{
		{
			name:         "no complete days",
			completeDays: nil,
			lookbackDays: DefaultStreakLookbackDays,
			want:         0,
		},
		{
			name:         "five consecutive days ending today",
			completeDays: []int{0, 1, 2, 3, 4},
			lookbackDays: DefaultStreakLookbackDays,
			want:         5,
		},
		{
			name:         "gap two days ago truncates to two",
			completeDays: []int{0, 1, 3, 4},
			lookbackDays: DefaultStreakLookbackDays,
			want:         2,
		},
		{
			name:         "gap three days ago truncates to three",
			completeDays: []int{0, 1, 2, 4},
			lookbackDays: DefaultStreakLookbackDays,
			want:         3,
		},
		{
			name:         "incomplete today anchors at yesterday",
			completeDays: []int{1, 2, 3},
			lookbackDays: DefaultStreakLookbackDays,
			want:         3,
		},
		{
			name:         "incomplete today and yesterday",
			completeDays: []int{2, 3, 4},
			lookbackDays: DefaultStreakLookbackDays,
			want:         0,
		},
		{
			name:         "only today complete",
			completeDays: []int{0},
			lookbackDays: DefaultStreakLookbackDays,
			want:         1,
		},
		{
			name:         "lookback bounds the walk",
			completeDays: []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10},
			lookbackDays: 5,
			want:         6,
		},
		{
			name:         "unbounded walk covers the full run",
			completeDays: []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10},
			lookbackDays: 0,
			want:         11,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := currentStreak(context.Background(), testDay(t, 0), predicateFromOffsets(t, tt.completeDays...), tt.lookbackDays)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("currentStreak() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestCurrentStreak_NonMidnightAnchor(t *testing.T) {
	// The anchor is normalized before the predicate ever sees it.
	pred := predicateFromOffsets(t, 0, 1)
	anchor := testDay(t, 0).Add(17*time.Hour + 42*time.Minute)

	got, err := currentStreak(context.Background(), anchor, pred, DefaultStreakLookbackDays)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 2 {
		t.Errorf("currentStreak() = %d, want 2", got)
	}
}

func TestCurrentStreak_PredicateError(t *testing.T) {
	wantErr := errors.New("ledger unavailable")
	pred := func(ctx context.Context, date time.Time) (bool, error) {
		return false, wantErr
	}

	_, err := currentStreak(context.Background(), testDay(t, 0), pred, DefaultStreakLookbackDays)
	if !errors.Is(err, wantErr) {
		t.Errorf("expected predicate error, got %v", err)
	}
}
