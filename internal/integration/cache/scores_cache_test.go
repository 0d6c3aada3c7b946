package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/habit-tracker/backend/internal/application/adapter"
)

func newTestCache(t *testing.T) adapter.ScoresCache {
	t.Helper()

	srv := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: srv.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return NewScoresCache(client)
}

func day(t *testing.T, value string) time.Time {
	t.Helper()

	parsed, err := time.Parse("2006-01-02", value)
	if err != nil {
		t.Fatalf("parse %q: %v", value, err)
	}
	return parsed
}

func TestScoresCache_MissThenHit(t *testing.T) {
	ctx := context.Background()
	cache := newTestCache(t)
	userID := uuid.New()
	start := day(t, "2025-06-01")
	end := day(t, "2025-06-07")

	got, err := cache.Get(ctx, userID, start, end)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != nil {
		t.Fatalf("expected miss, got %v", got)
	}

	entries := []adapter.CachedScoreEntry{
		{Date: "2025-06-01", Value: 3, CompletedCount: 2, TotalCount: 2},
		{Date: "2025-06-02", Value: 0, CompletedCount: 0, TotalCount: 1},
	}
	if err := cache.Set(ctx, userID, start, end, entries); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, err = cache.Get(ctx, userID, start, end)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(got))
	}
	if got[0] != entries[0] || got[1] != entries[1] {
		t.Errorf("cached entries differ: got %v, want %v", got, entries)
	}
}

func TestScoresCache_RangesAreIndependent(t *testing.T) {
	ctx := context.Background()
	cache := newTestCache(t)
	userID := uuid.New()

	entries := []adapter.CachedScoreEntry{{Date: "2025-06-01", Value: 5, CompletedCount: 1, TotalCount: 1}}
	if err := cache.Set(ctx, userID, day(t, "2025-06-01"), day(t, "2025-06-07"), entries); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, err := cache.Get(ctx, userID, day(t, "2025-06-01"), day(t, "2025-06-14"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != nil {
		t.Errorf("expected miss for a different range, got %v", got)
	}
}

func TestScoresCache_InvalidateUser(t *testing.T) {
	ctx := context.Background()
	cache := newTestCache(t)
	userID := uuid.New()
	otherID := uuid.New()

	entries := []adapter.CachedScoreEntry{{Date: "2025-06-01", Value: 1, CompletedCount: 1, TotalCount: 1}}
	if err := cache.Set(ctx, userID, day(t, "2025-06-01"), day(t, "2025-06-07"), entries); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := cache.Set(ctx, userID, day(t, "2025-06-08"), day(t, "2025-06-14"), entries); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := cache.Set(ctx, otherID, day(t, "2025-06-01"), day(t, "2025-06-07"), entries); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := cache.InvalidateUser(ctx, userID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, window := range [][2]string{{"2025-06-01", "2025-06-07"}, {"2025-06-08", "2025-06-14"}} {
		got, err := cache.Get(ctx, userID, day(t, window[0]), day(t, window[1]))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != nil {
			t.Errorf("range %s..%s should be invalidated, got %v", window[0], window[1], got)
		}
	}

	got, err := cache.Get(ctx, otherID, day(t, "2025-06-01"), day(t, "2025-06-07"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got == nil {
		t.Error("other user's cache should survive invalidation")
	}
}

func TestScoresCache_InvalidateUnknownUser(t *testing.T) {
	ctx := context.Background()
	cache := newTestCache(t)

	if err := cache.InvalidateUser(ctx, uuid.New()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
