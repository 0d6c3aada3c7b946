// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// CachedScoreEntry is one per-day score entry as stored in the cache.
type CachedScoreEntry struct {
	Date           string `json:"date"`
	Value          int    `json:"value"`
	CompletedCount int    `json:"completed_count"`
	TotalCount     int    `json:"total_count"`
}

// ScoresCache caches computed score ranges per user. Entries are dropped
// whenever the user's checks change, so a miss only costs a recomputation.
type ScoresCache interface {
	// Get returns the cached entries for the range, or (nil, nil) on a miss.
	Get(ctx context.Context, userID uuid.UUID, start, end time.Time) ([]CachedScoreEntry, error)

	// Set stores the entries for the range.
	Set(ctx context.Context, userID uuid.UUID, start, end time.Time, entries []CachedScoreEntry) error

	// InvalidateUser drops all cached ranges for the user.
	InvalidateUser(ctx context.Context, userID uuid.UUID) error
}
