// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/habit-tracker/backend/internal/domain/entity"
)

// StreakRecordRepository defines the interface for streak high-water-mark
// persistence. A nil goalID addresses the user's aggregate record.
type StreakRecordRepository interface {
	// BestValue returns the stored high-water mark, or 0 when none exists.
	BestValue(ctx context.Context, userID uuid.UUID, goalID *uuid.UUID) (int, error)

	// UpsertIfGreater writes the record only when its value is strictly
	// greater than the stored one. The comparison and write happen in a
	// single conditional statement so concurrent writers cannot lower
	// the stored value.
	UpsertIfGreater(ctx context.Context, record *entity.StreakRecord) error
}
