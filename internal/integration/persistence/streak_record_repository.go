// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/habit-tracker/backend/internal/application/adapter"
	"github.com/habit-tracker/backend/internal/domain/entity"
	"github.com/habit-tracker/backend/internal/integration/persistence/model"
)

// streakRecordRepository implements the adapter.StreakRecordRepository interface.
type streakRecordRepository struct {
	db *gorm.DB
}

// NewStreakRecordRepository creates a new streak record repository instance.
func NewStreakRecordRepository(db *gorm.DB) adapter.StreakRecordRepository {
	return &streakRecordRepository{
		db: db,
	}
}

// BestValue returns the stored high-water mark, or 0 when none exists.
func (r *streakRecordRepository) BestValue(ctx context.Context, userID uuid.UUID, goalID *uuid.UUID) (int, error) {
	goalKey := uuid.Nil
	if goalID != nil {
		goalKey = *goalID
	}

	var recordModel model.StreakRecordModel
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND goal_id = ?", userID, goalKey).
		First(&recordModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return 0, nil
		}
		return 0, result.Error
	}
	return recordModel.Value, nil
}

// UpsertIfGreater writes the record only when its value is strictly greater
// than the stored one. The comparison happens inside the upsert itself, so
// concurrent writers cannot lower the stored value.
func (r *streakRecordRepository) UpsertIfGreater(ctx context.Context, record *entity.StreakRecord) error {
	recordModel := model.StreakRecordFromEntity(record)
	result := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "user_id"}, {Name: "goal_id"}},
			DoUpdates: clause.Assignments(map[string]interface{}{
				"value":       recordModel.Value,
				"observed_at": recordModel.ObservedAt,
				"updated_at":  recordModel.UpdatedAt,
			}),
			Where: clause.Where{
				Exprs: []clause.Expression{
					clause.Expr{SQL: "excluded.value > streak_records.value"},
				},
			},
		}).
		Create(recordModel)
	return result.Error
}
