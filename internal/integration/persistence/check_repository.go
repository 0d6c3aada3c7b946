// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/habit-tracker/backend/internal/application/adapter"
	"github.com/habit-tracker/backend/internal/domain/entity"
	"github.com/habit-tracker/backend/internal/integration/persistence/model"
)

// checkRepository implements the adapter.CheckRepository interface.
type checkRepository struct {
	db *gorm.DB
}

// NewCheckRepository creates a new check repository instance.
func NewCheckRepository(db *gorm.DB) adapter.CheckRepository {
	return &checkRepository{
		db: db,
	}
}

// Create creates a new check in the database.
func (r *checkRepository) Create(ctx context.Context, check *entity.Check) error {
	checkModel := model.CheckFromEntity(check)
	result := r.db.WithContext(ctx).Create(checkModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindByID retrieves a check by its ID scoped to the owning user,
// or nil when none exists.
func (r *checkRepository) FindByID(ctx context.Context, userID, id uuid.UUID) (*entity.Check, error) {
	var checkModel model.CheckModel
	result := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&checkModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return checkModel.ToEntity(), nil
}

// FindByGoalAndDate retrieves the check for one goal on one day,
// or nil when none exists.
func (r *checkRepository) FindByGoalAndDate(ctx context.Context, userID, goalID uuid.UUID, date time.Time) (*entity.Check, error) {
	var checkModel model.CheckModel
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND goal_id = ? AND date = ?", userID, goalID, entity.NormalizeDate(date)).
		First(&checkModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return checkModel.ToEntity(), nil
}

// FindByDateRange retrieves the user's checks with date in [start, end].
func (r *checkRepository) FindByDateRange(ctx context.Context, userID uuid.UUID, start, end time.Time) ([]*entity.Check, error) {
	var models []model.CheckModel
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND date >= ? AND date <= ?", userID, entity.NormalizeDate(start), entity.NormalizeDate(end)).
		Order("date ASC").
		Find(&models)
	if result.Error != nil {
		return nil, result.Error
	}
	return toCheckEntities(models), nil
}

// FindCompletedByDateRange retrieves the user's completed checks with
// date in [start, end].
func (r *checkRepository) FindCompletedByDateRange(ctx context.Context, userID uuid.UUID, start, end time.Time) ([]*entity.Check, error) {
	var models []model.CheckModel
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND completed = ? AND date >= ? AND date <= ?",
			userID, true, entity.NormalizeDate(start), entity.NormalizeDate(end)).
		Order("date ASC").
		Find(&models)
	if result.Error != nil {
		return nil, result.Error
	}
	return toCheckEntities(models), nil
}

// CountCompletedForGoals counts completed checks in [start, end] that
// reference one of the given goals.
func (r *checkRepository) CountCompletedForGoals(ctx context.Context, userID uuid.UUID, goalIDs []uuid.UUID, start, end time.Time) (int64, error) {
	if len(goalIDs) == 0 {
		return 0, nil
	}

	var count int64
	result := r.db.WithContext(ctx).
		Model(&model.CheckModel{}).
		Where("user_id = ? AND completed = ? AND goal_id IN ? AND date >= ? AND date <= ?",
			userID, true, goalIDs, entity.NormalizeDate(start), entity.NormalizeDate(end)).
		Count(&count)
	if result.Error != nil {
		return 0, result.Error
	}
	return count, nil
}

// Update updates an existing check in the database.
func (r *checkRepository) Update(ctx context.Context, check *entity.Check) error {
	checkModel := model.CheckFromEntity(check)
	result := r.db.WithContext(ctx).Save(checkModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// Delete removes a check from the database.
func (r *checkRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.CheckModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

func toCheckEntities(models []model.CheckModel) []*entity.Check {
	checks := make([]*entity.Check, len(models))
	for i, m := range models {
		checks[i] = m.ToEntity()
	}
	return checks
}
