// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/habit-tracker/backend/internal/application/adapter"
	"github.com/habit-tracker/backend/internal/domain/entity"
	"github.com/habit-tracker/backend/internal/integration/persistence/model"
)

// goalRepository implements the adapter.GoalRepository interface.
type goalRepository struct {
	db *gorm.DB
}

// NewGoalRepository creates a new goal repository instance.
func NewGoalRepository(db *gorm.DB) adapter.GoalRepository {
	return &goalRepository{
		db: db,
	}
}

// Create creates a new goal in the database.
func (r *goalRepository) Create(ctx context.Context, goal *entity.Goal) error {
	goalModel := model.GoalFromEntity(goal)
	result := r.db.WithContext(ctx).Create(goalModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindByID retrieves a goal by its ID, or nil when none exists.
func (r *goalRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Goal, error) {
	var goalModel model.GoalModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&goalModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return goalModel.ToEntity(), nil
}

// FindActiveByUserID retrieves the user's active goals ordered by display order.
func (r *goalRepository) FindActiveByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.Goal, error) {
	var models []model.GoalModel
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND active = ?", userID, true).
		Order("display_order ASC").
		Find(&models)
	if result.Error != nil {
		return nil, result.Error
	}
	return toGoalEntities(models), nil
}

// FindByIDs retrieves the user's goals matching the given IDs.
func (r *goalRepository) FindByIDs(ctx context.Context, userID uuid.UUID, ids []uuid.UUID) ([]*entity.Goal, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	var models []model.GoalModel
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND id IN ?", userID, ids).
		Find(&models)
	if result.Error != nil {
		return nil, result.Error
	}
	return toGoalEntities(models), nil
}

// CountByUserID counts all goals belonging to a user.
func (r *goalRepository) CountByUserID(ctx context.Context, userID uuid.UUID) (int64, error) {
	var count int64
	result := r.db.WithContext(ctx).
		Model(&model.GoalModel{}).
		Where("user_id = ?", userID).
		Count(&count)
	if result.Error != nil {
		return 0, result.Error
	}
	return count, nil
}

// CountActiveByUserID counts the user's active goals.
func (r *goalRepository) CountActiveByUserID(ctx context.Context, userID uuid.UUID) (int64, error) {
	var count int64
	result := r.db.WithContext(ctx).
		Model(&model.GoalModel{}).
		Where("user_id = ? AND active = ?", userID, true).
		Count(&count)
	if result.Error != nil {
		return 0, result.Error
	}
	return count, nil
}

// CountByCategory counts the user's goals assigned to a category.
func (r *goalRepository) CountByCategory(ctx context.Context, userID, categoryID uuid.UUID) (int64, error) {
	var count int64
	result := r.db.WithContext(ctx).
		Model(&model.GoalModel{}).
		Where("user_id = ? AND category_id = ?", userID, categoryID).
		Count(&count)
	if result.Error != nil {
		return 0, result.Error
	}
	return count, nil
}

// MaxOrder returns the highest display order among the user's goals,
// or -1 when the user has none.
func (r *goalRepository) MaxOrder(ctx context.Context, userID uuid.UUID) (int, error) {
	var maxOrder int
	result := r.db.WithContext(ctx).
		Model(&model.GoalModel{}).
		Where("user_id = ?", userID).
		Select("COALESCE(MAX(display_order), -1)").
		Scan(&maxOrder)
	if result.Error != nil {
		return 0, result.Error
	}
	return maxOrder, nil
}

// Update updates an existing goal in the database.
func (r *goalRepository) Update(ctx context.Context, goal *entity.Goal) error {
	goalModel := model.GoalFromEntity(goal)
	result := r.db.WithContext(ctx).Save(goalModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// UpdateOrder sets the display order of a single goal.
func (r *goalRepository) UpdateOrder(ctx context.Context, id uuid.UUID, order int) error {
	result := r.db.WithContext(ctx).
		Model(&model.GoalModel{}).
		Where("id = ?", id).
		UpdateColumn("display_order", order)
	return result.Error
}

// Delete removes a goal from the database.
func (r *goalRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.GoalModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// CompactOrdersAfter decrements the display order of the user's goals
// that follow the given position.
func (r *goalRepository) CompactOrdersAfter(ctx context.Context, userID uuid.UUID, order int) error {
	result := r.db.WithContext(ctx).
		Model(&model.GoalModel{}).
		Where("user_id = ? AND display_order > ?", userID, order).
		UpdateColumn("display_order", gorm.Expr("display_order - 1"))
	return result.Error
}

func toGoalEntities(models []model.GoalModel) []*entity.Goal {
	goals := make([]*entity.Goal, len(models))
	for i, m := range models {
		goals[i] = m.ToEntity()
	}
	return goals
}
