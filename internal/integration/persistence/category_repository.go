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

// categoryRepository implements the adapter.CategoryRepository interface.
type categoryRepository struct {
	db *gorm.DB
}

// NewCategoryRepository creates a new category repository instance.
func NewCategoryRepository(db *gorm.DB) adapter.CategoryRepository {
	return &categoryRepository{
		db: db,
	}
}

// Create creates a new category in the database.
func (r *categoryRepository) Create(ctx context.Context, category *entity.Category) error {
	categoryModel := model.CategoryFromEntity(category)
	result := r.db.WithContext(ctx).Create(categoryModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindByID retrieves a category by its ID, or nil when none exists.
func (r *categoryRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Category, error) {
	var categoryModel model.CategoryModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&categoryModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return categoryModel.ToEntity(), nil
}

// FindByUserID retrieves all categories for a user ordered by display order.
func (r *categoryRepository) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.Category, error) {
	var models []model.CategoryModel
	result := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("display_order ASC").
		Find(&models)
	if result.Error != nil {
		return nil, result.Error
	}

	categories := make([]*entity.Category, len(models))
	for i, m := range models {
		categories[i] = m.ToEntity()
	}
	return categories, nil
}

// ExistsByUserAndName checks if the user already has a category with the given name.
func (r *categoryRepository) ExistsByUserAndName(ctx context.Context, userID uuid.UUID, name string) (bool, error) {
	var count int64
	result := r.db.WithContext(ctx).
		Model(&model.CategoryModel{}).
		Where("user_id = ? AND name = ?", userID, name).
		Count(&count)
	if result.Error != nil {
		return false, result.Error
	}
	return count > 0, nil
}

// MaxOrder returns the highest display order among the user's categories,
// or -1 when the user has none.
func (r *categoryRepository) MaxOrder(ctx context.Context, userID uuid.UUID) (int, error) {
	var maxOrder int
	result := r.db.WithContext(ctx).
		Model(&model.CategoryModel{}).
		Where("user_id = ?", userID).
		Select("COALESCE(MAX(display_order), -1)").
		Scan(&maxOrder)
	if result.Error != nil {
		return 0, result.Error
	}
	return maxOrder, nil
}

// Update updates an existing category in the database.
func (r *categoryRepository) Update(ctx context.Context, category *entity.Category) error {
	categoryModel := model.CategoryFromEntity(category)
	result := r.db.WithContext(ctx).Save(categoryModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// Delete removes a category from the database.
func (r *categoryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.CategoryModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// CompactOrdersAfter decrements the display order of the user's categories
// that follow the given position.
func (r *categoryRepository) CompactOrdersAfter(ctx context.Context, userID uuid.UUID, order int) error {
	result := r.db.WithContext(ctx).
		Model(&model.CategoryModel{}).
		Where("user_id = ? AND display_order > ?", userID, order).
		UpdateColumn("display_order", gorm.Expr("display_order - 1"))
	return result.Error
}
