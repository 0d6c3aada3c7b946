// Package category contains category-related use cases.
package category

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/habit-tracker/backend/internal/application/adapter"
	domainerror "github.com/habit-tracker/backend/internal/domain/error"
)

// DeleteCategoryInput represents the input for category deletion.
type DeleteCategoryInput struct {
	UserID     uuid.UUID
	CategoryID uuid.UUID
}

// DeleteCategoryUseCase removes a category and closes the gap it leaves in
// the display order. Deletion is refused while goals still reference the
// category.
type DeleteCategoryUseCase struct {
	categoryRepo adapter.CategoryRepository
	goalRepo     adapter.GoalRepository
}

// NewDeleteCategoryUseCase creates a new DeleteCategoryUseCase instance.
func NewDeleteCategoryUseCase(categoryRepo adapter.CategoryRepository, goalRepo adapter.GoalRepository) *DeleteCategoryUseCase {
	return &DeleteCategoryUseCase{
		categoryRepo: categoryRepo,
		goalRepo:     goalRepo,
	}
}

// Execute performs the category deletion.
func (uc *DeleteCategoryUseCase) Execute(ctx context.Context, input DeleteCategoryInput) error {
	category, err := uc.categoryRepo.FindByID(ctx, input.CategoryID)
	if err != nil {
		return fmt.Errorf("failed to find category: %w", err)
	}
	if category == nil || category.UserID != input.UserID {
		return domainerror.NewCategoryError(
			domainerror.ErrCodeCategoryNotFound,
			"category not found",
			domainerror.ErrCategoryNotFound,
		)
	}

	inUse, err := uc.goalRepo.CountByCategory(ctx, input.UserID, input.CategoryID)
	if err != nil {
		return fmt.Errorf("failed to count goals in category: %w", err)
	}
	if inUse > 0 {
		return domainerror.NewCategoryError(
			domainerror.ErrCodeCategoryInUse,
			"cannot delete category that has goals assigned to it",
			domainerror.ErrCategoryInUse,
		)
	}

	if err := uc.categoryRepo.Delete(ctx, category.ID); err != nil {
		return fmt.Errorf("failed to delete category: %w", err)
	}

	if err := uc.categoryRepo.CompactOrdersAfter(ctx, input.UserID, category.Order); err != nil {
		return fmt.Errorf("failed to compact category orders: %w", err)
	}

	return nil
}
