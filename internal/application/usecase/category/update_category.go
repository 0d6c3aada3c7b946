// Package category contains category-related use cases.
package category

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/habit-tracker/backend/internal/application/adapter"
	domainerror "github.com/habit-tracker/backend/internal/domain/error"
)

// UpdateCategoryInput represents the input for category update. Nil fields
// are left untouched.
type UpdateCategoryInput struct {
	UserID     uuid.UUID
	CategoryID uuid.UUID
	Name       *string
	Color      *string
	Order      *int
}

// UpdateCategoryOutput represents the output of category update.
type UpdateCategoryOutput struct {
	Category *CategoryOutput
}

// UpdateCategoryUseCase handles partial category updates.
type UpdateCategoryUseCase struct {
	categoryRepo adapter.CategoryRepository
}

// NewUpdateCategoryUseCase creates a new UpdateCategoryUseCase instance.
func NewUpdateCategoryUseCase(categoryRepo adapter.CategoryRepository) *UpdateCategoryUseCase {
	return &UpdateCategoryUseCase{categoryRepo: categoryRepo}
}

// Execute performs the category update.
func (uc *UpdateCategoryUseCase) Execute(ctx context.Context, input UpdateCategoryInput) (*UpdateCategoryOutput, error) {
	category, err := uc.categoryRepo.FindByID(ctx, input.CategoryID)
	if err != nil {
		return nil, fmt.Errorf("failed to find category: %w", err)
	}
	if category == nil || category.UserID != input.UserID {
		return nil, domainerror.NewCategoryError(
			domainerror.ErrCodeCategoryNotFound,
			"category not found",
			domainerror.ErrCategoryNotFound,
		)
	}

	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		if name == "" {
			return nil, domainerror.NewCategoryError(
				domainerror.ErrCodeMissingCategoryName,
				"category name is required",
				domainerror.ErrMissingCategoryName,
			)
		}
		if name != category.Name {
			exists, err := uc.categoryRepo.ExistsByUserAndName(ctx, input.UserID, name)
			if err != nil {
				return nil, fmt.Errorf("failed to check category name: %w", err)
			}
			if exists {
				return nil, domainerror.NewCategoryError(
					domainerror.ErrCodeCategoryNameExists,
					fmt.Sprintf("a category with name %q already exists", name),
					domainerror.ErrCategoryNameExists,
				)
			}
		}
		category.Name = name
	}

	if input.Color != nil {
		if !hexColorRegex.MatchString(*input.Color) {
			return nil, domainerror.NewCategoryError(
				domainerror.ErrCodeInvalidCategoryColor,
				"color must be a valid hex format (#XXXXXX)",
				domainerror.ErrInvalidCategoryColor,
			)
		}
		category.Color = *input.Color
	}

	if input.Order != nil {
		category.Order = *input.Order
	}

	category.UpdatedAt = time.Now().UTC()

	if err := uc.categoryRepo.Update(ctx, category); err != nil {
		return nil, fmt.Errorf("failed to update category: %w", err)
	}

	return &UpdateCategoryOutput{Category: toCategoryOutput(category)}, nil
}
