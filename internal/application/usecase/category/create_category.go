// Package category contains category-related use cases.
package category

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/google/uuid"

	"github.com/habit-tracker/backend/internal/application/adapter"
	"github.com/habit-tracker/backend/internal/domain/entity"
	domainerror "github.com/habit-tracker/backend/internal/domain/error"
)

// MaxCategoryNameLength is the maximum allowed length for category names.
const MaxCategoryNameLength = 50

var hexColorRegex = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// CreateCategoryInput represents the input for category creation.
type CreateCategoryInput struct {
	UserID uuid.UUID
	Name   string
	Color  *string // Optional, defaults to DefaultCategoryColor
}

// CreateCategoryOutput represents the output of category creation.
type CreateCategoryOutput struct {
	Category *CategoryOutput
}

// CreateCategoryUseCase handles category creation logic. Names are unique
// per user and new categories are appended at the end of the display order.
type CreateCategoryUseCase struct {
	categoryRepo adapter.CategoryRepository
}

// NewCreateCategoryUseCase creates a new CreateCategoryUseCase instance.
func NewCreateCategoryUseCase(categoryRepo adapter.CategoryRepository) *CreateCategoryUseCase {
	return &CreateCategoryUseCase{categoryRepo: categoryRepo}
}

// Execute performs the category creation.
func (uc *CreateCategoryUseCase) Execute(ctx context.Context, input CreateCategoryInput) (*CreateCategoryOutput, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, domainerror.NewCategoryError(
			domainerror.ErrCodeMissingCategoryName,
			"category name is required",
			domainerror.ErrMissingCategoryName,
		)
	}
	if len(name) > MaxCategoryNameLength {
		return nil, domainerror.NewCategoryError(
			domainerror.ErrCodeMissingCategoryName,
			fmt.Sprintf("category name must not exceed %d characters", MaxCategoryNameLength),
			domainerror.ErrMissingCategoryName,
		)
	}

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

	color := entity.DefaultCategoryColor
	if input.Color != nil && *input.Color != "" {
		if !hexColorRegex.MatchString(*input.Color) {
			return nil, domainerror.NewCategoryError(
				domainerror.ErrCodeInvalidCategoryColor,
				"color must be a valid hex format (#XXXXXX)",
				domainerror.ErrInvalidCategoryColor,
			)
		}
		color = *input.Color
	}

	maxOrder, err := uc.categoryRepo.MaxOrder(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to determine category order: %w", err)
	}

	category := entity.NewCategory(input.UserID, name, color, maxOrder+1)

	if err := uc.categoryRepo.Create(ctx, category); err != nil {
		return nil, fmt.Errorf("failed to create category: %w", err)
	}

	return &CreateCategoryOutput{Category: toCategoryOutput(category)}, nil
}
