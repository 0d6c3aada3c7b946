// Package category contains category-related use cases.
package category

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/habit-tracker/backend/internal/application/adapter"
	"github.com/habit-tracker/backend/internal/domain/entity"
)

// CategoryOutput represents a single category in use case responses.
type CategoryOutput struct {
	ID    uuid.UUID
	Name  string
	Color string
	Order int
}

func toCategoryOutput(c *entity.Category) *CategoryOutput {
	return &CategoryOutput{
		ID:    c.ID,
		Name:  c.Name,
		Color: c.Color,
		Order: c.Order,
	}
}

// ListCategoriesInput represents the input for the category listing.
type ListCategoriesInput struct {
	UserID uuid.UUID
}

// ListCategoriesOutput represents the category listing response.
type ListCategoriesOutput struct {
	Categories []*CategoryOutput
}

// ListCategoriesUseCase lists the user's categories in display order.
type ListCategoriesUseCase struct {
	categoryRepo adapter.CategoryRepository
}

// NewListCategoriesUseCase creates a new ListCategoriesUseCase instance.
func NewListCategoriesUseCase(categoryRepo adapter.CategoryRepository) *ListCategoriesUseCase {
	return &ListCategoriesUseCase{categoryRepo: categoryRepo}
}

// Execute performs the category listing.
func (uc *ListCategoriesUseCase) Execute(ctx context.Context, input ListCategoriesInput) (*ListCategoriesOutput, error) {
	categories, err := uc.categoryRepo.FindByUserID(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}

	output := make([]*CategoryOutput, len(categories))
	for i, c := range categories {
		output[i] = toCategoryOutput(c)
	}

	return &ListCategoriesOutput{Categories: output}, nil
}
