// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"github.com/habit-tracker/backend/internal/application/usecase/category"
)

// CreateCategoryRequest represents the request body for category creation.
type CreateCategoryRequest struct {
	Name  string  `json:"name" binding:"required,min=1,max=50"`
	Color *string `json:"color,omitempty"`
}

// UpdateCategoryRequest represents the request body for category update.
type UpdateCategoryRequest struct {
	Name  *string `json:"name,omitempty" binding:"omitempty,min=1,max=50"`
	Color *string `json:"color,omitempty"`
	Order *int    `json:"order,omitempty"`
}

// CategoryResponse represents a single category in API responses.
type CategoryResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"`
	Order int    `json:"order"`
}

// CategoryListResponse represents the response for listing categories.
type CategoryListResponse struct {
	Categories []CategoryResponse `json:"categories"`
}

// ToCategoryResponse converts a CategoryOutput to a CategoryResponse DTO.
func ToCategoryResponse(output *category.CategoryOutput) CategoryResponse {
	return CategoryResponse{
		ID:    output.ID.String(),
		Name:  output.Name,
		Color: output.Color,
		Order: output.Order,
	}
}

// ToCategoryListResponse converts a list of CategoryOutput to CategoryListResponse.
func ToCategoryListResponse(outputs []*category.CategoryOutput) CategoryListResponse {
	categories := make([]CategoryResponse, len(outputs))
	for i, output := range outputs {
		categories[i] = ToCategoryResponse(output)
	}
	return CategoryListResponse{
		Categories: categories,
	}
}
