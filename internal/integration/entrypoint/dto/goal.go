// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"github.com/habit-tracker/backend/internal/application/usecase/goal"
)

// CreateGoalRequest represents the request body for goal creation.
type CreateGoalRequest struct {
	Name       string  `json:"name" binding:"required,min=1,max=100"`
	Icon       *string `json:"icon,omitempty"`
	Positive   *bool   `json:"positive,omitempty"`
	Points     *int    `json:"points,omitempty"`
	CategoryID *string `json:"categoryId,omitempty"`
}

// UpdateGoalRequest represents the request body for goal update.
type UpdateGoalRequest struct {
	Name       *string `json:"name,omitempty" binding:"omitempty,min=1,max=100"`
	Icon       *string `json:"icon,omitempty"`
	Positive   *bool   `json:"positive,omitempty"`
	Points     *int    `json:"points,omitempty"`
	Active     *bool   `json:"active,omitempty"`
	CategoryID *string `json:"categoryId,omitempty"`
	// ClearCategory detaches the goal from its category.
	ClearCategory bool `json:"clearCategory,omitempty"`
}

// GoalOrderRequest represents one goal's position in a reorder batch.
type GoalOrderRequest struct {
	ID    string `json:"id" binding:"required"`
	Order int    `json:"order"`
}

// ReorderGoalsRequest represents the request body for a bulk reorder.
type ReorderGoalsRequest struct {
	Goals []GoalOrderRequest `json:"goals" binding:"required"`
}

// GoalResponse represents a single goal in API responses.
type GoalResponse struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	Icon       string  `json:"icon"`
	Positive   bool    `json:"positive"`
	Points     int     `json:"points"`
	Order      int     `json:"order"`
	Active     bool    `json:"active"`
	CategoryID *string `json:"categoryId,omitempty"`
}

// GoalListResponse represents the response for listing goals.
type GoalListResponse struct {
	Goals []GoalResponse `json:"goals"`
}

// ToGoalResponse converts a GoalOutput to a GoalResponse DTO.
func ToGoalResponse(output *goal.GoalOutput) GoalResponse {
	resp := GoalResponse{
		ID:       output.ID.String(),
		Name:     output.Name,
		Icon:     output.Icon,
		Positive: output.Positive,
		Points:   output.Points,
		Order:    output.Order,
		Active:   output.Active,
	}
	if output.CategoryID != nil {
		id := output.CategoryID.String()
		resp.CategoryID = &id
	}
	return resp
}

// ToGoalListResponse converts a list of GoalOutput to GoalListResponse.
func ToGoalListResponse(outputs []*goal.GoalOutput) GoalListResponse {
	goals := make([]GoalResponse, len(outputs))
	for i, output := range outputs {
		goals[i] = ToGoalResponse(output)
	}
	return GoalListResponse{
		Goals: goals,
	}
}
