// Package check contains check-related use cases.
package check

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/habit-tracker/backend/internal/application/adapter"
	"github.com/habit-tracker/backend/internal/domain/entity"
)

// GetDateChecksInput represents the input for the single-day read.
type GetDateChecksInput struct {
	UserID uuid.UUID
	Date   time.Time
}

// GoalDayOutput represents one goal's check state on the requested day.
type GoalDayOutput struct {
	GoalID       uuid.UUID
	GoalName     string
	GoalIcon     string
	GoalPoints   int
	GoalPositive bool
	Date         string
	Completed    bool
	CheckID      *uuid.UUID
}

// GetDateChecksOutput represents the single-day response.
type GetDateChecksOutput struct {
	Date   string
	Checks []*GoalDayOutput
}

// GetDateChecksUseCase lists every active goal with its check state on one
// day. Goals without a check for the day read as not completed.
type GetDateChecksUseCase struct {
	checkRepo adapter.CheckRepository
	goalRepo  adapter.GoalRepository
}

// NewGetDateChecksUseCase creates a new GetDateChecksUseCase instance.
func NewGetDateChecksUseCase(checkRepo adapter.CheckRepository, goalRepo adapter.GoalRepository) *GetDateChecksUseCase {
	return &GetDateChecksUseCase{
		checkRepo: checkRepo,
		goalRepo:  goalRepo,
	}
}

// Execute performs the single-day read.
func (uc *GetDateChecksUseCase) Execute(ctx context.Context, input GetDateChecksInput) (*GetDateChecksOutput, error) {
	day := entity.NormalizeDate(input.Date)

	checks, err := uc.checkRepo.FindByDateRange(ctx, input.UserID, day, day)
	if err != nil {
		return nil, fmt.Errorf("failed to list checks: %w", err)
	}

	goals, err := uc.goalRepo.FindActiveByUserID(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to list active goals: %w", err)
	}

	byGoal := make(map[uuid.UUID]*entity.Check, len(checks))
	for _, c := range checks {
		byGoal[c.GoalID] = c
	}

	rows := make([]*GoalDayOutput, len(goals))
	for i, goal := range goals {
		row := &GoalDayOutput{
			GoalID:       goal.ID,
			GoalName:     goal.Name,
			GoalIcon:     goal.Icon,
			GoalPoints:   goal.Points,
			GoalPositive: goal.Positive,
			Date:         day.Format(dateLayout),
		}
		if c, ok := byGoal[goal.ID]; ok {
			id := c.ID
			row.Completed = c.Completed
			row.CheckID = &id
		}
		rows[i] = row
	}

	return &GetDateChecksOutput{
		Date:   day.Format(dateLayout),
		Checks: rows,
	}, nil
}
