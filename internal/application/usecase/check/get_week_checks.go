// Package check contains check-related use cases.
package check

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/habit-tracker/backend/internal/application/adapter"
	"github.com/habit-tracker/backend/internal/domain/entity"
)

const (
	dateLayout  = "2006-01-02"
	daysPerWeek = 7
)

// GetWeekChecksInput represents the input for the weekly grid read.
type GetWeekChecksInput struct {
	UserID uuid.UUID
}

// DayCheckOutput represents the check state of one goal on one day.
type DayCheckOutput struct {
	Date      string
	Completed bool
	CheckID   *uuid.UUID
}

// GoalWeekOutput represents one goal's row in the weekly grid.
type GoalWeekOutput struct {
	GoalID       uuid.UUID
	GoalName     string
	GoalIcon     string
	GoalPoints   int
	GoalPositive bool
	Days         []DayCheckOutput
}

// GetWeekChecksOutput represents the weekly grid response.
type GetWeekChecksOutput struct {
	WeekStart string
	WeekEnd   string
	Checks    []*GoalWeekOutput
}

// GetWeekChecksUseCase builds the current week's grid: one row per active
// goal, one cell per day from Sunday through Saturday. Days without a check
// read as not completed.
type GetWeekChecksUseCase struct {
	checkRepo adapter.CheckRepository
	goalRepo  adapter.GoalRepository
	clock     adapter.Clock
}

// NewGetWeekChecksUseCase creates a new GetWeekChecksUseCase instance.
func NewGetWeekChecksUseCase(checkRepo adapter.CheckRepository, goalRepo adapter.GoalRepository, clock adapter.Clock) *GetWeekChecksUseCase {
	return &GetWeekChecksUseCase{
		checkRepo: checkRepo,
		goalRepo:  goalRepo,
		clock:     clock,
	}
}

// Execute performs the weekly grid read.
func (uc *GetWeekChecksUseCase) Execute(ctx context.Context, input GetWeekChecksInput) (*GetWeekChecksOutput, error) {
	today := entity.NormalizeDate(uc.clock.Now())
	weekStart := today.AddDate(0, 0, -int(today.Weekday()))
	weekEnd := weekStart.AddDate(0, 0, daysPerWeek-1)

	checks, err := uc.checkRepo.FindByDateRange(ctx, input.UserID, weekStart, weekEnd)
	if err != nil {
		return nil, fmt.Errorf("failed to list checks: %w", err)
	}

	goals, err := uc.goalRepo.FindActiveByUserID(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to list active goals: %w", err)
	}

	type cell struct {
		completed bool
		checkID   uuid.UUID
		present   bool
	}
	cells := make(map[uuid.UUID]map[string]cell, len(goals))
	for _, c := range checks {
		day := c.Date.Format(dateLayout)
		if cells[c.GoalID] == nil {
			cells[c.GoalID] = make(map[string]cell, daysPerWeek)
		}
		cells[c.GoalID][day] = cell{completed: c.Completed, checkID: c.ID, present: true}
	}

	rows := make([]*GoalWeekOutput, len(goals))
	for i, goal := range goals {
		row := &GoalWeekOutput{
			GoalID:       goal.ID,
			GoalName:     goal.Name,
			GoalIcon:     goal.Icon,
			GoalPoints:   goal.Points,
			GoalPositive: goal.Positive,
			Days:         make([]DayCheckOutput, daysPerWeek),
		}
		for d := 0; d < daysPerWeek; d++ {
			day := weekStart.AddDate(0, 0, d).Format(dateLayout)
			out := DayCheckOutput{Date: day}
			if c, ok := cells[goal.ID][day]; ok && c.present {
				id := c.checkID
				out.Completed = c.completed
				out.CheckID = &id
			}
			row.Days[d] = out
		}
		rows[i] = row
	}

	return &GetWeekChecksOutput{
		WeekStart: weekStart.Format(dateLayout),
		WeekEnd:   weekEnd.Format(dateLayout),
		Checks:    rows,
	}, nil
}
