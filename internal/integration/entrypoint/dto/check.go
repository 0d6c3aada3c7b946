// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"github.com/habit-tracker/backend/internal/application/usecase/check"
)

// CheckResponse represents a single check in API responses.
type CheckResponse struct {
	ID        string `json:"id"`
	GoalID    string `json:"goalId"`
	Date      string `json:"date"`
	Completed bool   `json:"completed"`
}

// DayCheckResponse represents the check state of one goal on one day.
type DayCheckResponse struct {
	Date      string  `json:"date"`
	Completed bool    `json:"completed"`
	CheckID   *string `json:"checkId,omitempty"`
}

// GoalWeekResponse represents one goal's row in the weekly grid.
type GoalWeekResponse struct {
	GoalID       string             `json:"goalId"`
	GoalName     string             `json:"goalName"`
	GoalIcon     string             `json:"goalIcon"`
	GoalPoints   int                `json:"goalPoints"`
	GoalPositive bool               `json:"goalPositive"`
	Days         []DayCheckResponse `json:"days"`
}

// WeekChecksResponse represents the weekly grid response.
type WeekChecksResponse struct {
	WeekStart string             `json:"weekStart"`
	WeekEnd   string             `json:"weekEnd"`
	Checks    []GoalWeekResponse `json:"checks"`
}

// GoalDayResponse represents one goal's check state on the requested day.
type GoalDayResponse struct {
	GoalID       string  `json:"goalId"`
	GoalName     string  `json:"goalName"`
	GoalIcon     string  `json:"goalIcon"`
	GoalPoints   int     `json:"goalPoints"`
	GoalPositive bool    `json:"goalPositive"`
	Date         string  `json:"date"`
	Completed    bool    `json:"completed"`
	CheckID      *string `json:"checkId,omitempty"`
}

// DateChecksResponse represents the single-day response.
type DateChecksResponse struct {
	Date   string            `json:"date"`
	Checks []GoalDayResponse `json:"checks"`
}

// ToCheckResponse converts a CheckOutput to a CheckResponse DTO.
func ToCheckResponse(output *check.CheckOutput) CheckResponse {
	return CheckResponse{
		ID:        output.ID.String(),
		GoalID:    output.GoalID.String(),
		Date:      output.Date,
		Completed: output.Completed,
	}
}

// ToWeekChecksResponse converts a GetWeekChecksOutput to a WeekChecksResponse DTO.
func ToWeekChecksResponse(output *check.GetWeekChecksOutput) WeekChecksResponse {
	rows := make([]GoalWeekResponse, len(output.Checks))
	for i, row := range output.Checks {
		days := make([]DayCheckResponse, len(row.Days))
		for j, day := range row.Days {
			days[j] = DayCheckResponse{
				Date:      day.Date,
				Completed: day.Completed,
				CheckID:   uuidPtrToString(day.CheckID),
			}
		}
		rows[i] = GoalWeekResponse{
			GoalID:       row.GoalID.String(),
			GoalName:     row.GoalName,
			GoalIcon:     row.GoalIcon,
			GoalPoints:   row.GoalPoints,
			GoalPositive: row.GoalPositive,
			Days:         days,
		}
	}
	return WeekChecksResponse{
		WeekStart: output.WeekStart,
		WeekEnd:   output.WeekEnd,
		Checks:    rows,
	}
}

// ToDateChecksResponse converts a GetDateChecksOutput to a DateChecksResponse DTO.
func ToDateChecksResponse(output *check.GetDateChecksOutput) DateChecksResponse {
	rows := make([]GoalDayResponse, len(output.Checks))
	for i, row := range output.Checks {
		rows[i] = GoalDayResponse{
			GoalID:       row.GoalID.String(),
			GoalName:     row.GoalName,
			GoalIcon:     row.GoalIcon,
			GoalPoints:   row.GoalPoints,
			GoalPositive: row.GoalPositive,
			Date:         row.Date,
			Completed:    row.Completed,
			CheckID:      uuidPtrToString(row.CheckID),
		}
	}
	return DateChecksResponse{
		Date:   output.Date,
		Checks: rows,
	}
}
