// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"github.com/google/uuid"

	"github.com/habit-tracker/backend/internal/application/usecase/stats"
)

// StreakDataResponse represents the aggregate streak pair.
type StreakDataResponse struct {
	CurrentStreak int `json:"currentStreak"`
	LongestStreak int `json:"longestStreak"`
}

// DashboardStatsResponse represents the dashboard stats response.
type DashboardStatsResponse struct {
	TotalGoals     int64              `json:"totalGoals"`
	ActiveGoals    int64              `json:"activeGoals"`
	StreakData     StreakDataResponse `json:"streakData"`
	CompletionRate float64            `json:"completionRate"`
}

// GoalStreakResponse represents the streak state of a single goal.
type GoalStreakResponse struct {
	GoalID        string `json:"goalId"`
	GoalName      string `json:"goalName"`
	CurrentStreak int    `json:"currentStreak"`
	LongestStreak int    `json:"longestStreak"`
}

// StreaksResponse represents the per-goal streaks response.
type StreaksResponse struct {
	Streaks []GoalStreakResponse `json:"streaks"`
}

// DateRangeResponse represents a closed date range.
type DateRangeResponse struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// ScoreEntryResponse represents the score of a single day.
type ScoreEntryResponse struct {
	Date           string `json:"date"`
	Value          int    `json:"value"`
	CompletedCount int    `json:"completedCount"`
	TotalCount     int    `json:"totalCount"`
}

// ScoresResponse represents the scores response.
type ScoresResponse struct {
	DateRange DateRangeResponse    `json:"dateRange"`
	Scores    []ScoreEntryResponse `json:"scores"`
}

// ToDashboardStatsResponse converts a GetDashboardStatsOutput to a DashboardStatsResponse DTO.
func ToDashboardStatsResponse(output *stats.GetDashboardStatsOutput) DashboardStatsResponse {
	return DashboardStatsResponse{
		TotalGoals:  output.TotalGoals,
		ActiveGoals: output.ActiveGoals,
		StreakData: StreakDataResponse{
			CurrentStreak: output.CurrentStreak,
			LongestStreak: output.LongestStreak,
		},
		CompletionRate: output.CompletionRate,
	}
}

// ToStreaksResponse converts a GetStreaksOutput to a StreaksResponse DTO.
func ToStreaksResponse(output *stats.GetStreaksOutput) StreaksResponse {
	streaks := make([]GoalStreakResponse, len(output.Streaks))
	for i, s := range output.Streaks {
		streaks[i] = GoalStreakResponse{
			GoalID:        s.GoalID.String(),
			GoalName:      s.GoalName,
			CurrentStreak: s.CurrentStreak,
			LongestStreak: s.LongestStreak,
		}
	}
	return StreaksResponse{
		Streaks: streaks,
	}
}

// ToScoresResponse converts a GetScoresOutput to a ScoresResponse DTO.
func ToScoresResponse(output *stats.GetScoresOutput) ScoresResponse {
	scores := make([]ScoreEntryResponse, len(output.Scores))
	for i, s := range output.Scores {
		scores[i] = ScoreEntryResponse{
			Date:           s.Date,
			Value:          s.Value,
			CompletedCount: s.CompletedCount,
			TotalCount:     s.TotalCount,
		}
	}
	return ScoresResponse{
		DateRange: DateRangeResponse{
			Start: output.Start,
			End:   output.End,
		},
		Scores: scores,
	}
}

// uuidPtrToString converts an optional UUID to an optional string.
func uuidPtrToString(id *uuid.UUID) *string {
	if id == nil {
		return nil
	}
	s := id.String()
	return &s
}
