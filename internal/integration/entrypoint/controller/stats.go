// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/habit-tracker/backend/internal/application/usecase/stats"
	domainerror "github.com/habit-tracker/backend/internal/domain/error"
	"github.com/habit-tracker/backend/internal/integration/entrypoint/dto"
	"github.com/habit-tracker/backend/internal/integration/entrypoint/middleware"
)

// StatsController handles statistics endpoints.
type StatsController struct {
	dashboardUseCase *stats.GetDashboardStatsUseCase
	streaksUseCase   *stats.GetStreaksUseCase
	scoresUseCase    *stats.GetScoresUseCase
}

// NewStatsController creates a new stats controller instance.
func NewStatsController(
	dashboardUseCase *stats.GetDashboardStatsUseCase,
	streaksUseCase *stats.GetStreaksUseCase,
	scoresUseCase *stats.GetScoresUseCase,
) *StatsController {
	return &StatsController{
		dashboardUseCase: dashboardUseCase,
		streaksUseCase:   streaksUseCase,
		scoresUseCase:    scoresUseCase,
	}
}

// Dashboard handles GET /stats/dashboard requests.
func (c *StatsController) Dashboard(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	output, err := c.dashboardUseCase.Execute(ctx.Request.Context(), stats.GetDashboardStatsInput{
		UserID: userID,
	})
	if err != nil {
		c.handleStatsError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToDashboardStatsResponse(output))
}

// Streaks handles GET /stats/streaks requests.
func (c *StatsController) Streaks(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	output, err := c.streaksUseCase.Execute(ctx.Request.Context(), stats.GetStreaksInput{
		UserID: userID,
	})
	if err != nil {
		c.handleStatsError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToStreaksResponse(output))
}

// Scores handles GET /stats/scores?startDate&endDate requests.
func (c *StatsController) Scores(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	startDate, err := time.Parse(dateLayout, ctx.Query("startDate"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid startDate, expected YYYY-MM-DD",
			Code:  string(domainerror.ErrCodeInvalidStatsDate),
		})
		return
	}

	endDate, err := time.Parse(dateLayout, ctx.Query("endDate"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid endDate, expected YYYY-MM-DD",
			Code:  string(domainerror.ErrCodeInvalidStatsDate),
		})
		return
	}

	output, err := c.scoresUseCase.Execute(ctx.Request.Context(), stats.GetScoresInput{
		UserID:    userID,
		StartDate: startDate,
		EndDate:   endDate,
	})
	if err != nil {
		c.handleStatsError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToScoresResponse(output))
}

// handleStatsError handles stats errors and returns appropriate HTTP responses.
func (c *StatsController) handleStatsError(ctx *gin.Context, err error) {
	var statsErr *domainerror.StatsError
	if errors.As(err, &statsErr) {
		statusCode := http.StatusInternalServerError
		switch statsErr.Code {
		case domainerror.ErrCodeInvalidDateRange,
			domainerror.ErrCodeInvalidStatsDate:
			statusCode = http.StatusBadRequest
		}
		ctx.JSON(statusCode, dto.ErrorResponse{
			Error: statsErr.Message,
			Code:  string(statsErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}
