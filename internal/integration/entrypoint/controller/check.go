// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/habit-tracker/backend/internal/application/usecase/check"
	domainerror "github.com/habit-tracker/backend/internal/domain/error"
	"github.com/habit-tracker/backend/internal/integration/entrypoint/dto"
	"github.com/habit-tracker/backend/internal/integration/entrypoint/middleware"
)

const dateLayout = "2006-01-02"

// CheckController handles check endpoints.
type CheckController struct {
	toggleUseCase *check.ToggleCheckUseCase
	weekUseCase   *check.GetWeekChecksUseCase
	dateUseCase   *check.GetDateChecksUseCase
	deleteUseCase *check.DeleteCheckUseCase
}

// NewCheckController creates a new check controller instance.
func NewCheckController(
	toggleUseCase *check.ToggleCheckUseCase,
	weekUseCase *check.GetWeekChecksUseCase,
	dateUseCase *check.GetDateChecksUseCase,
	deleteUseCase *check.DeleteCheckUseCase,
) *CheckController {
	return &CheckController{
		toggleUseCase: toggleUseCase,
		weekUseCase:   weekUseCase,
		dateUseCase:   dateUseCase,
		deleteUseCase: deleteUseCase,
	}
}

// Toggle handles POST /checks/:goalId/:date requests.
func (c *CheckController) Toggle(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	goalID, err := uuid.Parse(ctx.Param("goalId"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid goal ID format",
		})
		return
	}

	date, err := time.Parse(dateLayout, ctx.Param("date"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid date format, expected YYYY-MM-DD",
			Code:  string(domainerror.ErrCodeInvalidCheckDate),
		})
		return
	}

	output, err := c.toggleUseCase.Execute(ctx.Request.Context(), check.ToggleCheckInput{
		UserID: userID,
		GoalID: goalID,
		Date:   date,
	})
	if err != nil {
		c.handleCheckError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCheckResponse(output.Check))
}

// Week handles GET /checks/week requests.
func (c *CheckController) Week(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	output, err := c.weekUseCase.Execute(ctx.Request.Context(), check.GetWeekChecksInput{
		UserID: userID,
	})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to retrieve week checks",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToWeekChecksResponse(output))
}

// Date handles GET /checks/date/:date requests.
func (c *CheckController) Date(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	date, err := time.Parse(dateLayout, ctx.Param("date"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid date format, expected YYYY-MM-DD",
			Code:  string(domainerror.ErrCodeInvalidCheckDate),
		})
		return
	}

	output, err := c.dateUseCase.Execute(ctx.Request.Context(), check.GetDateChecksInput{
		UserID: userID,
		Date:   date,
	})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to retrieve checks",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToDateChecksResponse(output))
}

// Delete handles DELETE /checks/:id requests.
func (c *CheckController) Delete(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	checkID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid check ID format",
		})
		return
	}

	err = c.deleteUseCase.Execute(ctx.Request.Context(), check.DeleteCheckInput{
		UserID:  userID,
		CheckID: checkID,
	})
	if err != nil {
		c.handleCheckError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// handleCheckError handles check errors and returns appropriate HTTP responses.
func (c *CheckController) handleCheckError(ctx *gin.Context, err error) {
	var checkErr *domainerror.CheckError
	if errors.As(err, &checkErr) {
		statusCode := c.getStatusCodeForCheckError(checkErr.Code)
		ctx.JSON(statusCode, dto.ErrorResponse{
			Error: checkErr.Message,
			Code:  string(checkErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// getStatusCodeForCheckError maps check error codes to HTTP status codes.
func (c *CheckController) getStatusCodeForCheckError(code domainerror.CheckErrorCode) int {
	switch code {
	case domainerror.ErrCodeCheckNotFound,
		domainerror.ErrCodeCheckGoalNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeInvalidCheckDate:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
