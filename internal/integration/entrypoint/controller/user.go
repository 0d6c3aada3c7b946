// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/habit-tracker/backend/internal/application/usecase/user"
	domainerror "github.com/habit-tracker/backend/internal/domain/error"
	"github.com/habit-tracker/backend/internal/integration/entrypoint/dto"
	"github.com/habit-tracker/backend/internal/integration/entrypoint/middleware"
)

// UserController handles user profile endpoints.
type UserController struct {
	getCurrentUseCase  *user.GetCurrentUserUseCase
	updatePrefsUseCase *user.UpdatePreferencesUseCase
}

// NewUserController creates a new user controller instance.
func NewUserController(
	getCurrentUseCase *user.GetCurrentUserUseCase,
	updatePrefsUseCase *user.UpdatePreferencesUseCase,
) *UserController {
	return &UserController{
		getCurrentUseCase:  getCurrentUseCase,
		updatePrefsUseCase: updatePrefsUseCase,
	}
}

// GetCurrent handles GET /auth/user requests.
func (c *UserController) GetCurrent(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	output, err := c.getCurrentUseCase.Execute(ctx.Request.Context(), user.GetCurrentUserInput{
		UserID: userID,
	})
	if err != nil {
		c.handleUserError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToUserOutputResponse(output.User))
}

// UpdatePreferences handles PATCH /auth/user requests.
func (c *UserController) UpdatePreferences(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	var req dto.UpdatePreferencesRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeMissingFields),
		})
		return
	}

	output, err := c.updatePrefsUseCase.Execute(ctx.Request.Context(), user.UpdatePreferencesInput{
		UserID:             userID,
		Name:               req.Name,
		EmailNotifications: req.EmailNotifications,
	})
	if err != nil {
		c.handleUserError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToUserOutputResponse(output.User))
}

// handleUserError handles user errors and returns appropriate HTTP responses.
func (c *UserController) handleUserError(ctx *gin.Context, err error) {
	var authErr *domainerror.AuthError
	if errors.As(err, &authErr) {
		statusCode := http.StatusInternalServerError
		switch authErr.Code {
		case domainerror.ErrCodeUserNotFound:
			statusCode = http.StatusNotFound
		case domainerror.ErrCodeMissingFields:
			statusCode = http.StatusBadRequest
		}
		ctx.JSON(statusCode, dto.ErrorResponse{
			Error: authErr.Message,
			Code:  string(authErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}
