// Package user contains user profile use cases.
package user

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/habit-tracker/backend/internal/application/adapter"
	"github.com/habit-tracker/backend/internal/domain/entity"
	domainerror "github.com/habit-tracker/backend/internal/domain/error"
)

// UserOutput represents the current user's profile.
type UserOutput struct {
	ID                 uuid.UUID
	Email              string
	Name               string
	EmailNotifications bool
	LastLoginAt        *time.Time
	CreatedAt          time.Time
}

func toUserOutput(u *entity.User) *UserOutput {
	return &UserOutput{
		ID:                 u.ID,
		Email:              u.Email,
		Name:               u.Name,
		EmailNotifications: u.EmailNotifications,
		LastLoginAt:        u.LastLoginAt,
		CreatedAt:          u.CreatedAt,
	}
}

// GetCurrentUserInput represents the input for the profile read.
type GetCurrentUserInput struct {
	UserID uuid.UUID
}

// GetCurrentUserOutput represents the profile response.
type GetCurrentUserOutput struct {
	User *UserOutput
}

// GetCurrentUserUseCase retrieves the authenticated user's profile.
type GetCurrentUserUseCase struct {
	userRepo adapter.UserRepository
}

// NewGetCurrentUserUseCase creates a new GetCurrentUserUseCase instance.
func NewGetCurrentUserUseCase(userRepo adapter.UserRepository) *GetCurrentUserUseCase {
	return &GetCurrentUserUseCase{userRepo: userRepo}
}

// Execute performs the profile read.
func (uc *GetCurrentUserUseCase) Execute(ctx context.Context, input GetCurrentUserInput) (*GetCurrentUserOutput, error) {
	user, err := uc.userRepo.FindByID(ctx, input.UserID)
	if err != nil || user == nil {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeUserNotFound,
			"user not found",
			domainerror.ErrUserNotFound,
		)
	}

	return &GetCurrentUserOutput{User: toUserOutput(user)}, nil
}
