// Package user contains user profile use cases.
package user

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/habit-tracker/backend/internal/application/adapter"
	domainerror "github.com/habit-tracker/backend/internal/domain/error"
)

// UpdatePreferencesInput represents the input for a profile update. Nil
// fields are left untouched.
type UpdatePreferencesInput struct {
	UserID             uuid.UUID
	Name               *string
	EmailNotifications *bool
}

// UpdatePreferencesOutput represents the profile update response.
type UpdatePreferencesOutput struct {
	User *UserOutput
}

// UpdatePreferencesUseCase updates the user's display name and milestone
// email opt-in.
type UpdatePreferencesUseCase struct {
	userRepo adapter.UserRepository
}

// NewUpdatePreferencesUseCase creates a new UpdatePreferencesUseCase instance.
func NewUpdatePreferencesUseCase(userRepo adapter.UserRepository) *UpdatePreferencesUseCase {
	return &UpdatePreferencesUseCase{userRepo: userRepo}
}

// Execute performs the profile update.
func (uc *UpdatePreferencesUseCase) Execute(ctx context.Context, input UpdatePreferencesInput) (*UpdatePreferencesOutput, error) {
	user, err := uc.userRepo.FindByID(ctx, input.UserID)
	if err != nil || user == nil {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeUserNotFound,
			"user not found",
			domainerror.ErrUserNotFound,
		)
	}

	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		if name == "" {
			return nil, domainerror.NewAuthError(
				domainerror.ErrCodeMissingFields,
				"name is required",
				domainerror.ErrMissingAuthFields,
			)
		}
		user.Name = name
	}

	if input.EmailNotifications != nil {
		user.EmailNotifications = *input.EmailNotifications
	}

	user.UpdatedAt = time.Now().UTC()

	if err := uc.userRepo.Update(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to update user: %w", err)
	}

	return &UpdatePreferencesOutput{User: toUserOutput(user)}, nil
}
