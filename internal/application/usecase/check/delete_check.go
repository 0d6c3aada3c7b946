// Package check contains check-related use cases.
package check

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/habit-tracker/backend/internal/application/adapter"
	domainerror "github.com/habit-tracker/backend/internal/domain/error"
)

// DeleteCheckInput represents the input for a check deletion.
type DeleteCheckInput struct {
	UserID  uuid.UUID
	CheckID uuid.UUID
}

// DeleteCheckUseCase removes a check owned by the caller.
type DeleteCheckUseCase struct {
	checkRepo   adapter.CheckRepository
	scoresCache adapter.ScoresCache
}

// NewDeleteCheckUseCase creates a new DeleteCheckUseCase instance.
// scoresCache may be nil when score caching is disabled.
func NewDeleteCheckUseCase(checkRepo adapter.CheckRepository, scoresCache adapter.ScoresCache) *DeleteCheckUseCase {
	return &DeleteCheckUseCase{
		checkRepo:   checkRepo,
		scoresCache: scoresCache,
	}
}

// Execute performs the check deletion.
func (uc *DeleteCheckUseCase) Execute(ctx context.Context, input DeleteCheckInput) error {
	check, err := uc.checkRepo.FindByID(ctx, input.UserID, input.CheckID)
	if err != nil || check == nil {
		return domainerror.NewCheckError(
			domainerror.ErrCodeCheckNotFound,
			"check not found",
			domainerror.ErrCheckNotFound,
		)
	}

	if err := uc.checkRepo.Delete(ctx, check.ID); err != nil {
		return fmt.Errorf("failed to delete check: %w", err)
	}

	if uc.scoresCache != nil {
		if err := uc.scoresCache.InvalidateUser(ctx, input.UserID); err != nil {
			slog.Warn("scores cache invalidation failed", "user_id", input.UserID, "error", err)
		}
	}

	return nil
}
