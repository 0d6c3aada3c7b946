package goal

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/habit-tracker/backend/internal/domain/entity"
	domainerror "github.com/habit-tracker/backend/internal/domain/error"
)

func intPtr(v int) *int              { return &v }
func boolPtr(v bool) *bool           { return &v }
func strPtr(v string) *string        { return &v }
func uuidPtr(v uuid.UUID) *uuid.UUID { return &v }

func TestCreateGoalUseCase_Execute(t *testing.T) {
	userID := uuid.New()
	category := entity.NewCategory(userID, "Health", entity.DefaultCategoryColor, 0)

	t.Run("defaults are applied", func(t *testing.T) {
		goalRepo := &fakeGoalRepo{}
		uc := NewCreateGoalUseCase(goalRepo, &fakeCategoryRepo{})

		output, err := uc.Execute(context.Background(), CreateGoalInput{UserID: userID, Name: "Meditate"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		g := output.Goal
		if g.Icon != entity.DefaultGoalIcon || !g.Positive || g.Points != 1 || !g.Active {
			t.Errorf("unexpected defaults: %+v", g)
		}
		if g.Order != 0 {
			t.Errorf("Order = %d, want 0", g.Order)
		}
	})

	t.Run("new goals append to the display order", func(t *testing.T) {
		existing := entity.NewGoal(userID, "Read", "book", true, 2, 3, nil)
		goalRepo := &fakeGoalRepo{goals: []*entity.Goal{existing}}
		uc := NewCreateGoalUseCase(goalRepo, &fakeCategoryRepo{})

		output, err := uc.Execute(context.Background(), CreateGoalInput{UserID: userID, Name: "Run"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.Goal.Order != 4 {
			t.Errorf("Order = %d, want 4", output.Goal.Order)
		}
	})

	t.Run("category must belong to the caller", func(t *testing.T) {
		categoryRepo := &fakeCategoryRepo{categories: []*entity.Category{category}}
		uc := NewCreateGoalUseCase(&fakeGoalRepo{}, categoryRepo)

		_, err := uc.Execute(context.Background(), CreateGoalInput{
			UserID:     uuid.New(),
			Name:       "Run",
			CategoryID: uuidPtr(category.ID),
		})
		if !errors.Is(err, domainerror.ErrGoalCategoryNotFound) {
			t.Errorf("expected ErrGoalCategoryNotFound, got %v", err)
		}
	})

	tests := []struct {
		name    string
		input   CreateGoalInput
		wantErr error
	}{
		{
			name:    "blank name is rejected",
			input:   CreateGoalInput{UserID: userID, Name: "   "},
			wantErr: domainerror.ErrMissingGoalName,
		},
		{
			name:    "zero points are rejected",
			input:   CreateGoalInput{UserID: userID, Name: "Run", Points: intPtr(0)},
			wantErr: domainerror.ErrInvalidGoalPoints,
		},
		{
			name:    "points above five are rejected",
			input:   CreateGoalInput{UserID: userID, Name: "Run", Points: intPtr(6)},
			wantErr: domainerror.ErrInvalidGoalPoints,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := NewCreateGoalUseCase(&fakeGoalRepo{}, &fakeCategoryRepo{})
			_, err := uc.Execute(context.Background(), tt.input)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}
