package goal

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/habit-tracker/backend/internal/domain/entity"
	domainerror "github.com/habit-tracker/backend/internal/domain/error"
)

func TestUpdateGoalUseCase_Execute(t *testing.T) {
	userID := uuid.New()

	newRepo := func() (*fakeGoalRepo, *entity.Goal) {
		goal := entity.NewGoal(userID, "Read", "book", true, 2, 0, nil)
		return &fakeGoalRepo{goals: []*entity.Goal{goal}}, goal
	}

	t.Run("partial update touches only provided fields", func(t *testing.T) {
		goalRepo, goal := newRepo()
		uc := NewUpdateGoalUseCase(goalRepo, &fakeCategoryRepo{})

		output, err := uc.Execute(context.Background(), UpdateGoalInput{
			UserID: userID,
			GoalID: goal.ID,
			Points: intPtr(5),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.Goal.Points != 5 {
			t.Errorf("Points = %d, want 5", output.Goal.Points)
		}
		if output.Goal.Name != "Read" || output.Goal.Icon != "book" {
			t.Errorf("untouched fields changed: %+v", output.Goal)
		}
	})

	t.Run("pausing a goal", func(t *testing.T) {
		goalRepo, goal := newRepo()
		uc := NewUpdateGoalUseCase(goalRepo, &fakeCategoryRepo{})

		output, err := uc.Execute(context.Background(), UpdateGoalInput{
			UserID: userID,
			GoalID: goal.ID,
			Active: boolPtr(false),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.Goal.Active {
			t.Error("expected the goal to be paused")
		}
	})

	t.Run("assigning and clearing a category", func(t *testing.T) {
		goalRepo, goal := newRepo()
		category := entity.NewCategory(userID, "Health", entity.DefaultCategoryColor, 0)
		categoryRepo := &fakeCategoryRepo{categories: []*entity.Category{category}}
		uc := NewUpdateGoalUseCase(goalRepo, categoryRepo)

		output, err := uc.Execute(context.Background(), UpdateGoalInput{
			UserID:     userID,
			GoalID:     goal.ID,
			CategoryID: uuidPtr(category.ID),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.Goal.CategoryID == nil || *output.Goal.CategoryID != category.ID {
			t.Fatalf("CategoryID = %v, want %s", output.Goal.CategoryID, category.ID)
		}

		output, err = uc.Execute(context.Background(), UpdateGoalInput{
			UserID:        userID,
			GoalID:        goal.ID,
			ClearCategory: true,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.Goal.CategoryID != nil {
			t.Errorf("CategoryID = %v, want nil", output.Goal.CategoryID)
		}
	})

	t.Run("invalid points are rejected", func(t *testing.T) {
		goalRepo, goal := newRepo()
		uc := NewUpdateGoalUseCase(goalRepo, &fakeCategoryRepo{})

		_, err := uc.Execute(context.Background(), UpdateGoalInput{
			UserID: userID,
			GoalID: goal.ID,
			Points: intPtr(9),
		})
		if !errors.Is(err, domainerror.ErrInvalidGoalPoints) {
			t.Errorf("expected ErrInvalidGoalPoints, got %v", err)
		}
	})

	t.Run("foreign goal is rejected", func(t *testing.T) {
		goalRepo, goal := newRepo()
		uc := NewUpdateGoalUseCase(goalRepo, &fakeCategoryRepo{})

		_, err := uc.Execute(context.Background(), UpdateGoalInput{
			UserID: uuid.New(),
			GoalID: goal.ID,
			Name:   strPtr("Stolen"),
		})
		if !errors.Is(err, domainerror.ErrGoalNotFound) {
			t.Errorf("expected ErrGoalNotFound, got %v", err)
		}
	})
}

func TestDeleteGoalUseCase_Execute(t *testing.T) {
	userID := uuid.New()

	first := entity.NewGoal(userID, "Read", "book", true, 2, 0, nil)
	second := entity.NewGoal(userID, "Run", "sneaker", true, 3, 1, nil)
	third := entity.NewGoal(userID, "Sleep", "moon", true, 1, 2, nil)

	t.Run("delete compacts the display order", func(t *testing.T) {
		goalRepo := &fakeGoalRepo{goals: []*entity.Goal{first, second, third}}
		cache := &fakeScoresCache{}
		uc := NewDeleteGoalUseCase(goalRepo, cache)

		if err := uc.Execute(context.Background(), DeleteGoalInput{UserID: userID, GoalID: second.ID}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(goalRepo.goals) != 2 {
			t.Fatalf("stored %d goals, want 2", len(goalRepo.goals))
		}
		if first.Order != 0 || third.Order != 1 {
			t.Errorf("orders = %d,%d, want 0,1", first.Order, third.Order)
		}
		if cache.invalidations != 1 {
			t.Errorf("cache invalidations = %d, want 1", cache.invalidations)
		}
	})

	t.Run("unknown goal is rejected", func(t *testing.T) {
		goalRepo := &fakeGoalRepo{}
		uc := NewDeleteGoalUseCase(goalRepo, nil)

		err := uc.Execute(context.Background(), DeleteGoalInput{UserID: userID, GoalID: uuid.New()})
		if !errors.Is(err, domainerror.ErrGoalNotFound) {
			t.Errorf("expected ErrGoalNotFound, got %v", err)
		}
	})
}

func TestReorderGoalsUseCase_Execute(t *testing.T) {
	userID := uuid.New()

	t.Run("applies the requested order", func(t *testing.T) {
		a := entity.NewGoal(userID, "A", "a", true, 1, 0, nil)
		b := entity.NewGoal(userID, "B", "b", true, 1, 1, nil)
		goalRepo := &fakeGoalRepo{goals: []*entity.Goal{a, b}}
		uc := NewReorderGoalsUseCase(goalRepo)

		err := uc.Execute(context.Background(), ReorderGoalsInput{
			UserID: userID,
			Goals: []GoalOrderInput{
				{GoalID: a.ID, Order: 1},
				{GoalID: b.ID, Order: 0},
			},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if a.Order != 1 || b.Order != 0 {
			t.Errorf("orders = %d,%d, want 1,0", a.Order, b.Order)
		}
	})

	t.Run("foreign goal rejects the whole batch", func(t *testing.T) {
		a := entity.NewGoal(userID, "A", "a", true, 1, 0, nil)
		foreign := entity.NewGoal(uuid.New(), "X", "x", true, 1, 0, nil)
		goalRepo := &fakeGoalRepo{goals: []*entity.Goal{a, foreign}}
		uc := NewReorderGoalsUseCase(goalRepo)

		err := uc.Execute(context.Background(), ReorderGoalsInput{
			UserID: userID,
			Goals: []GoalOrderInput{
				{GoalID: a.ID, Order: 1},
				{GoalID: foreign.ID, Order: 0},
			},
		})
		if !errors.Is(err, domainerror.ErrInvalidGoalOrder) {
			t.Errorf("expected ErrInvalidGoalOrder, got %v", err)
		}
		if a.Order != 0 {
			t.Errorf("order mutated on rejected batch: %d", a.Order)
		}
	})
}
