package stats

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/habit-tracker/backend/internal/domain/entity"
	domainerror "github.com/habit-tracker/backend/internal/domain/error"
)

func TestGetScoresUseCase_Execute(t *testing.T) {
	userID := uuid.New()

	meditate := activeGoal(userID, "Meditate", 5, true)
	smoke := activeGoal(userID, "Smoke", 3, false)

	t.Run("positive and negative goals offset", func(t *testing.T) {
		checkRepo := &fakeCheckRepo{checks: []*entity.Check{
			completedCheck(userID, meditate.ID, testDay(t, 0)),
			completedCheck(userID, smoke.ID, testDay(t, 0)),
		}}
		goalRepo := &fakeGoalRepo{active: []*entity.Goal{meditate, smoke}}
		uc := NewGetScoresUseCase(goalRepo, checkRepo, nil)

		output, err := uc.Execute(context.Background(), GetScoresInput{
			UserID:    userID,
			StartDate: testDay(t, 0),
			EndDate:   testDay(t, 0),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(output.Scores) != 1 {
			t.Fatalf("got %d entries, want 1", len(output.Scores))
		}
		entry := output.Scores[0]
		if entry.Value != 2 {
			t.Errorf("Value = %d, want 2", entry.Value)
		}
		if entry.CompletedCount != 2 || entry.TotalCount != 2 {
			t.Errorf("counts = %d/%d, want 2/2", entry.CompletedCount, entry.TotalCount)
		}
	})

	t.Run("one entry per day across the range", func(t *testing.T) {
		checkRepo := &fakeCheckRepo{checks: []*entity.Check{
			completedCheck(userID, meditate.ID, testDay(t, 2)),
			completedCheck(userID, meditate.ID, testDay(t, 0)),
		}}
		goalRepo := &fakeGoalRepo{active: []*entity.Goal{meditate, smoke}}
		uc := NewGetScoresUseCase(goalRepo, checkRepo, nil)

		output, err := uc.Execute(context.Background(), GetScoresInput{
			UserID:    userID,
			StartDate: testDay(t, 2),
			EndDate:   testDay(t, 0),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(output.Scores) != 3 {
			t.Fatalf("got %d entries, want 3", len(output.Scores))
		}

		wantValues := []int{5, 0, 5}
		for i, want := range wantValues {
			if output.Scores[i].Value != want {
				t.Errorf("day %d value = %d, want %d", i, output.Scores[i].Value, want)
			}
			if output.Scores[i].Date != testDay(t, 2-i).Format(dateLayout) {
				t.Errorf("day %d date = %s, want %s", i, output.Scores[i].Date, testDay(t, 2-i).Format(dateLayout))
			}
		}
	})

	t.Run("untoggled checks score nothing", func(t *testing.T) {
		checkRepo := &fakeCheckRepo{checks: []*entity.Check{
			incompleteCheck(userID, meditate.ID, testDay(t, 0)),
		}}
		goalRepo := &fakeGoalRepo{active: []*entity.Goal{meditate}}
		uc := NewGetScoresUseCase(goalRepo, checkRepo, nil)

		output, err := uc.Execute(context.Background(), GetScoresInput{
			UserID:    userID,
			StartDate: testDay(t, 0),
			EndDate:   testDay(t, 0),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		entry := output.Scores[0]
		if entry.Value != 0 || entry.CompletedCount != 0 {
			t.Errorf("entry = %+v, want zero value and count", entry)
		}
	})

	t.Run("orphaned checks count but carry no weight", func(t *testing.T) {
		deletedGoalID := uuid.New()
		checkRepo := &fakeCheckRepo{checks: []*entity.Check{
			completedCheck(userID, meditate.ID, testDay(t, 0)),
			completedCheck(userID, deletedGoalID, testDay(t, 0)),
		}}
		goalRepo := &fakeGoalRepo{active: []*entity.Goal{meditate}}
		uc := NewGetScoresUseCase(goalRepo, checkRepo, nil)

		output, err := uc.Execute(context.Background(), GetScoresInput{
			UserID:    userID,
			StartDate: testDay(t, 0),
			EndDate:   testDay(t, 0),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		entry := output.Scores[0]
		if entry.Value != 5 {
			t.Errorf("Value = %d, want 5", entry.Value)
		}
		if entry.CompletedCount != 2 {
			t.Errorf("CompletedCount = %d, want 2", entry.CompletedCount)
		}
		if entry.TotalCount != 1 {
			t.Errorf("TotalCount = %d, want 1", entry.TotalCount)
		}
	})

	t.Run("inverted range is rejected", func(t *testing.T) {
		uc := NewGetScoresUseCase(&fakeGoalRepo{}, &fakeCheckRepo{}, nil)

		_, err := uc.Execute(context.Background(), GetScoresInput{
			UserID:    userID,
			StartDate: testDay(t, 0),
			EndDate:   testDay(t, 1),
		})
		if !errors.Is(err, domainerror.ErrInvalidDateRange) {
			t.Errorf("expected ErrInvalidDateRange, got %v", err)
		}

		var statsErr *domainerror.StatsError
		if !errors.As(err, &statsErr) {
			t.Fatalf("expected StatsError, got %T", err)
		}
		if statsErr.Code != domainerror.ErrCodeInvalidDateRange {
			t.Errorf("Code = %s, want %s", statsErr.Code, domainerror.ErrCodeInvalidDateRange)
		}
	})

	t.Run("check failure propagates", func(t *testing.T) {
		goalRepo := &fakeGoalRepo{active: []*entity.Goal{meditate}}
		uc := NewGetScoresUseCase(goalRepo, &fakeCheckRepo{err: errLedgerDown}, nil)

		_, err := uc.Execute(context.Background(), GetScoresInput{
			UserID:    userID,
			StartDate: testDay(t, 1),
			EndDate:   testDay(t, 0),
		})
		if !errors.Is(err, errLedgerDown) {
			t.Errorf("expected wrapped ledger error, got %v", err)
		}
	})
}

func TestGetScoresUseCase_Execute_Cache(t *testing.T) {
	userID := uuid.New()
	goal := activeGoal(userID, "Meditate", 5, true)

	cache := newFakeScoresCache()
	checkRepo := &fakeCheckRepo{checks: []*entity.Check{
		completedCheck(userID, goal.ID, testDay(t, 0)),
	}}
	goalRepo := &fakeGoalRepo{active: []*entity.Goal{goal}}
	uc := NewGetScoresUseCase(goalRepo, checkRepo, cache)

	input := GetScoresInput{UserID: userID, StartDate: testDay(t, 0), EndDate: testDay(t, 0)}

	first, err := uc.Execute(context.Background(), input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cache.sets != 1 {
		t.Fatalf("cache writes = %d, want 1", cache.sets)
	}

	// Break the repository: the second read must come from the cache.
	checkRepo.err = errLedgerDown
	second, err := uc.Execute(context.Background(), input)
	if err != nil {
		t.Fatalf("unexpected error on cached read: %v", err)
	}
	if len(second.Scores) != 1 || second.Scores[0] != first.Scores[0] {
		t.Errorf("cached entry %+v differs from computed %+v", second.Scores[0], first.Scores[0])
	}
}
