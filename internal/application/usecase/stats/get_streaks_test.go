package stats

import (
	"context"
	"testing"

	"github.com/google/uuid"

	"github.com/habit-tracker/backend/internal/domain/entity"
)

func TestGetStreaksUseCase_Execute(t *testing.T) {
	userID := uuid.New()
	today := entity.NormalizeDate(testDay(t, 0))
	clock := fixedClock{now: today}

	reading := activeGoal(userID, "Read", 2, true)
	running := activeGoal(userID, "Run", 5, true)
	fresh := activeGoal(userID, "Stretch", 1, true)

	checkRepo := &fakeCheckRepo{checks: []*entity.Check{
		// Reading: done today and the two days before.
		completedCheck(userID, reading.ID, testDay(t, 0)),
		completedCheck(userID, reading.ID, testDay(t, 1)),
		completedCheck(userID, reading.ID, testDay(t, 2)),
		// Running: untoggled today, done yesterday.
		incompleteCheck(userID, running.ID, testDay(t, 0)),
		completedCheck(userID, running.ID, testDay(t, 1)),
	}}

	streakRepo := newFakeStreakRepo()
	streakRepo.best[reading.ID.String()] = 8

	goalRepo := &fakeGoalRepo{active: []*entity.Goal{reading, running, fresh}}
	uc := NewGetStreaksUseCase(goalRepo, checkRepo, streakRepo, clock)

	output, err := uc.Execute(context.Background(), GetStreaksInput{UserID: userID})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(output.Streaks) != 3 {
		t.Fatalf("got %d streaks, want 3", len(output.Streaks))
	}

	// Output order follows the active goal order.
	byName := make(map[string]*GoalStreakOutput, len(output.Streaks))
	for i, s := range output.Streaks {
		if s == nil {
			t.Fatalf("streak entry %d is nil", i)
		}
		byName[s.GoalName] = s
	}

	if got := byName["Read"]; got.CurrentStreak != 3 || got.LongestStreak != 8 {
		t.Errorf("Read streak = %d/%d, want 3/8", got.CurrentStreak, got.LongestStreak)
	}
	// An untoggled check today anchors the streak at yesterday.
	if got := byName["Run"]; got.CurrentStreak != 1 || got.LongestStreak != 0 {
		t.Errorf("Run streak = %d/%d, want 1/0", got.CurrentStreak, got.LongestStreak)
	}
	if got := byName["Stretch"]; got.CurrentStreak != 0 || got.LongestStreak != 0 {
		t.Errorf("Stretch streak = %d/%d, want 0/0", got.CurrentStreak, got.LongestStreak)
	}
}

func TestGetStreaksUseCase_Execute_NoActiveGoals(t *testing.T) {
	clock := fixedClock{now: testDay(t, 0)}
	uc := NewGetStreaksUseCase(&fakeGoalRepo{}, &fakeCheckRepo{}, newFakeStreakRepo(), clock)

	output, err := uc.Execute(context.Background(), GetStreaksInput{UserID: uuid.New()})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(output.Streaks) != 0 {
		t.Errorf("got %d streaks, want 0", len(output.Streaks))
	}
}

func TestGetStreaksUseCase_Execute_CheckFailureDegradesToZero(t *testing.T) {
	userID := uuid.New()
	goal := activeGoal(userID, "Read", 2, true)
	clock := fixedClock{now: testDay(t, 0)}

	streakRepo := newFakeStreakRepo()
	streakRepo.best[goal.ID.String()] = 5

	goalRepo := &fakeGoalRepo{active: []*entity.Goal{goal}}
	uc := NewGetStreaksUseCase(goalRepo, &fakeCheckRepo{err: errLedgerDown}, streakRepo, clock)

	output, err := uc.Execute(context.Background(), GetStreaksInput{UserID: userID})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got := output.Streaks[0]
	if got.CurrentStreak != 0 {
		t.Errorf("CurrentStreak = %d, want 0", got.CurrentStreak)
	}
	if got.LongestStreak != 5 {
		t.Errorf("LongestStreak = %d, want 5", got.LongestStreak)
	}
}

func TestGetStreaksUseCase_Execute_GoalListFailurePropagates(t *testing.T) {
	clock := fixedClock{now: testDay(t, 0)}
	uc := NewGetStreaksUseCase(&fakeGoalRepo{err: errLedgerDown}, &fakeCheckRepo{}, newFakeStreakRepo(), clock)

	if _, err := uc.Execute(context.Background(), GetStreaksInput{UserID: uuid.New()}); err == nil {
		t.Fatal("expected error, got nil")
	}
}
