package check

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/habit-tracker/backend/internal/domain/entity"
)

func TestGetWeekChecksUseCase_Execute(t *testing.T) {
	userID := uuid.New()
	// Sunday 2025-06-15: the week runs through Saturday 2025-06-21.
	wednesday := time.Date(2025, 6, 18, 9, 30, 0, 0, time.UTC)
	clock := fixedClock{now: wednesday}

	reading := entity.NewGoal(userID, "Read", "book", true, 2, 0, nil)
	paused := entity.NewGoal(userID, "Swim", "waves", true, 4, 1, nil)
	paused.Active = false

	doneMonday := entity.NewCheck(userID, reading.ID, time.Date(2025, 6, 16, 0, 0, 0, 0, time.UTC))
	undoneTuesday := entity.NewCheck(userID, reading.ID, time.Date(2025, 6, 17, 0, 0, 0, 0, time.UTC))
	undoneTuesday.Completed = false
	// Outside the week, must not appear.
	lastSaturday := entity.NewCheck(userID, reading.ID, time.Date(2025, 6, 14, 0, 0, 0, 0, time.UTC))

	goalRepo := &fakeGoalRepo{goals: []*entity.Goal{reading, paused}}
	checkRepo := &fakeCheckRepo{checks: []*entity.Check{doneMonday, undoneTuesday, lastSaturday}}
	uc := NewGetWeekChecksUseCase(checkRepo, goalRepo, clock)

	output, err := uc.Execute(context.Background(), GetWeekChecksInput{UserID: userID})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if output.WeekStart != "2025-06-15" || output.WeekEnd != "2025-06-21" {
		t.Errorf("week = %s..%s, want 2025-06-15..2025-06-21", output.WeekStart, output.WeekEnd)
	}
	if len(output.Checks) != 1 {
		t.Fatalf("got %d rows, want 1 (paused goals excluded)", len(output.Checks))
	}

	row := output.Checks[0]
	if row.GoalName != "Read" || len(row.Days) != 7 {
		t.Fatalf("unexpected row: %+v", row)
	}

	monday, tuesday := row.Days[1], row.Days[2]
	if !monday.Completed || monday.CheckID == nil || *monday.CheckID != doneMonday.ID {
		t.Errorf("monday cell = %+v, want completed with check ID", monday)
	}
	if tuesday.Completed || tuesday.CheckID == nil {
		t.Errorf("tuesday cell = %+v, want present but not completed", tuesday)
	}
	for _, d := range []int{0, 3, 4, 5, 6} {
		if cell := row.Days[d]; cell.Completed || cell.CheckID != nil {
			t.Errorf("day %d cell = %+v, want empty", d, cell)
		}
	}
}

func TestGetDateChecksUseCase_Execute(t *testing.T) {
	userID := uuid.New()
	day := time.Date(2025, 6, 18, 0, 0, 0, 0, time.UTC)

	reading := entity.NewGoal(userID, "Read", "book", true, 2, 0, nil)
	running := entity.NewGoal(userID, "Run", "sneaker", true, 5, 1, nil)

	done := entity.NewCheck(userID, reading.ID, day)

	goalRepo := &fakeGoalRepo{goals: []*entity.Goal{reading, running}}
	checkRepo := &fakeCheckRepo{checks: []*entity.Check{done}}
	uc := NewGetDateChecksUseCase(checkRepo, goalRepo)

	output, err := uc.Execute(context.Background(), GetDateChecksInput{UserID: userID, Date: day.Add(20 * time.Hour)})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if output.Date != "2025-06-18" {
		t.Errorf("Date = %s, want 2025-06-18", output.Date)
	}
	if len(output.Checks) != 2 {
		t.Fatalf("got %d rows, want 2", len(output.Checks))
	}

	byName := map[string]*GoalDayOutput{}
	for _, row := range output.Checks {
		byName[row.GoalName] = row
	}
	if row := byName["Read"]; !row.Completed || row.CheckID == nil {
		t.Errorf("Read row = %+v, want completed", row)
	}
	if row := byName["Run"]; row.Completed || row.CheckID != nil {
		t.Errorf("Run row = %+v, want empty", row)
	}
}
