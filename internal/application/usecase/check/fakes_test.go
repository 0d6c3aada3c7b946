// Package check contains check-related use cases.
package check

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/habit-tracker/backend/internal/application/adapter"
	"github.com/habit-tracker/backend/internal/domain/entity"
)

// fixedClock pins "now" so tests control the week anchor.
type fixedClock struct {
	now time.Time
}

func (c fixedClock) Now() time.Time {
	return c.now
}

// fakeGoalRepo serves goals from an in-memory slice.
type fakeGoalRepo struct {
	goals []*entity.Goal
	err   error
}

func (r *fakeGoalRepo) Create(ctx context.Context, goal *entity.Goal) error { return r.err }

func (r *fakeGoalRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Goal, error) {
	if r.err != nil {
		return nil, r.err
	}
	for _, g := range r.goals {
		if g.ID == id {
			return g, nil
		}
	}
	return nil, nil
}

func (r *fakeGoalRepo) FindActiveByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.Goal, error) {
	if r.err != nil {
		return nil, r.err
	}
	var out []*entity.Goal
	for _, g := range r.goals {
		if g.UserID == userID && g.Active {
			out = append(out, g)
		}
	}
	return out, nil
}

func (r *fakeGoalRepo) FindByIDs(ctx context.Context, userID uuid.UUID, ids []uuid.UUID) ([]*entity.Goal, error) {
	return nil, r.err
}

func (r *fakeGoalRepo) CountByUserID(ctx context.Context, userID uuid.UUID) (int64, error) {
	return int64(len(r.goals)), r.err
}

func (r *fakeGoalRepo) CountActiveByUserID(ctx context.Context, userID uuid.UUID) (int64, error) {
	return 0, r.err
}

func (r *fakeGoalRepo) CountByCategory(ctx context.Context, userID, categoryID uuid.UUID) (int64, error) {
	return 0, r.err
}

func (r *fakeGoalRepo) MaxOrder(ctx context.Context, userID uuid.UUID) (int, error) {
	return -1, r.err
}

func (r *fakeGoalRepo) Update(ctx context.Context, goal *entity.Goal) error { return r.err }

func (r *fakeGoalRepo) UpdateOrder(ctx context.Context, id uuid.UUID, order int) error { return r.err }

func (r *fakeGoalRepo) Delete(ctx context.Context, id uuid.UUID) error { return r.err }

func (r *fakeGoalRepo) CompactOrdersAfter(ctx context.Context, userID uuid.UUID, order int) error {
	return r.err
}

// fakeCheckRepo is a stateful in-memory check store.
type fakeCheckRepo struct {
	checks []*entity.Check
	err    error
}

func (r *fakeCheckRepo) Create(ctx context.Context, check *entity.Check) error {
	if r.err != nil {
		return r.err
	}
	r.checks = append(r.checks, check)
	return nil
}

func (r *fakeCheckRepo) FindByID(ctx context.Context, userID, id uuid.UUID) (*entity.Check, error) {
	if r.err != nil {
		return nil, r.err
	}
	for _, c := range r.checks {
		if c.ID == id && c.UserID == userID {
			return c, nil
		}
	}
	return nil, nil
}

func (r *fakeCheckRepo) FindByGoalAndDate(ctx context.Context, userID, goalID uuid.UUID, date time.Time) (*entity.Check, error) {
	if r.err != nil {
		return nil, r.err
	}
	day := entity.NormalizeDate(date)
	for _, c := range r.checks {
		if c.UserID == userID && c.GoalID == goalID && c.Date.Equal(day) {
			return c, nil
		}
	}
	return nil, nil
}

func (r *fakeCheckRepo) FindByDateRange(ctx context.Context, userID uuid.UUID, start, end time.Time) ([]*entity.Check, error) {
	if r.err != nil {
		return nil, r.err
	}
	var out []*entity.Check
	for _, c := range r.checks {
		if c.UserID == userID && !c.Date.Before(start) && !c.Date.After(end) {
			out = append(out, c)
		}
	}
	return out, nil
}

func (r *fakeCheckRepo) FindCompletedByDateRange(ctx context.Context, userID uuid.UUID, start, end time.Time) ([]*entity.Check, error) {
	checks, err := r.FindByDateRange(ctx, userID, start, end)
	if err != nil {
		return nil, err
	}
	var out []*entity.Check
	for _, c := range checks {
		if c.Completed {
			out = append(out, c)
		}
	}
	return out, nil
}

func (r *fakeCheckRepo) CountCompletedForGoals(ctx context.Context, userID uuid.UUID, goalIDs []uuid.UUID, start, end time.Time) (int64, error) {
	return 0, r.err
}

func (r *fakeCheckRepo) Update(ctx context.Context, check *entity.Check) error { return r.err }

func (r *fakeCheckRepo) Delete(ctx context.Context, id uuid.UUID) error {
	if r.err != nil {
		return r.err
	}
	for i, c := range r.checks {
		if c.ID == id {
			r.checks = append(r.checks[:i], r.checks[i+1:]...)
			return nil
		}
	}
	return nil
}

// fakeScoresCache records invalidations.
type fakeScoresCache struct {
	invalidations int
}

func (c *fakeScoresCache) Get(ctx context.Context, userID uuid.UUID, start, end time.Time) ([]adapter.CachedScoreEntry, error) {
	return nil, nil
}

func (c *fakeScoresCache) Set(ctx context.Context, userID uuid.UUID, start, end time.Time, entries []adapter.CachedScoreEntry) error {
	return nil
}

func (c *fakeScoresCache) InvalidateUser(ctx context.Context, userID uuid.UUID) error {
	c.invalidations++
	return nil
}
