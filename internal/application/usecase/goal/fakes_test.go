// Package goal contains goal-related use cases.
package goal

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/habit-tracker/backend/internal/application/adapter"
	"github.com/habit-tracker/backend/internal/domain/entity"
)

// fakeGoalRepo is a stateful in-memory goal store.
type fakeGoalRepo struct {
	goals []*entity.Goal
	err   error
}

func (r *fakeGoalRepo) Create(ctx context.Context, goal *entity.Goal) error {
	if r.err != nil {
		return r.err
	}
	r.goals = append(r.goals, goal)
	return nil
}

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
	if r.err != nil {
		return nil, r.err
	}
	wanted := make(map[uuid.UUID]bool, len(ids))
	for _, id := range ids {
		wanted[id] = true
	}
	var out []*entity.Goal
	for _, g := range r.goals {
		if g.UserID == userID && wanted[g.ID] {
			out = append(out, g)
		}
	}
	return out, nil
}

func (r *fakeGoalRepo) CountByUserID(ctx context.Context, userID uuid.UUID) (int64, error) {
	var n int64
	for _, g := range r.goals {
		if g.UserID == userID {
			n++
		}
	}
	return n, r.err
}

func (r *fakeGoalRepo) CountActiveByUserID(ctx context.Context, userID uuid.UUID) (int64, error) {
	var n int64
	for _, g := range r.goals {
		if g.UserID == userID && g.Active {
			n++
		}
	}
	return n, r.err
}

func (r *fakeGoalRepo) CountByCategory(ctx context.Context, userID, categoryID uuid.UUID) (int64, error) {
	var n int64
	for _, g := range r.goals {
		if g.UserID == userID && g.CategoryID != nil && *g.CategoryID == categoryID {
			n++
		}
	}
	return n, r.err
}

func (r *fakeGoalRepo) MaxOrder(ctx context.Context, userID uuid.UUID) (int, error) {
	if r.err != nil {
		return 0, r.err
	}
	max := -1
	for _, g := range r.goals {
		if g.UserID == userID && g.Order > max {
			max = g.Order
		}
	}
	return max, nil
}

func (r *fakeGoalRepo) Update(ctx context.Context, goal *entity.Goal) error { return r.err }

func (r *fakeGoalRepo) UpdateOrder(ctx context.Context, id uuid.UUID, order int) error {
	if r.err != nil {
		return r.err
	}
	for _, g := range r.goals {
		if g.ID == id {
			g.Order = order
		}
	}
	return nil
}

func (r *fakeGoalRepo) Delete(ctx context.Context, id uuid.UUID) error {
	if r.err != nil {
		return r.err
	}
	for i, g := range r.goals {
		if g.ID == id {
			r.goals = append(r.goals[:i], r.goals[i+1:]...)
			return nil
		}
	}
	return nil
}

func (r *fakeGoalRepo) CompactOrdersAfter(ctx context.Context, userID uuid.UUID, order int) error {
	if r.err != nil {
		return r.err
	}
	for _, g := range r.goals {
		if g.UserID == userID && g.Order > order {
			g.Order--
		}
	}
	return nil
}

// fakeCategoryRepo serves categories from an in-memory slice.
type fakeCategoryRepo struct {
	categories []*entity.Category
	err        error
}

func (r *fakeCategoryRepo) Create(ctx context.Context, category *entity.Category) error {
	if r.err != nil {
		return r.err
	}
	r.categories = append(r.categories, category)
	return nil
}

func (r *fakeCategoryRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Category, error) {
	if r.err != nil {
		return nil, r.err
	}
	for _, c := range r.categories {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, nil
}

func (r *fakeCategoryRepo) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.Category, error) {
	if r.err != nil {
		return nil, r.err
	}
	var out []*entity.Category
	for _, c := range r.categories {
		if c.UserID == userID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (r *fakeCategoryRepo) ExistsByUserAndName(ctx context.Context, userID uuid.UUID, name string) (bool, error) {
	if r.err != nil {
		return false, r.err
	}
	for _, c := range r.categories {
		if c.UserID == userID && c.Name == name {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeCategoryRepo) MaxOrder(ctx context.Context, userID uuid.UUID) (int, error) {
	if r.err != nil {
		return 0, r.err
	}
	max := -1
	for _, c := range r.categories {
		if c.UserID == userID && c.Order > max {
			max = c.Order
		}
	}
	return max, nil
}

func (r *fakeCategoryRepo) Update(ctx context.Context, category *entity.Category) error { return r.err }

func (r *fakeCategoryRepo) Delete(ctx context.Context, id uuid.UUID) error {
	if r.err != nil {
		return r.err
	}
	for i, c := range r.categories {
		if c.ID == id {
			r.categories = append(r.categories[:i], r.categories[i+1:]...)
			return nil
		}
	}
	return nil
}

func (r *fakeCategoryRepo) CompactOrdersAfter(ctx context.Context, userID uuid.UUID, order int) error {
	if r.err != nil {
		return r.err
	}
	for _, c := range r.categories {
		if c.UserID == userID && c.Order > order {
			c.Order--
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
