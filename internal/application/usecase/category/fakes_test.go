// Package category contains category-related use cases.
package category

import (
	"context"

	"github.com/google/uuid"

	"github.com/habit-tracker/backend/internal/domain/entity"
)

// fakeCategoryRepo is a stateful in-memory category store.
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

// fakeGoalRepo only answers the category-usage count.
type fakeGoalRepo struct {
	goalsInCategory int64
	err             error
}

func (r *fakeGoalRepo) Create(ctx context.Context, goal *entity.Goal) error { return r.err }

func (r *fakeGoalRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Goal, error) {
	return nil, r.err
}

func (r *fakeGoalRepo) FindActiveByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.Goal, error) {
	return nil, r.err
}

func (r *fakeGoalRepo) FindByIDs(ctx context.Context, userID uuid.UUID, ids []uuid.UUID) ([]*entity.Goal, error) {
	return nil, r.err
}

func (r *fakeGoalRepo) CountByUserID(ctx context.Context, userID uuid.UUID) (int64, error) {
	return 0, r.err
}

func (r *fakeGoalRepo) CountActiveByUserID(ctx context.Context, userID uuid.UUID) (int64, error) {
	return 0, r.err
}

func (r *fakeGoalRepo) CountByCategory(ctx context.Context, userID, categoryID uuid.UUID) (int64, error) {
	return r.goalsInCategory, r.err
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
