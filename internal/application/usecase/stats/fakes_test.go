// Package stats contains statistics-related use cases.
package stats

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/habit-tracker/backend/internal/application/adapter"
	"github.com/habit-tracker/backend/internal/domain/entity"
)

// fixedClock pins "now" so tests control the streak anchor date.
type fixedClock struct {
	now time.Time
}

func (c fixedClock) Now() time.Time {
	return c.now
}

// fakeGoalRepo serves a static set of active goals.
type fakeGoalRepo struct {
	active []*entity.Goal
	total  int64
	err    error
}

func (r *fakeGoalRepo) Create(ctx context.Context, goal *entity.Goal) error { return r.err }

func (r *fakeGoalRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Goal, error) {
	return nil, r.err
}

func (r *fakeGoalRepo) FindActiveByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.Goal, error) {
	if r.err != nil {
		return nil, r.err
	}
	return r.active, nil
}

func (r *fakeGoalRepo) FindByIDs(ctx context.Context, userID uuid.UUID, ids []uuid.UUID) ([]*entity.Goal, error) {
	return nil, r.err
}

func (r *fakeGoalRepo) CountByUserID(ctx context.Context, userID uuid.UUID) (int64, error) {
	return r.total, r.err
}

func (r *fakeGoalRepo) CountActiveByUserID(ctx context.Context, userID uuid.UUID) (int64, error) {
	return int64(len(r.active)), r.err
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

// fakeCheckRepo serves checks from an in-memory slice.
type fakeCheckRepo struct {
	checks []*entity.Check
	err    error
}

func (r *fakeCheckRepo) Create(ctx context.Context, check *entity.Check) error { return r.err }

func (r *fakeCheckRepo) FindByID(ctx context.Context, userID, id uuid.UUID) (*entity.Check, error) {
	return nil, r.err
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
	if r.err != nil {
		return 0, r.err
	}
	ids := make(map[uuid.UUID]bool, len(goalIDs))
	for _, id := range goalIDs {
		ids[id] = true
	}
	var count int64
	for _, c := range r.checks {
		if c.UserID == userID && c.Completed && ids[c.GoalID] && !c.Date.Before(start) && !c.Date.After(end) {
			count++
		}
	}
	return count, nil
}

func (r *fakeCheckRepo) Update(ctx context.Context, check *entity.Check) error { return r.err }

func (r *fakeCheckRepo) Delete(ctx context.Context, id uuid.UUID) error { return r.err }

// fakeStreakRepo keeps high-water marks in a map keyed by goal ID.
type fakeStreakRepo struct {
	best    map[string]int
	upserts int
	err     error
}

func newFakeStreakRepo() *fakeStreakRepo {
	return &fakeStreakRepo{best: make(map[string]int)}
}

func streakKey(goalID *uuid.UUID) string {
	if goalID == nil {
		return "aggregate"
	}
	return goalID.String()
}

func (r *fakeStreakRepo) BestValue(ctx context.Context, userID uuid.UUID, goalID *uuid.UUID) (int, error) {
	if r.err != nil {
		return 0, r.err
	}
	return r.best[streakKey(goalID)], nil
}

func (r *fakeStreakRepo) UpsertIfGreater(ctx context.Context, record *entity.StreakRecord) error {
	if r.err != nil {
		return r.err
	}
	r.upserts++
	key := streakKey(record.GoalID)
	if record.Value > r.best[key] {
		r.best[key] = record.Value
	}
	return nil
}

// fakeUserRepo serves a single user.
type fakeUserRepo struct {
	user *entity.User
	err  error
}

func (r *fakeUserRepo) Create(ctx context.Context, user *entity.User) error { return r.err }

func (r *fakeUserRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	if r.err != nil {
		return nil, r.err
	}
	return r.user, nil
}

func (r *fakeUserRepo) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	return r.user, r.err
}

func (r *fakeUserRepo) Update(ctx context.Context, user *entity.User) error { return r.err }

func (r *fakeUserRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	return r.user != nil, r.err
}

// fakeEmailService records queued milestone emails.
type fakeEmailService struct {
	queued []adapter.QueueStreakMilestoneInput
}

func (s *fakeEmailService) QueueStreakMilestoneEmail(ctx context.Context, input adapter.QueueStreakMilestoneInput) error {
	s.queued = append(s.queued, input)
	return nil
}

// fakeScoresCache is an in-memory ScoresCache.
type fakeScoresCache struct {
	entries map[string][]adapter.CachedScoreEntry
	sets    int
}

func newFakeScoresCache() *fakeScoresCache {
	return &fakeScoresCache{entries: make(map[string][]adapter.CachedScoreEntry)}
}

func cacheKey(userID uuid.UUID, start, end time.Time) string {
	return fmt.Sprintf("%s:%s:%s", userID, start.Format(dateLayout), end.Format(dateLayout))
}

func (c *fakeScoresCache) Get(ctx context.Context, userID uuid.UUID, start, end time.Time) ([]adapter.CachedScoreEntry, error) {
	return c.entries[cacheKey(userID, start, end)], nil
}

func (c *fakeScoresCache) Set(ctx context.Context, userID uuid.UUID, start, end time.Time, entries []adapter.CachedScoreEntry) error {
	c.sets++
	c.entries[cacheKey(userID, start, end)] = entries
	return nil
}

func (c *fakeScoresCache) InvalidateUser(ctx context.Context, userID uuid.UUID) error {
	c.entries = make(map[string][]adapter.CachedScoreEntry)
	return nil
}

// Test fixture helpers.

func activeGoal(userID uuid.UUID, name string, points int, positive bool) *entity.Goal {
	g := entity.NewGoal(userID, name, entity.DefaultGoalIcon, positive, points, 0, nil)
	return g
}

func completedCheck(userID, goalID uuid.UUID, date time.Time) *entity.Check {
	return entity.NewCheck(userID, goalID, date)
}

func incompleteCheck(userID, goalID uuid.UUID, date time.Time) *entity.Check {
	c := entity.NewCheck(userID, goalID, date)
	c.Completed = false
	return c
}
