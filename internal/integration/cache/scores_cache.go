// Package cache implements Redis-backed caches for computed read models.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/habit-tracker/backend/internal/application/adapter"
)

const (
	// scoresTTL bounds how long a computed range can be served without
	// recomputation. Invalidation on writes is the primary mechanism;
	// the TTL covers missed invalidations.
	scoresTTL = time.Hour

	dateLayout = "2006-01-02"
)

// scoresCache implements the adapter.ScoresCache interface on Redis.
// Every cached range key is tracked in a per-user set so invalidation
// can drop all of a user's ranges without scanning the keyspace.
type scoresCache struct {
	client *redis.Client
}

// NewScoresCache creates a new Redis scores cache.
func NewScoresCache(client *redis.Client) adapter.ScoresCache {
	return &scoresCache{
		client: client,
	}
}

// Get returns the cached entries for the range, or (nil, nil) on a miss.
func (c *scoresCache) Get(ctx context.Context, userID uuid.UUID, start, end time.Time) ([]adapter.CachedScoreEntry, error) {
	payload, err := c.client.Get(ctx, rangeKey(userID, start, end)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}

	var entries []adapter.CachedScoreEntry
	if err := json.Unmarshal([]byte(payload), &entries); err != nil {
		return nil, fmt.Errorf("failed to decode cached scores: %w", err)
	}
	return entries, nil
}

// Set stores the entries for the range.
func (c *scoresCache) Set(ctx context.Context, userID uuid.UUID, start, end time.Time, entries []adapter.CachedScoreEntry) error {
	payload, err := json.Marshal(entries)
	if err != nil {
		return fmt.Errorf("failed to encode scores: %w", err)
	}

	key := rangeKey(userID, start, end)
	pipe := c.client.TxPipeline()
	pipe.Set(ctx, key, payload, scoresTTL)
	pipe.SAdd(ctx, userKeysKey(userID), key)
	pipe.Expire(ctx, userKeysKey(userID), scoresTTL)
	_, err = pipe.Exec(ctx)
	return err
}

// InvalidateUser drops all cached ranges for the user.
func (c *scoresCache) InvalidateUser(ctx context.Context, userID uuid.UUID) error {
	keysKey := userKeysKey(userID)
	keys, err := c.client.SMembers(ctx, keysKey).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil
		}
		return err
	}

	keys = append(keys, keysKey)
	return c.client.Del(ctx, keys...).Err()
}

func rangeKey(userID uuid.UUID, start, end time.Time) string {
	return fmt.Sprintf("scores:%s:%s:%s", userID, start.Format(dateLayout), end.Format(dateLayout))
}

func userKeysKey(userID uuid.UUID) string {
	return fmt.Sprintf("scores:%s:keys", userID)
}
