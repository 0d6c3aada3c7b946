package mock

import (
	"context"
	"sync"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

var redisOnce sync.Once
var redisConn *redis.Client

// NewRedis starts (once per process) an in-process miniredis and returns
// a client connected to it, backing the scores cache during the suite.
func NewRedis() *redis.Client {
	redisOnce.Do(func() {
		mr, err := miniredis.Run()
		if err != nil {
			panic(err)
		}

		redisConn = redis.NewClient(&redis.Options{
			Addr: mr.Addr(),
		})
	})

	return redisConn
}

// ClearRedis flushes every key between scenarios.
func ClearRedis(client *redis.Client) error {
	return client.FlushAll(context.Background()).Err()
}
