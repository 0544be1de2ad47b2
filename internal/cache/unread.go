package cache

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

// UnreadCounter caches per-user unread notification counts so the client's
// polling loop does not hit Postgres on every tick. A nil counter (or one
// built without a Redis address) is a no-op and every lookup misses.
type UnreadCounter struct {
	client *redis.Client
	ttl    time.Duration
}

// NewUnreadCounter connects to Redis at addr. An empty addr returns a
// disabled counter rather than an error so the API can run without Redis.
func NewUnreadCounter(addr, password string, ttl time.Duration) (*UnreadCounter, error) {
	if addr == "" {
		return &UnreadCounter{ttl: ttl}, nil
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:         addr,
		Password:     password,
		DB:           0,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	})

	// Verify connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &UnreadCounter{client: rdb, ttl: ttl}, nil
}

func key(userID string) string {
	return "notifications:unread:" + userID
}

// Get returns the cached count and whether the cache had an entry.
func (c *UnreadCounter) Get(ctx context.Context, userID string) (int64, bool) {
	if c == nil || c.client == nil {
		return 0, false
	}
	val, err := c.client.Get(ctx, key(userID)).Result()
	if err != nil {
		return 0, false
	}
	n, err := strconv.ParseInt(val, 10, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}

// Set stores the count with the configured TTL. Failures are ignored; the
// cache is advisory.
func (c *UnreadCounter) Set(ctx context.Context, userID string, count int64) {
	if c == nil || c.client == nil {
		return
	}
	c.client.Set(ctx, key(userID), strconv.FormatInt(count, 10), c.ttl)
}

// Invalidate drops the cached count after a write that changes it.
func (c *UnreadCounter) Invalidate(ctx context.Context, userID string) {
	if c == nil || c.client == nil {
		return
	}
	c.client.Del(ctx, key(userID))
}

// Close releases the underlying Redis connection.
func (c *UnreadCounter) Close() error {
	if c == nil || c.client == nil {
		return nil
	}
	return c.client.Close()
}
