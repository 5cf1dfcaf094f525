// Package redis provides Redis-backed adapters for shared state across
// application instances.
package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/veridian-labs/identity-core/internal/core/ports/driven"
)

// Verify interface compliance
var _ driven.LockoutCounter = (*LockoutCounter)(nil)

const counterPrefix = "identity:failed:"

// LockoutCounter implements driven.LockoutCounter using Redis INCR.
// Increments are atomic, so concurrent failed sign-in attempts against
// different instances are counted exactly once each.
type LockoutCounter struct {
	client *redis.Client
	ttl    time.Duration
}

// NewLockoutCounter creates a Redis-backed failed-attempt counter.
// Counters expire after ttl so abandoned attempts age out on their own;
// a ttl of zero keeps them until reset.
func NewLockoutCounter(client *redis.Client, ttl time.Duration) *LockoutCounter {
	return &LockoutCounter{client: client, ttl: ttl}
}

// Increment atomically increments the failed-attempt count for key and
// returns the new value.
func (c *LockoutCounter) Increment(ctx context.Context, key string) (int, error) {
	k := counterPrefix + key

	pipe := c.client.TxPipeline()
	incr := pipe.Incr(ctx, k)
	if c.ttl > 0 {
		pipe.Expire(ctx, k, c.ttl)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return 0, fmt.Errorf("increment counter %s: %w", key, err)
	}
	return int(incr.Val()), nil
}

// Reset clears the failed-attempt count for key.
// Safe to call when no counter exists.
func (c *LockoutCounter) Reset(ctx context.Context, key string) error {
	if err := c.client.Del(ctx, counterPrefix+key).Err(); err != nil {
		return fmt.Errorf("reset counter %s: %w", key, err)
	}
	return nil
}
