// Package cache provides Redis-backed caching decorators for domain lookups.
package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/flight-search/flight-route-query-service/internal/infrastructure/retry"
)

// Client is the subset of *redis.Client the caches use.
type Client interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
}

var _ Client = (*redis.Client)(nil)

// NewRedisClient creates and verifies a Redis client connection. The ping is
// tried up to attempts times and onRetry, if set, hears about each failure.
func NewRedisClient(ctx context.Context, redisURL string, attempts int, onRetry retry.Notify) (*redis.Client, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("redis.ParseURL: %w", err)
	}

	rdb := redis.NewClient(opts)
	ping := func(ctx context.Context) error {
		err := rdb.Ping(ctx).Err()
		// A reply from the server (NOAUTH, WRONGPASS) will not change on retry.
		var replyErr redis.Error
		if errors.As(err, &replyErr) {
			return retry.NewPermanent(err)
		}
		return err
	}
	if err := retry.Do(ctx, retry.Connect(attempts), ping, onRetry); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis ping failed: %w", err)
	}

	return rdb, nil
}
