package cache

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/flight-search/flight-route-query-service/internal/domain"
	"github.com/flight-search/flight-route-query-service/internal/infrastructure/logger"
)

const carrierKeyPrefix = "carrier:"

// CarrierCache fronts a CarrierResolver with Redis. Only hits are cached, so a
// carrier added later is picked up on the next lookup. Redis failures fall
// through to the underlying resolver.
type CarrierCache struct {
	next   domain.CarrierResolver
	client Client
	ttl    time.Duration
	log    *logger.Logger
}

// NewCarrierCache wraps next. A nil log disables logging.
func NewCarrierCache(next domain.CarrierResolver, client Client, ttl time.Duration, log *logger.Logger) *CarrierCache {
	if log == nil {
		log = logger.Nop()
	}
	return &CarrierCache{
		next:   next,
		client: client,
		ttl:    ttl,
		log:    log.WithComponent("carrier-cache"),
	}
}

// ResolveCarrierCode returns the cached code for name, resolving and caching it
// on a miss.
func (c *CarrierCache) ResolveCarrierCode(ctx context.Context, name string) (string, bool, error) {
	key := CarrierKey(name)

	code, err := c.client.Get(ctx, key).Result()
	switch {
	case err == nil && code != "":
		return code, true, nil
	case err != nil && !errors.Is(err, redis.Nil):
		c.log.Warn().Err(err).Str("key", key).Msg("carrier cache read failed")
	}

	code, found, err := c.next.ResolveCarrierCode(ctx, name)
	if err != nil || !found {
		return code, found, err
	}

	if err := c.client.Set(ctx, key, code, c.ttl).Err(); err != nil {
		c.log.Warn().Err(err).Str("key", key).Msg("carrier cache write failed")
	}
	return code, true, nil
}

// CarrierKey is the cache key of a carrier name.
func CarrierKey(name string) string {
	return carrierKeyPrefix + strings.ToLower(strings.TrimSpace(name))
}

var _ domain.CarrierResolver = (*CarrierCache)(nil)
