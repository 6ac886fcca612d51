package cache

import (
	"context"
	"errors"
	"time"

	"reco-engine/internal/repository"
	"reco-engine/internal/resilience/circuitbreaker"
)

// BreakerCache wraps another cache with circuit breaker protection.
// When the backend is unhealthy the breaker opens and calls fail fast;
// the engine treats every cache error as a miss, so an open breaker
// degrades to recompute-every-request instead of hammering a dead
// backend or failing user-visible requests.
type BreakerCache struct {
	inner repository.Cache
	cb    *circuitbreaker.CircuitBreaker
}

// NewBreakerCache wraps inner with the cache breaker configuration.
func NewBreakerCache(inner repository.Cache) *BreakerCache {
	return &BreakerCache{
		inner: inner,
		cb:    circuitbreaker.New(circuitbreaker.CacheConfig()),
	}
}

func (c *BreakerCache) Get(ctx context.Context, key string) ([]byte, error) {
	result, err := c.cb.Execute(func() (interface{}, error) {
		val, err := c.inner.Get(ctx, key)
		if errors.Is(err, repository.ErrCacheMiss) {
			// A miss is a healthy backend response; it must not trip
			// the breaker.
			return nil, nil
		}
		return val, err
	})
	if err != nil {
		return nil, err
	}
	if result == nil {
		return nil, repository.ErrCacheMiss
	}
	return result.([]byte), nil
}

func (c *BreakerCache) SetWithTTL(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	_, err := c.cb.Execute(func() (interface{}, error) {
		return nil, c.inner.SetWithTTL(ctx, key, value, ttl)
	})
	return err
}

func (c *BreakerCache) DeleteByPrefix(ctx context.Context, prefix string) error {
	_, err := c.cb.Execute(func() (interface{}, error) {
		return nil, c.inner.DeleteByPrefix(ctx, prefix)
	})
	return err
}
