package repository

import (
	"context"
	"errors"
	"time"
)

// ErrCacheMiss indicates that a key is not present in the cache.
// Adapters must return it (possibly wrapped) for absent or expired keys
// so callers can distinguish a miss from a backend failure.
var ErrCacheMiss = errors.New("cache miss")

// Cache is a generic key/value store with TTL and prefix deletion.
// Values are opaque bytes; serialization is the caller's concern.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, error)
	SetWithTTL(ctx context.Context, key string, value []byte, ttl time.Duration) error
	// DeleteByPrefix removes every key starting with prefix.
	DeleteByPrefix(ctx context.Context, prefix string) error
}
