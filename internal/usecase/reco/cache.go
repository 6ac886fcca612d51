package reco

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"reco-engine/internal/domain/entity"
	"reco-engine/internal/repository"
)

const cacheKeyPrefix = "reco:user:"

// recommendationCache is a typed layer over the generic byte cache. It
// owns key construction and the JSON codec, so the rest of the engine
// never sees raw keys or bytes.
type recommendationCache struct {
	cache repository.Cache
}

// cacheKey builds the entry key for a user and requested types. Types
// are sorted and deduplicated first, so [job, article] and
// [article, job] address the same entry.
func cacheKey(userID int64, types []entity.ContentType) string {
	names := make([]string, 0, len(types))
	seen := make(map[entity.ContentType]bool, len(types))
	for _, t := range types {
		if seen[t] {
			continue
		}
		seen[t] = true
		names = append(names, string(t))
	}
	sort.Strings(names)
	return fmt.Sprintf("%s%d:types:%s", cacheKeyPrefix, userID, strings.Join(names, ","))
}

// userPrefix is the key prefix shared by all of a user's entries.
func userPrefix(userID int64) string {
	return fmt.Sprintf("%s%d:", cacheKeyPrefix, userID)
}

// Get returns the cached list for the key, or (nil, false) on a miss.
// Backend failures and undecodable entries are reported as errors so
// the caller can log them, but are otherwise equivalent to a miss.
func (c *recommendationCache) Get(ctx context.Context, userID int64, types []entity.ContentType) ([]entity.Recommendation, bool, error) {
	raw, err := c.cache.Get(ctx, cacheKey(userID, types))
	if err != nil {
		if errors.Is(err, repository.ErrCacheMiss) {
			return nil, false, nil
		}
		return nil, false, err
	}
	var recs []entity.Recommendation
	if err := json.Unmarshal(raw, &recs); err != nil {
		return nil, false, fmt.Errorf("decode cached recommendations: %w", err)
	}
	return recs, true, nil
}

// Set stores a full computed list. Entries are always replaced
// wholesale, never patched.
func (c *recommendationCache) Set(ctx context.Context, userID int64, types []entity.ContentType, recs []entity.Recommendation, ttl time.Duration) error {
	raw, err := json.Marshal(recs)
	if err != nil {
		return fmt.Errorf("encode recommendations: %w", err)
	}
	return c.cache.SetWithTTL(ctx, cacheKey(userID, types), raw, ttl)
}

// InvalidateUser removes every entry for the user, whatever type set it
// was keyed with.
func (c *recommendationCache) InvalidateUser(ctx context.Context, userID int64) error {
	return c.cache.DeleteByPrefix(ctx, userPrefix(userID))
}
