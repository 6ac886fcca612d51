package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"reco-engine/internal/repository"
)

func TestMemoryCache_SetAndGet(t *testing.T) {
	c := NewMemoryCache()
	ctx := context.Background()

	if err := c.SetWithTTL(ctx, "k1", []byte("v1"), time.Minute); err != nil {
		t.Fatalf("SetWithTTL: %v", err)
	}

	got, err := c.Get(ctx, "k1")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if string(got) != "v1" {
		t.Errorf("expected v1, got %q", got)
	}
}

func TestMemoryCache_MissingKey(t *testing.T) {
	c := NewMemoryCache()

	_, err := c.Get(context.Background(), "absent")
	if !errors.Is(err, repository.ErrCacheMiss) {
		t.Errorf("expected ErrCacheMiss, got %v", err)
	}
}

func TestMemoryCache_Expiry(t *testing.T) {
	c := NewMemoryCache()
	ctx := context.Background()

	current := time.Now()
	c.now = func() time.Time { return current }

	if err := c.SetWithTTL(ctx, "k1", []byte("v1"), time.Minute); err != nil {
		t.Fatalf("SetWithTTL: %v", err)
	}

	// Still valid just before the TTL boundary.
	current = current.Add(59 * time.Second)
	if _, err := c.Get(ctx, "k1"); err != nil {
		t.Fatalf("entry should still be live: %v", err)
	}

	// Expired after the TTL.
	current = current.Add(2 * time.Second)
	_, err := c.Get(ctx, "k1")
	if !errors.Is(err, repository.ErrCacheMiss) {
		t.Errorf("expected ErrCacheMiss after expiry, got %v", err)
	}
	if c.Len() != 0 {
		t.Errorf("expired entry should be dropped, have %d entries", c.Len())
	}
}

func TestMemoryCache_DeleteByPrefix(t *testing.T) {
	c := NewMemoryCache()
	ctx := context.Background()

	_ = c.SetWithTTL(ctx, "reco:user:1:types:article", []byte("a"), time.Minute)
	_ = c.SetWithTTL(ctx, "reco:user:1:types:article,job", []byte("b"), time.Minute)
	_ = c.SetWithTTL(ctx, "reco:user:12:types:article", []byte("c"), time.Minute)

	if err := c.DeleteByPrefix(ctx, "reco:user:1:"); err != nil {
		t.Fatalf("DeleteByPrefix: %v", err)
	}

	// Both user-1 entries go; user-12 must survive the prefix match.
	if _, err := c.Get(ctx, "reco:user:1:types:article"); !errors.Is(err, repository.ErrCacheMiss) {
		t.Error("user 1 entry should be deleted")
	}
	if _, err := c.Get(ctx, "reco:user:1:types:article,job"); !errors.Is(err, repository.ErrCacheMiss) {
		t.Error("user 1 multi-type entry should be deleted")
	}
	if _, err := c.Get(ctx, "reco:user:12:types:article"); err != nil {
		t.Errorf("user 12 entry should survive: %v", err)
	}
}

func TestMemoryCache_ValueIsolation(t *testing.T) {
	c := NewMemoryCache()
	ctx := context.Background()

	original := []byte("value")
	_ = c.SetWithTTL(ctx, "k", original, time.Minute)
	original[0] = 'X'

	got, err := c.Get(ctx, "k")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if string(got) != "value" {
		t.Errorf("stored value should be isolated from caller mutation, got %q", got)
	}

	got[0] = 'Y'
	again, _ := c.Get(ctx, "k")
	if string(again) != "value" {
		t.Errorf("returned value should be a copy, got %q", again)
	}
}
