package reco

import "time"

// Config holds the engine's tuning knobs. Zero values are replaced by
// the defaults below at construction time, so an empty Config is valid.
type Config struct {
	// Source weights applied to normalized generator scores. They sum to
	// 1.0 so a single-source item never exceeds 100 before the cap.
	CollaborativeWeight float64
	ContentWeight       float64
	TrendingWeight      float64

	// NeighborLimit bounds how many similar users are considered.
	NeighborLimit int
	// MinOverlap is the minimum shared-item count for a neighbor.
	MinOverlap int
	// ImplicitWindowDays is the trailing window for implicit signals.
	ImplicitWindowDays int
	// TrendingWindowDays is the trailing window for trending content.
	TrendingWindowDays int
	// PerTypeLimit bounds merged candidates kept per content type.
	PerTypeLimit int
	// DefaultLimit is the result limit when the caller passes none.
	DefaultLimit int
	// InteractionLimit bounds explicit interactions read per kind.
	InteractionLimit int

	// CacheTTL bounds how long a computed result may be served.
	CacheTTL time.Duration
	// SlowThreshold is the soft latency budget; cold computations slower
	// than this are logged as warnings but never cancelled.
	SlowThreshold time.Duration
}

// DefaultConfig returns the engine defaults.
func DefaultConfig() Config {
	return Config{
		CollaborativeWeight: 0.5,
		ContentWeight:       0.3,
		TrendingWeight:      0.2,
		NeighborLimit:       50,
		MinOverlap:          3,
		ImplicitWindowDays:  30,
		TrendingWindowDays:  7,
		PerTypeLimit:        20,
		DefaultLimit:        20,
		InteractionLimit:    100,
		CacheTTL:            6 * time.Hour,
		SlowThreshold:       200 * time.Millisecond,
	}
}

// withDefaults fills unset fields from DefaultConfig.
func (c Config) withDefaults() Config {
	def := DefaultConfig()
	if c.CollaborativeWeight <= 0 {
		c.CollaborativeWeight = def.CollaborativeWeight
	}
	if c.ContentWeight <= 0 {
		c.ContentWeight = def.ContentWeight
	}
	if c.TrendingWeight <= 0 {
		c.TrendingWeight = def.TrendingWeight
	}
	if c.NeighborLimit <= 0 {
		c.NeighborLimit = def.NeighborLimit
	}
	if c.MinOverlap <= 0 {
		c.MinOverlap = def.MinOverlap
	}
	if c.ImplicitWindowDays <= 0 {
		c.ImplicitWindowDays = def.ImplicitWindowDays
	}
	if c.TrendingWindowDays <= 0 {
		c.TrendingWindowDays = def.TrendingWindowDays
	}
	if c.PerTypeLimit <= 0 {
		c.PerTypeLimit = def.PerTypeLimit
	}
	if c.DefaultLimit <= 0 {
		c.DefaultLimit = def.DefaultLimit
	}
	if c.InteractionLimit <= 0 {
		c.InteractionLimit = def.InteractionLimit
	}
	if c.CacheTTL <= 0 {
		c.CacheTTL = def.CacheTTL
	}
	if c.SlowThreshold <= 0 {
		c.SlowThreshold = def.SlowThreshold
	}
	return c
}
