// Package config loads the engine's tuning file.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"reco-engine/internal/usecase/reco"
	pkgconfig "reco-engine/pkg/config"
)

// EngineConfig represents the engine tuning configuration.
type EngineConfig struct {
	Engine struct {
		Weights struct {
			Collaborative float64 `yaml:"collaborative"`
			Content       float64 `yaml:"content"`
			Trending      float64 `yaml:"trending"`
		} `yaml:"weights"`
		Neighbors struct {
			Limit      int `yaml:"limit"`
			MinOverlap int `yaml:"min_overlap"`
		} `yaml:"neighbors"`
		Windows struct {
			ImplicitDays int `yaml:"implicit_days"`
			TrendingDays int `yaml:"trending_days"`
		} `yaml:"windows"`
		Limits struct {
			PerType      int `yaml:"per_type"`
			Default      int `yaml:"default"`
			Interactions int `yaml:"interactions"`
		} `yaml:"limits"`
		Cache struct {
			TTL string `yaml:"ttl"`
		} `yaml:"cache"`
		SlowThreshold string `yaml:"slow_threshold"`
	} `yaml:"engine"`
}

// LoadEngineConfig loads tuning configuration from a YAML file.
// The path parameter is expected to come from a trusted source (command-line argument or hardcoded default).
func LoadEngineConfig(path string) (*EngineConfig, error) {
	// #nosec G304 -- path is provided by trusted source (CLI arg or config), not user input
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config EngineConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := validateEngineConfig(&config); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &config, nil
}

// validateEngineConfig validates the loaded configuration.
func validateEngineConfig(config *EngineConfig) error {
	w := config.Engine.Weights
	if w.Collaborative < 0 || w.Content < 0 || w.Trending < 0 {
		return fmt.Errorf("weights must not be negative")
	}
	sum := w.Collaborative + w.Content + w.Trending
	if sum > 0 && (sum < 0.999 || sum > 1.001) {
		return fmt.Errorf("weights must sum to 1.0, got %.3f", sum)
	}
	if config.Engine.Cache.TTL != "" {
		ttl, err := time.ParseDuration(config.Engine.Cache.TTL)
		if err != nil {
			return fmt.Errorf("invalid cache ttl: %w", err)
		}
		if err := pkgconfig.ValidatePositiveDuration(ttl); err != nil {
			return fmt.Errorf("invalid cache ttl: %w", err)
		}
	}
	if config.Engine.SlowThreshold != "" {
		threshold, err := time.ParseDuration(config.Engine.SlowThreshold)
		if err != nil {
			return fmt.Errorf("invalid slow_threshold: %w", err)
		}
		if err := pkgconfig.ValidatePositiveDuration(threshold); err != nil {
			return fmt.Errorf("invalid slow_threshold: %w", err)
		}
	}
	return nil
}

// ToRecoConfig maps the file onto the engine's Config. Unset fields stay
// zero and the engine fills them with its defaults.
func (c *EngineConfig) ToRecoConfig() reco.Config {
	out := reco.Config{
		CollaborativeWeight: c.Engine.Weights.Collaborative,
		ContentWeight:       c.Engine.Weights.Content,
		TrendingWeight:      c.Engine.Weights.Trending,
		NeighborLimit:       c.Engine.Neighbors.Limit,
		MinOverlap:          c.Engine.Neighbors.MinOverlap,
		ImplicitWindowDays:  c.Engine.Windows.ImplicitDays,
		TrendingWindowDays:  c.Engine.Windows.TrendingDays,
		PerTypeLimit:        c.Engine.Limits.PerType,
		DefaultLimit:        c.Engine.Limits.Default,
		InteractionLimit:    c.Engine.Limits.Interactions,
	}
	if c.Engine.Cache.TTL != "" {
		out.CacheTTL, _ = time.ParseDuration(c.Engine.Cache.TTL)
	}
	if c.Engine.SlowThreshold != "" {
		out.SlowThreshold, _ = time.ParseDuration(c.Engine.SlowThreshold)
	}
	return out
}
