package config

import (
	"fmt"
	"time"
)

// ValidatePositiveDuration validates that a duration is positive
// (greater than zero). Used for knobs that must not be zero, like the
// result cache TTL and the pipeline slow threshold.
//
// Example:
//
//	if err := ValidatePositiveDuration(ttl); err != nil {
//	    return fmt.Errorf("invalid cache ttl: %w", err)
//	}
func ValidatePositiveDuration(d time.Duration) error {
	if d <= 0 {
		return fmt.Errorf("duration must be positive, got %v", d)
	}
	return nil
}
