// Package metrics provides Prometheus metrics registry and recording utilities.
//
// This package centralizes the recommendation engine's metrics:
//   - Recommendation request metrics (count, duration, cache outcome)
//   - Generator health metrics (per-source failures)
//   - Cache metrics (hits, misses, write failures, invalidations)
//   - Feedback metrics (submissions by value)
//
// All metrics are automatically registered with the Prometheus default registry
// and exposed via the /metrics endpoint of the metrics server.
//
// Example usage:
//
//	import "reco-engine/internal/observability/metrics"
//
//	func compute(userID int64) {
//	    start := time.Now()
//	    // ... run the pipeline ...
//	    metrics.RecordPipeline(time.Since(start))
//	}
package metrics
