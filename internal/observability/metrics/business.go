package metrics

import "time"

// RecordRequest records one recommendation request and whether it was
// served from cache.
func RecordRequest(cacheHit bool) {
	outcome := "miss"
	if cacheHit {
		outcome = "hit"
	}
	RecommendationRequestsTotal.WithLabelValues(outcome).Inc()
}

// RecordPipeline records the duration of one full cold-path computation.
func RecordPipeline(duration time.Duration) {
	PipelineDuration.Observe(duration.Seconds())
}

// RecordGeneratorFailure records a candidate generator failure. The
// request still completes with the remaining sources.
func RecordGeneratorFailure(source, contentType string) {
	GeneratorFailuresTotal.WithLabelValues(source, contentType).Inc()
}

// RecordHydrationDrop records a scored candidate dropped because its
// content record no longer exists.
func RecordHydrationDrop(contentType string) {
	HydrationDropsTotal.WithLabelValues(contentType).Inc()
}

// RecordCacheWriteFailure records a failed recommendation cache write.
func RecordCacheWriteFailure() {
	CacheWriteFailuresTotal.Inc()
}

// RecordCacheInvalidation records an eager per-user invalidation.
func RecordCacheInvalidation() {
	CacheInvalidationsTotal.Inc()
}

// RecordFeedback records one feedback submission by value.
func RecordFeedback(value string) {
	FeedbackSubmissionsTotal.WithLabelValues(value).Inc()
}
