package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Recommendation pipeline metrics track request volume and latency.
var (
	// RecommendationRequestsTotal counts recommendation requests by cache outcome
	RecommendationRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "recommendation_requests_total",
			Help: "Total number of recommendation requests",
		},
		[]string{"cache"},
	)

	// PipelineDuration measures the cold-path computation duration in seconds
	PipelineDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "recommendation_pipeline_duration_seconds",
			Help:    "Full recommendation pipeline duration in seconds (cache misses only)",
			Buckets: prometheus.DefBuckets,
		},
	)

	// GeneratorFailuresTotal counts candidate generator failures by source and content type
	GeneratorFailuresTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "recommendation_generator_failures_total",
			Help: "Total number of candidate generator failures",
		},
		[]string{"source", "content_type"},
	)

	// HydrationDropsTotal counts scored candidates dropped because their content no longer exists
	HydrationDropsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "recommendation_hydration_drops_total",
			Help: "Total number of candidates dropped during hydration",
		},
		[]string{"content_type"},
	)
)

// Cache metrics track the recommendation cache health.
var (
	// CacheWriteFailuresTotal counts failed cache writes (logged, never retried)
	CacheWriteFailuresTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "recommendation_cache_write_failures_total",
			Help: "Total number of failed recommendation cache writes",
		},
	)

	// CacheInvalidationsTotal counts eager per-user cache invalidations
	CacheInvalidationsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "recommendation_cache_invalidations_total",
			Help: "Total number of per-user cache invalidations triggered by feedback",
		},
	)
)

// Feedback metrics track user feedback volume.
var (
	// FeedbackSubmissionsTotal counts feedback submissions by value
	FeedbackSubmissionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "recommendation_feedback_submissions_total",
			Help: "Total number of feedback submissions",
		},
		[]string{"value"},
	)
)
