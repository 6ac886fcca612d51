package reco

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"sync"
	"time"

	"reco-engine/internal/domain/entity"
	"reco-engine/internal/observability/logging"
	"reco-engine/internal/observability/metrics"
	"reco-engine/internal/observability/tracing"
	"reco-engine/internal/repository"

	"golang.org/x/sync/singleflight"
)

// Service is the recommendation engine's public surface. It owns the
// per-request pipeline (signals, neighbors, generators, merge, hydrate,
// explain), the result cache, and feedback handling. All dependencies
// are injected at construction time; there is no package-level state.
type Service struct {
	interactions repository.InteractionRepository
	feedback     repository.FeedbackRepository
	cache        *recommendationCache
	cfg          Config
	logger       *slog.Logger

	signals    *signalsReader
	neighbors  *neighborFinder
	generators []generator
	hydrator   *hydrator

	// group deduplicates concurrent cold computations for the same
	// cache key. Recomputation is idempotent, so this is purely a
	// load optimization.
	group singleflight.Group
	now   func() time.Time
}

// NewService constructs the engine from its ports. A nil logger falls
// back to slog.Default().
func NewService(
	interactions repository.InteractionRepository,
	feedback repository.FeedbackRepository,
	cache repository.Cache,
	cfg Config,
	logger *slog.Logger,
) *Service {
	cfg = cfg.withDefaults()
	if logger == nil {
		logger = slog.Default()
	}
	now := time.Now

	return &Service{
		interactions: interactions,
		feedback:     feedback,
		cache:        &recommendationCache{cache: cache},
		cfg:          cfg,
		logger:       logger,
		signals:      &signalsReader{repo: interactions, cfg: cfg},
		neighbors:    &neighborFinder{repo: interactions, cfg: cfg},
		generators: []generator{
			&collaborativeGenerator{repo: interactions, weight: cfg.CollaborativeWeight},
			&contentBasedGenerator{repo: interactions, weight: cfg.ContentWeight, limit: cfg.PerTypeLimit},
			&trendingGenerator{repo: interactions, weight: cfg.TrendingWeight, windowDays: cfg.TrendingWindowDays, limit: cfg.PerTypeLimit, now: now},
		},
		hydrator: &hydrator{repo: interactions},
		now:      now,
	}
}

// GetInput are the parameters for GetRecommendations.
type GetInput struct {
	UserID int64
	// Types restricts the result to these content types. Empty means
	// all supported types.
	Types []entity.ContentType
	// Limit bounds the combined result. Zero means the default (20).
	Limit int
	// ExcludeIDs removes specific item IDs from the result.
	ExcludeIDs []int64
	// IncludeExplanations controls whether explanation text is attached.
	// nil means true.
	IncludeExplanations *bool
}

func (in *GetInput) includeExplanations() bool {
	return in.IncludeExplanations == nil || *in.IncludeExplanations
}

// GetRecommendations returns the ranked, explained, hydrated
// recommendations for a user. Results are served from the per-(user,
// types) cache when possible; on a miss the full pipeline runs and the
// result is cached before filtering. Exclusions and the limit are
// applied per request, never baked into the cached value.
func (s *Service) GetRecommendations(ctx context.Context, in GetInput) ([]entity.Recommendation, error) {
	if in.UserID <= 0 {
		return nil, ErrInvalidUserID
	}
	types, err := normalizeTypes(in.Types)
	if err != nil {
		return nil, err
	}

	ctx, span := tracing.GetTracer().Start(ctx, "reco.GetRecommendations")
	defer span.End()
	ctx = logging.WithNewComputationID(ctx)

	logger := logging.WithComputationID(ctx, s.logger).With(
		slog.Int64("user_id", in.UserID))
	// Downstream stages pull this logger back out with
	// logging.FromContext, keeping the computation ID on every entry.
	ctx = logging.WithLogger(ctx, logger)

	cached, hit, err := s.cache.Get(ctx, in.UserID, types)
	if err != nil {
		// Cache trouble is a permanent miss, never a request failure.
		logger.Warn("recommendation cache read failed", slog.Any("error", err))
	}
	metrics.RecordRequest(hit)
	if hit {
		return s.finalize(cached, in), nil
	}

	key := cacheKey(in.UserID, types)
	result, err, _ := s.group.Do(key, func() (any, error) {
		return s.compute(ctx, in.UserID, types)
	})
	if err != nil {
		return nil, err
	}
	recs := result.([]entity.Recommendation)

	if err := s.cache.Set(ctx, in.UserID, types, recs, s.cfg.CacheTTL); err != nil {
		metrics.RecordCacheWriteFailure()
		logger.Warn("recommendation cache write failed", slog.Any("error", err))
	}
	return s.finalize(recs, in), nil
}

// compute runs the full cold-path pipeline: read signals, find
// neighbors, load the suppression set, fan out the generators per
// requested type, merge, hydrate, explain, and rank the combined list.
func (s *Service) compute(ctx context.Context, userID int64, types []entity.ContentType) ([]entity.Recommendation, error) {
	start := s.now()
	ctx, span := tracing.GetTracer().Start(ctx, "reco.compute")
	defer span.End()
	logger := logging.FromContext(ctx)

	signals, err := s.signals.Read(ctx, userID)
	if err != nil {
		return nil, err
	}
	neighbors, err := s.neighbors.Find(ctx, signals)
	if err != nil {
		return nil, fmt.Errorf("find neighbors: %w", err)
	}
	suppressed, err := s.suppressedItems(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("load suppression set: %w", err)
	}

	pc := &pipelineContext{userID: userID, signals: signals, neighbors: neighbors}

	// The requested types are independent; compute them concurrently.
	perType := make([][]entity.Recommendation, len(types))
	var wg sync.WaitGroup
	for i, ct := range types {
		wg.Add(1)
		go func(i int, ct entity.ContentType) {
			defer wg.Done()
			perType[i] = s.computeType(ctx, ct, pc, suppressed[ct])
		}(i, ct)
	}
	wg.Wait()

	combined := make([]entity.Recommendation, 0, len(types)*s.cfg.PerTypeLimit)
	for _, recs := range perType {
		combined = append(combined, recs...)
	}
	sort.SliceStable(combined, func(i, j int) bool {
		return combined[i].RelevanceScore > combined[j].RelevanceScore
	})

	elapsed := s.now().Sub(start)
	metrics.RecordPipeline(elapsed)
	if elapsed > s.cfg.SlowThreshold {
		logger.Warn("recommendation pipeline exceeded latency budget",
			slog.Duration("elapsed", elapsed),
			slog.Duration("budget", s.cfg.SlowThreshold))
	}
	return combined, nil
}

// computeType runs the three generators concurrently for one content
// type, merges their candidates, and hydrates the top slice. A failing
// generator is logged and contributes nothing; the type still completes
// with the remaining sources.
func (s *Service) computeType(ctx context.Context, ct entity.ContentType, pc *pipelineContext, suppressed map[int64]bool) []entity.Recommendation {
	ctx, span := tracing.GetTracer().Start(ctx, "reco.computeType."+string(ct))
	defer span.End()
	logger := logging.FromContext(ctx)

	results := make([][]entity.Candidate, len(s.generators))
	var wg sync.WaitGroup
	for i, gen := range s.generators {
		wg.Add(1)
		go func(i int, gen generator) {
			defer wg.Done()
			candidates, err := gen.Generate(ctx, ct, pc)
			if err != nil {
				// One source failing degrades the result, never the request.
				metrics.RecordGeneratorFailure(string(gen.Source()), string(ct))
				logger.Error("candidate generator failed",
					slog.String("source", string(gen.Source())),
					slog.String("content_type", string(ct)),
					slog.Any("error", err))
				return
			}
			results[i] = candidates
		}(i, gen)
	}
	wg.Wait()

	merged := mergeCandidates(results[0], results[1], results[2], suppressed)
	sort.SliceStable(merged, func(i, j int) bool {
		return merged[i].Score > merged[j].Score
	})
	if len(merged) > s.cfg.PerTypeLimit {
		merged = merged[:s.cfg.PerTypeLimit]
	}

	recs, err := s.hydrator.Hydrate(ctx, ct, merged)
	if err != nil {
		logger.Error("hydration failed, dropping content type from result",
			slog.String("content_type", string(ct)),
			slog.Any("error", err))
		return nil
	}
	return recs
}

// suppressedItems builds the per-type set of item IDs the user has
// negative feedback on.
func (s *Service) suppressedItems(ctx context.Context, userID int64) (map[entity.ContentType]map[int64]bool, error) {
	records, err := s.feedback.GetFeedback(ctx, userID)
	if err != nil {
		return nil, err
	}
	suppressed := make(map[entity.ContentType]map[int64]bool)
	for _, fb := range records {
		if !fb.Suppresses() {
			continue
		}
		if suppressed[fb.ItemType] == nil {
			suppressed[fb.ItemType] = make(map[int64]bool)
		}
		suppressed[fb.ItemType][fb.ItemID] = true
	}
	return suppressed, nil
}

// finalize applies the caller's exclusions and limit to a computed or
// cached list and strips explanations when not requested. The input
// slice is never mutated; cached values stay intact.
func (s *Service) finalize(recs []entity.Recommendation, in GetInput) []entity.Recommendation {
	limit := in.Limit
	if limit <= 0 {
		limit = s.cfg.DefaultLimit
	}
	out := filterAndLimit(recs, in.ExcludeIDs, limit)
	if !in.includeExplanations() {
		stripped := make([]entity.Recommendation, len(out))
		for i, rec := range out {
			rec.Explanation = ""
			stripped[i] = rec
		}
		return stripped
	}
	return out
}

// normalizeTypes validates and deduplicates the requested types,
// defaulting to all supported types. Order is preserved here; the cache
// key sorts its own copy so request order never splits cache entries.
func normalizeTypes(types []entity.ContentType) ([]entity.ContentType, error) {
	if len(types) == 0 {
		return entity.AllContentTypes(), nil
	}
	seen := make(map[entity.ContentType]bool, len(types))
	out := make([]entity.ContentType, 0, len(types))
	for _, t := range types {
		if !t.Valid() {
			return nil, fmt.Errorf("%w: %s", ErrInvalidContentType, t)
		}
		if seen[t] {
			continue
		}
		seen[t] = true
		out = append(out, t)
	}
	return out, nil
}
