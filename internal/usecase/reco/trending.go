package reco

import (
	"context"
	"fmt"
	"time"

	"reco-engine/internal/domain/entity"
	"reco-engine/internal/repository"
)

// trendingGenerator scores globally popular items in a recent window.
// It needs no per-user signal, which makes it the diversity and
// cold-start safety net. Scores decay linearly by rank position.
type trendingGenerator struct {
	repo       repository.InteractionRepository
	weight     float64
	windowDays int
	limit      int
	now        func() time.Time
}

func (g *trendingGenerator) Source() entity.Source { return entity.SourceTrending }

func (g *trendingGenerator) Generate(ctx context.Context, contentType entity.ContentType, _ *pipelineContext) ([]entity.Candidate, error) {
	since := g.now().AddDate(0, 0, -g.windowDays)
	ids, err := g.repo.GetTrendingContent(ctx, contentType, since, g.limit)
	if err != nil {
		return nil, fmt.Errorf("trending %s content: %w", contentType, err)
	}
	if len(ids) == 0 {
		return nil, nil
	}

	n := float64(len(ids))
	candidates := make([]entity.Candidate, 0, len(ids))
	for rank, id := range ids {
		candidates = append(candidates, entity.Candidate{
			ItemID: id,
			Score:  (n - float64(rank)) / n * 100 * g.weight,
			Source: entity.SourceTrending,
		})
	}
	return candidates, nil
}
