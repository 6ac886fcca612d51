package reco

import (
	"context"
	"fmt"
	"math"

	"reco-engine/internal/domain/entity"
	"reco-engine/internal/observability/metrics"
	"reco-engine/internal/repository"
)

// hydrator resolves merged candidate IDs into display-ready records and
// produces the final Recommendation entries for one content type.
// Candidates whose content no longer exists (deleted or unpublished
// since scoring) are dropped silently.
type hydrator struct {
	repo repository.InteractionRepository
}

func (h *hydrator) Hydrate(ctx context.Context, contentType entity.ContentType, merged []mergedCandidate) ([]entity.Recommendation, error) {
	if len(merged) == 0 {
		return nil, nil
	}

	ids := make([]int64, 0, len(merged))
	for _, m := range merged {
		ids = append(ids, m.ItemID)
	}
	records, err := h.repo.GetContentByIDs(ctx, contentType, ids)
	if err != nil {
		return nil, fmt.Errorf("hydrate %s content: %w", contentType, err)
	}

	byID := make(map[int64]*entity.Content, len(records))
	for _, rec := range records {
		byID[rec.ID] = rec
	}

	out := make([]entity.Recommendation, 0, len(merged))
	for _, m := range merged {
		data, ok := byID[m.ItemID]
		if !ok {
			metrics.RecordHydrationDrop(string(contentType))
			continue
		}
		out = append(out, entity.Recommendation{
			Type:           contentType,
			ID:             m.ItemID,
			RelevanceScore: int(math.Round(m.Score)),
			Explanation:    explain(m.Sources),
			Data:           data,
		})
	}
	return out, nil
}
