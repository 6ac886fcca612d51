package reco

import "reco-engine/internal/domain/entity"

// filterAndLimit removes excluded item IDs and truncates to limit. It
// never reorders, and it is idempotent: applying it twice with the same
// arguments yields the same result as applying it once.
func filterAndLimit(recs []entity.Recommendation, excludeIDs []int64, limit int) []entity.Recommendation {
	excluded := make(map[int64]bool, len(excludeIDs))
	for _, id := range excludeIDs {
		excluded[id] = true
	}

	out := make([]entity.Recommendation, 0, min(len(recs), limit))
	for _, rec := range recs {
		if excluded[rec.ID] {
			continue
		}
		out = append(out, rec)
		if len(out) == limit {
			break
		}
	}
	return out
}
