package reco

import (
	"context"
	"fmt"
	"sort"

	"reco-engine/internal/domain/entity"
	"reco-engine/internal/repository"
)

// neighborFinder ranks other users by interaction overlap with the
// subject. Similarity is |shared items| / |subject's items|, which is
// asymmetric on purpose: it favors users who cover much of the
// subject's interests rather than mutually rare tastes.
type neighborFinder struct {
	repo repository.InteractionRepository
	cfg  Config
}

// Find returns neighbors sorted by similarity descending. A user with
// too little explicit history gets an empty list, not an error; that is
// the expected cold-start path.
func (f *neighborFinder) Find(ctx context.Context, signals *entity.InteractionSignals) ([]entity.Neighbor, error) {
	subjectItems := len(signals.Explicit.Items())
	if subjectItems == 0 {
		return nil, nil
	}

	overlaps, err := f.repo.FindSimilarUsers(ctx, signals.UserID, f.cfg.NeighborLimit)
	if err != nil {
		return nil, fmt.Errorf("find similar users for user %d: %w", signals.UserID, err)
	}

	neighbors := make([]entity.Neighbor, 0, len(overlaps))
	for _, o := range overlaps {
		if o.UserID == signals.UserID || o.Overlap < f.cfg.MinOverlap {
			continue
		}
		sim := float64(o.Overlap) / float64(subjectItems)
		if sim > 1 {
			sim = 1
		}
		neighbors = append(neighbors, entity.Neighbor{UserID: o.UserID, Similarity: sim})
	}

	sort.SliceStable(neighbors, func(i, j int) bool {
		return neighbors[i].Similarity > neighbors[j].Similarity
	})
	if len(neighbors) > f.cfg.NeighborLimit {
		neighbors = neighbors[:f.cfg.NeighborLimit]
	}
	return neighbors, nil
}
