package reco

import (
	"context"
	"fmt"

	"reco-engine/internal/domain/entity"
	"reco-engine/internal/repository"
)

// collaborativeGenerator scores items liked by the subject's neighbors,
// weighted by neighbor similarity. For each content type it reads the
// interaction kind named by the type plan (bookmarks for articles,
// topic upvotes for topics, applications for jobs, follows for users).
type collaborativeGenerator struct {
	repo   repository.InteractionRepository
	weight float64
}

func (g *collaborativeGenerator) Source() entity.Source { return entity.SourceCollaborative }

func (g *collaborativeGenerator) Generate(ctx context.Context, contentType entity.ContentType, pc *pipelineContext) ([]entity.Candidate, error) {
	if len(pc.neighbors) == 0 {
		// Cold start: no neighbors, no collaborative signal.
		return nil, nil
	}
	plan, ok := planFor(contentType)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrInvalidContentType, contentType)
	}

	similarity := make(map[int64]float64, len(pc.neighbors))
	userIDs := make([]int64, 0, len(pc.neighbors))
	for _, n := range pc.neighbors {
		similarity[n.UserID] = n.Similarity
		userIDs = append(userIDs, n.UserID)
	}

	items, err := g.repo.GetInteractionsByUsers(ctx, userIDs, plan.collabKind)
	if err != nil {
		return nil, fmt.Errorf("neighbor interactions (%s): %w", plan.collabKind, err)
	}

	// Accumulate neighbor similarity per item, keeping first-seen order
	// so normalization output is deterministic.
	raw := make(map[int64]float64, len(items))
	order := make([]int64, 0, len(items))
	var maxScore float64
	for _, it := range items {
		if contentType == entity.ContentTypeUser && it.ItemID == pc.userID {
			// Never recommend the subject to themselves.
			continue
		}
		if _, seen := raw[it.ItemID]; !seen {
			order = append(order, it.ItemID)
		}
		raw[it.ItemID] += similarity[it.UserID]
		if raw[it.ItemID] > maxScore {
			maxScore = raw[it.ItemID]
		}
	}
	if len(order) == 0 {
		return nil, nil
	}
	if maxScore == 0 {
		maxScore = 1
	}

	candidates := make([]entity.Candidate, 0, len(order))
	for _, id := range order {
		candidates = append(candidates, entity.Candidate{
			ItemID: id,
			Score:  raw[id] / maxScore * 100 * g.weight,
			Source: entity.SourceCollaborative,
		})
	}
	return candidates, nil
}
