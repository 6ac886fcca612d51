package reco

import (
	"context"

	"reco-engine/internal/domain/entity"
)

// pipelineContext carries the per-computation inputs shared by the
// generators. It is read-only for the duration of one computation; each
// generator writes only to its own local accumulators.
type pipelineContext struct {
	userID    int64
	signals   *entity.InteractionSignals
	neighbors []entity.Neighbor
}

// generator produces scored candidates for one content type from one
// signal source. Implementations must be independently callable and
// independently failable: an error from one generator never aborts its
// siblings, the caller logs it and proceeds with an empty set.
type generator interface {
	Source() entity.Source
	Generate(ctx context.Context, contentType entity.ContentType, pc *pipelineContext) ([]entity.Candidate, error)
}
