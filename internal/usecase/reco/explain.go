package reco

import "reco-engine/internal/domain/entity"

// Explanation texts, keyed by the dominant contributing source.
const (
	explanationCollaborative = "Because users with similar interests liked this"
	explanationTrending      = "Trending in the community"
	explanationContent       = "Based on your interests and past activity"
	explanationDefault       = "Recommended for you"
)

// explain derives the human-readable reason for a merged candidate from
// its contributing sources. Priority when several sources contributed:
// collaborative > trending > content-based. Pure function; it never
// re-scores or re-ranks. When multiple sources contributed equal
// scores, which one is reported depends only on this fixed priority,
// not on merge input order.
func explain(sources []entity.Source) string {
	var hasCollab, hasTrending, hasContent bool
	for _, s := range sources {
		switch s {
		case entity.SourceCollaborative:
			hasCollab = true
		case entity.SourceTrending:
			hasTrending = true
		case entity.SourceContent:
			hasContent = true
		}
	}
	switch {
	case hasCollab:
		return explanationCollaborative
	case hasTrending:
		return explanationTrending
	case hasContent:
		return explanationContent
	default:
		return explanationDefault
	}
}
