package reco

import "reco-engine/internal/domain/entity"

const maxScore = 100

// mergedCandidate is one item after score merging, with every source
// that contributed to it in first-contribution order.
type mergedCandidate struct {
	ItemID  int64
	Score   float64
	Sources []entity.Source
}

// hasSource reports whether the given source contributed to this item.
func (m *mergedCandidate) hasSource(s entity.Source) bool {
	for _, have := range m.Sources {
		if have == s {
			return true
		}
	}
	return false
}

// mergeCandidates combines the three candidate sets into one set of
// merged candidates. Suppressed items are skipped entirely. Scores are
// already source-weighted, so agreement between sources sums them; the
// sum is capped at 100. Accumulation is commutative, and the fixed
// input order (collaborative, content, trending) keeps both scores and
// output order deterministic for identical inputs.
func mergeCandidates(collaborative, content, trending []entity.Candidate, suppressed map[int64]bool) []mergedCandidate {
	byID := make(map[int64]*mergedCandidate)
	order := make([]int64, 0, len(collaborative)+len(content)+len(trending))

	accumulate := func(candidates []entity.Candidate) {
		for _, c := range candidates {
			if suppressed[c.ItemID] {
				continue
			}
			m, ok := byID[c.ItemID]
			if !ok {
				m = &mergedCandidate{ItemID: c.ItemID}
				byID[c.ItemID] = m
				order = append(order, c.ItemID)
			}
			m.Score += c.Score
			if !m.hasSource(c.Source) {
				m.Sources = append(m.Sources, c.Source)
			}
		}
	}
	accumulate(collaborative)
	accumulate(content)
	accumulate(trending)

	out := make([]mergedCandidate, 0, len(order))
	for _, id := range order {
		m := byID[id]
		if m.Score > maxScore {
			m.Score = maxScore
		}
		out = append(out, *m)
	}
	return out
}
