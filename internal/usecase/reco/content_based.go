package reco

import (
	"context"
	"fmt"
	"strings"

	"reco-engine/internal/domain/entity"
	"reco-engine/internal/repository"
)

// contentBasedGenerator scores items matching the user's derived
// interest set: tags and categories of previously interacted content
// plus declared and desired skills, lower-cased. Matching is exact
// intersection, no semantic similarity. An empty interest set or no
// overlap legitimately yields no candidates.
type contentBasedGenerator struct {
	repo   repository.InteractionRepository
	weight float64
	limit  int
}

func (g *contentBasedGenerator) Source() entity.Source { return entity.SourceContent }

func (g *contentBasedGenerator) Generate(ctx context.Context, contentType entity.ContentType, pc *pipelineContext) ([]entity.Candidate, error) {
	interests, err := g.deriveInterests(ctx, pc.signals)
	if err != nil {
		return nil, err
	}
	if interests.Empty() {
		return nil, nil
	}

	matches, err := g.repo.FindMatchingContent(ctx, contentType, interests, g.limit)
	if err != nil {
		return nil, fmt.Errorf("find matching %s content: %w", contentType, err)
	}
	if len(matches) == 0 {
		return nil, nil
	}

	maxStrength := 0
	for _, m := range matches {
		if m.Strength > maxStrength {
			maxStrength = m.Strength
		}
	}
	if maxStrength == 0 {
		maxStrength = 1
	}

	candidates := make([]entity.Candidate, 0, len(matches))
	for _, m := range matches {
		candidates = append(candidates, entity.Candidate{
			ItemID: m.ItemID,
			Score:  float64(m.Strength) / float64(maxStrength) * 100 * g.weight,
			Source: entity.SourceContent,
		})
	}
	return candidates, nil
}

// deriveInterests expands the user's interacted items into tags and
// categories and merges in profile skills. Skills are lower-cased so
// matching is case-insensitive.
func (g *contentBasedGenerator) deriveInterests(ctx context.Context, signals *entity.InteractionSignals) (repository.InterestSet, error) {
	items := signals.Explicit.Items()
	for _, v := range signals.Views {
		items = append(items, v.Item)
	}

	var set repository.InterestSet
	if len(items) > 0 {
		tags, categories, err := g.repo.GetContentTags(ctx, items)
		if err != nil {
			return set, fmt.Errorf("expand content tags: %w", err)
		}
		set.Tags = dedupeStrings(tags)
		set.Categories = dedupeStrings(categories)
	}

	skills := make([]string, 0, len(signals.Profile.Skills)+len(signals.Profile.DesiredSkills))
	for _, s := range signals.Profile.Skills {
		skills = append(skills, strings.ToLower(s))
	}
	for _, s := range signals.Profile.DesiredSkills {
		skills = append(skills, strings.ToLower(s))
	}
	set.Skills = dedupeStrings(skills)
	return set, nil
}

// dedupeStrings removes duplicates and empty strings, preserving order.
func dedupeStrings(in []string) []string {
	if len(in) == 0 {
		return nil
	}
	seen := make(map[string]bool, len(in))
	out := make([]string, 0, len(in))
	for _, s := range in {
		if s == "" || seen[s] {
			continue
		}
		seen[s] = true
		out = append(out, s)
	}
	return out
}
