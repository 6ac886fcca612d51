package reco

import "reco-engine/internal/domain/entity"

// typePlan describes how one content type feeds the generators. Adding a
// content type means adding a plan entry and repository support, not
// editing dispatch code.
type typePlan struct {
	// collabKind is the explicit interaction kind that carries the
	// collaborative signal for this type.
	collabKind entity.InteractionKind
}

var typePlans = map[entity.ContentType]typePlan{
	entity.ContentTypeArticle: {collabKind: entity.InteractionBookmark},
	entity.ContentTypeTopic:   {collabKind: entity.InteractionTopicVote},
	entity.ContentTypeJob:     {collabKind: entity.InteractionApplication},
	entity.ContentTypeUser:    {collabKind: entity.InteractionFollow},
}

// planFor returns the plan for a content type. The bool is false for
// types without a plan, which callers treat as unsupported.
func planFor(ct entity.ContentType) (typePlan, bool) {
	p, ok := typePlans[ct]
	return p, ok
}
