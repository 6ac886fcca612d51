// Package repository defines the narrow data-access ports the engine
// depends on. The interaction and content stores are owned by other
// subsystems; the engine only reads them. Feedback is the one durable
// entity the engine owns.
package repository

import (
	"context"
	"time"

	"reco-engine/internal/domain/entity"
)

// UserOverlap is a candidate neighbor with the count of explicit items
// shared with the subject user. The similarity math stays in the use
// case layer; the store only counts.
type UserOverlap struct {
	UserID  int64
	Overlap int
}

// UserItem is one neighbor-authored interaction: which user touched
// which item. Fed to the collaborative generator.
type UserItem struct {
	UserID int64
	ItemID int64
}

// ContentMatch is a content item matched against an interest set, with
// the number of overlapping tags/categories/skills.
type ContentMatch struct {
	ItemID   int64
	Strength int
}

// InterestSet holds the derived interests used for content matching.
// Skills are lower-cased before querying.
type InterestSet struct {
	Tags       []string
	Categories []string
	Skills     []string
}

// Empty reports whether no interest of any kind is present.
func (s InterestSet) Empty() bool {
	return len(s.Tags) == 0 && len(s.Categories) == 0 && len(s.Skills) == 0
}

type InteractionRepository interface {
	// GetExplicitInteractions returns the user's explicit interactions,
	// at most limit per kind, newest first. A user with no history
	// yields empty sets, not an error.
	GetExplicitInteractions(ctx context.Context, userID int64, limit int) (*entity.ExplicitInteractions, error)
	// GetImplicitInteractions returns content views with read time and
	// scroll depth in the trailing daysAgo window.
	GetImplicitInteractions(ctx context.Context, userID int64, daysAgo int) ([]entity.ContentView, error)
	// GetProfile returns the user's declared skills and desired
	// roles/skills. A user without a declared profile yields an empty
	// profile, not an error.
	GetProfile(ctx context.Context, userID int64) (*entity.Profile, error)
	// FindSimilarUsers returns users who explicitly interacted with items
	// the subject also interacted with, together with the overlap count,
	// ordered by overlap descending. Excludes the subject user.
	FindSimilarUsers(ctx context.Context, userID int64, limit int) ([]UserOverlap, error)
	// GetInteractionsByUsers returns the items of the given kind that the
	// given users interacted with.
	GetInteractionsByUsers(ctx context.Context, userIDs []int64, kind entity.InteractionKind) ([]UserItem, error)
	// GetContentTags expands interacted items into the distinct tags and
	// categories attached to them. Used to derive a user's interest set.
	GetContentTags(ctx context.Context, items []entity.ItemRef) (tags []string, categories []string, err error)
	// FindMatchingContent returns items of the given type whose
	// tags/categories/skills intersect the interest set, with the
	// intersection size, ordered by strength descending.
	FindMatchingContent(ctx context.Context, contentType entity.ContentType, interests InterestSet, limit int) ([]ContentMatch, error)
	// GetTrendingContent returns the most popular item IDs of the given
	// type since the given time, ordered by the type's popularity
	// measure descending.
	GetTrendingContent(ctx context.Context, contentType entity.ContentType, since time.Time, limit int) ([]int64, error)
	// GetContentByIDs resolves item IDs into display-ready records.
	// Missing items are simply absent from the result, not an error.
	GetContentByIDs(ctx context.Context, contentType entity.ContentType, ids []int64) ([]*entity.Content, error)
}
