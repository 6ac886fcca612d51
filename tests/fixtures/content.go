// Package fixtures provides reusable test data generators for
// recommendation tests. Generators are deterministic: the same inputs
// always produce the same records, so assertions can use exact values.
package fixtures

import (
	"fmt"
	"time"

	"reco-engine/internal/domain/entity"
)

// baseTime anchors all generated timestamps.
var baseTime = time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)

// Content builds one display-ready content record for the given type
// and ID. Title and author are derived from the ID.
func Content(ct entity.ContentType, id int64) *entity.Content {
	return &entity.Content{
		ID:         id,
		Type:       ct,
		Title:      fmt.Sprintf("%s %d", ct, id),
		Summary:    fmt.Sprintf("summary of %s %d", ct, id),
		AuthorID:   id%10 + 1,
		AuthorName: fmt.Sprintf("author-%d", id%10+1),
		Tags:       []string{"go", fmt.Sprintf("tag-%d", id%3)},
		CreatedAt:  baseTime.Add(time.Duration(id) * time.Hour),
	}
}

// ContentSet builds records for every ID.
func ContentSet(ct entity.ContentType, ids ...int64) []*entity.Content {
	out := make([]*entity.Content, 0, len(ids))
	for _, id := range ids {
		out = append(out, Content(ct, id))
	}
	return out
}

// Bookmarks builds article refs for IDs 1..n, the shape of a user's
// bookmark history.
func Bookmarks(n int) []entity.ItemRef {
	out := make([]entity.ItemRef, 0, n)
	for i := 1; i <= n; i++ {
		out = append(out, entity.ItemRef{Type: entity.ContentTypeArticle, ID: int64(i)})
	}
	return out
}

// Views builds content views over the given items, newest first, with
// fixed engagement numbers.
func Views(items ...entity.ItemRef) []entity.ContentView {
	out := make([]entity.ContentView, 0, len(items))
	for i, item := range items {
		out = append(out, entity.ContentView{
			Item:        item,
			ReadTime:    60 + i*10,
			ScrollDepth: 80,
			ViewedAt:    baseTime.Add(-time.Duration(i) * time.Hour),
		})
	}
	return out
}

// Feedback builds one feedback record with a fixed timestamp.
func Feedback(userID int64, ct entity.ContentType, itemID int64, value entity.FeedbackValue) *entity.Feedback {
	return &entity.Feedback{
		UserID:    userID,
		ItemType:  ct,
		ItemID:    itemID,
		Value:     value,
		UpdatedAt: baseTime,
	}
}
