// Package entity defines the core domain entities for the recommendation
// engine: content types, interaction signals, candidates, recommendations,
// and user feedback, along with their validation rules and domain errors.
package entity

import "time"

// ContentType identifies one of the recommendable content kinds.
type ContentType string

const (
	ContentTypeArticle ContentType = "article"
	ContentTypeTopic   ContentType = "topic"
	ContentTypeJob     ContentType = "job"
	ContentTypeUser    ContentType = "user"
)

// AllContentTypes returns every supported content type in canonical order.
// Callers that omit a type filter receive recommendations for all of them.
func AllContentTypes() []ContentType {
	return []ContentType{ContentTypeArticle, ContentTypeTopic, ContentTypeJob, ContentTypeUser}
}

// ParseContentType converts a raw string into a ContentType.
// Returns ErrInvalidInput (wrapped in a ValidationError) for unknown values.
func ParseContentType(s string) (ContentType, error) {
	switch ContentType(s) {
	case ContentTypeArticle, ContentTypeTopic, ContentTypeJob, ContentTypeUser:
		return ContentType(s), nil
	}
	return "", &ValidationError{Field: "type", Message: "unknown content type: " + s}
}

// Valid reports whether the content type is one of the supported kinds.
func (t ContentType) Valid() bool {
	switch t {
	case ContentTypeArticle, ContentTypeTopic, ContentTypeJob, ContentTypeUser:
		return true
	}
	return false
}

// Content is a display-ready content record resolved during hydration.
// Only the fields needed to render a recommendation card are carried;
// the owning subsystems keep the full records.
type Content struct {
	ID         int64       `json:"id"`
	Type       ContentType `json:"type"`
	Title      string      `json:"title"`
	Summary    string      `json:"summary,omitempty"`
	AuthorID   int64       `json:"author_id,omitempty"`
	AuthorName string      `json:"author_name,omitempty"`
	Tags       []string    `json:"tags,omitempty"`
	CreatedAt  time.Time   `json:"created_at"`
}
