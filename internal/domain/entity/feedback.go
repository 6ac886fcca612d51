package entity

import "time"

// FeedbackValue is a user's reaction to a recommended item.
type FeedbackValue string

const (
	FeedbackLike          FeedbackValue = "like"
	FeedbackDislike       FeedbackValue = "dislike"
	FeedbackDismiss       FeedbackValue = "dismiss"
	FeedbackNotInterested FeedbackValue = "not_interested"
)

// Feedback is the durable feedback record, one per (user, item type,
// item). Later feedback overwrites earlier feedback for the same key.
type Feedback struct {
	UserID    int64
	ItemType  ContentType
	ItemID    int64
	Value     FeedbackValue
	UpdatedAt time.Time
}

// Suppresses reports whether this feedback permanently excludes the item
// from the user's future candidate sets.
func (f *Feedback) Suppresses() bool {
	return f.Value == FeedbackDislike || f.Value == FeedbackNotInterested
}

// ValidateFeedbackValue checks that a raw feedback string is one of the
// accepted values. Returns a ValidationError otherwise.
func ValidateFeedbackValue(v FeedbackValue) error {
	switch v {
	case FeedbackLike, FeedbackDislike, FeedbackDismiss, FeedbackNotInterested:
		return nil
	}
	return &ValidationError{Field: "feedback", Message: "feedback must be one of like, dislike, dismiss, not_interested"}
}
