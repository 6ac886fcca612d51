package repository

import (
	"context"

	"reco-engine/internal/domain/entity"
)

type FeedbackRepository interface {
	// GetFeedback returns every feedback record the user has submitted.
	GetFeedback(ctx context.Context, userID int64) ([]*entity.Feedback, error)
	// Upsert stores the feedback record, overwriting any earlier record
	// for the same (user, item type, item) key.
	Upsert(ctx context.Context, fb *entity.Feedback) error
}
