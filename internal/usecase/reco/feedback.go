package reco

import (
	"context"
	"fmt"
	"log/slog"

	"reco-engine/internal/domain/entity"
	"reco-engine/internal/observability/metrics"
)

// SubmitFeedback upserts the user's feedback for an item and eagerly
// invalidates every cached recommendation list for that user.
// Invalidation is unconditional: it does not depend on whether the new
// feedback changes the suppression set, which keeps the reasoning
// simple under concurrent submissions.
func (s *Service) SubmitFeedback(ctx context.Context, userID int64, itemType entity.ContentType, itemID int64, value entity.FeedbackValue) error {
	if userID <= 0 {
		return ErrInvalidUserID
	}
	if !itemType.Valid() {
		return fmt.Errorf("%w: %s", ErrInvalidContentType, itemType)
	}
	if err := entity.ValidateFeedbackValue(value); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidFeedback, err)
	}

	fb := &entity.Feedback{
		UserID:    userID,
		ItemType:  itemType,
		ItemID:    itemID,
		Value:     value,
		UpdatedAt: s.now(),
	}
	if err := s.feedback.Upsert(ctx, fb); err != nil {
		return fmt.Errorf("upsert feedback: %w", err)
	}
	metrics.RecordFeedback(string(value))

	if err := s.cache.InvalidateUser(ctx, userID); err != nil {
		// An unreachable cache also fails reads, so stale entries cannot
		// be served; log and move on.
		s.logger.Warn("cache invalidation failed",
			slog.Int64("user_id", userID),
			slog.Any("error", err))
		return nil
	}
	metrics.RecordCacheInvalidation()
	return nil
}
