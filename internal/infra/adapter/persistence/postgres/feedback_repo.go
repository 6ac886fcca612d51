package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"reco-engine/internal/domain/entity"
	"reco-engine/internal/repository"
)

type FeedbackRepo struct {
	db *sql.DB
}

func NewFeedbackRepo(db *sql.DB) repository.FeedbackRepository {
	return &FeedbackRepo{db: db}
}

func (repo *FeedbackRepo) GetFeedback(ctx context.Context, userID int64) ([]*entity.Feedback, error) {
	const query = `
SELECT user_id, item_type, item_id, feedback, updated_at
FROM feedback
WHERE user_id = $1
ORDER BY updated_at DESC`

	rows, err := repo.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("GetFeedback: %w", err)
	}
	defer func() { _ = rows.Close() }()

	records := make([]*entity.Feedback, 0, 16)
	for rows.Next() {
		var fb entity.Feedback
		var itemType, value string
		if err := rows.Scan(&fb.UserID, &itemType, &fb.ItemID, &value, &fb.UpdatedAt); err != nil {
			return nil, fmt.Errorf("GetFeedback: scan: %w", err)
		}
		// The store constrains item_type, but rows predating a constraint
		// change must not leak unknown types into the engine.
		ct, err := entity.ParseContentType(itemType)
		if err != nil {
			return nil, fmt.Errorf("GetFeedback: %w", err)
		}
		fb.ItemType = ct
		fb.Value = entity.FeedbackValue(value)
		records = append(records, &fb)
	}
	return records, rows.Err()
}

func (repo *FeedbackRepo) Upsert(ctx context.Context, fb *entity.Feedback) error {
	const query = `
INSERT INTO feedback (user_id, item_type, item_id, feedback, updated_at)
VALUES ($1, $2, $3, $4, $5)
ON CONFLICT (user_id, item_type, item_id)
DO UPDATE SET feedback = EXCLUDED.feedback, updated_at = EXCLUDED.updated_at`

	result, err := repo.db.ExecContext(ctx, query,
		fb.UserID, string(fb.ItemType), fb.ItemID, string(fb.Value), fb.UpdatedAt)
	if err != nil {
		return fmt.Errorf("Upsert: %w", err)
	}
	if _, err := result.RowsAffected(); err != nil {
		return fmt.Errorf("Upsert: rows affected: %w", err)
	}
	return nil
}
