package db

import "database/sql"

// MigrateUp creates the engine-owned schema. The interaction and content
// tables belong to other services; feedback is the only table the
// recommendation engine writes, so it is the only one migrated here.
func MigrateUp(db *sql.DB) error {
	if _, err := db.Exec(`
CREATE TABLE IF NOT EXISTS feedback (
    user_id    BIGINT NOT NULL,
    item_type  VARCHAR(20) NOT NULL,
    item_id    BIGINT NOT NULL,
    feedback   VARCHAR(20) NOT NULL,
    updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
    PRIMARY KEY (user_id, item_type, item_id)
)`); err != nil {
		return err
	}

	indexes := []string{
		// Suppression lookups load all feedback for one user
		`CREATE INDEX IF NOT EXISTS idx_feedback_user_id ON feedback(user_id)`,
	}
	for _, idx := range indexes {
		if _, err := db.Exec(idx); err != nil {
			return err
		}
	}

	// item_type and feedback accept only the engine's vocabularies.
	// Errors are ignored when the constraints already exist.
	_, _ = db.Exec(`
DO $$
BEGIN
    IF NOT EXISTS (
        SELECT 1 FROM pg_constraint
        WHERE conname = 'chk_feedback_item_type'
    ) THEN
        ALTER TABLE feedback ADD CONSTRAINT chk_feedback_item_type
        CHECK (item_type IN ('article', 'topic', 'job', 'user'));
    END IF;
    IF NOT EXISTS (
        SELECT 1 FROM pg_constraint
        WHERE conname = 'chk_feedback_value'
    ) THEN
        ALTER TABLE feedback ADD CONSTRAINT chk_feedback_value
        CHECK (feedback IN ('like', 'dislike', 'dismiss', 'not_interested'));
    END IF;
END $$;
`)

	return nil
}

// MigrateDown drops the engine-owned schema.
// Use with caution: this deletes all stored feedback.
func MigrateDown(db *sql.DB) error {
	dropStatements := []string{
		`DROP INDEX IF EXISTS idx_feedback_user_id`,
		`DROP TABLE IF EXISTS feedback CASCADE`,
	}
	for _, stmt := range dropStatements {
		if _, err := db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}
