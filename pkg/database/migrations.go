package database

import (
	"context"
	"fmt"

	"entgo.io/ent/dialect/sql"
)

// CreatePartialUniqueIndexes creates PostgreSQL partial unique indexes that
// Ent cannot express in schema definitions.
//
// The processing-log index backs the scheduler's no-double-write guarantee:
// at most one active (status=started) attempt may exist per (session, wave).
func CreatePartialUniqueIndexes(ctx context.Context, driver *sql.Driver) error {
	db := driver.DB()

	_, err := db.ExecContext(ctx,
		`CREATE UNIQUE INDEX IF NOT EXISTS processinglog_session_wave_started
		ON processing_logs (session_id, wave)
		WHERE status = 'started'`)
	if err != nil {
		return fmt.Errorf("failed to create active-attempt index: %w", err)
	}

	return nil
}
