package database

import (
	"context"
	"fmt"

	"entgo.io/ent/dialect/sql"
)

// CreatePartialIndexes creates PostgreSQL partial indexes for the two queue
// hot paths. Ent's schema DSL cannot express partial indexes, so they live
// here and in the migration files.
func CreatePartialIndexes(ctx context.Context, driver *sql.Driver) error {
	db := driver.DB()

	// Lease claim: oldest queued jobs of one pipeline kind
	_, err := db.ExecContext(ctx,
		`CREATE INDEX IF NOT EXISTS idx_jobs_queued_scan
		ON jobs (pipeline_kind, created_at)
		WHERE status = 'queued'`)
	if err != nil {
		return fmt.Errorf("failed to create queued scan index: %w", err)
	}

	// Reaper sweep: processing jobs whose lease deadline has passed
	_, err = db.ExecContext(ctx,
		`CREATE INDEX IF NOT EXISTS idx_jobs_lease_reap
		ON jobs (lease_deadline)
		WHERE status = 'processing'`)
	if err != nil {
		return fmt.Errorf("failed to create lease reap index: %w", err)
	}

	return nil
}
