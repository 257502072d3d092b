package pg

import (
	"context"
)

const createProcessedFilesTable = `
CREATE TABLE IF NOT EXISTS processed_files (
	id           SERIAL PRIMARY KEY,
	key          TEXT NOT NULL,
	output_key   TEXT NOT NULL,
	postings     INTEGER NOT NULL,
	hits         INTEGER NOT NULL,
	misses       INTEGER NOT NULL,
	resolved     INTEGER NOT NULL,
	absent       INTEGER NOT NULL,
	ok           BOOLEAN NOT NULL,
	processed_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);
CREATE INDEX IF NOT EXISTS processed_files_processed_at_idx ON processed_files (processed_at DESC);
`

// Migrate создаёт таблицу processed_files, если её ещё нет.
func Migrate(ctx context.Context, db *DB) error {
	_, err := db.ExecContext(ctx, createProcessedFilesTable)
	return err
}
