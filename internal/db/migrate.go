package db

import (
	"database/sql"
	"fmt"
)

// migrations are applied in order on every startup; each statement must be
// idempotent.
var migrations = []string{
	`CREATE TABLE IF NOT EXISTS days (
		date TEXT PRIMARY KEY
	)`,
	`CREATE TABLE IF NOT EXISTS schedule_items (
		id TEXT PRIMARY KEY,
		date TEXT NOT NULL,
		title TEXT NOT NULL,
		start_min INTEGER NOT NULL,
		end_min INTEGER NOT NULL,
		category TEXT NOT NULL,
		notes TEXT NOT NULL DEFAULT '',
		color TEXT NOT NULL,
		created_at TEXT NOT NULL,
		updated_at TEXT NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_schedule_items_date
		ON schedule_items(date, start_min)`,
}

// Migrate runs all schema migrations.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}
