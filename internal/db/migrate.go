package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// Migrate applies every schema statement. Statements are idempotent so the
// full list runs on each open.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			// Re-running an ADD COLUMN is expected.
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS contacts (
		id         TEXT PRIMARY KEY,
		name       TEXT NOT NULL,
		birthday   TEXT NOT NULL,
		created_at TEXT NOT NULL,
		updated_at TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_contacts_name ON contacts(name COLLATE NOCASE)`,

	// One row per event. position preserves the owner's list order; the
	// remaining columns are the persisted event record.
	`CREATE TABLE IF NOT EXISTS events (
		contact_id      TEXT NOT NULL REFERENCES contacts(id) ON DELETE CASCADE,
		category        TEXT NOT NULL CHECK(category IN ('meeting','special_date')),
		position        INTEGER NOT NULL,
		date            TEXT NOT NULL,
		time            TEXT,
		description     TEXT NOT NULL,
		recurrence_kind TEXT NOT NULL,
		PRIMARY KEY (contact_id, category, position)
	)`,

	`CREATE INDEX IF NOT EXISTS idx_events_contact ON events(contact_id)`,
}
