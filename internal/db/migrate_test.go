package db

import (
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := OpenDB(MemoryPath)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestMigrate_Idempotent(t *testing.T) {
	db := openTestDB(t)

	require.NoError(t, Migrate(db))
	require.NoError(t, Migrate(db))
}

func TestMigrate_CreatesTablesAndIndexes(t *testing.T) {
	db := openTestDB(t)

	for _, table := range []string{"contacts", "events"} {
		var name string
		err := db.QueryRow(`SELECT name FROM sqlite_master WHERE type='table' AND name=?`, table).Scan(&name)
		require.NoError(t, err, "table %s should exist", table)
		assert.Equal(t, table, name)
	}
	for _, idx := range []string{"idx_contacts_name", "idx_events_contact"} {
		var name string
		err := db.QueryRow(`SELECT name FROM sqlite_master WHERE type='index' AND name=?`, idx).Scan(&name)
		require.NoError(t, err, "index %s should exist", idx)
	}
}

func TestMigrate_EventCategoryConstraint(t *testing.T) {
	db := openTestDB(t)

	_, err := db.Exec(`INSERT INTO contacts (id, name, birthday, created_at, updated_at)
		VALUES ('c1', 'Ada', '1990-01-01', '2021-01-01T00:00:00Z', '2021-01-01T00:00:00Z')`)
	require.NoError(t, err)

	_, err = db.Exec(`INSERT INTO events (contact_id, category, position, date, description, recurrence_kind)
		VALUES ('c1', 'debt', 0, '2021-01-01', 'x', 'NONE')`)
	assert.Error(t, err)
}

func TestOpenDB_EventsCascadeWithContact(t *testing.T) {
	db := openTestDB(t)

	_, err := db.Exec(`INSERT INTO contacts (id, name, birthday, created_at, updated_at)
		VALUES ('c1', 'Ada', '1990-01-01', '2021-01-01T00:00:00Z', '2021-01-01T00:00:00Z')`)
	require.NoError(t, err)
	_, err = db.Exec(`INSERT INTO events (contact_id, category, position, date, description, recurrence_kind)
		VALUES ('c1', 'meeting', 0, '2021-01-01', 'x', 'NONE')`)
	require.NoError(t, err)

	_, err = db.Exec(`DELETE FROM contacts WHERE id = 'c1'`)
	require.NoError(t, err)

	var n int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM events`).Scan(&n))
	assert.Zero(t, n)
}
