package db

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenDB_InMemory(t *testing.T) {
	database, err := OpenDB(":memory:")
	require.NoError(t, err)
	defer database.Close()

	for _, table := range []string{"sessions", "turns", "progress_records"} {
		var name string
		err := database.QueryRow(
			`SELECT name FROM sqlite_master WHERE type='table' AND name=?`, table,
		).Scan(&name)
		assert.NoError(t, err, "table %s missing", table)
	}
}

func TestMigrate_Rerunnable(t *testing.T) {
	database, err := OpenDB(":memory:")
	require.NoError(t, err)
	defer database.Close()

	// The migration list must be safe to apply to an already-migrated DB.
	assert.NoError(t, Migrate(database))
}

func TestMigrate_EnforcesEnumChecks(t *testing.T) {
	database, err := OpenDB(":memory:")
	require.NoError(t, err)
	defer database.Close()

	_, err = database.Exec(
		`INSERT INTO sessions (id, learner_id, category, tier, state, started_at)
		 VALUES ('s1', 'ana', 'greeting', 'expert', 'open', '2026-05-01T09:00:00Z')`)
	assert.Error(t, err, "tier outside the enum must be rejected")

	_, err = database.Exec(
		`INSERT INTO sessions (id, learner_id, category, tier, state, started_at)
		 VALUES ('s1', 'ana', 'greeting', 'beginner', 'open', '2026-05-01T09:00:00Z')`)
	assert.NoError(t, err)
}
