package db

import (
	"database/sql"
	"fmt"
)

// Migrate runs all schema migrations. Statements are idempotent so the full
// list re-runs safely on every startup.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS sessions (
		id          TEXT PRIMARY KEY,
		learner_id  TEXT NOT NULL,
		category    TEXT NOT NULL
		            CHECK(category IN ('greeting','menu-knowledge','order-taking',
		                               'upselling','problem-resolution','service-recovery')),
		tier        TEXT NOT NULL
		            CHECK(tier IN ('beginner','intermediate','advanced')),
		state       TEXT NOT NULL
		            CHECK(state IN ('open','in_progress','closed')),
		started_at  TEXT NOT NULL,
		ended_at    TEXT
	)`,

	`CREATE INDEX IF NOT EXISTS idx_sessions_learner ON sessions(learner_id)`,
	`CREATE INDEX IF NOT EXISTS idx_sessions_started ON sessions(started_at)`,

	`CREATE TABLE IF NOT EXISTS turns (
		id               TEXT PRIMARY KEY,
		session_id       TEXT NOT NULL REFERENCES sessions(id) ON DELETE CASCADE,
		turn_index       INTEGER NOT NULL,
		scenario_id      TEXT NOT NULL,
		scenario_tier    TEXT NOT NULL,
		response         TEXT NOT NULL,
		score            INTEGER NOT NULL CHECK(score BETWEEN 0 AND 100),
		feedback         TEXT NOT NULL DEFAULT '',
		matched_criteria TEXT NOT NULL DEFAULT '[]',
		missed_criteria  TEXT NOT NULL DEFAULT '[]',
		created_at       TEXT NOT NULL,
		UNIQUE(session_id, turn_index)
	)`,

	`CREATE INDEX IF NOT EXISTS idx_turns_session ON turns(session_id)`,

	`CREATE TABLE IF NOT EXISTS progress_records (
		learner_id         TEXT NOT NULL,
		category           TEXT NOT NULL,
		sessions_completed INTEGER NOT NULL DEFAULT 0,
		average_score      REAL NOT NULL DEFAULT 0,
		recommended_tier   TEXT NOT NULL DEFAULT 'beginner'
		                   CHECK(recommended_tier IN ('beginner','intermediate','advanced')),
		updated_at         TEXT NOT NULL,
		PRIMARY KEY (learner_id, category)
	)`,
}
