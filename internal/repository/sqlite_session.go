package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/alexanderramin/tableside/internal/db"
	"github.com/alexanderramin/tableside/internal/domain"
)

// SQLiteSessionRepo implements SessionRepo over a SQLite database.
type SQLiteSessionRepo struct {
	db db.DBTX
}

// NewSQLiteSessionRepo creates a new SQLiteSessionRepo. Pass a *sql.Tx-backed
// DBTX to participate in a unit-of-work transaction.
func NewSQLiteSessionRepo(conn db.DBTX) *SQLiteSessionRepo {
	return &SQLiteSessionRepo{db: conn}
}

func (r *SQLiteSessionRepo) Create(ctx context.Context, s *domain.Session) error {
	query := `INSERT INTO sessions (id, learner_id, category, tier, state, started_at, ended_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		s.ID,
		s.LearnerID,
		string(s.Category),
		string(s.Tier),
		string(s.State),
		s.StartedAt.Format(time.RFC3339Nano),
		nullableTimeToString(s.EndedAt),
	)
	if err != nil {
		return fmt.Errorf("inserting session: %w", err)
	}

	for i, t := range s.Turns {
		if err := r.insertTurn(ctx, s.ID, i, t); err != nil {
			return err
		}
	}
	return nil
}

func (r *SQLiteSessionRepo) insertTurn(ctx context.Context, sessionID string, index int, t domain.Turn) error {
	matched, err := criteriaToJSON(t.Assessment.MatchedCriteria)
	if err != nil {
		return err
	}
	missed, err := criteriaToJSON(t.Assessment.MissedCriteria)
	if err != nil {
		return err
	}

	query := `INSERT INTO turns (id, session_id, turn_index, scenario_id, scenario_tier,
		response, score, feedback, matched_criteria, missed_criteria, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err = r.db.ExecContext(ctx, query,
		t.ID,
		sessionID,
		index,
		t.Scenario.ID,
		string(t.Scenario.Tier),
		t.Response,
		t.Assessment.Score,
		t.Assessment.Feedback,
		matched,
		missed,
		t.CreatedAt.Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("inserting turn %d: %w", index, err)
	}
	return nil
}

func (r *SQLiteSessionRepo) GetByID(ctx context.Context, id string) (*domain.Session, error) {
	query := `SELECT id, learner_id, category, tier, state, started_at, ended_at
		FROM sessions WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, id)

	s, err := r.scanSession(row)
	if err != nil {
		return nil, err
	}

	turns, err := r.loadTurns(ctx, s)
	if err != nil {
		return nil, err
	}
	s.Turns = turns
	return s, nil
}

func (r *SQLiteSessionRepo) ListByLearner(ctx context.Context, learnerID string, limit int) ([]*domain.Session, error) {
	query := `SELECT id, learner_id, category, tier, state, started_at, ended_at
		FROM sessions WHERE learner_id = ? ORDER BY started_at DESC`
	args := []any{learnerID}
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing sessions by learner: %w", err)
	}
	defer rows.Close()

	var sessions []*domain.Session
	for rows.Next() {
		s, err := r.scanSessionRow(rows)
		if err != nil {
			return nil, err
		}
		sessions = append(sessions, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating sessions: %w", err)
	}

	for _, s := range sessions {
		turns, err := r.loadTurns(ctx, s)
		if err != nil {
			return nil, err
		}
		s.Turns = turns
	}
	return sessions, nil
}

func (r *SQLiteSessionRepo) loadTurns(ctx context.Context, s *domain.Session) ([]domain.Turn, error) {
	query := `SELECT id, scenario_id, scenario_tier, response, score, feedback,
		matched_criteria, missed_criteria, created_at
		FROM turns WHERE session_id = ? ORDER BY turn_index`
	rows, err := r.db.QueryContext(ctx, query, s.ID)
	if err != nil {
		return nil, fmt.Errorf("listing turns: %w", err)
	}
	defer rows.Close()

	var turns []domain.Turn
	for rows.Next() {
		var t domain.Turn
		var scenarioID, scenarioTier, matched, missed, createdAt string

		err := rows.Scan(&t.ID, &scenarioID, &scenarioTier, &t.Response,
			&t.Assessment.Score, &t.Assessment.Feedback, &matched, &missed, &createdAt)
		if err != nil {
			return nil, fmt.Errorf("scanning turn row: %w", err)
		}

		t.SessionID = s.ID
		t.Scenario = domain.Scenario{
			ID:       scenarioID,
			Category: s.Category,
			Tier:     domain.Tier(scenarioTier),
		}
		if t.Assessment.MatchedCriteria, err = criteriaFromJSON(matched); err != nil {
			return nil, err
		}
		if t.Assessment.MissedCriteria, err = criteriaFromJSON(missed); err != nil {
			return nil, err
		}
		if t.CreatedAt, err = time.Parse(time.RFC3339Nano, createdAt); err != nil {
			return nil, fmt.Errorf("parsing turn created_at: %w", err)
		}
		turns = append(turns, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating turns: %w", err)
	}
	return turns, nil
}

func (r *SQLiteSessionRepo) scanSession(row *sql.Row) (*domain.Session, error) {
	var s domain.Session
	var category, tier, state, startedAt string
	var endedAt sql.NullString

	err := row.Scan(&s.ID, &s.LearnerID, &category, &tier, &state, &startedAt, &endedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("session: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning session: %w", err)
	}
	return r.populateSession(&s, category, tier, state, startedAt, endedAt)
}

func (r *SQLiteSessionRepo) scanSessionRow(rows *sql.Rows) (*domain.Session, error) {
	var s domain.Session
	var category, tier, state, startedAt string
	var endedAt sql.NullString

	err := rows.Scan(&s.ID, &s.LearnerID, &category, &tier, &state, &startedAt, &endedAt)
	if err != nil {
		return nil, fmt.Errorf("scanning session row: %w", err)
	}
	return r.populateSession(&s, category, tier, state, startedAt, endedAt)
}

func (r *SQLiteSessionRepo) populateSession(s *domain.Session, category, tier, state, startedAt string, endedAt sql.NullString) (*domain.Session, error) {
	s.Category = domain.Category(category)
	s.Tier = domain.Tier(tier)
	s.State = domain.SessionState(state)

	var err error
	if s.StartedAt, err = time.Parse(time.RFC3339Nano, startedAt); err != nil {
		return nil, fmt.Errorf("parsing started_at: %w", err)
	}
	if s.EndedAt, err = parseNullableTime(endedAt); err != nil {
		return nil, fmt.Errorf("parsing ended_at: %w", err)
	}
	return s, nil
}
