package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/alexanderramin/tableside/internal/db"
	"github.com/alexanderramin/tableside/internal/domain"
)

// SQLiteProgressRepo implements ProgressRepo over a SQLite database.
type SQLiteProgressRepo struct {
	db db.DBTX
}

// NewSQLiteProgressRepo creates a new SQLiteProgressRepo.
func NewSQLiteProgressRepo(conn db.DBTX) *SQLiteProgressRepo {
	return &SQLiteProgressRepo{db: conn}
}

func (r *SQLiteProgressRepo) Get(ctx context.Context, learnerID string, category domain.Category) (*domain.ProgressRecord, error) {
	query := `SELECT learner_id, category, sessions_completed, average_score, recommended_tier, updated_at
		FROM progress_records WHERE learner_id = ? AND category = ?`
	row := r.db.QueryRowContext(ctx, query, learnerID, string(category))

	rec, err := scanProgress(row.Scan)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("progress record %s/%s: %w", learnerID, category, ErrNotFound)
		}
		return nil, err
	}
	return rec, nil
}

func (r *SQLiteProgressRepo) Upsert(ctx context.Context, rec *domain.ProgressRecord) error {
	query := `INSERT INTO progress_records
		(learner_id, category, sessions_completed, average_score, recommended_tier, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(learner_id, category) DO UPDATE SET
			sessions_completed = excluded.sessions_completed,
			average_score      = excluded.average_score,
			recommended_tier   = excluded.recommended_tier,
			updated_at         = excluded.updated_at`
	_, err := r.db.ExecContext(ctx, query,
		rec.LearnerID,
		string(rec.Category),
		rec.SessionsCompleted,
		rec.AverageScore,
		string(rec.RecommendedTier),
		rec.UpdatedAt.Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("upserting progress record: %w", err)
	}
	return nil
}

func (r *SQLiteProgressRepo) ListByLearner(ctx context.Context, learnerID string) ([]*domain.ProgressRecord, error) {
	query := `SELECT learner_id, category, sessions_completed, average_score, recommended_tier, updated_at
		FROM progress_records WHERE learner_id = ? ORDER BY category`
	rows, err := r.db.QueryContext(ctx, query, learnerID)
	if err != nil {
		return nil, fmt.Errorf("listing progress records: %w", err)
	}
	defer rows.Close()

	var records []*domain.ProgressRecord
	for rows.Next() {
		rec, err := scanProgress(rows.Scan)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating progress records: %w", err)
	}
	return records, nil
}

func scanProgress(scan func(dest ...any) error) (*domain.ProgressRecord, error) {
	var rec domain.ProgressRecord
	var category, tier, updatedAt string

	err := scan(&rec.LearnerID, &category, &rec.SessionsCompleted, &rec.AverageScore, &tier, &updatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("scanning progress record: %w", err)
	}

	rec.Category = domain.Category(category)
	rec.RecommendedTier = domain.Tier(tier)
	if rec.UpdatedAt, err = time.Parse(time.RFC3339Nano, updatedAt); err != nil {
		return nil, fmt.Errorf("parsing updated_at: %w", err)
	}
	return &rec, nil
}
