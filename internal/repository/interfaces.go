package repository

import (
	"context"

	"github.com/alexanderramin/tableside/internal/domain"
)

// SessionRepo persists closed training sessions together with their turns.
type SessionRepo interface {
	// Create inserts the session row and all of its turns.
	Create(ctx context.Context, s *domain.Session) error
	GetByID(ctx context.Context, id string) (*domain.Session, error)
	// ListByLearner returns the learner's sessions, most recent first.
	// limit <= 0 means no limit.
	ListByLearner(ctx context.Context, learnerID string, limit int) ([]*domain.Session, error)
}

// ProgressRepo persists per-learner, per-category progress records.
type ProgressRepo interface {
	// Get fails with ErrNotFound when the learner/category pair has no row.
	Get(ctx context.Context, learnerID string, category domain.Category) (*domain.ProgressRecord, error)
	Upsert(ctx context.Context, rec *domain.ProgressRecord) error
	ListByLearner(ctx context.Context, learnerID string) ([]*domain.ProgressRecord, error)
}
