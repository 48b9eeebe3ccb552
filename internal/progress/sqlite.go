package progress

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/alexanderramin/tableside/internal/db"
	"github.com/alexanderramin/tableside/internal/domain"
	"github.com/alexanderramin/tableside/internal/repository"
)

// SQLiteStore is the durable Store. Each Record call archives the session
// and updates the progress record inside a single transaction, guarded by
// the pair's mutex so concurrent closes cannot lose updates.
type SQLiteStore struct {
	conn  *sql.DB
	uow   db.UnitOfWork
	locks *keyLocks
	now   func() time.Time
}

// NewSQLiteStore creates a Store backed by the given database.
func NewSQLiteStore(conn *sql.DB) *SQLiteStore {
	return &SQLiteStore{
		conn:  conn,
		uow:   db.NewSQLiteUnitOfWork(conn),
		locks: newKeyLocks(),
		now:   time.Now,
	}
}

func (s *SQLiteStore) Get(ctx context.Context, learnerID string, category domain.Category) (domain.ProgressRecord, error) {
	repo := repository.NewSQLiteProgressRepo(s.conn)
	rec, err := repo.Get(ctx, learnerID, category)
	if errors.Is(err, repository.ErrNotFound) {
		return domain.ZeroProgress(learnerID, category), nil
	}
	if err != nil {
		return domain.ProgressRecord{}, fmt.Errorf("loading progress for %s/%s: %w", learnerID, category, err)
	}
	return *rec, nil
}

func (s *SQLiteStore) ListByLearner(ctx context.Context, learnerID string) ([]domain.ProgressRecord, error) {
	repo := repository.NewSQLiteProgressRepo(s.conn)
	recs, err := repo.ListByLearner(ctx, learnerID)
	if err != nil {
		return nil, fmt.Errorf("listing progress for %s: %w", learnerID, err)
	}
	out := make([]domain.ProgressRecord, 0, len(recs))
	for _, r := range recs {
		out = append(out, *r)
	}
	return out, nil
}

func (s *SQLiteStore) Record(ctx context.Context, session *domain.Session) (domain.ProgressRecord, error) {
	summary := session.Summary()

	lock := s.locks.lock(summary.LearnerID, summary.Category)
	lock.Lock()
	defer lock.Unlock()

	var updated domain.ProgressRecord
	err := s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		if err := repository.NewSQLiteSessionRepo(tx).Create(ctx, session); err != nil {
			return fmt.Errorf("archiving session %s: %w", session.ID, err)
		}

		repo := repository.NewSQLiteProgressRepo(tx)
		rec, err := repo.Get(ctx, summary.LearnerID, summary.Category)
		if errors.Is(err, repository.ErrNotFound) {
			zero := domain.ZeroProgress(summary.LearnerID, summary.Category)
			rec = &zero
		} else if err != nil {
			return fmt.Errorf("loading progress for %s/%s: %w", summary.LearnerID, summary.Category, err)
		}

		rec.ApplyOutcome(summary, s.now())
		if err := repo.Upsert(ctx, rec); err != nil {
			return fmt.Errorf("saving progress for %s/%s: %w", summary.LearnerID, summary.Category, err)
		}
		updated = *rec
		return nil
	})
	if err != nil {
		return domain.ProgressRecord{}, err
	}
	return updated, nil
}
