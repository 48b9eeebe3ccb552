// Package progress tracks per-learner, per-category training history and
// makes session outcomes durable.
package progress

import (
	"context"
	"sync"

	"github.com/alexanderramin/tableside/internal/domain"
)

// Store persists learner progress. Updates for the same (learner, category)
// pair are serialized; different pairs proceed in parallel.
type Store interface {
	// Get returns the learner's record for a category, or a fresh
	// zero-state record when none exists. It never reports NotFound.
	Get(ctx context.Context, learnerID string, category domain.Category) (domain.ProgressRecord, error)

	// ListByLearner returns every category record for a learner.
	ListByLearner(ctx context.Context, learnerID string) ([]domain.ProgressRecord, error)

	// Record persists a closed session with its turns and folds the
	// session summary into the learner's progress record, atomically.
	Record(ctx context.Context, session *domain.Session) (domain.ProgressRecord, error)
}

// keyLocks hands out one mutex per (learner, category) pair so outcome
// recording is a serialized read-modify-write per pair.
type keyLocks struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func newKeyLocks() *keyLocks {
	return &keyLocks{locks: make(map[string]*sync.Mutex)}
}

func (k *keyLocks) lock(learnerID string, category domain.Category) *sync.Mutex {
	key := learnerID + "\x00" + string(category)

	k.mu.Lock()
	defer k.mu.Unlock()
	m, ok := k.locks[key]
	if !ok {
		m = &sync.Mutex{}
		k.locks[key] = m
	}
	return m
}
