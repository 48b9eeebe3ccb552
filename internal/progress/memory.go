package progress

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/alexanderramin/tableside/internal/domain"
)

// MemoryStore is an in-process Store for tests and ephemeral runs. Nothing
// survives the process.
type MemoryStore struct {
	mu       sync.Mutex
	records  map[string]domain.ProgressRecord
	sessions map[string]*domain.Session
	now      func() time.Time
}

// NewMemoryStore creates an empty in-memory Store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		records:  make(map[string]domain.ProgressRecord),
		sessions: make(map[string]*domain.Session),
		now:      time.Now,
	}
}

func memKey(learnerID string, category domain.Category) string {
	return learnerID + "\x00" + string(category)
}

func (s *MemoryStore) Get(_ context.Context, learnerID string, category domain.Category) (domain.ProgressRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if rec, ok := s.records[memKey(learnerID, category)]; ok {
		return rec, nil
	}
	return domain.ZeroProgress(learnerID, category), nil
}

func (s *MemoryStore) ListByLearner(_ context.Context, learnerID string) ([]domain.ProgressRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []domain.ProgressRecord
	for _, rec := range s.records {
		if rec.LearnerID == learnerID {
			out = append(out, rec)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Category < out[j].Category })
	return out, nil
}

func (s *MemoryStore) Record(_ context.Context, session *domain.Session) (domain.ProgressRecord, error) {
	summary := session.Summary()

	s.mu.Lock()
	defer s.mu.Unlock()

	key := memKey(summary.LearnerID, summary.Category)
	rec, ok := s.records[key]
	if !ok {
		rec = domain.ZeroProgress(summary.LearnerID, summary.Category)
	}
	rec.ApplyOutcome(summary, s.now())

	s.records[key] = rec
	s.sessions[session.ID] = session.Clone()
	return rec, nil
}

// Session returns an archived session by id, or nil.
func (s *MemoryStore) Session(id string) *domain.Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	if sess, ok := s.sessions[id]; ok {
		return sess.Clone()
	}
	return nil
}
