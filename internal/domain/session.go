package domain

import (
	"errors"
	"time"
)

// ErrSessionClosed is returned when a mutation is attempted on a session
// that has already reached its terminal state.
var ErrSessionClosed = errors.New("session closed")

// Turn is one scenario/response/assessment exchange within a session.
// Immutable after creation.
type Turn struct {
	ID         string
	SessionID  string
	Scenario   Scenario
	Response   string
	Assessment Assessment
	CreatedAt  time.Time
}

// Session is a bounded sequence of turns for one learner in one category.
// State machine: open -> in_progress (first turn) -> closed (terminal).
type Session struct {
	ID        string
	LearnerID string
	Category  Category
	Tier      Tier
	State     SessionState
	StartedAt time.Time
	EndedAt   *time.Time
	Turns     []Turn
}

// NewSession creates a session in the open state.
func NewSession(id, learnerID string, category Category, tier Tier, now time.Time) *Session {
	return &Session{
		ID:        id,
		LearnerID: learnerID,
		Category:  category,
		Tier:      tier,
		State:     SessionOpen,
		StartedAt: now,
	}
}

// Active reports whether the session still accepts turns.
func (s *Session) Active() bool {
	return s.State == SessionOpen || s.State == SessionInProgress
}

// AppendTurn records a completed turn and advances open -> in_progress.
// Fails with ErrSessionClosed on a terminal session.
func (s *Session) AppendTurn(t Turn) error {
	if !s.Active() {
		return ErrSessionClosed
	}
	s.Turns = append(s.Turns, t)
	if s.State == SessionOpen {
		s.State = SessionInProgress
	}
	return nil
}

// Close transitions the session to its terminal state. Closing an already
// closed session is a no-op, which keeps the derived summary stable.
func (s *Session) Close(now time.Time) {
	if s.State == SessionClosed {
		return
	}
	s.State = SessionClosed
	ended := now
	s.EndedAt = &ended
}

// AverageScore is the mean of all turn scores, 0 for an empty session.
func (s *Session) AverageScore() float64 {
	if len(s.Turns) == 0 {
		return 0
	}
	sum := 0
	for _, t := range s.Turns {
		sum += t.Assessment.Score
	}
	return float64(sum) / float64(len(s.Turns))
}

// RecentScores returns the scores of the last n turns in chronological order.
func (s *Session) RecentScores(n int) []int {
	start := len(s.Turns) - n
	if start < 0 {
		start = 0
	}
	scores := make([]int, 0, len(s.Turns)-start)
	for _, t := range s.Turns[start:] {
		scores = append(scores, t.Assessment.Score)
	}
	return scores
}

// Summary derives the immutable end-of-session record. Only meaningful once
// the session is closed.
func (s *Session) Summary() SessionSummary {
	sum := SessionSummary{
		SessionID:    s.ID,
		LearnerID:    s.LearnerID,
		Category:     s.Category,
		Turns:        len(s.Turns),
		AverageScore: s.AverageScore(),
		FinalTier:    s.Tier,
		StartedAt:    s.StartedAt,
	}
	if s.EndedAt != nil {
		sum.EndedAt = *s.EndedAt
	}
	return sum
}

// Clone returns a deep copy of the session, used for before/after snapshot
// comparisons in tests and for handing state across goroutine boundaries.
func (s *Session) Clone() *Session {
	cp := *s
	if s.EndedAt != nil {
		ended := *s.EndedAt
		cp.EndedAt = &ended
	}
	cp.Turns = make([]Turn, len(s.Turns))
	copy(cp.Turns, s.Turns)
	return &cp
}

// SessionSummary is the durable record of a closed session.
type SessionSummary struct {
	SessionID    string
	LearnerID    string
	Category     Category
	Turns        int
	AverageScore float64
	FinalTier    Tier
	StartedAt    time.Time
	EndedAt      time.Time
}
