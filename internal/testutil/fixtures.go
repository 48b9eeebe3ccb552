package testutil

import (
	"time"

	"github.com/google/uuid"

	"github.com/alexanderramin/tableside/internal/domain"
)

// SessionOption mutates a fixture session before it is returned.
type SessionOption func(*domain.Session)

// WithTier overrides the fixture session's difficulty tier.
func WithTier(tier domain.Tier) SessionOption {
	return func(s *domain.Session) {
		s.Tier = tier
	}
}

// WithCategory overrides the fixture session's category.
func WithCategory(c domain.Category) SessionOption {
	return func(s *domain.Session) {
		s.Category = c
	}
}

// NewSession builds an open session for the given learner with sensible
// defaults (greeting, beginner, started now).
func NewSession(learnerID string, opts ...SessionOption) *domain.Session {
	s := domain.NewSession(uuid.New().String(), learnerID,
		domain.CategoryGreeting, domain.TierBeginner, time.Now().UTC())
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// NewTurn builds a turn for the session with the given score. Timestamps
// advance with the turn count so ordering invariants hold.
func NewTurn(s *domain.Session, scenario domain.Scenario, score int) domain.Turn {
	return domain.Turn{
		ID:        uuid.New().String(),
		SessionID: s.ID,
		Scenario:  scenario,
		Response:  "I would greet the guest and walk them to a table.",
		Assessment: domain.Assessment{
			Score:           score,
			Feedback:        "Solid approach; be more specific about timing.",
			MatchedCriteria: []string{"approaches the guest promptly"},
			MissedCriteria:  []string{"explains the next step (seating or wait time)"},
		},
		CreatedAt: s.StartedAt.Add(time.Duration(len(s.Turns)+1) * time.Second),
	}
}

// Scenario returns a minimal valid scenario for tests.
func Scenario(id string, category domain.Category, tier domain.Tier) domain.Scenario {
	return domain.Scenario{
		ID:       id,
		Category: category,
		Tier:     tier,
		Prompt:   "A guest needs help. What do you do?",
		Rubric:   []string{"acts promptly", "stays professional"},
	}
}
