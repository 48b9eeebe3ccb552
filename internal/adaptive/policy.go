// Package adaptive decides when a trainee moves between difficulty tiers.
// The policy is a pure function over recent scores so it can be tested
// exhaustively and swapped without touching session handling.
package adaptive

import "github.com/alexanderramin/tableside/internal/domain"

// Policy holds the tunable thresholds for tier movement.
type Policy struct {
	// Window is how many recent scores feed the rolling average.
	Window int
	// PromoteAt promotes when the rolling average reaches this score.
	PromoteAt float64
	// DemoteBelow demotes when the rolling average falls under this score.
	DemoteBelow float64
}

// DefaultPolicy returns the standard thresholds.
func DefaultPolicy() Policy {
	return Policy{
		Window:      3,
		PromoteAt:   80,
		DemoteBelow: 50,
	}
}

// Valid reports whether the policy's thresholds are coherent.
func (p Policy) Valid() bool {
	return p.Window > 0 && p.PromoteAt > p.DemoteBelow && p.DemoteBelow >= 0 && p.PromoteAt <= 100
}

// NextTier computes the tier for the next scenario given the session's
// score history. scores is ordered oldest to newest; only the trailing
// window is considered. With no scores the current tier holds.
func NextTier(scores []int, current domain.Tier, p Policy) domain.Tier {
	if len(scores) == 0 || !p.Valid() {
		return current
	}

	window := scores
	if len(window) > p.Window {
		window = window[len(window)-p.Window:]
	}

	sum := 0
	for _, s := range window {
		sum += s
	}
	avg := float64(sum) / float64(len(window))

	switch {
	case avg >= p.PromoteAt:
		return current.Promote()
	case avg < p.DemoteBelow:
		return current.Demote()
	default:
		return current
	}
}
