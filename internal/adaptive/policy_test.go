package adaptive

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/alexanderramin/tableside/internal/domain"
)

func TestNextTier(t *testing.T) {
	p := DefaultPolicy()

	tests := []struct {
		name    string
		scores  []int
		current domain.Tier
		want    domain.Tier
	}{
		{"no scores holds", nil, domain.TierBeginner, domain.TierBeginner},
		{"high average promotes", []int{90}, domain.TierBeginner, domain.TierIntermediate},
		{"boundary promotes", []int{80, 80, 80}, domain.TierBeginner, domain.TierIntermediate},
		{"just under boundary holds", []int{79, 80, 80}, domain.TierBeginner, domain.TierBeginner},
		{"low average demotes", []int{40, 45}, domain.TierIntermediate, domain.TierBeginner},
		{"boundary does not demote", []int{50, 50}, domain.TierIntermediate, domain.TierIntermediate},
		{"middling holds", []int{60, 70, 65}, domain.TierIntermediate, domain.TierIntermediate},
		{"promote clamps at advanced", []int{95, 95, 95}, domain.TierAdvanced, domain.TierAdvanced},
		{"demote clamps at beginner", []int{10, 10}, domain.TierBeginner, domain.TierBeginner},
		{"only trailing window counts", []int{10, 10, 90, 90, 90}, domain.TierBeginner, domain.TierIntermediate},
		{"old highs age out", []int{95, 95, 40, 40, 40}, domain.TierIntermediate, domain.TierBeginner},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NextTier(tt.scores, tt.current, p)
			assert.Equal(t, tt.want, got)
		})
	}
}

// A strong run climbs one tier per turn and then holds at the top.
func TestNextTier_StrongRunClimbs(t *testing.T) {
	p := DefaultPolicy()
	scores := []int{90, 85, 95}

	tier := domain.TierBeginner
	var path []domain.Tier
	for i := range scores {
		tier = NextTier(scores[:i+1], tier, p)
		path = append(path, tier)
	}

	assert.Equal(t, []domain.Tier{
		domain.TierIntermediate, // avg 90
		domain.TierAdvanced,     // avg 87.5
		domain.TierAdvanced,     // avg 90, already at top
	}, path)
}

// A weak run drops a tier per turn and clamps at the bottom.
func TestNextTier_WeakRunDrops(t *testing.T) {
	p := DefaultPolicy()
	scores := []int{40, 30}

	tier := domain.TierIntermediate
	tier = NextTier(scores[:1], tier, p)
	assert.Equal(t, domain.TierBeginner, tier)

	tier = NextTier(scores[:2], tier, p)
	assert.Equal(t, domain.TierBeginner, tier)
}

func TestNextTier_CustomPolicy(t *testing.T) {
	p := Policy{Window: 1, PromoteAt: 60, DemoteBelow: 30}

	assert.Equal(t, domain.TierIntermediate,
		NextTier([]int{10, 10, 65}, domain.TierBeginner, p))
	assert.Equal(t, domain.TierBeginner,
		NextTier([]int{90, 90, 20}, domain.TierIntermediate, p))
}

func TestNextTier_InvalidPolicyHolds(t *testing.T) {
	bad := Policy{Window: 0, PromoteAt: 80, DemoteBelow: 50}
	assert.Equal(t, domain.TierBeginner, NextTier([]int{95}, domain.TierBeginner, bad))

	inverted := Policy{Window: 3, PromoteAt: 40, DemoteBelow: 60}
	assert.Equal(t, domain.TierBeginner, NextTier([]int{95}, domain.TierBeginner, inverted))
}

func TestPolicyValid(t *testing.T) {
	assert.True(t, DefaultPolicy().Valid())
	assert.False(t, Policy{Window: 0, PromoteAt: 80, DemoteBelow: 50}.Valid())
	assert.False(t, Policy{Window: 3, PromoteAt: 50, DemoteBelow: 80}.Valid())
	assert.False(t, Policy{Window: 3, PromoteAt: 120, DemoteBelow: 50}.Valid())
}
