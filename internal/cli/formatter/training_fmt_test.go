package formatter

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/alexanderramin/tableside/internal/domain"
)

func TestRenderTable_AlignsColumns(t *testing.T) {
	out := RenderTable(
		[]string{"ID", "CATEGORY"},
		[][]string{
			{"greeting-walkin", "greeting"},
			{"u1", "upselling"},
		},
	)

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	assert.Len(t, lines, 4) // header, separator, two rows
	assert.Contains(t, lines[0], "ID")
	assert.Contains(t, lines[2], "greeting-walkin")
}

func TestRenderTable_EmptyHeaders(t *testing.T) {
	assert.Equal(t, "", RenderTable(nil, nil))
}

func TestFormatAssessment_ListsCriteria(t *testing.T) {
	out := FormatAssessment(domain.Assessment{
		Score:           72,
		Feedback:        "Good instincts, slow down when listing specials.",
		MatchedCriteria: []string{"greets promptly"},
		MissedCriteria:  []string{"mentions the specials"},
	})

	assert.Contains(t, out, "72/100")
	assert.Contains(t, out, "Good instincts")
	assert.Contains(t, out, "greets promptly")
	assert.Contains(t, out, "mentions the specials")
}

func TestFormatTierChange(t *testing.T) {
	assert.Contains(t, FormatTierChange(domain.TierBeginner, domain.TierIntermediate), "Promoted")
	assert.Contains(t, FormatTierChange(domain.TierAdvanced, domain.TierIntermediate), "Moved back")
	assert.Equal(t, "", FormatTierChange(domain.TierBeginner, domain.TierBeginner))
}

func TestFormatSummary(t *testing.T) {
	started := time.Date(2026, 3, 1, 18, 0, 0, 0, time.UTC)
	ended := started.Add(12 * time.Minute)

	out := FormatSummary(domain.SessionSummary{
		SessionID:    "abc",
		LearnerID:    "maria",
		Category:     domain.CategoryGreeting,
		Turns:        4,
		AverageScore: 81.25,
		FinalTier:    domain.TierIntermediate,
		StartedAt:    started,
		EndedAt:      ended,
	})

	assert.Contains(t, out, "Session complete")
	assert.Contains(t, out, "81.2")
	assert.Contains(t, out, "intermediate")
	assert.Contains(t, out, "12m0s")
}

func TestShortID(t *testing.T) {
	assert.Equal(t, "a1b2c3d4", ShortID("a1b2c3d4-e5f6-7890"))
	assert.Equal(t, "tiny", ShortID("tiny"))
	assert.Equal(t, "", ShortID(""))
}

func TestFormatSummary_NoEndTimeOmitsDuration(t *testing.T) {
	out := FormatSummary(domain.SessionSummary{
		SessionID: "abc",
		LearnerID: "maria",
		Category:  domain.CategoryGreeting,
		StartedAt: time.Date(2026, 3, 1, 18, 0, 0, 0, time.UTC),
	})

	assert.Contains(t, out, "Session complete")
	assert.NotContains(t, out, "Duration:")
}
