package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/tableside/internal/domain"
)

// FormatScenario renders a scenario card for presentation to the trainee.
func FormatScenario(s domain.Scenario, turn int) string {
	var b strings.Builder

	header := fmt.Sprintf("Scenario %d", turn)
	if turn <= 0 {
		header = "Scenario"
	}
	b.WriteString(StyleHeader.Render(header))
	b.WriteString("  ")
	b.WriteString(TierBadge(s.Tier))
	b.WriteString("  ")
	b.WriteString(Dim(s.Category.Description()))
	b.WriteString("\n\n")
	b.WriteString(StyleFg.Render(s.Prompt))
	b.WriteString("\n")

	return b.String()
}

// FormatAssessment renders the graded result of one turn.
func FormatAssessment(a domain.Assessment) string {
	var b strings.Builder

	b.WriteString(StyleBold.Render("Score: "))
	b.WriteString(Score(a.Score))
	b.WriteString("\n\n")
	b.WriteString(StyleFg.Render(a.Feedback))
	b.WriteString("\n")

	if len(a.MatchedCriteria) > 0 {
		b.WriteString("\n")
		b.WriteString(StyleGreen.Render("Done well:"))
		b.WriteString("\n")
		for _, c := range a.MatchedCriteria {
			fmt.Fprintf(&b, "  %s %s\n", StyleGreen.Render("✓"), c)
		}
	}
	if len(a.MissedCriteria) > 0 {
		b.WriteString("\n")
		b.WriteString(StyleYellow.Render("To work on:"))
		b.WriteString("\n")
		for _, c := range a.MissedCriteria {
			fmt.Fprintf(&b, "  %s %s\n", StyleYellow.Render("✗"), c)
		}
	}

	return b.String()
}

// FormatTierChange renders a one-line notice when the difficulty moved.
func FormatTierChange(from, to domain.Tier) string {
	if from == to {
		return ""
	}
	if to.Harder(from) {
		return StyleGreen.Render(fmt.Sprintf("▲ Promoted to %s", to))
	}
	return StyleYellow.Render(fmt.Sprintf("▼ Moved back to %s", to))
}

// FormatSummary renders a session summary block.
func FormatSummary(s domain.SessionSummary) string {
	var b strings.Builder

	b.WriteString(StyleHeader.Render("Session complete"))
	b.WriteString("\n\n")
	fmt.Fprintf(&b, "%s %s\n", StyleBold.Render("Category:"), string(s.Category))
	fmt.Fprintf(&b, "%s %d\n", StyleBold.Render("Turns:"), s.Turns)
	fmt.Fprintf(&b, "%s %s\n", StyleBold.Render("Average:"), ScoreStyle(int(s.AverageScore)).Render(fmt.Sprintf("%.1f", s.AverageScore)))
	fmt.Fprintf(&b, "%s %s\n", StyleBold.Render("Final tier:"), TierBadge(s.FinalTier))
	if !s.EndedAt.IsZero() {
		fmt.Fprintf(&b, "%s %s\n", StyleBold.Render("Duration:"), s.EndedAt.Sub(s.StartedAt).Round(time.Second))
	}

	return b.String()
}

// ShortID truncates an identifier to 8 characters for table display.
func ShortID(id string) string {
	if len(id) <= 8 {
		return id
	}
	return id[:8]
}

// FormatProgressRows converts progress records into table rows.
func FormatProgressRows(recs []domain.ProgressRecord) [][]string {
	rows := make([][]string, 0, len(recs))
	for _, r := range recs {
		rows = append(rows, []string{
			string(r.Category),
			fmt.Sprintf("%d", r.SessionsCompleted),
			ScoreStyle(int(r.AverageScore)).Render(fmt.Sprintf("%.1f", r.AverageScore)),
			TierBadge(r.RecommendedTier),
			r.UpdatedAt.Format("2006-01-02 15:04"),
		})
	}
	return rows
}
