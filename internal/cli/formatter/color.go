package formatter

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexanderramin/tableside/internal/domain"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorPurple = lipgloss.Color("#d3869b")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

// Predefined lipgloss styles.
var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StylePurple = lipgloss.NewStyle().Foreground(ColorPurple)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// Dim renders s in the dim style.
func Dim(s string) string {
	return StyleDim.Render(s)
}

// TierStyle returns the style used for a difficulty tier.
func TierStyle(tier domain.Tier) lipgloss.Style {
	switch tier {
	case domain.TierAdvanced:
		return StylePurple
	case domain.TierIntermediate:
		return StyleBlue
	default:
		return StyleGreen
	}
}

// TierBadge renders a colored tier label such as "● intermediate".
func TierBadge(tier domain.Tier) string {
	return TierStyle(tier).Render("● " + string(tier))
}

// ScoreStyle colors a score by how close it is to the promotion band.
func ScoreStyle(score int) lipgloss.Style {
	switch {
	case score >= 80:
		return StyleGreen
	case score >= 50:
		return StyleYellow
	default:
		return StyleRed
	}
}

// Score renders a score as a colored "85/100".
func Score(score int) string {
	return ScoreStyle(score).Render(fmt.Sprintf("%d/100", score))
}
