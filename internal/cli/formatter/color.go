package formatter

import (
	"fmt"
	"strings"

	"esgcompass/internal/domain"

	"github.com/charmbracelet/lipgloss"
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

// ImportanceColor returns the lipgloss style for an importance tier.
func ImportanceColor(tier domain.ImportanceTier) lipgloss.Style {
	switch tier {
	case domain.ImportanceCritical:
		return StyleRed
	case domain.ImportanceHigh:
		return StyleYellow
	case domain.ImportanceMedium:
		return StyleBlue
	case domain.ImportanceLow:
		return StyleDim
	default:
		return StyleDim
	}
}

// ImportanceBadge returns a colored badge string such as "● HIGH".
func ImportanceBadge(tier domain.ImportanceTier) string {
	label := strings.ToUpper(string(tier))
	if label == "" {
		label = "UNKNOWN"
	}
	return ImportanceColor(tier).Render("● " + label)
}

// PillarColor returns the display style for an ESG pillar name.
func PillarColor(pillar string) lipgloss.Style {
	switch pillar {
	case "Environmental":
		return StyleGreen
	case "Social":
		return StyleBlue
	case "Governance":
		return StylePurple
	default:
		return StyleFg
	}
}

// Header renders a section header with the orange header style and an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", len(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

// Dim renders text in the muted/dim color.
func Dim(text string) string {
	return StyleDim.Render(text)
}

// Bold renders text in bold with the foreground color.
func Bold(text string) string {
	return StyleBold.Render(text)
}
