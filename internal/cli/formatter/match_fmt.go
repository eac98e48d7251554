package formatter

import (
	"fmt"
	"strings"

	"esgcompass/internal/matcher"

	"github.com/charmbracelet/lipgloss"
)

// FormatMatchList renders matcher results as a scored list.
func FormatMatchList(matches []matcher.Match) string {
	if len(matches) == 0 {
		return Dim("No matching fields.")
	}

	var b strings.Builder
	for i, m := range matches {
		path := m.Field.Pillar
		if m.Field.Issue != "" {
			path += " > " + m.Field.Issue
		}
		if m.Field.SubIssue != "" {
			path += " > " + m.Field.SubIssue
		}
		fmt.Fprintf(&b, "%2d. %s %s %s\n", i+1,
			scoreStyle(m.Score).Render(fmt.Sprintf("%5.1f", m.Score)),
			Bold(m.Field.FieldName),
			Dim(fmt.Sprintf("[%s]", m.Field.FieldID)))
		if path != "" {
			fmt.Fprintf(&b, "    %s\n", PillarColor(m.Field.Pillar).Render(path))
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

func scoreStyle(score float64) lipgloss.Style {
	switch {
	case score > 6.0:
		return StyleGreen
	case score >= 3.0:
		return StyleYellow
	default:
		return StyleDim
	}
}
