package formatter

import (
	"fmt"
	"strings"

	"esgcompass/internal/advisor"
)

// FormatReport renders a finished preference report for the terminal.
func FormatReport(r advisor.Report) string {
	var b strings.Builder

	b.WriteString(Header("ESG Preference Profile"))
	b.WriteString("\n\n")

	if len(r.TopPriorities) > 0 {
		b.WriteString(StyleBold.Render("Top Priorities"))
		b.WriteString("\n")
		for _, item := range r.TopPriorities {
			fmt.Fprintf(&b, "  %s %s %s\n", ImportanceBadge(item.Importance), Bold(item.FieldName), Dim(itemLocation(item)))
			if item.Notes != "" {
				fmt.Fprintf(&b, "      %s\n", Dim(item.Notes))
			}
		}
		b.WriteString("\n")
	}

	if len(r.Interests) > 0 {
		b.WriteString(StyleBold.Render("Areas of Interest"))
		b.WriteString("\n")
		for _, item := range r.Interests {
			fmt.Fprintf(&b, "  %s %s %s\n", ImportanceBadge(item.Importance), item.FieldName, Dim(itemLocation(item)))
		}
		b.WriteString("\n")
	}

	if len(r.LowPriority) > 0 {
		names := make([]string, len(r.LowPriority))
		for i, item := range r.LowPriority {
			names[i] = item.FieldName
		}
		b.WriteString(StyleBold.Render("Low Priority"))
		b.WriteString("\n  " + Dim(strings.Join(names, ", ")) + "\n\n")
	}

	if r.Counts.Total == 0 {
		b.WriteString(Dim("No specific priorities were captured in this conversation.") + "\n\n")
	}

	fmt.Fprintf(&b, "%s priorities: %d total (%d critical, %d high, %d medium, %d low)\n",
		Dim("∑"), r.Counts.Total, r.Counts.Critical, r.Counts.High, r.Counts.Medium, r.Counts.Low)
	b.WriteString(FormatSessionProgress(r.Progress))
	b.WriteString("\n")

	return b.String()
}

func itemLocation(item advisor.ReportItem) string {
	switch {
	case item.Pillar != "" && item.Issue != "":
		return "(" + item.Pillar + " > " + item.Issue + ")"
	case item.Pillar != "":
		return "(" + item.Pillar + ")"
	default:
		return ""
	}
}
