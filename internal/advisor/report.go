package advisor

import (
	"fmt"
	"sort"
	"strings"

	"esgcompass/internal/domain"
	"esgcompass/internal/router"
	"esgcompass/internal/taxonomy"
	"esgcompass/internal/tracker"
)

// ReportItem is one captured priority joined back against the taxonomy.
type ReportItem struct {
	FieldID    string                `json:"field_id"`
	FieldName  string                `json:"field_name"`
	Pillar     string                `json:"pillar"`
	Issue      string                `json:"issue"`
	Importance domain.ImportanceTier `json:"importance"`
	Notes      string                `json:"notes"`
}

// Report is the structured preference profile produced at session end.
type Report struct {
	TopPriorities []ReportItem     `json:"top_priorities"` // critical + high
	Interests     []ReportItem     `json:"interests"`      // medium
	LowPriority   []ReportItem     `json:"low_priority"`
	Counts        tracker.Summary  `json:"counts"`
	Progress      router.Progress  `json:"progress"`
}

// BuildReport joins the tracker's entries against the taxonomy store.
// Entries whose field ID is no longer in the store keep their ID as
// the display name rather than being dropped.
func BuildReport(t *tracker.Tracker, store *taxonomy.Store, progress router.Progress) Report {
	r := Report{
		Counts:   t.Summary(),
		Progress: progress,
	}

	ids := t.FieldIDs()
	sort.Strings(ids)

	for _, id := range ids {
		entry, _ := t.Get(id)
		item := ReportItem{
			FieldID:    id,
			FieldName:  id,
			Importance: entry.Importance,
			Notes:      entry.Notes,
		}
		if f, ok := store.Get(id); ok {
			item.FieldName = f.FieldName
			item.Pillar = f.Pillar
			item.Issue = f.Issue
		}

		switch entry.Importance {
		case domain.ImportanceCritical, domain.ImportanceHigh:
			r.TopPriorities = append(r.TopPriorities, item)
		case domain.ImportanceMedium:
			r.Interests = append(r.Interests, item)
		default:
			r.LowPriority = append(r.LowPriority, item)
		}
	}
	return r
}

// Markdown renders the report as a shareable document.
func (r Report) Markdown() string {
	var b strings.Builder
	b.WriteString("# Your ESG Investment Preference Profile\n\n")

	if len(r.TopPriorities) > 0 {
		b.WriteString("## Top Priorities\n\n")
		for _, item := range r.TopPriorities {
			fmt.Fprintf(&b, "### %s\n", item.FieldName)
			if item.Pillar != "" {
				fmt.Fprintf(&b, "*%s*\n", itemPath(item))
			}
			if item.Notes != "" {
				fmt.Fprintf(&b, "%s\n", item.Notes)
			}
			b.WriteString("\n")
		}
	}

	if len(r.Interests) > 0 {
		b.WriteString("## Areas of Interest\n\n")
		for _, item := range r.Interests {
			fmt.Fprintf(&b, "- **%s**", item.FieldName)
			if item.Notes != "" {
				fmt.Fprintf(&b, ": %s", item.Notes)
			}
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	if len(r.LowPriority) > 0 {
		b.WriteString("## Low Priority Areas\n\n")
		names := make([]string, len(r.LowPriority))
		for i, item := range r.LowPriority {
			names[i] = item.FieldName
		}
		b.WriteString(strings.Join(names, ", ") + "\n\n")
	}

	if r.Counts.Total == 0 {
		b.WriteString("No specific priorities were captured in this conversation.\n\n")
	}

	b.WriteString("---\n\n")
	fmt.Fprintf(&b, "*Based on a conversation covering %d of %d topic areas*\n",
		r.Progress.Current, r.Progress.Total)
	return b.String()
}

func itemPath(item ReportItem) string {
	if item.Issue != "" {
		return item.Pillar + " > " + item.Issue
	}
	return item.Pillar
}
