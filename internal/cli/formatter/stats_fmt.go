package formatter

import (
	"fmt"
	"strings"

	"esgcompass/internal/importer"
	"esgcompass/internal/taxonomy"
)

// FormatStats renders taxonomy load statistics.
func FormatStats(stats taxonomy.Stats, summary taxonomy.Summary, version, source string) string {
	var b strings.Builder

	b.WriteString(Header("Taxonomy"))
	b.WriteString("\n")
	if version != "" {
		fmt.Fprintf(&b, "%s %s\n", Dim("Version:"), version)
	}
	if source != "" {
		fmt.Fprintf(&b, "%s %s\n", Dim("Source:"), source)
	}
	fmt.Fprintf(&b, "%s %d fields, %d pillars, %d issues\n",
		Dim("Store:"), stats.TotalFields, stats.PillarCount, stats.IssueCount)
	fmt.Fprintf(&b, "%s %d fields under %d issues, %d sub-issues\n",
		Dim("Tree:"), summary.FieldCount, summary.IssueCount, summary.SubIssueCount)
	if stats.Skipped > 0 {
		fmt.Fprintf(&b, "%s %d records skipped at load\n", Dim("Note:"), stats.Skipped)
	}

	b.WriteString("\n" + StyleBold.Render("Pillars") + "\n")
	for _, pillar := range stats.Pillars {
		fmt.Fprintf(&b, "  %s\n", PillarColor(pillar).Render(pillar))
	}

	return b.String()
}

// FormatProcessResults renders per-file CSV processing outcomes.
func FormatProcessResults(results []importer.FileResult, total int) string {
	var b strings.Builder
	for _, r := range results {
		fmt.Fprintf(&b, "  %s %s: %d fields", StyleGreen.Render("✓"), r.Source, r.Kept)
		if r.Skipped > 0 {
			fmt.Fprintf(&b, " %s", Dim(fmt.Sprintf("(%d rows skipped)", r.Skipped)))
		}
		b.WriteString("\n")
	}
	fmt.Fprintf(&b, "%s %d fields total\n", Bold("→"), total)
	return b.String()
}
