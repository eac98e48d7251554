package advisor

import (
	"testing"

	"esgcompass/internal/domain"
	"esgcompass/internal/router"
	"esgcompass/internal/tracker"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildReport_TiersAndJoin(t *testing.T) {
	store := testStore()
	tr := tracker.New()
	tr.Add("EN101", domain.ImportanceHigh, "clean rivers matter", "turn 2")
	tr.Add("EN201", domain.ImportanceMedium, "", "turn 4")
	tr.Add("ZZ999", domain.ImportanceLow, "", "turn 5") // no longer in taxonomy

	report := BuildReport(tr, store, router.Progress{Current: 4, Total: 5, Percentage: 60})

	require.Len(t, report.TopPriorities, 1)
	assert.Equal(t, "Water Quality", report.TopPriorities[0].FieldName)
	assert.Equal(t, "Environmental", report.TopPriorities[0].Pillar)
	assert.Equal(t, "clean rivers matter", report.TopPriorities[0].Notes)

	require.Len(t, report.Interests, 1)
	assert.Equal(t, "Carbon Dioxide Emissions", report.Interests[0].FieldName)

	require.Len(t, report.LowPriority, 1)
	assert.Equal(t, "ZZ999", report.LowPriority[0].FieldName, "unknown IDs fall back to the ID")

	assert.Equal(t, 3, report.Counts.Total)
}

func TestReport_Markdown(t *testing.T) {
	store := testStore()
	tr := tracker.New()
	tr.Add("EN101", domain.ImportanceHigh, "clean rivers matter", "")
	tr.Add("EN201", domain.ImportanceMedium, "transition risk", "")

	md := BuildReport(tr, store, router.Progress{Current: 5, Total: 5, Percentage: 100}).Markdown()

	assert.Contains(t, md, "# Your ESG Investment Preference Profile")
	assert.Contains(t, md, "## Top Priorities")
	assert.Contains(t, md, "### Water Quality")
	assert.Contains(t, md, "Environmental > Water Management")
	assert.Contains(t, md, "- **Carbon Dioxide Emissions**: transition risk")
	assert.Contains(t, md, "covering 5 of 5 topic areas")
}

func TestReport_MarkdownEmpty(t *testing.T) {
	md := BuildReport(tracker.New(), testStore(), router.Progress{Current: 1, Total: 5}).Markdown()
	assert.Contains(t, md, "No specific priorities were captured")
	assert.NotContains(t, md, "## Top Priorities")
}
