package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"esgcompass/internal/advisor"
	"esgcompass/internal/db"
	"esgcompass/internal/domain"
	"esgcompass/internal/matcher"
	"esgcompass/internal/repository"
	"esgcompass/internal/router"
	"esgcompass/internal/taxonomy"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testStore() *taxonomy.Store {
	return taxonomy.NewStore([]domain.FieldRecord{
		{FieldID: "EN101", FieldName: "Water Quality", Pillar: "Environmental", Issue: "Water Management", SubIssue: "Water Pollution"},
		{FieldID: "EN201", FieldName: "Carbon Dioxide Emissions", Pillar: "Environmental", Issue: "Climate Exposure", SubIssue: "Emissions"},
		{FieldID: "SO101", FieldName: "Workforce Diversity", Pillar: "Social", Issue: "Diversity & Inclusion", SubIssue: "Representation"},
	})
}

func newTestApp(t *testing.T) *App {
	t.Helper()

	store := testStore()
	h := taxonomy.NewHierarchy(store)
	m := matcher.New(store)

	database, err := db.OpenDB(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { database.Close() })

	return &App{
		Store:     store,
		Hierarchy: h,
		Matcher:   m,
		Discovery: advisor.NewDiscoveryService(h, router.New(m), advisor.NewClassifier(nil, nil), nil),
		Profiles:  repository.NewSQLiteProfileRepo(database),
		UOW:       db.NewSQLiteUnitOfWork(database),
	}
}

// execute runs the root command with args and optional piped input.
func execute(t *testing.T, app *App, input string, args ...string) (string, error) {
	t.Helper()

	root := NewRootCmd(app)
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	if input != "" {
		root.SetIn(strings.NewReader(input))
	}
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestChatCmd_PlainConversationSavesProfile(t *testing.T) {
	app := newTestApp(t)

	input := strings.Join([]string{
		"Water management is what worries me, let's move on",
		"clean water quality is very important to us",
		"yes, this is a key concern for our fund",
		"that's all from me on this topic",
		"social topics are not important to us",
	}, "\n") + "\n"

	out, err := execute(t, app, input, "chat", "--plain", "--profile", "green-fund")
	require.NoError(t, err)

	assert.Contains(t, out, "ESG")
	assert.Contains(t, out, "noted: Water Quality")
	assert.Contains(t, out, "Water Pollution") // deep dive offer
	assert.Contains(t, out, `Saved profile "green-fund"`)

	// The saved profile is queryable afterwards.
	listOut, err := execute(t, app, "", "profile", "list")
	require.NoError(t, err)
	assert.Contains(t, listOut, "green-fund")
}

func TestChatCmd_QuitWordEndsEarly(t *testing.T) {
	app := newTestApp(t)

	out, err := execute(t, app, "quit\n", "chat", "--plain")
	require.NoError(t, err)
	assert.Contains(t, out, "No specific priorities were captured")
	assert.NotContains(t, out, "Saved profile")
}

func TestChatCmd_EOFEndsConversation(t *testing.T) {
	app := newTestApp(t)

	out, err := execute(t, app, "water quality matters a lot to us\n", "chat", "--plain")
	require.NoError(t, err)
	assert.Contains(t, out, "ESG Preference Profile")
}

func TestThinkingSpinner_NoopWithoutModel(t *testing.T) {
	app := newTestApp(t)

	// Scripted replies get no waiting indicator; the stop func is
	// still safe to call.
	stop := thinkingSpinner(app)
	stop()
}

func TestMatchCmd(t *testing.T) {
	app := newTestApp(t)

	out, err := execute(t, app, "", "match", "freshwater", "contamination")
	require.NoError(t, err)
	assert.Contains(t, out, "Water Quality")
	assert.Contains(t, out, "[EN101]")
}

func TestMatchCmd_NoMatches(t *testing.T) {
	app := newTestApp(t)

	out, err := execute(t, app, "", "match", "quarterly", "revenue")
	require.NoError(t, err)
	assert.Contains(t, out, "No matching fields")
}

func TestTaxonomyStatsCmd(t *testing.T) {
	app := newTestApp(t)

	out, err := execute(t, app, "", "taxonomy", "stats")
	require.NoError(t, err)
	assert.Contains(t, out, "3 fields")
	assert.Contains(t, out, "Environmental")
	assert.Contains(t, out, "Social")
}

func TestTaxonomyContextCmd(t *testing.T) {
	app := newTestApp(t)

	out, err := execute(t, app, "", "taxonomy", "context", "EN101")
	require.NoError(t, err)
	assert.Contains(t, out, "Pillar: Environmental > Issue: Water Management")
	assert.Contains(t, out, "Water Quality (EN101)")

	_, err = execute(t, app, "", "taxonomy", "context", "XX999")
	assert.ErrorContains(t, err, "field not found")
}

func TestTaxonomyProcessCmd(t *testing.T) {
	app := newTestApp(t)
	dir := t.TempDir()

	var b strings.Builder
	for i := 0; i < 9; i++ {
		b.WriteString("Vendor export preamble line\n")
	}
	b.WriteString(",Pillar,Issue,Sub-Issue,Field ID,Field Name,Field Type,Underlying Field ID\n")
	b.WriteString(",Environmental,Water Management,Water Pollution,EN101,Water Quality,Score,\n")
	csvPath := filepath.Join(dir, "All ES Scores Fields.csv")
	require.NoError(t, os.WriteFile(csvPath, []byte(b.String()), 0o644))

	outPath := filepath.Join(dir, "taxonomy.json")
	out, err := execute(t, app, "", "taxonomy", "process", csvPath, "--out", outPath)
	require.NoError(t, err)
	assert.Contains(t, out, "1 fields total")
	assert.Contains(t, out, "Wrote "+outPath)

	store, err := taxonomy.LoadFile(outPath)
	require.NoError(t, err)
	assert.Equal(t, 1, store.Stats().TotalFields)
}

func TestReportCmd_FromSavedProfile(t *testing.T) {
	app := newTestApp(t)

	require.NoError(t, app.Profiles.Save(t.Context(), &repository.StoredProfile{
		Name: "green-fund",
		Entries: map[string]domain.PriorityEntry{
			"EN101": {Importance: domain.ImportanceHigh, Notes: "clean water"},
		},
	}))

	out, err := execute(t, app, "", "report", "green-fund")
	require.NoError(t, err)
	assert.Contains(t, out, "Water Quality")
	assert.Contains(t, out, "clean water")

	mdOut, err := execute(t, app, "", "report", "green-fund", "--markdown")
	require.NoError(t, err)
	assert.Contains(t, mdOut, "# Your ESG Investment Preference Profile")
}

func TestReportCmd_MissingProfile(t *testing.T) {
	app := newTestApp(t)

	_, err := execute(t, app, "", "report", "missing")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestReportCmd_RequiresSource(t *testing.T) {
	app := newTestApp(t)

	_, err := execute(t, app, "", "report")
	assert.ErrorContains(t, err, "profile name or --file")
}

func TestProfileExportImportRoundtrip(t *testing.T) {
	app := newTestApp(t)

	require.NoError(t, app.Profiles.Save(t.Context(), &repository.StoredProfile{
		Name: "green-fund",
		Entries: map[string]domain.PriorityEntry{
			"EN101": {Importance: domain.ImportanceHigh, Notes: "clean water"},
			"SO101": {Importance: domain.ImportanceMedium},
		},
	}))

	path := filepath.Join(t.TempDir(), "priorities.json")
	out, err := execute(t, app, "", "profile", "export", "green-fund", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Exported")

	out, err = execute(t, app, "", "profile", "import", "copy-fund", path)
	require.NoError(t, err)
	assert.Contains(t, out, `Imported "copy-fund" (2 fields)`)

	copied, err := app.Profiles.Get(t.Context(), "copy-fund")
	require.NoError(t, err)
	assert.Equal(t, domain.ImportanceHigh, copied.Entries["EN101"].Importance)
}

func TestProfileRemoveCmd_Force(t *testing.T) {
	app := newTestApp(t)

	require.NoError(t, app.Profiles.Save(t.Context(), &repository.StoredProfile{Name: "doomed"}))

	out, err := execute(t, app, "", "profile", "remove", "doomed", "--force")
	require.NoError(t, err)
	assert.Contains(t, out, `Removed profile "doomed"`)

	_, err = app.Profiles.Get(t.Context(), "doomed")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}
