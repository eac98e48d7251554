package tracker

import (
	"path/filepath"
	"testing"

	"esgcompass/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdd_UpsertsByID(t *testing.T) {
	tr := New()
	tr.Add("EN101", domain.ImportanceMedium, "first", "turn 1")
	tr.Add("EN101", domain.ImportanceCritical, "second", "turn 4")

	assert.Equal(t, 1, tr.Len())

	entry, ok := tr.Get("EN101")
	require.True(t, ok)
	assert.Equal(t, domain.ImportanceCritical, entry.Importance)
	assert.Equal(t, "second", entry.Notes, "notes are replaced, not merged")
	assert.Equal(t, "turn 4", entry.AddedFrom)
}

func TestRemove_AbsentIsNoop(t *testing.T) {
	tr := New()
	tr.Add("EN101", domain.ImportanceHigh, "", "")

	tr.Remove("EN999")
	assert.Equal(t, 1, tr.Len())

	tr.Remove("EN101")
	assert.False(t, tr.Has("EN101"))
}

func TestUpdateImportance(t *testing.T) {
	tr := New()
	tr.Add("EN101", domain.ImportanceLow, "keep me", "src")

	tr.UpdateImportance("EN101", domain.ImportanceHigh)
	entry, _ := tr.Get("EN101")
	assert.Equal(t, domain.ImportanceHigh, entry.Importance)
	assert.Equal(t, "keep me", entry.Notes, "only the tier changes")

	tr.UpdateImportance("EN999", domain.ImportanceHigh)
	assert.False(t, tr.Has("EN999"), "update must not auto-create")
}

func TestByImportanceAndSummary(t *testing.T) {
	tr := New()
	tr.Add("A", domain.ImportanceCritical, "", "")
	tr.Add("B", domain.ImportanceHigh, "", "")
	tr.Add("C", domain.ImportanceHigh, "", "")
	tr.Add("D", domain.ImportanceMedium, "", "")

	assert.ElementsMatch(t, []string{"B", "C"}, tr.High())
	assert.ElementsMatch(t, []string{"A"}, tr.Critical())
	assert.Empty(t, tr.Low())

	sum := tr.Summary()
	assert.Equal(t, Summary{Total: 4, Critical: 1, High: 2, Medium: 1, Low: 0}, sum)
}

func TestRecordRoundTrip(t *testing.T) {
	tr := New()
	tr.Add("EN101", domain.ImportanceHigh, "clean rivers", "I care about water")
	tr.Add("SO200", domain.ImportanceMedium, "", "pay gaps")

	restored := FromRecord(tr.ToRecord())
	assert.Equal(t, tr.ToRecord(), restored.ToRecord())

	// The export is a copy; mutating it leaves the tracker untouched.
	record := tr.ToRecord()
	delete(record, "EN101")
	assert.True(t, tr.Has("EN101"))
}

func TestFileRoundTrip(t *testing.T) {
	tr := New()
	tr.Add("EN101", domain.ImportanceCritical, "notes here", "user said so")
	tr.Add("GO300", domain.ImportanceLow, "", "")

	path := filepath.Join(t.TempDir(), "priorities.json")
	require.NoError(t, tr.SaveFile(path))

	loaded, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, tr.ToRecord(), loaded.ToRecord())
}

func TestLoadFile_Missing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}
