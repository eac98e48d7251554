package tracker

import (
	"encoding/json"
	"fmt"
	"os"

	"esgcompass/internal/domain"
)

// Tracker accumulates the fields a user has signalled they care about,
// keyed by field ID. Adds are upserts: the latest write for an ID
// replaces the previous entry wholesale. Single-session state; not
// safe for concurrent use.
type Tracker struct {
	entries map[string]domain.PriorityEntry
}

// Summary holds per-tier counts for display.
type Summary struct {
	Total    int `json:"total"`
	Critical int `json:"critical"`
	High     int `json:"high"`
	Medium   int `json:"medium"`
	Low      int `json:"low"`
}

// New returns an empty tracker.
func New() *Tracker {
	return &Tracker{entries: make(map[string]domain.PriorityEntry)}
}

// Add records a field as a priority, overwriting any existing entry
// for the same ID. Notes are not merged across calls.
func (t *Tracker) Add(fieldID string, importance domain.ImportanceTier, notes, addedFrom string) {
	t.entries[fieldID] = domain.PriorityEntry{
		Importance: importance,
		Notes:      notes,
		AddedFrom:  addedFrom,
	}
}

// Remove deletes an entry; removing an absent ID is a no-op.
func (t *Tracker) Remove(fieldID string) {
	delete(t.entries, fieldID)
}

// UpdateImportance changes the tier of an existing entry. Absent IDs
// are not created.
func (t *Tracker) UpdateImportance(fieldID string, importance domain.ImportanceTier) {
	entry, ok := t.entries[fieldID]
	if !ok {
		return
	}
	entry.Importance = importance
	t.entries[fieldID] = entry
}

// Get returns the entry for a field ID.
func (t *Tracker) Get(fieldID string) (domain.PriorityEntry, bool) {
	entry, ok := t.entries[fieldID]
	return entry, ok
}

// Has reports whether a field is tracked.
func (t *Tracker) Has(fieldID string) bool {
	_, ok := t.entries[fieldID]
	return ok
}

// Len returns the number of tracked fields.
func (t *Tracker) Len() int {
	return len(t.entries)
}

// FieldIDs returns all tracked IDs. Order follows map iteration and is
// not stable; callers needing a stable order must sort.
func (t *Tracker) FieldIDs() []string {
	ids := make([]string, 0, len(t.entries))
	for id := range t.entries {
		ids = append(ids, id)
	}
	return ids
}

// ByImportance returns the IDs tracked at the given tier.
func (t *Tracker) ByImportance(tier domain.ImportanceTier) []string {
	var ids []string
	for id, entry := range t.entries {
		if entry.Importance == tier {
			ids = append(ids, id)
		}
	}
	return ids
}

// Critical returns all critical-tier field IDs.
func (t *Tracker) Critical() []string { return t.ByImportance(domain.ImportanceCritical) }

// High returns all high-tier field IDs.
func (t *Tracker) High() []string { return t.ByImportance(domain.ImportanceHigh) }

// Medium returns all medium-tier field IDs.
func (t *Tracker) Medium() []string { return t.ByImportance(domain.ImportanceMedium) }

// Low returns all low-tier field IDs.
func (t *Tracker) Low() []string { return t.ByImportance(domain.ImportanceLow) }

// Summary returns per-tier counts.
func (t *Tracker) Summary() Summary {
	return Summary{
		Total:    len(t.entries),
		Critical: len(t.Critical()),
		High:     len(t.High()),
		Medium:   len(t.Medium()),
		Low:      len(t.Low()),
	}
}

// ToRecord exports the tracked entries as a plain map. The returned
// map is a copy; mutating it does not affect the tracker.
func (t *Tracker) ToRecord() map[string]domain.PriorityEntry {
	out := make(map[string]domain.PriorityEntry, len(t.entries))
	for id, entry := range t.entries {
		out[id] = entry
	}
	return out
}

// FromRecord builds a tracker from an exported record map.
func FromRecord(record map[string]domain.PriorityEntry) *Tracker {
	t := New()
	for id, entry := range record {
		t.entries[id] = entry
	}
	return t
}

// SaveFile writes the tracked entries as indented JSON.
func (t *Tracker) SaveFile(path string) error {
	data, err := json.MarshalIndent(t.ToRecord(), "", "  ")
	if err != nil {
		return fmt.Errorf("encoding priorities: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing priorities file: %w", err)
	}
	return nil
}

// LoadFile reads a priorities JSON file written by SaveFile.
func LoadFile(path string) (*Tracker, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading priorities file: %w", err)
	}
	var record map[string]domain.PriorityEntry
	if err := json.Unmarshal(data, &record); err != nil {
		return nil, fmt.Errorf("parsing priorities file: %w", err)
	}
	return FromRecord(record), nil
}
