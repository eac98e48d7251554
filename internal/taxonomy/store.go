package taxonomy

import (
	"sort"
	"strings"

	"esgcompass/internal/domain"
)

// Store owns the full ordered sequence of taxonomy field records and
// the lookup indices derived from it. Built once at load time and
// treated as read-only afterwards; safe to share across sessions.
type Store struct {
	Version string
	Source  string

	fields   []domain.FieldRecord
	byID     map[string]domain.FieldRecord
	byPillar map[string][]domain.FieldRecord
	byIssue  map[string][]domain.FieldRecord

	// Records dropped at construction for missing ID or name.
	skipped int
}

// Stats summarizes the loaded taxonomy for diagnostics.
type Stats struct {
	TotalFields int
	PillarCount int
	IssueCount  int
	Pillars     []string
	Issues      []string
	Skipped     int
}

// NewStore builds a store from a sequence of field records. Records
// with an empty ID or name are excluded; duplicate IDs keep the first
// occurrence. The input order of the surviving records is preserved.
func NewStore(records []domain.FieldRecord) *Store {
	s := &Store{
		byID:     make(map[string]domain.FieldRecord),
		byPillar: make(map[string][]domain.FieldRecord),
		byIssue:  make(map[string][]domain.FieldRecord),
	}
	for _, f := range records {
		f.FieldID = strings.TrimSpace(f.FieldID)
		f.FieldName = strings.TrimSpace(f.FieldName)
		if f.FieldID == "" || f.FieldName == "" {
			s.skipped++
			continue
		}
		if _, dup := s.byID[f.FieldID]; dup {
			s.skipped++
			continue
		}
		if f.SearchText == "" {
			f.SearchText = domain.BuildSearchText(f)
		}
		s.fields = append(s.fields, f)
		s.byID[f.FieldID] = f
		if pillar := strings.TrimSpace(f.Pillar); pillar != "" {
			s.byPillar[pillar] = append(s.byPillar[pillar], f)
		}
		if issue := strings.TrimSpace(f.Issue); issue != "" {
			s.byIssue[issue] = append(s.byIssue[issue], f)
		}
	}
	return s
}

// Fields returns the full ordered record sequence. Callers must not
// mutate the returned slice.
func (s *Store) Fields() []domain.FieldRecord {
	return s.fields
}

// Get looks up a field by ID. A missing ID is not an error.
func (s *Store) Get(fieldID string) (domain.FieldRecord, bool) {
	f, ok := s.byID[fieldID]
	return f, ok
}

// ByPillar returns all fields under a pillar, in load order.
// Unknown pillars yield an empty slice.
func (s *Store) ByPillar(pillar string) []domain.FieldRecord {
	return s.byPillar[pillar]
}

// ByIssue returns all fields under an issue, in load order.
// Unknown issues yield an empty slice.
func (s *Store) ByIssue(issue string) []domain.FieldRecord {
	return s.byIssue[issue]
}

// Pillars returns the distinct pillar names present, sorted.
func (s *Store) Pillars() []string {
	return sortedKeys(s.byPillar)
}

// Issues returns the distinct issue names present, sorted.
func (s *Store) Issues() []string {
	return sortedKeys(s.byIssue)
}

// Search scans the precomputed search blobs for a case-insensitive
// substring match, returning at most limit records in load order.
func (s *Store) Search(query string, limit int) []domain.FieldRecord {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" || limit <= 0 {
		return nil
	}
	var out []domain.FieldRecord
	for _, f := range s.fields {
		if strings.Contains(f.SearchText, q) {
			out = append(out, f)
			if len(out) >= limit {
				break
			}
		}
	}
	return out
}

// Stats returns summary counts for diagnostics.
func (s *Store) Stats() Stats {
	return Stats{
		TotalFields: len(s.fields),
		PillarCount: len(s.byPillar),
		IssueCount:  len(s.byIssue),
		Pillars:     s.Pillars(),
		Issues:      s.Issues(),
		Skipped:     s.skipped,
	}
}

func sortedKeys(m map[string][]domain.FieldRecord) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
