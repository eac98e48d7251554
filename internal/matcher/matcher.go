package matcher

import (
	"fmt"
	"sort"
	"strings"

	"esgcompass/internal/domain"
	"esgcompass/internal/taxonomy"
)

// Match pairs a taxonomy field with its lexical score for one input.
type Match struct {
	Field domain.FieldRecord
	Score float64
}

// Matcher scores free-text user input against every field in a
// taxonomy store. Purely lexical: case-insensitive substring and
// token-overlap checks plus a fixed table of domain keyword boosts.
type Matcher struct {
	store   *taxonomy.Store
	weights Weights
}

// New creates a matcher with default scoring weights.
func New(store *taxonomy.Store) *Matcher {
	return NewWithWeights(store, DefaultWeights())
}

// NewWithWeights creates a matcher with custom scoring weights.
func NewWithWeights(store *taxonomy.Store, weights Weights) *Matcher {
	return &Matcher{store: store, weights: weights}
}

// FindMatches scores the input against every field and returns the
// top-k matches in descending score order. Fields scoring zero are
// excluded; ties keep the store's record order.
func (m *Matcher) FindMatches(text string, topK int) []Match {
	lower := strings.ToLower(text)
	tokens := tokenSet(lower)

	var matches []Match
	for _, f := range m.store.Fields() {
		if score := m.score(lower, tokens, f); score > 0 {
			matches = append(matches, Match{Field: f, Score: score})
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Score > matches[j].Score
	})
	if topK >= 0 && len(matches) > topK {
		matches = matches[:topK]
	}
	return matches
}

// FindByKeywords joins keywords into one input and delegates to
// FindMatches.
func (m *Matcher) FindByKeywords(keywords []string, topK int) []Match {
	return m.FindMatches(strings.Join(keywords, " "), topK)
}

// Score computes the match score between the input text and one field.
func (m *Matcher) Score(text string, f domain.FieldRecord) float64 {
	lower := strings.ToLower(text)
	return m.score(lower, tokenSet(lower), f)
}

func (m *Matcher) score(lower string, tokens map[string]bool, f domain.FieldRecord) float64 {
	var score float64

	name := strings.ToLower(f.FieldName)
	if name != "" && strings.Contains(lower, name) {
		score += m.weights.NameExact
	}
	for tok := range tokens {
		if containsToken(name, tok) {
			score += m.weights.NameToken
		}
	}

	if issue := strings.ToLower(f.Issue); issue != "" && strings.Contains(lower, issue) {
		score += m.weights.IssueSubstring
	}
	if sub := strings.ToLower(f.SubIssue); sub != "" && strings.Contains(lower, sub) {
		score += m.weights.SubIssueSubstring
	}
	if pillar := strings.ToLower(f.Pillar); pillar != "" && strings.Contains(lower, pillar) {
		score += m.weights.PillarSubstring
	}

	score += m.keywordBoosts(lower, name)
	return score
}

// keywordBoosts applies the fixed domain keyword table plus the tiered
// carbon disambiguation. CO and CO2 are deliberately exclusive: an
// explicit "carbon monoxide" mention must never boost a CO2 field.
func (m *Matcher) keywordBoosts(lower, name string) float64 {
	var boost float64

	for _, tb := range topicBoosts {
		if containsAny(lower, tb.triggers) && containsAny(name, tb.names) {
			boost += m.weights.TopicBoost
		}
	}

	switch {
	case strings.Contains(lower, "carbon dioxide") || strings.Contains(lower, "co2"):
		if strings.Contains(name, "carbon dioxide") || strings.Contains(name, "co2") {
			boost += m.weights.GasBoost
		}
	case strings.Contains(lower, "carbon monoxide") || strings.Contains(lower, " co "):
		if strings.Contains(name, "carbon monoxide") {
			boost += m.weights.GasBoost
		}
	case strings.Contains(lower, "carbon") && strings.Contains(lower, "emissions"):
		// Generic carbon talk prefers GHG/scope metrics over plain CO2.
		if containsAny(name, ghgNames) {
			boost += m.weights.GasBoost
		} else if strings.Contains(name, "carbon dioxide") {
			boost += m.weights.GenericCarbon
		}
	}

	if containsAny(lower, ghgTriggers) && containsAny(name, ghgNames) {
		boost += m.weights.GasBoost
	}

	return boost
}

// FieldContext renders a "Pillar > Issue > Sub-Issue > Field (id)"
// breadcrumb for a field, omitting absent levels. Unknown IDs yield a
// not-found message rather than an error.
func (m *Matcher) FieldContext(fieldID string) string {
	f, ok := m.store.Get(fieldID)
	if !ok {
		return fmt.Sprintf("Field %s not found", fieldID)
	}

	var parts []string
	if f.Pillar != "" {
		parts = append(parts, "Pillar: "+f.Pillar)
	}
	if f.Issue != "" {
		parts = append(parts, "Issue: "+f.Issue)
	}
	if f.SubIssue != "" {
		parts = append(parts, "Sub-Issue: "+f.SubIssue)
	}
	parts = append(parts, fmt.Sprintf("Field: %s (%s)", f.FieldName, f.FieldID))
	return strings.Join(parts, " > ")
}

func tokenSet(lower string) map[string]bool {
	set := make(map[string]bool)
	for _, tok := range strings.Fields(lower) {
		set[tok] = true
	}
	return set
}

// containsToken reports whether name contains tok as a whitespace-
// delimited token.
func containsToken(name, tok string) bool {
	for _, w := range strings.Fields(name) {
		if w == tok {
			return true
		}
	}
	return false
}

func containsAny(s string, subs []string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
