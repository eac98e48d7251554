package taxonomy

import (
	"sort"

	"esgcompass/internal/domain"
)

// canonicalPillars is the fixed ESG presentation order. Pillars outside
// this set exist in the store but are dropped from navigation; this is
// a deliberate scope limit, not data validation.
var canonicalPillars = []string{"Environmental", "Social", "Governance"}

// SubIssueNode owns the fields directly beneath one sub-issue.
type SubIssueNode struct {
	Name   string
	Fields []domain.FieldRecord
}

// IssueNode groups the sub-issues under one issue. Sub-issues are kept
// in discovery order; an unnamed bucket collects fields whose record
// has no sub-issue so they still appear in issue-level unions.
type IssueNode struct {
	Name      string
	SubIssues []*SubIssueNode
	bySub     map[string]*SubIssueNode
}

// PillarNode groups the issues under one pillar.
type PillarNode struct {
	Name    string
	Issues  []*IssueNode
	byIssue map[string]*IssueNode
}

// Hierarchy is the navigable Pillar > Issue > Sub-Issue > Field tree
// derived from a store. Records missing a pillar or issue stay in the
// store but are absent here.
type Hierarchy struct {
	byPillar map[string]*PillarNode

	fieldCount    int
	subIssueCount int
	issueCount    int
}

// Summary holds hierarchy-level counts for diagnostics.
type Summary struct {
	PillarCount   int
	IssueCount    int
	SubIssueCount int
	FieldCount    int
}

// NewHierarchy builds the tree from a store's record sequence.
func NewHierarchy(store *Store) *Hierarchy {
	h := &Hierarchy{byPillar: make(map[string]*PillarNode)}

	for _, f := range store.Fields() {
		if f.Pillar == "" || f.Issue == "" {
			continue
		}

		pillar := h.byPillar[f.Pillar]
		if pillar == nil {
			pillar = &PillarNode{Name: f.Pillar, byIssue: make(map[string]*IssueNode)}
			h.byPillar[f.Pillar] = pillar
		}

		issue := pillar.byIssue[f.Issue]
		if issue == nil {
			issue = &IssueNode{Name: f.Issue, bySub: make(map[string]*SubIssueNode)}
			pillar.byIssue[f.Issue] = issue
			pillar.Issues = append(pillar.Issues, issue)
			h.issueCount++
		}

		sub := issue.bySub[f.SubIssue]
		if sub == nil {
			sub = &SubIssueNode{Name: f.SubIssue}
			issue.bySub[f.SubIssue] = sub
			issue.SubIssues = append(issue.SubIssues, sub)
			if f.SubIssue != "" {
				h.subIssueCount++
			}
		}

		sub.Fields = append(sub.Fields, f)
		h.fieldCount++
	}

	return h
}

// Pillars returns the pillars present in the data, in canonical ESG
// order. Pillars absent from the data are omitted.
func (h *Hierarchy) Pillars() []string {
	var out []string
	for _, p := range canonicalPillars {
		if _, ok := h.byPillar[p]; ok {
			out = append(out, p)
		}
	}
	return out
}

// Issues returns the issue names under a pillar, sorted alphabetically.
func (h *Hierarchy) Issues(pillar string) []string {
	node := h.byPillar[pillar]
	if node == nil {
		return nil
	}
	names := make([]string, 0, len(node.Issues))
	for _, issue := range node.Issues {
		names = append(names, issue.Name)
	}
	sort.Strings(names)
	return names
}

// SubIssues returns the non-empty sub-issue names under an issue,
// sorted alphabetically.
func (h *Hierarchy) SubIssues(pillar, issue string) []string {
	node := h.issueNode(pillar, issue)
	if node == nil {
		return nil
	}
	var names []string
	for _, sub := range node.SubIssues {
		if sub.Name != "" {
			names = append(names, sub.Name)
		}
	}
	sort.Strings(names)
	return names
}

// Fields returns the records under a (pillar, issue, subIssue) path.
// With an empty subIssue it returns the union across all sub-issues of
// the issue, sub-issue then insertion ordered.
func (h *Hierarchy) Fields(pillar, issue, subIssue string) []domain.FieldRecord {
	node := h.issueNode(pillar, issue)
	if node == nil {
		return nil
	}
	if subIssue != "" {
		sub := node.bySub[subIssue]
		if sub == nil {
			return nil
		}
		return sub.Fields
	}
	var out []domain.FieldRecord
	for _, sub := range node.SubIssues {
		out = append(out, sub.Fields...)
	}
	return out
}

// Summary returns tree-level counts.
func (h *Hierarchy) Summary() Summary {
	return Summary{
		PillarCount:   len(h.byPillar),
		IssueCount:    h.issueCount,
		SubIssueCount: h.subIssueCount,
		FieldCount:    h.fieldCount,
	}
}

// BuildAgenda synthesizes the conversation walk: for each canonical
// pillar present, one intro node followed by one node per issue in
// Issues() order. Navigation only ever moves forward through this
// sequence; it is never restructured mid-session.
func (h *Hierarchy) BuildAgenda() []domain.AgendaNode {
	var agenda []domain.AgendaNode
	for _, pillar := range h.Pillars() {
		agenda = append(agenda, domain.PillarIntroNode(pillar))
		for _, issue := range h.Issues(pillar) {
			agenda = append(agenda, domain.IssueAgendaNode(pillar, issue))
		}
	}
	return agenda
}

func (h *Hierarchy) issueNode(pillar, issue string) *IssueNode {
	p := h.byPillar[pillar]
	if p == nil {
		return nil
	}
	return p.byIssue[issue]
}
