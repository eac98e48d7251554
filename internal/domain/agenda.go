package domain

import "strings"

// AgendaNode is one stop on the fixed conversation walk: either a broad
// pillar introduction or a single issue under that pillar.
type AgendaNode struct {
	ID          string
	Name        string
	Pillar      string
	Description string
	Kind        AgendaKind
}

// Slug derives a stable identifier fragment from a display name:
// lowercase, whitespace runs to single underscores, "&" spelled out.
func Slug(name string) string {
	s := strings.ToLower(name)
	s = strings.ReplaceAll(s, "&", "and")
	return strings.Join(strings.Fields(s), "_")
}

// PillarIntroNode builds the intro agenda node for a pillar.
func PillarIntroNode(pillar string) AgendaNode {
	return AgendaNode{
		ID:          Slug(pillar) + "_intro",
		Name:        pillar,
		Pillar:      pillar,
		Description: pillar + " topics in general",
		Kind:        NodePillarIntro,
	}
}

// IssueAgendaNode builds the agenda node for an issue under a pillar.
func IssueAgendaNode(pillar, issue string) AgendaNode {
	return AgendaNode{
		ID:          Slug(pillar) + "_" + Slug(issue),
		Name:        issue,
		Pillar:      pillar,
		Description: issue + " within " + pillar,
		Kind:        NodeIssue,
	}
}
