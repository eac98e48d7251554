package router

import (
	"strings"

	"esgcompass/internal/domain"
	"esgcompass/internal/tracker"

	"github.com/google/uuid"
)

// Session is the mutable state for one conversation: the agenda, the
// cursor into it, per-node turn counters, and the priority tracker the
// conversation feeds. The cursor only moves forward; once it passes
// the end of the agenda the session is complete and stays complete.
// Not safe for concurrent use.
type Session struct {
	ID         string
	Priorities *tracker.Tracker

	agenda          []domain.AgendaNode
	index           int
	turnCounts      map[string]int
	discussed       map[string]bool
	deepDiveOffered map[string]bool
	mentionedIssues map[string]bool
}

// Progress is a display-friendly readout of how far the conversation
// has advanced through the agenda.
type Progress struct {
	Current    int     `json:"current"`
	Total      int     `json:"total"`
	Percentage float64 `json:"percentage"`
}

// NewSession starts a session at the first agenda node with an empty
// priority tracker.
func NewSession(agenda []domain.AgendaNode) *Session {
	return &Session{
		ID:              uuid.NewString(),
		Priorities:      tracker.New(),
		agenda:          agenda,
		turnCounts:      make(map[string]int),
		discussed:       make(map[string]bool),
		deepDiveOffered: make(map[string]bool),
		mentionedIssues: make(map[string]bool),
	}
}

// Agenda returns the full agenda the session walks.
func (s *Session) Agenda() []domain.AgendaNode {
	return s.agenda
}

// Index returns the current cursor position.
func (s *Session) Index() int {
	return s.index
}

// Complete reports whether the cursor has passed the end of the agenda.
func (s *Session) Complete() bool {
	return s.index >= len(s.agenda)
}

// Current returns the node under the cursor, or false once complete.
func (s *Session) Current() (domain.AgendaNode, bool) {
	if s.Complete() {
		return domain.AgendaNode{}, false
	}
	return s.agenda[s.index], true
}

// TurnCount returns how many turns have been spent on a node.
func (s *Session) TurnCount(nodeID string) int {
	return s.turnCounts[nodeID]
}

func (s *Session) incrementTurn(nodeID string) int {
	s.turnCounts[nodeID]++
	return s.turnCounts[nodeID]
}

// MarkDiscussed records that the user explicitly closed out a node.
func (s *Session) MarkDiscussed(nodeID string) {
	s.discussed[nodeID] = true
}

// Discussed reports whether a node was explicitly closed out.
func (s *Session) Discussed(nodeID string) bool {
	return s.discussed[nodeID]
}

// OfferDeepDive returns true the first time it is called for a node
// and false afterwards, so the dialogue driver offers each deep-dive
// at most once.
func (s *Session) OfferDeepDive(nodeID string) bool {
	if s.deepDiveOffered[nodeID] {
		return false
	}
	s.deepDiveOffered[nodeID] = true
	return true
}

// NoteMentionedIssue records an issue name the user referenced while
// on the current pillar. The set resets on every pillar transition.
func (s *Session) NoteMentionedIssue(name string) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name != "" {
		s.mentionedIssues[name] = true
	}
}

// MentionedIssue reports whether an issue name was referenced on the
// current pillar.
func (s *Session) MentionedIssue(name string) bool {
	return s.mentionedIssues[strings.ToLower(strings.TrimSpace(name))]
}

// advanceTo moves the cursor forward to target. Backward or in-place
// targets are ignored; the cursor never decreases. Crossing into a
// different pillar (or off the end) resets the mentioned-issue set.
func (s *Session) advanceTo(target int) {
	if target <= s.index {
		return
	}
	var fromPillar string
	if node, ok := s.Current(); ok {
		fromPillar = node.Pillar
	}
	if target > len(s.agenda) {
		target = len(s.agenda)
	}
	s.index = target

	if node, ok := s.Current(); !ok || node.Pillar != fromPillar {
		s.mentionedIssues = make(map[string]bool)
	}
}

// Progress returns the display readout. Current is clamped to Total so
// a completed session shows N of N rather than N+1.
func (s *Session) Progress() Progress {
	total := len(s.agenda)
	if total == 0 {
		return Progress{Percentage: 100}
	}
	current := s.index + 1
	if current > total {
		current = total
	}
	done := s.index
	if done > total {
		done = total
	}
	return Progress{
		Current:    current,
		Total:      total,
		Percentage: float64(done) / float64(total) * 100,
	}
}
