package router

import (
	"esgcompass/internal/domain"
	"esgcompass/internal/matcher"
)

// TurnResult is the per-turn analysis handed back to the dialogue
// driver: what the matcher captured and whether the conversation
// should leave the current node.
type TurnResult struct {
	TurnCount       int
	ExplicitMoveOn  bool
	IsLooping       bool
	Matches         []matcher.Match
	MatchedFieldIDs []string
	ShouldMoveOn    bool
}

// Decision is the outcome of routing one turn.
type Decision struct {
	// Moved reports whether the cursor advanced this turn.
	Moved bool
	// Complete reports whether the session finished the agenda.
	Complete bool
	// Node is the node to talk about next; zero when Complete.
	Node domain.AgendaNode
}

// Router advances a session through its agenda one user turn at a
// time. It owns the capture policy (what the matcher must score for a
// field to enter the priority tracker) and the navigation policy
// (when to stay, advance, or skip ahead). The wording of the next
// message is the dialogue driver's problem, not the router's.
type Router struct {
	cfg     Config
	matcher *matcher.Matcher
}

// New creates a router with default thresholds.
func New(m *matcher.Matcher) *Router {
	return NewWithConfig(m, DefaultConfig())
}

// NewWithConfig creates a router with custom thresholds.
func NewWithConfig(m *matcher.Matcher, cfg Config) *Router {
	return &Router{cfg: cfg, matcher: m}
}

// ProcessTurn analyzes one utterance against the session's current
// node. Qualifying matches are captured into the session's priority
// tracker as a side effect on every turn, move-on or not. Calling on
// a complete session returns a zero result.
func (r *Router) ProcessTurn(s *Session, utterance string) TurnResult {
	node, ok := s.Current()
	if !ok {
		return TurnResult{}
	}

	turnCount := s.incrementTurn(node.ID)
	explicitMoveOn := ContainsMoveOnPhrase(utterance)
	isLooping := turnCount >= r.cfg.MaxTurnsPerNode

	matches := r.matcher.FindMatches(utterance, r.cfg.TopK)
	captured := r.capture(s, matches, utterance)

	if explicitMoveOn {
		s.MarkDiscussed(node.ID)
	}

	return TurnResult{
		TurnCount:       turnCount,
		ExplicitMoveOn:  explicitMoveOn,
		IsLooping:       isLooping,
		Matches:         matches,
		MatchedFieldIDs: captured,
		ShouldMoveOn:    explicitMoveOn || isLooping,
	}
}

// capture upserts the strongest matches into the tracker. Nothing is
// written unless the top match clears the capture threshold; after
// that, each of the top few matches qualifies on its own score.
func (r *Router) capture(s *Session, matches []matcher.Match, utterance string) []string {
	if len(matches) == 0 || matches[0].Score < r.cfg.CaptureThreshold {
		return nil
	}

	var captured []string
	for i, m := range matches {
		if i >= r.cfg.CaptureLimit {
			break
		}
		if m.Score < r.cfg.CaptureThreshold {
			continue
		}
		importance := domain.ImportanceMedium
		if m.Score > r.cfg.HighThreshold {
			importance = domain.ImportanceHigh
		}
		s.Priorities.Add(m.Field.FieldID, importance, utterance, utterance)
		captured = append(captured, m.Field.FieldID)
	}
	return captured
}

// Route applies the turn result plus the classifier's suggested action
// and moves the session cursor. Mentioned issue names accumulate on
// the session before navigation so a move-on from a pillar intro can
// jump straight to an issue the user just named.
func (r *Router) Route(s *Session, res TurnResult, action domain.SuggestedAction, mentionedIssues []string) Decision {
	if s.Complete() {
		return Decision{Complete: true}
	}
	node, _ := s.Current()

	for _, name := range mentionedIssues {
		s.NoteMentionedIssue(name)
	}

	target := s.index
	switch {
	case res.ShouldMoveOn:
		target = r.forwardTarget(s, node)
	case action == domain.ActionSkipPillar:
		target = r.nextPillarIndex(s, node)
	case action == domain.ActionNextIssue:
		target = r.forwardTarget(s, node)
	}

	if target <= s.index {
		return Decision{Node: node}
	}
	s.advanceTo(target)

	next, ok := s.Current()
	return Decision{Moved: true, Complete: !ok, Node: next}
}

// forwardTarget picks where leaving the current node lands. From a
// pillar intro, that is the first issue node under the pillar the
// user actually mentioned; with no mentioned issue the whole pillar
// is skipped. From an issue node, it is simply the next node.
func (r *Router) forwardTarget(s *Session, node domain.AgendaNode) int {
	if node.Kind != domain.NodePillarIntro {
		return s.index + 1
	}
	for i := s.index + 1; i < len(s.agenda); i++ {
		candidate := s.agenda[i]
		if candidate.Pillar != node.Pillar {
			break
		}
		if candidate.Kind == domain.NodeIssue && s.MentionedIssue(candidate.Name) {
			return i
		}
	}
	return r.nextPillarIndex(s, node)
}

// nextPillarIndex returns the index of the next pillar's first node,
// or one past the agenda end when this is the last pillar.
func (r *Router) nextPillarIndex(s *Session, node domain.AgendaNode) int {
	for i := s.index + 1; i < len(s.agenda); i++ {
		if s.agenda[i].Pillar != node.Pillar {
			return i
		}
	}
	return len(s.agenda)
}
