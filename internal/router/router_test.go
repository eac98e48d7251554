package router

import (
	"fmt"
	"testing"

	"esgcompass/internal/domain"
	"esgcompass/internal/matcher"
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

// Agenda layout: [0] environmental intro, [1] Climate Exposure,
// [2] Water Management, [3] social intro, [4] Diversity & Inclusion.
func testAgenda(t *testing.T) []domain.AgendaNode {
	t.Helper()
	agenda := taxonomy.NewHierarchy(testStore()).BuildAgenda()
	require.Len(t, agenda, 5)
	return agenda
}

func newTestRouter() *Router {
	return New(matcher.New(testStore()))
}

func TestProcessTurn_LoopFailsafe(t *testing.T) {
	r := newTestRouter()
	s := NewSession(testAgenda(t))

	for turn := 1; turn <= 6; turn++ {
		res := r.ProcessTurn(s, "hmm, not sure what to say")
		assert.Equal(t, turn, res.TurnCount)
		assert.False(t, res.ExplicitMoveOn)
		if turn < 5 {
			assert.False(t, res.IsLooping, "turn %d", turn)
			assert.False(t, res.ShouldMoveOn, "turn %d", turn)
		} else {
			assert.True(t, res.IsLooping, "turn %d", turn)
			assert.True(t, res.ShouldMoveOn, "turn %d", turn)
		}
	}
}

func TestProcessTurn_ExplicitMoveOnFirstTurn(t *testing.T) {
	r := newTestRouter()
	s := NewSession(testAgenda(t))
	node, _ := s.Current()

	res := r.ProcessTurn(s, "OK, LET'S MOVE ON to something else")
	assert.Equal(t, 1, res.TurnCount)
	assert.True(t, res.ExplicitMoveOn)
	assert.True(t, res.ShouldMoveOn)
	assert.True(t, s.Discussed(node.ID))
}

func TestProcessTurn_CapturesHighAndMedium(t *testing.T) {
	r := newTestRouter()
	s := NewSession(testAgenda(t))

	res := r.ProcessTurn(s, "water quality is what we measure")
	require.Contains(t, res.MatchedFieldIDs, "EN101")
	entry, ok := s.Priorities.Get("EN101")
	require.True(t, ok)
	assert.Equal(t, domain.ImportanceHigh, entry.Importance)
	assert.Equal(t, "water quality is what we measure", entry.Notes)
	assert.Equal(t, "water quality is what we measure", entry.AddedFrom)

	// Keyword boost alone scores exactly at the capture threshold,
	// below the high cutoff.
	s2 := NewSession(testAgenda(t))
	res = r.ProcessTurn(s2, "freshwater contamination worries me")
	require.Contains(t, res.MatchedFieldIDs, "EN101")
	entry, _ = s2.Priorities.Get("EN101")
	assert.Equal(t, domain.ImportanceMedium, entry.Importance)
}

func TestProcessTurn_NoCaptureBelowThreshold(t *testing.T) {
	r := newTestRouter()
	s := NewSession(testAgenda(t))

	res := r.ProcessTurn(s, "hello there, nice day")
	assert.Empty(t, res.MatchedFieldIDs)
	assert.Equal(t, 0, s.Priorities.Len())
}

func TestRoute_ContinueStays(t *testing.T) {
	r := newTestRouter()
	s := NewSession(testAgenda(t))

	res := r.ProcessTurn(s, "tell me more about this area")
	dec := r.Route(s, res, domain.ActionContinue, nil)
	assert.False(t, dec.Moved)
	assert.Equal(t, 0, s.Index())
}

func TestRoute_IntroMoveOnJumpsToMentionedIssue(t *testing.T) {
	agenda := testAgenda(t)
	r := newTestRouter()
	s := NewSession(agenda)

	res := r.ProcessTurn(s, "water is the big one for us, let's move on")
	dec := r.Route(s, res, domain.ActionContinue, []string{"Water Management"})
	require.True(t, dec.Moved)
	assert.Equal(t, agenda[2], dec.Node)
	assert.Equal(t, 2, s.Index())
}

func TestRoute_IntroMoveOnWithoutMentionsSkipsPillar(t *testing.T) {
	agenda := testAgenda(t)
	r := newTestRouter()
	s := NewSession(agenda)

	res := r.ProcessTurn(s, "nothing else on this")
	dec := r.Route(s, res, domain.ActionContinue, nil)
	require.True(t, dec.Moved)
	assert.Equal(t, agenda[3], dec.Node, "lands on the next pillar intro")
}

func TestRoute_NextIssueAdvancesSequentially(t *testing.T) {
	agenda := testAgenda(t)
	r := newTestRouter()
	s := NewSession(agenda)
	s.advanceTo(1) // Climate Exposure

	res := r.ProcessTurn(s, "carbon is covered elsewhere")
	dec := r.Route(s, res, domain.ActionNextIssue, nil)
	require.True(t, dec.Moved)
	assert.Equal(t, agenda[2], dec.Node)
}

func TestRoute_SkipPillarClearsMentionedIssues(t *testing.T) {
	agenda := testAgenda(t)
	r := newTestRouter()
	s := NewSession(agenda)
	s.NoteMentionedIssue("Water Management")

	res := r.ProcessTurn(s, "environmental topics are not material for us")
	dec := r.Route(s, res, domain.ActionSkipPillar, nil)
	require.True(t, dec.Moved)
	assert.Equal(t, agenda[3], dec.Node)
	assert.False(t, s.MentionedIssue("Water Management"))
}

func TestRoute_IndexNeverDecreases(t *testing.T) {
	r := newTestRouter()
	s := NewSession(testAgenda(t))

	actions := []domain.SuggestedAction{
		domain.ActionContinue,
		domain.ActionNextIssue,
		domain.ActionContinue,
		domain.ActionSkipPillar,
		domain.ActionNextIssue,
		domain.ActionNextIssue,
		domain.ActionSkipPillar,
	}
	prev := s.Index()
	for i, action := range actions {
		res := r.ProcessTurn(s, fmt.Sprintf("turn %d", i))
		r.Route(s, res, action, nil)
		assert.GreaterOrEqual(t, s.Index(), prev)
		prev = s.Index()
	}
}

func TestRoute_CompleteIsTerminal(t *testing.T) {
	agenda := testAgenda(t)
	r := newTestRouter()
	s := NewSession(agenda)
	s.advanceTo(4) // last node

	res := r.ProcessTurn(s, "that's all from me")
	dec := r.Route(s, res, domain.ActionContinue, nil)
	assert.True(t, dec.Moved)
	assert.True(t, dec.Complete)
	assert.True(t, s.Complete())

	// Further calls are inert.
	assert.Equal(t, TurnResult{}, r.ProcessTurn(s, "anything"))
	dec = r.Route(s, TurnResult{ShouldMoveOn: true}, domain.ActionSkipPillar, nil)
	assert.True(t, dec.Complete)
	assert.False(t, dec.Moved)
}

func TestSession_Progress(t *testing.T) {
	s := NewSession(testAgenda(t))
	assert.Equal(t, Progress{Current: 1, Total: 5, Percentage: 0}, s.Progress())

	s.advanceTo(3)
	assert.Equal(t, Progress{Current: 4, Total: 5, Percentage: 60}, s.Progress())

	s.advanceTo(5)
	assert.Equal(t, Progress{Current: 5, Total: 5, Percentage: 100}, s.Progress())
}

func TestSession_OfferDeepDiveOnce(t *testing.T) {
	s := NewSession(testAgenda(t))
	assert.True(t, s.OfferDeepDive("environmental_water_management"))
	assert.False(t, s.OfferDeepDive("environmental_water_management"))
}

func TestFiveTurnsOnOneIssueForcesMoveOn(t *testing.T) {
	agenda := testAgenda(t)
	r := newTestRouter()
	s := NewSession(agenda)
	s.advanceTo(2) // Water Management issue node

	var res TurnResult
	for turn := 1; turn <= 5; turn++ {
		res = r.ProcessTurn(s, "we monitor discharge upstream and downstream")
		if turn < 5 {
			require.False(t, res.ShouldMoveOn, "turn %d", turn)
			r.Route(s, res, domain.ActionContinue, nil)
			require.Equal(t, 2, s.Index())
		}
	}

	assert.True(t, res.IsLooping)
	assert.True(t, res.ShouldMoveOn)
	dec := r.Route(s, res, domain.ActionContinue, nil)
	assert.True(t, dec.Moved)
	assert.Equal(t, agenda[3], dec.Node, "issue node advances sequentially")
}
