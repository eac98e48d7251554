package advisor

import (
	"context"
	"fmt"
	"strings"

	"esgcompass/internal/domain"
	"esgcompass/internal/llm"
	"esgcompass/internal/router"
	"esgcompass/internal/taxonomy"
)

// TurnOutput is everything the chat surface needs to render one
// exchange: the advisor's reply to what the user said, plus the
// question for wherever the conversation lands next.
type TurnOutput struct {
	Result         router.TurnResult
	Classification Classification
	Decision       router.Decision
	Reply          string
	NextQuestion   string
	Completed      bool
}

// DiscoveryService drives a preference-discovery conversation. The
// router owns navigation and capture; this service owns wording. With
// a nil LLM client every reply comes from the scripted templates, so
// the conversation works fully offline.
type DiscoveryService struct {
	hierarchy  *taxonomy.Hierarchy
	router     *router.Router
	classifier Classifier
	client     llm.LLMClient
}

// NewDiscoveryService wires a conversation service. client may be nil.
func NewDiscoveryService(h *taxonomy.Hierarchy, r *router.Router, c Classifier, client llm.LLMClient) *DiscoveryService {
	return &DiscoveryService{
		hierarchy:  h,
		router:     r,
		classifier: c,
		client:     client,
	}
}

// StartSession creates a fresh session over the hierarchy's agenda.
func (s *DiscoveryService) StartSession() *router.Session {
	return router.NewSession(s.hierarchy.BuildAgenda())
}

// Opening returns the welcome message and the first question.
func (s *DiscoveryService) Opening(sess *router.Session) (welcome, question string) {
	welcome = WelcomeMessage
	if node, ok := sess.Current(); ok {
		question = NodeQuestion(node)
	}
	return welcome, question
}

// Turn processes one user utterance end to end: capture, classify,
// route, and word the reply. Never returns an error; model failures
// degrade to scripted output.
func (s *DiscoveryService) Turn(ctx context.Context, sess *router.Session, utterance string) TurnOutput {
	node, ok := sess.Current()
	if !ok {
		return TurnOutput{Completed: true, Reply: ClosingMessage}
	}

	res := s.router.ProcessTurn(sess, utterance)
	pillarIssues := s.hierarchy.Issues(node.Pillar)
	cls := s.classifier.Classify(ctx, node, utterance, pillarIssues)
	dec := s.router.Route(sess, res, cls.Action, cls.MentionedIssues)

	out := TurnOutput{
		Result:         res,
		Classification: cls,
		Decision:       dec,
		Reply:          s.reply(ctx, node, utterance, cls),
		Completed:      dec.Complete,
	}

	switch {
	case dec.Complete:
		// Caller renders the closing message and the report.
	case dec.Moved:
		out.NextQuestion = NodeQuestion(dec.Node)
	case cls.Interest == domain.InterestHigh && node.Kind == domain.NodeIssue && sess.OfferDeepDive(node.ID):
		out.NextQuestion = s.deepDiveQuestion(node)
	}
	return out
}

// reply words the acknowledgement of the user's answer. LLM when
// wired, scripted follow-up otherwise.
func (s *DiscoveryService) reply(ctx context.Context, node domain.AgendaNode, utterance string, cls Classification) string {
	if s.client == nil {
		return FollowUp(node.Name, cls.Interest)
	}
	resp, err := s.client.Generate(ctx, llm.GenerateRequest{
		Task:         llm.TaskDialogue,
		SystemPrompt: SystemPrompt,
		UserPrompt:   dialoguePrompt(node, utterance),
	})
	if err != nil || strings.TrimSpace(resp.Text) == "" {
		return FollowUp(node.Name, cls.Interest)
	}
	return strings.TrimSpace(resp.Text)
}

// deepDiveQuestion invites the user to pick among an issue's
// sub-topics. At most three are listed; the rest are summarized.
func (s *DiscoveryService) deepDiveQuestion(node domain.AgendaNode) string {
	subs := s.hierarchy.SubIssues(node.Pillar, node.Name)
	if len(subs) == 0 {
		return fmt.Sprintf("What specifically about %s matters most to you?", strings.ToLower(node.Name))
	}

	shown := subs
	var more string
	if len(subs) > 3 {
		shown = subs[:3]
		more = fmt.Sprintf("\n- ...and %d other aspects", len(subs)-3)
	}
	return fmt.Sprintf(`Since %s is important to you, let's explore which specific aspects matter most:

- %s%s

Which of these resonate most with you, or are there other aspects of %s you care about?`,
		strings.ToLower(node.Name), strings.Join(shown, "\n- "), more, strings.ToLower(node.Name))
}

// Narrative asks the model to narrate a finished report in plain
// language. Returns empty with no error when no model is wired.
func (s *DiscoveryService) Narrative(ctx context.Context, report Report) (string, error) {
	if s.client == nil {
		return "", nil
	}
	resp, err := s.client.Generate(ctx, llm.GenerateRequest{
		Task:         llm.TaskReport,
		SystemPrompt: SystemPrompt,
		UserPrompt:   summaryPrompt(report.Markdown()),
	})
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(resp.Text), nil
}
