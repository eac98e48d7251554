package advisor

import (
	"context"
	"fmt"

	"esgcompass/internal/domain"
	"esgcompass/internal/llm"
)

// Classifier extracts a per-turn Classification from a user utterance.
type Classifier interface {
	Classify(ctx context.Context, node domain.AgendaNode, utterance string, pillarIssues []string) Classification
}

// NewClassifier returns an LLM-backed classifier that degrades to the
// keyword heuristic on any model failure. A nil client means
// heuristic-only.
func NewClassifier(client llm.LLMClient, observer llm.Observer) Classifier {
	if observer == nil {
		observer = llm.NoopObserver{}
	}
	return &classifier{client: client, observer: observer}
}

type classifier struct {
	client   llm.LLMClient
	observer llm.Observer
}

func (c *classifier) Classify(ctx context.Context, node domain.AgendaNode, utterance string, pillarIssues []string) Classification {
	if c.client == nil {
		return heuristicClassification(utterance, pillarIssues)
	}

	resp, err := c.client.Generate(ctx, llm.GenerateRequest{
		Task:         llm.TaskClassify,
		SystemPrompt: SystemPrompt,
		UserPrompt:   classifyPrompt(node, utterance, pillarIssues),
	})
	if err != nil {
		return heuristicClassification(utterance, pillarIssues)
	}

	parsed, err := llm.ExtractJSON[classifyLLMResponse](resp.Text, validateClassifyResponse)
	if err != nil {
		return heuristicClassification(utterance, pillarIssues)
	}

	result := parsed.normalize()
	// The model sometimes invents issue names; keep only names the
	// router can navigate to, falling back to lexical detection.
	result.MentionedIssues = filterKnownIssues(result.MentionedIssues, pillarIssues)
	if len(result.MentionedIssues) == 0 {
		result.MentionedIssues = DetectMentionedIssues(utterance, pillarIssues)
	}
	return result
}

// validateClassifyResponse is a schema validator for ExtractJSON. It
// only rejects structurally impossible values; unknown enum strings
// are handled later by normalize, which substitutes defaults.
func validateClassifyResponse(r classifyLLMResponse) error {
	if r.Confidence < 0 || r.Confidence > 1 {
		return fmt.Errorf("confidence must be in [0,1], got %f", r.Confidence)
	}
	return nil
}

func filterKnownIssues(mentioned, known []string) []string {
	knownSet := make(map[string]string, len(known))
	for _, k := range known {
		knownSet[normalizeIssueName(k)] = k
	}
	var out []string
	for _, m := range mentioned {
		if canonical, ok := knownSet[normalizeIssueName(m)]; ok {
			out = append(out, canonical)
		}
	}
	return out
}
