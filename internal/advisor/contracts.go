package advisor

import (
	"strings"

	"esgcompass/internal/domain"
)

// Classification is the per-turn signal the advisor extracts from a
// user utterance: how interested the user sounds, what the router
// should do next, and which issues of the current pillar the text
// referenced by name.
type Classification struct {
	Interest        domain.InterestLevel   `json:"interest_level"`
	Action          domain.SuggestedAction `json:"suggested_action"`
	MentionedIssues []string               `json:"mentioned_issues"`
	Confidence      float64                `json:"confidence"`
	Source          string                 `json:"source"` // "llm" or "heuristic"
}

// classifyLLMResponse is the JSON structure expected from the model.
type classifyLLMResponse struct {
	InterestLevel   string   `json:"interest_level"`
	SuggestedAction string   `json:"suggested_action"`
	MentionedIssues []string `json:"mentioned_issues"`
	Confidence      float64  `json:"confidence"`
}

// normalize maps the model's loosely-cased output onto the closed enum
// sets, substituting defaults for anything unrecognized. Classification
// never fails outright: a garbled model answer degrades to
// medium/CONTINUE rather than aborting the turn.
func (r classifyLLMResponse) normalize() Classification {
	c := Classification{
		Interest:   domain.InterestMedium,
		Action:     domain.ActionContinue,
		Confidence: r.Confidence,
		Source:     "llm",
	}

	if level := domain.InterestLevel(strings.ToLower(strings.TrimSpace(r.InterestLevel))); domain.ValidInterestLevels[level] {
		c.Interest = level
	}
	if action := domain.SuggestedAction(strings.ToUpper(strings.TrimSpace(r.SuggestedAction))); domain.ValidSuggestedActions[action] {
		c.Action = action
	}
	for _, issue := range r.MentionedIssues {
		if issue = strings.TrimSpace(issue); issue != "" {
			c.MentionedIssues = append(c.MentionedIssues, issue)
		}
	}
	return c
}
