package advisor

import (
	"strings"

	"esgcompass/internal/domain"
)

// Keyword tables for the deterministic interest reading. The LLM does
// a better job when available; these keep the conversation moving when
// it is not.
var (
	highInterestKeywords = []string{
		"very important", "top priority", "care a lot", "really matters",
		"essential", "critical", "key concern", "extremely",
	}
	lowInterestKeywords = []string{
		"not important", "don't care", "dont care", "not a priority",
		"doesn't matter", "doesnt matter", "not concerned", "low priority", "skip",
	}
	uncertainKeywords = []string{
		"don't know", "dont know", "not sure", "uncertain",
		"haven't thought", "havent thought", "unfamiliar", "what is", "explain",
	}
)

// InterpretInterest estimates the user's interest level from keyword
// cues alone. Defaults to medium when nothing matches.
func InterpretInterest(message string) domain.InterestLevel {
	lower := strings.ToLower(message)

	for _, kw := range highInterestKeywords {
		if strings.Contains(lower, kw) {
			return domain.InterestHigh
		}
	}
	for _, kw := range lowInterestKeywords {
		if strings.Contains(lower, kw) {
			return domain.InterestLow
		}
	}
	for _, kw := range uncertainKeywords {
		if strings.Contains(lower, kw) {
			return domain.InterestUncertain
		}
	}
	return domain.InterestMedium
}

func normalizeIssueName(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// DetectMentionedIssues returns the issue names (from the given list)
// that appear verbatim, case-insensitively, in the message.
func DetectMentionedIssues(message string, issues []string) []string {
	lower := strings.ToLower(message)
	var mentioned []string
	for _, issue := range issues {
		if issue != "" && strings.Contains(lower, strings.ToLower(issue)) {
			mentioned = append(mentioned, issue)
		}
	}
	return mentioned
}

// heuristicClassification builds a full classification without a model:
// keyword interest, lexical issue detection, and a routing action that
// leaves low-interest topics promptly.
func heuristicClassification(message string, pillarIssues []string) Classification {
	interest := InterpretInterest(message)

	action := domain.ActionContinue
	if interest == domain.InterestLow {
		action = domain.ActionNextIssue
	}

	return Classification{
		Interest:        interest,
		Action:          action,
		MentionedIssues: DetectMentionedIssues(message, pillarIssues),
		Confidence:      0.5,
		Source:          "heuristic",
	}
}
