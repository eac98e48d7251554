package advisor

import (
	"fmt"
	"strings"

	"esgcompass/internal/domain"
)

// SystemPrompt frames every dialogue call. The advisor elicits the
// user's values; it never advocates for particular ESG priorities.
const SystemPrompt = `You are an ESG (Environmental, Social, Governance) investment preference advisor. Your role is to help users articulate their values and priorities for sustainable investing through natural, friendly conversation.

Key guidelines:
- Be warm, conversational, and non-judgmental about user preferences
- Ask clear, jargon-free questions (explain technical terms briefly when needed)
- Provide brief context when needed (1-2 sentence explanations)
- Recognize when users are uncertain vs. indifferent - these are different
- Adapt conversation depth based on their interest level
- Keep responses concise (2-4 sentences typically)
- Never assume what they should care about - let them guide priorities

Remember: There are no "right" answers. Your job is to understand THEIR values, not to advocate for specific ESG priorities.`

// WelcomeMessage opens a discovery session.
const WelcomeMessage = `Welcome! I'm here to help you discover and articulate your ESG investment preferences.

What to expect:
- We'll have a short conversation about your values
- I'll ask about different aspects of sustainable investing (Environmental, Social, Governance)
- We'll spend more time on topics you care about, and skip what doesn't matter to you
- There are no right or wrong answers - this is about YOUR priorities

At the end, you'll get a clear summary of your ESG preferences you can share with your financial advisor.

Ready to get started?`

// ClosingMessage ends a completed session before the report prints.
const ClosingMessage = `Thank you for sharing your preferences!

Your personalized ESG preference profile follows. It includes your top priorities, areas of lower interest, and specific insights from our conversation. You can save it and share it with your financial advisor.`

// NodeQuestion renders the canned question for an agenda node, used
// both as the scripted fallback and as grounding for the dialogue
// prompt when a model is wired in.
func NodeQuestion(node domain.AgendaNode) string {
	if node.Kind == domain.NodePillarIntro {
		return fmt.Sprintf(`Let's talk about %s topics.

%s

What concerns you most in this area, if anything? Feel free to name specific topics, or say "let's move on" to skip ahead.`, node.Name, node.Description)
	}
	return fmt.Sprintf(`Since we're on %s: on a scale from low to high, how important is %s in your investment decisions?`,
		node.Pillar, strings.ToLower(node.Name))
}

// FollowUp acknowledges the user's answer according to interest level,
// mirroring the scripted replies used when no model is available.
func FollowUp(topic string, interest domain.InterestLevel) string {
	lower := strings.ToLower(topic)
	switch interest {
	case domain.InterestHigh:
		return fmt.Sprintf("I can tell %s really matters to you. Let's dive deeper into the specific aspects that are most important.", lower)
	case domain.InterestLow:
		return fmt.Sprintf("I understand %s isn't a top priority for you. That's totally fine - let's move on to other topics.", lower)
	case domain.InterestUncertain:
		return fmt.Sprintf("No worries if you're not sure about %s yet. Would you like a brief explanation, or should we skip to topics you're more familiar with?", lower)
	default:
		return fmt.Sprintf("Thanks for sharing. Can you tell me a bit more about which aspects of %s matter most to you?", lower)
	}
}

// dialoguePrompt asks the model to respond in character to the user's
// latest answer while steering toward the current agenda node.
func dialoguePrompt(node domain.AgendaNode, utterance string) string {
	return fmt.Sprintf(`The conversation is currently about %q (%s pillar). The user just said:

%q

Respond appropriately:
- If HIGH interest (they clearly care a lot): acknowledge their interest and say you'll explore it in more depth
- If MEDIUM interest (they care but not top priority): acknowledge and ask 1-2 brief clarifying questions
- If LOW interest (they don't care much): acknowledge respectfully and say you'll move on
- If UNCERTAIN (they don't know): offer a brief explanation and ask if they want to learn more or skip

Keep your response natural and conversational, 2-4 sentences.`, node.Name, node.Pillar, utterance)
}

// classifyPrompt asks the model for a structured reading of the turn.
// The issue list is scoped to the current pillar so mentioned-issue
// detection can only name topics the router can actually jump to.
func classifyPrompt(node domain.AgendaNode, utterance string, pillarIssues []string) string {
	var issues string
	if len(pillarIssues) > 0 {
		issues = "- " + strings.Join(pillarIssues, "\n- ")
	} else {
		issues = "(none)"
	}
	return fmt.Sprintf(`Classify this user message from an ESG preference conversation.

Current topic: %q (%s pillar)
User message: %q

Issues under the current pillar:
%s

Respond with ONLY a JSON object, no other text:
{
  "interest_level": "high" | "medium" | "low" | "uncertain",
  "suggested_action": "CONTINUE" | "NEXT_ISSUE" | "SKIP_PILLAR",
  "mentioned_issues": [issue names from the list above that the message refers to],
  "confidence": 0.0-1.0
}

Use SKIP_PILLAR only when the user dismisses the whole pillar, NEXT_ISSUE when they are done with the current topic but not the pillar, CONTINUE otherwise.`,
		node.Name, node.Pillar, utterance, issues)
}

// summaryPrompt asks the model to narrate the captured priorities.
func summaryPrompt(rendered string) string {
	return fmt.Sprintf(`Based on this conversation, create a clear summary of the user's ESG investment preferences.

Their captured priorities:
%s

Create a concise summary that:
1. Lists their top 2-3 priorities (what they care most about)
2. Notes any areas of lower priority
3. Mentions any areas of uncertainty
4. Uses clear, non-technical language

Keep it to 3-4 sentences total.`, rendered)
}
