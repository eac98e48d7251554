package domain

type ImportanceTier string

const (
	ImportanceCritical ImportanceTier = "critical"
	ImportanceHigh     ImportanceTier = "high"
	ImportanceMedium   ImportanceTier = "medium"
	ImportanceLow      ImportanceTier = "low"
)

// Tiers lists all importance tiers from most to least important.
var Tiers = []ImportanceTier{ImportanceCritical, ImportanceHigh, ImportanceMedium, ImportanceLow}

// ValidImportanceTiers is the canonical set of accepted tier strings.
var ValidImportanceTiers = map[ImportanceTier]bool{
	ImportanceCritical: true, ImportanceHigh: true,
	ImportanceMedium: true, ImportanceLow: true,
}

type InterestLevel string

const (
	InterestHigh      InterestLevel = "high"
	InterestMedium    InterestLevel = "medium"
	InterestLow       InterestLevel = "low"
	InterestUncertain InterestLevel = "uncertain"
	InterestUnknown   InterestLevel = "unknown"
)

// ValidInterestLevels is the canonical set of accepted interest strings.
var ValidInterestLevels = map[InterestLevel]bool{
	InterestHigh: true, InterestMedium: true, InterestLow: true,
	InterestUncertain: true, InterestUnknown: true,
}

// SuggestedAction is the classifier's routing recommendation for a turn.
type SuggestedAction string

const (
	ActionContinue   SuggestedAction = "CONTINUE"
	ActionNextIssue  SuggestedAction = "NEXT_ISSUE"
	ActionSkipPillar SuggestedAction = "SKIP_PILLAR"
)

// ValidSuggestedActions is the canonical set of accepted action strings.
var ValidSuggestedActions = map[SuggestedAction]bool{
	ActionContinue: true, ActionNextIssue: true, ActionSkipPillar: true,
}

// AgendaKind distinguishes the two node types on the conversation agenda.
type AgendaKind string

const (
	NodePillarIntro AgendaKind = "pillar_intro"
	NodeIssue       AgendaKind = "issue"
)
