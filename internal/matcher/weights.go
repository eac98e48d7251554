package matcher

// Weights holds the scoring constants for lexical matching. The
// defaults are tuned empirically; callers may override individual
// weights rather than patching literals in the scorer.
type Weights struct {
	NameExact         float64 // full display name appears in the input
	NameToken         float64 // per shared whitespace token with the name
	IssueSubstring    float64 // issue name appears in the input
	SubIssueSubstring float64 // sub-issue name appears in the input
	PillarSubstring   float64 // pillar name appears in the input
	TopicBoost        float64 // water/energy/waste/biodiversity keyword hits
	GasBoost          float64 // CO2/CO/GHG keyword hits
	GenericCarbon     float64 // "carbon ... emissions" against plain CO2 fields
}

// DefaultWeights returns the standard scoring constants.
func DefaultWeights() Weights {
	return Weights{
		NameExact:         10.0,
		NameToken:         3.0,
		IssueSubstring:    5.0,
		SubIssueSubstring: 4.0,
		PillarSubstring:   2.0,
		TopicBoost:        3.0,
		GasBoost:          5.0,
		GenericCarbon:     4.0,
	}
}

// topicBoost fires when the input mentions any trigger keyword AND the
// field's display name contains any of the name keywords.
type topicBoost struct {
	triggers []string
	names    []string
}

var topicBoosts = []topicBoost{
	{
		triggers: []string{"water", "freshwater", "wastewater", "contamination", "pollution"},
		names:    []string{"water"},
	},
	{
		triggers: []string{"energy", "renewable", "electricity", "fuel"},
		names:    []string{"energy", "electricity"},
	},
	{
		triggers: []string{"waste", "recycling", "landfill", "hazardous"},
		names:    []string{"waste"},
	},
	{
		triggers: []string{"biodiversity", "nature", "ecosystem", "habitat", "species"},
		names:    []string{"biodiversity", "natural capital"},
	},
}

// ghgNames are field-name markers for greenhouse-gas metrics, shared by
// the GHG keyword boost and the generic-carbon disambiguation tier.
var ghgNames = []string{"ghg", "greenhouse", "scope 1", "scope 2", "scope 3"}

var ghgTriggers = []string{"ghg", "greenhouse gas", "greenhouse"}
