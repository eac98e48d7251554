package domain

import "strings"

// FieldRecord is a single reportable ESG metric from the taxonomy.
// Records are immutable once loaded; the store and hierarchy never
// mutate them.
type FieldRecord struct {
	FieldID           string `json:"field_id"`
	FieldName         string `json:"field_name"`
	FieldType         string `json:"field_type,omitempty"`
	Pillar            string `json:"pillar"`
	Issue             string `json:"issue"`
	SubIssue          string `json:"sub_issue"`
	UnderlyingFieldID string `json:"underlying_field_id,omitempty"`
	SourceFile        string `json:"source_file,omitempty"`

	// SearchText is the precomputed lowercase concatenation of
	// name/issue/sub-issue/pillar used for substring search.
	SearchText string `json:"search_text"`
}

// BuildSearchText computes the lowercase search blob for a record.
// Loaders call this when the source data does not carry one.
func BuildSearchText(f FieldRecord) string {
	return strings.ToLower(f.FieldName + " " + f.Issue + " " + f.SubIssue + " " + f.Pillar)
}
