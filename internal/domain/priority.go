package domain

// PriorityEntry records why a field matters to the user. Entries are
// keyed by field ID inside the tracker; the latest write for an ID wins.
type PriorityEntry struct {
	Importance ImportanceTier `json:"importance"`
	Notes      string         `json:"notes"`
	AddedFrom  string         `json:"added_from"`
}
