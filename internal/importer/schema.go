package importer

// Column layout of the vendor ESG score-field CSV exports. The exports
// open with nine rows of explanatory preamble, then one header row,
// then data. Column 0 is blank in every export; the metadata lives in
// columns 1 through 7.
const (
	preambleRows = 9

	colPillar            = 1
	colIssue             = 2
	colSubIssue          = 3
	colFieldID           = 4
	colFieldName         = 5
	colFieldType         = 6
	colUnderlyingFieldID = 7

	minColumns = 8
)

// FileResult summarizes what one CSV export contributed.
type FileResult struct {
	Source  string `json:"source"`
	Kept    int    `json:"kept"`
	Skipped int    `json:"skipped"`
}
