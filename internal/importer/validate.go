package importer

import (
	"fmt"

	"esgcompass/internal/domain"
)

var knownPillars = map[string]bool{
	"Environmental": true,
	"Social":        true,
	"Governance":    true,
}

// ValidateFields checks processed field records before they are
// written out. Returns a slice of all problems found; an empty slice
// means the records are clean. Duplicate identifiers are reported
// here even though the store would tolerate them, so a bad export is
// caught at processing time rather than silently halved at load time.
func ValidateFields(fields []domain.FieldRecord) []error {
	var errs []error
	seen := make(map[string]string) // field_id -> source_file

	for i, f := range fields {
		prefix := fmt.Sprintf("fields[%d]", i)

		if f.FieldID == "" {
			errs = append(errs, fmt.Errorf("%s: field_id is required", prefix))
		} else if first, dup := seen[f.FieldID]; dup {
			errs = append(errs, fmt.Errorf("%s: duplicate field_id %q (first seen in %s)", prefix, f.FieldID, first))
		} else {
			seen[f.FieldID] = f.SourceFile
		}

		if f.FieldName == "" {
			errs = append(errs, fmt.Errorf("%s: field_name is required", prefix))
		}
		if f.Pillar != "" && !knownPillars[f.Pillar] {
			errs = append(errs, fmt.Errorf("%s: unknown pillar %q", prefix, f.Pillar))
		}
	}

	return errs
}
