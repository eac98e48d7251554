package importer

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"esgcompass/internal/domain"
	"esgcompass/internal/taxonomy"
)

// ProcessCSV extracts field records from one vendor CSV export. Rows
// missing an identifier or display name are skipped and counted, not
// fatal; a file that cannot be read past its preamble is.
func ProcessCSV(path string) ([]domain.FieldRecord, FileResult, error) {
	source := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	result := FileResult{Source: source}

	f, err := os.Open(path)
	if err != nil {
		return nil, result, fmt.Errorf("opening csv: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1

	// Preamble plus the header row.
	for i := 0; i <= preambleRows; i++ {
		if _, err := r.Read(); err != nil {
			return nil, result, fmt.Errorf("%s: reading preamble: %w", path, err)
		}
	}

	var fields []domain.FieldRecord
	for {
		row, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, result, fmt.Errorf("%s: reading rows: %w", path, err)
		}
		if len(row) < minColumns {
			result.Skipped++
			continue
		}

		rec := domain.FieldRecord{
			FieldID:           strings.TrimSpace(row[colFieldID]),
			FieldName:         strings.TrimSpace(row[colFieldName]),
			FieldType:         strings.TrimSpace(row[colFieldType]),
			Pillar:            strings.TrimSpace(row[colPillar]),
			Issue:             strings.TrimSpace(row[colIssue]),
			SubIssue:          strings.TrimSpace(row[colSubIssue]),
			UnderlyingFieldID: strings.TrimSpace(row[colUnderlyingFieldID]),
			SourceFile:        source,
		}
		if rec.FieldID == "" || rec.FieldName == "" {
			result.Skipped++
			continue
		}
		rec.SearchText = domain.BuildSearchText(rec)
		fields = append(fields, rec)
	}

	result.Kept = len(fields)
	return fields, result, nil
}

// ProcessCSVs merges multiple exports into one taxonomy file. The
// environmental/social and governance taxonomies ship as separate
// exports; the merged file is what the rest of the system loads. A
// file yielding zero usable rows fails the whole run.
func ProcessCSVs(paths []string) (*taxonomy.File, []FileResult, error) {
	if len(paths) == 0 {
		return nil, nil, fmt.Errorf("no csv files given")
	}

	var all []domain.FieldRecord
	var sources []string
	var results []FileResult

	for _, path := range paths {
		fields, result, err := ProcessCSV(path)
		if err != nil {
			return nil, results, err
		}
		if len(fields) == 0 {
			return nil, results, fmt.Errorf("%s: no usable rows", path)
		}
		all = append(all, fields...)
		sources = append(sources, filepath.Base(path))
		results = append(results, result)
	}

	return &taxonomy.File{
		Version:     "1.0",
		SourceFiles: sources,
		TotalFields: len(all),
		Fields:      all,
	}, results, nil
}
