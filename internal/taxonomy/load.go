package taxonomy

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"esgcompass/internal/domain"
)

// File is the on-disk taxonomy format produced by the CSV processor.
type File struct {
	Version     string               `json:"version"`
	Source      string               `json:"source,omitempty"`
	SourceFiles []string             `json:"source_files,omitempty"`
	TotalFields int                  `json:"total_fields"`
	Fields      []domain.FieldRecord `json:"fields"`
}

// LoadFile reads a taxonomy JSON file and builds a store from it.
// A file without a fields array is structurally unusable and fatal;
// individual malformed records are dropped by the store.
func LoadFile(path string) (*Store, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading taxonomy file: %w", err)
	}
	return Load(data)
}

// Load parses taxonomy JSON bytes and builds a store.
func Load(data []byte) (*Store, error) {
	var file File
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parsing taxonomy file: %w", err)
	}
	if len(file.Fields) == 0 {
		return nil, fmt.Errorf("taxonomy file has no fields")
	}

	store := NewStore(file.Fields)
	store.Version = file.Version
	if store.Version == "" {
		store.Version = "1.0"
	}
	store.Source = file.Source
	if store.Source == "" && len(file.SourceFiles) > 0 {
		store.Source = strings.Join(file.SourceFiles, ", ")
	}
	return store, nil
}

// WriteFile serializes a taxonomy file to disk with indentation, so
// the processed output stays reviewable in a diff.
func WriteFile(path string, file *File) error {
	file.TotalFields = len(file.Fields)
	data, err := json.MarshalIndent(file, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding taxonomy: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing taxonomy file: %w", err)
	}
	return nil
}
