package results

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Store reads and rewrites the results file wholesale.
//
// There is no locking: two processes saving against the same file race and
// the later save wins.
type Store struct {
	Path string
}

// NewStore returns a store backed by path.
func NewStore(path string) *Store {
	return &Store{Path: path}
}

// Load reads every stored record in completion order.
//
// A missing file is reported like any other read failure; callers decide
// whether to continue with an empty history.
func (s *Store) Load() ([]Record, error) {
	data, err := os.ReadFile(s.Path)
	if err != nil {
		return nil, fmt.Errorf("read results: %w", err)
	}
	doc, err := DecodeDocument(data)
	if err != nil {
		return nil, err
	}
	return doc.Results, nil
}

// Save overwrites the results file with records.
func (s *Store) Save(records []Record) error {
	if s.Path == "" {
		return fmt.Errorf("results path is required")
	}
	if records == nil {
		records = []Record{}
	}
	payload, err := json.MarshalIndent(Document{Results: records}, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal results: %w", err)
	}
	if dir := filepath.Dir(s.Path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create results dir: %w", err)
		}
	}
	payload = append(payload, '\n')
	if err := os.WriteFile(s.Path, payload, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", filepath.Base(s.Path), err)
	}
	return nil
}

// DecodeDocument parses a results document.
func DecodeDocument(data []byte) (Document, error) {
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return Document{}, fmt.Errorf("parse results: %w", err)
	}
	return doc, nil
}
