package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/aumai/datacommons/pkg/datacommons"
)

// Store persists the registry as JSON files. The registry file holds
// an ordered array of dataset records; version history lives in a
// sibling file named <registry>.versions.json, an object keyed by
// dataset id. Array order is insertion order: loading replays the
// records through Catalog.Register in sequence.
//
// Writes go through a temporary file and an atomic rename, so a crash
// mid-save leaves the previous file intact.
type Store struct {
	path string
}

// New creates a store persisting to the given registry file path.
// Panics if path is empty.
func New(path string) *Store {
	if path == "" {
		panic("path cannot be empty")
	}
	return &Store{path: path}
}

// Path returns the registry file path.
func (s *Store) Path() string {
	return s.path
}

// VersionsPath returns the sibling file holding version history.
func (s *Store) VersionsPath() string {
	return s.path + ".versions.json"
}

// LoadRecords reads the registry file. A missing or empty file yields
// an empty slice; a file that exists but does not hold a JSON array of
// records is an error.
func (s *Store) LoadRecords() ([]datacommons.DatasetMetadata, error) {
	var records []datacommons.DatasetMetadata
	if err := readJSON(s.path, &records); err != nil {
		return nil, fmt.Errorf("failed to load registry %s: %w", s.path, err)
	}
	return records, nil
}

// SaveRecords writes the full record sequence to the registry file.
func (s *Store) SaveRecords(records []datacommons.DatasetMetadata) error {
	if records == nil {
		records = []datacommons.DatasetMetadata{}
	}
	if err := writeJSON(s.path, records); err != nil {
		return fmt.Errorf("failed to save registry %s: %w", s.path, err)
	}
	return nil
}

// LoadHistory reads the version-history file. A missing or empty file
// yields an empty map.
func (s *Store) LoadHistory() (map[string][]datacommons.DatasetVersion, error) {
	history := map[string][]datacommons.DatasetVersion{}
	if err := readJSON(s.VersionsPath(), &history); err != nil {
		return nil, fmt.Errorf("failed to load version history %s: %w", s.VersionsPath(), err)
	}
	return history, nil
}

// SaveHistory writes the full version history to the sibling file.
func (s *Store) SaveHistory(history map[string][]datacommons.DatasetVersion) error {
	if history == nil {
		history = map[string][]datacommons.DatasetVersion{}
	}
	if err := writeJSON(s.VersionsPath(), history); err != nil {
		return fmt.Errorf("failed to save version history %s: %w", s.VersionsPath(), err)
	}
	return nil
}

// readJSON decodes one JSON document from path into v. Missing and
// zero-byte files leave v untouched.
func readJSON(path string, v interface{}) error {
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return err
	}
	defer file.Close()

	if err := json.NewDecoder(file).Decode(v); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return err
	}
	return nil
}

// writeJSON writes v to path as indented JSON via a temporary file and
// an atomic rename.
func writeJSON(path string, v interface{}) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	tmpPath := path + ".tmp"
	file, err := os.Create(tmpPath)
	if err != nil {
		return err
	}

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(v); err != nil {
		file.Close()
		os.Remove(tmpPath)
		return err
	}
	if err := file.Close(); err != nil {
		os.Remove(tmpPath)
		return err
	}

	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return err
	}
	return nil
}
