package datacommons

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// DatasetFormat identifies the on-disk layout of a dataset file.
type DatasetFormat string

const (
	FormatJSONL   DatasetFormat = "jsonl"
	FormatCSV     DatasetFormat = "csv"
	FormatParquet DatasetFormat = "parquet"
	FormatArrow   DatasetFormat = "arrow"
)

// DatasetFormats returns all recognized formats in declaration order.
func DatasetFormats() []DatasetFormat {
	return []DatasetFormat{FormatJSONL, FormatCSV, FormatParquet, FormatArrow}
}

// ParseDatasetFormat converts a string into a DatasetFormat.
// Matching is case-insensitive; unrecognized names return an error
// wrapping ErrInvalidMetadata.
func ParseDatasetFormat(s string) (DatasetFormat, error) {
	f := DatasetFormat(strings.ToLower(strings.TrimSpace(s)))
	if !f.IsValid() {
		return "", fmt.Errorf("format %q is not one of jsonl, csv, parquet, arrow: %w", s, ErrInvalidMetadata)
	}
	return f, nil
}

// IsValid returns true if the format is one of the recognized values.
func (f DatasetFormat) IsValid() bool {
	switch f {
	case FormatJSONL, FormatCSV, FormatParquet, FormatArrow:
		return true
	}
	return false
}

// String returns the wire name of the format.
func (f DatasetFormat) String() string {
	return string(f)
}

// DatasetMetadata is the descriptive record stored per dataset.
// Field names follow the registry file format (snake_case), so records
// round-trip unchanged through JSON registry files and YAML configs.
type DatasetMetadata struct {
	// DatasetID is the unique, case-sensitive catalog key.
	DatasetID string `json:"dataset_id" yaml:"dataset_id"`

	// Name and Description are free text; search matches substrings of both.
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description" yaml:"description"`

	Format DatasetFormat `json:"format" yaml:"format"`

	SizeBytes  int64 `json:"size_bytes" yaml:"size_bytes"`
	NumRecords int64 `json:"num_records" yaml:"num_records"`

	// Schema maps field names to declared type names (str, int, float,
	// bool, list, dict). Stored verbatim; validation runs against an
	// ordered Schema built from a schema document, not from this map.
	Schema map[string]string `json:"schema" yaml:"schema"`

	License string `json:"license" yaml:"license"`

	// Tags are matched as a set but displayed in their original order.
	Tags []string `json:"tags" yaml:"tags"`

	Version   string    `json:"version" yaml:"version"`
	CreatedAt time.Time `json:"created_at" yaml:"created_at"`
}

// Validate checks that the record has all required fields and valid values.
// It returns a multi-error if multiple validation failures occur; every
// failure wraps ErrInvalidMetadata.
func (m *DatasetMetadata) Validate() error {
	var errs []error

	if m.DatasetID == "" {
		errs = append(errs, fmt.Errorf("dataset_id is required: %w", ErrInvalidMetadata))
	}

	if m.Name == "" {
		errs = append(errs, fmt.Errorf("name is required: %w", ErrInvalidMetadata))
	}

	if m.Description == "" {
		errs = append(errs, fmt.Errorf("description is required: %w", ErrInvalidMetadata))
	}

	if !m.Format.IsValid() {
		errs = append(errs, fmt.Errorf("format %q is not one of jsonl, csv, parquet, arrow: %w", string(m.Format), ErrInvalidMetadata))
	}

	if m.SizeBytes < 0 {
		errs = append(errs, fmt.Errorf("size_bytes cannot be negative: %w", ErrInvalidMetadata))
	}

	if m.NumRecords < 0 {
		errs = append(errs, fmt.Errorf("num_records cannot be negative: %w", ErrInvalidMetadata))
	}

	if m.License == "" {
		errs = append(errs, fmt.Errorf("license is required: %w", ErrInvalidMetadata))
	}

	return errors.Join(errs...)
}

// ApplyDefaults fills the optional fields the same way a freshly
// constructed record would: version 1.0.0, creation time now (UTC),
// and empty (non-nil) schema and tag containers.
func (m *DatasetMetadata) ApplyDefaults() {
	if m.Version == "" {
		m.Version = DefaultVersion
	}
	if m.CreatedAt.IsZero() {
		m.CreatedAt = time.Now().UTC()
	}
	if m.Schema == nil {
		m.Schema = map[string]string{}
	}
	if m.Tags == nil {
		m.Tags = []string{}
	}
}

// HasTag reports whether the record carries the given tag (exact match).
func (m *DatasetMetadata) HasTag(tag string) bool {
	for _, t := range m.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// DatasetVersion is one immutable entry in a dataset's version history.
type DatasetVersion struct {
	Version   string    `json:"version" yaml:"version"`
	Changes   string    `json:"changes" yaml:"changes"`
	CreatedAt time.Time `json:"created_at" yaml:"created_at"`
}

// DownloadResult reports the outcome of fetching or fingerprinting a
// dataset file. Verified is true only when an expected digest was
// supplied and matched the computed one.
type DownloadResult struct {
	DatasetID string `json:"dataset_id,omitempty"`
	Path      string `json:"path"`
	Verified  bool   `json:"verified"`
	SHA256    string `json:"sha256"`
}

// Statistics summarizes the contents of a dataset file.
//
// NullCounts omits fields with zero nulls; consumers must treat a
// missing key as zero. TypeDistribution counts occurrences of each
// dynamic type name per field.
type Statistics struct {
	RowCount         int                       `json:"row_count"`
	NullCounts       map[string]int            `json:"null_counts"`
	TypeDistribution map[string]map[string]int `json:"type_distribution"`
}

// SchemaField is one field declaration in a validation schema.
type SchemaField struct {
	Name string
	Type string
}

// Schema is an ordered sequence of field declarations. Order matters:
// per-line validation errors are reported field-by-field in schema
// order, so a schema is a slice rather than a map.
type Schema []SchemaField

// Map flattens the schema into a name->type map, e.g. for storing on a
// DatasetMetadata record. Declaration order is lost.
func (s Schema) Map() map[string]string {
	m := make(map[string]string, len(s))
	for _, f := range s {
		m[f.Name] = f.Type
	}
	return m
}

// SearchFilter narrows catalog searches. All conditions are conjunctive.
type SearchFilter struct {
	// Query is matched case-insensitively as a substring of a record's
	// name or description. Empty matches every record.
	Query string

	// Format, when non-empty, must equal the record's format exactly.
	Format DatasetFormat

	// Tags, when non-empty, must all be present on the record (set
	// containment; extra tags on the record are fine).
	Tags []string
}

// DatasetFileInfo describes one dataset file discovered by a scan.
// Paths use Unix-style forward slashes relative to the scan root.
type DatasetFileInfo struct {
	Path       string        `json:"path"`
	Name       string        `json:"name"`
	Extension  string        `json:"extension"`
	Format     DatasetFormat `json:"format"`
	SizeBytes  int64         `json:"size_bytes"`
	NumRecords int64         `json:"num_records"`
	SHA256     string        `json:"sha256"`
	ModifiedAt time.Time     `json:"modified_at"`

	// DatasetID is a deterministic fallback identity derived from the
	// relative path, stable across rescans of the same tree.
	DatasetID string `json:"dataset_id"`
}

// ScanResult contains the results of scanning a directory.
type ScanResult struct {
	Files []DatasetFileInfo `json:"files"`
}
