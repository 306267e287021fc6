package stats

import (
	"bufio"
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/aumai/datacommons/internal/files/filesystem"
	"github.com/aumai/datacommons/internal/schema"
	"github.com/aumai/datacommons/pkg/datacommons"
)

// Line limits for the JSONL reader, matching the validator's.
const (
	initialLineBuffer = 64 * 1024
	maxLineSize       = 16 * 1024 * 1024
)

// NotFoundError reports a missing dataset file. Its message is the
// exact string callers serialize into {"error": ...} reports.
type NotFoundError struct {
	Path string
}

func (e *NotFoundError) Error() string { return "File not found: " + e.Path }

func (e *NotFoundError) Unwrap() error { return fs.ErrNotExist }

// Collector computes per-field quality statistics for dataset files.
// Collector is safe for concurrent use as long as the provided
// filesystem provider is.
type Collector struct {
	fsProvider filesystem.FileSystemProvider
}

// New creates a collector backed by the OS filesystem.
func New() *Collector {
	return &Collector{fsProvider: filesystem.NewOSFileSystem()}
}

// NewWithFS creates a collector with a custom filesystem provider.
// This is primarily useful for testing with in-memory filesystems.
// Panics if fsProvider is nil.
func NewWithFS(fsProvider filesystem.FileSystemProvider) *Collector {
	if fsProvider == nil {
		panic("fsProvider cannot be nil")
	}
	return &Collector{fsProvider: fsProvider}
}

// Compute reads the file at path and returns its row count plus
// per-field null counts and dynamic-type distribution.
//
// A ".csv" suffix (any case) selects delimited-tabular parsing with
// header-derived field names; every other suffix is treated as
// line-delimited JSON. Malformed rows are skipped, never fatal; the
// only error conditions are a missing file (*NotFoundError, wrapping
// fs.ErrNotExist) and file-access failures.
//
// All rows are loaded before accumulating, so memory grows with the
// file. Callers with very large inputs must chunk externally.
func (c *Collector) Compute(path string) (*datacommons.Statistics, error) {
	reader, err := c.fsProvider.OpenRead(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, &NotFoundError{Path: path}
		}
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer reader.Close()

	var rows []map[string]interface{}
	if strings.EqualFold(filepath.Ext(path), ".csv") {
		rows, err = loadCSVRows(reader)
	} else {
		rows, err = loadJSONLRows(reader)
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	return accumulate(rows), nil
}

// loadJSONLRows collects every line that decodes to a JSON object.
// Blank lines, undecodable lines, and non-object values are skipped.
func loadJSONLRows(r io.Reader) ([]map[string]interface{}, error) {
	var rows []map[string]interface{}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, initialLineBuffer), maxLineSize)

	for scanner.Scan() {
		line := bytes.TrimSpace(scanner.Bytes())
		if len(line) == 0 {
			continue
		}
		value, err := schema.DecodeValue(line)
		if err != nil {
			continue
		}
		if record, ok := value.(map[string]interface{}); ok {
			rows = append(rows, record)
		}
	}
	return rows, scanner.Err()
}

// loadCSVRows collects data rows keyed by the header row's field
// names. Short rows are padded with nulls; cells beyond the header are
// dropped; rows the reader rejects are skipped.
func loadCSVRows(r io.Reader) ([]map[string]interface{}, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var rows []map[string]interface{}
	for {
		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			continue
		}
		row := make(map[string]interface{}, len(header))
		for i, field := range header {
			if i < len(record) {
				row[field] = record[i]
			} else {
				row[field] = nil
			}
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// accumulate folds the loaded rows into the statistics result. A value
// is null when it is JSON null or the empty string; type names come
// from the shared dynamic-type vocabulary, so CSV cells always count
// as "str" (or "null" when padded) and no numeric inference happens.
func accumulate(rows []map[string]interface{}) *datacommons.Statistics {
	result := &datacommons.Statistics{
		RowCount:         len(rows),
		NullCounts:       map[string]int{},
		TypeDistribution: map[string]map[string]int{},
	}

	for _, row := range rows {
		for field, value := range row {
			if isNull(value) {
				result.NullCounts[field]++
			}
			dist := result.TypeDistribution[field]
			if dist == nil {
				dist = map[string]int{}
				result.TypeDistribution[field] = dist
			}
			dist[schema.TypeName(value)]++
		}
	}
	return result
}

func isNull(value interface{}) bool {
	if value == nil {
		return true
	}
	s, ok := value.(string)
	return ok && s == ""
}
