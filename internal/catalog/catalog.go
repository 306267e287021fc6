package catalog

import (
	"fmt"
	"strings"

	"github.com/aumai/datacommons/pkg/datacommons"
)

// Catalog is the in-memory keyed store of dataset records. It is an
// explicit ordered association: an id slice carries insertion order
// and a side map holds the records, so upserting an existing id
// overwrites the value without moving it.
//
// Catalog is not safe for concurrent use; callers needing shared
// access must serialize externally.
type Catalog struct {
	ids     []string
	records map[string]datacommons.DatasetMetadata
}

// New creates an empty catalog.
func New() *Catalog {
	return &Catalog{
		records: make(map[string]datacommons.DatasetMetadata),
	}
}

// Register upserts a record by its DatasetID. A new id is appended to
// the iteration order; an existing id keeps its position.
func (c *Catalog) Register(record datacommons.DatasetMetadata) {
	if _, exists := c.records[record.DatasetID]; !exists {
		c.ids = append(c.ids, record.DatasetID)
	}
	c.records[record.DatasetID] = record
}

// Get returns the record for id. A miss yields an error wrapping
// ErrDatasetNotFound with the id in its message.
func (c *Catalog) Get(id string) (datacommons.DatasetMetadata, error) {
	record, ok := c.records[id]
	if !ok {
		return datacommons.DatasetMetadata{}, fmt.Errorf("dataset '%s' not found: %w", id, datacommons.ErrDatasetNotFound)
	}
	return record, nil
}

// ListAll returns up to limit records starting at offset, in insertion
// order. Out-of-range offset or limit yields an empty slice, never an
// error; negative values are treated as zero.
func (c *Catalog) ListAll(limit, offset int) []datacommons.DatasetMetadata {
	if limit < 0 {
		limit = 0
	}
	if offset < 0 {
		offset = 0
	}
	if offset > len(c.ids) {
		offset = len(c.ids)
	}
	end := offset + limit
	if end > len(c.ids) {
		end = len(c.ids)
	}

	out := make([]datacommons.DatasetMetadata, 0, end-offset)
	for _, id := range c.ids[offset:end] {
		out = append(out, c.records[id])
	}
	return out
}

// Search returns the records matching every condition of the filter,
// in insertion order:
//   - Query (case-insensitive) must be a substring of the record's
//     name or description. An empty query matches everything.
//   - Format, when set, must equal the record's format exactly.
//   - Tags, when non-empty, must all be present on the record (set
//     containment; extra record tags are fine).
func (c *Catalog) Search(filter datacommons.SearchFilter) []datacommons.DatasetMetadata {
	query := strings.ToLower(filter.Query)

	out := []datacommons.DatasetMetadata{}
	for _, id := range c.ids {
		record := c.records[id]
		if !strings.Contains(strings.ToLower(record.Name), query) &&
			!strings.Contains(strings.ToLower(record.Description), query) {
			continue
		}
		if filter.Format != "" && record.Format != filter.Format {
			continue
		}
		if !hasAllTags(record, filter.Tags) {
			continue
		}
		out = append(out, record)
	}
	return out
}

// Len reports the number of stored records.
func (c *Catalog) Len() int {
	return len(c.ids)
}

// Snapshot returns every record in insertion order. Replaying Register
// over the slice reproduces the catalog, including its order.
func (c *Catalog) Snapshot() []datacommons.DatasetMetadata {
	out := make([]datacommons.DatasetMetadata, 0, len(c.ids))
	for _, id := range c.ids {
		out = append(out, c.records[id])
	}
	return out
}

// hasAllTags reports whether the record carries every requested tag.
// An empty request is no tag filter at all.
func hasAllTags(record datacommons.DatasetMetadata, tags []string) bool {
	if len(tags) == 0 {
		return true
	}
	set := make(map[string]struct{}, len(record.Tags))
	for _, tag := range record.Tags {
		set[tag] = struct{}{}
	}
	for _, tag := range tags {
		if _, ok := set[tag]; !ok {
			return false
		}
	}
	return true
}

// Verify Catalog implements the interface at compile time
var _ datacommons.Catalog = (*Catalog)(nil)
