package datacommons

// Catalog is the keyed store of dataset records. Implementations keep
// insertion order for listing and searching, and upsert in place:
// re-registering an id overwrites the record without moving it.
//
// Catalogs are not safe for concurrent use; callers needing shared
// access must serialize externally.
type Catalog interface {
	// Register upserts a record by its DatasetID. An existing id keeps
	// its position in iteration order.
	Register(record DatasetMetadata)

	// Get returns the record for id, or an error wrapping
	// ErrDatasetNotFound (carrying the id in its message) if absent.
	Get(id string) (DatasetMetadata, error)

	// ListAll returns up to limit records starting at offset, in
	// insertion order. Out-of-range offset or limit yields an empty
	// slice, never an error.
	ListAll(limit, offset int) []DatasetMetadata

	// Search returns the records matching every condition of the
	// filter, in insertion order.
	Search(filter SearchFilter) []DatasetMetadata

	// Len reports the number of stored records.
	Len() int

	// Snapshot returns every record in insertion order. Loading a
	// snapshot back is a replay of Register calls in slice order.
	Snapshot() []DatasetMetadata
}

// VersionLog is the per-dataset append-only version history.
// A dataset may have history without ever being registered in a Catalog.
//
// Version logs are not safe for concurrent use.
type VersionLog interface {
	// CreateVersion appends a new entry for id with the next version
	// number and the given change note, and returns it.
	CreateVersion(id, changes string) DatasetVersion

	// ListVersions returns the entries for id oldest first, or an
	// empty slice if there are none. The returned slice is a copy.
	ListVersions(id string) []DatasetVersion

	// History returns a copy of the full log keyed by dataset id,
	// entries oldest first. Used for persistence.
	History() map[string][]DatasetVersion

	// Restore replaces the log with previously persisted history.
	Restore(history map[string][]DatasetVersion)
}
