// Package versions keeps append-only version history for datasets.
//
// Each dataset id owns an ordered sequence of immutable entries. New
// entries always get a minor bump of the most recent version (patch
// reset to 0); the first entry is 1.0.0, and an unparseable prior
// version restarts the sequence at 1.1.0. History exists independently
// of the catalog: a dataset may be versioned without being registered.
package versions
