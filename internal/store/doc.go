// Package store persists the dataset registry to disk.
//
// The on-disk format is two JSON documents next to each other:
//
//   - the registry file: a pretty-printed array of dataset records in
//     insertion order. Loading replays the array through the catalog's
//     Register, which reproduces both the data and the ordering.
//   - <registry>.versions.json: the version history as an object
//     keyed by dataset id, entries oldest first.
//
// A missing file loads as an empty registry, so the first invocation
// against a fresh path just works. Saves are atomic (temp file plus
// rename); a crash mid-write cannot corrupt the previous state.
package store
