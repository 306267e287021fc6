// Package catalog implements the ordered in-memory dataset registry.
//
// Records are keyed by dataset id with insertion order preserved
// across upserts: re-registering an id replaces its data but keeps its
// original position in listings. Search applies conjunctive filters
// (case-insensitive substring over name and description, exact format,
// tag-set containment) while preserving that order.
//
// The catalog performs no I/O. Persistence layers snapshot it as an
// ordered record sequence and rebuild it by replaying Register.
package catalog
