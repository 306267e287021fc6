// Package validator checks line-delimited JSON dataset files against a
// declared schema.
//
// # Error Model
//
// Content-level problems (a line that is not valid JSON, a missing
// field, a type mismatch) are collected into human-readable strings
// and returned as data, so a caller can report every problem in one
// pass instead of stopping at the first. Only file-access failures
// (permission, mid-stream read errors) surface as Go errors. A missing
// file is reported in-band as the single entry "File not found: <path>".
//
// # Line Verdicts
//
// Each line's verdict is modeled as a tagged outcome (ok, decode
// error, not an object, field errors) so message assembly stays in one
// place and the formats stay stable:
//
//	Line 3: JSON decode error — unexpected end of JSON input
//	Line 4: record is not a JSON object.
//	Line 7: missing required field 'trace_id'.
//	Line 9: field 'reward' expected float, got str.
//
// Line numbers are physical and 1-based; blank lines are skipped but
// still consume their number. Within a line, field errors follow the
// schema's declaration order.
package validator
