// Package stats computes basic data-quality statistics for dataset
// files: row count, per-field null counts, and per-field dynamic-type
// distribution.
//
// Two input shapes are supported, selected purely by path suffix:
// ".csv" (any case) is parsed as delimited-tabular text with a header
// row, everything else as line-delimited JSON. Fields are whatever
// keys or columns actually appear; no schema is required.
//
// The collector is deliberately forgiving: rows that fail to parse are
// skipped without affecting the rest of the report, and only a missing
// or unreadable file is an error. Counting conventions:
//
//   - A value is null when it is JSON null or the empty string. Fields
//     with zero nulls are omitted from the null-count map; consumers
//     must treat absence as zero.
//   - CSV values are never type-inferred: every present cell counts as
//     "str", and cells missing from a short row count as "null".
package stats
