// Package scanner provides dataset file discovery and metadata extraction.
//
// The scanner package is responsible for:
//   - Recursively discovering dataset files (.jsonl, .csv, .parquet, .arrow)
//     in a directory tree
//   - Extracting file metadata (path, size, timestamps, content digest)
//   - Counting records for the line-oriented formats
//   - Deriving a deterministic fallback dataset id from each relative path
//
// The scanner is designed to be filesystem-agnostic through the
// filesystem.FileSystemProvider interface, enabling both production use
// with the OS filesystem and testing with in-memory filesystems.
package scanner
