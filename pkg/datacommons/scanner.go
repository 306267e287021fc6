package datacommons

// DatasetScanner discovers dataset files on disk.
// Implementations must be safe for concurrent use by multiple goroutines.
type DatasetScanner interface {
	// ScanDirectory recursively scans root and returns metadata for
	// every file with a recognized dataset extension (.jsonl, .csv,
	// .parquet, .arrow), including size, modification time, streaming
	// digest, record count for line-oriented formats, and a
	// deterministic fallback dataset id.
	ScanDirectory(root string) (ScanResult, error)
}
