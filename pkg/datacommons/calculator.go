package datacommons

// Calculator computes content digests for integrity checks.
// Implementations must be safe for concurrent use by multiple goroutines.
type Calculator interface {
	// DigestFile streams the file at path through the hash in fixed
	// HashBlockSize blocks and returns the lowercase hex digest.
	// A missing path fails with an error wrapping fs.ErrNotExist, an
	// unreadable one with fs.ErrPermission; neither is retried.
	DigestFile(path string) (string, error)

	// DigestBytes returns the lowercase hex digest of content already
	// held in memory.
	DigestBytes(content []byte) string
}
