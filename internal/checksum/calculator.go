package checksum

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"os"

	"github.com/aumai/datacommons/pkg/datacommons"
)

// SHA256 implements the datacommons.Calculator interface.
//
// SHA256 is a zero-size type and is safe for concurrent use by multiple goroutines.
// Using value semantics (pass by value) eliminates heap allocations.
type SHA256 struct{}

// Compile-time interface compliance check.
var _ datacommons.Calculator = SHA256{}

// New creates a new SHA-256 based calculator.
// Returns by value to avoid heap allocation (SHA256 is a zero-size type).
func New() SHA256 {
	return SHA256{}
}

// DigestBytes computes the SHA-256 digest of content already in memory
// and returns it as lowercase hex.
func (c SHA256) DigestBytes(content []byte) string {
	hash := sha256.Sum256(content)
	return hex.EncodeToString(hash[:])
}

// DigestFile streams the file at path through SHA-256 and returns the
// lowercase hex digest. Memory use is bounded by the block size no
// matter how large the file is.
//
// Open and read failures are returned with their fs sentinel intact
// (fs.ErrNotExist, fs.ErrPermission), single-attempt, no retry.
func (c SHA256) DigestFile(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	digest, err := c.DigestReader(f)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", path, err)
	}
	return digest, nil
}

// DigestReader consumes r in fixed HashBlockSize blocks, feeding each
// block into the hash accumulator, and returns the final digest as
// lowercase hex.
func (c SHA256) DigestReader(r io.Reader) (string, error) {
	h := sha256.New()
	buf := make([]byte, datacommons.HashBlockSize)

	for {
		n, err := r.Read(buf)
		if n > 0 {
			h.Write(buf[:n])
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", err
		}
	}

	return hex.EncodeToString(h.Sum(nil)), nil
}
