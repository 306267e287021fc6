package scanner

import (
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// NamespaceDatasetIdentity is the fixed UUID namespace for generating
// deterministic dataset identities from file paths. It is derived from the
// string "datacommons.dev/dataset-identity/v1" using UUID v5 with the URL
// namespace, so anyone can independently reproduce the ids a scan reports.
var NamespaceDatasetIdentity uuid.UUID

// init generates the namespace UUID from the canonical string on package load.
func init() {
	NamespaceDatasetIdentity = uuid.NewSHA1(uuid.NameSpaceURL, []byte("datacommons.dev/dataset-identity/v1"))
}

// FallbackDatasetID creates a deterministic UUID v5 from a normalized file
// path. Files discovered by a scan carry no declared dataset id, so this
// gives every file a stable identity across rescans of the same tree.
//
// Path normalization before hashing:
//  1. Convert separators to forward slashes
//  2. Convert to lowercase (case-insensitive identity)
//  3. Remove a leading "./" prefix (consistent root reference)
//
// Example: "./Raw/Train.JSONL" and "raw/train.jsonl" generate the same id.
func FallbackDatasetID(path string) string {
	return uuid.NewSHA1(NamespaceDatasetIdentity, []byte(normalizePath(path))).String()
}

// normalizePath converts a file path to canonical form for deterministic
// UUID generation.
func normalizePath(path string) string {
	normalized := filepath.ToSlash(path)
	normalized = strings.ToLower(normalized)
	normalized = strings.TrimPrefix(normalized, "./")
	return normalized
}
