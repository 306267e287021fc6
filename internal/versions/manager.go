package versions

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/aumai/datacommons/pkg/datacommons"
)

// malformedResetVersion is the version assigned after a prior entry
// whose version string does not parse. The sequence restarts at 1.1.0,
// not 1.0.0, so the bump stays visible in the history.
const malformedResetVersion = "1.1.0"

// Manager tracks append-only version history per dataset id. Entries
// are immutable once created and listed oldest first. Manager is not
// safe for concurrent use.
type Manager struct {
	history map[string][]datacommons.DatasetVersion
}

// NewManager creates an empty version log.
func NewManager() *Manager {
	return &Manager{
		history: make(map[string][]datacommons.DatasetVersion),
	}
}

// CreateVersion appends a new entry for id and returns it. The version
// number is derived from the most recent entry:
//   - no prior entry: 1.0.0
//   - prior MAJOR.MINOR.PATCH (three non-negative integers): minor
//     bump, patch reset to 0
//   - prior version malformed: 1.1.0
func (m *Manager) CreateVersion(id, changes string) datacommons.DatasetVersion {
	entry := datacommons.DatasetVersion{
		Version:   m.nextVersion(id),
		Changes:   changes,
		CreatedAt: time.Now().UTC(),
	}
	m.history[id] = append(m.history[id], entry)
	return entry
}

// ListVersions returns the entries for id in creation order, oldest
// first. The returned slice is a copy; mutating it does not touch the
// log. An unknown id yields an empty slice.
func (m *Manager) ListVersions(id string) []datacommons.DatasetVersion {
	entries := m.history[id]
	out := make([]datacommons.DatasetVersion, len(entries))
	copy(out, entries)
	return out
}

// History returns a copy of the full log keyed by dataset id, entries
// oldest first.
func (m *Manager) History() map[string][]datacommons.DatasetVersion {
	out := make(map[string][]datacommons.DatasetVersion, len(m.history))
	for id, entries := range m.history {
		copied := make([]datacommons.DatasetVersion, len(entries))
		copy(copied, entries)
		out[id] = copied
	}
	return out
}

// Restore replaces the log with previously persisted history. Ids with
// no entries are dropped rather than kept as empty slices.
func (m *Manager) Restore(history map[string][]datacommons.DatasetVersion) {
	m.history = make(map[string][]datacommons.DatasetVersion, len(history))
	for id, entries := range history {
		if len(entries) == 0 {
			continue
		}
		copied := make([]datacommons.DatasetVersion, len(entries))
		copy(copied, entries)
		m.history[id] = copied
	}
}

// nextVersion computes the version number for the next entry of id.
func (m *Manager) nextVersion(id string) string {
	entries := m.history[id]
	if len(entries) == 0 {
		return datacommons.DefaultVersion
	}

	major, minor, ok := parseVersion(entries[len(entries)-1].Version)
	if !ok {
		return malformedResetVersion
	}
	return fmt.Sprintf("%d.%d.0", major, minor+1)
}

// parseVersion accepts exactly MAJOR.MINOR.PATCH with all three
// components non-negative base-10 integers. The patch component is
// validated but never carried forward.
func parseVersion(version string) (major, minor int, ok bool) {
	parts := strings.Split(version, ".")
	if len(parts) != 3 {
		return 0, 0, false
	}

	nums := make([]int, 3)
	for i, part := range parts {
		n, err := strconv.Atoi(part)
		if err != nil || n < 0 {
			return 0, 0, false
		}
		nums[i] = n
	}
	return nums[0], nums[1], true
}

// Verify Manager implements the interface at compile time
var _ datacommons.VersionLog = (*Manager)(nil)
