package registry

import (
	"context"
	"fmt"

	"github.com/aumai/datacommons/internal/store"
	"github.com/aumai/datacommons/pkg/datacommons"
)

// Service coordinates the catalog, the version log, and their
// persistence. Commands open one Service per invocation: Open loads
// the registry files, mutating operations persist before returning,
// and reads are served from memory.
//
// Thread-Safety: NOT safe for concurrent use on the same instance.
// Single-writer discipline is the caller's responsibility.
type Service struct {
	store    *store.Store
	catalog  datacommons.Catalog
	versions datacommons.VersionLog
	approver datacommons.Approver
	logger   datacommons.Logger
}

// NewService creates a Service with all dependencies injected.
// Panics if any dependency is nil: missing wiring is a programmer
// error that must fail at construction, not mid-command.
func NewService(
	st *store.Store,
	cat datacommons.Catalog,
	versions datacommons.VersionLog,
	approver datacommons.Approver,
	logger datacommons.Logger,
) *Service {
	if st == nil {
		panic("store cannot be nil")
	}
	if cat == nil {
		panic("catalog cannot be nil")
	}
	if versions == nil {
		panic("versions cannot be nil")
	}
	if approver == nil {
		panic("approver cannot be nil")
	}
	if logger == nil {
		panic("logger cannot be nil")
	}

	return &Service{
		store:    st,
		catalog:  cat,
		versions: versions,
		approver: approver,
		logger:   logger,
	}
}

// Open loads the registry and version history from disk. Records are
// replayed through the catalog in array order, reproducing insertion
// order. Missing files load as an empty registry.
func (s *Service) Open() error {
	records, err := s.store.LoadRecords()
	if err != nil {
		return err
	}
	for _, record := range records {
		s.catalog.Register(record)
	}

	history, err := s.store.LoadHistory()
	if err != nil {
		return err
	}
	s.versions.Restore(history)

	s.logger.Verbose("Loaded %d dataset(s) from %s", s.catalog.Len(), s.store.Path())
	return nil
}

// Register validates and upserts a dataset record, then persists.
//
// Defaults are applied first (version, creation time, empty schema and
// tags), mirroring how config-driven registration fills optional
// fields. A brand-new id gets an initial version-history entry;
// overwriting an existing id requires the approver's consent and
// leaves the history untouched. The returned bool reports whether the
// id was newly created.
func (s *Service) Register(ctx context.Context, record datacommons.DatasetMetadata) (bool, error) {
	record.ApplyDefaults()
	if err := record.Validate(); err != nil {
		return false, err
	}

	_, err := s.catalog.Get(record.DatasetID)
	exists := err == nil

	if exists {
		s.logger.Verbose("Dataset '%s' already registered. Requesting approval for overwrite.", record.DatasetID)
		approved, err := s.approver.RequestApproval(ctx, record.DatasetID)
		if err != nil {
			return false, fmt.Errorf("approval request failed: %w", err)
		}
		if !approved {
			return false, fmt.Errorf("overwrite of dataset '%s' was not approved: %w", record.DatasetID, datacommons.ErrApprovalDenied)
		}
	}

	s.catalog.Register(record)
	if !exists {
		entry := s.versions.CreateVersion(record.DatasetID, datacommons.InitialVersionChanges)
		s.logger.Verbose("Created initial version %s for dataset '%s'", entry.Version, record.DatasetID)
	}

	if err := s.persist(); err != nil {
		return false, err
	}
	return !exists, nil
}

// Get returns the record for id.
func (s *Service) Get(id string) (datacommons.DatasetMetadata, error) {
	return s.catalog.Get(id)
}

// List returns a page of records in insertion order.
func (s *Service) List(limit, offset int) []datacommons.DatasetMetadata {
	return s.catalog.ListAll(limit, offset)
}

// Search returns the records matching the filter, in insertion order.
func (s *Service) Search(filter datacommons.SearchFilter) []datacommons.DatasetMetadata {
	return s.catalog.Search(filter)
}

// Snapshot returns every record in insertion order.
func (s *Service) Snapshot() []datacommons.DatasetMetadata {
	return s.catalog.Snapshot()
}

// Len reports the number of registered datasets.
func (s *Service) Len() int {
	return s.catalog.Len()
}

// Versions returns the version history for id, oldest first. History
// can exist for ids that were never registered.
func (s *Service) Versions(id string) []datacommons.DatasetVersion {
	return s.versions.ListVersions(id)
}

// CreateVersion appends a version entry for id (minor bump) and
// persists. The id does not need to be registered.
func (s *Service) CreateVersion(id, changes string) (datacommons.DatasetVersion, error) {
	entry := s.versions.CreateVersion(id, changes)
	if err := s.persist(); err != nil {
		return datacommons.DatasetVersion{}, err
	}
	s.logger.Verbose("Created version %s for dataset '%s'", entry.Version, id)
	return entry, nil
}

// persist writes the catalog snapshot and the version history.
func (s *Service) persist() error {
	if err := s.store.SaveRecords(s.catalog.Snapshot()); err != nil {
		return err
	}
	return s.store.SaveHistory(s.versions.History())
}
