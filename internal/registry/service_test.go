package registry

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aumai/datacommons/internal/catalog"
	"github.com/aumai/datacommons/internal/logging"
	"github.com/aumai/datacommons/internal/store"
	"github.com/aumai/datacommons/internal/versions"
	"github.com/aumai/datacommons/pkg/datacommons"
)

// openService builds a Service over storePath and loads it. A nil
// approver defaults to one that approves everything.
func openService(t *testing.T, storePath string, approver datacommons.Approver) *Service {
	t.Helper()

	if approver == nil {
		approver = &mockApprover{approved: true}
	}
	svc := NewService(store.New(storePath), catalog.New(), versions.NewManager(), approver, logging.NewNullLogger())
	require.NoError(t, svc.Open())
	return svc
}

func validRecord(id string) datacommons.DatasetMetadata {
	return datacommons.DatasetMetadata{
		DatasetID:   id,
		Name:        "Agent Traces",
		Description: "ReAct traces from production agents",
		Format:      datacommons.FormatJSONL,
		SizeBytes:   2048,
		NumRecords:  100,
		License:     "CC-BY-4.0",
		Tags:        []string{"agents"},
	}
}

func TestNewService_NilDeps(t *testing.T) {
	st := store.New(filepath.Join(t.TempDir(), "r.json"))
	cat := catalog.New()
	vm := versions.NewManager()
	ap := &mockApprover{approved: true}
	lg := logging.NewNullLogger()

	tests := []struct {
		name string
		fn   func()
	}{
		{"nil store", func() { NewService(nil, cat, vm, ap, lg) }},
		{"nil catalog", func() { NewService(st, nil, vm, ap, lg) }},
		{"nil versions", func() { NewService(st, cat, nil, ap, lg) }},
		{"nil approver", func() { NewService(st, cat, vm, nil, lg) }},
		{"nil logger", func() { NewService(st, cat, vm, ap, nil) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Panics(t, tt.fn)
		})
	}
}

func TestOpen_FreshStoreIsEmpty(t *testing.T) {
	svc := openService(t, filepath.Join(t.TempDir(), "registry.json"), nil)

	assert.Equal(t, 0, svc.Len())
	assert.Empty(t, svc.Snapshot())
}

func TestRegister_NewDataset(t *testing.T) {
	path := filepath.Join(t.TempDir(), "registry.json")
	svc := openService(t, path, nil)

	created, err := svc.Register(context.Background(), validRecord("ds-001"))

	require.NoError(t, err)
	assert.True(t, created)

	got, err := svc.Get("ds-001")
	require.NoError(t, err)
	assert.Equal(t, "Agent Traces", got.Name)
	assert.Equal(t, "1.0.0", got.Version, "defaults must be applied")
	assert.False(t, got.CreatedAt.IsZero())

	history := svc.Versions("ds-001")
	require.Len(t, history, 1)
	assert.Equal(t, "1.0.0", history[0].Version)
	assert.Equal(t, datacommons.InitialVersionChanges, history[0].Changes)
}

func TestRegister_PersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "registry.json")
	svc := openService(t, path, nil)
	_, err := svc.Register(context.Background(), validRecord("ds-001"))
	require.NoError(t, err)

	reopened := openService(t, path, nil)

	got, err := reopened.Get("ds-001")
	require.NoError(t, err)
	assert.Equal(t, "Agent Traces", got.Name)
	assert.Len(t, reopened.Versions("ds-001"), 1)
}

func TestRegister_InvalidMetadata(t *testing.T) {
	path := filepath.Join(t.TempDir(), "registry.json")
	svc := openService(t, path, nil)

	record := validRecord("ds-001")
	record.Name = ""
	_, err := svc.Register(context.Background(), record)

	require.Error(t, err)
	assert.True(t, errors.Is(err, datacommons.ErrInvalidMetadata))

	// Nothing may be persisted on a validation failure.
	reopened := openService(t, path, nil)
	assert.Equal(t, 0, reopened.Len())
}

func TestRegister_OverwriteApproved(t *testing.T) {
	path := filepath.Join(t.TempDir(), "registry.json")
	approver := &mockApprover{approved: true}
	svc := openService(t, path, approver)

	_, err := svc.Register(context.Background(), validRecord("ds-001"))
	require.NoError(t, err)
	_, err = svc.Register(context.Background(), validRecord("ds-002"))
	require.NoError(t, err)

	updated := validRecord("ds-001")
	updated.Name = "Agent Traces v2"
	created, err := svc.Register(context.Background(), updated)

	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, []string{"ds-001"}, approver.requests, "approval is only requested for overwrites")

	// Overwrite keeps the original position and adds no version entry.
	snapshot := svc.Snapshot()
	require.Len(t, snapshot, 2)
	assert.Equal(t, "ds-001", snapshot[0].DatasetID)
	assert.Equal(t, "Agent Traces v2", snapshot[0].Name)
	assert.Len(t, svc.Versions("ds-001"), 1)
}

func TestRegister_OverwriteDenied(t *testing.T) {
	path := filepath.Join(t.TempDir(), "registry.json")
	svc := openService(t, path, &mockApprover{approved: false})

	original := validRecord("ds-001")
	_, err := svc.Register(context.Background(), original)
	require.NoError(t, err)

	updated := validRecord("ds-001")
	updated.Name = "Should Not Land"
	_, err = svc.Register(context.Background(), updated)

	require.Error(t, err)
	assert.True(t, errors.Is(err, datacommons.ErrApprovalDenied))

	got, err := svc.Get("ds-001")
	require.NoError(t, err)
	assert.Equal(t, "Agent Traces", got.Name, "denied overwrite must not change the record")
}

func TestRegister_ApproverError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "registry.json")
	approverErr := errors.New("terminal gone")
	svc := openService(t, path, &mockApprover{err: approverErr})

	_, err := svc.Register(context.Background(), validRecord("ds-001"))
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), validRecord("ds-001"))

	require.Error(t, err)
	assert.True(t, errors.Is(err, approverErr))
}

func TestGet_UnknownId(t *testing.T) {
	svc := openService(t, filepath.Join(t.TempDir(), "registry.json"), nil)

	_, err := svc.Get("nope")

	assert.True(t, errors.Is(err, datacommons.ErrDatasetNotFound))
}

func TestSearchAndList_Delegation(t *testing.T) {
	svc := openService(t, filepath.Join(t.TempDir(), "registry.json"), nil)
	_, err := svc.Register(context.Background(), validRecord("ds-001"))
	require.NoError(t, err)

	other := validRecord("ds-002")
	other.Name = "Weather Logs"
	other.Description = "station readings"
	other.Format = datacommons.FormatCSV
	other.Tags = []string{"weather"}
	_, err = svc.Register(context.Background(), other)
	require.NoError(t, err)

	results := svc.Search(datacommons.SearchFilter{Query: "react", Tags: []string{"agents"}})
	require.Len(t, results, 1)
	assert.Equal(t, "ds-001", results[0].DatasetID)

	page := svc.List(1, 1)
	require.Len(t, page, 1)
	assert.Equal(t, "ds-002", page[0].DatasetID)

	assert.Equal(t, 2, svc.Len())
}

func TestCreateVersion_PersistsAndBumps(t *testing.T) {
	path := filepath.Join(t.TempDir(), "registry.json")
	svc := openService(t, path, nil)
	_, err := svc.Register(context.Background(), validRecord("ds-001"))
	require.NoError(t, err)

	entry, err := svc.CreateVersion("ds-001", "Added reward column.")

	require.NoError(t, err)
	assert.Equal(t, "1.1.0", entry.Version)

	reopened := openService(t, path, nil)
	history := reopened.Versions("ds-001")
	require.Len(t, history, 2)
	assert.Equal(t, "Added reward column.", history[1].Changes)
}

func TestCreateVersion_UnregisteredIdAllowed(t *testing.T) {
	svc := openService(t, filepath.Join(t.TempDir(), "registry.json"), nil)

	entry, err := svc.CreateVersion("never-registered", "note")

	require.NoError(t, err)
	assert.Equal(t, "1.0.0", entry.Version)
	assert.Equal(t, 0, svc.Len())
}

func TestOpen_CorruptRegistryFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "registry.json")
	require.NoError(t, os.WriteFile(path, []byte("{broken"), 0o644))

	svc := NewService(store.New(path), catalog.New(), versions.NewManager(), &mockApprover{approved: true}, logging.NewNullLogger())

	assert.Error(t, svc.Open())
}
