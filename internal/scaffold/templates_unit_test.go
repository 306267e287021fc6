package scaffold

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/aumai/datacommons/internal/checksum"
	"github.com/aumai/datacommons/internal/files/filesystem"
	"github.com/aumai/datacommons/internal/files/scanner"
	"github.com/aumai/datacommons/internal/schema"
	"github.com/aumai/datacommons/pkg/datacommons"
)

// TestTemplateStructure validates the embedded template contents
// directly from the embedded FS, without filesystem I/O.
func TestTemplateStructure(t *testing.T) {
	efs := filesystem.NewEmbedFileSystem(templatesFS, "templates/default")

	t.Run("dataset.yaml exists", func(t *testing.T) {
		content, err := efs.ReadFile("dataset.yaml")
		require.NoError(t, err, "dataset.yaml should exist in template")
		require.NotEmpty(t, content)

		// Every metadata placeholder the writer substitutes must be present.
		for _, placeholder := range []string{
			"{{DATASET_ID}}",
			"{{DATASET_NAME}}",
			"{{DATASET_DESCRIPTION}}",
			"{{DATASET_FORMAT}}",
			"{{DATASET_LICENSE}}",
			"{{DATASET_TAGS}}",
			"{{DATASET_VERSION}}",
		} {
			require.Contains(t, string(content), placeholder)
		}
	})

	t.Run("schema.json parses", func(t *testing.T) {
		content, err := efs.ReadFile("schema.json")
		require.NoError(t, err, "schema.json should exist in template")

		s, err := schema.ParseJSON(content)
		require.NoError(t, err, "schema.json should be a valid schema document")
		require.NotEmpty(t, s)

		// Field order is part of the document.
		require.Equal(t, "id", s[0].Name)
	})

	t.Run("data.jsonl rows are valid JSON", func(t *testing.T) {
		content, err := efs.ReadFile("data.jsonl")
		require.NoError(t, err, "data.jsonl should exist in template")

		lines := strings.Split(strings.TrimSpace(string(content)), "\n")
		require.NotEmpty(t, lines)
		for _, line := range lines {
			require.True(t, json.Valid([]byte(line)), "line %q should be valid JSON", line)
		}
	})

	t.Run("README exists", func(t *testing.T) {
		content, err := efs.ReadFile("README.md")
		require.NoError(t, err, "README.md should exist in template")
		require.NotEmpty(t, content)
	})
}

// TestTemplateScan scans the embedded template through the dataset
// scanner, the same path `scan` takes over a real project directory.
func TestTemplateScan(t *testing.T) {
	efs := filesystem.NewEmbedFileSystem(templatesFS, "templates/default")
	s := scanner.NewScannerWithFS(checksum.New(), efs)

	result, err := s.ScanDirectory(".")
	require.NoError(t, err)
	require.Len(t, result.Files, 1, "template should contain exactly one dataset file")

	file := result.Files[0]
	require.Equal(t, "data.jsonl", file.Path)
	require.Equal(t, datacommons.FormatJSONL, file.Format)
	require.Equal(t, int64(2), file.NumRecords)
	require.NotEmpty(t, file.SHA256)
	require.NotEmpty(t, file.DatasetID)
}

// TestTemplatePlaceholdersResolve substitutes a full record through
// every template file and checks nothing is left unresolved.
func TestTemplatePlaceholdersResolve(t *testing.T) {
	meta := datacommons.DatasetMetadata{
		DatasetID:   "prod-traces",
		Name:        "Prod Traces",
		Description: "Traces captured in production",
		Format:      datacommons.FormatJSONL,
		License:     "internal",
		Tags:        []string{"traces"},
		Version:     "1.0.0",
	}

	s := NewScaffolder(false, false)
	efs := filesystem.NewEmbedFileSystem(templatesFS, "templates/default")

	for _, name := range []string{"dataset.yaml", "schema.json", "data.jsonl", "README.md"} {
		content, err := efs.ReadFile(name)
		require.NoError(t, err)

		processed := s.processTemplate(string(content), meta)
		require.NotContains(t, processed, "{{", "unresolved placeholder in %s", name)
		require.NotContains(t, processed, "}}", "unresolved placeholder in %s", name)
	}
}
