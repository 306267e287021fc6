package cli

import (
	"errors"
	"io/fs"
	"path/filepath"
	"strings"
	"testing"

	"github.com/aumai/datacommons/pkg/datacommons"
)

func TestRunValidate_CleanFile(t *testing.T) {
	dataPath := filepath.Join(t.TempDir(), "data.jsonl")
	writeFile(t, dataPath, `{"trace_id": "t-1", "reward": 0.5}
{"trace_id": "t-2", "reward": 1.0}
`)

	resetValidateFlags()
	validateFlags.datasetPath = dataPath
	validateFlags.fields = []string{"trace_id=str", "reward=float"}

	if err := runValidate(validateCmd, nil); err != nil {
		t.Fatalf("Expected no error for a clean file, got: %v", err)
	}
}

func TestRunValidate_ProblemsFailValidation(t *testing.T) {
	dataPath := filepath.Join(t.TempDir(), "data.jsonl")
	writeFile(t, dataPath, `{"trace_id": 123}
`)

	resetValidateFlags()
	validateFlags.datasetPath = dataPath
	validateFlags.fields = []string{"trace_id=str", "reward=float"}

	err := runValidate(validateCmd, nil)
	if err == nil {
		t.Fatal("Expected error for a file with schema violations")
	}
	if !errors.Is(err, datacommons.ErrValidationFailed) {
		t.Errorf("Expected ErrValidationFailed, got: %v", err)
	}
	if !strings.Contains(err.Error(), "2 validation error(s)") {
		t.Errorf("Expected two problems to be counted, got: %v", err)
	}

	exitCode := datacommons.ExitCodeForError(err)
	if exitCode != datacommons.ExitValidationFailed {
		t.Errorf("Expected exit code %d, got %d", datacommons.ExitValidationFailed, exitCode)
	}
}

func TestRunValidate_SchemaDocument(t *testing.T) {
	dir := t.TempDir()
	dataPath := filepath.Join(dir, "data.jsonl")
	schemaPath := filepath.Join(dir, "schema.json")
	writeFile(t, dataPath, `{"trace_id": "t-1", "extra": true}
`)
	writeFile(t, schemaPath, `{"trace_id": "str"}`)

	resetValidateFlags()
	validateFlags.datasetPath = dataPath
	validateFlags.schemaPath = schemaPath

	if err := runValidate(validateCmd, nil); err != nil {
		t.Fatalf("Expected no error for a conforming file, got: %v", err)
	}
}

func TestRunValidate_MissingDatasetIsAProblem(t *testing.T) {
	resetValidateFlags()
	validateFlags.datasetPath = filepath.Join(t.TempDir(), "absent.jsonl")
	validateFlags.fields = []string{"trace_id=str"}

	err := runValidate(validateCmd, nil)
	if err == nil {
		t.Fatal("Expected a missing dataset file to fail validation")
	}
	if !errors.Is(err, datacommons.ErrValidationFailed) {
		t.Errorf("Expected ErrValidationFailed, got: %v", err)
	}

	exitCode := datacommons.ExitCodeForError(err)
	if exitCode != datacommons.ExitValidationFailed {
		t.Errorf("Expected exit code %d, got %d", datacommons.ExitValidationFailed, exitCode)
	}
}

func TestRunValidate_JSONOutputKeepsExitSemantics(t *testing.T) {
	dataPath := filepath.Join(t.TempDir(), "data.jsonl")
	writeFile(t, dataPath, `{"trace_id": 123}
`)

	resetValidateFlags()
	validateFlags.datasetPath = dataPath
	validateFlags.fields = []string{"trace_id=str"}
	validateFlags.json = true

	err := runValidate(validateCmd, nil)
	if err == nil {
		t.Fatal("Expected JSON mode to preserve the failure exit")
	}
	if !errors.Is(err, datacommons.ErrValidationFailed) {
		t.Errorf("Expected ErrValidationFailed, got: %v", err)
	}
}

func TestLoadValidationSchema(t *testing.T) {
	t.Run("builds schema from field pairs", func(t *testing.T) {
		s, err := loadValidationSchema("", []string{"trace_id=str", "reward=float"})
		if err != nil {
			t.Fatalf("Expected no error, got: %v", err)
		}
		if len(s) != 2 {
			t.Fatalf("Expected 2 schema fields, got %d", len(s))
		}
		if s[0].Name != "trace_id" || s[0].Type != "str" {
			t.Errorf("Expected first field trace_id=str, got %s=%s", s[0].Name, s[0].Type)
		}
	})

	t.Run("rejects malformed field pair", func(t *testing.T) {
		_, err := loadValidationSchema("", []string{"oops"})
		if err == nil {
			t.Fatal("Expected error for a pair without '='")
		}
		if !errors.Is(err, datacommons.ErrInvalidSchema) {
			t.Errorf("Expected ErrInvalidSchema, got: %v", err)
		}

		exitCode := datacommons.ExitCodeForError(err)
		if exitCode != datacommons.ExitConfigError {
			t.Errorf("Expected exit code %d, got %d", datacommons.ExitConfigError, exitCode)
		}
	})

	t.Run("reports missing schema file", func(t *testing.T) {
		_, err := loadValidationSchema(filepath.Join(t.TempDir(), "absent.json"), nil)
		if err == nil {
			t.Fatal("Expected error for a missing schema file")
		}
		if !errors.Is(err, fs.ErrNotExist) {
			t.Errorf("Expected fs.ErrNotExist, got: %v", err)
		}
	})

	t.Run("parses schema document by extension", func(t *testing.T) {
		schemaPath := filepath.Join(t.TempDir(), "schema.yaml")
		writeFile(t, schemaPath, "trace_id: str\nreward: float\n")

		s, err := loadValidationSchema(schemaPath, nil)
		if err != nil {
			t.Fatalf("Expected no error, got: %v", err)
		}
		if len(s) != 2 {
			t.Errorf("Expected 2 schema fields, got %d", len(s))
		}
	})
}
