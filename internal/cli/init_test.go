package cli

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestRunInit_ScaffoldsDefaultTemplate(t *testing.T) {
	t.Setenv("DATACOMMONS_NON_INTERACTIVE", "1")
	projectDir := filepath.Join(t.TempDir(), "imdb-reviews")

	resetInitFlags()
	if err := runInit(initCmd, []string{projectDir}); err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	for _, name := range []string{"dataset.yaml", "schema.json", "data.jsonl", "README.md"} {
		if _, err := os.Stat(filepath.Join(projectDir, name)); err != nil {
			t.Errorf("Expected %s to be scaffolded: %v", name, err)
		}
	}

	data, err := os.ReadFile(filepath.Join(projectDir, "dataset.yaml"))
	if err != nil {
		t.Fatalf("Failed to read scaffolded config: %v", err)
	}
	content := string(data)
	if !strings.Contains(content, `dataset_id: "imdb-reviews"`) {
		t.Errorf("Expected id derived from directory name, got:\n%s", content)
	}
	if !strings.Contains(content, `license: "unknown"`) {
		t.Errorf("Expected fallback license, got:\n%s", content)
	}
	if strings.Contains(content, "{{") {
		t.Errorf("Expected all placeholders to be substituted, got:\n%s", content)
	}
}

func TestRunInit_AppliesFlagOverrides(t *testing.T) {
	t.Setenv("DATACOMMONS_NON_INTERACTIVE", "1")
	projectDir := filepath.Join(t.TempDir(), "scratch")

	resetInitFlags()
	initFlags.id = "prod-traces"
	initFlags.name = "Prod Traces"
	defer resetInitFlags()

	if err := runInit(initCmd, []string{projectDir}); err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(projectDir, "dataset.yaml"))
	if err != nil {
		t.Fatalf("Failed to read scaffolded config: %v", err)
	}
	content := string(data)
	if !strings.Contains(content, `dataset_id: "prod-traces"`) {
		t.Errorf("Expected id from --id flag, got:\n%s", content)
	}
	if !strings.Contains(content, `name: "Prod Traces"`) {
		t.Errorf("Expected name from --name flag, got:\n%s", content)
	}
}

func TestRunInit_DefaultsToCurrentDirectory(t *testing.T) {
	t.Setenv("DATACOMMONS_NON_INTERACTIVE", "1")
	chdir(t, t.TempDir())

	resetInitFlags()
	if err := runInit(initCmd, []string{}); err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	if _, err := os.Stat("dataset.yaml"); err != nil {
		t.Errorf("Expected dataset.yaml in the current directory: %v", err)
	}
}

func TestRunInit_InvalidTemplate(t *testing.T) {
	t.Setenv("DATACOMMONS_NON_INTERACTIVE", "1")

	resetInitFlags()
	initFlags.template = "nope"
	defer resetInitFlags()

	err := runInit(initCmd, []string{filepath.Join(t.TempDir(), "project")})
	if err == nil {
		t.Fatal("Expected error for an unknown template")
	}
	if !strings.Contains(err.Error(), "invalid template 'nope'") {
		t.Errorf("Expected invalid-template message, got: %v", err)
	}
}

func TestRunInit_RejectsNonEmptyDirectory(t *testing.T) {
	t.Setenv("DATACOMMONS_NON_INTERACTIVE", "1")
	projectDir := t.TempDir()
	writeFile(t, filepath.Join(projectDir, "existing.txt"), "already here\n")

	resetInitFlags()
	err := runInit(initCmd, []string{projectDir})
	if err == nil {
		t.Fatal("Expected error for a non-empty target directory")
	}

	initFlags.force = true
	defer resetInitFlags()
	if err := runInit(initCmd, []string{projectDir}); err != nil {
		t.Fatalf("Expected --force to scaffold anyway, got: %v", err)
	}
	if _, err := os.Stat(filepath.Join(projectDir, "dataset.yaml")); err != nil {
		t.Errorf("Expected scaffold to be created with --force: %v", err)
	}
}

func TestRunInit_ListTemplates(t *testing.T) {
	resetInitFlags()
	initFlags.list = true
	defer resetInitFlags()

	if err := runInit(initCmd, nil); err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
}
