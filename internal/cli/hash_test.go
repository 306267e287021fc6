package cli

import (
	"errors"
	"io/fs"
	"path/filepath"
	"strings"
	"testing"

	"github.com/aumai/datacommons/internal/checksum"
	"github.com/aumai/datacommons/pkg/datacommons"
)

func TestRunHash_ComputesDigest(t *testing.T) {
	filePath := filepath.Join(t.TempDir(), "train.jsonl")
	writeFile(t, filePath, `{"a": 1}
`)

	resetHashFlags()
	if err := runHash(hashCmd, []string{filePath}); err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
}

func TestRunHash_ExpectedDigestMatches(t *testing.T) {
	content := `{"a": 1}
`
	filePath := filepath.Join(t.TempDir(), "train.jsonl")
	writeFile(t, filePath, content)

	resetHashFlags()
	hashFlags.expect = checksum.New().DigestBytes([]byte(content))

	if err := runHash(hashCmd, []string{filePath}); err != nil {
		t.Fatalf("Expected matching digest to verify, got: %v", err)
	}
}

func TestRunHash_ExpectedDigestIsCaseInsensitive(t *testing.T) {
	content := "verify me\n"
	filePath := filepath.Join(t.TempDir(), "notes.jsonl")
	writeFile(t, filePath, content)

	resetHashFlags()
	hashFlags.expect = "  " + strings.ToUpper(checksum.New().DigestBytes([]byte(content))) + "  "

	if err := runHash(hashCmd, []string{filePath}); err != nil {
		t.Fatalf("Expected normalized digest to verify, got: %v", err)
	}
}

func TestRunHash_ExpectedDigestMismatch(t *testing.T) {
	filePath := filepath.Join(t.TempDir(), "train.jsonl")
	writeFile(t, filePath, `{"a": 1}
`)

	resetHashFlags()
	hashFlags.expect = strings.Repeat("0", 64)

	err := runHash(hashCmd, []string{filePath})
	if err == nil {
		t.Fatal("Expected error for a digest mismatch")
	}
	if !errors.Is(err, datacommons.ErrVerificationFailed) {
		t.Errorf("Expected ErrVerificationFailed, got: %v", err)
	}

	exitCode := datacommons.ExitCodeForError(err)
	if exitCode != datacommons.ExitVerificationFailed {
		t.Errorf("Expected exit code %d, got %d", datacommons.ExitVerificationFailed, exitCode)
	}
}

func TestRunHash_MissingFile(t *testing.T) {
	resetHashFlags()

	err := runHash(hashCmd, []string{filepath.Join(t.TempDir(), "absent.jsonl")})
	if err == nil {
		t.Fatal("Expected error for a missing file")
	}
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("Expected fs.ErrNotExist, got: %v", err)
	}

	exitCode := datacommons.ExitCodeForError(err)
	if exitCode != datacommons.ExitNotFound {
		t.Errorf("Expected exit code %d, got %d", datacommons.ExitNotFound, exitCode)
	}
}
