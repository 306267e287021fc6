package checksum

import (
	"bytes"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/aumai/datacommons/pkg/datacommons"
)

func TestSHA256_DigestBytes_KnownVectors(t *testing.T) {
	calc := New()

	tests := []struct {
		name     string
		content  string
		expected string
	}{
		{
			name:     "Empty content",
			content:  "",
			expected: "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855",
		},
		{
			name:     "NIST vector abc",
			content:  "abc",
			expected: "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad",
		},
		{
			name:     "hello world",
			content:  "hello world",
			expected: "b94d27b9934d3e08a52e52d7da7dabfac484efe37a5380ee9088f7ace2efcde9",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := calc.DigestBytes([]byte(tt.content))
			if result != tt.expected {
				t.Errorf("DigestBytes(%q) = %s, want %s", tt.content, result, tt.expected)
			}
		})
	}
}

func TestSHA256_DigestFile_EmptyFile(t *testing.T) {
	calc := New()
	path := filepath.Join(t.TempDir(), "empty.jsonl")
	if err := os.WriteFile(path, nil, 0644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	digest, err := calc.DigestFile(path)
	if err != nil {
		t.Fatalf("DigestFile: %v", err)
	}

	// SHA-256 of zero bytes
	want := "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855"
	if digest != want {
		t.Errorf("DigestFile(empty) = %s, want %s", digest, want)
	}
}

func TestSHA256_DigestFile_MatchesDigestBytes(t *testing.T) {
	calc := New()

	// Content larger than one read block to exercise the streaming loop
	// across block boundaries.
	content := []byte(strings.Repeat(`{"trace_id": "t-0001", "reward": 0.25}`+"\n", 4096))
	if len(content) <= datacommons.HashBlockSize {
		t.Fatalf("fixture too small to cross a block boundary: %d bytes", len(content))
	}

	path := filepath.Join(t.TempDir(), "traces.jsonl")
	if err := os.WriteFile(path, content, 0644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	fromFile, err := calc.DigestFile(path)
	if err != nil {
		t.Fatalf("DigestFile: %v", err)
	}

	if fromBytes := calc.DigestBytes(content); fromFile != fromBytes {
		t.Errorf("streaming digest %s differs from in-memory digest %s", fromFile, fromBytes)
	}
}

func TestSHA256_DigestFile_Deterministic(t *testing.T) {
	calc := New()
	path := filepath.Join(t.TempDir(), "data.csv")
	if err := os.WriteFile(path, []byte("id,value\n1,3.14\n"), 0644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	first, err := calc.DigestFile(path)
	if err != nil {
		t.Fatalf("DigestFile: %v", err)
	}
	second, err := calc.DigestFile(path)
	if err != nil {
		t.Fatalf("DigestFile: %v", err)
	}

	if first != second {
		t.Errorf("DigestFile is not deterministic: %s != %s", first, second)
	}
}

func TestSHA256_DigestFile_DetectsSingleByteChange(t *testing.T) {
	calc := New()
	dir := t.TempDir()
	path := filepath.Join(dir, "data.jsonl")

	content := []byte(`{"action": "move", "reward": 1.0}` + "\n")
	if err := os.WriteFile(path, content, 0644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	original, err := calc.DigestFile(path)
	if err != nil {
		t.Fatalf("DigestFile: %v", err)
	}

	tampered := bytes.Clone(content)
	tampered[10] ^= 0x01
	if err := os.WriteFile(path, tampered, 0644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	changed, err := calc.DigestFile(path)
	if err != nil {
		t.Fatalf("DigestFile: %v", err)
	}

	if original == changed {
		t.Error("expected digest to change after flipping one byte")
	}
}

func TestSHA256_DigestFile_MissingFile(t *testing.T) {
	calc := New()

	_, err := calc.DigestFile(filepath.Join(t.TempDir(), "missing.jsonl"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("expected error wrapping fs.ErrNotExist, got: %v", err)
	}
}

func TestSHA256_DigestReader(t *testing.T) {
	calc := New()

	digest, err := calc.DigestReader(strings.NewReader("abc"))
	if err != nil {
		t.Fatalf("DigestReader: %v", err)
	}
	if want := "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad"; digest != want {
		t.Errorf("DigestReader(abc) = %s, want %s", digest, want)
	}
}
