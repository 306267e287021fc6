package checksum

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

func benchmarkContent(size int) []byte {
	row := []byte(`{"trace_id": "t-0001", "action": "search", "reward": 0.5}` + "\n")
	return bytes.Repeat(row, size/len(row)+1)[:size]
}

func BenchmarkDigestBytes_1KB(b *testing.B) {
	calc := New()
	content := benchmarkContent(1 << 10)

	b.SetBytes(int64(len(content)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		calc.DigestBytes(content)
	}
}

func BenchmarkDigestBytes_1MB(b *testing.B) {
	calc := New()
	content := benchmarkContent(1 << 20)

	b.SetBytes(int64(len(content)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		calc.DigestBytes(content)
	}
}

func BenchmarkDigestFile_1MB(b *testing.B) {
	calc := New()
	content := benchmarkContent(1 << 20)
	path := filepath.Join(b.TempDir(), "bench.jsonl")
	if err := os.WriteFile(path, content, 0644); err != nil {
		b.Fatalf("WriteFile: %v", err)
	}

	b.SetBytes(int64(len(content)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := calc.DigestFile(path); err != nil {
			b.Fatal(err)
		}
	}
}
