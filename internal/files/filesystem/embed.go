package filesystem

import (
	"embed"
	"fmt"
	"io"
	"io/fs"
	"path"
	"path/filepath"
	"strings"
)

// embedFile implements File for embed.FS
type embedFile struct {
	embedFS *embed.FS
	absPath string // path within embed.FS (always uses forward slashes)
	relPath string // relative path from root
	info    fs.FileInfo
}

func (f *embedFile) Path() string         { return f.absPath }
func (f *embedFile) RelativePath() string { return f.relPath }
func (f *embedFile) Info() FileInfo       { return f.info }

func (f *embedFile) ReadContent() ([]byte, error) {
	return f.embedFS.ReadFile(f.absPath)
}

// embedDirectory implements Directory for embed.FS
type embedDirectory struct {
	embedFS *embed.FS
	absPath string // path within embed.FS (always uses forward slashes)
	root    string // root path for calculating relative paths
}

func (d *embedDirectory) Path() string { return d.absPath }

func (d *embedDirectory) Walk(fn func(File, error) error) error {
	return fs.WalkDir(d.embedFS, d.absPath, func(filePath string, entry fs.DirEntry, err error) error {
		if err != nil {
			return fn(nil, err)
		}

		info, err := entry.Info()
		if err != nil {
			return fn(nil, fmt.Errorf("failed to get file info for %s: %w", filePath, err))
		}

		relPath, err := filepath.Rel(d.root, filePath)
		if err != nil {
			return fn(nil, fmt.Errorf("failed to calculate relative path: %w", err))
		}
		relPath = filepath.ToSlash(relPath)

		file := &embedFile{
			embedFS: d.embedFS,
			absPath: filePath,
			relPath: relPath,
			info:    info,
		}

		return fn(file, nil)
	})
}

// EmbedFileSystem adapts an embed.FS to the FileSystemProvider
// interface. The root names a subdirectory within the embed.FS that
// all relative paths resolve against, so embedded trees (scaffold
// templates, test fixtures) can be scanned and read like any other
// filesystem.
type EmbedFileSystem struct {
	embedFS embed.FS
	root    string // root path within the embed.FS (always uses forward slashes)
}

// NewEmbedFileSystem creates a filesystem provider wrapping an embed.FS
// rooted at the given subdirectory.
func NewEmbedFileSystem(embedFS embed.FS, root string) *EmbedFileSystem {
	return &EmbedFileSystem{
		embedFS: embedFS,
		root:    path.Clean(root),
	}
}

// resolve maps a caller path onto an absolute path inside the embed.FS.
// embed paths always use forward slashes, never a leading slash.
func (efs *EmbedFileSystem) resolve(p string) string {
	p = filepath.ToSlash(p)
	if p == "." || p == "" {
		return efs.root
	}
	if strings.HasPrefix(p, "/") {
		return path.Clean(strings.TrimPrefix(p, "/"))
	}
	return path.Clean(path.Join(efs.root, p))
}

// Open opens a directory at the specified path.
func (efs *EmbedFileSystem) Open(openPath string) (Directory, error) {
	absPath := efs.resolve(openPath)

	// ReadDir succeeds only for directories, which doubles as the
	// existence check.
	if _, err := efs.embedFS.ReadDir(absPath); err != nil {
		return nil, fmt.Errorf("failed to open directory %s: %w", openPath, err)
	}

	return &embedDirectory{
		embedFS: &efs.embedFS,
		absPath: absPath,
		root:    efs.root,
	}, nil
}

// OpenRead opens an embedded file for sequential streaming reads.
func (efs *EmbedFileSystem) OpenRead(filePath string) (io.ReadCloser, error) {
	absPath := efs.resolve(filePath)

	f, err := efs.embedFS.Open(absPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open file %s: %w", filePath, err)
	}
	return f, nil
}

// ReadFile reads an embedded file into memory.
func (efs *EmbedFileSystem) ReadFile(filePath string) ([]byte, error) {
	absPath := efs.resolve(filePath)

	content, err := efs.embedFS.ReadFile(absPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filePath, err)
	}
	return content, nil
}

// Verify EmbedFileSystem implements the interface at compile time
var _ FileSystemProvider = (*EmbedFileSystem)(nil)
