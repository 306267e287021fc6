package filesystem

import (
	"io"
	"io/fs"
)

// FileInfo is an alias for fs.FileInfo from the standard library.
// This provides compatibility with the fs.FS ecosystem while maintaining
// a stable local type for our abstraction layer.
type FileInfo = fs.FileInfo

// File represents an individual file with its metadata and content accessor
type File interface {
	// Path returns the absolute path to the file
	Path() string

	// RelativePath returns the path relative to the scan root
	RelativePath() string

	// Info returns file metadata
	Info() FileInfo

	// ReadContent returns the file's content
	ReadContent() ([]byte, error)
}

// Directory represents a directory that can be traversed to discover files
type Directory interface {
	// Path returns the absolute path to the directory
	Path() string

	// Walk traverses the directory tree, calling the provided function for each file and directory
	// The function receives the file/directory and any error encountered
	// If the function returns an error, walking stops
	Walk(fn func(File, error) error) error
}

// FileSystemProvider abstracts the read-side filesystem operations the
// toolkit needs: directory traversal for scanning, whole-file reads for
// small config documents, and streaming reads for dataset files that
// must not be materialized at once.
//
// Missing paths produce errors satisfying errors.Is(err, fs.ErrNotExist)
// so callers can map them onto the not-found failure path.
type FileSystemProvider interface {
	// Open opens a directory at the specified path
	Open(path string) (Directory, error)

	// OpenRead opens the file at path for sequential streaming reads.
	// The caller owns the returned ReadCloser.
	OpenRead(path string) (io.ReadCloser, error)

	// ReadFile reads a specific file at the given path into memory
	ReadFile(path string) ([]byte, error)
}
