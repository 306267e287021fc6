// Package files provides file-related functionality organized into sub-packages.
//
// This package is split into the following sub-packages:
//   - filesystem: Filesystem abstraction interfaces and implementations (OS and in-memory)
//   - scanner: Dataset file discovery and metadata extraction
//
// # Usage
//
//	import (
//	    "github.com/aumai/datacommons/internal/files/filesystem"
//	    "github.com/aumai/datacommons/internal/files/scanner"
//	)
//
//	// Create scanner
//	fileScanner := scanner.NewScanner(checksum.New())
//	result, err := fileScanner.ScanDirectory("./datasets")
//
// # Organization
//
// Each sub-package is focused on a specific concern:
//   - filesystem: Provides filesystem abstraction for testability
//   - scanner: Handles file discovery, digest calculation, record counting, and identity derivation
package files
