package datacommons

import "time"

// Exit codes for semantic error classification.
// These follow Unix/GNU conventions:
//   - 0: Success
//   - 1: General error
//   - 2: CLI usage error (misuse of command line)
//   - 3+: Application-specific errors
const (
	ExitSuccess            = 0  // Operation completed successfully
	ExitGeneralError       = 1  // Unknown or unclassified error
	ExitUsageError         = 2  // CLI usage error (missing args, invalid flags)
	ExitPanic              = 3  // Internal panic (unexpected crash)
	ExitConfigError        = 10 // Invalid metadata, schema, or configuration
	ExitNotFound           = 11 // Unknown dataset id or missing file
	ExitValidationFailed   = 12 // Dataset file failed schema validation
	ExitVerificationFailed = 13 // Digest did not match the expected value
	ExitApprovalDenied     = 14 // User denied (or could not grant) overwrite approval
	ExitAccessDenied       = 15 // File exists but is not readable
)

const (
	// HashBlockSize is the read-block size used when streaming file
	// content through the digest accumulator. Memory use of a digest
	// is bounded by this regardless of file size.
	HashBlockSize = 64 * 1024

	// DefaultVersion is the version assigned to records that carry none.
	DefaultVersion = "1.0.0"

	// InitialVersionChanges is the change note attached to the version
	// entry created when a dataset is first registered.
	InitialVersionChanges = "Initial registration."

	// DefaultListLimit is the library-level page size for catalog listing.
	DefaultListLimit = 100

	// DefaultCLIListLimit is the page size the list command uses when
	// no --limit is given.
	DefaultCLIListLimit = 20

	// DefaultStoreFile is the registry file used when neither the
	// --store flag, the DATACOMMONS_STORE variable, nor the project
	// config names one.
	DefaultStoreFile = "datacommons.json"

	// DefaultForceApprovalCountdown is the countdown duration before a
	// forced overwrite proceeds.
	DefaultForceApprovalCountdown = 5 * time.Second
)
