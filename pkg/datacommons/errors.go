package datacommons

import (
	"errors"
	"io/fs"
	"strings"
)

// Sentinel errors for common failure scenarios.
// These enable callers to distinguish error types using errors.Is().
//
// Example usage:
//
//	_, err := catalog.Get(id)
//	if errors.Is(err, datacommons.ErrDatasetNotFound) {
//	    // Handle unknown dataset id
//	}
var (
	// ErrDatasetNotFound indicates a catalog lookup missed.
	ErrDatasetNotFound = errors.New("dataset not found")

	// ErrInvalidMetadata indicates a dataset record failed validation.
	ErrInvalidMetadata = errors.New("invalid dataset metadata")

	// ErrInvalidSchema indicates a schema document could not be parsed.
	ErrInvalidSchema = errors.New("invalid schema")

	// ErrValidationFailed indicates a dataset file produced validation errors.
	ErrValidationFailed = errors.New("validation failed")

	// ErrVerificationFailed indicates a computed digest did not match the expected one.
	ErrVerificationFailed = errors.New("digest verification failed")

	// ErrApprovalDenied indicates the user denied approval for the operation.
	ErrApprovalDenied = errors.New("approval denied")

	// ErrNotInteractive indicates an operation required a terminal but none was attached.
	ErrNotInteractive = errors.New("not an interactive terminal")
)

// ExitCodeForError returns the appropriate exit code for an error.
// Returns ExitSuccess (0) for nil errors, semantic codes for known errors,
// and ExitGeneralError (1) for unclassified errors.
func ExitCodeForError(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// Check for sentinel errors
	switch {
	case errors.Is(err, ErrInvalidMetadata), errors.Is(err, ErrInvalidSchema):
		return ExitConfigError
	case errors.Is(err, ErrDatasetNotFound), errors.Is(err, fs.ErrNotExist):
		return ExitNotFound
	case errors.Is(err, ErrValidationFailed):
		return ExitValidationFailed
	case errors.Is(err, ErrVerificationFailed):
		return ExitVerificationFailed
	case errors.Is(err, ErrApprovalDenied), errors.Is(err, ErrNotInteractive):
		return ExitApprovalDenied
	case errors.Is(err, fs.ErrPermission):
		return ExitAccessDenied
	}

	// Cobra reports argument and flag misuse as plain errors;
	// classify them by message so the CLI exits with the usage code.
	errStr := err.Error()
	if strings.Contains(errStr, "unknown flag") ||
		strings.Contains(errStr, "unknown shorthand flag") ||
		strings.Contains(errStr, "unknown command") ||
		strings.Contains(errStr, "arg(s), received") ||
		strings.Contains(errStr, "required flag") ||
		strings.Contains(errStr, "flags in the group") ||
		strings.Contains(errStr, "invalid argument ") {
		return ExitUsageError
	}

	return ExitGeneralError
}
