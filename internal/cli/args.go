package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// RequireDatasetID validates that exactly one dataset_id argument is provided.
// Returns a helpful error message with usage and examples if missing or too many.
func RequireDatasetID(cmd *cobra.Command, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf(`missing required argument: <dataset_id>

Usage: %s

Example:
  %s imdb-reviews

Use 'datacommons list' to see registered datasets.`, cmd.UseLine(), cmd.CommandPath())
	}
	if len(args) > 1 {
		return fmt.Errorf("accepts 1 arg(s), received %d", len(args))
	}
	return nil
}

// RequireFilePath validates that exactly one file path argument is provided.
// Returns a helpful error message with usage and examples if missing or too many.
func RequireFilePath(cmd *cobra.Command, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf(`missing required argument: <file>

Usage: %s

Example:
  %s ./data/train.jsonl`, cmd.UseLine(), cmd.CommandPath())
	}
	if len(args) > 1 {
		return fmt.Errorf("accepts 1 arg(s), received %d", len(args))
	}
	return nil
}

// RequireDirectoryPath validates that exactly one directory argument is provided.
// Returns a helpful error message with usage and examples if missing or too many.
func RequireDirectoryPath(cmd *cobra.Command, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf(`missing required argument: <directory>

Usage: %s

Example:
  %s ./datasets`, cmd.UseLine(), cmd.CommandPath())
	}
	if len(args) > 1 {
		return fmt.Errorf("accepts 1 arg(s), received %d", len(args))
	}
	return nil
}
