package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aumai/datacommons/internal/checksum"
	"github.com/aumai/datacommons/pkg/datacommons"
)

var hashCmd = &cobra.Command{
	Use:   "hash <file>",
	Short: "Compute the SHA-256 digest of a file",
	Long: `Stream a file through SHA-256 and print the result as JSON.

Memory use is bounded by a fixed block size regardless of file size. With
--expect the computed digest is compared against the given hex digest:
"verified" is true only on a match, and a mismatch exits 13. Without
--expect the digest is reported unverified. --dataset attaches a dataset id
to the result.

Examples:
  datacommons hash ./data/train.jsonl
  datacommons hash ./data/train.jsonl --expect 9f2ab3... --dataset imdb-reviews`,
	Args: RequireFilePath,
	RunE: runHash,
}

type hashFlagValues struct {
	expect    string
	datasetID string
}

var hashFlags hashFlagValues

func init() {
	rootCmd.AddCommand(hashCmd)

	hashCmd.Flags().StringVar(&hashFlags.expect, "expect", "", "Expected SHA-256 digest as lowercase hex")
	hashCmd.Flags().StringVar(&hashFlags.datasetID, "dataset", "", "Dataset id to attach to the result")
}

func runHash(cmd *cobra.Command, args []string) error {
	filePath := args[0]

	digest, err := checksum.New().DigestFile(filePath)
	if err != nil {
		return err
	}

	result := datacommons.DownloadResult{
		DatasetID: hashFlags.datasetID,
		Path:      filePath,
		SHA256:    digest,
	}

	expected := strings.ToLower(strings.TrimSpace(hashFlags.expect))
	if expected != "" {
		result.Verified = digest == expected
	}

	if err := printJSON(result); err != nil {
		return err
	}

	if expected != "" && !result.Verified {
		return fmt.Errorf("digest of %s is %s, expected %s: %w", filePath, digest, expected, datacommons.ErrVerificationFailed)
	}

	if expected != "" && !getQuietFlag(cmd) {
		fmt.Fprintln(os.Stderr, "✓ Digest verified")
	}
	return nil
}
