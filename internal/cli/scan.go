package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/aumai/datacommons/internal/checksum"
	"github.com/aumai/datacommons/internal/files/scanner"
	"github.com/aumai/datacommons/internal/ui"
	"github.com/aumai/datacommons/pkg/datacommons"
)

// scanFallbackLicense is stamped on scan-registered records when
// datacommons.yaml declares no default_license. Records must carry a
// license; a discovered file carries none of its own.
const scanFallbackLicense = "unknown"

var scanCmd = &cobra.Command{
	Use:   "scan <directory>",
	Short: "Discover dataset files in a directory tree",
	Long: `Recursively scan a directory for dataset files (.jsonl, .csv, .parquet,
.arrow) and print what was found as JSON: path, size, modification time,
streaming SHA-256 digest, record count, and a deterministic dataset id
derived from the relative path.

Record counts are line-based for jsonl and csv; the binary columnar
formats report 0. The derived id is stable across rescans of the same
tree, so repeated scans identify the same datasets.

--register upserts the discovered files into the registry as metadata
records. Ids that are already registered are left untouched.

Examples:
  datacommons scan ./datasets
  datacommons scan ./datasets --register`,
	Args:              RequireDirectoryPath,
	ValidArgsFunction: completeDirectories,
	RunE:              runScan,
}

type scanFlagValues struct {
	register bool
}

var scanFlags scanFlagValues

func init() {
	rootCmd.AddCommand(scanCmd)

	scanCmd.Flags().BoolVar(&scanFlags.register, "register", false, "Register discovered files not yet in the registry")
}

func runScan(cmd *cobra.Command, args []string) error {
	dirPath := args[0]
	verbose := getVerboseFlag(cmd)
	quiet := getQuietFlag(cmd)

	if verbose {
		fmt.Fprintf(os.Stderr, "[VERBOSE] Scanning %s\n", dirPath)
	}

	scanResult, err := scanner.NewScanner(checksum.New()).ScanDirectory(dirPath)
	if err != nil {
		return err
	}

	if err := printJSON(scanResult); err != nil {
		return err
	}
	if !quiet {
		fmt.Fprintf(os.Stderr, "ℹ Found %d dataset file(s) under %s\n", len(scanResult.Files), dirPath)
	}

	if !scanFlags.register {
		return nil
	}

	service, projectCfg, err := openRegistryWithConfig(cmd, ui.NewDenyingApprover())
	if err != nil {
		return err
	}

	registered := 0
	skipped := 0
	for _, file := range scanResult.Files {
		if _, err := service.Get(file.DatasetID); err == nil {
			skipped++
			if verbose {
				fmt.Fprintf(os.Stderr, "[VERBOSE] Skipping %s: dataset '%s' already registered\n", file.Path, file.DatasetID)
			}
			continue
		}

		record := recordFromScan(file)
		applyConfigDefaults(&record, projectCfg)
		if record.License == "" {
			record.License = scanFallbackLicense
		}

		if _, err := service.Register(cmd.Context(), record); err != nil {
			return fmt.Errorf("failed to register %s: %w", file.Path, err)
		}
		registered++
	}

	if !quiet {
		fmt.Fprintf(os.Stderr, "✓ Registered %d new dataset(s), %d already present\n", registered, skipped)
	}
	return nil
}

// recordFromScan builds a registrable record from one discovered file.
func recordFromScan(file datacommons.DatasetFileInfo) datacommons.DatasetMetadata {
	return datacommons.DatasetMetadata{
		DatasetID:   file.DatasetID,
		Name:        file.Name,
		Description: fmt.Sprintf("Discovered by scan at %s.", file.Path),
		Format:      file.Format,
		SizeBytes:   file.SizeBytes,
		NumRecords:  file.NumRecords,
	}
}
