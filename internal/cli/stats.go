package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/aumai/datacommons/internal/stats"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Compute statistics for a dataset file",
	Long: `Compute per-field statistics for a dataset file: row count, null counts,
and the distribution of dynamic types per field.

The result prints to stdout as indented JSON. Null counts omit fields with
zero nulls. A missing file reports {"error": "File not found: <path>"} and
still exits 0, so pipelines can collect stats across partially present
datasets.

Supported formats: jsonl and csv (csv values are reported as str).

Examples:
  datacommons stats --dataset data.jsonl
  datacommons stats --dataset eval.csv`,
	Args: cobra.NoArgs,
	RunE: runStats,
}

type statsFlagValues struct {
	datasetPath string
}

var statsFlags statsFlagValues

func init() {
	rootCmd.AddCommand(statsCmd)

	statsCmd.Flags().StringVar(&statsFlags.datasetPath, "dataset", "", "Dataset file to analyze (.jsonl or .csv)")
	_ = statsCmd.MarkFlagRequired("dataset")
	_ = statsCmd.MarkFlagFilename("dataset", "jsonl", "csv")
}

func runStats(cmd *cobra.Command, args []string) error {
	if getVerboseFlag(cmd) {
		fmt.Fprintf(os.Stderr, "[VERBOSE] Computing statistics for %s\n", statsFlags.datasetPath)
	}

	result, err := stats.New().Compute(statsFlags.datasetPath)
	if err != nil {
		var notFound *stats.NotFoundError
		if errors.As(err, &notFound) {
			// A missing file is part of the stats surface, not a failure.
			return printJSON(map[string]string{"error": notFound.Error()})
		}
		return err
	}

	return printJSON(result)
}
