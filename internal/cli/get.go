package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var getCmd = &cobra.Command{
	Use:   "get <dataset_id>",
	Short: "Show one dataset record",
	Long: `Print the registered record for a dataset id as indented JSON.

An unknown id reports an error and exits 11.

Examples:
  datacommons get imdb-reviews
  datacommons get imdb-reviews | jq .schema`,
	Args:              RequireDatasetID,
	ValidArgsFunction: completeDatasetIDs,
	RunE:              runGet,
}

func init() {
	rootCmd.AddCommand(getCmd)
}

func runGet(cmd *cobra.Command, args []string) error {
	datasetID := args[0]

	service, _, err := openReadOnlyRegistry(cmd)
	if err != nil {
		return err
	}

	record, err := service.Get(datasetID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "✗ Dataset '%s' is not registered\n", datasetID)
		return err
	}

	return printJSON(record)
}
