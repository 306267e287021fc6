package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var versionsCmd = &cobra.Command{
	Use:   "versions <dataset_id>",
	Short: "Show or extend a dataset's version history",
	Long: `Print the version history for a dataset id as a JSON array, oldest entry
first. An id with no history yields an empty array.

--create appends a new entry before printing: the first entry is 1.0.0,
later ones bump the minor version and reset the patch to 0. Entries are
immutable once created.

Examples:
  datacommons versions imdb-reviews
  datacommons versions imdb-reviews --create "Rebalanced the test split"`,
	Args:              RequireDatasetID,
	ValidArgsFunction: completeDatasetIDs,
	RunE:              runVersions,
}

type versionsFlagValues struct {
	create string
}

var versionsFlags versionsFlagValues

func init() {
	rootCmd.AddCommand(versionsCmd)

	versionsCmd.Flags().StringVar(&versionsFlags.create, "create", "", "Append a version entry with this change note first")
}

func runVersions(cmd *cobra.Command, args []string) error {
	datasetID := args[0]

	service, _, err := openReadOnlyRegistry(cmd)
	if err != nil {
		return err
	}

	if cmd.Flags().Changed("create") {
		entry, err := service.CreateVersion(datasetID, versionsFlags.create)
		if err != nil {
			return err
		}
		if !getQuietFlag(cmd) {
			fmt.Fprintf(os.Stderr, "✓ Created version %s for dataset '%s'\n", entry.Version, datasetID)
		}
	}

	return printJSON(service.Versions(datasetID))
}
