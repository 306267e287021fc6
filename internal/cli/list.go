package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List registered datasets",
	Long: `List registered datasets as a JSON array, in registration order.

--limit caps the page size and --offset skips records from the start. The
default limit is 20, or default_limit from datacommons.yaml when set. An
offset past the end yields an empty array.

Examples:
  datacommons list
  datacommons list --limit 5 --offset 10`,
	Args: cobra.NoArgs,
	RunE: runList,
}

type listFlagValues struct {
	limit  int
	offset int
}

var listFlags listFlagValues

func init() {
	rootCmd.AddCommand(listCmd)

	listCmd.Flags().IntVar(&listFlags.limit, "limit", 0, "Maximum number of records to print (default 20)")
	listCmd.Flags().IntVar(&listFlags.offset, "offset", 0, "Number of records to skip")
}

func runList(cmd *cobra.Command, args []string) error {
	service, projectCfg, err := openReadOnlyRegistry(cmd)
	if err != nil {
		return err
	}

	limit := resolveListLimit(cmd, projectCfg, listFlags.limit)
	page := service.List(limit, listFlags.offset)

	if err := printJSON(page); err != nil {
		return err
	}

	if !getQuietFlag(cmd) {
		fmt.Fprintf(os.Stderr, "ℹ Showing %d of %d dataset(s)\n", len(page), service.Len())
	}
	return nil
}
