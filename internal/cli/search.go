package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/aumai/datacommons/pkg/datacommons"
)

var searchCmd = &cobra.Command{
	Use:   "search",
	Short: "Search the dataset catalog",
	Long: `Search registered datasets by free text, format, and tags.

All conditions are combined: a record matches when the query is a substring
of its name or description (case-insensitive), the format matches exactly,
and every requested tag is present. With no flags, every record matches.

Matching records print to stdout as a JSON array; the summary line goes to
stderr so pipelines stay clean.

Examples:
  # Everything registered
  datacommons search

  # Free-text match on name and description
  datacommons search --query reviews

  # Narrow by format and tags
  datacommons search --format jsonl --tag nlp --tag sentiment`,
	Args: cobra.NoArgs,
	RunE: runSearch,
}

type searchFlagValues struct {
	query  string
	format string
	tags   []string
}

var searchFlags searchFlagValues

func init() {
	rootCmd.AddCommand(searchCmd)

	searchCmd.Flags().StringVar(&searchFlags.query, "query", "", "Substring matched against name and description")
	searchCmd.Flags().StringVar(&searchFlags.format, "format", "", "Exact format match (jsonl, csv, parquet, arrow)")
	searchCmd.Flags().StringArrayVar(&searchFlags.tags, "tag", nil, "Tag the record must carry (repeatable)")
	_ = searchCmd.RegisterFlagCompletionFunc("format", completeFormats)
}

func runSearch(cmd *cobra.Command, args []string) error {
	filter := datacommons.SearchFilter{
		Query: searchFlags.query,
		Tags:  searchFlags.tags,
	}

	if searchFlags.format != "" {
		format, err := datacommons.ParseDatasetFormat(searchFlags.format)
		if err != nil {
			return err
		}
		filter.Format = format
	}

	service, _, err := openReadOnlyRegistry(cmd)
	if err != nil {
		return err
	}

	matches := service.Search(filter)
	if err := printJSON(matches); err != nil {
		return err
	}

	if !getQuietFlag(cmd) {
		fmt.Fprintf(os.Stderr, "ℹ %d of %d dataset(s) matched\n", len(matches), service.Len())
	}
	return nil
}
