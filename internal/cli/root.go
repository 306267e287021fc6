package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

const asciiLogo = "     _       _\n" +
	"  __| | __ _| |_ __ _  ___ ___  _ __ ___  _ __ ___   ___  _ __  ___\n" +
	" / _` |/ _` | __/ _` |/ __/ _ \\| '_ ` _ \\| '_ ` _ \\ / _ \\| '_ \\/ __|\n" +
	"| (_| | (_| | || (_| | (_| (_) | | | | | | | | | | | (_) | | | \\__ \\\n" +
	" \\__,_|\\__,_|\\__\\__,_|\\___\\___/|_| |_| |_|_| |_| |_|\\___/|_| |_|___/"

var rootCmd = &cobra.Command{
	Use:   "datacommons",
	Short: "Local dataset registry and data-quality toolkit",
	Long: asciiLogo + `

datacommons keeps a local catalog of dataset metadata in plain JSON files:
register records, search and page through them, validate data files against
lightweight schemas, compute content statistics, and fingerprint files with
streaming SHA-256.

No server, no database, no network. The registry is a file you can read,
diff, and commit next to your data.

Exit Codes:
  0  - Success
  1  - General error
  2  - CLI usage error (invalid arguments or flags)
  3  - Panic or unexpected system error
  10 - Invalid metadata, schema, or configuration
  11 - Dataset id or file not found
  12 - Dataset file failed schema validation
  13 - Digest verification failed
  14 - Overwrite approval denied
  15 - File access denied`,
	SilenceUsage: true,
}

// Execute runs the root command
func Execute() error {
	if len(os.Args) > 1 && os.Args[1] == "--version" {
		printVersionInfo()
		return nil
	}
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().Bool("help", false, "Help for datacommons")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose output for all commands")
	rootCmd.PersistentFlags().BoolP("quiet", "q", false, "Suppress informational output (JSON results still print)")
	rootCmd.PersistentFlags().String("store", "", "Registry file (default: $DATACOMMONS_STORE, then datacommons.yaml, then datacommons.json)")
}

// getVerboseFlag safely retrieves the verbose flag value
func getVerboseFlag(cmd *cobra.Command) bool {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Failed to get verbose flag: %v\n", err)
		return false
	}
	return verbose
}

// getQuietFlag safely retrieves the quiet flag value
func getQuietFlag(cmd *cobra.Command) bool {
	quiet, err := cmd.Flags().GetBool("quiet")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Failed to get quiet flag: %v\n", err)
		return false
	}
	return quiet
}

// getStoreFlag safely retrieves the store flag value
func getStoreFlag(cmd *cobra.Command) string {
	store, err := cmd.Flags().GetString("store")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Failed to get store flag: %v\n", err)
		return ""
	}
	return store
}
