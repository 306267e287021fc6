package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/aumai/datacommons/internal/tui"
	"github.com/aumai/datacommons/internal/tui/wizards"
	"github.com/aumai/datacommons/pkg/datacommons"
)

var registerCmd = &cobra.Command{
	Use:   "register",
	Short: "Register a dataset metadata record",
	Long: `Register a dataset in the catalog from a metadata config file.

The config is JSON or YAML, chosen by file extension, with the same field
names the registry file uses (dataset_id, name, description, format, ...).
Missing license and tags fall back to default_license and default_tags from
datacommons.yaml. A brand-new id also gets an initial version entry.

Re-registering an existing id replaces its record. On an interactive
terminal you confirm by typing the dataset id; --force replaces after a
countdown instead; a non-interactive run without --force refuses.

With --interactive the metadata is collected in a terminal wizard and no
config file is needed.

Examples:
  # Register from a config file
  datacommons register --config dataset.yaml

  # Replace an existing record without prompting
  datacommons register --config dataset.json --force

  # Collect the metadata in a wizard
  datacommons register --interactive`,
	Args: cobra.NoArgs,
	RunE: runRegister,
}

type registerFlagValues struct {
	configPath  string
	force       bool
	interactive bool
}

var registerFlags registerFlagValues

func init() {
	rootCmd.AddCommand(registerCmd)

	registerCmd.Flags().StringVar(&registerFlags.configPath, "config", "", "Metadata config file (.json, .yaml, or .yml)")
	registerCmd.Flags().BoolVar(&registerFlags.force, "force", false, "Overwrite an existing record without prompting")
	registerCmd.Flags().BoolVar(&registerFlags.interactive, "interactive", false, "Collect the metadata in a terminal wizard")
	registerCmd.MarkFlagsOneRequired("config", "interactive")
	registerCmd.MarkFlagsMutuallyExclusive("config", "interactive")
	_ = registerCmd.MarkFlagFilename("config", "json", "yaml", "yml")
}

func runRegister(cmd *cobra.Command, args []string) error {
	approver := selectApprover(cmd, registerFlags.force)
	service, projectCfg, err := openRegistryWithConfig(cmd, approver)
	if err != nil {
		return err
	}

	var record datacommons.DatasetMetadata
	if registerFlags.interactive {
		if !tui.IsInteractive() {
			return fmt.Errorf("the registration wizard needs a terminal: %w", datacommons.ErrNotInteractive)
		}
		initial := datacommons.DatasetMetadata{}
		applyConfigDefaults(&initial, projectCfg)
		result, err := wizards.RunDatasetWizard(initial)
		if err != nil {
			return err
		}
		if result.Cancelled {
			fmt.Fprintln(os.Stderr, "Registration cancelled.")
			return nil
		}
		record = result.Record
	} else {
		record, err = loadRecordConfig(registerFlags.configPath)
		if err != nil {
			return err
		}
	}
	applyConfigDefaults(&record, projectCfg)

	created, err := service.Register(cmd.Context(), record)
	if err != nil {
		return err
	}

	stored, err := service.Get(record.DatasetID)
	if err != nil {
		return err
	}

	if !getQuietFlag(cmd) {
		verb := "Updated"
		if created {
			verb = "Registered"
		}
		fmt.Fprintf(os.Stderr, "✓ %s dataset '%s' (version %s)\n", verb, stored.DatasetID, stored.Version)
	}
	return nil
}

// loadRecordConfig reads a metadata config file, choosing the syntax by
// the file name's extension: .yaml and .yml are YAML, .json is JSON.
func loadRecordConfig(path string) (datacommons.DatasetMetadata, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return datacommons.DatasetMetadata{}, fmt.Errorf("failed to read config file '%s': %w", path, err)
	}

	var record datacommons.DatasetMetadata
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &record); err != nil {
			return datacommons.DatasetMetadata{}, fmt.Errorf("config file '%s' is not valid YAML (%v): %w", path, err, datacommons.ErrInvalidMetadata)
		}
	case ".json":
		if err := json.Unmarshal(data, &record); err != nil {
			return datacommons.DatasetMetadata{}, fmt.Errorf("config file '%s' is not valid JSON (%v): %w", path, err, datacommons.ErrInvalidMetadata)
		}
	default:
		return datacommons.DatasetMetadata{}, fmt.Errorf("config file '%s' must end in .json, .yaml, or .yml: %w", path, datacommons.ErrInvalidMetadata)
	}
	return record, nil
}
