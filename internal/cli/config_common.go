package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/aumai/datacommons/internal/catalog"
	"github.com/aumai/datacommons/internal/config"
	"github.com/aumai/datacommons/internal/logging"
	"github.com/aumai/datacommons/internal/registry"
	"github.com/aumai/datacommons/internal/store"
	"github.com/aumai/datacommons/internal/tui"
	"github.com/aumai/datacommons/internal/ui"
	"github.com/aumai/datacommons/internal/versions"
	"github.com/aumai/datacommons/pkg/datacommons"
)

// storeEnvVar overrides the registry file path when no --store flag is set.
const storeEnvVar = "DATACOMMONS_STORE"

// loadProjectConfig loads godotenv and project configuration.
// Returns nil config if datacommons.yaml does not exist (not an error).
func loadProjectConfig(sourcePath string) (*config.ProjectConfig, error) {
	_ = godotenv.Load()

	projectCfg, err := config.Load(sourcePath)
	if err != nil {
		if errors.Is(err, config.ErrConfigNotFound) {
			return nil, nil // Config file not found is not an error
		}
		return nil, fmt.Errorf("failed to load %s: %w", config.ConfigFileName, err)
	}
	return projectCfg, nil
}

// resolveStorePath picks the registry file.
// Priority (highest to lowest): --store flag > DATACOMMONS_STORE > datacommons.yaml > built-in default.
func resolveStorePath(cmd *cobra.Command, projectCfg *config.ProjectConfig) string {
	if flagStore := getStoreFlag(cmd); flagStore != "" {
		return flagStore
	}
	if envStore := os.Getenv(storeEnvVar); envStore != "" {
		return envStore
	}
	if projectCfg != nil && projectCfg.Store != "" {
		return projectCfg.Store
	}
	return datacommons.DefaultStoreFile
}

// resolveListLimit returns the effective page size, preferring an explicit
// --limit flag over datacommons.yaml over the built-in default.
func resolveListLimit(cmd *cobra.Command, projectCfg *config.ProjectConfig, flagLimit int) int {
	if cmd.Flags().Changed("limit") {
		return flagLimit
	}
	if projectCfg != nil && projectCfg.DefaultLimit > 0 {
		return projectCfg.DefaultLimit
	}
	return datacommons.DefaultCLIListLimit
}

// applyConfigDefaults fills license and tags from datacommons.yaml when the
// record carries none. Values the record already declares are never touched.
func applyConfigDefaults(record *datacommons.DatasetMetadata, projectCfg *config.ProjectConfig) {
	if projectCfg == nil {
		return
	}
	if record.License == "" && projectCfg.DefaultLicense != "" {
		record.License = projectCfg.DefaultLicense
	}
	if len(record.Tags) == 0 && len(projectCfg.DefaultTags) > 0 {
		record.Tags = append([]string(nil), projectCfg.DefaultTags...)
	}
}

// selectApprover picks the overwrite approver: --force takes the countdown
// approver, interactive terminals get the typed-confirmation prompt, and
// non-interactive runs without --force refuse.
func selectApprover(cmd *cobra.Command, force bool) datacommons.Approver {
	verbose := getVerboseFlag(cmd)
	switch {
	case force:
		return ui.NewForcedApprover(verbose)
	case tui.IsInteractive():
		return ui.NewInteractiveApprover(verbose)
	default:
		return ui.NewDenyingApprover()
	}
}

// newLogger builds the console logger from the persistent output flags.
func newLogger(cmd *cobra.Command) datacommons.Logger {
	return logging.NewConsoleLogger(getVerboseFlag(cmd), getQuietFlag(cmd))
}

// openReadOnlyRegistry opens the registry for commands that never trigger
// the overwrite workflow. The approver slot is filled with the denying
// approver, which these commands never invoke.
func openReadOnlyRegistry(cmd *cobra.Command) (*registry.Service, *config.ProjectConfig, error) {
	return openRegistryWithConfig(cmd, ui.NewDenyingApprover())
}

// openRegistryWithConfig loads the project config, resolves the store path,
// and opens a registry service wired with the given approver. The config is
// returned alongside for commands that resolve defaults from it.
func openRegistryWithConfig(cmd *cobra.Command, approver datacommons.Approver) (*registry.Service, *config.ProjectConfig, error) {
	projectCfg, err := loadProjectConfig(".")
	if err != nil {
		return nil, nil, err
	}

	storePath := resolveStorePath(cmd, projectCfg)
	if getVerboseFlag(cmd) {
		fmt.Fprintf(os.Stderr, "[VERBOSE] Registry store: %s\n", storePath)
	}

	service := registry.NewService(
		store.New(storePath),
		catalog.New(),
		versions.NewManager(),
		approver,
		newLogger(cmd),
	)
	if err := service.Open(); err != nil {
		return nil, nil, fmt.Errorf("failed to open registry store '%s': %w", storePath, err)
	}
	return service, projectCfg, nil
}

// printJSON writes v to stdout as indented JSON.
func printJSON(v interface{}) error {
	jsonBytes, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	fmt.Println(string(jsonBytes))
	return nil
}
