package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/aumai/datacommons/internal/scaffold"
	"github.com/aumai/datacommons/internal/tui"
	"github.com/aumai/datacommons/internal/tui/wizards"
	"github.com/aumai/datacommons/pkg/datacommons"
)

var initCmd = &cobra.Command{
	Use:   "init [target_path]",
	Short: "Initialize a new dataset project",
	Long: `Initialize a dataset project into the target directory (default: the
current directory).

The project is scaffolded from an embedded template with:
- dataset.yaml metadata config, ready for 'datacommons register'
- schema.json validation schema
- data.jsonl sample data matching the schema
- README with usage instructions

On an interactive terminal the metadata is collected in a wizard; --id and
--name skip the wizard and fill the record directly, as do non-interactive
runs. The target directory must be empty unless --force is given.

Examples:
  datacommons init                      # Initialize in current directory
  datacommons init ./imdb-reviews       # Initialize in ./imdb-reviews
  datacommons init . --id imdb-reviews --name "IMDB Reviews"`,
	Args:              cobra.MaximumNArgs(1),
	ValidArgsFunction: completeDirectories,
	RunE:              runInit,
}

type initFlagValues struct {
	id       string
	name     string
	template string
	force    bool
	list     bool
}

var initFlags initFlagValues

func init() {
	rootCmd.AddCommand(initCmd)

	initCmd.Flags().StringVar(&initFlags.id, "id", "", "Dataset id for the scaffolded metadata")
	initCmd.Flags().StringVar(&initFlags.name, "name", "", "Human-readable dataset name")
	initCmd.Flags().StringVarP(&initFlags.template, "template", "t", "default", "Template to use")
	initCmd.Flags().BoolVar(&initFlags.force, "force", false, "Scaffold into a non-empty directory, overwriting existing files")
	initCmd.Flags().BoolVar(&initFlags.list, "list", false, "List available templates")
	_ = initCmd.RegisterFlagCompletionFunc("template", completeTemplateNames)
}

func runInit(cmd *cobra.Command, args []string) error {
	// Handle --list flag
	if initFlags.list {
		return runInitList()
	}

	targetPath := "."
	if len(args) > 0 {
		targetPath = args[0]
	}
	verbose := getVerboseFlag(cmd)

	// Validate template
	templates, err := scaffold.ListTemplates()
	if err != nil {
		return fmt.Errorf("failed to list templates: %w", err)
	}

	validTemplate := false
	for _, t := range templates {
		if t == initFlags.template {
			validTemplate = true
			break
		}
	}
	if !validTemplate {
		return fmt.Errorf("invalid template '%s'. Available templates: %v", initFlags.template, templates)
	}

	projectCfg, err := loadProjectConfig(".")
	if err != nil {
		return err
	}

	meta := defaultInitMetadata(targetPath)
	if initFlags.id != "" {
		meta.DatasetID = initFlags.id
	}
	if initFlags.name != "" {
		meta.Name = initFlags.name
	}
	applyConfigDefaults(&meta, projectCfg)

	// The wizard runs on interactive terminals unless the metadata flags
	// already answer its questions.
	flagsGiven := cmd.Flags().Changed("id") || cmd.Flags().Changed("name")
	if tui.IsInteractive() && !flagsGiven {
		result, err := wizards.RunDatasetWizard(meta)
		if err != nil {
			return err
		}
		if result.Cancelled {
			fmt.Fprintln(os.Stderr, "Init cancelled.")
			return nil
		}
		meta = result.Record
	}
	if meta.License == "" {
		meta.License = scanFallbackLicense
	}

	scaffolder := scaffold.NewScaffolder(verbose, initFlags.force)
	if err := scaffolder.CreateProject(meta, initFlags.template, targetPath); err != nil {
		return fmt.Errorf("failed to create project: %w", err)
	}

	// Display file tree
	tree, err := scaffold.BuildFileTree(targetPath)
	if err != nil {
		// Non-fatal - just skip tree display
		fmt.Fprintf(os.Stderr, "\n✓ Dataset project initialized in '%s' using template '%s'\n\n", targetPath, initFlags.template)
	} else {
		fmt.Fprintf(os.Stderr, "\n✓ Dataset project initialized using template '%s'\n\n", initFlags.template)
		fmt.Fprintln(os.Stderr, "Created structure:")
		fmt.Fprint(os.Stderr, tree)
	}

	// Next steps
	fmt.Fprintln(os.Stderr, "\nNext steps:")
	if targetPath != "." {
		fmt.Fprintf(os.Stderr, "  cd %s\n", targetPath)
	}
	fmt.Fprintln(os.Stderr, "  datacommons register --config dataset.yaml")
	fmt.Fprintln(os.Stderr, "  datacommons validate --dataset data.jsonl --schema schema.json")
	fmt.Fprintln(os.Stderr, "  datacommons stats --dataset data.jsonl")

	return nil
}

// runInitList prints the embedded template names.
func runInitList() error {
	templates, err := scaffold.ListTemplates()
	if err != nil {
		return fmt.Errorf("failed to list templates: %w", err)
	}
	fmt.Fprintln(os.Stderr, "Available templates:")
	for _, t := range templates {
		fmt.Fprintf(os.Stderr, "  %s\n", t)
	}
	return nil
}

// defaultInitMetadata derives starter metadata from the target directory.
func defaultInitMetadata(targetPath string) datacommons.DatasetMetadata {
	id := filepath.Base(targetPath)
	if id == "." || id == ".." {
		cwd, err := os.Getwd()
		if err == nil {
			id = filepath.Base(cwd)
		} else {
			id = "dataset"
		}
	}
	return datacommons.DatasetMetadata{
		DatasetID:   id,
		Name:        id,
		Description: "TODO: describe this dataset.",
		Format:      datacommons.FormatJSONL,
		Version:     datacommons.DefaultVersion,
	}
}
