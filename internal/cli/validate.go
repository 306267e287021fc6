package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/aumai/datacommons/internal/schema"
	"github.com/aumai/datacommons/internal/validator"
	"github.com/aumai/datacommons/pkg/datacommons"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate a dataset file against a schema",
	Long: `Validate every record of a line-delimited JSON dataset file against a
declared schema.

The schema comes from a document (--schema, JSON or YAML by extension) or
from repeated --field name=type flags. Recognized types: str, int, float,
bool, list, dict. A field declared with any other type name is required
to be present but its type is not checked.

Each problem prints to stdout on its own line, in line order; --json
switches to a single {"valid": ..., "errors": [...]} object. The command
exits 12 when problems exist and 0 when the file is clean. A missing
dataset file is itself reported as a problem.

Examples:
  # Schema from a document
  datacommons validate --dataset data.jsonl --schema schema.json

  # Inline schema
  datacommons validate --dataset data.jsonl --field trace_id=str --field reward=float

  # Machine-readable result
  datacommons validate --dataset data.jsonl --schema schema.yaml --json`,
	Args: cobra.NoArgs,
	RunE: runValidate,
}

type validateFlagValues struct {
	datasetPath string
	schemaPath  string
	fields      []string
	json        bool
}

var validateFlags validateFlagValues

func init() {
	rootCmd.AddCommand(validateCmd)

	validateCmd.Flags().StringVar(&validateFlags.datasetPath, "dataset", "", "Dataset file to validate (.jsonl)")
	validateCmd.Flags().StringVar(&validateFlags.schemaPath, "schema", "", "Schema document (.json, .yaml, or .yml)")
	validateCmd.Flags().StringArrayVar(&validateFlags.fields, "field", nil, "Schema field as name=type (repeatable)")
	validateCmd.Flags().BoolVar(&validateFlags.json, "json", false, "Output the result as JSON")
	_ = validateCmd.MarkFlagRequired("dataset")
	validateCmd.MarkFlagsOneRequired("schema", "field")
	validateCmd.MarkFlagsMutuallyExclusive("schema", "field")
	_ = validateCmd.MarkFlagFilename("dataset", "jsonl")
	_ = validateCmd.MarkFlagFilename("schema", "json", "yaml", "yml")
}

func runValidate(cmd *cobra.Command, args []string) error {
	s, err := loadValidationSchema(validateFlags.schemaPath, validateFlags.fields)
	if err != nil {
		return err
	}

	if getVerboseFlag(cmd) {
		fmt.Fprintf(os.Stderr, "[VERBOSE] Validating %s against %d schema field(s)\n", validateFlags.datasetPath, len(s))
	}

	problems, err := validator.New().Validate(validateFlags.datasetPath, s)
	if err != nil {
		return err
	}

	if validateFlags.json {
		result := map[string]interface{}{
			"valid":  len(problems) == 0,
			"errors": problems,
		}
		if err := printJSON(result); err != nil {
			return err
		}
	} else {
		for _, problem := range problems {
			fmt.Println(problem)
		}
	}

	if len(problems) > 0 {
		return fmt.Errorf("%d validation error(s) in %s: %w", len(problems), validateFlags.datasetPath, datacommons.ErrValidationFailed)
	}

	if !validateFlags.json && !getQuietFlag(cmd) {
		fmt.Fprintf(os.Stderr, "✓ %s passed validation\n", validateFlags.datasetPath)
	}
	return nil
}

// loadValidationSchema builds the schema from --schema or --field flags.
func loadValidationSchema(schemaPath string, fieldPairs []string) (datacommons.Schema, error) {
	if schemaPath != "" {
		data, err := os.ReadFile(schemaPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read schema file '%s': %w", schemaPath, err)
		}
		return schema.ParseFile(schemaPath, data)
	}
	return schema.ParsePairs(fieldPairs)
}
