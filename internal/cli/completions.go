package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/aumai/datacommons/internal/scaffold"
	"github.com/aumai/datacommons/pkg/datacommons"
)

// completeDatasetIDs provides shell completion for registered dataset ids.
func completeDatasetIDs(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}

	service, _, err := openReadOnlyRegistry(cmd)
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}

	var matches []string
	for _, record := range service.Snapshot() {
		if strings.HasPrefix(record.DatasetID, toComplete) {
			matches = append(matches, record.DatasetID)
		}
	}

	return matches, cobra.ShellCompDirectiveNoFileComp
}

// completeFormats provides shell completion for dataset format flag values.
func completeFormats(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	var matches []string
	for _, format := range datacommons.DatasetFormats() {
		if strings.HasPrefix(format.String(), toComplete) {
			matches = append(matches, format.String())
		}
	}
	return matches, cobra.ShellCompDirectiveNoFileComp
}

// completeTemplateNames provides shell completion for template names.
func completeTemplateNames(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	templates, err := scaffold.ListTemplates()
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}

	var matches []string
	for _, t := range templates {
		if strings.HasPrefix(t, toComplete) {
			matches = append(matches, t)
		}
	}

	return matches, cobra.ShellCompDirectiveNoFileComp
}

// completeDirectories provides shell completion for directory paths.
func completeDirectories(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}

	// Let the shell handle directory completion
	return nil, cobra.ShellCompDirectiveFilterDirs
}
