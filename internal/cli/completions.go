package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/vvka-141/wppkg/internal/config"
)

// packageTypes contains valid --type values for shell completion.
var packageTypes = []string{"auto", "plugin", "theme"}

// logFormats contains valid --log-format values for shell completion.
var logFormats = []string{config.LogFormatText, config.LogFormatJSON}

// completePackageTypes provides shell completion for the --type flag.
func completePackageTypes(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	return filterPrefix(packageTypes, toComplete), cobra.ShellCompDirectiveNoFileComp
}

// completeLogFormats provides shell completion for the --log-format flag.
func completeLogFormats(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	return filterPrefix(logFormats, toComplete), cobra.ShellCompDirectiveNoFileComp
}

func filterPrefix(values []string, prefix string) []string {
	var matches []string
	for _, v := range values {
		if strings.HasPrefix(v, prefix) {
			matches = append(matches, v)
		}
	}
	return matches
}
