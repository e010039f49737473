package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// RequirePackagePath validates that exactly one package argument is provided.
// Returns a helpful error message with usage and examples if missing or too many.
func RequirePackagePath(cmd *cobra.Command, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf(`missing required argument: <package>

Usage: %s

Example:
  %s ./akismet.5.3.zip`, cmd.UseLine(), cmd.CommandPath())
	}
	if len(args) > 1 {
		return fmt.Errorf("accepts 1 arg(s), received %d", len(args))
	}
	return nil
}

// RequireFilePath validates that exactly one file argument is provided.
func RequireFilePath(cmd *cobra.Command, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf(`missing required argument: <file>

Usage: %s`, cmd.UseLine())
	}
	if len(args) > 1 {
		return fmt.Errorf("accepts 1 arg(s), received %d", len(args))
	}
	return nil
}
