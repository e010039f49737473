package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vvka-141/wppkg/internal/config"
	"github.com/vvka-141/wppkg/internal/markdown"
	"github.com/vvka-141/wppkg/internal/readme"
	"github.com/vvka-141/wppkg/internal/tui"
)

var readmeCmd = &cobra.Command{
	Use:   "readme <file>",
	Short: "Parse a standalone readme.txt",
	Long: `Parse a WordPress readme.txt file on its own.

The first line must be a "=== Name ===" title; otherwise the command exits
with code 13. Sections are rendered from markdown to sanitised HTML.

Examples:
  wppkg readme ./akismet/readme.txt
  wppkg readme ./readme.txt --json`,
	Args: RequireFilePath,
	RunE: runReadme,
}

var readmeFlags struct {
	output outputFlags
}

func init() {
	readmeCmd.Flags().BoolVar(&readmeFlags.output.json, "json", false, "Output as JSON")
	readmeCmd.Flags().BoolVar(&readmeFlags.output.yaml, "yaml", false, "Output as YAML")
	rootCmd.AddCommand(readmeCmd)
}

func resetReadmeFlags() {
	readmeFlags.output = outputFlags{}
}

func runReadme(cmd *cobra.Command, args []string) error {
	output, err := readmeFlags.output.override()
	if err != nil {
		return err
	}

	cc, err := setup(cmd, config.Overrides{Output: output})
	if err != nil {
		return err
	}
	defer cc.cleanup()

	content, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", args[0], err)
	}

	r, err := readme.NewParser(markdown.New(), cc.logger).Parse(string(content))
	if err != nil {
		return fmt.Errorf("%s: %w", args[0], err)
	}

	md := r.Metadata()
	return writeRecord(cmd.OutOrStdout(), cc.settings.Output, md, func(mode tui.Mode) string {
		return tui.RenderMetadata(md, mode)
	})
}
