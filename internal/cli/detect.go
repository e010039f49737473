package cli

import (
	"github.com/spf13/cobra"

	"github.com/vvka-141/wppkg/internal/config"
	"github.com/vvka-141/wppkg/internal/tui"
	"github.com/vvka-141/wppkg/pkg/extract"
	"github.com/vvka-141/wppkg/pkg/wppkg"
)

var detectCmd = &cobra.Command{
	Use:   "detect <package>",
	Short: "Print whether a package is a plugin or a theme",
	Long: `Detect the type of a WordPress package without parsing its readme.

Scanning stops at the first file carrying a valid plugin or theme header.
Exits with code 12 when the package is neither.

Examples:
  wppkg detect ./akismet.5.3.zip
  wppkg detect ./twentytwenty --json`,
	Args: RequirePackagePath,
	RunE: runDetect,
}

var detectFlags struct {
	output outputFlags
}

// detectResult is the machine-readable form of a detection.
type detectResult struct {
	Type wppkg.PackageType `json:"type" yaml:"type"`
	Slug string            `json:"slug" yaml:"slug"`
}

func init() {
	detectCmd.Flags().BoolVar(&detectFlags.output.json, "json", false, "Output as JSON")
	detectCmd.Flags().BoolVar(&detectFlags.output.yaml, "yaml", false, "Output as YAML")
	rootCmd.AddCommand(detectCmd)
}

func resetDetectFlags() {
	detectFlags.output = outputFlags{}
}

func runDetect(cmd *cobra.Command, args []string) error {
	output, err := detectFlags.output.override()
	if err != nil {
		return err
	}

	cc, err := setup(cmd, config.Overrides{Output: output})
	if err != nil {
		return err
	}
	defer cc.cleanup()

	pkg, err := extract.FromFile(args[0],
		extract.WithOptions(wppkg.Options{ParseReadme: false}),
		extract.WithLogger(cc.logger),
	)
	if err != nil {
		return err
	}

	result := detectResult{Type: pkg.Type, Slug: pkg.Slug}
	return writeRecord(cmd.OutOrStdout(), cc.settings.Output, result, func(mode tui.Mode) string {
		return tui.RenderDetected(args[0], pkg.Type, mode)
	})
}
