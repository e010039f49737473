package cli

import (
	"github.com/spf13/cobra"

	"github.com/vvka-141/wppkg/internal/config"
	"github.com/vvka-141/wppkg/internal/tui"
	"github.com/vvka-141/wppkg/pkg/extract"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect <package>",
	Short: "Extract metadata from a plugin or theme package",
	Long: `Extract the metadata of a WordPress plugin or theme package.

The package is a .zip file or an unpacked package directory. Its type is
detected from the first file carrying a valid header: style.css for themes,
a top-level .php file for plugins. readme.txt fields are merged in, with
header fields taking precedence.

Examples:
  # Human-readable summary
  wppkg inspect ./akismet.5.3.zip

  # JSON for registries and scripts
  wppkg inspect ./akismet.5.3.zip --json

  # Headers only, stop at the first valid header
  wppkg inspect ./twentytwenty --no-readme --type theme`,
	Args: RequirePackagePath,
	RunE: runInspect,
}

var inspectFlags struct {
	output   outputFlags
	typ      string
	noReadme bool
}

func init() {
	inspectCmd.Flags().BoolVar(&inspectFlags.output.json, "json", false, "Output as JSON")
	inspectCmd.Flags().BoolVar(&inspectFlags.output.yaml, "yaml", false, "Output as YAML")
	inspectCmd.Flags().StringVarP(&inspectFlags.typ, "type", "t", "auto", "Package type: plugin, theme or auto")
	inspectCmd.Flags().BoolVar(&inspectFlags.noReadme, "no-readme", false, "Skip readme.txt and stop at the first valid header")
	_ = inspectCmd.RegisterFlagCompletionFunc("type", completePackageTypes)
	rootCmd.AddCommand(inspectCmd)
}

func resetInspectFlags() {
	inspectFlags.output = outputFlags{}
	inspectFlags.typ = "auto"
	inspectFlags.noReadme = false
}

func runInspect(cmd *cobra.Command, args []string) error {
	var overrides config.Overrides
	output, err := inspectFlags.output.override()
	if err != nil {
		return err
	}
	overrides.Output = output
	if cmd.Flags().Changed("type") {
		overrides.Type = &inspectFlags.typ
	}
	if cmd.Flags().Changed("no-readme") {
		parse := !inspectFlags.noReadme
		overrides.ParseReadme = &parse
	}

	cc, err := setup(cmd, overrides)
	if err != nil {
		return err
	}
	defer cc.cleanup()

	cc.logger.Verbose("Inspecting %s", args[0])
	pkg, err := extract.FromFile(args[0],
		extract.WithOptions(cc.settings.Options),
		extract.WithLogger(cc.logger),
	)
	if err != nil {
		return err
	}

	return writeRecord(cmd.OutOrStdout(), cc.settings.Output, pkg, func(mode tui.Mode) string {
		return tui.RenderPackage(pkg, mode)
	})
}
