package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/vvka-141/wppkg/internal/config"
	"github.com/vvka-141/wppkg/internal/files/scanner"
	"github.com/vvka-141/wppkg/internal/tui"
	"github.com/vvka-141/wppkg/pkg/wppkg"
)

var headersCmd = &cobra.Command{
	Use:   "headers <file>",
	Short: "Parse the plugin or theme header of a single file",
	Long: `Parse the header block of a plugin PHP file or a theme style.css.

Without --type the format is chosen the way packages are scanned: style.css
is read as a theme header, .php files as plugin headers. A header without a
name exits with code 14.

Examples:
  wppkg headers ./akismet/akismet.php
  wppkg headers ./twentytwenty/style.css --json
  wppkg headers ./main.php --type plugin`,
	Args: RequireFilePath,
	RunE: runHeaders,
}

var headersFlags struct {
	output outputFlags
	typ    string
}

func init() {
	headersCmd.Flags().BoolVar(&headersFlags.output.json, "json", false, "Output as JSON")
	headersCmd.Flags().BoolVar(&headersFlags.output.yaml, "yaml", false, "Output as YAML")
	headersCmd.Flags().StringVarP(&headersFlags.typ, "type", "t", "auto", "Header format: plugin, theme or auto")
	_ = headersCmd.RegisterFlagCompletionFunc("type", completePackageTypes)
	rootCmd.AddCommand(headersCmd)
}

func resetHeadersFlags() {
	headersFlags.output = outputFlags{}
	headersFlags.typ = "auto"
}

func runHeaders(cmd *cobra.Command, args []string) error {
	kind, err := wppkg.ParsePackageType(headersFlags.typ)
	if err != nil {
		return err
	}
	output, err := headersFlags.output.override()
	if err != nil {
		return err
	}

	cc, err := setup(cmd, config.Overrides{Output: output})
	if err != nil {
		return err
	}
	defer cc.cleanup()

	path := args[0]
	content, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}

	name := filepath.ToSlash(path)
	if kind == wppkg.TypeUndetermined {
		kind = guessHeaderKind(name)
		cc.logger.Verbose("Reading %s as a %s header", path, kind)
	}

	md, err := scanner.ParseHeader(kind, name, content)
	if err != nil {
		return err
	}

	return writeRecord(cmd.OutOrStdout(), cc.settings.Output, md, func(mode tui.Mode) string {
		return tui.RenderMetadata(md, mode)
	})
}

// guessHeaderKind picks the header format from the file name alone.
func guessHeaderKind(name string) wppkg.PackageType {
	if filepath.Base(name) == wppkg.StyleSheetName {
		return wppkg.TypeTheme
	}
	return wppkg.TypePlugin
}
