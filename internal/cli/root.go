package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vvka-141/wppkg/internal/config"
	"github.com/vvka-141/wppkg/internal/logging"
	"github.com/vvka-141/wppkg/pkg/wppkg"
)

var rootCmd = &cobra.Command{
	Use:   "wppkg",
	Short: "WordPress plugin and theme metadata extractor",
	Long: `wppkg reads the metadata of WordPress plugin and theme packages
without executing any of their code.

It detects whether a .zip (or unpacked directory) is a plugin or a theme,
parses the plugin/theme header and the readme.txt, and reports the merged
result as text, JSON or YAML.

Configuration is read from wppkg.yaml and .env in the working directory,
WPPKG_* environment variables and flags, in increasing priority.

Exit Codes:
  0  - Success
  1  - General error
  2  - CLI usage error (invalid arguments or flags)
  3  - Panic or unexpected system error
  10 - Invalid configuration
  11 - Package path missing, unreadable or not a zip
  12 - Package type could not be determined
  13 - File is not a structured readme
  14 - File has no valid plugin/theme header`,
	SilenceUsage: true,
}

var rootFlags struct {
	verbose   bool
	logFormat string
}

// Execute runs the root command
func Execute() error {
	if len(os.Args) > 1 && os.Args[1] == "--version" {
		printVersionInfo(rootCmd.OutOrStdout())
		return nil
	}
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&rootFlags.verbose, "verbose", "v", false, "Enable verbose output for all commands")
	rootCmd.PersistentFlags().StringVar(&rootFlags.logFormat, "log-format", config.LogFormatText, "Log format: text or json")
	_ = rootCmd.RegisterFlagCompletionFunc("log-format", completeLogFormats)
}

// resolveSettings merges config sources with the flags explicitly set on cmd.
func resolveSettings(cmd *cobra.Command, overrides config.Overrides) (config.Settings, error) {
	if cmd.Flags().Changed("log-format") {
		overrides.LogFormat = &rootFlags.logFormat
	}
	return config.Resolve(".", overrides)
}

// newLogger creates the logger selected by the log format.
// The returned cleanup flushes buffered output.
func newLogger(cmd *cobra.Command, format string) (wppkg.Logger, func(), error) {
	if format == config.LogFormatJSON {
		zl, err := logging.NewZapLogger(rootFlags.verbose)
		if err != nil {
			return nil, nil, err
		}
		return zl, func() { _ = zl.Sync() }, nil
	}
	return logging.NewConsoleLoggerTo(cmd.ErrOrStderr(), rootFlags.verbose), func() {}, nil
}

// commandContext bundles what every package command needs.
type commandContext struct {
	settings config.Settings
	logger   wppkg.Logger
	cleanup  func()
}

func setup(cmd *cobra.Command, overrides config.Overrides) (*commandContext, error) {
	settings, err := resolveSettings(cmd, overrides)
	if err != nil {
		return nil, fmt.Errorf("configuration: %w", err)
	}
	logger, cleanup, err := newLogger(cmd, settings.LogFormat)
	if err != nil {
		return nil, err
	}
	return &commandContext{settings: settings, logger: logger, cleanup: cleanup}, nil
}
