package cli

import (
	"bytes"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/vvka-141/wppkg/internal/config"
)

// resetFlags restores every flag to its default and clears Changed, so
// tests sharing the package-level commands do not leak state.
func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, sub := range cmd.Commands() {
		resetFlags(sub)
	}
}

// executeCommand runs the root command with args and captures its output.
func executeCommand(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()

	for _, key := range []string{
		config.EnvParseReadme, config.EnvType, config.EnvOutput, config.EnvLogFormat,
	} {
		t.Setenv(key, "")
	}
	t.Setenv("NO_COLOR", "1")

	resetFlags(rootCmd)
	resetInspectFlags()
	resetDetectFlags()
	resetReadmeFlags()
	resetHeadersFlags()

	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs(args)
	defer rootCmd.SetArgs(nil)

	err = rootCmd.Execute()
	return out.String(), errOut.String(), err
}
