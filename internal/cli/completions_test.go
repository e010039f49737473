package cli

import (
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
)

func TestCompletePackageTypes(t *testing.T) {
	matches, directive := completePackageTypes(inspectCmd, nil, "p")
	assert.Equal(t, []string{"plugin"}, matches)
	assert.Equal(t, cobra.ShellCompDirectiveNoFileComp, directive)

	matches, _ = completePackageTypes(inspectCmd, nil, "")
	assert.Equal(t, []string{"auto", "plugin", "theme"}, matches)
}

func TestCompleteLogFormats(t *testing.T) {
	matches, _ := completeLogFormats(rootCmd, nil, "j")
	assert.Equal(t, []string{"json"}, matches)

	matches, _ = completeLogFormats(rootCmd, nil, "x")
	assert.Empty(t, matches)
}
