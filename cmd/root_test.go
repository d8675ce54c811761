package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestRootCommandFlags verifies flag parsing.
func TestRootCommandFlags(t *testing.T) {
	rootCmd := &RootCommand{}
	cmd := rootCmd.GetCobraCommand()

	userFlag := cmd.PersistentFlags().Lookup("user")
	require.NotNil(t, userFlag)
	assert.Equal(t, "false", userFlag.DefValue)

	verboseFlag := cmd.PersistentFlags().Lookup("verbose")
	require.NotNil(t, verboseFlag)
	assert.Equal(t, "false", verboseFlag.DefValue)

	versionFlag := cmd.PersistentFlags().Lookup("podman-version")
	require.NotNil(t, versionFlag)
	assert.Equal(t, "", versionFlag.DefValue)
}

// TestRootCommandSubcommands verifies the expected subcommands are registered.
func TestRootCommandSubcommands(t *testing.T) {
	cmd := (&RootCommand{}).GetCobraCommand()

	names := make([]string, 0, len(cmd.Commands()))
	for _, sub := range cmd.Commands() {
		names = append(names, sub.Name())
	}
	assert.Contains(t, names, "generate")
	assert.Contains(t, names, "list")
	assert.Contains(t, names, "version")
}
