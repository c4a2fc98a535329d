package cmd

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/oshokin/sunrise-alarm/internal/version"
)

// TestRootCommand_RequiresConfigPath rejects a missing positional argument.
func TestRootCommand_RequiresConfigPath(t *testing.T) {
	require.Error(t, rootCmd.Args(rootCmd, nil))
	require.Error(t, rootCmd.Args(rootCmd, []string{"a.yaml", "b.yaml"}))
	require.NoError(t, rootCmd.Args(rootCmd, []string{"alarm.yaml"}))
}

// TestRootCommand_SimulateIsHidden keeps the help output to the config argument.
func TestRootCommand_SimulateIsHidden(t *testing.T) {
	flag := rootCmd.Flags().Lookup("simulate")
	require.NotNil(t, flag)
	require.True(t, flag.Hidden)
}

// TestVersionSubcommand prints build metadata.
func TestVersionSubcommand(t *testing.T) {
	version.AttachCobraVersionCommand(rootCmd)

	var out bytes.Buffer

	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"version"})

	require.NoError(t, rootCmd.Execute())
	require.Contains(t, out.String(), version.Short())
}
