package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCommand(t *testing.T) {
	cmd := NewRootCommand()
	require.NotNil(t, cmd)
	assert.Equal(t, "numint", cmd.Use)
	assert.Contains(t, cmd.Long, "Gauss-Legendre")
}

func TestCommandPresence(t *testing.T) {
	cmd := NewRootCommand()
	commands := []string{"newton", "gauss", "history", "test"}

	for _, cmdName := range commands {
		t.Run(cmdName, func(t *testing.T) {
			subCmd, _, err := cmd.Find([]string{cmdName})
			require.NoError(t, err, "Command %s should exist", cmdName)
			require.NotNil(t, subCmd)
			assert.Equal(t, cmdName, subCmd.Name())
		})
	}
}

func TestGlobalFlags(t *testing.T) {
	cmd := NewRootCommand()

	verboseFlag := cmd.PersistentFlags().Lookup("verbose")
	require.NotNil(t, verboseFlag)
	assert.Equal(t, "v", verboseFlag.Shorthand)
	assert.Equal(t, "false", verboseFlag.DefValue)

	formatFlag := cmd.PersistentFlags().Lookup("format")
	require.NotNil(t, formatFlag)
	assert.Equal(t, "text", formatFlag.DefValue)
}

func TestNewtonCommandFlags(t *testing.T) {
	cmd := NewRootCommand()
	newtonCmd, _, err := cmd.Find([]string{"newton"})
	require.NoError(t, err)

	algFlag := newtonCmd.Flags().Lookup("alg")
	require.NotNil(t, algFlag)
	assert.Equal(t, "trap", algFlag.DefValue)

	for _, name := range []string{"window", "square", "converge", "db"} {
		assert.NotNil(t, newtonCmd.Flags().Lookup(name), "flag %s", name)
	}
}

func TestGaussCommandFlags(t *testing.T) {
	cmd := NewRootCommand()
	gaussCmd, _, err := cmd.Find([]string{"gauss"})
	require.NoError(t, err)

	nptsFlag := gaussCmd.Flags().Lookup("npts")
	require.NotNil(t, nptsFlag)
	assert.Equal(t, "3", nptsFlag.DefValue)

	for _, name := range []string{"poly", "normal", "lims", "converge", "db"} {
		assert.NotNil(t, gaussCmd.Flags().Lookup(name), "flag %s", name)
	}
}

func TestHistoryCommandFlags(t *testing.T) {
	cmd := NewRootCommand()
	historyCmd, _, err := cmd.Find([]string{"history"})
	require.NoError(t, err)

	dbFlag := historyCmd.Flags().Lookup("db")
	require.NotNil(t, dbFlag)
	// --db is required, so default is empty
	assert.Equal(t, "", dbFlag.DefValue)

	limitFlag := historyCmd.Flags().Lookup("limit")
	require.NotNil(t, limitFlag)
	assert.Equal(t, "20", limitFlag.DefValue)
}

func TestInvalidFormat(t *testing.T) {
	cmd := NewRootCommand()
	buf := &bytes.Buffer{}
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs([]string{"--format", "xml", "gauss", "--poly", "1", "--lims", "0,1"})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), `invalid format "xml"`)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}

func TestRootCommand_EndToEnd(t *testing.T) {
	cmd := NewRootCommand()
	buf := &bytes.Buffer{}
	errBuf := &bytes.Buffer{}
	cmd.SetOut(buf)
	cmd.SetErr(errBuf)
	cmd.SetArgs([]string{"-v", "gauss", "--poly", "6,1", "--lims", "0,8", "--npts", "1"})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, buf.String(), "integral = 80")
	assert.Contains(t, errBuf.String(), "Integrating poly(6,1)")
}
