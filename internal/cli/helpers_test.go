package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"

	"github.com/roach88/numint/internal/record"
)

// execute runs a command built by newCmd with args and returns stdout.
func execute(t *testing.T, format string, newCmd func(*RootOptions) *cobra.Command, args ...string) (string, error) {
	t.Helper()
	buf := &bytes.Buffer{}
	cmd := newCmd(&RootOptions{Format: format})
	cmd.SetOut(buf)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}

// decodeResponse parses a JSON CLIResponse with a generic data payload.
func decodeResponse(t *testing.T, out string) (CLIResponse, map[string]any) {
	t.Helper()
	var resp CLIResponse
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	data, _ := resp.Data.(map[string]any)
	return resp, data
}

// writeSamples writes a two-column sample file with f = x for x = 0..n-1.
func writeSamples(t *testing.T, n int) string {
	t.Helper()
	var buf bytes.Buffer
	buf.WriteString("# x f\n")
	for i := 0; i < n; i++ {
		v := float64(i)
		buf.WriteString(formatNumber(v) + " " + formatNumber(v) + "\n")
	}
	path := filepath.Join(t.TempDir(), "linear.txt")
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0644))
	return path
}

// fixBatch makes recorded batch tokens deterministic for one test.
func fixBatch(t *testing.T, tokens ...string) {
	t.Helper()
	prev := batchTokens
	batchTokens = record.NewFixedGenerator(tokens...)
	t.Cleanup(func() { batchTokens = prev })
}
