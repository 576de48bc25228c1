package store

import (
	"path/filepath"
	"testing"

	"github.com/roach88/numint/internal/record"
)

// createTestStore creates a new store in a temp directory for testing.
func createTestStore(t *testing.T) *Store {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.db")
	s, err := Open(path)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

// createTestRun builds a run with a real content-addressed ID.
func createTestRun(t *testing.T, batch string, npts int, result float64) record.Run {
	t.Helper()
	run, err := record.NewRun(batch, record.KindGauss, map[string]any{
		"npts": npts,
		"lims": []float64{0, 1},
	}, result)
	if err != nil {
		t.Fatalf("NewRun() failed: %v", err)
	}
	return run
}
