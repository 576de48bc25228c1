package cli

import (
	"context"
	"log/slog"

	"github.com/roach88/numint/internal/record"
	"github.com/roach88/numint/internal/store"
)

// batchTokens generates the batch token for each recording invocation.
var batchTokens record.TokenGenerator = record.UUIDv7Generator{}

// recorder writes runs to the store under one batch. A nil recorder
// records nothing, so commands can call it unconditionally.
type recorder struct {
	st    *store.Store
	batch string
}

// openRecorder opens the store at path. An empty path disables recording.
func openRecorder(path string) (*recorder, error) {
	if path == "" {
		return nil, nil
	}
	st, err := store.Open(path)
	if err != nil {
		return nil, &storeError{err: err}
	}
	return &recorder{st: st, batch: batchTokens.Generate()}, nil
}

// record stores one result and returns its run ID.
func (r *recorder) record(ctx context.Context, kind string, params map[string]any, value float64) (string, error) {
	if r == nil {
		return "", nil
	}
	run, err := record.NewRun(r.batch, kind, params, value)
	if err != nil {
		return "", &storeError{err: err}
	}
	inserted, err := r.st.WriteRun(ctx, run)
	if err != nil {
		return "", &storeError{err: err}
	}
	slog.Debug("run recorded", "id", run.ID, "batch", r.batch, "inserted", inserted)
	return run.ID, nil
}

// Batch returns the batch token, or "" when recording is disabled.
func (r *recorder) Batch() string {
	if r == nil {
		return ""
	}
	return r.batch
}

func (r *recorder) Close() {
	if r == nil {
		return
	}
	if err := r.st.Close(); err != nil {
		slog.Error("error closing database", "error", err)
	}
}
