package store

import (
	"context"
	"fmt"

	"github.com/roach88/numint/internal/record"
)

// WriteRun inserts a run and assigns it the next logical seq.
// Uses ON CONFLICT(id) DO NOTHING - a run with an existing ID is silently
// ignored and keeps its original seq and batch.
//
// Returns true if a new row was inserted.
func (s *Store) WriteRun(ctx context.Context, run record.Run) (bool, error) {
	paramsJSON, err := marshalParams(run.Params)
	if err != nil {
		return false, fmt.Errorf("write run: %w", err)
	}

	// The upsert form of INSERT ... SELECT needs a WHERE clause to parse.
	res, err := s.db.ExecContext(ctx, `
		INSERT INTO runs (id, batch, seq, kind, params, result, version)
		SELECT ?, ?, COALESCE(MAX(seq), 0) + 1, ?, ?, ?, ?
		FROM runs WHERE true
		ON CONFLICT(id) DO NOTHING
	`,
		run.ID,
		run.Batch,
		run.Kind,
		paramsJSON,
		record.FormatResult(run.Result),
		run.Version,
	)
	if err != nil {
		return false, fmt.Errorf("write run: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("write run: %w", err)
	}
	return n == 1, nil
}
