package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/roach88/numint/internal/record"
)

const runColumns = `id, batch, seq, kind, params, result, version`

// ReadRun retrieves a single run by ID.
// Returns sql.ErrNoRows if not found.
func (s *Store) ReadRun(ctx context.Context, id string) (record.Run, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+runColumns+` FROM runs WHERE id = ?`, id)
	return scanRun(row)
}

// ReadRuns returns the most recent runs, oldest first.
// A limit of zero or less returns every run.
func (s *Store) ReadRuns(ctx context.Context, limit int) ([]record.Run, error) {
	if limit <= 0 {
		return s.queryRuns(ctx, `
			SELECT `+runColumns+` FROM runs
			ORDER BY seq ASC, id COLLATE BINARY ASC
		`)
	}
	return s.queryRuns(ctx, `
		SELECT `+runColumns+` FROM (
			SELECT `+runColumns+` FROM runs
			ORDER BY seq DESC, id COLLATE BINARY DESC
			LIMIT ?
		)
		ORDER BY seq ASC, id COLLATE BINARY ASC
	`, limit)
}

// ReadBatch returns every run recorded under a batch token.
// Returns an empty slice (not nil) if the batch has no runs.
func (s *Store) ReadBatch(ctx context.Context, batch string) ([]record.Run, error) {
	return s.queryRuns(ctx, `
		SELECT `+runColumns+` FROM runs
		WHERE batch = ?
		ORDER BY seq ASC, id COLLATE BINARY ASC
	`, batch)
}

func (s *Store) queryRuns(ctx context.Context, query string, args ...any) ([]record.Run, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query runs: %w", err)
	}
	defer rows.Close()

	runs := []record.Run{}
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		runs = append(runs, run)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate runs: %w", err)
	}
	return runs, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanRun(row scanner) (record.Run, error) {
	var (
		run        record.Run
		paramsJSON string
		resultText string
	)
	err := row.Scan(&run.ID, &run.Batch, &run.Seq, &run.Kind, &paramsJSON, &resultText, &run.Version)
	if err == sql.ErrNoRows {
		return record.Run{}, err
	}
	if err != nil {
		return record.Run{}, fmt.Errorf("scan run: %w", err)
	}

	if run.Params, err = unmarshalParams(paramsJSON); err != nil {
		return record.Run{}, err
	}
	if run.Result, err = record.ParseResult(resultText); err != nil {
		return record.Run{}, fmt.Errorf("parse result %q: %w", resultText, err)
	}
	return run, nil
}
