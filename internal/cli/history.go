package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/numint/internal/record"
	"github.com/roach88/numint/internal/store"
)

// HistoryOptions holds flags for the history command.
type HistoryOptions struct {
	*RootOptions
	Database string
	Batch    string // optional - one batch only
	Limit    int
}

// HistoryEntry is one recorded run as shown by the history command.
type HistoryEntry struct {
	Seq     int64          `json:"seq"`
	ID      string         `json:"id"`
	Batch   string         `json:"batch"`
	Kind    string         `json:"kind"`
	Params  map[string]any `json:"params"`
	Result  Number         `json:"result"`
	Version string         `json:"version"`
}

// HistoryResult holds the listed runs.
type HistoryResult struct {
	Runs  []HistoryEntry `json:"runs"`
	Total int            `json:"total"`
}

// NewHistoryCommand creates the history command.
func NewHistoryCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &HistoryOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List recorded integration runs",
		Long: `List runs recorded with --db, oldest first.

Without --batch the most recent --limit runs are shown. With --batch every
run of that batch is shown.

Examples:
  numint history --db runs.db
  numint history --db runs.db --limit 5 --format json
  numint history --db runs.db --batch 0190a7c2-...`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runHistory(cmd.Context(), opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Database, "db", "", "path to SQLite database (required)")
	_ = cmd.MarkFlagRequired("db")
	cmd.Flags().StringVar(&opts.Batch, "batch", "", "show one batch only")
	cmd.Flags().IntVar(&opts.Limit, "limit", 20, "maximum number of runs to show")

	return cmd
}

func runHistory(ctx context.Context, opts *HistoryOptions, cmd *cobra.Command) error {
	if ctx == nil {
		ctx = context.Background()
	}
	formatter := newFormatter(opts.RootOptions, cmd)

	if opts.Limit < 1 {
		return formatter.Fail(&flagError{msg: fmt.Sprintf("--limit must be positive, got %d", opts.Limit)})
	}

	st, err := store.Open(opts.Database)
	if err != nil {
		return formatter.Fail(&storeError{err: err})
	}
	defer st.Close()

	var runs []record.Run
	if opts.Batch != "" {
		runs, err = st.ReadBatch(ctx, opts.Batch)
	} else {
		runs, err = st.ReadRuns(ctx, opts.Limit)
	}
	if err != nil {
		return formatter.Fail(&storeError{err: err})
	}

	result := HistoryResult{Runs: make([]HistoryEntry, 0, len(runs)), Total: len(runs)}
	for _, r := range runs {
		result.Runs = append(result.Runs, HistoryEntry{
			Seq:     r.Seq,
			ID:      r.ID,
			Batch:   r.Batch,
			Kind:    r.Kind,
			Params:  r.Params,
			Result:  Number(r.Result),
			Version: r.Version,
		})
	}

	if opts.Format == "json" {
		return formatter.Success(result)
	}
	return outputHistoryText(formatter, result)
}

func outputHistoryText(formatter *OutputFormatter, result HistoryResult) error {
	w := formatter.Writer
	if result.Total == 0 {
		fmt.Fprintln(w, "No runs found.")
		return nil
	}

	for _, r := range result.Runs {
		params, err := record.MarshalCanonical(r.Params)
		if err != nil {
			return formatter.Fail(err)
		}
		fmt.Fprintf(w, "%4d  %-6s  %-22s  %s\n", r.Seq, r.Kind, formatNumber(float64(r.Result)), params)
		formatter.VerboseLog("  id=%s batch=%s version=%s", r.ID, r.Batch, r.Version)
	}
	fmt.Fprintf(w, "\n%d run(s)\n", result.Total)
	return nil
}
