package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/roach88/numint/internal/integrate"
	"github.com/roach88/numint/internal/record"
	"github.com/roach88/numint/internal/samples"
	"github.com/roach88/numint/internal/study"
)

// NewtonOptions holds flags for the newton command.
type NewtonOptions struct {
	*RootOptions
	Alg      string
	Window   float64 // event window fraction; 0 keeps every sample
	Square   bool
	Converge []int // downsampling steps
	Database string
}

// NewtonResult is the output of the newton command.
type NewtonResult struct {
	File      string          `json:"file"`
	Alg       string          `json:"alg"`
	Samples   int             `json:"samples"`
	Value     *Number         `json:"value,omitempty"`
	RunID     string          `json:"run_id,omitempty"`
	Estimates []EstimateEntry `json:"estimates,omitempty"`
}

// EstimateEntry is one row of a convergence table.
type EstimateEntry struct {
	Level    int    `json:"level"`
	Value    Number `json:"value"`
	RelError Number `json:"rel_error"`
	RunID    string `json:"run_id,omitempty"`
}

// NewNewtonCommand creates the newton command.
func NewNewtonCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &NewtonOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "newton <data-file>",
		Short: "Integrate sampled data with a composite Newton-Cotes rule",
		Long: `Integrate a two-column (x, f(x)) sample file with the composite
trapezoidal ("trap") or Simpson ("simp") rule. Samples are assumed to be
equally spaced; the spacing is taken from the first two abscissas.

--window F keeps samples up to the last one whose |f| is at least F times
the peak |f|. --square integrates f² instead of f. --converge repeats the
integral after keeping every N-th sample for each listed N.

Exit codes:
  0 - Integral computed
  1 - Integration rejected the samples (E3xx)
  2 - Command error (file not found, malformed data, bad flags)

Examples:
  numint newton s_wave.txt
  numint newton s_wave.txt --alg simp --window 0.005 --square
  numint newton s_wave.txt --alg simp --converge 1,2,4 --db runs.db`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runNewton(cmd.Context(), opts, args[0], cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Alg, "alg", integrate.DefaultAlgorithm, "integration rule (trap|simp)")
	cmd.Flags().Float64Var(&opts.Window, "window", 0, "keep the event window above this fraction of the peak")
	cmd.Flags().BoolVar(&opts.Square, "square", false, "integrate the squared ordinates")
	cmd.Flags().IntSliceVar(&opts.Converge, "converge", nil, "downsampling steps for a convergence table")
	cmd.Flags().StringVar(&opts.Database, "db", "", "record runs in this SQLite database")

	return cmd
}

func runNewton(ctx context.Context, opts *NewtonOptions, path string, cmd *cobra.Command) error {
	if ctx == nil {
		ctx = context.Background()
	}
	formatter := newFormatter(opts.RootOptions, cmd)

	series, source, err := prepareSeries(opts, path)
	if err != nil {
		return formatter.Fail(err)
	}
	formatter.VerboseLog("Loaded %d sample(s) from %s", series.Len(), path)

	rec, err := openRecorder(opts.Database)
	if err != nil {
		return formatter.Fail(err)
	}
	defer rec.Close()

	result := NewtonResult{File: path, Alg: opts.Alg, Samples: series.Len()}

	if len(opts.Converge) > 0 {
		alg, err := integrate.ParseAlgorithm(opts.Alg)
		if err != nil {
			return formatter.Fail(err)
		}
		for _, step := range opts.Converge {
			if step < 1 {
				return formatter.Fail(&flagError{msg: fmt.Sprintf("--converge steps must be positive, got %d", step)})
			}
		}
		result.Alg = alg.String()
		estimates, err := study.Downsampling(series, alg, opts.Converge)
		if err != nil {
			return formatter.Fail(err)
		}
		for _, e := range estimates {
			n := (series.Len() + e.Level - 1) / e.Level
			params := record.NewtonParams(alg.String(), n, source+stepSuffix(e.Level))
			id, err := rec.record(ctx, record.KindNewton, params, e.Value)
			if err != nil {
				return formatter.Fail(err)
			}
			result.Estimates = append(result.Estimates, EstimateEntry{
				Level:    e.Level,
				Value:    Number(e.Value),
				RelError: Number(e.RelError),
				RunID:    id,
			})
		}
		slog.Debug("convergence table computed", "file", path, "levels", len(estimates))
		return outputNewton(formatter, result, rec.Batch())
	}

	value, err := integrate.Newton(series.X, series.F, opts.Alg)
	if err != nil {
		return formatter.Fail(err)
	}
	// Newton accepted the token, so it parses.
	alg, _ := integrate.ParseAlgorithm(opts.Alg)
	result.Alg = alg.String()
	params := record.NewtonParams(alg.String(), series.Len(), source)
	id, err := rec.record(ctx, record.KindNewton, params, value)
	if err != nil {
		return formatter.Fail(err)
	}
	v := Number(value)
	result.Value = &v
	result.RunID = id

	return outputNewton(formatter, result, rec.Batch())
}

// prepareSeries loads the file and applies --window and --square. The
// returned source describes the transformations for run records.
func prepareSeries(opts *NewtonOptions, path string) (*samples.Series, string, error) {
	series, err := samples.Load(path)
	if err != nil {
		return nil, "", err
	}
	source := path

	if opts.Window != 0 {
		series, err = series.EventWindow(opts.Window)
		if err != nil {
			return nil, "", &flagError{msg: fmt.Sprintf("--window: %v", err)}
		}
		source += "|window=" + strconv.FormatFloat(opts.Window, 'g', -1, 64)
	}
	if opts.Square {
		series = series.Squared()
		source += "|square"
	}
	return series, source, nil
}

func stepSuffix(step int) string {
	if step == 1 {
		return ""
	}
	return "|step=" + strconv.Itoa(step)
}

func outputNewton(formatter *OutputFormatter, result NewtonResult, batch string) error {
	if formatter.Format == "json" {
		return formatter.SuccessBatch(result, batch)
	}

	w := formatter.Writer
	fmt.Fprintf(w, "%s (%d samples, %s)\n", result.File, result.Samples, result.Alg)
	if result.Value != nil {
		fmt.Fprintf(w, "  integral = %s\n", formatNumber(float64(*result.Value)))
	} else {
		writeEstimates(w, "step", result.Estimates)
	}
	if batch != "" {
		fmt.Fprintf(w, "  recorded in batch %s\n", batch)
	}
	return nil
}

// writeEstimates prints a convergence table.
func writeEstimates(w io.Writer, level string, estimates []EstimateEntry) {
	fmt.Fprintf(w, "  %-6s %-22s %s\n", level, "value", "rel_error")
	for _, e := range estimates {
		fmt.Fprintf(w, "  %-6d %-22s %s\n", e.Level, formatNumber(float64(e.Value)), formatNumber(float64(e.RelError)))
	}
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
