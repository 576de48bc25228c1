package harness

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/roach88/numint/internal/integrate"
	"github.com/roach88/numint/internal/record"
	"github.com/roach88/numint/internal/store"
	"github.com/roach88/numint/internal/study"
	"github.com/roach88/numint/internal/testutil"
)

// Harness executes scenarios. When a store is attached, every case that
// yields a value is recorded as a run in the harness batch.
type Harness struct {
	store  *store.Store
	batch  string
	logger *slog.Logger
}

// Option configures a Harness.
type Option func(*Harness)

// WithStore records successful cases into st under the given batch.
func WithStore(st *store.Store, batch string) Option {
	return func(h *Harness) {
		h.store = st
		h.batch = batch
	}
}

// WithLogger sets the logger used for per-case debug output.
func WithLogger(logger *slog.Logger) Option {
	return func(h *Harness) {
		h.logger = logger
	}
}

// New creates a harness. Without options it records nothing and logs nothing.
func New(opts ...Option) *Harness {
	h := &Harness{
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Run executes a scenario with a fresh harness that records nothing.
func Run(scenario *Scenario) (*Result, error) {
	return New().Run(context.Background(), scenario)
}

// Run executes every case of the scenario in order and evaluates its
// expectation. The returned error is reserved for infrastructure failures
// (recording); expectation failures are reported in Result.Errors.
func (h *Harness) Run(ctx context.Context, scenario *Scenario) (*Result, error) {
	result := NewResult()

	for _, c := range scenario.Cases {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		out, run, err := h.executeCase(scenario.Name, c)
		if err != nil {
			return nil, fmt.Errorf("case %s: %w", c.Name, err)
		}

		if run != nil && h.store != nil {
			if _, err := h.store.WriteRun(ctx, *run); err != nil {
				return nil, fmt.Errorf("case %s: %w", c.Name, err)
			}
			out.RunID = run.ID
		}

		h.logger.Debug("case executed",
			"scenario", scenario.Name,
			"case", c.Name,
			"value", out.Value,
			"error", out.Error)

		result.Outcomes = append(result.Outcomes, out)
		if msg := checkExpect(c, out); msg != "" {
			result.AddError(msg)
		}
	}

	return result, nil
}

// executeCase performs one integration. A non-nil run is returned when the
// call produced a value.
func (h *Harness) executeCase(scenario string, c Case) (Outcome, *record.Run, error) {
	out := Outcome{Case: c.Name}

	var (
		kind   string
		params map[string]any
		value  float64
		err    error
	)
	switch {
	case c.Newton != nil:
		x, f := newtonSamples(c.Newton)
		kind = record.KindNewton
		params = record.NewtonParams(c.Newton.Alg, len(f), scenario+"/"+c.Name)
		value, err = integrate.Newton(x, f, newtonAlg(c.Newton))
	case c.Gauss != nil:
		integrand := gaussIntegrand(c.Gauss)
		npts := c.Gauss.Npts
		if npts == 0 {
			npts = integrate.DefaultPoints
		}
		kind = record.KindGauss
		params = record.GaussParams(integrand.Label, c.Gauss.Lims, npts)
		value, err = integrate.Gauss(integrand.F, c.Gauss.Lims, npts)
	default:
		return out, nil, fmt.Errorf("case has neither newton nor gauss")
	}

	if err != nil {
		out.Error = string(integrate.KindOf(err))
		if out.Error == "" {
			return out, nil, err
		}
		return out, nil, nil
	}
	out.Value = value

	run, err := record.NewRun(h.batch, kind, params, value)
	if err != nil {
		return out, nil, err
	}
	return out, &run, nil
}

func newtonAlg(n *NewtonCase) string {
	if n.Alg == "" {
		return integrate.DefaultAlgorithm
	}
	return n.Alg
}

func newtonSamples(n *NewtonCase) (x, f []float64) {
	x = n.X
	if n.Range != nil {
		x = testutil.Arange(n.Range.Start, n.Range.Stop, n.Range.Step)
	}
	f = n.F
	if n.Poly != nil {
		f = testutil.Sample(study.Polynomial(n.Poly...), x)
	}
	return x, f
}

func gaussIntegrand(g *GaussCase) study.Integrand {
	switch {
	case g.Poly != nil:
		return study.PolyIntegrand(g.Poly...)
	case g.Normal != nil:
		return study.NormalIntegrand(g.Normal.Mu, g.Normal.Sigma)
	default:
		return study.Integrand{Label: "none"}
	}
}
