package harness

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/numint/internal/store"
)

func ptr(v float64) *float64 { return &v }

func TestRun_PassingScenario(t *testing.T) {
	scenario := &Scenario{
		Name: "passing",
		Cases: []Case{
			{
				Name:   "gauss_linear",
				Gauss:  &GaussCase{Poly: []float64{6, 1}, Lims: []float64{0, 8}, Npts: 1},
				Expect: Expect{Value: ptr(80)},
			},
			{
				Name:   "newton_linear",
				Newton: &NewtonCase{X: []float64{0, 0.5, 1, 1.5, 2}, F: []float64{0, 0.5, 1, 1.5, 2}, Alg: "Trap "},
				Expect: Expect{Value: ptr(2)},
			},
			{
				Name:   "no_integrand",
				Gauss:  &GaussCase{Lims: []float64{0, 1}},
				Expect: Expect{Error: "NOT_CALLABLE"},
			},
		},
	}

	result, err := Run(scenario)
	require.NoError(t, err)

	assert.True(t, result.Pass, "errors: %v", result.Errors)
	assert.Empty(t, result.Errors)
	require.Len(t, result.Outcomes, 3)
	assert.Equal(t, 80.0, result.Outcomes[0].Value)
	assert.Equal(t, 2.0, result.Outcomes[1].Value)
	assert.Equal(t, "NOT_CALLABLE", result.Outcomes[2].Error)
	for _, out := range result.Outcomes {
		assert.Empty(t, out.RunID, "nothing is recorded without a store")
	}
}

func TestRun_FailingExpectations(t *testing.T) {
	scenario := &Scenario{
		Name: "failing",
		Cases: []Case{
			{
				Name:   "wrong_value",
				Gauss:  &GaussCase{Poly: []float64{1}, Lims: []float64{0, 1}, Npts: 1},
				Expect: Expect{Value: ptr(2)},
			},
			{
				Name:   "unexpected_success",
				Gauss:  &GaussCase{Poly: []float64{1}, Lims: []float64{0, 1}, Npts: 1},
				Expect: Expect{Error: "UNSUPPORTED_ORDER"},
			},
			{
				Name:   "unexpected_error",
				Gauss:  &GaussCase{Poly: []float64{1}, Lims: []float64{0, 1}, Npts: 6},
				Expect: Expect{Value: ptr(1)},
			},
			{
				Name:   "wrong_kind",
				Gauss:  &GaussCase{Poly: []float64{1}, Lims: []float64{0, 1}, Npts: 6},
				Expect: Expect{Error: "BOUNDS_TYPE"},
			},
		},
	}

	result, err := Run(scenario)
	require.NoError(t, err)

	assert.False(t, result.Pass)
	require.Len(t, result.Errors, 4)
	assert.Contains(t, result.Errors[0], "wrong_value: expected 2")
	assert.Contains(t, result.Errors[1], "expected error UNSUPPORTED_ORDER, got value 1")
	assert.Contains(t, result.Errors[2], "got error UNSUPPORTED_ORDER")
	assert.Contains(t, result.Errors[3], "expected error BOUNDS_TYPE, got UNSUPPORTED_ORDER")
}

func TestRun_Tolerance(t *testing.T) {
	// 1-point Gauss on x² over [0, 1] gives 0.25 against an exact 1/3.
	c := Case{
		Name:   "loose",
		Gauss:  &GaussCase{Poly: []float64{0, 0, 1}, Lims: []float64{0, 1}, Npts: 1},
		Expect: Expect{Value: ptr(1.0 / 3.0), Tolerance: 0.5},
	}
	result, err := Run(&Scenario{Name: "tol", Cases: []Case{c}})
	require.NoError(t, err)
	assert.True(t, result.Pass)

	c.Expect.Tolerance = 0
	result, err = Run(&Scenario{Name: "tol", Cases: []Case{c}})
	require.NoError(t, err)
	assert.False(t, result.Pass)
}

func TestRun_NaNNeverMatches(t *testing.T) {
	c := Case{
		Name:   "nan",
		Newton: &NewtonCase{X: []float64{0, 1, 2}, F: []float64{0, nan(), 2}},
		Expect: Expect{Value: ptr(2), Tolerance: 1e300},
	}
	result, err := Run(&Scenario{Name: "nan", Cases: []Case{c}})
	require.NoError(t, err)
	assert.False(t, result.Pass)
}

func TestRun_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := New().Run(ctx, &Scenario{Name: "s", Cases: []Case{{
		Name:   "a",
		Gauss:  &GaussCase{Poly: []float64{1}, Lims: []float64{0, 1}},
		Expect: Expect{Value: ptr(1)},
	}}})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestHarness_RecordsRuns(t *testing.T) {
	st, err := store.Open(filepath.Join(t.TempDir(), "runs.db"))
	require.NoError(t, err)
	defer st.Close()

	scenario, err := LoadScenario("testdata/scenarios/gauss_exactness.yaml")
	require.NoError(t, err)

	ctx := context.Background()
	h := New(WithStore(st, "batch-1"))
	result, err := h.Run(ctx, scenario)
	require.NoError(t, err)
	require.True(t, result.Pass, "errors: %v", result.Errors)

	runs, err := st.ReadBatch(ctx, "batch-1")
	require.NoError(t, err)

	// Only cases that produced a value are recorded.
	var valued int
	for _, out := range result.Outcomes {
		if out.Error == "" {
			valued++
			assert.NotEmpty(t, out.RunID)
		} else {
			assert.Empty(t, out.RunID)
		}
	}
	assert.Len(t, runs, valued)
	for i, run := range runs {
		assert.Equal(t, "gauss", run.Kind)
		assert.Equal(t, int64(i+1), run.Seq)
	}

	// Re-running is idempotent: identical runs share their IDs.
	again, err := New(WithStore(st, "batch-2")).Run(ctx, scenario)
	require.NoError(t, err)
	assert.Equal(t, result.Outcomes, again.Outcomes)

	runs, err = st.ReadBatch(ctx, "batch-2")
	require.NoError(t, err)
	assert.Empty(t, runs)
}

func TestScenarioFiles(t *testing.T) {
	files, err := filepath.Glob("testdata/scenarios/*")
	require.NoError(t, err)
	require.NotEmpty(t, files)

	for _, path := range files {
		t.Run(filepath.Base(path), func(t *testing.T) {
			scenario, err := LoadScenario(path)
			require.NoError(t, err)

			result, err := RunWithGolden(t, scenario)
			require.NoError(t, err)
			assert.True(t, result.Pass, "errors: %v", result.Errors)
		})
	}
}

func TestGoldenFilesHaveScenarios(t *testing.T) {
	goldens, err := filepath.Glob("testdata/golden/*.golden")
	require.NoError(t, err)

	for _, g := range goldens {
		name := filepath.Base(g)
		name = name[:len(name)-len(".golden")]
		found := false
		for _, ext := range []string{".yaml", ".yml", ".cue"} {
			if _, err := os.Stat(filepath.Join("testdata/scenarios", name+ext)); err == nil {
				found = true
			}
		}
		assert.True(t, found, "golden %s has no scenario", g)
	}
}
