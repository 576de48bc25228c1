package harness

import (
	"strconv"
	"testing"

	"github.com/sebdah/goldie/v2"

	"github.com/roach88/numint/internal/record"
)

// snapshotDigits is the number of significant digits kept for values in
// golden snapshots.
const snapshotDigits = 12

// Snapshot is the golden-file form of a scenario result.
type Snapshot struct {
	ScenarioName string
	Outcomes     []Outcome
}

// Canonical renders the snapshot as canonical JSON. Run IDs are left out
// so snapshots do not depend on whether a store was attached.
func (s *Snapshot) Canonical() ([]byte, error) {
	cases := make([]any, len(s.Outcomes))
	for i, out := range s.Outcomes {
		entry := map[string]any{"case": out.Case}
		if out.Error != "" {
			entry["error"] = out.Error
		} else {
			entry["value"] = FormatValue(out.Value)
		}
		cases[i] = entry
	}
	return record.MarshalCanonical(map[string]any{
		"scenario": s.ScenarioName,
		"cases":    cases,
	})
}

// FormatValue renders v with snapshotDigits significant digits.
func FormatValue(v float64) string {
	return strconv.FormatFloat(v, 'g', snapshotDigits, 64)
}

// RunWithGolden executes a scenario and compares its outcomes against
// testdata/golden/{scenario.Name}.golden.
//
// To regenerate golden files, run:
//
//	go test ./internal/harness -update
func RunWithGolden(t *testing.T, scenario *Scenario) (*Result, error) {
	t.Helper()

	result, err := Run(scenario)
	if err != nil {
		return nil, err
	}
	if err := AssertGolden(t, scenario.Name, result); err != nil {
		return nil, err
	}
	return result, nil
}

// AssertGolden compares an existing result against a golden file without
// re-running the scenario.
func AssertGolden(t *testing.T, scenarioName string, result *Result) error {
	t.Helper()

	snapshot := Snapshot{ScenarioName: scenarioName, Outcomes: result.Outcomes}
	data, err := snapshot.Canonical()
	if err != nil {
		return err
	}

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, scenarioName, data)
	return nil
}
