package harness

import (
	"fmt"
	"math"
)

// checkExpect compares an outcome with the case expectation and returns a
// failure message, or "" when the expectation holds.
func checkExpect(c Case, out Outcome) string {
	want := c.Expect
	if want.Error != "" {
		if out.Error == "" {
			return fmt.Sprintf("%s: expected error %s, got value %v", c.Name, want.Error, out.Value)
		}
		if out.Error != want.Error {
			return fmt.Sprintf("%s: expected error %s, got %s", c.Name, want.Error, out.Error)
		}
		return ""
	}

	if out.Error != "" {
		return fmt.Sprintf("%s: expected value %v, got error %s", c.Name, *want.Value, out.Error)
	}
	tol := want.Tolerance
	if tol == 0 {
		tol = DefaultTolerance
	}
	if diff := math.Abs(out.Value - *want.Value); !(diff <= tol) {
		return fmt.Sprintf("%s: expected %v ± %g, got %v (diff %g)", c.Name, *want.Value, tol, out.Value, diff)
	}
	return ""
}
