package integrate

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/mat"
)

// MinPoints and MaxPoints bound the supported Gauss-Legendre orders.
const (
	MinPoints = 1
	MaxPoints = 5
)

// validateNewton checks the Newton-Cotes preconditions in order and returns
// the normalized algorithm.
func validateNewton(x, f []float64, alg string) (Algorithm, error) {
	if err := checkLengths(len(x), len(f)); err != nil {
		return 0, err
	}
	a, err := ParseAlgorithm(alg)
	if err != nil {
		return 0, err
	}
	if err := checkSamples(len(x), a); err != nil {
		return 0, err
	}
	return a, nil
}

func checkLengths(nx, nf int) error {
	if nx != nf {
		return newError(KindLengthMismatch,
			map[string]string{"len_x": strconv.Itoa(nx), "len_f": strconv.Itoa(nf)},
			"x and f must have the same length (%d != %d)", nx, nf)
	}
	return nil
}

func checkSamples(m int, a Algorithm) error {
	if m < a.MinSamples() {
		return newError(KindInsufficientSamples,
			map[string]string{"samples": strconv.Itoa(m), "min": strconv.Itoa(a.MinSamples())},
			"%s rule needs at least %d samples, got %d", a, a.MinSamples(), m)
	}
	return nil
}

// checkVector verifies m is one-dimensional: a single row or a single column.
func checkVector(name string, m mat.Matrix) error {
	r, c := m.Dims()
	if r > 1 && c > 1 {
		return newError(KindDimension,
			map[string]string{"operand": name, "shape": fmt.Sprintf("%dx%d", r, c)},
			"%s must be one-dimensional, got shape %dx%d", name, r, c)
	}
	return nil
}

// seqLen mirrors the length of a sequence: a row vector counts its columns,
// anything else counts its rows.
func seqLen(m mat.Matrix) int {
	r, c := m.Dims()
	if r == 1 {
		return c
	}
	return r
}

// flatten copies a one-dimensional matrix into a slice.
func flatten(m mat.Matrix) []float64 {
	r, c := m.Dims()
	out := make([]float64, 0, r*c)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			out = append(out, m.At(i, j))
		}
	}
	return out
}

// validateGauss checks the Gauss-Legendre preconditions in order.
func validateGauss(f Func, lims []float64, npts int) error {
	if f == nil {
		return newError(KindNotCallable, nil, "integrand must be a non-nil function")
	}
	if len(lims) != 2 {
		return newError(KindBoundsLength,
			map[string]string{"len": strconv.Itoa(len(lims))},
			"lims must contain exactly two elements, got %d", len(lims))
	}
	for i, v := range lims {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return newError(KindBoundsType,
				map[string]string{"index": strconv.Itoa(i), "value": strconv.FormatFloat(v, 'g', -1, 64)},
				"bound %d must be a finite real number, got %v", i, v)
		}
	}
	if npts < MinPoints || npts > MaxPoints {
		return newError(KindUnsupportedOrder,
			map[string]string{"npts": strconv.Itoa(npts)},
			"npts must be between %d and %d, got %d", MinPoints, MaxPoints, npts)
	}
	return nil
}

// ParseBounds converts textual integration limits into a bounds slice.
// It fails with KindBoundsLength unless exactly two values are given and
// with KindBoundsType when a value is not a finite real number.
func ParseBounds(raw []string) ([]float64, error) {
	if len(raw) != 2 {
		return nil, newError(KindBoundsLength,
			map[string]string{"len": strconv.Itoa(len(raw))},
			"lims must contain exactly two elements, got %d", len(raw))
	}
	lims := make([]float64, 2)
	for i, s := range raw {
		v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, newError(KindBoundsType,
				map[string]string{"index": strconv.Itoa(i), "value": s},
				"bound %d must be a finite real number, got %q", i, s)
		}
		lims[i] = v
	}
	return lims, nil
}
