package integrate

import (
	"gonum.org/v1/gonum/mat"
)

// Newton integrates uniformly spaced samples with a composite Newton-Cotes
// rule selected by alg ("trap" or "simp", case-insensitive, surrounding
// whitespace ignored).
//
// The spacing is taken once as x[1]-x[0] and used for every segment.
// Non-uniform spacing is not detected and yields an incorrect estimate.
func Newton(x, f []float64, alg string) (float64, error) {
	a, err := validateNewton(x, f, alg)
	if err != nil {
		return 0, err
	}
	return newton(x, f, a), nil
}

// NewtonWith is Newton with an already-parsed Algorithm.
func NewtonWith(x, f []float64, alg Algorithm) (float64, error) {
	if err := checkLengths(len(x), len(f)); err != nil {
		return 0, err
	}
	if alg != Trapezoidal && alg != Simpson {
		return 0, newError(KindUnknownAlgorithm, nil, "unknown algorithm %d", int(alg))
	}
	if err := checkSamples(len(x), alg); err != nil {
		return 0, err
	}
	return newton(x, f, alg), nil
}

// NewtonMatrix integrates samples held in gonum matrices. Each operand must
// be a row or column vector; any other shape fails with KindDimension.
func NewtonMatrix(x, f mat.Matrix, alg string) (float64, error) {
	if err := checkLengths(seqLen(x), seqLen(f)); err != nil {
		return 0, err
	}
	if err := checkVector("x", x); err != nil {
		return 0, err
	}
	if err := checkVector("f", f); err != nil {
		return 0, err
	}
	return Newton(flatten(x), flatten(f), alg)
}

func newton(x, f []float64, alg Algorithm) float64 {
	dx := x[1] - x[0]
	if alg == Trapezoidal {
		return trapezoid(f, dx)
	}

	m := len(f)
	if m%2 == 1 {
		return simpson13(f, dx)
	}
	// Odd segment count: 3/8 rule over the last three segments, 1/3 rule
	// over samples [0, m-4]. The two regions share sample m-4.
	head := simpson13(f[:m-3], dx)
	return head + simpson38(f[m-4:], dx)
}

// trapezoid applies the composite trapezoidal rule over all of f.
func trapezoid(f []float64, dx float64) float64 {
	m := len(f)
	var inner float64
	for i := 1; i < m-1; i++ {
		inner += f[i]
	}
	return dx / 2 * (f[0] + 2*inner + f[m-1])
}

// simpson13 applies composite Simpson's 1/3 rule. len(f) must be odd.
// A single sample spans no segments and integrates to zero.
func simpson13(f []float64, dx float64) float64 {
	m := len(f)
	if m < 3 {
		return 0
	}
	var odd, even float64
	for i := 1; i < m-1; i += 2 {
		odd += f[i]
	}
	for i := 2; i < m-1; i += 2 {
		even += f[i]
	}
	return dx / 3 * (f[0] + 4*odd + 2*even + f[m-1])
}

// simpson38 applies Simpson's 3/8 rule to exactly four samples.
func simpson38(f []float64, dx float64) float64 {
	return 3 * dx / 8 * (f[0] + 3*f[1] + 3*f[2] + f[3])
}
