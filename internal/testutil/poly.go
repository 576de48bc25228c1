// Package testutil provides deterministic fixtures for integration tests:
// polynomial integrands with known antiderivatives, uniform grids, and an
// integrand wrapper that counts evaluations.
package testutil

import "sync/atomic"

// Poly evaluates the polynomial with coefficients c (c[0] + c[1]x + ...).
func Poly(c ...float64) func(float64) float64 {
	coefs := append([]float64(nil), c...)
	return func(x float64) float64 {
		var y float64
		for i := len(coefs) - 1; i >= 0; i-- {
			y = y*x + coefs[i]
		}
		return y
	}
}

// PolyIntegral returns the exact integral of the polynomial c over [a, b].
func PolyIntegral(c []float64, a, b float64) float64 {
	anti := func(x float64) float64 {
		var y float64
		for i := len(c) - 1; i >= 0; i-- {
			y = y*x + c[i]/float64(i+1)
		}
		return y * x
	}
	return anti(b) - anti(a)
}

// Monomial returns coefficients for k*x^n.
func Monomial(n int, k float64) []float64 {
	c := make([]float64, n+1)
	c[n] = k
	return c
}

// CountingFunc wraps f and counts how many times it is evaluated.
//
// Thread-safety: the counter is atomic, so the wrapped function may be
// evaluated from several goroutines.
type CountingFunc struct {
	f     func(float64) float64
	calls atomic.Int64
}

// NewCountingFunc creates a counting wrapper around f.
func NewCountingFunc(f func(float64) float64) *CountingFunc {
	return &CountingFunc{f: f}
}

// Eval evaluates the wrapped function and increments the counter.
func (c *CountingFunc) Eval(x float64) float64 {
	c.calls.Add(1)
	return c.f(x)
}

// Calls returns the number of evaluations so far.
func (c *CountingFunc) Calls() int64 {
	return c.calls.Load()
}
