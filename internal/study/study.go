// Package study runs convergence studies on top of the integrate package:
// Gauss-Legendre estimates across quadrature orders and Newton-Cotes
// estimates across sample spacings, each with an approximate relative
// error against the previous estimate.
package study

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/stat/distuv"

	"github.com/roach88/numint/internal/integrate"
	"github.com/roach88/numint/internal/samples"
)

// Estimate is one row of a convergence table.
type Estimate struct {
	// Level is the quadrature order (Gauss) or downsampling step (Newton).
	Level int `json:"level"`

	// Value is the integral estimate at this level.
	Value float64 `json:"value"`

	// RelError is |(Value - previous) / Value|, with previous = 0 for the
	// first row. NaN when Value is zero.
	RelError float64 `json:"rel_error"`
}

// GaussOrders integrates f over lims with every supported quadrature order,
// from integrate.MinPoints to integrate.MaxPoints.
func GaussOrders(f integrate.Func, lims []float64) ([]Estimate, error) {
	out := make([]Estimate, 0, integrate.MaxPoints)
	prev := 0.0
	for n := integrate.MinPoints; n <= integrate.MaxPoints; n++ {
		v, err := integrate.Gauss(f, lims, n)
		if err != nil {
			return nil, err
		}
		out = append(out, Estimate{Level: n, Value: v, RelError: relError(v, prev)})
		prev = v
	}
	return out, nil
}

// Downsampling integrates s with alg after keeping every step-th sample,
// for each step in order. Steps that leave too few samples for the rule
// fail with integrate.KindInsufficientSamples.
func Downsampling(s *samples.Series, alg integrate.Algorithm, steps []int) ([]Estimate, error) {
	out := make([]Estimate, 0, len(steps))
	prev := 0.0
	for _, step := range steps {
		d, err := s.Downsample(step)
		if err != nil {
			return nil, err
		}
		v, err := integrate.NewtonWith(d.X, d.F, alg)
		if err != nil {
			return nil, err
		}
		out = append(out, Estimate{Level: step, Value: v, RelError: relError(v, prev)})
		prev = v
	}
	return out, nil
}

func relError(v, prev float64) float64 {
	if v == 0 {
		return math.NaN()
	}
	return math.Abs((v - prev) / v)
}

// NormalPDF returns the probability density of a normal distribution.
func NormalPDF(mu, sigma float64) integrate.Func {
	d := distuv.Normal{Mu: mu, Sigma: sigma}
	return d.Prob
}

// Polynomial returns c[0] + c[1]x + c[2]x² + ... evaluated by Horner's rule.
func Polynomial(c ...float64) integrate.Func {
	coefs := append([]float64(nil), c...)
	return func(x float64) float64 {
		var y float64
		for i := len(coefs) - 1; i >= 0; i-- {
			y = y*x + coefs[i]
		}
		return y
	}
}

// Integrand pairs an evaluable function with a stable label used in run
// records and reports.
type Integrand struct {
	Label string
	F     integrate.Func
}

// NormalIntegrand is the labelled normal density.
func NormalIntegrand(mu, sigma float64) Integrand {
	return Integrand{
		Label: fmt.Sprintf("normal(%s,%s)", formatCoef(mu), formatCoef(sigma)),
		F:     NormalPDF(mu, sigma),
	}
}

// PolyIntegrand is the labelled polynomial c[0] + c[1]x + ...
func PolyIntegrand(c ...float64) Integrand {
	parts := make([]string, len(c))
	for i, v := range c {
		parts[i] = formatCoef(v)
	}
	return Integrand{
		Label: "poly(" + strings.Join(parts, ",") + ")",
		F:     Polynomial(c...),
	}
}

func formatCoef(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
