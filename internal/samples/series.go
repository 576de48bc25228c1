package samples

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// Series is an ordered sequence of abscissas X paired with ordinates F.
type Series struct {
	X []float64
	F []float64
}

// Len returns the number of samples.
func (s *Series) Len() int {
	return len(s.X)
}

// Peak returns the index and magnitude of the largest |F|.
func (s *Series) Peak() (int, float64) {
	if len(s.F) == 0 {
		return -1, 0
	}
	abs := make([]float64, len(s.F))
	for i, v := range s.F {
		abs[i] = math.Abs(v)
	}
	idx := floats.MaxIdx(abs)
	return idx, abs[idx]
}

// EventWindow returns the prefix of the series that ends at the last sample
// whose |F| is at least fraction times the peak |F|. A seismic event is
// considered over once the signal stays below that threshold.
func (s *Series) EventWindow(fraction float64) (*Series, error) {
	if fraction <= 0 || fraction > 1 {
		return nil, fmt.Errorf("window fraction must be in (0, 1], got %v", fraction)
	}
	_, peak := s.Peak()
	threshold := peak * fraction

	end := -1
	for i := len(s.F) - 1; i >= 0; i-- {
		if math.Abs(s.F[i]) >= threshold {
			end = i
			break
		}
	}
	if end < 0 {
		return nil, fmt.Errorf("no samples above threshold %v", threshold)
	}
	return s.Slice(0, end+1), nil
}

// Slice returns samples [i, j) as a new series sharing no storage.
func (s *Series) Slice(i, j int) *Series {
	return &Series{
		X: append([]float64(nil), s.X[i:j]...),
		F: append([]float64(nil), s.F[i:j]...),
	}
}

// Squared returns a series with every ordinate squared, for integrals of
// the form ∫ f² dx.
func (s *Series) Squared() *Series {
	out := &Series{X: append([]float64(nil), s.X...), F: append([]float64(nil), s.F...)}
	floats.Mul(out.F, s.F)
	return out
}

// Downsample keeps every step-th sample starting with the first.
func (s *Series) Downsample(step int) (*Series, error) {
	if step < 1 {
		return nil, fmt.Errorf("downsample step must be positive, got %d", step)
	}
	out := &Series{}
	for i := 0; i < s.Len(); i += step {
		out.X = append(out.X, s.X[i])
		out.F = append(out.F, s.F[i])
	}
	return out, nil
}
