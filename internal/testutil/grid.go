package testutil

// Arange returns start, start+step, ... up to but excluding stop.
func Arange(start, stop, step float64) []float64 {
	var xs []float64
	for i := 0; ; i++ {
		x := start + float64(i)*step
		if x >= stop {
			break
		}
		xs = append(xs, x)
	}
	return xs
}

// Linspace returns n evenly spaced samples over [a, b], endpoints included.
func Linspace(a, b float64, n int) []float64 {
	if n == 1 {
		return []float64{a}
	}
	xs := make([]float64, n)
	step := (b - a) / float64(n-1)
	for i := range xs {
		xs[i] = a + float64(i)*step
	}
	xs[n-1] = b
	return xs
}

// Sample evaluates f at every x.
func Sample(f func(float64) float64, x []float64) []float64 {
	ys := make([]float64, len(x))
	for i, v := range x {
		ys[i] = f(v)
	}
	return ys
}
