package record

// NewtonParams describes a Newton-Cotes run. source names where the
// samples came from (a file path, a scenario case).
func NewtonParams(alg string, samples int, source string) map[string]any {
	return map[string]any{
		"alg":     alg,
		"samples": samples,
		"source":  source,
	}
}

// GaussParams describes a Gauss-Legendre run. integrand is a stable textual
// description of the function, e.g. "normal(1.5,0.5)".
func GaussParams(integrand string, lims []float64, npts int) map[string]any {
	return map[string]any{
		"integrand": integrand,
		"lims":      append([]float64(nil), lims...),
		"npts":      npts,
	}
}
