package record

import "strconv"

// Version is the numint version recorded on every run.
const Version = "0.1.0"

// Run kinds.
const (
	KindNewton = "newton"
	KindGauss  = "gauss"
)

// Run is one recorded integration.
type Run struct {
	// ID is the content-addressed identity (see RunID).
	ID string `json:"id"`

	// Batch groups runs created by the same invocation.
	Batch string `json:"batch"`

	// Seq is the logical insertion order assigned by the store.
	Seq int64 `json:"seq"`

	// Kind is KindNewton or KindGauss.
	Kind string `json:"kind"`

	// Params holds the call inputs (algorithm, bounds, order, source).
	// Values must be canonical-JSON encodable.
	Params map[string]any `json:"params"`

	// Result is the integral estimate.
	Result float64 `json:"result"`

	// Version is the numint version that produced the run.
	Version string `json:"version"`
}

// NewRun builds a run and computes its ID.
func NewRun(batch, kind string, params map[string]any, result float64) (Run, error) {
	id, err := RunID(kind, params, result)
	if err != nil {
		return Run{}, err
	}
	return Run{
		ID:      id,
		Batch:   batch,
		Kind:    kind,
		Params:  params,
		Result:  result,
		Version: Version,
	}, nil
}

// FormatResult renders a result as its shortest round-trip decimal text.
// NaN and ±Inf render as "NaN", "+Inf" and "-Inf".
func FormatResult(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// ParseResult is the inverse of FormatResult.
func ParseResult(s string) (float64, error) {
	return strconv.ParseFloat(s, 64)
}
