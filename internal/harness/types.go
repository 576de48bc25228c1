package harness

// Outcome is what one case produced.
type Outcome struct {
	Case string `json:"case"`

	// Value is the integral estimate; meaningful only when Error is empty.
	Value float64 `json:"value"`

	// Error is the integrate.ErrorKind returned, if any.
	Error string `json:"error,omitempty"`

	// RunID is the content-addressed run identity, set when recording.
	RunID string `json:"run_id,omitempty"`
}

// Result is the outcome of a scenario execution.
type Result struct {
	// Pass is true if every case met its expectation.
	Pass bool `json:"pass"`

	// Outcomes holds one entry per case, in scenario order.
	Outcomes []Outcome `json:"outcomes"`

	// Errors contains expectation failures. Empty if Pass is true.
	Errors []string `json:"errors,omitempty"`
}

// NewResult creates a new passing result.
func NewResult() *Result {
	return &Result{
		Pass:     true,
		Outcomes: []Outcome{},
		Errors:   []string{},
	}
}

// AddError adds an expectation failure and marks the result as failed.
func (r *Result) AddError(err string) {
	r.Errors = append(r.Errors, err)
	r.Pass = false
}
