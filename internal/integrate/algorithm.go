package integrate

import (
	"strings"

	"golang.org/x/text/cases"
)

// Algorithm selects the composite Newton-Cotes rule.
type Algorithm int

const (
	// Trapezoidal is the composite trapezoidal rule.
	Trapezoidal Algorithm = iota
	// Simpson is composite Simpson's 1/3 rule, with a 3/8 tail on even sample counts.
	Simpson
)

// DefaultAlgorithm is the token used when the caller does not pick a rule.
const DefaultAlgorithm = "trap"

var algorithmTokens = map[string]Algorithm{
	"trap": Trapezoidal,
	"simp": Simpson,
}

// String returns the canonical token for the algorithm.
func (a Algorithm) String() string {
	switch a {
	case Trapezoidal:
		return "trap"
	case Simpson:
		return "simp"
	default:
		return "unknown"
	}
}

// MinSamples returns the smallest sample count the rule accepts.
func (a Algorithm) MinSamples() int {
	if a == Simpson {
		return 3
	}
	return 2
}

// ParseAlgorithm normalizes an algorithm token and maps it to an Algorithm.
// Surrounding whitespace is ignored and matching is case-insensitive, so
// " Trap " and "SIMP" are accepted.
func ParseAlgorithm(token string) (Algorithm, error) {
	folded := cases.Fold().String(strings.TrimSpace(token))
	alg, ok := algorithmTokens[folded]
	if !ok {
		return 0, newError(KindUnknownAlgorithm,
			map[string]string{"alg": token},
			"unknown algorithm %q: must be one of trap, simp", token)
	}
	return alg, nil
}
