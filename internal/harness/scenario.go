package harness

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	"gopkg.in/yaml.v3"

	"github.com/roach88/numint/internal/integrate"
)

// Scenario is a named set of integration cases.
type Scenario struct {
	// Name uniquely identifies this scenario and names its golden file.
	Name string `yaml:"name" json:"name"`

	// Description explains what this scenario validates.
	Description string `yaml:"description" json:"description"`

	// Cases are executed in order.
	Cases []Case `yaml:"cases" json:"cases"`
}

// Case is one integration call with its expectation.
// Exactly one of Newton and Gauss must be set.
type Case struct {
	Name   string      `yaml:"name" json:"name"`
	Newton *NewtonCase `yaml:"newton,omitempty" json:"newton,omitempty"`
	Gauss  *GaussCase  `yaml:"gauss,omitempty" json:"gauss,omitempty"`
	Expect Expect      `yaml:"expect" json:"expect"`
}

// NewtonCase describes sampled data and the rule to apply.
type NewtonCase struct {
	X     []float64 `yaml:"x,omitempty" json:"x,omitempty"`
	F     []float64 `yaml:"f,omitempty" json:"f,omitempty"`
	Range *Range    `yaml:"range,omitempty" json:"range,omitempty"`
	Poly  []float64 `yaml:"poly,omitempty" json:"poly,omitempty"`

	// Alg is passed through verbatim, so case and whitespace variants are
	// exercised. Empty means integrate.DefaultAlgorithm.
	Alg string `yaml:"alg,omitempty" json:"alg,omitempty"`
}

// Range generates abscissas start, start+step, ... excluding stop.
type Range struct {
	Start float64 `yaml:"start" json:"start"`
	Stop  float64 `yaml:"stop" json:"stop"`
	Step  float64 `yaml:"step" json:"step"`
}

// GaussCase describes an integrand, bounds and quadrature order.
type GaussCase struct {
	Poly   []float64 `yaml:"poly,omitempty" json:"poly,omitempty"`
	Normal *Normal   `yaml:"normal,omitempty" json:"normal,omitempty"`
	Lims   []float64 `yaml:"lims" json:"lims"`

	// Npts of zero means integrate.DefaultPoints.
	Npts int `yaml:"npts,omitempty" json:"npts,omitempty"`
}

// Normal parameterizes a normal density integrand.
type Normal struct {
	Mu    float64 `yaml:"mu" json:"mu"`
	Sigma float64 `yaml:"sigma" json:"sigma"`
}

// Expect is the expected outcome: a value within tolerance, or an error kind.
type Expect struct {
	Value *float64 `yaml:"value,omitempty" json:"value,omitempty"`

	// Tolerance is an absolute bound on |got - value|. Zero means DefaultTolerance.
	Tolerance float64 `yaml:"tolerance,omitempty" json:"tolerance,omitempty"`

	// Error is an integrate.ErrorKind such as "LENGTH_MISMATCH".
	Error string `yaml:"error,omitempty" json:"error,omitempty"`
}

// DefaultTolerance applies when a case does not set one.
const DefaultTolerance = 1e-9

// LoadScenario reads a scenario from a YAML or CUE file.
// YAML parsing is strict: unknown fields are rejected to catch typos.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario file: %w", err)
	}

	var scenario Scenario
	switch ext := filepath.Ext(path); ext {
	case ".yaml", ".yml":
		decoder := yaml.NewDecoder(bytes.NewReader(data))
		decoder.KnownFields(true)
		if err := decoder.Decode(&scenario); err != nil {
			return nil, fmt.Errorf("failed to parse YAML: %w", err)
		}
	case ".cue":
		if err := decodeCUE(path, data, &scenario); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("unsupported scenario extension %q", ext)
	}

	if err := validateScenario(&scenario); err != nil {
		return nil, fmt.Errorf("invalid scenario: %w", err)
	}
	return &scenario, nil
}

// decodeCUE evaluates a CUE scenario and decodes the concrete result.
func decodeCUE(path string, data []byte, s *Scenario) error {
	ctx := cuecontext.New()
	value := ctx.CompileBytes(data, cue.Filename(path))
	if err := value.Err(); err != nil {
		return fmt.Errorf("failed to compile CUE: %w", err)
	}
	if err := value.Validate(cue.Concrete(true)); err != nil {
		return fmt.Errorf("CUE scenario is not concrete: %w", err)
	}
	if err := value.Decode(s); err != nil {
		return fmt.Errorf("failed to decode CUE: %w", err)
	}
	return nil
}

// validateScenario checks structural requirements. Integration preconditions
// (lengths, orders, bounds) are left to the integrate package so scenarios
// can assert on them.
func validateScenario(s *Scenario) error {
	if s.Name == "" {
		return fmt.Errorf("name is required")
	}
	if len(s.Cases) == 0 {
		return fmt.Errorf("cases list is required and must be non-empty")
	}

	seen := make(map[string]bool)
	for i, c := range s.Cases {
		if c.Name == "" {
			return fmt.Errorf("cases[%d]: name is required", i)
		}
		if seen[c.Name] {
			return fmt.Errorf("cases[%d]: duplicate case name %q", i, c.Name)
		}
		seen[c.Name] = true

		if (c.Newton == nil) == (c.Gauss == nil) {
			return fmt.Errorf("cases[%d]: exactly one of newton or gauss is required", i)
		}
		if (c.Expect.Value == nil) == (c.Expect.Error == "") {
			return fmt.Errorf("cases[%d].expect: exactly one of value or error is required", i)
		}
		if c.Expect.Error != "" && !isKnownKind(c.Expect.Error) {
			return fmt.Errorf("cases[%d].expect: unknown error kind %q", i, c.Expect.Error)
		}
		if c.Newton != nil {
			if err := validateNewtonCase(i, c.Newton); err != nil {
				return err
			}
		}
		if c.Gauss != nil && c.Gauss.Poly != nil && c.Gauss.Normal != nil {
			return fmt.Errorf("cases[%d].gauss: poly and normal are mutually exclusive", i)
		}
	}
	return nil
}

func validateNewtonCase(i int, n *NewtonCase) error {
	if n.Range != nil {
		if n.X != nil {
			return fmt.Errorf("cases[%d].newton: x and range are mutually exclusive", i)
		}
		if n.Range.Step <= 0 {
			return fmt.Errorf("cases[%d].newton.range: step must be positive", i)
		}
	}
	if n.Poly != nil && n.F != nil {
		return fmt.Errorf("cases[%d].newton: f and poly are mutually exclusive", i)
	}
	return nil
}

func isKnownKind(s string) bool {
	for _, k := range integrate.Kinds {
		if string(k) == s {
			return true
		}
	}
	return false
}
