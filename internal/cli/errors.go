package cli

import (
	"errors"

	"github.com/roach88/numint/internal/integrate"
	"github.com/roach88/numint/internal/samples"
)

// Error code constants for CLI responses.
const (
	ErrCodeGeneric     = "E001" // Generic/unknown error
	ErrCodeInvalidFlag = "E002" // Flag value rejected before integration
	ErrCodeStore       = "E401" // Run store failure
)

// integrateCodes maps integration error kinds to response codes.
var integrateCodes = map[integrate.ErrorKind]string{
	integrate.KindLengthMismatch:      "E301",
	integrate.KindDimension:           "E302",
	integrate.KindUnknownAlgorithm:    "E303",
	integrate.KindInsufficientSamples: "E304",
	integrate.KindNotCallable:         "E305",
	integrate.KindBoundsLength:        "E306",
	integrate.KindBoundsType:          "E307",
	integrate.KindUnsupportedOrder:    "E308",
}

// flagError marks a flag value the command itself rejected.
type flagError struct {
	msg string
}

func (e *flagError) Error() string { return e.msg }

// storeError marks a failure in the run store.
type storeError struct {
	err error
}

func (e *storeError) Error() string { return "run store: " + e.err.Error() }
func (e *storeError) Unwrap() error { return e.err }

// classify returns the response code, exit code and details for err.
func classify(err error) (code string, exit int, details any) {
	var ie *integrate.Error
	if errors.As(err, &ie) {
		if c, ok := integrateCodes[ie.Kind]; ok {
			var d any
			if len(ie.Details) > 0 {
				d = ie.Details
			}
			return c, ExitFailure, d
		}
	}

	var le *samples.LoadError
	if errors.As(err, &le) {
		var d any
		if le.Line > 0 {
			d = map[string]int{"line": le.Line}
		}
		return le.Code, ExitCommandError, d
	}

	var fe *flagError
	if errors.As(err, &fe) {
		return ErrCodeInvalidFlag, ExitCommandError, nil
	}

	var se *storeError
	if errors.As(err, &se) {
		return ErrCodeStore, ExitCommandError, nil
	}

	return ErrCodeGeneric, ExitCommandError, nil
}
