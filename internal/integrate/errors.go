package integrate

import (
	"errors"
	"fmt"
)

// ErrorKind categorizes input validation failures.
type ErrorKind string

const (
	// KindLengthMismatch indicates the sample and value sequences differ in length.
	KindLengthMismatch ErrorKind = "LENGTH_MISMATCH"

	// KindDimension indicates a sequence is not one-dimensional.
	KindDimension ErrorKind = "DIMENSION_ERROR"

	// KindUnknownAlgorithm indicates an algorithm token outside {trap, simp}.
	KindUnknownAlgorithm ErrorKind = "UNKNOWN_ALGORITHM"

	// KindInsufficientSamples indicates fewer samples than the rule requires.
	KindInsufficientSamples ErrorKind = "INSUFFICIENT_SAMPLES"

	// KindNotCallable indicates the quadrature target is nil.
	KindNotCallable ErrorKind = "NOT_CALLABLE"

	// KindBoundsLength indicates the bounds do not have exactly two elements.
	KindBoundsLength ErrorKind = "BOUNDS_LENGTH"

	// KindBoundsType indicates a bound is not a finite real number.
	KindBoundsType ErrorKind = "BOUNDS_TYPE"

	// KindUnsupportedOrder indicates a quadrature point count outside 1..5.
	KindUnsupportedOrder ErrorKind = "UNSUPPORTED_ORDER"
)

// Kinds lists every ErrorKind in validation order (Newton path, then Gauss path).
var Kinds = []ErrorKind{
	KindLengthMismatch,
	KindDimension,
	KindUnknownAlgorithm,
	KindInsufficientSamples,
	KindNotCallable,
	KindBoundsLength,
	KindBoundsType,
	KindUnsupportedOrder,
}

// Error is a precondition violation detected before integration.
//
// Every Error signals caller error; none are transient and none are worth
// retrying with the same inputs.
type Error struct {
	// Kind identifies the failed precondition.
	Kind ErrorKind

	// Message is a human-readable description.
	Message string

	// Details contains the offending values, keyed by name.
	Details map[string]string
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// KindOf returns the ErrorKind of err, or "" if err is not an *Error.
// Uses errors.As to handle wrapped errors.
func KindOf(err error) ErrorKind {
	var ie *Error
	if errors.As(err, &ie) {
		return ie.Kind
	}
	return ""
}

// IsKind returns true if err is an *Error of the given kind.
func IsKind(err error, kind ErrorKind) bool {
	return err != nil && KindOf(err) == kind
}

func newError(kind ErrorKind, details map[string]string, format string, args ...any) *Error {
	return &Error{
		Kind:    kind,
		Message: fmt.Sprintf(format, args...),
		Details: details,
	}
}
