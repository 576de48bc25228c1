// Package integrate provides one-dimensional numerical integration.
//
// Two independent primitives are offered:
//
//   - Newton: composite Newton-Cotes integration of uniformly spaced samples,
//     using the trapezoidal rule or Simpson's rule. Simpson on an even sample
//     count applies the 3/8 rule to the last three segments and the 1/3 rule
//     to everything before them.
//   - Gauss: fixed-order Gauss-Legendre quadrature (1 to 5 points) of a
//     function over a finite interval.
//
// # Validation
//
// Every entry point validates its inputs before any arithmetic and returns a
// *Error whose Kind names the failed precondition. Checks run in a fixed
// order and stop at the first failure:
//
//	Newton: LENGTH_MISMATCH, DIMENSION_ERROR, UNKNOWN_ALGORITHM, INSUFFICIENT_SAMPLES
//	Gauss:  NOT_CALLABLE, BOUNDS_LENGTH, BOUNDS_TYPE, UNSUPPORTED_ORDER
//
// # Concurrency
//
// All functions are pure. The Gauss-Legendre table is immutable and may be
// read from any number of goroutines. Sums are accumulated in a fixed order,
// so identical inputs always produce bit-identical results.
package integrate
