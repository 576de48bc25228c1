// Package samples loads and shapes discretely sampled (x, f(x)) data for
// Newton-Cotes integration.
//
// # File Format
//
// Sample files hold two numeric columns separated by whitespace or commas:
//
//	# time (s)   velocity (mm/s)
//	0.000        0.0012
//	0.010       -0.0031
//
// Lines starting with '#' and blank lines are skipped. Every other line must
// contain exactly two values.
//
// # Error Codes
//
//   - E005: file not found
//   - E201: a value could not be parsed as a number
//   - E202: a line does not have exactly two columns
//   - E203: the file holds no samples
package samples
