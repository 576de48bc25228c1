// Package harness runs integration scenarios: named sets of Newton-Cotes and
// Gauss-Legendre cases with expected values or expected error kinds.
//
// # Scenario Format
//
// Scenarios are YAML (.yaml, .yml) or CUE (.cue) files:
//
//	name: gauss_exactness
//	description: "Gauss-Legendre is exact through degree 2n-1"
//	cases:
//	  - name: linear_one_point
//	    gauss:
//	      poly: [6, 1]          # 6 + x
//	      lims: [0, 8]
//	      npts: 1
//	    expect:
//	      value: 80
//	  - name: trapezoid_linear
//	    newton:
//	      x: [0, 0.5, 1, 1.5, 2]
//	      f: [0, 0.5, 1, 1.5, 2]
//	      alg: "Trap "
//	    expect:
//	      value: 2.0
//	      tolerance: 1e-15
//	  - name: order_seven
//	    gauss:
//	      poly: [0, 1]
//	      lims: [1, 2]
//	      npts: 7
//	    expect:
//	      error: UNSUPPORTED_ORDER
//
// A Newton case takes explicit x and f samples, or a range (arange
// semantics: start inclusive, stop exclusive) plus poly coefficients that
// generate f. A Gauss case takes poly or normal {mu, sigma}; leaving both out
// exercises the NOT_CALLABLE path.
//
// # Golden Snapshots
//
// RunWithGolden compares the outcome of every case against
// testdata/golden/<scenario>.golden. Values are written with 12 significant
// digits so snapshots are stable across platforms. Regenerate with:
//
//	go test ./internal/harness -update
package harness
