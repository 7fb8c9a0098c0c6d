// SPDX-License-Identifier: MIT

// Package numeric: equality kernels and the package numeric policy.

package numeric

// Epsilon is the absolute per-component tolerance used by AlmostEqual (and,
// through it, by mat4.Equal and vec3.Equal): two components are considered
// equal iff they differ by at most 1e-9 in absolute value.
//
// This is an ABSOLUTE, not relative, tolerance — a documented limitation for
// large-magnitude values, where 1e-9 may be below the representable spacing.
const Epsilon = 1e-9

// Equal reports exact per-index equality over a's length.
// Caller precondition: len(b) ≥ len(a) (unchecked).
// Determinism: fixed 0..len(a)-1 scan with early exit on first mismatch.
// Complexity: O(len(a)), Space O(1).
func Equal(a, b []float64) bool {
	for i := range a {
		if a[i] != b[i] { // exact IEEE-754 comparison; NaN never equals
			return false
		}
	}

	return true
}

// AlmostEqual reports whether every corresponding pair differs by absolute
// value ≤ Epsilon, scanning a's length.
// Caller precondition: len(b) ≥ len(a) (unchecked).
// Determinism: fixed 0..len(a)-1 scan, early exit on first violation.
// Complexity: O(len(a)), Space O(1).
func AlmostEqual(a, b []float64) bool {
	var diff float64
	for i := range a {
		diff = a[i] - b[i]
		if diff < 0 {
			diff = -diff // |a[i]-b[i]| without a math.Abs call
		}
		if diff > Epsilon {
			return false // first violation decides
		}
	}

	return true
}
