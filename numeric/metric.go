// SPDX-License-Identifier: MIT

// Package numeric: inner product and derived metrics.

package numeric

import "math"

// Dot returns the inner product Σ a[i]*b[i] over a's length.
// Caller precondition: len(b) ≥ len(a) (unchecked).
// Determinism: fixed ascending accumulation order.
// Complexity: O(len(a)), Space O(1).
func Dot(a, b []float64) float64 {
	var acc float64
	for i := range a {
		acc += a[i] * b[i]
	}

	return acc
}

// LengthSquared returns Dot(a, a) — the squared Euclidean norm.
// Complexity: O(len(a)).
func LengthSquared(a []float64) float64 {
	return Dot(a, a)
}

// Length returns the Euclidean norm sqrt(Dot(a, a)).
// Complexity: O(len(a)).
func Length(a []float64) float64 {
	return math.Sqrt(Dot(a, a))
}

// Normalize scales a by the reciprocal of its length: SDiv(a, Length(a), into).
// A zero-length input produces IEEE-754 Inf/NaN components — this degeneracy
// is deliberate and not guarded; the caller owns the precondition.
// into == nil allocates; into == a is legal (pointwise kernel underneath).
// Complexity: O(len(a)).
func Normalize(a, into []float64) []float64 {
	return SDiv(a, Length(a), into)
}
