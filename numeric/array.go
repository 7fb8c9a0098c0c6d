// SPDX-License-Identifier: MIT

// Package numeric: array creation and bulk-transfer primitives.
// These are the leaf operations every other kernel builds on: fresh
// allocation, duplication, ranged fill/copy into caller buffers, and literal
// packing. All of them return the target slice to allow fluent reuse.

package numeric

// Zero returns a fresh length-n array of zeros.
// Complexity: O(n) time and memory (runtime zeroing).
func Zero(n int) []float64 {
	return make([]float64, n) // runtime zero-fills
}

// Fill returns a fresh length-n array with every element set to c.
// Complexity: O(n).
func Fill(n int, c float64) []float64 {
	out := make([]float64, n)
	for i := range out { // fixed 0..n-1 order
		out[i] = c
	}

	return out
}

// Copy returns an independent duplicate of a. Mutating the result never
// affects a, and vice versa.
// Complexity: O(n) time and memory.
func Copy(a []float64) []float64 {
	out := make([]float64, len(a))
	copy(out, a)

	return out
}

// Generate returns a fresh length-n array where element i = f(i), i from
// 0..n-1. Materialization is eager; f is invoked exactly once per index in
// ascending order.
// Complexity: O(n) plus the cost of f.
func Generate(n int, f func(i int) float64) []float64 {
	out := make([]float64, n)
	for i := range out { // ascending, deterministic
		out[i] = f(i)
	}

	return out
}

// FillRange writes count copies of c into `into` starting at index, and
// returns `into`. Enables zero-allocation reuse of caller buffers.
// Caller precondition: index+count ≤ len(into) (unchecked; a violation is a
// runtime bounds panic).
// Complexity: O(count).
func FillRange(c float64, into []float64, index, count int) []float64 {
	for i := index; i < index+count; i++ {
		into[i] = c
	}

	return into
}

// CopyRange copies count elements of a starting at aIndex into `into`
// starting at intoIndex, and returns `into`.
// Caller precondition: both ranges lie within their slices (unchecked).
// Complexity: O(count).
func CopyRange(a []float64, aIndex int, into []float64, intoIndex, count int) []float64 {
	copy(into[intoIndex:intoIndex+count], a[aIndex:aIndex+count])

	return into
}

// Pack overwrites the leading slots of `into` with the literal value list and
// returns `into`. Equivalent to PackRange(into, 0, values...).
// Caller precondition: len(values) ≤ len(into) (unchecked).
func Pack(into []float64, values ...float64) []float64 {
	return PackRange(into, 0, values...)
}

// PackRange overwrites consecutive slots of `into`, starting at index, with
// the literal value list, and returns `into`.
// Caller precondition: index+len(values) ≤ len(into) (unchecked).
// Complexity: O(len(values)).
func PackRange(into []float64, index int, values ...float64) []float64 {
	copy(into[index:index+len(values)], values)

	return into
}
