// SPDX-License-Identifier: MIT
// Package: numeric
//
// Purpose:
//   - Provide the elementwise (a OP b) and scalar-broadcast (a OP s) kernels
//     with an optional output target, shared by mat4 arithmetic.
//
// Design:
//   - Each kernel iterates over len(a); b only needs len(b) ≥ len(a), which
//     is a documented caller precondition (unchecked, per the package
//     failure-semantics charter in doc.go).
//   - into == nil allocates a fresh result; into == a (or b) is legal because
//     every output cell depends only on the same-index input cells.
//
// Determinism & Performance:
//   - Fixed flat loop 0..len(a)-1; exactly one allocation when into is nil,
//     zero otherwise.

package numeric

// target returns `into` when provided, or a fresh length-n array otherwise.
// Single source of truth for the optional-output convention.
func target(into []float64, n int) []float64 {
	if into == nil {
		return make([]float64, n)
	}

	return into
}

// Add computes into[i] = a[i] + b[i] for i in 0..len(a)-1 and returns the
// target. Alias-safe: into may be a or b. into == nil allocates.
// Complexity: O(len(a)).
func Add(a, b, into []float64) []float64 {
	out := target(into, len(a))
	for i := range a {
		out[i] = a[i] + b[i]
	}

	return out
}

// Sub computes into[i] = a[i] - b[i]; conventions as Add.
func Sub(a, b, into []float64) []float64 {
	out := target(into, len(a))
	for i := range a {
		out[i] = a[i] - b[i]
	}

	return out
}

// Mul computes the elementwise product into[i] = a[i] * b[i]; conventions as
// Add. This is the Hadamard product, not matrix multiplication — use
// MatrixProduct for A×B.
func Mul(a, b, into []float64) []float64 {
	out := target(into, len(a))
	for i := range a {
		out[i] = a[i] * b[i]
	}

	return out
}

// Div computes into[i] = a[i] / b[i]; conventions as Add. Division by zero
// yields IEEE-754 Inf/NaN and is intentionally not intercepted.
func Div(a, b, into []float64) []float64 {
	out := target(into, len(a))
	for i := range a {
		out[i] = a[i] / b[i]
	}

	return out
}

// SAdd broadcasts the scalar over every element: into[i] = a[i] + s.
// Alias-safe; into == nil allocates. Complexity: O(len(a)).
func SAdd(a []float64, s float64, into []float64) []float64 {
	out := target(into, len(a))
	for i := range a {
		out[i] = a[i] + s
	}

	return out
}

// SSub broadcasts subtraction: into[i] = a[i] - s; conventions as SAdd.
func SSub(a []float64, s float64, into []float64) []float64 {
	out := target(into, len(a))
	for i := range a {
		out[i] = a[i] - s
	}

	return out
}

// SMul broadcasts multiplication: into[i] = a[i] * s; conventions as SAdd.
func SMul(a []float64, s float64, into []float64) []float64 {
	out := target(into, len(a))
	for i := range a {
		out[i] = a[i] * s
	}

	return out
}

// SDiv broadcasts division: into[i] = a[i] / s; conventions as SAdd.
// s == 0 yields Inf/NaN per element, never an error.
func SDiv(a []float64, s float64, into []float64) []float64 {
	out := target(into, len(a))
	for i := range a {
		out[i] = a[i] / s
	}

	return out
}
