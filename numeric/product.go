// SPDX-License-Identifier: MIT
// Package: numeric
//
// Purpose:
//   - Provide the two size-dispatched matrix-product kernels over flat
//     column-major storage: 4×4 · 4×4 and 4×4 · 3-vector (affine, w=1).
//
// Layout contract:
//   - A 4×4 matrix is a 16-element array in column-major order: the linear
//     index of (row, col), both 0-based in [0,3], is row + col*4. Consumers
//     that read these buffers directly depend on exactly this layout.
//
// Alias-safety policy:
//   - Each output cell of a matrix product depends on a full row of a and a
//     full column of b, so a naive in-place write corrupts inputs before they
//     are fully read. ProductMat4Mat4 therefore detects into aliasing a or b
//     and computes into a stack temporary first, then copies out.
//   - ProductMat4Vec3 reads all inputs into locals before the first write,
//     which makes it alias-safe without a heap temporary.

package numeric

import "fmt"

// mat4Len and vec3Len are the only operand lengths MatrixProduct accepts;
// any other pair is a precondition failure.
const (
	mat4Len = 16 // 4×4 column-major matrix
	vec3Len = 3  // 3-component vector, implicit w = 1
)

// MatrixProduct dispatches on the operand lengths:
//
//	(16, 16) → ProductMat4Mat4 (full 4×4 multiply)
//	(16,  3) → ProductMat4Vec3 (affine transform, implicit w = 1)
//
// Implementation:
//   - Stage 1: inspect (len(a), len(b)); select the kernel.
//   - Stage 2: delegate; `into` conventions are the kernel's own.
//
// Errors:
//   - Any other length pair panics with a wrapped ErrProductShape whose
//     message names both operand lengths. This is a programmer error with no
//     recovery path, per the package failure-semantics charter.
//
// Complexity:
//   - O(1) dispatch plus the selected kernel's cost.
func MatrixProduct(a, b, into []float64) []float64 {
	switch {
	case len(a) == mat4Len && len(b) == mat4Len:
		return ProductMat4Mat4(a, b, into)
	case len(a) == mat4Len && len(b) == vec3Len:
		return ProductMat4Vec3(a, b, into)
	default:
		panic(fmt.Errorf("MatrixProduct: %w: len(a)=%d, len(b)=%d", ErrProductShape, len(a), len(b)))
	}
}

// sameBacking reports whether x and y share the same first element, i.e. are
// views of the same backing storage at the same origin. Sufficient for the
// aliasing cases this package produces (whole-buffer targets).
func sameBacking(x, y []float64) bool {
	return len(x) > 0 && len(y) > 0 && &x[0] == &y[0]
}

// ProductMat4Mat4 computes the standard matrix product out = a × b over the
// column-major layout and returns the target.
//
// Implementation:
//   - Stage 1: resolve the output target (nil allocates a fresh 16-slot array).
//   - Stage 2: if into shares backing storage with a or b, compute into a
//     stack temporary, then copy the temporary into into (mandatory — each
//     output cell reads a full row of a and column of b, which a direct
//     in-place write would partially overwrite mid-computation).
//   - Stage 3: otherwise multiply directly into the target.
//
// Inputs:
//   - a, b : 16-element column-major matrices (caller precondition, unchecked).
//   - into : optional 16-element output; may alias a or b; nil allocates.
//
// Returns:
//   - []float64: into when given, else the freshly allocated result.
//
// Determinism:
//   - Fixed col→row→k loop order; stable accumulation.
//
// Complexity:
//   - Time O(4³), Space O(1) beyond the result (the temporary lives on the
//     stack as a [16]float64).
//
// AI-Hints:
//   - Passing a distinct reusable `into` buffer skips both the allocation and
//     the alias-copy, making this kernel allocation-free in steady state.
func ProductMat4Mat4(a, b, into []float64) []float64 {
	out := target(into, mat4Len)

	// Self-aliasing target: materialize into a temporary first.
	if sameBacking(out, a) || sameBacking(out, b) {
		var tmp [16]float64
		mulMat4(tmp[:], a, b)
		copy(out, tmp[:])

		return out
	}

	mulMat4(out, a, b)

	return out
}

// mulMat4 is the raw column-major 4×4 multiply kernel. out must not alias
// a or b; ProductMat4Mat4 enforces that invariant.
func mulMat4(out, a, b []float64) {
	var acc float64
	for col := 0; col < 4; col++ {
		for row := 0; row < 4; row++ {
			acc = 0
			for k := 0; k < 4; k++ {
				// a(row,k) · b(k,col) over index = row + col*4
				acc += a[row+k*4] * b[k+col*4]
			}
			out[row+col*4] = acc
		}
	}
}

// ProductMat4Vec3 applies the column-major 4×4 matrix a to the 3-vector v as
// a homogeneous point (v0, v1, v2, 1) and returns the transformed 3 components:
//
//	x' = a[0]·v0 + a[4]·v1 + a[8]·v2  + a[12]
//	y' = a[1]·v0 + a[5]·v1 + a[9]·v2  + a[13]
//	z' = a[2]·v0 + a[6]·v1 + a[10]·v2 + a[14]
//
// Inputs:
//   - a    : 16-element column-major matrix (caller precondition, unchecked).
//   - v    : 3-element vector.
//   - into : optional 3-element output; may alias v (all reads complete
//     before the first write); nil allocates.
//
// Returns:
//   - []float64: into when given, else a fresh 3-element result.
//
// Complexity:
//   - Time O(1) (12 multiplies), Space O(1) beyond the result.
func ProductMat4Vec3(a, v, into []float64) []float64 {
	out := target(into, vec3Len)

	// Read every input before the first write: alias-safe by construction.
	x, y, z := v[0], v[1], v[2]
	out[0] = a[0]*x + a[4]*y + a[8]*z + a[12]
	out[1] = a[1]*x + a[5]*y + a[9]*z + a[13]
	out[2] = a[2]*x + a[6]*y + a[10]*z + a[14]

	return out
}
