// SPDX-License-Identifier: MIT
// Package: mat4
//
// Purpose:
//   - Matrix composition (MMul) and affine vector transformation (VMul) over
//     the column-major layout, delegating to the numeric product kernels.
//
// Convention (fixed, canonical):
//   - MMul(other) composes receiver ∘ other: applying the result to a vector
//     v equals applying other first, then the receiver —
//     result·v = receiver·(other·v).

package mat4

import (
	"github.com/katalvlaran/lvlmat/numeric"
	"github.com/katalvlaran/lvlmat/vec3"
)

// MMul returns the composition m ∘ other.
//
// Implementation:
//   - Stage 1: resolve the target — into when given, else a fresh matrix.
//   - Stage 2: delegate to numeric.ProductMat4Mat4, which detects the target
//     aliasing an operand and buffers through a temporary.
//
// Inputs:
//   - other: right-hand operand (applied first to vectors).
//   - into : optional output matrix; may be m, other, or nil (allocates).
//
// Returns:
//   - *Mat4: into when given, else the freshly allocated result.
//
// Determinism:
//   - Fixed kernel loop order; alias-safe for into == m and into == other.
//
// Complexity:
//   - Time O(4³), Space O(1) beyond the result.
func (m *Mat4) MMul(other *Mat4, into *Mat4) *Mat4 {
	if into == nil {
		into = New()
	}
	numeric.ProductMat4Mat4(m.data, other.data, into.data)

	return into
}

// VMul applies m to v as an affine point (implicit w = 1) and returns the
// transformed vector. Allocation-light: one 3-element pass through the
// numeric kernel.
func (m *Mat4) VMul(v vec3.Vec3) vec3.Vec3 {
	var out [3]float64
	numeric.ProductMat4Vec3(m.data, v.Array(), out[:])

	return vec3.FromArray(out[:])
}

// VMulInto applies m to v as an affine point, writes the result into into,
// and returns into. Alias-safe: into may point at v's storage — the
// underlying kernel completes all reads before its first write.
func (m *Mat4) VMulInto(v vec3.Vec3, into *vec3.Vec3) *vec3.Vec3 {
	var out [3]float64
	numeric.ProductMat4Vec3(m.data, v.Array(), out[:])
	into.X, into.Y, into.Z = out[0], out[1], out[2]

	return into
}
