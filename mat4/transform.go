// SPDX-License-Identifier: MIT
// Package: mat4
//
// Purpose:
//   - Pure, non-mutating builders of the three geometric transform matrices:
//     translation, scale, and axis/angle rotation (Rodrigues' formula).
//
// Convention:
//   - All builders produce column-major affine matrices with the homogeneous
//     row (0, 0, 0, 1); the translation column occupies indices 12..14.

package mat4

import (
	"math"

	"github.com/katalvlaran/lvlmat/vec3"
)

// Translation returns the affine translation matrix: identity linear part,
// translation column (x, y, z).
//
//	⎡ 1 0 0 x ⎤
//	⎢ 0 1 0 y ⎥
//	⎢ 0 0 1 z ⎥
//	⎣ 0 0 0 1 ⎦
func Translation(x, y, z float64) *Mat4 {
	m := Identity()
	m.data[12] = x
	m.data[13] = y
	m.data[14] = z

	return m
}

// TranslationVec is the vector form of Translation.
func TranslationVec(v vec3.Vec3) *Mat4 {
	return Translation(v.X, v.Y, v.Z)
}

// Scale returns the diagonal scaling matrix diag(x, y, z, 1).
func Scale(x, y, z float64) *Mat4 {
	m := New()
	m.data[0] = x
	m.data[5] = y
	m.data[10] = z
	m.data[15] = 1

	return m
}

// Rotation returns the rotation matrix for the given unit axis and angle
// (radians), built with Rodrigues' rotation formula. With axis components
// (l, m, n), s = sin(angle), c = cos(angle) and oc = 1 - c, the columns are:
//
//	col0: (l²·oc+c,    lm·oc+n·s,  ln·oc−m·s, 0)
//	col1: (lm·oc−n·s,  m²·oc+c,    mn·oc+l·s, 0)
//	col2: (ln·oc+m·s,  mn·oc−l·s,  n²·oc+c,   0)
//	col3: (0, 0, 0, 1)
//
// The axis must be unit length; it is NOT normalized here — a non-unit axis
// silently produces a non-orthogonal matrix (caller precondition).
func Rotation(axis vec3.Vec3, angle float64) *Mat4 {
	l, m, n := axis.Unpack()
	s, c := math.Sin(angle), math.Cos(angle)
	oc := 1 - c

	out := New()
	// column 0
	out.data[0] = l*l*oc + c
	out.data[1] = l*m*oc + n*s
	out.data[2] = l*n*oc - m*s
	// column 1
	out.data[4] = l*m*oc - n*s
	out.data[5] = m*m*oc + c
	out.data[6] = m*n*oc + l*s
	// column 2
	out.data[8] = l*n*oc + m*s
	out.data[9] = m*n*oc - l*s
	out.data[10] = n*n*oc + c
	// homogeneous component
	out.data[15] = 1

	return out
}
