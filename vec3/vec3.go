// SPDX-License-Identifier: MIT

// Package vec3 provides a 3-component float64 vector with value semantics,
// used as the operand and result type of mat4 matrix–vector products. For
// affine transforms the vector is treated as homogeneous with an implicit
// fourth component w = 1.
package vec3

import "github.com/katalvlaran/lvlmat/numeric"

// Vec3 is a 3-component vector. The zero value is the zero vector; copies
// are independent (value semantics).
type Vec3 struct {
	X, Y, Z float64
}

// New returns the vector (x, y, z).
func New(x, y, z float64) Vec3 {
	return Vec3{X: x, Y: y, Z: z}
}

// Zero returns the zero vector. Equivalent to the Vec3 zero value; kept as an
// explicit factory for symmetry with the mat4 factories.
func Zero() Vec3 {
	return Vec3{}
}

// Unpack returns the three components in declaration order.
func (v Vec3) Unpack() (x, y, z float64) {
	return v.X, v.Y, v.Z
}

// Array returns the flat 3-element form consumed by the numeric product
// kernels. The result is a fresh slice; mutating it does not affect v.
func (v Vec3) Array() []float64 {
	return []float64{v.X, v.Y, v.Z}
}

// FromArray builds a vector from the first three elements of a.
// Caller precondition: len(a) ≥ 3 (unchecked).
func FromArray(a []float64) Vec3 {
	return Vec3{X: a[0], Y: a[1], Z: a[2]}
}

// Equal reports whether a and b differ by at most numeric.Epsilon in every
// component (absolute tolerance). Complexity: O(1).
func Equal(a, b Vec3) bool {
	return almost(a.X, b.X) && almost(a.Y, b.Y) && almost(a.Z, b.Z)
}

// almost is the scalar form of the package-wide absolute epsilon comparison.
func almost(x, y float64) bool {
	d := x - y
	if d < 0 {
		d = -d
	}

	return d <= numeric.Epsilon
}
