// SPDX-License-Identifier: MIT

// Package mat4: the Mat4 type, constructors, factories and element access.
// Mat4 exclusively owns one 16-element column-major backing array; length 16
// is an invariant of every reachable instance — constructors that could
// violate it panic instead of producing a corrupt matrix.

package mat4

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/lvlmat/numeric"
)

// componentCount is the fixed backing-array length of every Mat4.
const componentCount = 16

// side is the row/column count of the square matrix.
const side = 4

// Mat4 is a 4×4 matrix of float64 values in column-major order.
// The zero value is unusable (nil backing array); use New, Of, Adopt,
// FromArray or one of the factories.
type Mat4 struct {
	data []float64 // flat backing storage, length == 16, index = row + col*4
}

// New returns the zero matrix (all 16 components 0).
func New() *Mat4 {
	return &Mat4{data: numeric.Zero(componentCount)}
}

// Of returns a matrix packed from exactly 16 values given in column-major
// declared order (m11, m21, m31, m41, m12, …, m44). The values are copied
// into a fresh backing array.
// Panics with ErrComponentCount (wrapped, naming the count) on any other
// argument count.
func Of(values ...float64) *Mat4 {
	if len(values) != componentCount {
		panic(fmt.Errorf("Of: %w: got %d", ErrComponentCount, len(values)))
	}
	m := New()
	copy(m.data, values)

	return m
}

// Adopt returns a matrix that ADOPTS the caller's backing array by reference,
// with no copy: the matrix and a become views of the same storage, and later
// external mutation of a is observable through the matrix. This is a
// deliberate aliasing contract — use FromArray for the always-safe copying
// counterpart.
// Panics with ErrAdoptLength (wrapped, naming the length) unless len(a) == 16.
func Adopt(a []float64) *Mat4 {
	if len(a) != componentCount {
		panic(fmt.Errorf("Adopt: %w: got %d", ErrAdoptLength, len(a)))
	}

	return &Mat4{data: a}
}

// FromArray returns a matrix initialized from a copy of the 16-element array
// a. The result never shares storage with a.
// Panics with ErrAdoptLength (wrapped, naming the length) unless len(a) == 16.
func FromArray(a []float64) *Mat4 {
	if len(a) != componentCount {
		panic(fmt.Errorf("FromArray: %w: got %d", ErrAdoptLength, len(a)))
	}

	return &Mat4{data: numeric.Copy(a)}
}

// Zero returns a new all-zero matrix. Pure factory; alias of New kept for
// symmetry with One and Identity.
func Zero() *Mat4 {
	return New()
}

// One returns a new matrix with every component set to 1.
func One() *Mat4 {
	return &Mat4{data: numeric.Fill(componentCount, 1)}
}

// Identity returns a new identity matrix (diagonal of 1s).
func Identity() *Mat4 {
	m := New()
	for i := 0; i < side; i++ {
		m.data[i+i*side] = 1
	}

	return m
}

// SSet overwrites all 16 components from the value list (column-major
// declared order) and returns the receiver for chaining. The backing array
// identity is unchanged.
// Panics with ErrComponentCount (wrapped, naming the count) on any other
// argument count.
func (m *Mat4) SSet(values ...float64) *Mat4 {
	if len(values) != componentCount {
		panic(fmt.Errorf("SSet: %w: got %d", ErrComponentCount, len(values)))
	}
	copy(m.data, values)

	return m
}

// MSet copies other's 16 components into the receiver's own backing array
// (the receiver's array identity is unchanged) and returns the receiver.
func (m *Mat4) MSet(other *Mat4) *Mat4 {
	copy(m.data, other.data)

	return m
}

// Swap exchanges the backing arrays of m and other in O(1): a slice-header
// swap, not an elementwise copy. Any external holder of either Raw() slice
// keeps its storage and now observes the other matrix.
func (m *Mat4) Swap(other *Mat4) {
	m.data, other.data = other.data, m.data
}

// Get returns the component at (row, col), both 0-based in [0,3].
// Out-of-range indices are a caller precondition, not validated: they index
// into adjacent slots or trigger a runtime bounds panic.
func (m *Mat4) Get(row, col int) float64 {
	return m.data[row+col*side]
}

// Set assigns v at (row, col), both 0-based in [0,3]. Bounds are a caller
// precondition, as with Get.
func (m *Mat4) Set(row, col int, v float64) {
	m.data[row+col*side] = v
}

// Raw returns the live 16-element column-major backing array — the binding
// interop contract for consumers (e.g. rendering APIs) that read the buffer
// directly. Mutations through the returned slice are visible in the matrix.
func (m *Mat4) Raw() []float64 {
	return m.data
}

// Clone returns a deep copy with independent backing storage.
func (m *Mat4) Clone() *Mat4 {
	return &Mat4{data: numeric.Copy(m.data)}
}

// Equal reports whether all 16 corresponding components of a and b differ by
// at most numeric.Epsilon (absolute). Delegates to numeric.AlmostEqual.
func Equal(a, b *Mat4) bool {
	return numeric.AlmostEqual(a.data, b.data)
}

// String implements fmt.Stringer, printing one bracketed row per line.
func (m *Mat4) String() string {
	var sb strings.Builder
	for row := 0; row < side; row++ {
		sb.WriteString("[")
		for col := 0; col < side; col++ {
			sb.WriteString(fmt.Sprintf("%g", m.data[row+col*side]))
			if col < side-1 {
				sb.WriteString(", ")
			}
		}
		sb.WriteString("]\n")
	}

	return sb.String()
}
