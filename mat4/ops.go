// SPDX-License-Identifier: MIT
// Package: mat4
//
// Purpose:
//   - Arithmetic on Mat4 in two clearly distinguished families:
//     the in-place family (…InPlace) mutates the receiver and returns it for
//     chaining; the allocating family (plain names) leaves the receiver
//     unchanged and returns a fresh matrix.
//   - Operand kinds form a small closed set resolved statically by method
//     name: *Mat4 (elementwise combine) or float64 (scalar broadcast).
//
// Design:
//   - Every method is a thin facade over the pointwise numeric kernels, which
//     are alias-safe by construction — writing into the receiver's own
//     backing array is always valid here.
//   - All operations are elementwise; matrix composition lives in product.go.

package mat4

import "github.com/katalvlaran/lvlmat/numeric"

// ---------- In-place family (mutates the receiver, returns it) ----------

// AddInPlace adds other elementwise into the receiver and returns it.
func (m *Mat4) AddInPlace(other *Mat4) *Mat4 {
	numeric.Add(m.data, other.data, m.data)

	return m
}

// SubInPlace subtracts other elementwise from the receiver and returns it.
func (m *Mat4) SubInPlace(other *Mat4) *Mat4 {
	numeric.Sub(m.data, other.data, m.data)

	return m
}

// MulElemInPlace multiplies the receiver elementwise by other (Hadamard) and
// returns it. Not matrix composition — see MMul.
func (m *Mat4) MulElemInPlace(other *Mat4) *Mat4 {
	numeric.Mul(m.data, other.data, m.data)

	return m
}

// DivElemInPlace divides the receiver elementwise by other and returns it.
// Zero divisors yield Inf/NaN components, never an error.
func (m *Mat4) DivElemInPlace(other *Mat4) *Mat4 {
	numeric.Div(m.data, other.data, m.data)

	return m
}

// AddScalarInPlace broadcasts s over all 16 components and returns the receiver.
func (m *Mat4) AddScalarInPlace(s float64) *Mat4 {
	numeric.SAdd(m.data, s, m.data)

	return m
}

// SubScalarInPlace subtracts s from every component and returns the receiver.
func (m *Mat4) SubScalarInPlace(s float64) *Mat4 {
	numeric.SSub(m.data, s, m.data)

	return m
}

// MulScalarInPlace multiplies every component by s and returns the receiver.
func (m *Mat4) MulScalarInPlace(s float64) *Mat4 {
	numeric.SMul(m.data, s, m.data)

	return m
}

// DivScalarInPlace divides every component by s and returns the receiver.
// s == 0 yields Inf/NaN components, never an error.
func (m *Mat4) DivScalarInPlace(s float64) *Mat4 {
	numeric.SDiv(m.data, s, m.data)

	return m
}

// ---------- Allocating family (receiver unchanged, fresh result) ----------

// Add returns a new matrix holding the elementwise sum m + other.
func (m *Mat4) Add(other *Mat4) *Mat4 {
	return &Mat4{data: numeric.Add(m.data, other.data, nil)}
}

// Sub returns a new matrix holding the elementwise difference m - other.
func (m *Mat4) Sub(other *Mat4) *Mat4 {
	return &Mat4{data: numeric.Sub(m.data, other.data, nil)}
}

// MulElem returns a new matrix holding the elementwise (Hadamard) product.
func (m *Mat4) MulElem(other *Mat4) *Mat4 {
	return &Mat4{data: numeric.Mul(m.data, other.data, nil)}
}

// DivElem returns a new matrix holding the elementwise quotient.
func (m *Mat4) DivElem(other *Mat4) *Mat4 {
	return &Mat4{data: numeric.Div(m.data, other.data, nil)}
}

// AddScalar returns a new matrix with s added to every component.
func (m *Mat4) AddScalar(s float64) *Mat4 {
	return &Mat4{data: numeric.SAdd(m.data, s, nil)}
}

// SubScalar returns a new matrix with s subtracted from every component.
func (m *Mat4) SubScalar(s float64) *Mat4 {
	return &Mat4{data: numeric.SSub(m.data, s, nil)}
}

// MulScalar returns a new matrix with every component multiplied by s.
func (m *Mat4) MulScalar(s float64) *Mat4 {
	return &Mat4{data: numeric.SMul(m.data, s, nil)}
}

// DivScalar returns a new matrix with every component divided by s.
func (m *Mat4) DivScalar(s float64) *Mat4 {
	return &Mat4{data: numeric.SDiv(m.data, s, nil)}
}
