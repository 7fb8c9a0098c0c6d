// SPDX-License-Identifier: MIT

// Package mat4 provides a 4×4 matrix for 3D geometric transforms, stored as a
// 16-element column-major float64 array on top of the numeric primitives.
//
// Layout (binding contract for direct-buffer consumers, e.g. rendering APIs):
//
//	index = row + col*4, row and col 0-based in [0,3]
//
//	⎡ d0  d4  d8  d12 ⎤
//	⎢ d1  d5  d9  d13 ⎥
//	⎢ d2  d6  d10 d14 ⎥
//	⎣ d3  d7  d11 d15 ⎦
//
// The API is split into two clearly distinguished families:
//
//   - In-place arithmetic (…InPlace suffix) mutates the receiver and returns
//     it for chaining: m.AddInPlace(n).MulScalarInPlace(2).
//   - Allocating arithmetic (plain names) leaves the receiver unchanged and
//     returns a fresh matrix.
//
// Operand kinds are resolved statically by method name rather than runtime
// inspection: Add/AddInPlace take a *Mat4, AddScalar/AddScalarInPlace take a
// float64, MMul composes matrices, VMul transforms a vec3.Vec3.
//
// Ownership on construction is always explicit:
//
//   - Adopt(a) shares the caller's backing array by reference — later
//     external mutation of a is observable through the matrix. Deliberate
//     aliasing contract, opt-in only.
//   - FromArray(a) and Of(values...) always copy.
//
// Matrix composition uses the column-major convention with
// MMul(other) = receiver ∘ other: applying the result to a vector equals
// applying other first, then the receiver. MMul and VMul are alias-safe via
// the underlying numeric kernels — it is valid to multiply into one of the
// operands.
//
// Equality is epsilon-based: all 16 components within numeric.Epsilon (1e-9,
// absolute). Wrong component counts in Of/SSet and adopting a slice that is
// not exactly 16 elements long are programmer errors and panic with wrapped
// sentinels from errors.go; Get/Set bounds are an unchecked caller
// precondition.
package mat4
