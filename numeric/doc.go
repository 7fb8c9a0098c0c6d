// SPDX-License-Identifier: MIT

// Package numeric provides flat []float64 array primitives for 3D math:
// creation, bulk copy/fill, elementwise and scalar arithmetic, equality,
// inner product, and the two size-dispatched matrix-product kernels used by
// the mat4 package.
//
// Design:
//   - Arrays are ordinary 0-indexed Go slices; length is implicit from content.
//   - Every operation that accepts an optional output target (`into`) writes
//     there instead of allocating, enabling zero-allocation buffer reuse.
//     Passing nil allocates and returns a fresh slice.
//   - Pointwise kernels (elementwise, scalar broadcast) are alias-safe by
//     construction: each output cell depends only on the input cell(s) at the
//     same index, so into may equal a or b.
//   - Matrix multiplication is NOT naturally alias-safe; ProductMat4Mat4
//     detects self-aliasing and materializes a temporary before writing back.
//
// Determinism & Performance:
//   - Fixed loop orders (flat 0..n-1), no hidden allocations beyond results.
//   - Arithmetic degeneracy (division by zero, normalising a zero-length
//     vector) yields IEEE-754 Inf/NaN that propagates silently; it is never
//     intercepted.
//
// Failure semantics:
//   - Length preconditions are programmer errors and are not recoverable:
//     unsupported length pairs in MatrixProduct panic with a wrapped
//     ErrProductShape naming both operand lengths. Elementwise kernels
//     require len(b) ≥ len(a) as a documented caller precondition; violating
//     it surfaces as a runtime bounds panic, not a checked error.
//
// AI-Hints:
//   - Reuse `into` buffers across frames/iterations to stay allocation-free.
//   - Keep 16-element matrix buffers and 3-element vector buffers distinct;
//     the product dispatcher selects the kernel from exactly those lengths.
package numeric
