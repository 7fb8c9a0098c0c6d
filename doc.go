// Package lvlmat is a minimal linear-algebra layer for 3D applications:
// flat float64 array primitives plus a 4×4 column-major matrix built on them,
// used for geometric transforms (translation, scale, rotation) and vector
// transformation.
//
// 🚀 What is lvlmat?
//
//	A small, deterministic, zero-dependency library that brings together:
//		• Array primitives: creation, bulk copy/fill, elementwise & scalar arithmetic
//		• Metrics: inner product, length, normalisation
//		• Mat4: a 4×4 column-major matrix with in-place and allocating arithmetic
//		• Transform builders: translation, scale, axis/angle rotation (Rodrigues)
//		• Alias-safe matrix products: valid to multiply into one of the operands
//
// ✨ Why choose lvlmat?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Deterministic – fixed loop orders, no hidden allocations beyond results
//   - Pure Go – no cgo, no hidden deps
//   - Interop-ready – the raw column-major backing array is exposed for
//     rendering APIs that consume float arrays directly
//
// Under the hood, everything is organized under three subpackages:
//
//	numeric/ — flat []float64 primitives and the two matrix-product kernels
//	vec3/    — a 3-component vector with value semantics
//	mat4/    — the Mat4 type, arithmetic families and transform builders
//
// Quick orientation: a Mat4 stores 16 components column-major, so the linear
// index of (row, col), both 0-based in [0,3], is row + col*4. Consumers that
// read the backing buffer directly depend on exactly this layout.
//
//	go get github.com/katalvlaran/lvlmat
package lvlmat
