// SPDX-License-Identifier: MIT
// Package mat4_test: benchmarks for composition and vector transform. Run with:
//
//	go test -bench=. -benchmem ./mat4
package mat4_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/lvlmat/mat4"
	"github.com/katalvlaran/lvlmat/vec3"
)

// BenchmarkMMul measures steady-state composition into a reused target.
func BenchmarkMMul(b *testing.B) {
	m := mat4.Rotation(vec3.New(0, 0, 1), 0.5)
	n := mat4.Translation(1, 2, 3)
	out := mat4.New()

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		m.MMul(n, out)
	}
}

// BenchmarkVMul measures the affine point transform.
func BenchmarkVMul(b *testing.B) {
	m := mat4.Rotation(vec3.New(0, 1, 0), math.Pi/3)
	v := vec3.New(1, 2, 3)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = m.VMul(v)
	}
}

// BenchmarkAddInPlace measures the zero-allocation arithmetic path.
func BenchmarkAddInPlace(b *testing.B) {
	m := mat4.One()
	n := mat4.Identity()

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		m.AddInPlace(n)
	}
}
