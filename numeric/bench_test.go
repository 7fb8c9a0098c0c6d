// SPDX-License-Identifier: MIT
// Package numeric_test: benchmarks for the product kernels. Run with:
//
//	go test -bench=. -benchmem ./numeric
package numeric_test

import (
	"testing"

	"github.com/katalvlaran/lvlmat/numeric"
)

// BenchmarkProductMat4Mat4 measures the steady-state (reused target) path.
func BenchmarkProductMat4Mat4(b *testing.B) {
	x := numeric.Generate(16, func(i int) float64 { return float64(i + 1) })
	y := numeric.Generate(16, func(i int) float64 { return float64(16 - i) })
	out := numeric.Zero(16)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		numeric.ProductMat4Mat4(x, y, out)
	}
}

// BenchmarkProductMat4Mat4Aliased measures the temporary-buffer path taken
// when the target aliases an operand.
func BenchmarkProductMat4Mat4Aliased(b *testing.B) {
	x := numeric.Generate(16, func(i int) float64 { return float64(i + 1) })
	y := numeric.Generate(16, func(i int) float64 { return float64(16 - i) })

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		numeric.ProductMat4Mat4(x, y, x)
	}
}

// BenchmarkProductMat4Vec3 measures the affine vector transform.
func BenchmarkProductMat4Vec3(b *testing.B) {
	m := numeric.Generate(16, func(i int) float64 { return float64(i + 1) })
	v := []float64{1, 2, 3}
	out := numeric.Zero(3)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		numeric.ProductMat4Vec3(m, v, out)
	}
}
