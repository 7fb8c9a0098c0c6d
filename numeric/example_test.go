// SPDX-License-Identifier: MIT

package numeric_test

import (
	"fmt"

	"github.com/katalvlaran/lvlmat/numeric"
)

// ExampleAdd demonstrates elementwise arithmetic with buffer reuse: passing
// an explicit target keeps the hot path allocation-free.
func ExampleAdd() {
	a := []float64{1, 2, 3}
	b := []float64{10, 20, 30}
	buf := make([]float64, 3) // reusable output buffer

	numeric.Add(a, b, buf)
	fmt.Println(buf)

	numeric.Add(buf, a, buf) // pointwise kernels are alias-safe
	fmt.Println(buf)

	// Output:
	// [11 22 33]
	// [12 24 36]
}

// ExampleProductMat4Vec3 transforms a point by a column-major translation
// matrix with the implicit homogeneous w = 1.
func ExampleProductMat4Vec3() {
	m := numeric.Zero(16)
	m[0], m[5], m[10], m[15] = 1, 1, 1, 1 // identity linear part
	m[12], m[13], m[14] = 1, 0, 0         // translate x by 1

	out := numeric.ProductMat4Vec3(m, []float64{0, 0, 0}, nil)
	fmt.Println(out)

	// Output:
	// [1 0 0]
}
