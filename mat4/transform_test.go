// Package mat4_test contains unit tests for the geometric transform builders.
package mat4_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/lvlmat/mat4"
	"github.com/katalvlaran/lvlmat/vec3"
	"github.com/stretchr/testify/require"
)

// TestTranslationLayout verifies the identity linear part and the
// translation column at indices 12..14.
func TestTranslationLayout(t *testing.T) {
	m := mat4.Translation(7, 8, 9)

	raw := m.Raw()
	require.Equal(t, 7.0, raw[12])
	require.Equal(t, 8.0, raw[13])
	require.Equal(t, 9.0, raw[14])
	require.Equal(t, 1.0, raw[15])

	// zeroing the translation column must recover the identity
	c := m.Clone()
	c.Set(0, 3, 0)
	c.Set(1, 3, 0)
	c.Set(2, 3, 0)
	require.True(t, mat4.Equal(c, mat4.Identity()))
}

// TestTranslationVec matches the component form.
func TestTranslationVec(t *testing.T) {
	require.True(t, mat4.Equal(
		mat4.TranslationVec(vec3.New(1, 2, 3)),
		mat4.Translation(1, 2, 3),
	))
}

// TestScale verifies diag(x, y, z, 1) and its action on a point.
func TestScale(t *testing.T) {
	m := mat4.Scale(2, 3, 4)
	require.Equal(t, 2.0, m.Get(0, 0))
	require.Equal(t, 3.0, m.Get(1, 1))
	require.Equal(t, 4.0, m.Get(2, 2))
	require.Equal(t, 1.0, m.Get(3, 3))
	require.Equal(t, 0.0, m.Get(0, 1)) // off-diagonal stays zero

	require.True(t, vec3.Equal(vec3.New(2, 3, 4), m.VMul(vec3.New(1, 1, 1))))
}

// TestRotationZeroAngle yields the identity for any unit axis.
func TestRotationZeroAngle(t *testing.T) {
	require.True(t, mat4.Equal(mat4.Rotation(vec3.New(0, 1, 0), 0), mat4.Identity()))
}

// TestRotationAboutAxes pins quarter turns about the three basis axes.
func TestRotationAboutAxes(t *testing.T) {
	quarter := math.Pi / 2

	// about x: y → z
	rx := mat4.Rotation(vec3.New(1, 0, 0), quarter)
	require.True(t, vec3.Equal(vec3.New(0, 0, 1), rx.VMul(vec3.New(0, 1, 0))))

	// about y: z → x
	ry := mat4.Rotation(vec3.New(0, 1, 0), quarter)
	require.True(t, vec3.Equal(vec3.New(1, 0, 0), ry.VMul(vec3.New(0, 0, 1))))

	// about z: x → y
	rz := mat4.Rotation(vec3.New(0, 0, 1), quarter)
	require.True(t, vec3.Equal(vec3.New(0, 1, 0), rz.VMul(vec3.New(1, 0, 0))))
}

// TestRotationPreservesAxis: the rotation axis is a fixed point of the map.
func TestRotationPreservesAxis(t *testing.T) {
	inv := 1 / math.Sqrt(2)
	axis := vec3.New(inv, 0, inv)

	r := mat4.Rotation(axis, 2.1)
	require.True(t, vec3.Equal(axis, r.VMul(axis)))
}

// TestRotationOrthonormal: R(axis,θ) ∘ R(axis,−θ) == I, i.e. the transpose
// relation that holds only for a proper rotation matrix.
func TestRotationOrthonormal(t *testing.T) {
	inv := 1 / math.Sqrt(3)
	axis := vec3.New(inv, -inv, inv)

	got := mat4.Rotation(axis, 0.7).MMul(mat4.Rotation(axis, -0.7), nil)
	require.True(t, mat4.Equal(got, mat4.Identity()))
}

// TestBuildersArePure: builders return fresh instances every call.
func TestBuildersArePure(t *testing.T) {
	a := mat4.Translation(1, 1, 1)
	b := mat4.Translation(1, 1, 1)
	require.NotSame(t, a, b)
	require.NotSame(t, &a.Raw()[0], &b.Raw()[0])

	a.Set(0, 0, 99) // mutating one instance must not leak into the next
	require.True(t, mat4.Equal(b, mat4.Translation(1, 1, 1)))
}
