package vecmath

import (
	"math/rand"
	"testing"

	"github.com/chewxy/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVectorOps(t *testing.T) {
	v := Vec(1, 2, 3)
	w := Vec(-1, 0.5, 2)

	assert.Equal(t, Vec(0, 2.5, 5), v.Add(w))
	assert.Equal(t, Vec(2, 1.5, 1), v.Sub(w))
	assert.Equal(t, Vec(3, 6, 9), v.Mul(3))
	assert.Equal(t, Vec(0.5, 1, 1.5), v.Div(2))
	assert.Equal(t, Vec(0.5, 1, 1.5), v.DivInto(2))
	assert.Equal(t, Vec(-1, -2, -3), v.Neg())
	assert.Equal(t, v, v.Pos())
	// operands are values and stay untouched
	assert.Equal(t, Vec(1, 2, 3), v)
}

func TestVectorAssignChains(t *testing.T) {
	v := Vec(1, 1, 1)
	v.AddAssign(Vec(1, 2, 3)).MulAssign(2).SubAssign(Vec(4, 6, 8)).DivAssign(2)
	assert.Equal(t, Vec(0, 0, 0), v)
}

func TestDotProductExact(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 200; i++ {
		a := Vec(Real(rng.Intn(200)-100), Real(rng.Intn(200)-100), Real(rng.Intn(200)-100))
		b := Vec(Real(rng.Intn(200)-100), Real(rng.Intn(200)-100), Real(rng.Intn(200)-100))
		require.Equal(t, a.X*b.X+a.Y*b.Y+a.Z*b.Z, DotProduct(a, b))
	}
	// z terms are multiplied, not added
	assert.Equal(t, Real(0), DotProduct(Vec(0, 0, 2), Vec(0, 0, 0)))
}

func TestCrossProduct(t *testing.T) {
	assert.Equal(t, Vec(0, 0, 1), CrossProduct(Vec(1, 0, 0), Vec(0, 1, 0)))
	assert.Equal(t, Vec(1, 0, 0), CrossProduct(Vec(0, 1, 0), Vec(0, 0, 1)))
	assert.Equal(t, Vec(0, 1, 0), CrossProduct(Vec(0, 0, 1), Vec(1, 0, 0)))
	assert.Equal(t, Vec(-3, 6, -3), CrossProduct(Vec(1, 2, 3), Vec(4, 5, 6)))

	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 200; i++ {
		a := Vec(rng.Float32()*2-1, rng.Float32()*2-1, rng.Float32()*2-1)
		b := Vec(rng.Float32()*2-1, rng.Float32()*2-1, rng.Float32()*2-1)
		c := CrossProduct(a, b)
		if c.Length() < 1e-3 {
			continue // nearly parallel
		}
		require.InDelta(t, 0, DotProduct(c, a), 1e-5)
		require.InDelta(t, 0, DotProduct(c, b), 1e-5)
	}
}

func TestLengthAndNormalize(t *testing.T) {
	v := Vec(2, 3, 6)
	assert.Equal(t, Real(49), v.SquareLength())
	assert.Equal(t, Real(7), v.Length())
	assert.Equal(t, Real(0), Vector{}.Length())

	n := v.Normalized()
	assert.InDelta(t, 1, n.Length(), 1e-6)
	assert.Equal(t, Vec(2, 3, 6), v)

	v.Normalize()
	assert.True(t, v.ApproxEqual(Vec(2.0/7, 3.0/7, 6.0/7), 1e-6))
}

func TestNormalizeZeroPropagatesNaN(t *testing.T) {
	var z Vector
	z.Normalize()
	assert.False(t, z.IsFinite())
	assert.True(t, math32.IsNaN(z.X))
	assert.False(t, Vec(1, 0, 0).Div(0).IsFinite())
}

func TestVectorIndexing(t *testing.T) {
	v := Vec(4, 5, 6)
	assert.Equal(t, Real(4), v.At(0))
	assert.Equal(t, Real(6), v.At(2))
	v.Set(1, 9)
	*v.Ptr(2) += 1
	assert.Equal(t, Vec(4, 9, 7), v)
	assert.Equal(t, [3]Real{4, 9, 7}, v.Array())
	assert.Panics(t, func() { v.Ptr(3) })
	assert.Panics(t, func() { _ = v.At(-1) })
}

func TestVectorString(t *testing.T) {
	assert.Equal(t, "(1, -2.5, 0)", Vec(1, -2.5, 0).String())
}
