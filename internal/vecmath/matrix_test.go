package vecmath

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

const eps = 1e-5

func sample() Matrix {
	return NewMatrix(
		1, 2, 3, 4,
		0, 1, 0, 0.5,
		2, 0, 1, -1,
		0, 0, 0.25, 1,
	)
}

func randomMatrix(rng *rand.Rand) Matrix {
	var m Matrix
	for i := range m {
		m[i] = rng.Float32()*4 - 2
	}
	return m
}

func TestNewMatrixIsColumnMajor(t *testing.T) {
	m := NewMatrix(
		11, 12, 13, 14,
		21, 22, 23, 24,
		31, 32, 33, 34,
		41, 42, 43, 44,
	)
	assert.Equal(t, [16]Real{
		11, 21, 31, 41,
		12, 22, 32, 42,
		13, 23, 33, 43,
		14, 24, 34, 44,
	}, m.Array())
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			require.Equal(t, Real(10*(r+1)+c+1), m.At(r, c))
			require.Equal(t, m.At(r, c), m[r+4*c])
		}
	}
	assert.Equal(t, m, FromColumnMajor(m.Array()))
	assert.Len(t, m.Slice(), 16)
}

func TestIdentity(t *testing.T) {
	I := Identity()
	assert.Equal(t, NewMatrix(1, 0, 0, 0, 0, 1, 0, 0, 0, 0, 1, 0, 0, 0, 0, 1), I)

	rng := rand.New(rand.NewSource(3))
	for i := 0; i < 50; i++ {
		M := randomMatrix(rng)
		require.True(t, M.Mul(I).ApproxEqual(M, eps))
		require.True(t, I.Mul(M).ApproxEqual(M, eps))
	}
	// callers get fresh copies
	I.Set(0, 0, 5)
	assert.Equal(t, Real(1), Identity().At(0, 0))
}

func TestMulMatchesGonum(t *testing.T) {
	toDense := func(m Matrix) *mat.Dense {
		d := mat.NewDense(4, 4, nil)
		for r := 0; r < 4; r++ {
			for c := 0; c < 4; c++ {
				d.Set(r, c, float64(m.At(r, c)))
			}
		}
		return d
	}
	rng := rand.New(rand.NewSource(11))
	for i := 0; i < 50; i++ {
		a, b := randomMatrix(rng), randomMatrix(rng)
		var want mat.Dense
		want.Mul(toDense(a), toDense(b))
		got := Mul(a, b)
		for r := 0; r < 4; r++ {
			for c := 0; c < 4; c++ {
				require.InDelta(t, want.At(r, c), float64(got.At(r, c)), 1e-4, "(%d,%d)", r, c)
			}
		}
	}
}

func TestMulAssignUsesOriginalRow(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	for i := 0; i < 50; i++ {
		a, b := randomMatrix(rng), randomMatrix(rng)
		want := Mul(a, b)
		got := a
		got.MulAssign(b)
		require.Equal(t, want, got)

		// self-composition must not read half-updated entries
		sq := a
		sq.MulAssign(sq)
		require.Equal(t, Mul(a, a), sq)
	}
}

func TestMulIsNotCommutative(t *testing.T) {
	T := TranslationMatrix(1, 0, 0)
	R := RotationMatrix(halfPi, 0, 0, 1)
	assert.False(t, T.Mul(R).ApproxEqual(R.Mul(T), eps))
}

func TestTransposeTwiceIsExact(t *testing.T) {
	rng := rand.New(rand.NewSource(9))
	for i := 0; i < 50; i++ {
		M := randomMatrix(rng)
		require.Equal(t, M, M.Transposed().Transposed())
	}
	M := sample()
	T := M.Transposed()
	assert.Equal(t, M.At(1, 0), T.At(0, 1))
	assert.Equal(t, M.At(2, 3), T.At(3, 2))
	for i := 0; i < 4; i++ {
		assert.Equal(t, M.At(i, i), T.At(i, i))
	}
	S := T.Mul(M)
	assert.InDelta(t, S.At(0, 1), S.At(1, 0), eps)
}

func TestArithmeticDoesNotMutateOperands(t *testing.T) {
	a := sample()
	b := Identity()
	a0, b0 := a, b

	sum := a.Add(b)
	diff := a.Sub(b)
	assert.Equal(t, a0, a)
	assert.Equal(t, b0, b)
	assert.Equal(t, Real(2), sum.At(0, 0))
	assert.Equal(t, Real(0), diff.At(0, 0))
	assert.Equal(t, a, sum.Sub(b))

	assert.Equal(t, Real(8), a.MulScalar(2).At(0, 3))
	assert.Equal(t, a.MulScalar(0.5), a.DivScalar(2))
	assert.Equal(t, a.MulScalar(-1), a.Neg())
	assert.Equal(t, a, a.Pos())
	assert.Equal(t, Real(3), a.AddScalar(2).At(0, 0))
	assert.Equal(t, a0, a)
}

func TestAssignOperators(t *testing.T) {
	m := Identity()
	m.AddAssign(Identity()).MulScalarAssign(3).SubAssign(Identity()).DivScalarAssign(5)
	assert.True(t, m.ApproxEqual(Identity(), eps))

	var z Matrix
	z.DivScalarAssign(0)
	assert.False(t, z.IsFinite())
	assert.True(t, Identity().IsFinite())
}

func TestElementAccess(t *testing.T) {
	m := Identity()
	m.Set(2, 3, 7)
	*m.Ptr(3, 0) = -1
	assert.Equal(t, Real(7), m[14])
	assert.Equal(t, Real(-1), m[3])
	assert.Equal(t, Real(7), m.At(2, 3))
}

func TestTransformVector(t *testing.T) {
	M := sample()
	v := Vec(1, -1, 2)
	want := Vec(
		1*1+2*-1+3*2+4,
		0*1+1*-1+0*2+0.5,
		2*1+0*-1+1*2-1,
	)
	assert.Equal(t, want, M.Transform(v))
	assert.Equal(t, want, v.Transform(M))

	u := v
	u.TransformAssign(M)
	assert.Equal(t, want, u)

	// w row is dropped by Transform and reported by TransformHomogeneous
	p, w := M.TransformHomogeneous(v)
	assert.Equal(t, want, p)
	assert.Equal(t, Real(0.25*2+1), w)
}

func TestTransformDirectionIgnoresTranslation(t *testing.T) {
	M := TranslationMatrix(5, 6, 7)
	M.RotateZ(halfPi)
	d := M.TransformDirection(Vec(1, 0, 0))
	assert.True(t, d.ApproxEqual(Vec(0, 1, 0), eps), "%v", d)
}

func TestProject(t *testing.T) {
	P := PerspectiveMatrix(Radians(90), 1, 1, 10)
	ndc, ok := P.Project(Vec(0, 0, -1))
	require.True(t, ok)
	assert.InDelta(t, -1, ndc.Z, eps)
	ndc, ok = P.Project(Vec(0, 0, -10))
	require.True(t, ok)
	assert.InDelta(t, 1, ndc.Z, eps)

	_, ok = P.Project(Vec(1, 1, 0))
	assert.False(t, ok, "w == 0 on the eye plane")

	p, ok := Identity().Project(Vec(1, 2, 3))
	require.True(t, ok)
	assert.Equal(t, Vec(1, 2, 3), p)
}

func TestMatrixString(t *testing.T) {
	s := Identity().String()
	assert.Contains(t, s, "[    1.0000     0.0000     0.0000     0.0000]")
	assert.Equal(t, 3, countLines(s))
}

func countLines(s string) int {
	n := 0
	for _, r := range s {
		if r == '\n' {
			n++
		}
	}
	return n
}
