package vecmath

import (
	"fmt"
	"strings"
)

// Matrix is a 4×4 homogeneous transform. Entries are stored column-major:
// the entry at (row, col) lives at index row + 4*col, so iterating the array
// yields the columns in sequence (what glLoadMatrixf-style calls expect).
//
// Top-left 3×3 is the linear part, rows 0..2 of column 3 are the translation,
// row 3 is [0 0 0 1] for affine transforms.
type Matrix [16]Real

// index is the one mapping between logical (row, col) and storage.
func index(row, col int) int { return row + 4*col }

// Identity returns the 4×4 identity matrix.
func Identity() Matrix {
	return Matrix{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// NewMatrix takes the entries in reading order, m<row><col>, and stores them column-major.
func NewMatrix(
	m11, m12, m13, m14,
	m21, m22, m23, m24,
	m31, m32, m33, m34,
	m41, m42, m43, m44 Real,
) Matrix {
	var m Matrix
	rows := [4][4]Real{
		{m11, m12, m13, m14},
		{m21, m22, m23, m24},
		{m31, m32, m33, m34},
		{m41, m42, m43, m44},
	}
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			m[index(r, c)] = rows[r][c]
		}
	}
	return m
}

// FromColumnMajor wraps 16 values already laid out column by column.
func FromColumnMajor(a [16]Real) Matrix { return Matrix(a) }

func (m Matrix) At(row, col int) Real      { return m[index(row, col)] }
func (m *Matrix) Set(row, col int, x Real) { m[index(row, col)] = x }
func (m *Matrix) Ptr(row, col int) *Real   { return &m[index(row, col)] }
func (m Matrix) Array() [16]Real           { return [16]Real(m) }
func (m *Matrix) Slice() []Real            { return m[:] }

func (m *Matrix) AddAssign(o Matrix) *Matrix {
	for i := range m {
		m[i] += o[i]
	}
	return m
}

func (m *Matrix) SubAssign(o Matrix) *Matrix {
	for i := range m {
		m[i] -= o[i]
	}
	return m
}

func (m *Matrix) MulScalarAssign(s Real) *Matrix {
	for i := range m {
		m[i] *= s
	}
	return m
}

// DivScalarAssign multiplies by 1/s; s == 0 leaves non-finite entries.
func (m *Matrix) DivScalarAssign(s Real) *Matrix { return m.MulScalarAssign(1 / s) }

// MulAssign sets m = m * o, so o's transform is applied before m's.
// The product is built in a separate buffer; every output entry reads the
// original row of m.
func (m *Matrix) MulAssign(o Matrix) *Matrix {
	*m = Mul(*m, o)
	return m
}

// Mul is the canonical product: result(i,j) = Σk a(i,k)·b(k,j).
func Mul(a, b Matrix) Matrix {
	var r Matrix
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			var sum Real
			for k := 0; k < 4; k++ {
				sum += a[index(i, k)] * b[index(k, j)]
			}
			r[index(i, j)] = sum
		}
	}
	return r
}

func (m Matrix) Mul(o Matrix) Matrix     { return Mul(m, o) }
func (m Matrix) Add(o Matrix) Matrix     { return *m.AddAssign(o) }
func (m Matrix) Sub(o Matrix) Matrix     { return *m.SubAssign(o) }
func (m Matrix) MulScalar(s Real) Matrix { return *m.MulScalarAssign(s) }
func (m Matrix) DivScalar(s Real) Matrix { return *m.DivScalarAssign(s) }
func (m Matrix) Neg() Matrix             { return m.MulScalar(-1) }
func (m Matrix) Pos() Matrix             { return m }

// AddScalar adds s to every entry.
func (m Matrix) AddScalar(s Real) Matrix {
	for i := range m {
		m[i] += s
	}
	return m
}

// Transform applies m to v as a point (w = 1) and returns rows 0..2.
// The resulting w is dropped, no perspective divide happens here:
// use Project or TransformHomogeneous when m is projective.
func (m Matrix) Transform(v Vector) Vector {
	return Vector{
		v.X*m[index(0, 0)] + v.Y*m[index(0, 1)] + v.Z*m[index(0, 2)] + m[index(0, 3)],
		v.X*m[index(1, 0)] + v.Y*m[index(1, 1)] + v.Z*m[index(1, 2)] + m[index(1, 3)],
		v.X*m[index(2, 0)] + v.Y*m[index(2, 1)] + v.Z*m[index(2, 2)] + m[index(2, 3)],
	}
}

// TransformDirection applies only the linear 3×3 block (w = 0), so
// translation does not move directions such as normals.
func (m Matrix) TransformDirection(v Vector) Vector {
	return Vector{
		v.X*m[index(0, 0)] + v.Y*m[index(0, 1)] + v.Z*m[index(0, 2)],
		v.X*m[index(1, 0)] + v.Y*m[index(1, 1)] + v.Z*m[index(1, 2)],
		v.X*m[index(2, 0)] + v.Y*m[index(2, 1)] + v.Z*m[index(2, 2)],
	}
}

// TransformHomogeneous is Transform plus the fourth (w) row.
func (m Matrix) TransformHomogeneous(v Vector) (Vector, Real) {
	w := v.X*m[index(3, 0)] + v.Y*m[index(3, 1)] + v.Z*m[index(3, 2)] + m[index(3, 3)]
	return m.Transform(v), w
}

// Project transforms v and divides by w. It reports false when w is zero or
// the divided point is not finite.
func (m Matrix) Project(v Vector) (Vector, bool) {
	p, w := m.TransformHomogeneous(v)
	if w == 0 {
		return Vector{}, false
	}
	p = p.Div(w)
	return p, p.IsFinite()
}

// Transform applies m to v (v * m and m * v are the same operation here).
func (v Vector) Transform(m Matrix) Vector { return m.Transform(v) }

// TransformAssign replaces v by m applied to v.
func (v *Vector) TransformAssign(m Matrix) *Vector {
	*v = m.Transform(*v)
	return v
}

// Transpose swaps (i,j) with (j,i) in place.
func (m *Matrix) Transpose() *Matrix {
	for i := 0; i < 4; i++ {
		for j := i + 1; j < 4; j++ {
			a, b := index(i, j), index(j, i)
			m[a], m[b] = m[b], m[a]
		}
	}
	return m
}

func (m Matrix) Transposed() Matrix { return *m.Transpose() }

func (m Matrix) IsFinite() bool {
	for _, x := range m {
		if !isFinite(x) {
			return false
		}
	}
	return true
}

// ApproxEqual compares all 16 entries with an absolute tolerance.
func (m Matrix) ApproxEqual(o Matrix, eps Real) bool {
	for i := range m {
		if !approx(m[i], o[i], eps) {
			return false
		}
	}
	return true
}

// String prints the matrix row by row.
func (m Matrix) String() string {
	var b strings.Builder
	for r := 0; r < 4; r++ {
		if r > 0 {
			b.WriteByte('\n')
		}
		fmt.Fprintf(&b, "[%10.4f %10.4f %10.4f %10.4f]", m.At(r, 0), m.At(r, 1), m.At(r, 2), m.At(r, 3))
	}
	return b.String()
}
