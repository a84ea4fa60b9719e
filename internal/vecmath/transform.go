package vecmath

import "github.com/chewxy/math32"

// Translate adds (x, y, z) to the translation column. For an affine m this is
// TranslationMatrix(x, y, z) * m: the move happens after m's transform.
func (m *Matrix) Translate(x, y, z Real) *Matrix {
	m[index(0, 3)] += x
	m[index(1, 3)] += y
	m[index(2, 3)] += z
	return m
}

func (m *Matrix) TranslateVec(v Vector) *Matrix { return m.Translate(v.X, v.Y, v.Z) }

// Scale multiplies rows 0, 1, 2 of the linear block by x, y, z. The
// translation column is not touched, so this equals ScalingMatrix(x, y, z) * m
// only while m carries no translation.
func (m *Matrix) Scale(x, y, z Real) *Matrix {
	f := [3]Real{x, y, z}
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			m[index(r, c)] *= f[r]
		}
	}
	return m
}

func (m *Matrix) ScaleVec(v Vector) *Matrix { return m.Scale(v.X, v.Y, v.Z) }

// Rotate sets m = m * RotationMatrix(angle, x, y, z): the rotation is applied
// before m's transform. angle is in radians.
func (m *Matrix) Rotate(angle, x, y, z Real) *Matrix {
	return m.MulAssign(RotationMatrix(angle, x, y, z))
}

func (m *Matrix) RotateVec(angle Real, axis Vector) *Matrix {
	return m.Rotate(angle, axis.X, axis.Y, axis.Z)
}

// rotatePlane right-multiplies m by a rotation in the (a, b) column plane,
// touching only columns a and b. (a, b) = (1,2), (2,0), (0,1) give the
// right-handed rotations about X, Y and Z.
func (m *Matrix) rotatePlane(angle Real, a, b int) *Matrix {
	s, c := math32.Sin(angle), math32.Cos(angle)
	for r := 0; r < 4; r++ {
		p, q := m[index(r, a)], m[index(r, b)]
		m[index(r, a)] = c*p + s*q
		m[index(r, b)] = -s*p + c*q
	}
	return m
}

// RotateX is Rotate(angle, 1, 0, 0) without building the rotation matrix.
func (m *Matrix) RotateX(angle Real) *Matrix { return m.rotatePlane(angle, 1, 2) }

// RotateY is Rotate(angle, 0, 1, 0) without building the rotation matrix.
func (m *Matrix) RotateY(angle Real) *Matrix { return m.rotatePlane(angle, 2, 0) }

// RotateZ is Rotate(angle, 0, 0, 1) without building the rotation matrix.
func (m *Matrix) RotateZ(angle Real) *Matrix { return m.rotatePlane(angle, 0, 1) }

// Copying forms of the builders above; the receiver is left unchanged.
func (m Matrix) Translated(x, y, z Real) Matrix     { return *m.Translate(x, y, z) }
func (m Matrix) Scaled(x, y, z Real) Matrix         { return *m.Scale(x, y, z) }
func (m Matrix) Rotated(angle, x, y, z Real) Matrix { return *m.Rotate(angle, x, y, z) }
func (m Matrix) RotatedX(angle Real) Matrix         { return *m.RotateX(angle) }
func (m Matrix) RotatedY(angle Real) Matrix         { return *m.RotateY(angle) }
func (m Matrix) RotatedZ(angle Real) Matrix         { return *m.RotateZ(angle) }
