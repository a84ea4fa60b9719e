package vecmath

import "github.com/chewxy/math32"

// RotationMatrix builds the right-handed rotation of angle radians about the
// axis (x, y, z) with Rodrigues' formula. The axis is normalized when its
// squared length is not 1; a zero axis has no direction and produces NaN
// entries.
func RotationMatrix(angle, x, y, z Real) Matrix {
	s := math32.Sin(angle)
	c := math32.Cos(angle)
	ic := 1 - c
	if l := x*x + y*y + z*z; l != 1 {
		l = 1 / math32.Sqrt(l)
		x *= l
		y *= l
		z *= l
	}
	return NewMatrix(
		c+ic*x*x, ic*x*y-s*z, ic*x*z+s*y, 0,
		ic*x*y+s*z, c+ic*y*y, ic*y*z-s*x, 0,
		ic*x*z-s*y, ic*y*z+s*x, c+ic*z*z, 0,
		0, 0, 0, 1,
	)
}

func RotationMatrixVec(angle Real, axis Vector) Matrix {
	return RotationMatrix(angle, axis.X, axis.Y, axis.Z)
}

// TranslationMatrix is the identity with (x, y, z) in the translation column.
func TranslationMatrix(x, y, z Real) Matrix {
	return NewMatrix(
		1, 0, 0, x,
		0, 1, 0, y,
		0, 0, 1, z,
		0, 0, 0, 1,
	)
}

func TranslationMatrixVec(v Vector) Matrix { return TranslationMatrix(v.X, v.Y, v.Z) }

// ScalingMatrix is the identity with (x, y, z) on the diagonal.
func ScalingMatrix(x, y, z Real) Matrix {
	return NewMatrix(
		x, 0, 0, 0,
		0, y, 0, 0,
		0, 0, z, 0,
		0, 0, 0, 1,
	)
}

func ScalingMatrixVec(v Vector) Matrix { return ScalingMatrix(v.X, v.Y, v.Z) }

// FrustumMatrix maps the view volume bounded by the six planes into clip
// space (glFrustum layout). near == far, left == right or bottom == top
// divide by zero.
func FrustumMatrix(left, right, bottom, top, near, far Real) Matrix {
	return NewMatrix(
		2*near/(right-left), 0, (right+left)/(right-left), 0,
		0, 2*near/(top-bottom), (top+bottom)/(top-bottom), 0,
		0, 0, (far+near)/(near-far), 2*far*near/(near-far),
		0, 0, -1, 0,
	)
}

// PerspectiveMatrix is the symmetric frustum with vertical field of view fovY
// (radians) and width/height aspect. near must differ from far.
func PerspectiveMatrix(fovY, aspect, near, far Real) Matrix {
	f := 1 / math32.Tan(fovY/2)
	return NewMatrix(
		f/aspect, 0, 0, 0,
		0, f, 0, 0,
		0, 0, (far+near)/(near-far), 2*far*near/(near-far),
		0, 0, -1, 0,
	)
}
