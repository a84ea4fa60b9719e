// Package vecmath is a small 3D affine/projective math library: a 3-component
// Vector and a 4x4 homogeneous Matrix stored column-major, the layout fixed
// function graphics APIs load directly.
package vecmath

import "github.com/chewxy/math32"

// Real is the scalar type of every vector and matrix entry.
type Real = float32

func isFinite(x Real) bool { return !math32.IsInf(x, 0) && !math32.IsNaN(x) }

func approx(a, b, eps Real) bool { return math32.Abs(a-b) <= eps }

// Radians converts degrees to radians.
func Radians(deg Real) Real { return deg * math32.Pi / 180 }
