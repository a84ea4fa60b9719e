package vecmath

import (
	"fmt"

	"github.com/chewxy/math32"
)

// Vector is a 3-component Euclidean vector. The zero value is the zero vector.
// Vectors are plain values: copy them freely, but do not mutate one instance
// from several goroutines at once.
type Vector struct {
	X Real `mapstructure:"x" yaml:"x" json:"x"`
	Y Real `mapstructure:"y" yaml:"y" json:"y"`
	Z Real `mapstructure:"z" yaml:"z" json:"z"`
}

// Vec builds a vector from its components.
func Vec(x, y, z Real) Vector { return Vector{x, y, z} }

// Vector functions
func (a Vector) Add(b Vector) Vector { return Vector{a.X + b.X, a.Y + b.Y, a.Z + b.Z} }
func (a Vector) Sub(b Vector) Vector { return Vector{a.X - b.X, a.Y - b.Y, a.Z - b.Z} }
func (v Vector) Mul(s Real) Vector   { return Vector{v.X * s, v.Y * s, v.Z * s} }
func (v Vector) Neg() Vector         { return v.Mul(-1) }
func (v Vector) Pos() Vector         { return v }

// Div is v * (1/s). Dividing by zero yields non-finite components.
func (v Vector) Div(s Real) Vector { return v.Mul(1 / s) }

// DivInto is the scalar-on-the-left form of Div; it still divides v by s.
func (v Vector) DivInto(s Real) Vector { return v.Div(s) }

// Dot returns the Euclidean inner product.
func (a Vector) Dot(b Vector) Real { return a.X*b.X + a.Y*b.Y + a.Z*b.Z }

// Cross returns the right-handed cross product a × b.
func (a Vector) Cross(b Vector) Vector {
	return Vector{
		a.Y*b.Z - a.Z*b.Y,
		a.Z*b.X - a.X*b.Z,
		a.X*b.Y - a.Y*b.X,
	}
}

// DotProduct returns a.X*b.X + a.Y*b.Y + a.Z*b.Z.
func DotProduct(a, b Vector) Real { return a.Dot(b) }

// CrossProduct returns the right-handed cross product a × b.
func CrossProduct(a, b Vector) Vector { return a.Cross(b) }

func (v Vector) SquareLength() Real { return v.Dot(v) }
func (v Vector) Length() Real       { return math32.Sqrt(v.SquareLength()) }

// Normalized returns v / |v|. The zero vector has no direction: the result is
// NaN on every component and is left for the caller to detect with IsFinite.
func (v Vector) Normalized() Vector { return v.Div(v.Length()) }

func (v *Vector) AddAssign(b Vector) *Vector {
	v.X += b.X
	v.Y += b.Y
	v.Z += b.Z
	return v
}

func (v *Vector) SubAssign(b Vector) *Vector {
	v.X -= b.X
	v.Y -= b.Y
	v.Z -= b.Z
	return v
}

func (v *Vector) MulAssign(s Real) *Vector {
	v.X *= s
	v.Y *= s
	v.Z *= s
	return v
}

func (v *Vector) DivAssign(s Real) *Vector { return v.MulAssign(1 / s) }

// Normalize scales v to unit length in place. Same zero-vector policy as Normalized.
func (v *Vector) Normalize() *Vector { return v.DivAssign(v.Length()) }

// At returns component i (0=X, 1=Y, 2=Z). i outside [0,3) panics.
func (v Vector) At(i int) Real {
	a := v.Array()
	return a[i]
}

// Ptr returns a pointer to component i for in-place edits. i must be in [0,3).
func (v *Vector) Ptr(i int) *Real {
	switch i {
	case 0:
		return &v.X
	case 1:
		return &v.Y
	case 2:
		return &v.Z
	}
	panic(fmt.Sprintf("vecmath: vector index %d out of range [0,3)", i))
}

func (v *Vector) Set(i int, x Real) { *v.Ptr(i) = x }

// Array returns the three components contiguously, the layout vertex submission expects.
func (v Vector) Array() [3]Real { return [3]Real{v.X, v.Y, v.Z} }

func (v Vector) IsFinite() bool { return isFinite(v.X) && isFinite(v.Y) && isFinite(v.Z) }

// ApproxEqual compares componentwise with an absolute tolerance.
func (a Vector) ApproxEqual(b Vector, eps Real) bool {
	return approx(a.X, b.X, eps) && approx(a.Y, b.Y, eps) && approx(a.Z, b.Z, eps)
}

func (v Vector) String() string { return fmt.Sprintf("(%g, %g, %g)", v.X, v.Y, v.Z) }
