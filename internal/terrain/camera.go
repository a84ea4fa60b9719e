package terrain

import (
	"errors"
	"fmt"

	"github.com/lukaszgryglicki/terrain3d/internal/vecmath"
)

// Camera describes the view and the perspective projection. Angles are in
// degrees; they are converted once when the matrices are built.
type Camera struct {
	Position vecmath.Vector `mapstructure:"position" yaml:"position" json:"position"`
	Pivot    vecmath.Vector `mapstructure:"pivot" yaml:"pivot" json:"pivot"`
	PitchDeg Real           `mapstructure:"pitchDeg" yaml:"pitchDeg" json:"pitchDeg"`
	YawDeg   Real           `mapstructure:"yawDeg" yaml:"yawDeg" json:"yawDeg"`
	FovYDeg  Real           `mapstructure:"fovYDeg" yaml:"fovYDeg" json:"fovYDeg"`
	Near     Real           `mapstructure:"near" yaml:"near" json:"near"`
	Far      Real           `mapstructure:"far" yaml:"far" json:"far"`
}

// DefaultCamera frames the default 256x256 grid.
func DefaultCamera() Camera {
	return Camera{
		Position: vecmath.Vec(CameraX, CameraY, CameraZ),
		PitchDeg: PitchDeg,
		FovYDeg:  FovYDeg,
		Near:     NearPlane,
		Far:      FarPlane,
	}
}

// Validate rejects cameras whose projection would divide by zero or flip.
func (c Camera) Validate() error {
	if c.Near <= 0 {
		return fmt.Errorf("camera near plane must be > 0, got %g", c.Near)
	}
	if c.Near == c.Far {
		return errors.New("camera near and far planes must differ")
	}
	if c.Far < c.Near {
		return fmt.Errorf("camera far plane (%g) is in front of near plane (%g)", c.Far, c.Near)
	}
	if c.FovYDeg <= 0 || c.FovYDeg >= 180 {
		return fmt.Errorf("camera fovYDeg must be in (0, 180), got %g", c.FovYDeg)
	}
	if !c.Position.IsFinite() || !c.Pivot.IsFinite() {
		return errors.New("camera position and pivot must be finite")
	}
	return nil
}

// View is the modelview matrix: the world is turned about Pivot by yaw (Y
// axis) then pitch (X axis) and finally moved by Position.
//
//	View = T(Position) · Rx(pitch) · Ry(yaw) · T(-Pivot)
func (c Camera) View() vecmath.Matrix {
	m := vecmath.TranslationMatrixVec(c.Position)
	m.RotateX(vecmath.Radians(c.PitchDeg)).
		RotateY(vecmath.Radians(c.YawDeg)).
		MulAssign(vecmath.TranslationMatrixVec(c.Pivot.Neg()))
	return m
}

// Projection is the perspective matrix for the given viewport. A zero height
// is treated as 1, as window resize handlers usually do.
func (c Camera) Projection(width, height int) vecmath.Matrix {
	if height == 0 {
		height = 1
	}
	aspect := Real(width) / Real(height)
	return vecmath.PerspectiveMatrix(vecmath.Radians(c.FovYDeg), aspect, c.Near, c.Far)
}

// Pivoted returns a camera that orbits p while producing the same image at
// yaw 0: Position is moved by the pitch-rotated pivot to compensate.
func (c Camera) Pivoted(p vecmath.Vector) Camera {
	rx := vecmath.RotationMatrix(vecmath.Radians(c.PitchDeg), 1, 0, 0)
	delta := rx.Transform(p.Sub(c.Pivot))
	c.Position.AddAssign(delta)
	c.Pivot = p
	return c
}

// Orbit returns a copy turned by deg degrees around the pivot.
func (c Camera) Orbit(deg Real) Camera {
	c.YawDeg += deg
	return c
}

// Walk moves the camera along its viewing axis (positive = forward).
func (c Camera) Walk(d Real) Camera {
	c.Position.Z += d
	return c
}
