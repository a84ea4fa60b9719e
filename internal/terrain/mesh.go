package terrain

import (
	"context"

	"github.com/chewxy/math32"
	"github.com/lukaszgryglicki/terrain3d/internal/vecmath"
)

// RGB stores color components; each should be in [0,1].
type RGB struct {
	R Real `mapstructure:"r" yaml:"r" json:"r"`
	G Real `mapstructure:"g" yaml:"g" json:"g"`
	B Real `mapstructure:"b" yaml:"b" json:"b"`
}

func (c RGB) Mul(s Real) RGB { return RGB{c.R * s, c.G * s, c.B * s} }
func (c RGB) Add(o RGB) RGB  { return RGB{c.R + o.R, c.G + o.G, c.B + o.B} }

// clamp01 clamps each channel to [0,1].
func (c RGB) clamp01() RGB {
	cl := func(x Real) Real {
		if x < 0 {
			return 0
		}
		if x > 1 {
			return 1
		}
		return x
	}
	return RGB{cl(c.R), cl(c.G), cl(c.B)}
}

// Light is a point light fixed in eye space with ambient and diffuse terms.
type Light struct {
	Position vecmath.Vector `mapstructure:"position" yaml:"position" json:"position"`
	Ambient  Real           `mapstructure:"ambient" yaml:"ambient" json:"ambient"`
	Diffuse  Real           `mapstructure:"diffuse" yaml:"diffuse" json:"diffuse"`
}

func DefaultLight() Light {
	return Light{Position: vecmath.Vec(LightX, LightY, LightZ), Ambient: Ambient, Diffuse: Diffuse}
}

// shade returns the light intensity at eye-space point p with unit normal n.
func (l Light) shade(p, n vecmath.Vector) Real {
	toLight := l.Position.Sub(p)
	if toLight.SquareLength() == 0 {
		return l.Ambient + l.Diffuse
	}
	ndotl := vecmath.DotProduct(n, toLight.Normalized())
	return l.Ambient + l.Diffuse*math32.Max(0, ndotl)
}

// screenVertex is a grid point after the whole pipeline.
type screenVertex struct {
	X, Y  Real // pixels, y down
	Depth Real // eye-space z, more negative is farther
	Shade Real
	OK    bool // in front of the near plane and finite
}

// Mesh holds the per-vertex results of one frame, in heightfield order.
type Mesh struct {
	W, H  int
	Verts []screenVertex
}

// transformMesh runs every grid point through modelview, lighting and
// projection. The matrices are only read, so bands run concurrently.
func transformMesh(ctx context.Context, hf *Heightfield, scale Real, view, proj vecmath.Matrix, light Light, near Real, width, height, workers int) (*Mesh, error) {
	m := &Mesh{W: hf.W, H: hf.H, Verts: make([]screenVertex, len(hf.Buf))}
	fw, fh := Real(width), Real(height)
	err := forEachBand(ctx, hf.W, workers, func(ctx context.Context, lo, hi int) error {
		for x := lo; x < hi; x++ {
			if err := ctx.Err(); err != nil {
				return err
			}
			for z := 0; z < hf.H; z++ {
				eye := view.Transform(hf.Vertex(x, z, scale))
				sv := &m.Verts[hf.idx(x, z)]
				sv.Depth = eye.Z
				if -eye.Z < near {
					continue
				}
				ndc, ok := proj.Project(eye)
				if !ok {
					continue
				}
				n := view.TransformDirection(hf.Normal(x, z, scale))
				sv.X = (ndc.X + 1) * 0.5 * fw
				sv.Y = (1 - ndc.Y) * 0.5 * fh
				sv.Shade = light.shade(eye, n)
				sv.OK = true
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return m, nil
}

func (m *Mesh) at(x, z int) screenVertex { return m.Verts[x*m.H+z] }

// quad is one grid cell ready to rasterize.
type quad struct {
	P     [4][2]Real
	Depth Real
	Shade Real
}

// quads collects the drawable cells. Corners follow the order
// (x+1,z), (x,z), (x,z+1), (x+1,z+1); cells with any corner behind the near
// plane are dropped and counted.
func (m *Mesh) quads() (out []quad, culled int) {
	out = make([]quad, 0, (m.W-1)*(m.H-1))
	for x := 0; x < m.W-1; x++ {
		for z := 0; z < m.H-1; z++ {
			vs := [4]screenVertex{m.at(x+1, z), m.at(x, z), m.at(x, z+1), m.at(x+1, z+1)}
			var q quad
			ok := true
			for i, v := range vs {
				if !v.OK {
					ok = false
					break
				}
				q.P[i] = [2]Real{v.X, v.Y}
				q.Depth += v.Depth / 4
				q.Shade += v.Shade / 4
			}
			if !ok {
				culled++
				continue
			}
			out = append(out, q)
		}
	}
	return out, culled
}
