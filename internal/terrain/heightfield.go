package terrain

import (
	"context"
	"fmt"
	"math"

	"github.com/lukaszgryglicki/terrain3d/internal/vecmath"
)

type Real = vecmath.Real

// HeightFunc maps grid coordinates to a height. It must be deterministic and
// safe to call from several goroutines.
type HeightFunc func(x, z int) Real

// SineCosine is the classic rolling field
//
//	h(x, z) = a·sin(x/px) + b·cos((z-zoff)/pz)
//
// With quantize set the value is truncated toward zero to an integer, like a
// 16-bit height buffer would store it.
func SineCosine(a, px, b, pz, zoff float64, quantize bool) HeightFunc {
	return func(x, z int) Real {
		h := a*math.Sin(float64(x)/px) + b*math.Cos((float64(z)-zoff)/pz)
		if quantize {
			h = float64(int16(h))
		}
		return Real(h)
	}
}

// Ridges is a sharper alternative: folded sines give crests instead of
// rounded hills.
func Ridges(a, px, b, pz, zoff float64, quantize bool) HeightFunc {
	return func(x, z int) Real {
		h := a*(1-2*math.Abs(math.Sin(float64(x)/px))) + b*(1-2*math.Abs(math.Cos((float64(z)-zoff)/pz)))
		if quantize {
			h = float64(int16(h))
		}
		return Real(h)
	}
}

// Heightfield is a W×H grid of heights in a flat buffer: Buf[x*H + z].
type Heightfield struct {
	W, H int
	Buf  []Real
}

// NewHeightfield allocates a flat zero grid.
func NewHeightfield(w, h int) (*Heightfield, error) {
	if w < 2 || h < 2 {
		return nil, fmt.Errorf("heightfield needs at least 2x2 points, got %dx%d", w, h)
	}
	return &Heightfield{W: w, H: h, Buf: make([]Real, w*h)}, nil
}

// Generate fills a new w×h heightfield from fn. Rows are split across
// workers; the result does not depend on the worker count.
func Generate(ctx context.Context, w, h int, fn HeightFunc, workers int) (*Heightfield, error) {
	hf, err := NewHeightfield(w, h)
	if err != nil {
		return nil, err
	}
	err = forEachBand(ctx, w, workers, func(ctx context.Context, lo, hi int) error {
		for x := lo; x < hi; x++ {
			if err := ctx.Err(); err != nil {
				return err
			}
			row := hf.Buf[x*h : (x+1)*h]
			for z := range row {
				row[z] = fn(x, z)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	DebugLog("Generated heightfield %dx%d", w, h)
	return hf, nil
}

func (hf *Heightfield) idx(x, z int) int { return x*hf.H + z }

func (hf *Heightfield) At(x, z int) Real     { return hf.Buf[hf.idx(x, z)] }
func (hf *Heightfield) Set(x, z int, h Real) { hf.Buf[hf.idx(x, z)] = h }

// Vertex is the world-space position of grid point (x, z).
func (hf *Heightfield) Vertex(x, z int, scale Real) vecmath.Vector {
	return vecmath.Vec(scale*Real(x), scale*hf.At(x, z), scale*Real(z))
}

// Normal estimates the unit surface normal at (x, z) from central
// differences (one-sided on the border).
func (hf *Heightfield) Normal(x, z int, scale Real) vecmath.Vector {
	xl, xr := max(x-1, 0), min(x+1, hf.W-1)
	zl, zr := max(z-1, 0), min(z+1, hf.H-1)
	tx := hf.Vertex(xr, z, scale).Sub(hf.Vertex(xl, z, scale))
	tz := hf.Vertex(x, zr, scale).Sub(hf.Vertex(x, zl, scale))
	n := vecmath.CrossProduct(tz, tx)
	return *n.Normalize()
}

// Center is the world-space midpoint of the grid at height 0.
func (hf *Heightfield) Center(scale Real) vecmath.Vector {
	return vecmath.Vec(scale*Real(hf.W-1)/2, 0, scale*Real(hf.H-1)/2)
}
