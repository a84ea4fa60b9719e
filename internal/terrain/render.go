package terrain

import (
	"context"
	"errors"
	"fmt"
	"image"
	"sort"
	"time"

	"github.com/fogleman/gg"
	"golang.org/x/image/font/basicfont"

	"github.com/lukaszgryglicki/terrain3d/internal/vecmath"
)

// Renderer rasterizes a heightfield as lit quads with the painter's
// algorithm. It is not safe for concurrent use; one Renderer per goroutine.
type Renderer struct {
	Width, Height int
	Scale         Real
	Color         RGB
	Background    RGB
	Light         Light
	Workers       int

	im *image.RGBA
	dc *gg.Context
}

// FrameStats describes one rendered frame.
type FrameStats struct {
	Quads   int
	Culled  int
	Elapsed time.Duration
}

func (s FrameStats) FPS() float64 {
	if s.Elapsed <= 0 {
		return 0
	}
	return float64(time.Second) / float64(s.Elapsed)
}

// NewRenderer builds a renderer for a width×height target.
func NewRenderer(width, height int, scale Real, color, background RGB, light Light, workers int) (*Renderer, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("render target must be positive, got %dx%d", width, height)
	}
	r := &Renderer{
		Scale:      scale,
		Color:      color.clamp01(),
		Background: background.clamp01(),
		Light:      light,
		Workers:    workers,
	}
	r.Resize(width, height)
	return r, nil
}

// Resize reallocates the target; the next frame uses the new aspect ratio.
func (r *Renderer) Resize(width, height int) {
	if width == r.Width && height == r.Height && r.im != nil {
		return
	}
	r.Width, r.Height = width, height
	r.im = image.NewRGBA(image.Rect(0, 0, width, height))
	r.dc = gg.NewContextForRGBA(r.im)
	DebugLog("Render target %dx%d", width, height)
}

// Render draws one frame. The returned image is owned by the renderer and is
// overwritten by the next call.
func (r *Renderer) Render(ctx context.Context, hf *Heightfield, cam Camera) (*image.RGBA, FrameStats, error) {
	start := time.Now()
	if err := cam.Validate(); err != nil {
		return nil, FrameStats{}, err
	}
	view := cam.View()
	proj := cam.Projection(r.Width, r.Height)
	if !view.IsFinite() || !proj.IsFinite() {
		return nil, FrameStats{}, errors.New("camera produced a non-finite matrix")
	}
	DebugLogOnce("Projection:\n%v", proj)

	mesh, err := transformMesh(ctx, hf, r.Scale, view, proj, r.Light, cam.Near, r.Width, r.Height, r.Workers)
	if err != nil {
		return nil, FrameStats{}, err
	}
	qs, culled := mesh.quads()
	sort.SliceStable(qs, func(i, j int) bool { return qs[i].Depth < qs[j].Depth })

	dc := r.dc
	dc.SetRGB(float64(r.Background.R), float64(r.Background.G), float64(r.Background.B))
	dc.Clear()
	dc.SetLineWidth(1)
	for _, q := range qs {
		c := r.Color.Mul(q.Shade).clamp01()
		dc.SetRGB(float64(c.R), float64(c.G), float64(c.B))
		dc.MoveTo(float64(q.P[0][0]), float64(q.P[0][1]))
		for _, p := range q.P[1:] {
			dc.LineTo(float64(p[0]), float64(p[1]))
		}
		dc.ClosePath()
		// the stroke hides hairline gaps between neighbouring fills
		dc.FillPreserve()
		dc.Stroke()
	}

	st := FrameStats{Quads: len(qs), Culled: culled, Elapsed: time.Since(start)}
	if HUD {
		r.drawHUD(st)
	}
	return r.im, st, nil
}

func (r *Renderer) drawHUD(st FrameStats) {
	dc := r.dc
	dc.SetFontFace(basicfont.Face7x13)
	dc.SetRGB(1, 1, 1)
	dc.DrawString(fmt.Sprintf("%.2f FPS  %d quads  %d culled", st.FPS(), st.Quads, st.Culled), 8, 16)
}

// BackendMatrices exposes the matrices a fixed-function backend would load, as
// 16 column-major floats each.
func BackendMatrices(cam Camera, width, height int) (modelview, projection [16]vecmath.Real) {
	return cam.View().Array(), cam.Projection(width, height).Array()
}
