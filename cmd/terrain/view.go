package main

import (
	"context"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/lukaszgryglicki/terrain3d/internal/terrain"
)

// per-tick camera steps
const (
	turnDeg  = 2
	pitchDeg = 1
	walkStep = 0.5
)

type viewer struct {
	ctx    context.Context
	hf     *terrain.Heightfield
	r      *terrain.Renderer
	cam    terrain.Camera
	img    *ebiten.Image
	dirty  bool
	err    error
	frames int
	since  time.Time
}

func runViewer(ctx context.Context, cfg *terrain.Config) error {
	hf, err := terrain.LoadHeightfield(ctx, cfg)
	if err != nil {
		return err
	}
	r, err := terrain.NewRendererFromConfig(cfg)
	if err != nil {
		return err
	}
	v := &viewer{
		ctx:   ctx,
		hf:    hf,
		r:     r,
		cam:   cfg.Camera.Pivoted(hf.Center(cfg.Terrain.Scale)),
		dirty: true,
		since: time.Now(),
	}
	ebiten.SetWindowTitle("terrain")
	ebiten.SetWindowSize(cfg.Render.Width, cfg.Render.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if err := ebiten.RunGame(v); err != nil && err != ebiten.Termination {
		return err
	}
	return nil
}

func (v *viewer) Update() error {
	if v.err != nil {
		return v.err
	}
	if v.ctx.Err() != nil || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		ebiten.SetFullscreen(!ebiten.IsFullscreen())
	}

	cam := v.cam
	if ebiten.IsKeyPressed(ebiten.KeyArrowLeft) {
		cam = cam.Orbit(-turnDeg)
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowRight) {
		cam = cam.Orbit(turnDeg)
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowUp) {
		cam.PitchDeg += pitchDeg
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowDown) {
		cam.PitchDeg -= pitchDeg
	}
	if ebiten.IsKeyPressed(ebiten.KeyW) {
		cam = cam.Walk(walkStep)
	}
	if ebiten.IsKeyPressed(ebiten.KeyS) {
		cam = cam.Walk(-walkStep)
	}
	if cam != v.cam {
		v.cam = cam
		v.dirty = true
	}
	return nil
}

func (v *viewer) Draw(screen *ebiten.Image) {
	if v.dirty || v.img == nil {
		rgba, _, err := v.r.Render(v.ctx, v.hf, v.cam)
		if err != nil {
			v.err = err
			return
		}
		if v.img == nil {
			v.img = ebiten.NewImage(v.r.Width, v.r.Height)
		}
		v.img.WritePixels(rgba.Pix)
		v.dirty = false
	}
	screen.DrawImage(v.img, nil)

	v.frames++
	if v.frames%terrain.FPSEvery == 0 {
		el := time.Since(v.since)
		terrain.Log.WithField("frames", v.frames).Infof("%.2f FPS", float64(terrain.FPSEvery)/el.Seconds())
		v.since = time.Now()
	}
}

func (v *viewer) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth < 1 {
		outsideWidth = 1
	}
	if outsideHeight < 1 {
		outsideHeight = 1
	}
	if outsideWidth != v.r.Width || outsideHeight != v.r.Height {
		v.r.Resize(outsideWidth, outsideHeight)
		if v.img != nil {
			v.img.Deallocate()
			v.img = nil
		}
		v.dirty = true
	}
	return outsideWidth, outsideHeight
}
