package terrain

import (
	"context"
	"image"
	"image/color/palette"
	"image/draw"
	"image/gif"
	"os"
	"path/filepath"
)

// SaveOrbitGIF renders frames frames while the camera turns a full circle
// around its pivot and writes them as a looping GIF.
// delay is in 100ths of a second (e.g., 5 => 20 fps).
func SaveOrbitGIF(ctx context.Context, r *Renderer, hf *Heightfield, cam Camera, frames, delay int, path string) error {
	if frames < 1 {
		frames = 1
	}
	out := &gif.GIF{
		Image:     make([]*image.Paletted, 0, frames),
		Delay:     make([]int, 0, frames),
		LoopCount: 0,
	}
	step := Real(360) / Real(frames)
	for k := 0; k < frames; k++ {
		if k%max(1, frames/10) == 0 {
			Log.WithField("frame", k).Infof("[GIF] %.2f%%", float64(k+1)*100/float64(frames))
		}
		rgba, st, err := r.Render(ctx, hf, cam.Orbit(step*Real(k)))
		if err != nil {
			return err
		}
		DebugLog("GIF frame %d: %d quads in %s", k, st.Quads, st.Elapsed)

		// Quantize to paletted for GIF
		pimg := image.NewPaletted(rgba.Bounds(), palette.Plan9)
		draw.FloydSteinberg.Draw(pimg, pimg.Bounds(), rgba, image.Point{})

		out.Image = append(out.Image, pimg)
		out.Delay = append(out.Delay, delay)
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return gif.EncodeAll(f, out)
}
