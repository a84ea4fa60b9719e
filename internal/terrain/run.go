package terrain

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
)

// LoadHeightfield reads cfg.Terrain.RawIn when set, otherwise generates the
// configured height function.
func LoadHeightfield(ctx context.Context, cfg *Config) (*Heightfield, error) {
	start := time.Now()
	if cfg.Terrain.RawIn != "" {
		hf, err := LoadRaw(cfg.Terrain.RawIn)
		if err != nil {
			return nil, err
		}
		DebugLog("Loaded %dx%d heightfield from %s in %s", hf.W, hf.H, cfg.Terrain.RawIn, time.Since(start))
		return hf, nil
	}
	fn, err := cfg.HeightFunc()
	if err != nil {
		return nil, err
	}
	hf, err := Generate(ctx, cfg.Terrain.Size, cfg.Terrain.Size, fn, workerCount(cfg.Workers))
	if err != nil {
		return nil, fmt.Errorf("generate heightfield: %w", err)
	}
	DebugLog("Generated %s heightfield in %s", cfg.Terrain.Function, time.Since(start))
	return hf, nil
}

// NewRendererFromConfig builds a renderer for the configured output size.
func NewRendererFromConfig(cfg *Config) (*Renderer, error) {
	return NewRenderer(cfg.Render.Width, cfg.Render.Height, cfg.Terrain.Scale,
		cfg.Render.Color, cfg.Render.Background, cfg.Light, workerCount(cfg.Workers))
}

// Run produces every output named in cfg.Output: the PNG frame, the orbit
// GIF and the raw heightfield dump.
func Run(ctx context.Context, cfg *Config) error {
	HUD = HUD || cfg.Render.HUD
	hf, err := LoadHeightfield(ctx, cfg)
	if err != nil {
		return err
	}
	st := hf.Stats()
	Log.WithFields(logrus.Fields{
		"points": st.Points,
		"min":    st.Min,
		"max":    st.Max,
		"mean":   st.Mean,
		"stddev": st.StdDev,
	}).Info("Heightfield ready")

	if cfg.Output.Raw != "" {
		if err := hf.SaveRaw(cfg.Output.Raw); err != nil {
			return fmt.Errorf("save raw %s: %w", cfg.Output.Raw, err)
		}
		Log.Infof("Saved raw heightfield: %s", cfg.Output.Raw)
	}

	if cfg.Output.PNG == "" && cfg.Output.GIF == "" {
		return nil
	}
	r, err := NewRendererFromConfig(cfg)
	if err != nil {
		return err
	}

	if cfg.Output.PNG != "" {
		img, fs, err := r.Render(ctx, hf, cfg.Camera)
		if err != nil {
			return fmt.Errorf("render: %w", err)
		}
		DebugLog("Frame: %d quads, %d culled, %s", fs.Quads, fs.Culled, fs.Elapsed)
		if err := SavePNG(img, cfg.Output.PNG); err != nil {
			return fmt.Errorf("save png %s: %w", cfg.Output.PNG, err)
		}
		Log.Infof("Saved PNG: %s", cfg.Output.PNG)
	}

	if cfg.Output.GIF != "" {
		start := time.Now()
		cam := cfg.Camera.Pivoted(hf.Center(cfg.Terrain.Scale))
		if err := SaveOrbitGIF(ctx, r, hf, cam, cfg.Output.GIFFrames, cfg.Output.GIFDelay, cfg.Output.GIF); err != nil {
			return fmt.Errorf("save gif %s: %w", cfg.Output.GIF, err)
		}
		Log.Infof("Saved animated GIF: %s (%d frames, %s)", cfg.Output.GIF, cfg.Output.GIFFrames, time.Since(start))
	}
	return nil
}
