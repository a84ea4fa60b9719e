package terrain

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// TerrainCfg selects and parametrizes the height function.
type TerrainCfg struct {
	Size         int     `mapstructure:"size" yaml:"size" json:"size"`
	Function     string  `mapstructure:"function" yaml:"function" json:"function"` // sincos | ridges
	SinAmplitude float64 `mapstructure:"sinAmplitude" yaml:"sinAmplitude" json:"sinAmplitude"`
	SinPeriod    float64 `mapstructure:"sinPeriod" yaml:"sinPeriod" json:"sinPeriod"`
	CosAmplitude float64 `mapstructure:"cosAmplitude" yaml:"cosAmplitude" json:"cosAmplitude"`
	CosPeriod    float64 `mapstructure:"cosPeriod" yaml:"cosPeriod" json:"cosPeriod"`
	CosOffset    float64 `mapstructure:"cosOffset" yaml:"cosOffset" json:"cosOffset"`
	Quantize     bool    `mapstructure:"quantize" yaml:"quantize" json:"quantize"`
	Scale        Real    `mapstructure:"scale" yaml:"scale" json:"scale"`

	// When set, heights are loaded from this raw dump instead of generated.
	RawIn string `mapstructure:"rawIn" yaml:"rawIn" json:"rawIn"`
}

type RenderCfg struct {
	Width      int  `mapstructure:"width" yaml:"width" json:"width"`
	Height     int  `mapstructure:"height" yaml:"height" json:"height"`
	Color      RGB  `mapstructure:"color" yaml:"color" json:"color"`
	Background RGB  `mapstructure:"background" yaml:"background" json:"background"`
	HUD        bool `mapstructure:"hud" yaml:"hud" json:"hud"`
}

// OutputCfg lists the files a run writes; an empty path skips that output.
type OutputCfg struct {
	PNG       string `mapstructure:"png" yaml:"png" json:"png"`
	GIF       string `mapstructure:"gif" yaml:"gif" json:"gif"`
	GIFFrames int    `mapstructure:"gifFrames" yaml:"gifFrames" json:"gifFrames"`
	GIFDelay  int    `mapstructure:"gifDelay" yaml:"gifDelay" json:"gifDelay"`
	Raw       string `mapstructure:"raw" yaml:"raw" json:"raw"`
}

type Config struct {
	Terrain TerrainCfg `mapstructure:"terrain" yaml:"terrain" json:"terrain"`
	Camera  Camera     `mapstructure:"camera" yaml:"camera" json:"camera"`
	Light   Light      `mapstructure:"light" yaml:"light" json:"light"`
	Render  RenderCfg  `mapstructure:"render" yaml:"render" json:"render"`
	Output  OutputCfg  `mapstructure:"output" yaml:"output" json:"output"`
	Workers int        `mapstructure:"workers" yaml:"workers" json:"workers"` // <= 0 means one per CPU
}

// DefaultConfig reproduces the classic demo: 256x256 sine/cosine grid,
// green terrain on black, 640x480.
func DefaultConfig() Config {
	return Config{
		Terrain: TerrainCfg{
			Size:         AreaSize,
			Function:     "sincos",
			SinAmplitude: SinAmplitude,
			SinPeriod:    SinPeriod,
			CosAmplitude: CosAmplitude,
			CosPeriod:    CosPeriod,
			CosOffset:    CosOffset,
			Quantize:     true,
			Scale:        VertexScale,
		},
		Camera: DefaultCamera(),
		Light:  DefaultLight(),
		Render: RenderCfg{
			Width:  ScreenWidth,
			Height: ScreenHeight,
			Color:  RGB{0, 0.5, 0.1},
		},
		Output: OutputCfg{
			PNG:       PNGOut,
			GIFFrames: GIFFrames,
			GIFDelay:  GIFDelay,
		},
	}
}

// LoadConfig merges, lowest priority first: DefaultConfig, the file at path
// (JSON or YAML by extension; empty path skips it) and TERRAIN_* environment
// variables such as TERRAIN_RENDER_WIDTH.
func LoadConfig(path string) (*Config, error) {
	v := viper.New()
	if err := setDefaults(v, DefaultConfig()); err != nil {
		return nil, err
	}
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	DebugLog("Loaded config from %q: size=%d, function=%s, %dx%d, workers=%d",
		path, cfg.Terrain.Size, cfg.Terrain.Function, cfg.Render.Width, cfg.Render.Height, cfg.Workers)
	return &cfg, nil
}

// setDefaults registers every leaf of def as a viper default, so that
// environment variables can override keys the file never mentions.
func setDefaults(v *viper.Viper, def Config) error {
	data, err := yaml.Marshal(def)
	if err != nil {
		return err
	}
	var tree map[string]interface{}
	if err := yaml.Unmarshal(data, &tree); err != nil {
		return err
	}
	var walk func(prefix string, m map[string]interface{})
	walk = func(prefix string, m map[string]interface{}) {
		for k, val := range m {
			key := k
			if prefix != "" {
				key = prefix + "." + k
			}
			if sub, ok := val.(map[string]interface{}); ok {
				walk(key, sub)
				continue
			}
			v.SetDefault(key, val)
		}
	}
	walk("", tree)
	return nil
}

// Validate fills zero values with defaults and rejects settings that cannot
// produce an image.
func (c *Config) Validate() error {
	if c.Terrain.Size <= 0 {
		c.Terrain.Size = AreaSize
	}
	if c.Terrain.Size < 2 {
		return fmt.Errorf("terrain.size must be at least 2, got %d", c.Terrain.Size)
	}
	if c.Terrain.Scale <= 0 {
		c.Terrain.Scale = VertexScale
	}
	if c.Terrain.Function == "" {
		c.Terrain.Function = "sincos"
	}
	if _, err := c.HeightFunc(); err != nil {
		return err
	}
	if c.Terrain.SinPeriod == 0 || c.Terrain.CosPeriod == 0 {
		return errors.New("terrain periods must be non-zero")
	}
	if c.Render.Width <= 0 {
		c.Render.Width = ScreenWidth
	}
	if c.Render.Height <= 0 {
		c.Render.Height = ScreenHeight
	}
	if c.Output.GIFFrames <= 0 {
		c.Output.GIFFrames = GIFFrames
	}
	if c.Output.GIFDelay <= 0 {
		c.Output.GIFDelay = GIFDelay
	}
	if err := c.Camera.Validate(); err != nil {
		return err
	}
	return nil
}

// HeightFunc returns the configured height function.
func (c *Config) HeightFunc() (HeightFunc, error) {
	t := c.Terrain
	switch strings.ToLower(t.Function) {
	case "sincos", "":
		return SineCosine(t.SinAmplitude, t.SinPeriod, t.CosAmplitude, t.CosPeriod, t.CosOffset, t.Quantize), nil
	case "ridges":
		return Ridges(t.SinAmplitude, t.SinPeriod, t.CosAmplitude, t.CosPeriod, t.CosOffset, t.Quantize), nil
	default:
		return nil, fmt.Errorf("unknown terrain.function %q (want sincos or ridges)", t.Function)
	}
}

// WriteDefaultConfig writes DefaultConfig as YAML. It refuses to overwrite
// an existing file unless force is set.
func WriteDefaultConfig(path string, force bool) error {
	if !force {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("%s already exists", path)
		}
	}
	data, err := yaml.Marshal(DefaultConfig())
	if err != nil {
		return err
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	return os.WriteFile(path, data, 0o644)
}
