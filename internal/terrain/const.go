package terrain

import "math"

// Defaults, most of them taken from the classic fixed-function demo this
// renderer reproduces.
const (
	AreaSize     = 256 // grid points per side
	VertexScale  = 0.1 // world units per grid step and per height unit
	ScreenWidth  = 640
	ScreenHeight = 480
	FovYDeg      = 45
	NearPlane    = 0.1
	FarPlane     = 200
	CameraX      = -13
	CameraY      = 0
	CameraZ      = -42
	PitchDeg     = 0.35 * 180 / math.Pi
	Ambient      = 0.5
	Diffuse      = 1.0
	LightX       = 0
	LightY       = 0
	LightZ       = 2
	PNGOut       = "terrain.png"
	GIFFrames    = 36
	GIFDelay     = 5 // 100ths of a second per frame
	FPSEvery     = 100
	EnvPrefix    = "TERRAIN"
	// parameters of the default sine/cosine height field
	SinAmplitude = 10
	SinPeriod    = 24
	CosAmplitude = 7
	CosPeriod    = 18
	CosOffset    = 50
)
