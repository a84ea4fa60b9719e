package terrain

var (
	Debug    = false // set to true for verbose debug output
	HUD      = false // set to true to draw the FPS / quad counter on rendered frames
	Parallel = true  // set to false to transform and generate on a single goroutine
)
