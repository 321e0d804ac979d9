package core

// RuntimeConfig contains configuration passed to demos at initialization.
// Demos use this to size their canvases and for deterministic animation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Animation ticks per second (default 30)
	Seed     int64 // RNG seed for demos that use randomness
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 30,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// PixelSize returns the pixel size to pass to a canvas constructor so that
// its rendered frame fills the screen. Canvases render one column and one
// row past their configured bound, hence the -1.
func (c RuntimeConfig) PixelSize() (width, height int) {
	return Max(c.ScreenW-1, 0) * 2, Max(c.ScreenH-1, 0) * 4
}
