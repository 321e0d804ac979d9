// Package sine implements a scrolling sine wave drawn on the Braille canvas.
package sine

import (
	"math"
	"math/rand"

	"github.com/awelkie/drawille/internal/canvas/braille"
	"github.com/awelkie/drawille/internal/core"
	"github.com/awelkie/drawille/internal/registry"
)

// Wave shape
const (
	Amplitude  = 0.8  // Fraction of the half height
	Wavelength = 48.0 // Pixels per period
	PhaseStep  = 0.15 // Radians scrolled per tick
	AxisDash   = 4    // Axis is drawn as dashes of this many pixels
)

func init() {
	registry.Register("sine", func() registry.Demo { return New() })
}

// Demo draws a sine wave that scrolls one phase step per tick.
// The starting phase is drawn from the config seed.
type Demo struct {
	canvas *braille.Canvas
	width  int // Pixels
	height int // Pixels
	start  float64
	tick   int
}

// New creates a sine demo. Call Reset before use.
func New() *Demo {
	return &Demo{}
}

// ID returns the unique identifier for this demo.
func (d *Demo) ID() string {
	return "sine"
}

// Title returns the display name for this demo.
func (d *Demo) Title() string {
	return "Sine Wave"
}

// Kind returns the canvas type.
func (d *Demo) Kind() string {
	return "braille"
}

// Reset sizes the canvas to the screen and rewinds the animation.
func (d *Demo) Reset(cfg core.RuntimeConfig) {
	d.width, d.height = cfg.PixelSize()
	d.canvas = braille.New(d.width, d.height)
	rng := rand.New(rand.NewSource(cfg.Seed))
	d.start = rng.Float64() * 2 * math.Pi
	d.tick = 0
	d.draw()
}

// Step scrolls the wave.
func (d *Demo) Step() {
	if d.canvas == nil {
		return
	}
	d.tick++
	d.draw()
}

// Frame renders the canvas.
func (d *Demo) Frame() string {
	if d.canvas == nil {
		return ""
	}
	return d.canvas.Frame()
}

// sample returns the wave's pixel row at column x.
func (d *Demo) sample(x int) int {
	mid := d.height / 2
	amp := float64(mid) * Amplitude
	phase := d.start + float64(d.tick)*PhaseStep
	v := math.Sin(2*math.Pi*float64(x)/Wavelength + phase)
	return mid - int(math.Round(amp*v))
}

func (d *Demo) draw() {
	d.canvas.Clear()

	prevY := d.sample(0)
	for x := 1; x <= d.width; x++ {
		y := d.sample(x)
		d.canvas.Line(x-1, prevY, x, y)
		prevY = y
	}

	// The axis is XORed over the wave, so crossings show as gaps.
	mid := d.height / 2
	for x := 0; x <= d.width; x++ {
		if (x/AxisDash)%2 == 0 {
			d.canvas.Toggle(x, mid)
		}
	}
}
