// Package spiral implements a growing square spiral drawn with the turtle.
package spiral

import (
	"github.com/awelkie/drawille/internal/core"
	"github.com/awelkie/drawille/internal/registry"
	"github.com/awelkie/drawille/internal/turtle"
)

// Spiral shape
const (
	TurnAngle  = 91.0 // Degrees turned after every segment
	StartStep  = 1.0  // Length of the first segment, in pixels
	StepGrowth = 0.75 // Extra length added to each following segment
	Fill       = 0.6  // Longest segment as a fraction of the smaller screen side
)

func init() {
	registry.Register("spiral", func() registry.Demo { return New() })
}

// Demo walks a turtle outward from the screen center, one segment per tick.
// When the next segment would no longer fit, it starts over.
type Demo struct {
	turtle *turtle.Turtle
	cfg    core.RuntimeConfig
	limit  float64 // Longest segment that fits on screen, in pixels
	tick   int
}

// New creates a spiral demo. Call Reset before use.
func New() *Demo {
	return &Demo{}
}

// ID returns the unique identifier for this demo.
func (d *Demo) ID() string {
	return "spiral"
}

// Title returns the display name for this demo.
func (d *Demo) Title() string {
	return "Turtle Spiral"
}

// Kind returns the canvas type.
func (d *Demo) Kind() string {
	return "turtle"
}

// Reset places a fresh turtle at the center of the screen.
func (d *Demo) Reset(cfg core.RuntimeConfig) {
	d.cfg = cfg
	w, h := cfg.PixelSize()
	d.limit = float64(core.Min(w, h)) * Fill
	d.tick = 0

	// The canvas bound is given in cells so the frame fills the screen
	// even before the spiral reaches the edges.
	d.turtle = turtle.New(float64(w)/2, float64(h)/2).
		WithWidth(core.Max(cfg.ScreenW-1, 0)).
		WithHeight(core.Max(cfg.ScreenH-1, 0))
}

// Step draws the next segment.
func (d *Demo) Step() {
	if d.turtle == nil {
		return
	}
	length := StartStep + float64(d.tick)*StepGrowth
	if length > d.limit {
		d.Reset(d.cfg)
		return
	}
	d.turtle.Forward(length)
	d.turtle.Right(TurnAngle)
	d.tick++
}

// Frame renders the turtle's canvas.
func (d *Demo) Frame() string {
	if d.turtle == nil {
		return ""
	}
	return d.turtle.Frame()
}
