// Package turtle implements turtle graphics on a Braille canvas.
//
// A Turtle has a floating-point position, a heading in degrees and a brush.
// Moving with the brush down draws a line on the canvas it owns.
package turtle

import (
	"math"

	"github.com/awelkie/drawille/internal/canvas/braille"
	"github.com/awelkie/drawille/internal/core"
)

// Turtle is a drawing cursor. Heading 0 points right, and since y grows
// downward, turning right (positive angles) rotates clockwise on screen.
type Turtle struct {
	X       float64
	Y       float64
	Heading float64 // Degrees, not normalized
	Brush   bool    // Whether moving draws

	canvas *braille.Canvas
}

// New creates a turtle at (x, y) with its brush down, facing right,
// drawing on a fresh canvas with no minimum size.
func New(x, y float64) *Turtle {
	return FromCanvas(x, y, braille.New(0, 0))
}

// FromCanvas creates a turtle at (x, y) that draws on c.
// The turtle takes ownership of c.
func FromCanvas(x, y float64, c *braille.Canvas) *Turtle {
	return &Turtle{
		X:      x,
		Y:      y,
		Brush:  true,
		canvas: c,
	}
}

// WithWidth sets the minimum width of the canvas in cells, not pixels,
// and returns the turtle for chaining.
func (t *Turtle) WithWidth(cells int) *Turtle {
	t.canvas.SetWidth(cells)
	return t
}

// WithHeight sets the minimum height of the canvas in cells, not pixels,
// and returns the turtle for chaining.
func (t *Turtle) WithHeight(cells int) *Turtle {
	t.canvas.SetHeight(cells)
	return t
}

// Canvas returns the canvas the turtle draws on.
func (t *Turtle) Canvas() *braille.Canvas {
	return t.canvas
}

// Up lifts the brush.
func (t *Turtle) Up() {
	t.Brush = false
}

// Down puts the brush down.
func (t *Turtle) Down() {
	t.Brush = true
}

// ToggleBrush flips the brush.
func (t *Turtle) ToggleBrush() {
	t.Brush = !t.Brush
}

// Right turns clockwise by angle degrees.
func (t *Turtle) Right(angle float64) {
	t.Heading += angle
}

// Left turns counter-clockwise by angle degrees.
func (t *Turtle) Left(angle float64) {
	t.Heading -= angle
}

// Forward moves dist steps along the heading.
func (t *Turtle) Forward(dist float64) {
	rad := t.Heading * math.Pi / 180
	t.Teleport(t.X+math.Cos(rad)*dist, t.Y+math.Sin(rad)*dist)
}

// Back moves dist steps against the heading.
func (t *Turtle) Back(dist float64) {
	t.Forward(-dist)
}

// Teleport moves the turtle to (x, y), drawing a line from the old position
// if the brush is down. Only the drawn endpoints are rounded and clamped to
// the canvas quadrant; the stored position keeps full precision.
func (t *Turtle) Teleport(x, y float64) {
	if t.Brush {
		t.canvas.Line(pixel(t.X), pixel(t.Y), pixel(x), pixel(y))
	}
	t.X = x
	t.Y = y
}

// pixel rounds a coordinate to the nearest pixel, clamped at zero.
func pixel(v float64) int {
	return core.Max(0, int(math.Round(v)))
}

// Frame renders the canvas.
func (t *Turtle) Frame() string {
	return t.canvas.Frame()
}
