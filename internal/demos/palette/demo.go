// Package palette implements a color test card drawn on the block canvas.
package palette

import (
	"errors"

	"github.com/awelkie/drawille/internal/canvas/block"
	"github.com/awelkie/drawille/internal/core"
	"github.com/awelkie/drawille/internal/registry"
)

// Title text written on the top row.
const Caption = "drawille palette"

// Sweep speeds
const (
	SweepEvery = 2 // Ticks per pixel moved by the diagonal
	ScanEvery  = 1 // Ticks per pixel moved by the scanline
)

func init() {
	registry.Register("palette", func() registry.Demo { return New() })
}

// Demo draws one vertical bar per base color, with a white diagonal
// sweeping across and a black scanline rolling down.
type Demo struct {
	canvas   *block.Canvas
	renderer block.Renderer
	cols     int // Pixel columns, one per cell
	rows     int // Pixel rows, two per cell
	tick     int
}

// New creates a palette demo. Call Reset before use.
func New() *Demo {
	return &Demo{}
}

// ID returns the unique identifier for this demo.
func (d *Demo) ID() string {
	return "palette"
}

// Title returns the display name for this demo.
func (d *Demo) Title() string {
	return "Color Palette"
}

// Kind returns the canvas type.
func (d *Demo) Kind() string {
	return "block"
}

// SetRenderer changes how the block canvas encodes cells.
// It may be called before or after Reset.
func (d *Demo) SetRenderer(r block.Renderer) {
	d.renderer = r
	if d.canvas != nil {
		d.canvas.SetRenderer(r)
	}
}

// Reset sizes the canvas to the screen and rewinds the animation.
func (d *Demo) Reset(cfg core.RuntimeConfig) {
	w, h := cfg.PixelSize()
	d.canvas = block.New(w, h)
	d.canvas.SetRenderer(d.renderer)
	d.cols = core.Max(cfg.ScreenW, 1)
	d.rows = core.Max(cfg.ScreenH, 1) * 2
	d.tick = 0
	d.draw()
}

// Step advances the sweeps.
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

// barColor returns the color of the bar covering pixel column x.
func (d *Demo) barColor(x int) core.Color {
	return core.Color(x * int(core.ColorCount) / d.cols)
}

// clearRow unsets pixel row y across the screen and returns the number of
// text cells it left alone.
func (d *Demo) clearRow(y int) int {
	kept := 0
	for x := 0; x < d.cols; x++ {
		if err := d.canvas.Unset(x, y); errors.Is(err, block.ErrTextCell) {
			kept++
		}
	}
	return kept
}

func (d *Demo) draw() {
	d.canvas.Clear()

	// Bars start below the caption row.
	top := 2
	for x := 0; x < d.cols; x++ {
		c := d.barColor(x)
		for y := top; y < d.rows; y++ {
			d.canvas.Set(x, y, c)
		}
	}

	if d.rows > top {
		span := d.rows - top
		offset := (d.tick / SweepEvery) % (d.cols + span)
		d.canvas.Line(offset-span, top, offset, d.rows-1, core.ColorWhite)

		d.clearRow(top + (d.tick/ScanEvery)%span)
	}

	caption := []rune(Caption)
	if len(caption) > d.cols {
		caption = caption[:d.cols]
	}
	d.canvas.Text(0, 0, core.ColorWhite, core.ColorBlack, string(caption))
}
