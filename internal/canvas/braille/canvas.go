// Package braille draws monochrome pixels in a terminal using Braille
// pattern characters. Each cell packs a 2x4 grid of dots, so the canvas
// resolution is twice the terminal width and four times its height.
//
// The canvas is sparse and grows on write. It is not safe for concurrent use.
package braille

import (
	"strings"

	"github.com/awelkie/drawille/internal/core"
)

// Base is the code point of the empty Braille pattern. A cell with dot
// mask m renders as Base+m.
const Base = 0x2800

// dots maps a pixel's position inside its cell, [y%4][x%2], to the bit of
// the Braille dot it lights. The values follow Unicode's dot numbering.
var dots = [4][2]uint8{
	{0x01, 0x08},
	{0x02, 0x10},
	{0x04, 0x20},
	{0x40, 0x80},
}

// Canvas is a sparse grid of Braille dot masks.
type Canvas struct {
	grid *core.Grid[uint8]
}

// New creates a canvas with a minimum size given in pixels.
// The size is stored in cells: width/2 columns and height/4 rows.
func New(width, height int) *Canvas {
	return &Canvas{grid: core.NewGrid[uint8](width/2, height/4)}
}

// Size returns the configured minimum size in cells.
func (c *Canvas) Size() (width, height int) {
	return c.grid.Size()
}

// SetSize changes the configured minimum size, in cells.
func (c *Canvas) SetSize(width, height int) {
	c.grid.SetSize(width, height)
}

// SetWidth changes the configured minimum width, in cells.
func (c *Canvas) SetWidth(width int) {
	_, h := c.grid.Size()
	c.grid.SetSize(width, h)
}

// SetHeight changes the configured minimum height, in cells.
func (c *Canvas) SetHeight(height int) {
	w, _ := c.grid.Size()
	c.grid.SetSize(w, height)
}

// cellOf maps a pixel to its cell and the mask bit of its dot.
func cellOf(x, y int) (core.Point, uint8) {
	p := core.P(core.FloorDiv(x, 2), core.FloorDiv(y, 4))
	return p, dots[core.FloorMod(y, 4)][core.FloorMod(x, 2)]
}

// Clear removes everything drawn. The configured size is kept.
func (c *Canvas) Clear() {
	c.grid.Clear()
}

// Set lights the pixel at (x, y).
func (c *Canvas) Set(x, y int) {
	p, bit := cellOf(x, y)
	c.grid.Update(p, 0, func(m uint8) uint8 { return m | bit })
}

// Unset turns off the pixel at (x, y).
func (c *Canvas) Unset(x, y int) {
	p, bit := cellOf(x, y)
	c.grid.Update(p, 0, func(m uint8) uint8 { return m &^ bit })
}

// Toggle flips the pixel at (x, y).
func (c *Canvas) Toggle(x, y int) {
	p, bit := cellOf(x, y)
	c.grid.Update(p, 0, func(m uint8) uint8 { return m ^ bit })
}

// Get reports whether the pixel at (x, y) is lit.
func (c *Canvas) Get(x, y int) bool {
	p, bit := cellOf(x, y)
	m, ok := c.grid.Lookup(p)
	return ok && m&bit != 0
}

// Mask returns the dot mask of the cell containing pixel (x, y).
func (c *Canvas) Mask(x, y int) uint8 {
	p, _ := cellOf(x, y)
	m, _ := c.grid.Lookup(p)
	return m
}

// Line draws a segment between two pixels, endpoints included.
func (c *Canvas) Line(x1, y1, x2, y2 int) {
	for _, p := range core.Line(x1, y1, x2, y2) {
		c.Set(p.X, p.Y)
	}
}

// Glyph returns the character for a dot mask. An empty mask is a plain
// space rather than the blank Braille pattern.
func Glyph(mask uint8) rune {
	if mask == 0 {
		return ' '
	}
	return rune(Base + int(mask))
}

func encode(sb *strings.Builder, mask uint8) {
	sb.WriteRune(Glyph(mask))
}

// Rows renders the canvas one string per cell row.
func (c *Canvas) Rows() []string {
	return c.grid.Rows(0, encode, "")
}

// Frame renders the canvas as a single newline-separated string.
func (c *Canvas) Frame() string {
	return strings.Join(c.Rows(), "\n")
}
