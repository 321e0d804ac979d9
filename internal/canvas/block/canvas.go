// Package block draws colored pixels in a terminal using half-block glyphs.
//
// Every cell packs two vertically stacked pixels: the cell background shows
// the top one and the foreground of a lower-half-block glyph the bottom one.
// A cell can also hold a single character of text instead.
//
// The canvas is sparse and grows on write. It is not safe for concurrent use.
package block

import (
	"errors"
	"strings"

	"github.com/awelkie/drawille/internal/core"
)

// ErrTextCell is returned when a color operation targets a cell holding text.
var ErrTextCell = errors.New("block: cell holds text, not colors")

// Canvas is a sparse grid of half-block cells.
type Canvas struct {
	grid     *core.Grid[Pixel]
	renderer Renderer
}

// New creates a canvas with a minimum size given in pixels.
// The size is stored in cells: width/2 columns and height/4 rows.
func New(width, height int) *Canvas {
	return &Canvas{
		grid:     core.NewGrid[Pixel](width/2, height/4),
		renderer: ANSI{},
	}
}

// Size returns the configured minimum size in cells.
func (c *Canvas) Size() (width, height int) {
	return c.grid.Size()
}

// SetSize changes the configured minimum size, in cells.
func (c *Canvas) SetSize(width, height int) {
	c.grid.SetSize(width, height)
}

// SetRenderer replaces the cell encoder used by Rows and Frame.
// A nil renderer restores the default ANSI encoder.
func (c *Canvas) SetRenderer(r Renderer) {
	if r == nil {
		r = ANSI{}
	}
	c.renderer = r
}

// cellOf maps a pixel to its cell and sub-pixel index.
// The x axis is not compressed: one pixel column is one cell column.
func cellOf(x, y int) (core.Point, int) {
	return core.P(x, core.FloorDiv(y, 2)), core.FloorMod(y, 2)
}

// Clear removes everything drawn. The configured size is kept.
func (c *Canvas) Clear() {
	c.grid.Clear()
}

// Text writes s one character per cell, starting at the cell holding pixel
// (x, y) and moving right. Each target cell is replaced by a text cell.
func (c *Canvas) Text(x, y int, fg, bg Color, s string) {
	p, _ := cellOf(x, y)
	i := 0
	for _, r := range s {
		c.grid.Put(core.P(p.X+i, p.Y), TextPixel(fg, bg, r))
		i++
	}
}

// Set colors the pixel at (x, y). A text cell is first turned into a
// black pair, losing its character.
func (c *Canvas) Set(x, y int, color Color) {
	p, sub := cellOf(x, y)
	c.grid.Update(p, blank, func(px Pixel) Pixel {
		if px.IsText() {
			px = PairPixel(core.ColorBlack, core.ColorBlack)
		}
		return px.withSub(sub, color)
	})
}

// Unset paints the pixel at (x, y) black.
// It returns ErrTextCell, leaving the canvas untouched, if the cell holds text.
func (c *Canvas) Unset(x, y int) error {
	p, sub := cellOf(x, y)
	if px, ok := c.grid.Lookup(p); ok && px.IsText() {
		return ErrTextCell
	}
	c.grid.Update(p, PairPixel(core.ColorBlack, core.ColorBlack), func(px Pixel) Pixel {
		return px.withSub(sub, core.ColorBlack)
	})
	return nil
}

// Get returns the color of the pixel at (x, y); black if nothing was drawn.
// It returns ErrTextCell if the cell holds text.
func (c *Canvas) Get(x, y int) (Color, error) {
	p, sub := cellOf(x, y)
	px, ok := c.grid.Lookup(p)
	if !ok {
		return core.ColorBlack, nil
	}
	return px.Sub(sub)
}

// Cell returns the raw cell containing pixel (x, y) and whether it was written.
func (c *Canvas) Cell(x, y int) (Pixel, bool) {
	p, _ := cellOf(x, y)
	return c.grid.Lookup(p)
}

// Line draws a segment between two pixels, endpoints included.
func (c *Canvas) Line(x1, y1, x2, y2 int, color Color) {
	for _, p := range core.Line(x1, y1, x2, y2) {
		c.Set(p.X, p.Y, color)
	}
}

// Rows renders the canvas one string per cell row.
func (c *Canvas) Rows() []string {
	r := c.renderer
	return c.grid.Rows(blank, r.Cell, r.RowEnd())
}

// Frame renders the canvas as a single newline-separated string.
func (c *Canvas) Frame() string {
	return strings.Join(c.Rows(), "\n")
}
