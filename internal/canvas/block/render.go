package block

import (
	"strings"

	"github.com/awelkie/drawille/internal/core"
)

// Renderer turns cells into terminal text.
// Implementations let the canvas target terminals other than ANSI ones.
type Renderer interface {
	// Cell appends one cell to the row being built.
	Cell(sb *strings.Builder, p Pixel)
	// RowEnd returns the text appended after the last cell of every row.
	RowEnd() string
}

// ANSI renders cells with raw 8-color escape sequences:
// ESC[0;4<bg>m ESC[3<fg>m <glyph>, with ESC[0m closing each row.
type ANSI struct{}

// Cell implements Renderer.
func (ANSI) Cell(sb *strings.Builder, p Pixel) {
	sb.WriteString(p.Bg.Bg())
	sb.WriteString(p.Fg.Fg())
	sb.WriteRune(p.Char)
}

// RowEnd implements Renderer.
func (ANSI) RowEnd() string {
	return core.EscReset
}

// Plain renders only the glyphs, dropping colors.
// Useful for snapshots and terminals without color support.
type Plain struct{}

// Cell implements Renderer.
func (Plain) Cell(sb *strings.Builder, p Pixel) {
	sb.WriteRune(p.Char)
}

// RowEnd implements Renderer.
func (Plain) RowEnd() string {
	return ""
}
