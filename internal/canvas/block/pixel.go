package block

import "github.com/awelkie/drawille/internal/core"

// HalfBlock is the glyph used to draw a pair of colored sub-pixels:
// the background shows the top half, the foreground the bottom half.
const HalfBlock = '▄'

// PixelKind tells which variant a Pixel holds.
type PixelKind uint8

const (
	PixelText PixelKind = iota // One character with background/foreground colors
	PixelPair                  // Two stacked color sub-pixels
)

// Pixel is the content of one cell of a block canvas.
//
// For PixelText, Bg and Fg are the character colors. For PixelPair, Bg is
// the top sub-pixel and Fg the bottom one, and Char is always HalfBlock.
// Both variants render the same way: background, foreground, glyph.
type Pixel struct {
	Kind PixelKind
	Bg   Color
	Fg   Color
	Char rune
}

// Color is re-exported so callers of this package rarely need core.
type Color = core.Color

// TextPixel returns a text cell.
func TextPixel(fg, bg Color, r rune) Pixel {
	return Pixel{Kind: PixelText, Bg: bg, Fg: fg, Char: r}
}

// PairPixel returns a cell holding two stacked sub-pixels.
func PairPixel(top, bottom Color) Pixel {
	return Pixel{Kind: PixelPair, Bg: top, Fg: bottom, Char: HalfBlock}
}

// blank is the value of a cell that was never written.
var blank = TextPixel(core.ColorBlack, core.ColorBlack, ' ')

// IsText reports whether the cell holds text.
func (p Pixel) IsText() bool {
	return p.Kind == PixelText
}

// Sub returns sub-pixel i (0 top, 1 bottom) of a pair cell.
// It returns ErrTextCell for text cells.
func (p Pixel) Sub(i int) (Color, error) {
	if p.IsText() {
		return core.ColorBlack, ErrTextCell
	}
	switch i {
	case 0:
		return p.Bg, nil
	case 1:
		return p.Fg, nil
	}
	panic("block: sub-pixel index out of range")
}

// withSub returns a copy of a pair cell with sub-pixel i set to c.
func (p Pixel) withSub(i int, c Color) Pixel {
	switch i {
	case 0:
		p.Bg = c
	case 1:
		p.Fg = c
	default:
		panic("block: sub-pixel index out of range")
	}
	return p
}
