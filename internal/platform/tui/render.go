package tui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/awelkie/drawille/internal/canvas/block"
	"github.com/awelkie/drawille/internal/core"
)

// StyleRenderer encodes block canvas cells with lipgloss styles instead of
// raw escapes, so the output adapts to the color profile of the terminal
// (or SSH session) it is written to.
type StyleRenderer struct {
	styles [core.ColorCount][core.ColorCount]lipgloss.Style // [bg][fg]
}

// NewStyleRenderer builds the 64 cell styles on r.
// A nil r uses lipgloss's default renderer.
func NewStyleRenderer(r *lipgloss.Renderer) *StyleRenderer {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	sr := &StyleRenderer{}
	for bg := core.ColorBlack; bg < core.ColorCount; bg++ {
		for fg := core.ColorBlack; fg < core.ColorCount; fg++ {
			sr.styles[bg][fg] = r.NewStyle().
				Background(termColor(bg)).
				Foreground(termColor(fg))
		}
	}
	return sr
}

// Cell implements block.Renderer.
func (sr *StyleRenderer) Cell(sb *strings.Builder, p block.Pixel) {
	if !p.Bg.Valid() || !p.Fg.Valid() {
		sb.WriteRune(p.Char)
		return
	}
	sb.WriteString(sr.styles[p.Bg][p.Fg].Render(string(p.Char)))
}

// RowEnd implements block.Renderer. Styled cells reset themselves.
func (sr *StyleRenderer) RowEnd() string {
	return ""
}

// CellRenderer returns the block cell encoder named by name, building
// styles on r. Unknown names select ANSI escapes.
func CellRenderer(name string, r *lipgloss.Renderer) block.Renderer {
	if name == "lipgloss" {
		return NewStyleRenderer(r)
	}
	return block.ANSI{}
}

// termColor maps a base color to its ANSI palette index.
func termColor(c core.Color) lipgloss.Color {
	return lipgloss.Color(strconv.Itoa(int(c)))
}

// Theme holds the styles of the viewer chrome.
type Theme struct {
	Title  lipgloss.Style
	Status lipgloss.Style
	Paused lipgloss.Style
	Help   lipgloss.Style
	Item   lipgloss.Style
	Active lipgloss.Style
	Dim    lipgloss.Style
}

// NewTheme returns the chrome styles using accent, a base color name,
// for highlights. Unknown names fall back to cyan.
func NewTheme(r *lipgloss.Renderer, accent string) Theme {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	c, ok := core.ParseColor(accent)
	if !ok {
		c = core.ColorCyan
	}
	ac := termColor(c)

	return Theme{
		Title:  r.NewStyle().Bold(true).Foreground(lipgloss.Color("0")).Background(ac).Padding(0, 1),
		Status: r.NewStyle().Foreground(lipgloss.Color("245")),
		Paused: r.NewStyle().Bold(true).Foreground(ac),
		Help:   r.NewStyle().Foreground(lipgloss.Color("241")),
		Item:   r.NewStyle().Foreground(lipgloss.Color("252")),
		Active: r.NewStyle().Bold(true).Foreground(ac),
		Dim:    r.NewStyle().Foreground(lipgloss.Color("241")).Italic(true),
	}
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}
