package core

import "strings"

// Color is one of the eight base terminal colors.
// The numeric value is written directly into ANSI escape codes,
// so the order of the constants must not change.
type Color uint8

// Base terminal colors, in ANSI order.
const (
	ColorBlack Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorCount // Sentinel value for iteration
)

// Escape sequence fragments.
const (
	escBg    = "\x1b[0;4"
	escFg    = "\x1b[3"
	escEnd   = "m"
	EscReset = "\x1b[0m"
)

var colorNames = [ColorCount]string{
	"black", "red", "green", "yellow", "blue", "magenta", "cyan", "white",
}

// String returns the lowercase name of the color.
func (c Color) String() string {
	if !c.Valid() {
		return "unknown"
	}
	return colorNames[c]
}

// Valid reports whether c is one of the eight base colors.
func (c Color) Valid() bool {
	return c < ColorCount
}

// digit returns the ASCII digit for the color ordinal.
func (c Color) digit() byte {
	return '0' + byte(c)
}

// Bg returns the escape sequence that selects c as background.
// It also resets any previous attributes.
func (c Color) Bg() string {
	return escBg + string(c.digit()) + escEnd
}

// Fg returns the escape sequence that selects c as foreground.
func (c Color) Fg() string {
	return escFg + string(c.digit()) + escEnd
}

// ParseColor converts a color name (or its first letter, "k" for black) to a Color.
// Returns ColorBlack and false if the string is not recognized.
func ParseColor(s string) (Color, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "black", "k":
		return ColorBlack, true
	case "red", "r":
		return ColorRed, true
	case "green", "g":
		return ColorGreen, true
	case "yellow", "y":
		return ColorYellow, true
	case "blue", "b":
		return ColorBlue, true
	case "magenta", "m":
		return ColorMagenta, true
	case "cyan", "c":
		return ColorCyan, true
	case "white", "w":
		return ColorWhite, true
	default:
		return ColorBlack, false
	}
}

// AllColors returns every base color in ordinal order.
func AllColors() []Color {
	colors := make([]Color, 0, ColorCount)
	for c := ColorBlack; c < ColorCount; c++ {
		colors = append(colors, c)
	}
	return colors
}
