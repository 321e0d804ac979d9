package braille

import (
	"strings"
	"testing"
)

func TestDotTable(t *testing.T) {
	// Every dot of a cell lights a distinct bit and together they fill the mask.
	c := New(0, 0)
	var seen uint8
	for y := 0; y < 4; y++ {
		for x := 0; x < 2; x++ {
			c.Clear()
			c.Set(x, y)
			m := c.Mask(x, y)
			if m == 0 || m&(m-1) != 0 {
				t.Errorf("Set(%d, %d) mask = %#x, expected a single bit", x, y, m)
			}
			if seen&m != 0 {
				t.Errorf("Set(%d, %d) reuses bit %#x", x, y, m)
			}
			seen |= m
		}
	}
	if seen != 0xFF {
		t.Errorf("dots cover %#x, expected 0xff", seen)
	}
}

func TestSetGetUnset(t *testing.T) {
	c := New(10, 10)

	points := [][2]int{{0, 0}, {1, 0}, {0, 3}, {1, 3}, {7, 13}, {20, 2}}
	for _, p := range points {
		c.Set(p[0], p[1])
		if !c.Get(p[0], p[1]) {
			t.Errorf("Get(%d, %d) after Set = false", p[0], p[1])
		}
	}
	for _, p := range points {
		c.Unset(p[0], p[1])
		if c.Get(p[0], p[1]) {
			t.Errorf("Get(%d, %d) after Unset = true", p[0], p[1])
		}
	}
}

func TestSetKeepsNeighbours(t *testing.T) {
	c := New(0, 0)
	c.Set(0, 0)
	c.Set(1, 3)
	c.Unset(0, 0)

	if !c.Get(1, 3) {
		t.Error("Unset(0, 0) should not clear (1, 3) in the same cell")
	}
	if c.Mask(0, 0) != 0x80 {
		t.Errorf("Mask() = %#x, expected 0x80", c.Mask(0, 0))
	}
}

func TestToggleInvolution(t *testing.T) {
	c := New(0, 0)
	c.Set(3, 5)

	for _, p := range [][2]int{{3, 5}, {2, 5}, {9, 9}} {
		before := c.Get(p[0], p[1])
		c.Toggle(p[0], p[1])
		if c.Get(p[0], p[1]) == before {
			t.Errorf("Toggle(%d, %d) did not flip the pixel", p[0], p[1])
		}
		c.Toggle(p[0], p[1])
		if c.Get(p[0], p[1]) != before {
			t.Errorf("Toggle twice at (%d, %d) = %v, expected %v", p[0], p[1], c.Get(p[0], p[1]), before)
		}
	}
}

func TestOperationsMaterializeCells(t *testing.T) {
	c := New(0, 0)
	c.Unset(10, 0) // cell (5, 0)

	rows := c.Rows()
	if len(rows) != 1 {
		t.Fatalf("Rows() = %d rows, expected 1", len(rows))
	}
	if got := len([]rune(rows[0])); got != 6 {
		t.Errorf("row width = %d, expected 6 after materializing cell 5", got)
	}
	if strings.TrimSpace(rows[0]) != "" {
		t.Errorf("row = %q, expected only spaces", rows[0])
	}
}

func TestGetAbsent(t *testing.T) {
	c := New(4, 4)
	if c.Get(1, 1) {
		t.Error("Get() on a fresh canvas should be false")
	}
}

func TestFrameSinglePixel(t *testing.T) {
	c := New(2, 4)
	c.Set(0, 0)

	// Bounds are one cell each way, so the frame is rendered 2x2.
	expected := "⠁ \n  "
	if got := c.Frame(); got != expected {
		t.Errorf("Frame() = %q, expected %q", got, expected)
	}
	if r := []rune(c.Rows()[0])[0]; r != rune(Base+0x01) {
		t.Errorf("first cell = %U, expected U+2801", r)
	}
}

func TestFrameFullCell(t *testing.T) {
	c := New(0, 0)
	for y := 0; y < 4; y++ {
		c.Set(0, y)
		c.Set(1, y)
	}
	if got := c.Frame(); got != "⣿" {
		t.Errorf("Frame() = %q, expected %q", got, "⣿")
	}
}

func TestClearRestoresBounds(t *testing.T) {
	c := New(4, 8) // 2x2 cells
	c.Line(0, 0, 30, 30)

	if got := len(c.Rows()); got != 8 {
		t.Fatalf("Rows() before Clear = %d, expected 8", got)
	}

	c.Clear()

	if c.Get(0, 0) || c.Get(30, 30) {
		t.Error("Get() after Clear should be false")
	}
	rows := c.Rows()
	if len(rows) != 3 {
		t.Errorf("Rows() after Clear = %d, expected 3", len(rows))
	}
	for _, row := range rows {
		if row != "   " {
			t.Errorf("row after Clear = %q, expected three spaces", row)
		}
	}
}

func TestLine(t *testing.T) {
	c := New(0, 0)
	c.Line(0, 0, 7, 0)

	for x := 0; x <= 7; x++ {
		if !c.Get(x, 0) {
			t.Errorf("Get(%d, 0) = false after horizontal Line", x)
		}
	}
	if c.Get(0, 1) {
		t.Error("Line should not light pixels off the segment")
	}
	if got := c.Frame(); got != "⠉⠉⠉⠉" {
		t.Errorf("Frame() = %q, expected four top-row glyphs", got)
	}
}

func TestLineZeroLength(t *testing.T) {
	c := New(0, 0)
	c.Line(5, 6, 5, 6)

	lit := 0
	for y := 0; y < 12; y++ {
		for x := 0; x < 12; x++ {
			if c.Get(x, y) {
				lit++
			}
		}
	}
	if lit != 1 {
		t.Errorf("zero-length Line lit %d pixels, expected 1", lit)
	}
}

func TestSetWidthHeight(t *testing.T) {
	c := New(8, 8)
	c.SetWidth(10)
	c.SetHeight(3)

	w, h := c.Size()
	if w != 10 || h != 3 {
		t.Errorf("Size() = (%d, %d), expected (10, 3)", w, h)
	}
}

func TestGlyph(t *testing.T) {
	if Glyph(0) != ' ' {
		t.Errorf("Glyph(0) = %q, expected space", Glyph(0))
	}
	if Glyph(0xFF) != '⣿' {
		t.Errorf("Glyph(0xff) = %q, expected U+28FF", Glyph(0xFF))
	}
}
