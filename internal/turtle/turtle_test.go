package turtle

import (
	"math"
	"testing"

	"github.com/awelkie/drawille/internal/canvas/braille"
)

const epsilon = 1e-9

func near(a, b float64) bool {
	return math.Abs(a-b) < epsilon
}

func TestNewDefaults(t *testing.T) {
	tt := New(3, 4)

	if tt.X != 3 || tt.Y != 4 {
		t.Errorf("position = (%v, %v), expected (3, 4)", tt.X, tt.Y)
	}
	if !tt.Brush {
		t.Error("brush should start down")
	}
	if tt.Heading != 0 {
		t.Errorf("Heading = %v, expected 0", tt.Heading)
	}
	if w, h := tt.Canvas().Size(); w != 0 || h != 0 {
		t.Errorf("canvas Size() = (%d, %d), expected (0, 0)", w, h)
	}
}

func TestForwardDrawsHorizontalLine(t *testing.T) {
	tt := New(0, 0)
	tt.Forward(10)

	if !near(tt.X, 10) || !near(tt.Y, 0) {
		t.Errorf("position = (%v, %v), expected (10, 0)", tt.X, tt.Y)
	}

	c := tt.Canvas()
	for x := 0; x <= 10; x++ {
		if !c.Get(x, 0) {
			t.Errorf("Get(%d, 0) = false, expected line pixel", x)
		}
	}
	if c.Get(11, 0) || c.Get(0, 1) {
		t.Error("Forward lit pixels outside the segment")
	}
}

func TestForwardBrushUp(t *testing.T) {
	tt := New(0, 0)
	tt.Up()
	tt.Forward(10)

	if !near(tt.X, 10) || !near(tt.Y, 0) {
		t.Errorf("position = (%v, %v), expected (10, 0)", tt.X, tt.Y)
	}

	c := tt.Canvas()
	for x := 0; x <= 10; x++ {
		if c.Get(x, 0) {
			t.Errorf("Get(%d, 0) = true with brush up", x)
		}
	}
	if tt.Frame() != " " {
		t.Errorf("Frame() = %q, expected a single blank cell", tt.Frame())
	}
}

func TestBrushTransitions(t *testing.T) {
	tt := New(0, 0)

	tt.Up()
	if tt.Brush {
		t.Error("Up() should lift the brush")
	}
	tt.ToggleBrush()
	if !tt.Brush {
		t.Error("ToggleBrush() should put the brush down")
	}
	tt.ToggleBrush()
	if tt.Brush {
		t.Error("ToggleBrush() should lift the brush")
	}
	tt.Down()
	if !tt.Brush {
		t.Error("Down() should put the brush down")
	}
}

func TestTurnsAccumulate(t *testing.T) {
	tt := New(0, 0)
	tt.Right(90)
	tt.Right(300)
	tt.Left(45)

	// No wrap-around normalization.
	if tt.Heading != 345 {
		t.Errorf("Heading = %v, expected 345", tt.Heading)
	}

	tt.Left(400)
	if tt.Heading != -55 {
		t.Errorf("Heading = %v, expected -55", tt.Heading)
	}
}

func TestRightTurnMovesDown(t *testing.T) {
	tt := New(2, 2)
	tt.Right(90)
	tt.Forward(6)

	if !near(tt.X, 2) || !near(tt.Y, 8) {
		t.Errorf("position = (%v, %v), expected (2, 8)", tt.X, tt.Y)
	}
	for y := 2; y <= 8; y++ {
		if !tt.Canvas().Get(2, y) {
			t.Errorf("Get(2, %d) = false, expected vertical line", y)
		}
	}
}

func TestBack(t *testing.T) {
	tt := New(10, 0)
	tt.Back(4)

	if !near(tt.X, 6) || !near(tt.Y, 0) {
		t.Errorf("position = (%v, %v), expected (6, 0)", tt.X, tt.Y)
	}
	for x := 6; x <= 10; x++ {
		if !tt.Canvas().Get(x, 0) {
			t.Errorf("Get(%d, 0) = false after Back", x)
		}
	}
}

func TestTeleportClampsOnlyTheDrawing(t *testing.T) {
	tt := New(2, 0)
	tt.Teleport(-5.4, 0)

	if tt.X != -5.4 || tt.Y != 0 {
		t.Errorf("position = (%v, %v), expected unclamped (-5.4, 0)", tt.X, tt.Y)
	}
	for x := 0; x <= 2; x++ {
		if !tt.Canvas().Get(x, 0) {
			t.Errorf("Get(%d, 0) = false, expected clamped line to x=0", x)
		}
	}

	// Moving on from a negative position draws from the clamped origin.
	tt.Teleport(-1, 3)
	if !tt.Canvas().Get(0, 3) {
		t.Error("Get(0, 3) = false, expected vertical line along x=0")
	}
}

func TestTeleportRounds(t *testing.T) {
	tt := New(0.4, 0.6)
	tt.Teleport(2.5, 0.6)

	c := tt.Canvas()
	for x := 0; x <= 3; x++ {
		if !c.Get(x, 1) {
			t.Errorf("Get(%d, 1) = false, expected rounded line on y=1", x)
		}
	}
	if c.Get(0, 0) {
		t.Error("Get(0, 0) = true, line should be on the rounded row")
	}
}

func TestWidthHeightAreCellUnits(t *testing.T) {
	tt := New(0, 0).WithWidth(4).WithHeight(2)

	w, h := tt.Canvas().Size()
	if w != 4 || h != 2 {
		t.Errorf("Size() = (%d, %d), expected (4, 2)", w, h)
	}

	rows := tt.Canvas().Rows()
	if len(rows) != 3 || len([]rune(rows[0])) != 5 {
		t.Errorf("Rows() shape = %d x %d, expected 3 x 5", len(rows), len([]rune(rows[0])))
	}
}

func TestFromCanvas(t *testing.T) {
	c := braille.New(8, 8)
	tt := FromCanvas(1, 1, c)
	tt.Forward(2)

	if tt.Canvas() != c {
		t.Fatal("Canvas() should return the supplied canvas")
	}
	if !c.Get(3, 1) {
		t.Error("turtle should draw on the supplied canvas")
	}
	if tt.Frame() != c.Frame() {
		t.Error("Frame() should delegate to the canvas")
	}
}
