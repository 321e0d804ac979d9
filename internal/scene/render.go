package scene

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/awelkie/drawille/internal/canvas/block"
	"github.com/awelkie/drawille/internal/canvas/braille"
	"github.com/awelkie/drawille/internal/turtle"
)

// Options control how a scene is rendered.
type Options struct {
	// Renderer encodes block canvas cells. Nil means ANSI escapes.
	Renderer block.Renderer
	// Logger receives one debug entry per applied op. Nil disables logging.
	Logger *log.Logger
}

// Render applies every op to a fresh canvas and returns the frame.
func (s *Scene) Render(opts Options) (string, error) {
	switch s.Canvas {
	case KindBlock:
		c := block.New(s.Size.W, s.Size.H)
		c.SetRenderer(opts.Renderer)
		for i, op := range s.Ops {
			opts.trace(i, op)
			if err := applyBlock(c, op); err != nil {
				return "", fmt.Errorf("scene: op %d (%s): %w", i, op.Op, err)
			}
		}
		return c.Frame(), nil

	case KindBraille:
		c := braille.New(s.Size.W, s.Size.H)
		for i, op := range s.Ops {
			opts.trace(i, op)
			applyBraille(c, op)
		}
		return c.Frame(), nil

	case KindTurtle:
		t := turtle.FromCanvas(s.Start.X, s.Start.Y, braille.New(s.Size.W, s.Size.H))
		t.Heading = s.Start.Heading
		t.Brush = !s.Start.Up
		for i, op := range s.Ops {
			opts.trace(i, op)
			applyTurtle(t, op)
		}
		opts.debug("turtle finished", "x", t.X, "y", t.Y, "heading", t.Heading)
		return t.Frame(), nil
	}
	return "", fmt.Errorf("scene: unknown canvas %q", s.Canvas)
}

// Rows renders the scene split into rows.
func (s *Scene) Rows(opts Options) ([]string, error) {
	frame, err := s.Render(opts)
	if err != nil {
		return nil, err
	}
	return strings.Split(frame, "\n"), nil
}

func applyBlock(c *block.Canvas, op Op) error {
	switch op.Op {
	case "set":
		c.Set(op.X, op.Y, op.fg)
	case "unset":
		return c.Unset(op.X, op.Y)
	case "line":
		c.Line(op.X, op.Y, op.X2, op.Y2, op.fg)
	case "text":
		c.Text(op.X, op.Y, op.fg, op.bg, op.Text)
	case "clear":
		c.Clear()
	}
	return nil
}

func applyBraille(c *braille.Canvas, op Op) {
	switch op.Op {
	case "set":
		c.Set(op.X, op.Y)
	case "unset":
		c.Unset(op.X, op.Y)
	case "toggle":
		c.Toggle(op.X, op.Y)
	case "line":
		c.Line(op.X, op.Y, op.X2, op.Y2)
	case "clear":
		c.Clear()
	}
}

func applyTurtle(t *turtle.Turtle, op Op) {
	switch op.Op {
	case "forward":
		t.Forward(op.Dist)
	case "back":
		t.Back(op.Dist)
	case "left":
		t.Left(op.Angle)
	case "right":
		t.Right(op.Angle)
	case "up":
		t.Up()
	case "down":
		t.Down()
	case "toggle":
		t.ToggleBrush()
	case "teleport":
		t.Teleport(float64(op.X), float64(op.Y))
	}
}

func (o Options) trace(i int, op Op) {
	o.debug("apply op", "index", i, "op", op.Op)
}

func (o Options) debug(msg string, keyvals ...any) {
	if o.Logger != nil {
		o.Logger.Debug(msg, keyvals...)
	}
}
