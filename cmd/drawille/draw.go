package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/awelkie/drawille/internal/canvas/block"
	"github.com/awelkie/drawille/internal/platform/tui"
	"github.com/awelkie/drawille/internal/scene"
	"github.com/awelkie/drawille/internal/storage"
)

var (
	flagDrawRenderer string
	flagSave         string
)

var drawCmd = &cobra.Command{
	Use:   "draw <scene.yaml|dir>",
	Short: "Render a YAML scene",
	Long: `Render a scene file to stdout. A scene names a canvas (block, braille or
turtle), an optional minimum size in pixels and a list of drawing operations:

  name: roof
  canvas: turtle
  start: {x: 4, y: 20}
  ops:
    - {op: forward, dist: 30}
    - {op: left, angle: 135}
    - {op: forward, dist: 21}

Given a directory, every scene in it is rendered in name order.

Renderers (block scenes only):
  ansi     - Raw 8-color escape sequences (default)
  lipgloss - Styles adapted to the terminal's color profile
  plain    - Glyphs only, no colors

Examples:
  drawille draw ./scenes/house.yaml
  drawille draw ./scenes/flag.yaml --renderer plain
  drawille draw ./scenes/roof.yaml --save roof
  drawille draw ./scenes`,
	Args: cobra.ExactArgs(1),
	RunE: runDraw,
}

func init() {
	drawCmd.Flags().StringVar(&flagDrawRenderer, "renderer", "ansi", "Block cell encoding: ansi, lipgloss or plain")
	drawCmd.Flags().StringVar(&flagSave, "save", "", "Also save the frame to the gallery under this name")
}

// drawRenderer returns the block cell encoder named by name.
func drawRenderer(name string) (block.Renderer, error) {
	switch name {
	case "ansi", "":
		return block.ANSI{}, nil
	case "lipgloss":
		return tui.CellRenderer(name, nil), nil
	case "plain":
		return block.Plain{}, nil
	}
	return nil, fmt.Errorf("unknown renderer %q (expected ansi, lipgloss or plain)", name)
}

func runDraw(cmd *cobra.Command, args []string) error {
	renderer, err := drawRenderer(flagDrawRenderer)
	if err != nil {
		return err
	}
	opts := scene.Options{Renderer: renderer, Logger: logger}
	out := cmd.OutOrStdout()

	info, err := os.Stat(args[0])
	if err != nil {
		return err
	}

	if info.IsDir() {
		if flagSave != "" {
			return fmt.Errorf("--save needs a single scene file, not a directory")
		}
		scenes, err := scene.LoadDir(args[0], logger)
		if err != nil {
			return err
		}
		for _, s := range scenes {
			fmt.Fprintf(out, "== %s (%s) ==\n", s.Name, s.Canvas)
			if _, err := drawScene(out, s, opts); err != nil {
				return err
			}
		}
		return nil
	}

	s, err := scene.Load(args[0])
	if err != nil {
		return err
	}
	frame, err := drawScene(out, s, opts)
	if err != nil {
		return err
	}

	if flagSave == "" {
		return nil
	}
	return saveFrame(flagSave, s, frame)
}

// drawScene renders s to out and returns the frame.
func drawScene(out io.Writer, s *scene.Scene, opts scene.Options) (string, error) {
	// Scenes without a size fill the configured canvas
	if s.Size.W == 0 && s.Size.H == 0 {
		s.Size = scene.Size{W: cfg.Canvas.Width, H: cfg.Canvas.Height}
	}

	frame, err := s.Render(opts)
	if err != nil {
		return "", err
	}
	fmt.Fprintln(out, frame)
	return frame, nil
}

// saveFrame stores frame in the gallery under name.
func saveFrame(name string, s *scene.Scene, frame string) error {
	store, err := storage.Open(cfg.Gallery.DBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	id, err := store.SaveFrame(name, s.Path, s.Canvas, frame)
	if err != nil {
		return err
	}
	logger.Info("frame saved", "name", name, "id", id)
	return nil
}
