package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/awelkie/drawille/internal/canvas/block"
	"github.com/awelkie/drawille/internal/storage"
)

func TestDrawRenderer(t *testing.T) {
	tests := []struct {
		name string
		want block.Renderer
	}{
		{"", block.ANSI{}},
		{"ansi", block.ANSI{}},
		{"plain", block.Plain{}},
	}
	for _, tt := range tests {
		got, err := drawRenderer(tt.name)
		if err != nil || got != tt.want {
			t.Errorf("drawRenderer(%q) = (%T, %v), expected %T", tt.name, got, err, tt.want)
		}
	}
	if r, err := drawRenderer("lipgloss"); err != nil || r == nil {
		t.Errorf("drawRenderer(lipgloss) = (%v, %v)", r, err)
	}
	if _, err := drawRenderer("sixel"); err == nil {
		t.Error("drawRenderer(sixel) should fail")
	}
}

func TestDrawCommand(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "config.yaml")
	scenePath := filepath.Join(dir, "dot.yaml")
	dbPath := filepath.Join(dir, "gallery.db")

	if err := os.WriteFile(cfgPath, []byte("canvas:\n  width: 0\n  height: 0\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(scenePath, []byte("canvas: braille\nops:\n  - {op: set, x: 0, y: 0}\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"draw", scenePath, "--config", cfgPath, "--db", dbPath, "--save", "dot"})
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("Execute() failed: %v", err)
	}

	if out.String() != "⠁\n" {
		t.Errorf("output = %q, expected %q", out.String(), "⠁\n")
	}

	store, err := storage.Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	entry, err := store.Frame("dot")
	if err != nil || entry == nil {
		t.Fatalf("Frame(dot) = (%v, %v), expected saved frame", entry, err)
	}
	if entry.Body != "⠁" || entry.Kind != "braille" || entry.Source != scenePath {
		t.Errorf("saved entry = %+v", entry)
	}
}
