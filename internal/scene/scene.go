// Package scene loads drawings described in YAML and renders them on one of
// the canvases.
//
// A scene names a canvas kind, its minimum size in pixels and a list of
// drawing operations applied in order:
//
//	name: house
//	canvas: braille
//	size: {w: 40, h: 32}
//	ops:
//	  - {op: line, x: 0, y: 31, x2: 39, y2: 31}
//	  - {op: set, x: 20, y: 4}
package scene

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/charmbracelet/log"
	"gopkg.in/yaml.v3"

	"github.com/awelkie/drawille/internal/core"
)

// Canvas kinds
const (
	KindBlock   = "block"
	KindBraille = "braille"
	KindTurtle  = "turtle"
)

// allowed lists the operations each canvas kind understands.
var allowed = map[string][]string{
	KindBlock:   {"set", "unset", "line", "text", "clear"},
	KindBraille: {"set", "unset", "toggle", "line", "clear"},
	KindTurtle:  {"forward", "back", "left", "right", "up", "down", "toggle", "teleport"},
}

// Scene is a parsed, validated drawing.
type Scene struct {
	Name   string `yaml:"name"`
	Canvas string `yaml:"canvas"`
	Size   Size   `yaml:"size"`
	Start  Start  `yaml:"start,omitempty"` // Turtle scenes only
	Ops    []Op   `yaml:"ops"`

	Path string `yaml:"-"` // Set by Load
}

// Size is the minimum canvas size in pixels.
type Size struct {
	W int `yaml:"w"`
	H int `yaml:"h"`
}

// Start is the initial turtle state.
type Start struct {
	X       float64 `yaml:"x"`
	Y       float64 `yaml:"y"`
	Heading float64 `yaml:"heading"`
	Up      bool    `yaml:"up,omitempty"` // Begin with the brush lifted
}

// Op is one drawing operation. Which fields matter depends on Op.
type Op struct {
	Op    string  `yaml:"op"`
	X     int     `yaml:"x"`
	Y     int     `yaml:"y"`
	X2    int     `yaml:"x2"`
	Y2    int     `yaml:"y2"`
	Color string  `yaml:"color,omitempty"` // Block: pixel or text foreground, default white
	Bg    string  `yaml:"bg,omitempty"`    // Block text background, default black
	Text  string  `yaml:"text,omitempty"`
	Dist  float64 `yaml:"dist,omitempty"`
	Angle float64 `yaml:"angle,omitempty"`

	fg core.Color
	bg core.Color
}

// Parse decodes and validates a scene.
func Parse(data []byte) (*Scene, error) {
	var s Scene
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("scene: yaml unmarshal: %w", err)
	}
	if err := s.validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// Load reads and parses a scene file.
func Load(path string) (*Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("scene: reading %s: %w", path, err)
	}
	s, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	s.Path = path
	if s.Name == "" {
		s.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return s, nil
}

// LoadDir loads every .yaml and .yml file under root, sorted by name.
// Files that fail to load are skipped with a warning on logger, which may be nil.
func LoadDir(root string, logger *log.Logger) ([]*Scene, error) {
	var scenes []*Scene

	err := filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		switch strings.ToLower(filepath.Ext(path)) {
		case ".yaml", ".yml":
		default:
			return nil
		}

		s, err := Load(path)
		if err != nil {
			if logger != nil {
				logger.Warn("skipping scene", "path", path, "error", err)
			}
			return nil
		}
		scenes = append(scenes, s)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("scene: walking %s: %w", root, err)
	}

	sort.Slice(scenes, func(i, j int) bool {
		return scenes[i].Name < scenes[j].Name
	})
	return scenes, nil
}

func (s *Scene) validate() error {
	s.Canvas = strings.ToLower(strings.TrimSpace(s.Canvas))
	ops, ok := allowed[s.Canvas]
	if !ok {
		return fmt.Errorf("scene: unknown canvas %q (expected block, braille or turtle)", s.Canvas)
	}
	if s.Size.W < 0 || s.Size.H < 0 {
		return fmt.Errorf("scene: negative size %dx%d", s.Size.W, s.Size.H)
	}

	for i := range s.Ops {
		op := &s.Ops[i]
		op.Op = strings.ToLower(strings.TrimSpace(op.Op))
		if !contains(ops, op.Op) {
			return fmt.Errorf("scene: op %d: %q is not a %s operation", i, op.Op, s.Canvas)
		}
		if s.Canvas != KindBlock {
			continue
		}

		var err error
		if op.fg, err = color(op.Color, core.ColorWhite); err != nil {
			return fmt.Errorf("scene: op %d (%s): %w", i, op.Op, err)
		}
		if op.bg, err = color(op.Bg, core.ColorBlack); err != nil {
			return fmt.Errorf("scene: op %d (%s): %w", i, op.Op, err)
		}
	}
	return nil
}

func color(name string, def core.Color) (core.Color, error) {
	if name == "" {
		return def, nil
	}
	c, ok := core.ParseColor(name)
	if !ok {
		return def, fmt.Errorf("unknown color %q", name)
	}
	return c, nil
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
