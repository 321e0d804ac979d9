package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/drawille.yaml
var defaultYAML []byte

// Default returns the hardcoded configuration.
// It matches the embedded defaults/drawille.yaml.
func Default() Config {
	return Config{
		Canvas: CanvasConfig{
			Width:  160,
			Height: 96,
		},
		Viewer: ViewerConfig{
			TickRate:    30,
			Seed:        0,
			Demo:        "spiral",
			AccentColor: "cyan",
			Renderer:    "ansi",
		},
		Gallery: GalleryConfig{
			DBPath: "~/.drawille/gallery.db",
		},
		Server: ServerConfig{
			Address:     ":23235",
			HostKeyPath: "",
			IdleTimeout: 30 * time.Minute,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}
