// Package config provides YAML-based configuration loading for the
// drawille command line and its hosting layers (viewer, SSH server, gallery).
package config

import "time"

// Config contains all settings of the drawille command.
type Config struct {
	Canvas  CanvasConfig  `yaml:"canvas"`
	Viewer  ViewerConfig  `yaml:"viewer"`
	Gallery GalleryConfig `yaml:"gallery"`
	Server  ServerConfig  `yaml:"server"`
}

// CanvasConfig sets the default canvas size used by scenes without a size
// and when the terminal size cannot be detected.
type CanvasConfig struct {
	Width  int `yaml:"width"`  // In pixels
	Height int `yaml:"height"` // In pixels
}

// ViewerConfig controls the animated demo viewer.
type ViewerConfig struct {
	TickRate    int    `yaml:"tick_rate"`    // Ticks per second
	Seed        int64  `yaml:"seed"`         // 0 = random based on time
	Demo        string `yaml:"demo"`         // Demo shown by default and over SSH
	AccentColor string `yaml:"accent_color"` // Color name for the title bar
	Renderer    string `yaml:"renderer"`     // Block cell encoding: "ansi" or "lipgloss"
}

// GalleryConfig controls frame persistence.
type GalleryConfig struct {
	DBPath string `yaml:"db_path"`
}

// ServerConfig controls the SSH server.
type ServerConfig struct {
	Address     string        `yaml:"address"`
	HostKeyPath string        `yaml:"host_key_path"` // Empty = ~/.drawille/host_key
	IdleTimeout time.Duration `yaml:"idle_timeout"`
}
