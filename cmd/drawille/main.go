// drawille draws pixel graphics in the terminal with half-block and Braille
// characters.
//
// Usage:
//
//	drawille demo list            - List available demos
//	drawille demo play [demo]     - Animate a demo (picker if omitted)
//	drawille draw <scene.yaml>    - Render a YAML scene to stdout
//	drawille gallery list         - List saved frames
//	drawille gallery show <name>  - Print a saved frame
//	drawille gallery browse       - Browse saved frames interactively
//	drawille serve                - Start SSH server for remote viewing
//
// Global flags:
//
//	--config <path> - Configuration file (default search: ~/.drawille, ./configs)
//	--fps <rate>    - Set tick rate (default: 30)
//	--seed <value>  - Set RNG seed
//	--db <path>     - Set gallery path (default: ~/.drawille/gallery.db)
//	--verbose       - Enable debug logging
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/awelkie/drawille/internal/config"
	"github.com/awelkie/drawille/internal/core"

	// Import demos to register them
	_ "github.com/awelkie/drawille/internal/demos/palette"
	_ "github.com/awelkie/drawille/internal/demos/sine"
	_ "github.com/awelkie/drawille/internal/demos/spiral"
)

var (
	// Global flags
	flagConfig  string
	flagFPS     int
	flagSeed    int64
	flagDBPath  string
	flagVerbose bool

	// Set by the root command before any subcommand runs
	cfg    config.Config
	logger *log.Logger
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "drawille",
	Short: "drawille - pixel graphics in your terminal",
	Long: `drawille draws pixel graphics in the terminal. The block canvas packs
two colored pixels into each cell with half-block glyphs; the Braille canvas
packs a 2x4 grid of dots into each cell. A turtle draws on the Braille canvas.

Available commands:
  demo     - List and animate built-in demos
  draw     - Render YAML scenes
  gallery  - Saved frames
  serve    - Start SSH server for remote viewing

Examples:
  drawille demo list
  drawille demo play spiral
  drawille draw ./scenes/house.yaml --save house
  drawille gallery show house
  drawille serve --ssh :2222`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to configuration YAML")
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 30, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.drawille/gallery.db", "Path to gallery database")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Enable debug logging")

	// Add subcommands
	rootCmd.AddCommand(demoCmd)
	rootCmd.AddCommand(drawCmd)
	rootCmd.AddCommand(galleryCmd)
	rootCmd.AddCommand(serveCmd)
}

// setup loads the configuration and applies flags given on the command line.
func setup(cmd *cobra.Command, _ []string) error {
	logger = log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "drawille",
	})
	if flagVerbose {
		logger.SetLevel(log.DebugLevel)
	}

	var err error
	cfg, err = config.Load(flagConfig)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("fps") && flagFPS > 0 {
		cfg.Viewer.TickRate = flagFPS
	}
	if flags.Changed("seed") {
		cfg.Viewer.Seed = flagSeed
	}
	if flags.Changed("db") {
		cfg.Gallery.DBPath = flagDBPath
	}

	logger.Debug("configuration loaded",
		"config", flagConfig,
		"tick_rate", cfg.Viewer.TickRate,
		"db", cfg.Gallery.DBPath,
	)
	return nil
}

// runtimeConfig sizes demos to the terminal. When stdout is not a terminal
// the configured canvas size is used instead.
func runtimeConfig() core.RuntimeConfig {
	width := cfg.Canvas.Width/2 + 1
	height := cfg.Canvas.Height/4 + 1
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}

	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: cfg.Viewer.TickRate,
		Seed:     cfg.Viewer.Seed,
	}
}
