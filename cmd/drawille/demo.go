package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/awelkie/drawille/internal/core"
	"github.com/awelkie/drawille/internal/platform/tui"
	"github.com/awelkie/drawille/internal/registry"
	"github.com/awelkie/drawille/internal/storage"
)

var flagRenderer string

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "List and animate the built-in demos",
}

var demoListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available demos",
	Long:  `Shows a list of all demos registered in drawille.`,
	Args:  cobra.NoArgs,
	Run:   runDemoList,
}

var demoPlayCmd = &cobra.Command{
	Use:   "play [demo]",
	Short: "Animate a demo",
	Long: `Animate the specified demo full screen. Without a demo, a picker lets
you choose one and returns to it when you leave the viewer.

Controls:
  Space/P    - Pause and resume
  N          - Single step while paused
  R          - Restart the animation
  S          - Save the current frame to the gallery
  Esc        - Back to the picker
  Q/Ctrl+C   - Quit

Examples:
  drawille demo play
  drawille demo play sine
  drawille demo play palette --renderer lipgloss
  drawille demo play spiral --fps 60`,
	Args: cobra.MaximumNArgs(1),
	Run:  runDemoPlay,
}

func init() {
	demoPlayCmd.Flags().StringVar(&flagRenderer, "renderer", "", "Block cell encoding: ansi or lipgloss (default from config)")

	demoCmd.AddCommand(demoListCmd)
	demoCmd.AddCommand(demoPlayCmd)
}

func runDemoList(_ *cobra.Command, _ []string) {
	demos := registry.List()

	if len(demos) == 0 {
		fmt.Println("No demos available.")
		return
	}

	fmt.Println("Available demos:")
	fmt.Println()

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	maxTitleLen := 5
	for _, d := range demos {
		maxIDLen = max(maxIDLen, len(d.ID))
		maxTitleLen = max(maxTitleLen, len(d.Title))
	}

	// Print header
	fmt.Printf("  %-*s  %-*s  %s\n", maxIDLen, "ID", maxTitleLen, "Title", "Canvas")
	fmt.Printf("  %-*s  %-*s  %s\n", maxIDLen, "--", maxTitleLen, "-----", "------")

	// Print demos
	for _, d := range demos {
		fmt.Printf("  %-*s  %-*s  %s\n", maxIDLen, d.ID, maxTitleLen, d.Title, d.Kind)
	}

	fmt.Println()
	fmt.Println("Run 'drawille demo play <id>' to animate a demo.")
}

func runDemoPlay(_ *cobra.Command, args []string) {
	if flagRenderer != "" {
		cfg.Viewer.Renderer = flagRenderer
	}
	opts := tui.Options{
		Cells:  tui.CellRenderer(cfg.Viewer.Renderer, nil),
		Accent: cfg.Viewer.AccentColor,
		Logger: logger,
	}

	// Check the demo before touching the terminal
	var demo registry.Demo
	if len(args) == 1 {
		var err error
		demo, err = registry.Create(args[0])
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			fmt.Fprintln(os.Stderr, "Run 'drawille demo list' to see available demos.")
			os.Exit(1)
		}
	}

	// Open gallery storage
	store, err := storage.Open(cfg.Gallery.DBPath)
	if err != nil {
		logger.Warn("could not open gallery database, snapshots disabled", "error", err)
		// Continue without storage - the viewer still works
		store = nil
	}

	rcfg := runtimeConfig()

	var runErr error
	if demo != nil {
		_, runErr = tui.Run(demo, store, rcfg, opts)
	} else {
		runErr = pickAndPlay(store, rcfg, opts)
	}

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running demo: %v\n", runErr)
		os.Exit(1)
	}
}

// pickAndPlay alternates between the picker and the viewer until the user
// quits the picker.
func pickAndPlay(store *storage.Store, rcfg core.RuntimeConfig, opts tui.Options) error {
	theme := tui.NewTheme(nil, cfg.Viewer.AccentColor)
	preselect := cfg.Viewer.Demo
	opts.Embedded = true

	for {
		result, err := tui.RunMenu(rcfg, theme, preselect)
		if err != nil {
			return err
		}

		// Update config with any size changes
		rcfg = result.Config
		if result.Quit {
			return nil
		}

		demo, err := registry.Create(result.DemoID)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating demo: %v\n", err)
			continue
		}
		preselect = result.DemoID

		// Fresh seed for each run unless one was requested
		if cfg.Viewer.Seed == 0 {
			rcfg.Seed = time.Now().UnixNano()
		}

		logger.Debug("starting demo", "demo", demo.ID())
		quit, err := tui.Run(demo, store, rcfg, opts)
		if err != nil {
			return err
		}
		if quit {
			return nil
		}
	}
}
