package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/awelkie/drawille/internal/platform/tui"
	"github.com/awelkie/drawille/internal/registry"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
	flagServeDemo   string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the drawille SSH server",
	Long: `Start an SSH server that shows a demo to everyone who connects.

Each SSH connection gets its own viewer sized to its terminal. Esc opens a
picker to switch demos. Snapshots go to the server's gallery.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.drawille/host_key

Examples:
  drawille serve                           # Listen on :23235 with auto-generated key
  drawille serve --ssh :2222               # Listen on port 2222
  drawille serve --demo sine               # Start sessions on the sine demo
  drawille serve --host-key ./my_host_key  # Use specific host key

Users can connect with:
  ssh localhost -p 23235`,
	Args: cobra.NoArgs,
	Run:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", "", "SSH server address (host:port, default from config)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 0, "Idle timeout in minutes before disconnecting (default from config)")
	serveCmd.Flags().StringVar(&flagServeDemo, "demo", "", "Demo shown when a session starts (default from config)")
}

func runServe(_ *cobra.Command, _ []string) {
	scfg := tui.SSHServerConfig{
		Address:     cfg.Server.Address,
		HostKeyPath: cfg.Server.HostKeyPath,
		DBPath:      cfg.Gallery.DBPath,
		IdleTimeout: cfg.Server.IdleTimeout,
		Demo:        cfg.Viewer.Demo,
		TickRate:    cfg.Viewer.TickRate,
		Accent:      cfg.Viewer.AccentColor,
		Renderer:    cfg.Viewer.Renderer,
		Verbose:     flagVerbose,
	}
	if flagSSHAddr != "" {
		scfg.Address = flagSSHAddr
	}
	if flagHostKey != "" {
		scfg.HostKeyPath = flagHostKey
	}
	if flagIdleTimeout > 0 {
		scfg.IdleTimeout = time.Duration(flagIdleTimeout) * time.Minute
	}
	if flagServeDemo != "" {
		scfg.Demo = flagServeDemo
	}

	if !registry.Exists(scfg.Demo) {
		logger.Warn("unknown demo, sessions start in the picker", "demo", scfg.Demo)
	}

	server, err := tui.NewSSHServer(scfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating server: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Starting drawille SSH server on %s\n", server.Addr())
	fmt.Println("Press Ctrl+C to stop")

	if err := server.ListenAndServe(); err != nil {
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
		os.Exit(1)
	}
}
