package tui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/bubbletea"

	"github.com/awelkie/drawille/internal/config"
	"github.com/awelkie/drawille/internal/core"
	"github.com/awelkie/drawille/internal/registry"
	"github.com/awelkie/drawille/internal/storage"
)

// SSHServerConfig holds configuration for the SSH server.
type SSHServerConfig struct {
	// Address is the host:port to listen on (e.g., ":23235").
	Address string

	// HostKeyPath is the path to the host key file.
	// If empty, a key will be auto-generated at ~/.drawille/host_key.
	HostKeyPath string

	// DBPath is the path to the gallery database. Empty disables snapshots.
	DBPath string

	// IdleTimeout is how long to wait before closing idle connections.
	IdleTimeout time.Duration

	// Demo is shown when a session starts.
	Demo string

	// TickRate is the animation rate of every session.
	TickRate int

	// Accent is the color name used by the chrome.
	Accent string

	// Renderer selects the block cell encoding: "ansi" or "lipgloss".
	Renderer string

	// Verbose enables debug logging.
	Verbose bool
}

// DefaultSSHServerConfig returns a config with sensible defaults.
func DefaultSSHServerConfig() SSHServerConfig {
	return SSHServerConfig{
		Address:     ":23235",
		DBPath:      "~/.drawille/gallery.db",
		IdleTimeout: 30 * time.Minute,
		Demo:        "spiral",
		TickRate:    30,
		Accent:      "cyan",
		Renderer:    "ansi",
	}
}

// SSHServer wraps a Wish SSH server serving the demo viewer.
type SSHServer struct {
	config SSHServerConfig
	server *ssh.Server
	store  *storage.Store
	logger *log.Logger
}

// NewSSHServer creates a new SSH server with the given configuration.
func NewSSHServer(cfg SSHServerConfig) (*SSHServer, error) {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "drawille-ssh",
	})
	if cfg.Verbose {
		logger.SetLevel(log.DebugLevel)
	}

	srv := &SSHServer{
		config: cfg,
		logger: logger,
	}

	// Open storage
	if cfg.DBPath != "" {
		store, err := storage.Open(cfg.DBPath)
		if err != nil {
			logger.Warn("could not open gallery database", "error", err)
			// Continue without snapshots
		} else {
			srv.store = store
		}
	}

	// Resolve host key path
	hostKeyPath := cfg.HostKeyPath
	if hostKeyPath == "" {
		hostKeyPath = "~/.drawille/host_key"
	}
	hostKeyPath, err := config.ExpandHome(hostKeyPath)
	if err != nil {
		return nil, fmt.Errorf("tui: %w", err)
	}

	// Ensure host key directory exists
	hostKeyDir := filepath.Dir(hostKeyPath)
	if mkdirErr := os.MkdirAll(hostKeyDir, 0o700); mkdirErr != nil {
		return nil, fmt.Errorf("tui: cannot create host key directory: %w", mkdirErr)
	}

	// Create Wish server options
	opts := []ssh.Option{
		wish.WithAddress(cfg.Address),
		wish.WithHostKeyPath(hostKeyPath),
		wish.WithIdleTimeout(cfg.IdleTimeout),
		wish.WithMiddleware(
			bubbletea.Middleware(srv.teaHandler),
			srv.loggingMiddleware,
		),
	}

	// Create the server
	server, err := wish.NewServer(opts...)
	if err != nil {
		if srv.store != nil {
			srv.store.Close()
		}
		return nil, fmt.Errorf("tui: cannot create SSH server: %w", err)
	}

	srv.server = server
	return srv, nil
}

// teaHandler creates a Bubble Tea program for each SSH session.
func (s *SSHServer) teaHandler(sshSession ssh.Session) (tea.Model, []tea.ProgramOption) {
	pty, _, ok := sshSession.Pty()
	if !ok {
		s.logger.Warn("no PTY requested", "user", sshSession.User())
		return nil, nil
	}

	// Create runtime config from PTY size
	cfg := core.RuntimeConfig{
		ScreenW:  pty.Window.Width,
		ScreenH:  pty.Window.Height,
		TickRate: s.config.TickRate,
		Seed:     time.Now().UnixNano(),
	}

	// Styles must follow the client's terminal, not the server's.
	renderer := bubbletea.MakeRenderer(sshSession)
	opts := Options{
		Styles: renderer,
		Accent: s.config.Accent,
		Logger: s.logger.With("user", sshSession.User()),
	}
	opts.Cells = CellRenderer(s.config.Renderer, renderer)

	model := NewSessionModel(s.store, cfg, s.config.Demo, opts)

	return model, []tea.ProgramOption{
		tea.WithAltScreen(),
	}
}

// loggingMiddleware logs SSH session events.
func (s *SSHServer) loggingMiddleware(next ssh.Handler) ssh.Handler {
	return func(sshSession ssh.Session) {
		s.logger.Info("session started",
			"user", sshSession.User(),
			"remote", sshSession.RemoteAddr().String(),
		)
		next(sshSession)
		s.logger.Info("session ended",
			"user", sshSession.User(),
			"remote", sshSession.RemoteAddr().String(),
		)
	}
}

// ListenAndServe starts the SSH server and blocks until shutdown.
func (s *SSHServer) ListenAndServe() error {
	s.logger.Info("starting SSH server", "address", s.config.Address, "demo", s.config.Demo)

	// Setup signal handling for graceful shutdown
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	go func() {
		if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			s.logger.Error("server error", "error", err)
		}
	}()

	<-done
	s.logger.Info("shutting down...")
	return s.Shutdown()
}

// Shutdown gracefully stops the server.
func (s *SSHServer) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if s.store != nil {
		s.store.Close()
	}

	return s.server.Shutdown(ctx)
}

// Addr returns the server's listen address string.
func (s *SSHServer) Addr() string {
	return s.config.Address
}

// SessionModel manages one session: viewer -> picker -> viewer.
// It starts in the viewer when the configured demo exists, and in the
// picker otherwise.
type SessionModel struct {
	store    *storage.Store
	config   core.RuntimeConfig
	opts     Options
	menu     MenuModel
	viewer   *Model
	quitting bool
}

// NewSessionModel creates a new session model.
func NewSessionModel(store *storage.Store, cfg core.RuntimeConfig, demoID string, opts Options) SessionModel {
	opts.Embedded = true
	theme := NewTheme(opts.Styles, opts.Accent)

	m := SessionModel{
		store:  store,
		config: cfg,
		opts:   opts,
		menu:   NewMenuModel(cfg, theme, demoID),
	}
	if demo, err := registry.Create(demoID); err == nil {
		viewer := NewModel(demo, store, cfg, opts)
		m.viewer = &viewer
	}
	return m
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	if m.viewer != nil {
		return m.viewer.Init()
	}
	return m.menu.Init()
}

// Update handles messages for the session.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Handle window resize globally
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.config.ScreenW = wsm.Width
		m.config.ScreenH = wsm.Height
	}

	if m.viewer != nil {
		return m.updateViewer(msg)
	}
	return m.updateMenu(msg)
}

// updateMenu handles updates when in the picker.
func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	newMenu, cmd := m.menu.Update(msg)
	if menuModel, ok := newMenu.(MenuModel); ok {
		m.menu = menuModel
	}

	if m.menu.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if selected := m.menu.Selected(); selected != nil {
		demo, err := registry.Create(selected.ID)
		if err != nil {
			// Shouldn't happen since the picker only shows registered demos
			return m, nil
		}

		viewer := NewModel(demo, m.store, m.config, m.opts)
		m.viewer = &viewer
		return m, m.viewer.Init()
	}

	return m, cmd
}

// updateViewer handles updates when a demo is running.
func (m SessionModel) updateViewer(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.viewer.Update(msg)
	if viewer, ok := newModel.(Model); ok {
		m.viewer = &viewer
	}

	if m.viewer.BackToMenu() {
		m.viewer = nil
		m.menu = NewMenuModel(m.config, NewTheme(m.opts.Styles, m.opts.Accent), "")
		return m, m.menu.Init()
	}

	if m.viewer.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	return m, cmd
}

// View renders the current view.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}
	if m.viewer != nil {
		return m.viewer.View()
	}
	return m.menu.View()
}

// InViewer reports whether a demo is running.
func (m SessionModel) InViewer() bool {
	return m.viewer != nil
}
