package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/awelkie/drawille/internal/canvas/block"
	"github.com/awelkie/drawille/internal/core"
	"github.com/awelkie/drawille/internal/registry"
	"github.com/awelkie/drawille/internal/storage"
)

// chromeRows is the number of screen rows used by the title bar and help line.
const chromeRows = 2

// Options customize a viewer.
type Options struct {
	// Cells is the block cell encoder handed to demos that draw on a block
	// canvas. Nil keeps their default ANSI escapes.
	Cells block.Renderer
	// Styles renders the chrome. Nil uses lipgloss's default renderer.
	Styles *lipgloss.Renderer
	// Accent is the color name used for highlights.
	Accent string
	// Logger receives snapshot and reset events. Nil disables logging.
	Logger *log.Logger
	// Embedded makes the back key leave the viewer instead of quitting.
	Embedded bool
}

// rendererSetter is implemented by demos drawing on a block canvas.
type rendererSetter interface {
	SetRenderer(r block.Renderer)
}

// Model is the Bubble Tea model that animates a demo.
type Model struct {
	demo     registry.Demo
	store    *storage.Store
	config   core.RuntimeConfig // Whole screen, chrome included
	keys     ViewerKeyMap
	help     help.Model
	theme    Theme
	logger   *log.Logger
	embedded bool
	now      func() time.Time

	paused   bool
	ticks    int
	status   string
	quitting bool
	back     bool
}

// NewModel creates a viewer for demo. store may be nil, which disables
// snapshots.
func NewModel(demo registry.Demo, store *storage.Store, cfg core.RuntimeConfig, opts Options) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if opts.Cells != nil {
		if rs, ok := demo.(rendererSetter); ok {
			rs.SetRenderer(opts.Cells)
		}
	}

	h := help.New()
	h.Width = cfg.ScreenW

	return Model{
		demo:     demo,
		store:    store,
		config:   cfg,
		keys:     DefaultViewerKeyMap(),
		help:     h,
		theme:    NewTheme(opts.Styles, opts.Accent),
		logger:   opts.Logger,
		embedded: opts.Embedded,
		now:      time.Now,
	}
}

// demoConfig returns the runtime config handed to the demo: the screen
// minus the chrome.
func (m Model) demoConfig() core.RuntimeConfig {
	cfg := m.config
	cfg.ScreenH = core.Max(cfg.ScreenH-chromeRows, 1)
	cfg.ScreenW = core.Max(cfg.ScreenW, 1)
	return cfg
}

// Init resets the demo and starts the tick loop.
func (m Model) Init() tea.Cmd {
	m.demo.Reset(m.demoConfig())
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Back):
		if m.embedded {
			m.back = true
			return m, tea.Quit
		}
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Pause):
		m.paused = !m.paused

	case key.Matches(msg, m.keys.Step):
		if m.paused {
			m.step()
		}

	case key.Matches(msg, m.keys.Reset):
		m.reset("reset")

	case key.Matches(msg, m.keys.Snapshot):
		m.snapshot()

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}

	return m, nil
}

// handleResize restarts the demo for the new screen size.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.help.Width = msg.Width
	m.reset("resize")
	return m, nil
}

// handleTick advances the demo unless paused.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.quitting || m.back {
		return m, nil
	}
	if !m.paused {
		m.step()
	}
	return m, tickCmd(m.config.TickRate)
}

func (m *Model) step() {
	m.demo.Step()
	m.ticks++
}

func (m *Model) reset(reason string) {
	m.demo.Reset(m.demoConfig())
	m.ticks = 0
	m.debug("demo reset", "demo", m.demo.ID(), "reason", reason,
		"width", m.config.ScreenW, "height", m.config.ScreenH)
}

// snapshot saves the current frame to the gallery.
func (m *Model) snapshot() {
	if m.store == nil {
		m.status = "no gallery"
		return
	}

	name := fmt.Sprintf("%s-%s", m.demo.ID(), m.now().Format("20060102-150405"))
	if _, err := m.store.SaveFrame(name, "demo:"+m.demo.ID(), m.demo.Kind(), m.demo.Frame()); err != nil {
		m.status = "snapshot failed"
		if m.logger != nil {
			m.logger.Error("snapshot failed", "demo", m.demo.ID(), "error", err)
		}
		return
	}
	m.status = "saved " + name
	m.debug("snapshot saved", "name", name)
}

func (m Model) debug(msg string, keyvals ...any) {
	if m.logger != nil {
		m.logger.Debug(msg, keyvals...)
	}
}

// View renders the title bar, the demo frame and the help line.
func (m Model) View() string {
	if m.quitting || m.back {
		return ""
	}

	var b strings.Builder

	title := m.theme.Title.Render(m.demo.Title())
	info := fmt.Sprintf(" %s  tick %d", m.demo.Kind(), m.ticks)
	if m.status != "" {
		info += "  " + m.status
	}
	b.WriteString(title)
	b.WriteString(m.theme.Status.Render(info))
	if m.paused {
		b.WriteString(m.theme.Paused.Render("  PAUSED"))
	}
	b.WriteString("\n")

	b.WriteString(m.demo.Frame())
	b.WriteString("\n")

	b.WriteString(m.theme.Help.Render(m.help.View(m.keys)))
	return b.String()
}

// Paused reports whether the animation is paused.
func (m Model) Paused() bool {
	return m.paused
}

// Ticks returns the number of steps since the last reset.
func (m Model) Ticks() int {
	return m.ticks
}

// IsQuitting returns true if user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to the picker.
func (m Model) BackToMenu() bool {
	return m.back
}

// Run starts the Bubble Tea program with a viewer for demo.
// It reports whether the user asked to quit rather than go back.
func Run(demo registry.Demo, store *storage.Store, cfg core.RuntimeConfig, opts Options) (bool, error) {
	model := NewModel(demo, store, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	finalModel, err := p.Run()
	if err != nil {
		return true, err
	}
	return quitRequested(finalModel), nil
}

// quitRequested reports whether a finished viewer was quit, as opposed to
// left with the back key.
func quitRequested(final tea.Model) bool {
	m, ok := final.(Model)
	if !ok {
		return true
	}
	return m.IsQuitting()
}
