package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/awelkie/drawille/internal/core"
	"github.com/awelkie/drawille/internal/registry"
)

// MenuModel is the Bubble Tea model for the demo picker.
type MenuModel struct {
	items    []registry.DemoInfo
	cursor   int
	width    int
	height   int
	config   core.RuntimeConfig
	keys     ListKeyMap
	help     help.Model
	theme    Theme
	quitting bool
	selected *registry.DemoInfo // Set when user picks a demo
}

// NewMenuModel creates a picker over every registered demo.
// The cursor starts on preselect if it is registered.
func NewMenuModel(cfg core.RuntimeConfig, theme Theme, preselect string) MenuModel {
	items := registry.List()

	cursor := 0
	for i, item := range items {
		if item.ID == preselect {
			cursor = i
			break
		}
	}

	h := help.New()
	h.Width = cfg.ScreenW

	return MenuModel{
		items:  items,
		cursor: cursor,
		width:  cfg.ScreenW,
		height: cfg.ScreenH,
		config: cfg,
		keys:   DefaultListKeyMap(),
		help:   h,
		theme:  theme,
	}
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.help.Width = msg.Width
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit), key.Matches(msg, m.keys.Back):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}

	case key.Matches(msg, m.keys.Select):
		if len(m.items) > 0 {
			selected := m.items[m.cursor]
			m.selected = &selected
			return m, tea.Quit // Exit menu to start the viewer
		}
	}

	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(m.theme.Title.Render("d r a w i l l e"), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Select a demo", m.width))
	b.WriteString("\n\n")

	// Pad titles so the kind column lines up
	titleWidth := 0
	for _, item := range m.items {
		titleWidth = core.Max(titleWidth, lipgloss.Width(item.Title))
	}

	for i, item := range m.items {
		cursor := "  "
		style := m.theme.Item
		if i == m.cursor {
			cursor = "> "
			style = m.theme.Active
		}
		line := fmt.Sprintf("%s%-*s  %s", cursor, titleWidth, item.Title, m.theme.Dim.Render(item.Kind))
		b.WriteString(centerText(style.Render(line), m.width))
		b.WriteString("\n")
	}
	if len(m.items) == 0 {
		b.WriteString(centerText(m.theme.Dim.Render("No demos registered."), m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText(m.theme.Help.Render(m.help.View(m.keys)), m.width))
	b.WriteString("\n")

	return b.String()
}

// Selected returns the selected demo, or nil if none selected.
func (m MenuModel) Selected() *registry.DemoInfo {
	return m.selected
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// Config returns the current runtime config (may have been updated by resize).
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

// MenuResult holds the result of running the menu.
type MenuResult struct {
	DemoID string
	Config core.RuntimeConfig
	Quit   bool
}

// RunMenu runs the picker and returns the selection result.
func RunMenu(cfg core.RuntimeConfig, theme Theme, preselect string) (MenuResult, error) {
	model := NewMenuModel(cfg, theme, preselect)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return MenuResult{Config: cfg}, err
	}

	m, ok := finalModel.(MenuModel)
	if !ok {
		return MenuResult{Config: cfg, Quit: true}, nil
	}

	result := MenuResult{Config: m.Config()}
	if m.Selected() == nil {
		result.Quit = true
		return result, nil
	}
	result.DemoID = m.Selected().ID
	return result, nil
}
