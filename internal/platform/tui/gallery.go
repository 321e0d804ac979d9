package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/awelkie/drawille/internal/storage"
)

// Gallery layout constants
const (
	minWidthForPreview = 100 // Minimum width to show the preview beside the table
	tableWidth         = 56  // Width of the frame table
	maxFrames          = 200 // Max frames to load
)

// GalleryModel is the Bubble Tea model for browsing saved frames.
type GalleryModel struct {
	store    *storage.Store
	frames   []storage.FrameEntry
	table    table.Model
	help     help.Model
	keys     ListKeyMap
	theme    Theme
	width    int
	height   int
	status   string
	quitting bool
	sideBy   bool // Whether the preview sits beside the table
}

// NewGalleryModel creates a gallery browser over store.
func NewGalleryModel(store *storage.Store, theme Theme, width, height int) GalleryModel {
	h := help.New()
	h.Width = width

	m := GalleryModel{
		store:  store,
		keys:   DefaultListKeyMap(),
		help:   h,
		theme:  theme,
		width:  width,
		height: height,
		sideBy: width >= minWidthForPreview,
	}
	m.table = m.createTable()
	m.loadFrames()
	return m
}

// createTable creates a new table with appropriate columns.
func (m *GalleryModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "Name", Width: 22},
		{Title: "Kind", Width: 8},
		{Title: "Saved", Width: 14},
	}

	height := m.height - 6 // Title, help and borders
	if !m.sideBy {
		height = m.height/2 - 4
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(height, 3)),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// loadFrames reloads the newest frames from the store.
func (m *GalleryModel) loadFrames() {
	m.frames = nil
	if m.store != nil {
		frames, err := m.store.RecentFrames(maxFrames)
		if err != nil {
			m.status = "could not load frames"
		} else {
			m.frames = frames
		}
	}

	rows := make([]table.Row, len(m.frames))
	for i, f := range m.frames {
		rows[i] = table.Row{
			f.Name,
			f.Kind,
			f.CreatedAt.Format("Jan 02 15:04"),
		}
	}
	m.table.SetRows(rows)

	if m.table.Cursor() >= len(rows) {
		m.table.GotoTop()
	}
}

// Current returns the frame under the cursor, or nil if the gallery is empty.
func (m GalleryModel) Current() *storage.FrameEntry {
	i := m.table.Cursor()
	if i < 0 || i >= len(m.frames) {
		return nil
	}
	return &m.frames[i]
}

// Init initializes the gallery model.
func (m GalleryModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the gallery.
func (m GalleryModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit), key.Matches(msg, m.keys.Back):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Delete):
			m.deleteCurrent()
			return m, nil

		case key.Matches(msg, m.keys.Up), key.Matches(msg, m.keys.Down):
			// Pass to table for scrolling
			m.table, cmd = m.table.Update(msg)
			return m, cmd
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.sideBy = m.width >= minWidthForPreview
		m.table = m.createTable()
		m.loadFrames()
		m.help.Width = msg.Width
		return m, nil
	}

	// Pass other messages to table
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// deleteCurrent removes every frame sharing the current frame's name.
func (m *GalleryModel) deleteCurrent() {
	cur := m.Current()
	if cur == nil || m.store == nil {
		return
	}
	name := cur.Name
	n, err := m.store.DeleteFrames(name)
	if err != nil {
		m.status = "delete failed"
		return
	}
	m.status = fmt.Sprintf("deleted %d frame(s) named %s", n, name)
	m.loadFrames()
}

// View renders the gallery.
func (m GalleryModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	title := fmt.Sprintf("GALLERY - %d frame(s)", len(m.frames))
	b.WriteString(centerText(m.theme.Title.Render(title), m.width))
	b.WriteString("\n\n")

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	list := box.Width(tableWidth).Render(m.renderTableContent())
	preview := box.Render(m.renderPreview())
	if m.sideBy {
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, list, "  ", preview))
	} else {
		b.WriteString(lipgloss.JoinVertical(lipgloss.Left, list, preview))
	}

	b.WriteString("\n")
	if m.status != "" {
		b.WriteString(m.theme.Status.Render(m.status))
		b.WriteString("\n")
	}
	b.WriteString(m.theme.Help.Render(m.help.View(m.keys)))

	return b.String()
}

// renderTableContent renders the table or empty message.
func (m GalleryModel) renderTableContent() string {
	if len(m.frames) == 0 {
		return m.theme.Dim.Padding(2, 4).Render("No frames saved yet.\nPress s in the viewer to take a snapshot!")
	}
	return m.table.View()
}

// renderPreview renders the frame under the cursor.
func (m GalleryModel) renderPreview() string {
	cur := m.Current()
	if cur == nil {
		return m.theme.Dim.Render("nothing to preview")
	}
	header := m.theme.Active.Render(cur.Name) + m.theme.Status.Render("  "+cur.Source)
	return header + "\n" + cur.Body
}

// IsQuitting returns true if user wants to leave the gallery.
func (m GalleryModel) IsQuitting() bool {
	return m.quitting
}

// RunGallery runs the gallery browser.
func RunGallery(store *storage.Store, theme Theme, width, height int) error {
	model := NewGalleryModel(store, theme, width, height)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
