package tui

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/awelkie/drawille/internal/storage"
)

func sessionUpdate(t *testing.T, m SessionModel, msg tea.Msg) (SessionModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	sm, ok := next.(SessionModel)
	if !ok {
		t.Fatalf("Update() returned %T, expected SessionModel", next)
	}
	return sm, cmd
}

func TestSessionStartsInViewer(t *testing.T) {
	m := NewSessionModel(nil, testConfig(), "tui-test-b", Options{})
	if !m.InViewer() {
		t.Fatal("session should start in the viewer for a registered demo")
	}
	if m.Init() == nil {
		t.Error("Init() should start the tick loop")
	}

	// Back to the picker, then pick the first demo
	m, _ = sessionUpdate(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.InViewer() {
		t.Fatal("esc should return to the picker")
	}
	m, cmd := sessionUpdate(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if !m.InViewer() {
		t.Fatal("enter should start a demo")
	}
	if cmd == nil {
		t.Error("starting a demo should start its tick loop")
	}
	if m.viewer.demo.ID() == "" {
		t.Error("viewer has no demo")
	}

	m, cmd = sessionUpdate(t, m, keyRune('q'))
	if cmd == nil || m.View() != "" {
		t.Error("q should end the session")
	}
}

func TestSessionUnknownDemoStartsInPicker(t *testing.T) {
	m := NewSessionModel(nil, testConfig(), "no-such-demo", Options{})
	if m.InViewer() {
		t.Fatal("unknown demo should start in the picker")
	}

	m, _ = sessionUpdate(t, m, tea.WindowSizeMsg{Width: 60, Height: 20})
	if m.config.ScreenW != 60 || m.config.ScreenH != 20 {
		t.Errorf("config = %dx%d, expected 60x20", m.config.ScreenW, m.config.ScreenH)
	}

	m, cmd := sessionUpdate(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if cmd == nil || !m.quitting {
		t.Error("esc in the picker should end the session")
	}
}

func TestMenuNavigation(t *testing.T) {
	m := NewMenuModel(testConfig(), NewTheme(nil, "cyan"), "tui-test-b")
	start := m.cursor
	if m.items[start].ID != "tui-test-b" {
		t.Fatalf("cursor on %q, expected preselected tui-test-b", m.items[start].ID)
	}

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyUp})
	m = next.(MenuModel)
	if m.cursor != start-1 {
		t.Errorf("cursor = %d, expected %d", m.cursor, start-1)
	}

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(MenuModel)
	if m.Selected() == nil || m.Selected().ID != m.items[start-1].ID {
		t.Errorf("Selected() = %v", m.Selected())
	}
	if cmd == nil {
		t.Error("selecting should quit the picker")
	}
}

func TestGalleryBrowse(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "gallery.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	for _, name := range []string{"first", "second", "second"} {
		if _, err := store.SaveFrame(name, "test", "braille", "⠁"+name); err != nil {
			t.Fatalf("SaveFrame() failed: %v", err)
		}
	}

	m := NewGalleryModel(store, NewTheme(nil, ""), 120, 40)
	if len(m.frames) != 3 {
		t.Fatalf("loaded %d frames, expected 3", len(m.frames))
	}
	if cur := m.Current(); cur == nil || cur.Name != "second" {
		t.Fatalf("Current() = %+v, expected newest frame", cur)
	}

	next, _ := m.Update(keyRune('x'))
	m = next.(GalleryModel)
	if len(m.frames) != 1 || m.frames[0].Name != "first" {
		t.Errorf("after delete frames = %+v, expected only first", m.frames)
	}

	view := m.View()
	if want := "⠁first"; !strings.Contains(view, want) {
		t.Errorf("View() should preview %q:\n%s", want, view)
	}

	next, cmd := m.Update(keyRune('q'))
	m = next.(GalleryModel)
	if !m.IsQuitting() || cmd == nil {
		t.Error("q should leave the gallery")
	}
}

func TestGalleryEmpty(t *testing.T) {
	m := NewGalleryModel(nil, NewTheme(nil, ""), 60, 20)
	if m.Current() != nil {
		t.Error("Current() should be nil without frames")
	}
	if !strings.Contains(m.View(), "No frames saved yet.") {
		t.Error("empty gallery should say so")
	}
}
