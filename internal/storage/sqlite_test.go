package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Check that the file was created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreNestedPath(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}

func TestStoreExpandsHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	store, err := Open("~/.drawille/gallery.db")
	if err != nil {
		t.Fatalf("Open() with ~ path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(filepath.Join(home, ".drawille", "gallery.db")); err != nil {
		t.Errorf("Database file was not created under the home directory: %v", err)
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	body := "⠁⠂\n⠄⡀"
	id, err := store.SaveFrame("dots", "scene.yaml", "braille", body)
	if err != nil {
		t.Fatalf("SaveFrame() failed: %v", err)
	}
	if id <= 0 {
		t.Errorf("SaveFrame() id = %d, expected positive", id)
	}

	f, err := store.Frame("dots")
	if err != nil {
		t.Fatalf("Frame() failed: %v", err)
	}
	if f == nil {
		t.Fatal("Frame() returned nil for a saved frame")
	}
	if f.Body != body || f.Source != "scene.yaml" || f.Kind != "braille" {
		t.Errorf("Frame() = %+v, unexpected fields", f)
	}
	if f.CreatedAt.IsZero() {
		t.Error("CreatedAt should be set")
	}
}

func TestStoreFrameLatestWins(t *testing.T) {
	store := openTestStore(t)

	store.SaveFrame("shot", "spiral", "turtle", "first")
	store.SaveFrame("shot", "spiral", "turtle", "second")

	f, err := store.Frame("shot")
	if err != nil || f == nil {
		t.Fatalf("Frame() = (%v, %v)", f, err)
	}
	if f.Body != "second" {
		t.Errorf("Frame().Body = %q, expected the latest save", f.Body)
	}
}

func TestStoreFrameMissing(t *testing.T) {
	store := openTestStore(t)

	f, err := store.Frame("nope")
	if err != nil {
		t.Fatalf("Frame() failed: %v", err)
	}
	if f != nil {
		t.Errorf("Frame() = %+v, expected nil", f)
	}
}

func TestStoreSaveEmptyName(t *testing.T) {
	store := openTestStore(t)

	if _, err := store.SaveFrame("", "x", "block", "body"); err == nil {
		t.Error("SaveFrame() with empty name should fail")
	}
}

func TestStoreRecentFrames(t *testing.T) {
	store := openTestStore(t)

	for _, name := range []string{"a", "b", "c", "d", "e"} {
		if _, err := store.SaveFrame(name, "sine", "braille", name); err != nil {
			t.Fatalf("SaveFrame() failed: %v", err)
		}
	}

	frames, err := store.RecentFrames(3)
	if err != nil {
		t.Fatalf("RecentFrames() failed: %v", err)
	}
	if len(frames) != 3 {
		t.Fatalf("Expected 3 frames with limit, got %d", len(frames))
	}
	if frames[0].Name != "e" || frames[1].Name != "d" || frames[2].Name != "c" {
		t.Errorf("Frames not newest first: %s %s %s", frames[0].Name, frames[1].Name, frames[2].Name)
	}

	all, err := store.RecentFrames(0)
	if err != nil {
		t.Fatalf("RecentFrames(0) failed: %v", err)
	}
	if len(all) != 5 {
		t.Errorf("Expected 5 frames with default limit, got %d", len(all))
	}
}

func TestStoreDeleteFrames(t *testing.T) {
	store := openTestStore(t)

	store.SaveFrame("keep", "sine", "braille", "1")
	store.SaveFrame("drop", "sine", "braille", "2")
	store.SaveFrame("drop", "sine", "braille", "3")

	n, err := store.DeleteFrames("drop")
	if err != nil {
		t.Fatalf("DeleteFrames() failed: %v", err)
	}
	if n != 2 {
		t.Errorf("DeleteFrames() = %d, expected 2", n)
	}

	if f, _ := store.Frame("drop"); f != nil {
		t.Error("Deleted frame should be gone")
	}
	if f, _ := store.Frame("keep"); f == nil {
		t.Error("Other frames should not be affected")
	}
}
