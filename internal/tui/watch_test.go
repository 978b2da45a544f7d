package tui

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/f3rmion/speedread/internal/reader"
)

const watchedTexts = `texts:
  - id: 1
    title: Replaced
    body: should not replace
  - id: 9
    title: Fresh
    body: new words here
  - title: No id
    body: skipped
`

func TestMergeTexts(t *testing.T) {
	path := filepath.Join(t.TempDir(), "texts.yaml")
	if err := os.WriteFile(path, []byte(watchedTexts), 0644); err != nil {
		t.Fatal(err)
	}
	reg := reader.NewRegistry(reader.SampleText{ID: 1, Title: "Letters", Body: "a b c"})

	added, err := mergeTexts(reg, path)
	if err != nil {
		t.Fatalf("mergeTexts: %v", err)
	}
	if added != 1 || reg.Len() != 2 {
		t.Fatalf("expected one text added, got %d (len %d)", added, reg.Len())
	}
	if got, _ := reg.Get(1); got.Title != "Letters" {
		t.Errorf("existing text replaced: %+v", got)
	}

	// A second reload adds nothing.
	if added, _ := mergeTexts(reg, path); added != 0 {
		t.Errorf("expected no texts on reload, got %d", added)
	}

	if _, err := mergeTexts(reg, filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestTextsWatcherReportsWrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "texts.yaml")
	w, err := newTextsWatcher(path)
	if err != nil {
		t.Fatalf("newTextsWatcher: %v", err)
	}

	done := make(chan any, 1)
	go func() { done <- w.wait() }()

	// Unrelated files in the directory are ignored.
	if err := os.WriteFile(filepath.Join(filepath.Dir(path), "other.txt"), []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(watchedTexts), 0644); err != nil {
		t.Fatal(err)
	}

	select {
	case msg := <-done:
		if _, ok := msg.(textsChangedMsg); !ok {
			t.Errorf("expected textsChangedMsg, got %#v", msg)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for texts change")
	}

	if err := w.Close(); err != nil {
		t.Errorf("Close: %v", err)
	}
	if msg := w.wait(); msg != nil {
		t.Errorf("expected nil after close, got %#v", msg)
	}
}

func TestAppReloadsWatchedTexts(t *testing.T) {
	path := filepath.Join(t.TempDir(), "texts.yaml")
	if err := os.WriteFile(path, []byte("texts: []\n"), 0644); err != nil {
		t.Fatal(err)
	}
	reg := reader.NewRegistry(reader.SampleText{ID: 1, Title: "Letters", Body: "a b c"})
	m := NewApp(reader.New(reg, reader.Options{}), Options{TextsFile: path})
	if m.watcher == nil {
		t.Fatal("expected watcher")
	}
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 120, Height: 50})

	if err := os.WriteFile(path, []byte(watchedTexts), 0644); err != nil {
		t.Fatal(err)
	}
	m, cmd := update(t, m, textsChangedMsg{})
	if cmd == nil {
		t.Error("expected the watch to be re-armed")
	}
	if _, ok := reg.Get(9); !ok {
		t.Error("expected text 9 after reload")
	}

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyF2})
	if !strings.Contains(m.View(), "Fresh") {
		t.Error("expected reloaded text in library")
	}

	_, quit := update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if quit == nil {
		t.Fatal("expected quit")
	}
	if msg := m.watcher.wait(); msg != nil {
		t.Errorf("watcher still open after quit: %#v", msg)
	}
}
