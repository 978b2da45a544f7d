package tui

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/f3rmion/speedread/internal/history"
	"github.com/f3rmion/speedread/internal/reader"
	"github.com/f3rmion/speedread/internal/tui/views"
)

func newTestApp(t *testing.T, store *history.Store) AppModel {
	t.Helper()
	reg := reader.NewRegistry(
		reader.SampleText{ID: 1, Title: "Letters", Body: "a b c"},
		reader.SampleText{ID: 2, Title: "Numbers", Body: "one two three"},
	)
	ctrl := reader.New(reg, reader.Options{Speed: reader.MaxSpeed})
	m := NewApp(ctrl, Options{History: store})

	next, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 50})
	return next.(AppModel)
}

func update(t *testing.T, m AppModel, msg tea.Msg) (AppModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	return next.(AppModel), cmd
}

func TestAppStartsOnReader(t *testing.T) {
	m := newTestApp(t, nil)

	if m.currentView != ViewReader {
		t.Errorf("expected reader view, got %v", m.currentView)
	}
	view := m.View()
	if !strings.Contains(view, "Speed Reading Trainer") || !strings.Contains(view, "speedread") {
		t.Error("expected sidebar and reader in view")
	}
}

func TestAppNotReady(t *testing.T) {
	m := NewApp(reader.New(nil, reader.Options{}), Options{})
	if m.View() != "Loading..." {
		t.Error("expected loading view before window size")
	}
}

func TestAppSwitchViews(t *testing.T) {
	m := newTestApp(t, nil)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyF2})
	if m.currentView != ViewLibrary || m.selectedMenu != 1 {
		t.Errorf("expected library view, got %v", m.currentView)
	}
	if !strings.Contains(m.View(), "Library") {
		t.Error("expected library in view")
	}

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyF3})
	if m.currentView != ViewHistory {
		t.Errorf("expected history view, got %v", m.currentView)
	}

	m, _ = update(t, m, ViewSwitchMsg{View: ViewReader})
	if m.currentView != ViewReader {
		t.Errorf("expected reader view, got %v", m.currentView)
	}
}

func TestAppSidebarNavigation(t *testing.T) {
	m := newTestApp(t, nil)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if !m.sidebarActive {
		t.Fatal("expected sidebar focus")
	}

	// Keys are not delegated while the sidebar has focus.
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	if m.ctrl.Playing() {
		t.Error("space reached the reader while sidebar was focused")
	}

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.currentView != ViewLibrary || m.sidebarActive {
		t.Errorf("expected library with focus, got view %v sidebar %v", m.currentView, m.sidebarActive)
	}
}

func TestAppTextChosen(t *testing.T) {
	m := newTestApp(t, nil)
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyF2})

	m, _ = update(t, m, views.TextChosenMsg{ID: 2})
	if m.ctrl.Text().ID != 2 {
		t.Errorf("expected text 2, got %d", m.ctrl.Text().ID)
	}
	if m.currentView != ViewReader {
		t.Errorf("expected switch back to reader, got %v", m.currentView)
	}
}

func TestAppTicksReachReaderInOtherViews(t *testing.T) {
	m := newTestApp(t, nil)

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	if !m.ctrl.Playing() {
		t.Fatal("expected playing")
	}
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyF2})

	var tick reader.TickMsg
	found := false
	for _, msg := range runCmd(cmd) {
		if tm, ok := msg.(reader.TickMsg); ok {
			tick, found = tm, true
		}
	}
	if !found {
		t.Fatal("expected a tick to be scheduled")
	}

	m, _ = update(t, m, tick)
	if m.ctrl.Position() != 1 {
		t.Errorf("expected position 1, got %d", m.ctrl.Position())
	}
}

func TestAppRecordsFinishedRuns(t *testing.T) {
	store, err := history.Open(filepath.Join(t.TempDir(), "history.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer store.Close()

	m := newTestApp(t, store)
	m, cmd := update(t, m, views.FinishedMsg{TextID: 1, Title: "Letters", Mode: reader.ModeWords, Speed: 3000, Units: 3})
	msgs := runCmd(cmd)
	if len(msgs) != 1 {
		t.Fatalf("expected one message, got %d", len(msgs))
	}
	m, _ = update(t, m, msgs[0])

	runs, err := store.Recent(context.Background(), 10)
	if err != nil {
		t.Fatalf("Recent: %v", err)
	}
	if len(runs) != 1 || runs[0].Title != "Letters" || runs[0].Mode != "words" {
		t.Errorf("unexpected runs %+v", runs)
	}
}

func TestAppWithoutHistoryIgnoresFinished(t *testing.T) {
	m := newTestApp(t, nil)
	_, cmd := update(t, m, views.FinishedMsg{TextID: 1})
	if cmd != nil {
		t.Error("expected no command without history store")
	}
}

func TestAppHelpOverlay(t *testing.T) {
	m := newTestApp(t, nil)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'?'}})
	if !m.showHelp || !strings.Contains(m.View(), "play/pause") {
		t.Fatal("expected help overlay with reader keys")
	}
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}})
	if m.showHelp {
		t.Error("any key should close help")
	}
}

func TestAppQuitStopsTicker(t *testing.T) {
	m := newTestApp(t, nil)
	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	ticks := runCmd(cmd)

	m, quit := update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if quit == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := quit().(tea.QuitMsg); !ok {
		t.Error("expected QuitMsg")
	}

	for _, msg := range ticks {
		m, _ = update(t, m, msg)
	}
	if m.ctrl.Position() != 0 {
		t.Error("tick after quit advanced playback")
	}
}

func TestAppOpenFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "essay.txt")
	if err := os.WriteFile(path, []byte("read this quickly"), 0644); err != nil {
		t.Fatal(err)
	}

	m := newTestApp(t, nil)
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyF4})
	if m.currentView != ViewOpen || !strings.Contains(m.View(), "Open Text File") {
		t.Fatalf("expected open view, got %v", m.currentView)
	}

	_, cmd := update(t, m, views.FileSelectedMsg{Path: path})
	msgs := runCmd(cmd)
	if len(msgs) != 1 {
		t.Fatalf("expected one message, got %d", len(msgs))
	}
	m, _ = update(t, m, msgs[0])

	if m.currentView != ViewReader {
		t.Errorf("expected reader view, got %v", m.currentView)
	}
	text := m.ctrl.Text()
	if text.ID != 3 || text.Title != "essay" || m.ctrl.Units() != 3 {
		t.Errorf("unexpected opened text %+v", text)
	}

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyF2})
	if !strings.Contains(m.View(), "essay") {
		t.Error("expected opened text in library")
	}
}

func TestAppOpenFileError(t *testing.T) {
	m := newTestApp(t, nil)
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyF4})

	_, cmd := update(t, m, views.FileSelectedMsg{Path: filepath.Join(t.TempDir(), "missing.txt")})
	m, _ = update(t, m, runCmd(cmd)[0])

	if m.currentView != ViewOpen {
		t.Errorf("expected to stay on open view, got %v", m.currentView)
	}
	if m.ctrl.Registry().Len() != 2 {
		t.Error("failed open should not add a text")
	}
	if !strings.Contains(m.View(), "Could not open") {
		t.Error("expected error in open view")
	}
}

func TestAppSettingsView(t *testing.T) {
	m := newTestApp(t, nil)
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyF5})
	if m.currentView != ViewSettings || !strings.Contains(m.View(), "Default speed") {
		t.Fatalf("expected settings view, got %v", m.currentView)
	}

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'c'}})
	if m.settings.Config().Speed != reader.MaxSpeed {
		t.Errorf("expected reader speed copied, got %d", m.settings.Config().Speed)
	}
}

func runCmd(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, runCmd(c)...)
		}
		return out
	}
	return []tea.Msg{msg}
}

func TestAppCtrlCQuitsFromHelp(t *testing.T) {
	m := newTestApp(t, nil)
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'?'}})
	if !m.showHelp {
		t.Fatal("expected help overlay")
	}

	_, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyCtrlC})
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("ctrl+c should quit while help is open")
	}
}
