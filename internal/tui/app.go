package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/f3rmion/speedread/internal/config"
	"github.com/f3rmion/speedread/internal/history"
	"github.com/f3rmion/speedread/internal/reader"
	"github.com/f3rmion/speedread/internal/tui/views"
)

// ViewType represents the current active view
type ViewType int

const (
	ViewReader ViewType = iota
	ViewLibrary
	ViewHistory
	ViewOpen
	ViewSettings
)

// MenuItem represents a sidebar menu entry
type MenuItem struct {
	Label    string
	View     ViewType
	Shortcut string
}

// ViewSwitchMsg requests a view change
type ViewSwitchMsg struct {
	View ViewType
}

type runRecordedMsg struct {
	err error
}

type textOpenedMsg struct {
	text reader.SampleText
	err  error
}

// Recorder stores finished runs.
type Recorder interface {
	Record(ctx context.Context, r history.Run) (int64, error)
}

// Options configures the application.
type Options struct {
	BigWords    bool
	ScrollWidth int
	History     *history.Store // nil disables history
	Config      config.Config  // Startup defaults shown in settings
	ConfigDir   string         // Where settings are saved, empty disables saving
	OpenDir     string         // Start directory of the file picker
	TextsFile   string         // Watched for new texts, empty disables watching
}

// AppModel is the main TUI model
type AppModel struct {
	ctrl     *reader.Controller
	recorder Recorder

	// Layout state
	width        int
	height       int
	sidebarWidth int
	ready        bool

	// Navigation
	currentView   ViewType
	menuItems     []MenuItem
	selectedMenu  int
	sidebarActive bool

	// Sub-models (views)
	readerView  views.ReaderModel
	libraryView views.LibraryModel
	historyView views.HistoryModel
	openView    views.FilePickerModel
	settings    views.SettingsModel

	textsFile string
	watcher   *textsWatcher

	keys     appKeyMap
	showHelp bool
}

// NewApp creates the TUI application around ctrl.
func NewApp(ctrl *reader.Controller, opts Options) AppModel {
	menuItems := []MenuItem{
		{Label: "Reader", View: ViewReader, Shortcut: "F1"},
		{Label: "Library", View: ViewLibrary, Shortcut: "F2"},
		{Label: "History", View: ViewHistory, Shortcut: "F3"},
		{Label: "Open", View: ViewOpen, Shortcut: "F4"},
		{Label: "Settings", View: ViewSettings, Shortcut: "F5"},
	}

	var (
		recorder Recorder
		source   views.HistorySource
	)
	if opts.History != nil {
		recorder = opts.History
		source = opts.History
	}

	app := AppModel{
		ctrl:         ctrl,
		recorder:     recorder,
		sidebarWidth: 16,
		currentView:  ViewReader,
		menuItems:    menuItems,
		keys:         defaultAppKeys(),

		readerView: views.NewReaderModel(ctrl, views.ReaderOptions{
			BigWords:    opts.BigWords,
			ScrollWidth: opts.ScrollWidth,
		}),
		libraryView: views.NewLibraryModel(ctrl.Registry()),
		historyView: views.NewHistoryModel(source),
		openView:    views.NewFilePickerModel(opts.OpenDir),
		settings:    views.NewSettingsModel(opts.Config, opts.ConfigDir, ctrl),
		textsFile:   opts.TextsFile,
	}
	app.libraryView.SetCurrent(ctrl.Text().ID)

	if opts.TextsFile != "" {
		w, err := newTextsWatcher(opts.TextsFile)
		if err != nil {
			log.Warn("not watching texts file", "path", opts.TextsFile, "err", err)
		} else {
			app.watcher = w
		}
	}

	return app
}

// Init initializes the model
func (m AppModel) Init() tea.Cmd {
	if m.watcher != nil {
		return tea.Batch(m.historyView.Refresh(), m.watcher.wait)
	}
	return m.historyView.Refresh()
}

// Update handles messages
func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.shutdown()
			return m, tea.Quit
		}

		// Help overlay - any key closes it
		if m.showHelp {
			m.showHelp = false
			return m, nil
		}

		// The library filter takes every other key while focused
		if m.currentView == ViewLibrary && m.libraryView.Filtering() {
			var cmd tea.Cmd
			m.libraryView, cmd = m.libraryView.Update(msg)
			return m, cmd
		}

		switch {
		case key.Matches(msg, m.keys.Quit):
			m.shutdown()
			return m, tea.Quit
		case key.Matches(msg, m.keys.Help):
			m.showHelp = true
			return m, nil
		case key.Matches(msg, m.keys.Back):
			// Esc goes back to sidebar or quits
			if m.sidebarActive {
				m.shutdown()
				return m, tea.Quit
			}
			m.sidebarActive = true
			return m, nil
		case key.Matches(msg, m.keys.Reader):
			return m.switchView(ViewReader)
		case key.Matches(msg, m.keys.Library):
			return m.switchView(ViewLibrary)
		case key.Matches(msg, m.keys.History):
			return m.switchView(ViewHistory)
		case key.Matches(msg, m.keys.Open):
			return m.switchView(ViewOpen)
		case key.Matches(msg, m.keys.Settings):
			return m.switchView(ViewSettings)
		case key.Matches(msg, m.keys.Sidebar):
			m.sidebarActive = !m.sidebarActive
			return m, nil
		}

		// Sidebar navigation when active
		if m.sidebarActive {
			switch msg.String() {
			case "j", "down":
				if m.selectedMenu < len(m.menuItems)-1 {
					m.selectedMenu++
				}
			case "k", "up":
				if m.selectedMenu > 0 {
					m.selectedMenu--
				}
			case "enter", "l", "right":
				return m.switchView(m.menuItems[m.selectedMenu].View)
			}
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true

		contentWidth := m.width - m.sidebarWidth - 4
		contentHeight := m.height - 2

		m.readerView.SetSize(contentWidth, contentHeight)
		m.libraryView.SetSize(contentWidth, contentHeight)
		m.historyView.SetSize(contentWidth, contentHeight)
		m.openView.SetSize(contentWidth, contentHeight)
		m.settings.SetSize(contentWidth, contentHeight)
		return m, nil

	case ViewSwitchMsg:
		return m.switchView(msg.View)

	case reader.TickMsg:
		// Playback continues while other views are shown.
		var cmd tea.Cmd
		m.readerView, cmd = m.readerView.Update(msg)
		return m, cmd

	case views.TextChosenMsg:
		cmd := m.readerView.SelectText(msg.ID)
		m.libraryView.SetCurrent(msg.ID)
		next, switchCmd := m.switchView(ViewReader)
		return next, tea.Batch(cmd, switchCmd)

	case views.FileSelectedMsg:
		return m, openText(msg.Path)

	case textOpenedMsg:
		if msg.err != nil {
			log.Warn("could not open text", "err", msg.err)
			m.openView.SetError(msg.err)
			return m, nil
		}
		t, ok := m.ctrl.Registry().Add(msg.text)
		if !ok {
			return m, nil
		}
		log.Debug("opened text", "id", t.ID, "title", t.Title)
		return m.Update(views.TextChosenMsg{ID: t.ID})

	case textsChangedMsg:
		added, err := mergeTexts(m.ctrl.Registry(), m.textsFile)
		if err != nil {
			log.Warn("could not reload texts file", "path", m.textsFile, "err", err)
		} else if added > 0 {
			log.Debug("reloaded texts file", "added", added)
			m.libraryView.SetCurrent(m.ctrl.Text().ID)
		}
		return m, m.watcher.wait

	case views.FinishedMsg:
		return m, m.recordRun(msg)

	case runRecordedMsg:
		if msg.err != nil {
			log.Warn("could not record run", "err", msg.err)
			return m, nil
		}
		return m, m.historyView.Refresh()
	}

	// Keys go to the active view unless the sidebar has focus; everything
	// else reaches all views.
	var cmd tea.Cmd
	if _, isKey := msg.(tea.KeyMsg); isKey {
		if m.sidebarActive {
			return m, nil
		}
		switch m.currentView {
		case ViewReader:
			m.readerView, cmd = m.readerView.Update(msg)
		case ViewLibrary:
			m.libraryView, cmd = m.libraryView.Update(msg)
		case ViewHistory:
			m.historyView, cmd = m.historyView.Update(msg)
		case ViewOpen:
			m.openView, cmd = m.openView.Update(msg)
		case ViewSettings:
			m.settings, cmd = m.settings.Update(msg)
		}
		return m, cmd
	}

	m.readerView, cmd = m.readerView.Update(msg)
	cmds = append(cmds, cmd)
	m.libraryView, cmd = m.libraryView.Update(msg)
	cmds = append(cmds, cmd)
	m.historyView, cmd = m.historyView.Update(msg)
	cmds = append(cmds, cmd)
	m.settings, cmd = m.settings.Update(msg)
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

// shutdown stops playback and the texts watcher before quitting.
func (m *AppModel) shutdown() {
	m.readerView.Stop()
	if m.watcher != nil {
		if err := m.watcher.Close(); err != nil {
			log.Debug("closing texts watcher", "err", err)
		}
	}
}

func (m AppModel) switchView(v ViewType) (AppModel, tea.Cmd) {
	m.currentView = v
	m.sidebarActive = false
	for i, item := range m.menuItems {
		if item.View == v {
			m.selectedMenu = i
			break
		}
	}

	switch v {
	case ViewLibrary:
		m.libraryView.SetCurrent(m.ctrl.Text().ID)
	case ViewHistory:
		return m, m.historyView.Refresh()
	}
	return m, nil
}

// recordRun stores a finished run asynchronously
func (m AppModel) recordRun(msg views.FinishedMsg) tea.Cmd {
	if m.recorder == nil {
		return nil
	}
	rec := m.recorder
	run := history.Run{
		TextID: msg.TextID,
		Title:  msg.Title,
		Mode:   msg.Mode.String(),
		Speed:  msg.Speed,
		Units:  msg.Units,
	}
	return func() tea.Msg {
		_, err := rec.Record(context.Background(), run)
		return runRecordedMsg{err: err}
	}
}

// openText reads a plain text file off the UI goroutine.
func openText(path string) tea.Cmd {
	return func() tea.Msg {
		t, err := config.LoadTextFile(path, 0)
		return textOpenedMsg{text: t, err: err}
	}
}

// View renders the UI
func (m AppModel) View() string {
	if !m.ready {
		return "Loading..."
	}

	if m.showHelp {
		return m.renderHelp()
	}

	sidebar := m.renderSidebar()

	var content string
	switch m.currentView {
	case ViewReader:
		content = m.readerView.View()
	case ViewLibrary:
		content = m.libraryView.View()
	case ViewHistory:
		content = m.historyView.View()
	case ViewOpen:
		content = m.openView.View()
	case ViewSettings:
		content = m.settings.View()
	}

	contentWidth := m.width - m.sidebarWidth - 4
	mainContent := ContentStyle.
		Width(contentWidth).
		Height(m.height - 2).
		Render(content)

	return lipgloss.JoinHorizontal(lipgloss.Top, sidebar, mainContent)
}

// renderSidebar renders the sidebar navigation
func (m AppModel) renderSidebar() string {
	var items []string

	items = append(items, SidebarTitleStyle.Render(" speedread "))
	items = append(items, "")

	for i, item := range m.menuItems {
		label := item.Shortcut + " " + item.Label

		var style lipgloss.Style
		if i == m.selectedMenu {
			if m.sidebarActive {
				style = SidebarItemActiveStyle
			} else {
				// Indicate current view but not focused
				style = SidebarItemStyle.Bold(true).Foreground(ColorSecondary)
			}
		} else {
			style = SidebarItemStyle
		}

		items = append(items, style.Render(label))
	}

	// Playback indicator
	items = append(items, "")
	if m.ctrl.Playing() {
		items = append(items, SidebarPlayingStyle.Render("▶ playing"))
	} else {
		items = append(items, SidebarItemStyle.Render("■ stopped"))
	}

	usedHeight := len(items) + 4
	if m.height > usedHeight {
		for i := 0; i < m.height-usedHeight-2; i++ {
			items = append(items, "")
		}
	}

	items = append(items, SidebarHelpStyle.Render("? Help  q Quit"))

	content := lipgloss.JoinVertical(lipgloss.Left, items...)

	return SidebarStyle.
		Width(m.sidebarWidth).
		Height(m.height - 2).
		Render(content)
}

// renderHelp renders the help overlay
func (m AppModel) renderHelp() string {
	helpText := HelpTitleStyle.Render("speedread") + "\n\n"

	section := func(name string, groups [][]key.Binding) {
		helpText += HelpSectionStyle.Render(name) + "\n"
		for _, group := range groups {
			for _, b := range group {
				h := b.Help()
				helpText += HelpKeyStyle.Render(h.Key) + HelpDescStyle.Render(h.Desc) + "\n"
			}
		}
	}

	section("Global Keys", m.keys.FullHelp())
	section("Reader", views.DefaultReaderKeys().FullHelp())
	section("Library", views.DefaultListKeys().FullHelp())
	section("Settings", views.DefaultSettingsKeys().FullHelp())

	helpText += "\n" + HelpFooterStyle.Render("Press any key to close")

	helpBox := HelpBoxStyle.Render(helpText)
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, helpBox)
}
