package views

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/f3rmion/speedread/internal/clipboard"
	"github.com/f3rmion/speedread/internal/reader"
	"github.com/f3rmion/speedread/internal/tui/bigword"
)

const (
	wordRows    = 1
	bigWordRows = 6
	minWidth    = 24
)

// FinishedMsg is sent when a text has been read to the end.
type FinishedMsg struct {
	TextID int
	Title  string
	Mode   reader.Mode
	Speed  int
	Units  int
}

type readerClearStatusMsg struct{}

func readerClearStatusAfter(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return readerClearStatusMsg{}
	})
}

// ReaderOptions configures the reader view.
type ReaderOptions struct {
	BigWords    bool
	ScrollWidth int
}

// ReaderModel is the main speed-reading view.
type ReaderModel struct {
	ctrl   *reader.Controller
	ticker reader.Ticker
	keys   ReaderKeyMap
	help   help.Model

	speedBar    progress.Model
	progressBar progress.Model
	panel       viewport.Model
	panelTextID int

	bigWords    bool
	scrollWidth int

	status      string
	statusIsErr bool

	width  int
	height int
}

// NewReaderModel creates the reader view around ctrl.
func NewReaderModel(ctrl *reader.Controller, opts ReaderOptions) ReaderModel {
	m := ReaderModel{
		ctrl:        ctrl,
		keys:        DefaultReaderKeys(),
		help:        help.New(),
		speedBar:    progress.New(progress.WithDefaultGradient(), progress.WithoutPercentage()),
		progressBar: progress.New(progress.WithSolidFill("#4ecdc4"), progress.WithoutPercentage()),
		panel:       viewport.New(minWidth, 3),
		bigWords:    opts.BigWords && bigword.IsAvailable(),
		scrollWidth: opts.ScrollWidth,
		panelTextID: -1,
	}
	m.SetSize(80, 40)
	return m
}

// Controller returns the playback controller.
func (m ReaderModel) Controller() *reader.Controller {
	return m.ctrl
}

// SetSize updates the view dimensions.
func (m *ReaderModel) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.help.Width = width

	barWidth := max(m.contentWidth()-24, 10)
	m.speedBar.Width = barWidth
	m.progressBar.Width = barWidth

	m.panel.Width = m.contentWidth() - 4
	m.panel.Height = m.panelHeight()
	m.panelTextID = -1
	m.refreshPanel()
}

func (m ReaderModel) contentWidth() int {
	return max(m.width-2, minWidth)
}

func (m ReaderModel) displayRows() int {
	if m.bigWords && m.ctrl.Mode() == reader.ModeWords {
		return bigWordRows
	}
	return wordRows
}

// panelHeight is what is left below the controls and the display area.
func (m ReaderModel) panelHeight() int {
	const chrome = 18
	return max(m.height-chrome-m.displayRows(), 3)
}

func (m *ReaderModel) refreshPanel() {
	text := m.ctrl.Text()
	if text.ID == m.panelTextID {
		return
	}
	m.panelTextID = text.ID
	m.panel.SetContent(reader.Wrap(text.Body, m.panel.Width))
	m.panel.SetYOffset(0)
}

// SelectText switches the reader to the text with id.
func (m *ReaderModel) SelectText(id int) tea.Cmd {
	if !m.ctrl.SelectText(id) {
		return nil
	}
	m.refreshPanel()
	return m.sync()
}

// Stop tears down the playback timer.
func (m *ReaderModel) Stop() {
	m.ticker.Stop()
}

func (m *ReaderModel) sync() tea.Cmd {
	return m.ticker.Sync(m.ctrl.Deps(), m.ctrl.Interval())
}

// Update handles messages.
func (m ReaderModel) Update(msg tea.Msg) (ReaderModel, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		cmds = append(cmds, m.handleKey(msg))

	case reader.TickMsg:
		if !m.ticker.Accept(msg) {
			return m, nil
		}
		if m.ctrl.Tick() {
			cmds = append(cmds, m.finished())
		}

	case readerClearStatusMsg:
		m.status = ""
		m.statusIsErr = false
	}

	m.refreshPanel()
	cmds = append(cmds, m.sync())
	return m, tea.Batch(cmds...)
}

func (m *ReaderModel) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.PlayPause):
		m.ctrl.Toggle()
	case key.Matches(msg, m.keys.Reset):
		m.ctrl.Reset()
	case key.Matches(msg, m.keys.Mode):
		if m.ctrl.ScrollOnly() {
			return nil
		}
		m.ctrl.ToggleMode()
		m.panel.Height = m.panelHeight()
	case key.Matches(msg, m.keys.NextText):
		m.ctrl.NextText()
	case key.Matches(msg, m.keys.PrevText):
		m.ctrl.PrevText()
	case key.Matches(msg, m.keys.Preset):
		presets := reader.Presets()
		i := int(msg.String()[0] - '1')
		if i >= 0 && i < len(presets) {
			m.ctrl.SetSpeed(presets[i].Speed)
		}
	case key.Matches(msg, m.keys.Faster):
		m.ctrl.StepSpeed(1)
	case key.Matches(msg, m.keys.Slower):
		m.ctrl.StepSpeed(-1)
	case key.Matches(msg, m.keys.ScrollDn):
		m.panel.SetYOffset(m.panel.YOffset + 1)
	case key.Matches(msg, m.keys.ScrollUp):
		m.panel.SetYOffset(m.panel.YOffset - 1)
	case key.Matches(msg, m.keys.BigWords):
		if !bigword.IsAvailable() {
			return m.setStatus("No font found for big words", true)
		}
		m.bigWords = !m.bigWords
		m.panel.Height = m.panelHeight()
	case key.Matches(msg, m.keys.Copy):
		if err := clipboard.Write(m.ctrl.Body()); err != nil {
			log.Debug("clipboard write failed", "err", err)
			return m.setStatus("Clipboard unavailable", true)
		}
		return m.setStatus("Copied!", false)
	}
	return nil
}

func (m *ReaderModel) setStatus(s string, isErr bool) tea.Cmd {
	m.status = s
	m.statusIsErr = isErr
	return readerClearStatusAfter(2 * time.Second)
}

func (m ReaderModel) finished() tea.Cmd {
	text := m.ctrl.Text()
	msg := FinishedMsg{
		TextID: text.ID,
		Title:  text.Title,
		Mode:   m.ctrl.Mode(),
		Speed:  m.ctrl.Speed(),
		Units:  m.ctrl.Units(),
	}
	log.Debug("text finished", "text", msg.TextID, "mode", msg.Mode, "speed", msg.Speed)
	return func() tea.Msg { return msg }
}

// View renders the reader view.
func (m ReaderModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Speed Reading Trainer"))
	b.WriteString("\n")

	if !m.ctrl.ScrollOnly() {
		b.WriteString(m.renderModeRow())
		b.WriteString("\n")
	}
	b.WriteString(m.renderTextRow())
	b.WriteString("\n")
	b.WriteString(m.renderPresetRow())
	b.WriteString("\n")
	b.WriteString(m.renderSpeedRow())
	b.WriteString("\n\n")

	b.WriteString(m.renderDisplay())
	b.WriteString("\n")
	b.WriteString(m.renderProgress())
	b.WriteString("\n\n")
	b.WriteString(m.renderButtons())
	b.WriteString("\n\n")

	b.WriteString(m.renderPanel())
	b.WriteString("\n")
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

func (m ReaderModel) renderModeRow() string {
	var tabs []string
	for _, mode := range []reader.Mode{reader.ModeWords, reader.ModeScroll} {
		style := tabStyle
		if mode == m.ctrl.Mode() {
			style = tabActiveStyle
		}
		tabs = append(tabs, style.Render(mode.Label()))
	}
	return labelStyle.Render("Mode") + lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m ReaderModel) renderTextRow() string {
	reg := m.ctrl.Registry()
	text := m.ctrl.Text()

	pos := 0
	for i, t := range reg.List() {
		if t.ID == text.ID {
			pos = i + 1
			break
		}
	}

	return labelStyle.Render("Text") +
		mutedStyle.Render("‹ ") +
		valueStyle.Render(text.Title) +
		mutedStyle.Render(fmt.Sprintf(" ›  %d/%d", pos, reg.Len()))
}

func (m ReaderModel) renderPresetRow() string {
	var buttons []string
	for i, p := range reader.Presets() {
		style := tabStyle
		if p.Speed == m.ctrl.Speed() {
			style = tabActiveStyle
		}
		buttons = append(buttons, style.Render(fmt.Sprintf("%d %s", i+1, p.Label)))
	}
	return labelStyle.Render("Presets") + lipgloss.JoinHorizontal(lipgloss.Top, buttons...)
}

func (m ReaderModel) renderSpeedRow() string {
	span := float64(reader.MaxSpeed - reader.MinSpeed)
	pct := float64(m.ctrl.Speed()-reader.MinSpeed) / span

	return labelStyle.Render("Speed") +
		m.speedBar.ViewAs(pct) + " " +
		valueStyle.Render(fmt.Sprintf("%d %s", m.ctrl.Speed(), m.ctrl.Mode().Unit()))
}

func (m ReaderModel) renderDisplay() string {
	width := m.contentWidth() - 2
	rows := m.displayRows()

	var content string
	switch m.ctrl.Mode() {
	case reader.ModeScroll:
		stripWidth := width - 2
		if m.scrollWidth > 0 && m.scrollWidth < stripWidth {
			stripWidth = m.scrollWidth
		}
		strip := reader.Strip(m.ctrl.Body(), m.ctrl.Position(), stripWidth)
		content = lipgloss.PlaceHorizontal(width, lipgloss.Center, stripStyle.Render(strip))
	default:
		word := m.ctrl.Word()
		art := ""
		if m.bigWords {
			art = bigword.Render(word, rows, width-2)
		}
		if art != "" {
			content = wordStyle.Render(art)
		} else {
			content = wordStyle.Render(word)
		}
		content = lipgloss.Place(width, rows, lipgloss.Center, lipgloss.Center, content)
	}

	return displayStyle.Width(width).Render(content)
}

func (m ReaderModel) renderProgress() string {
	return labelStyle.Render("Progress") +
		m.progressBar.ViewAs(m.ctrl.Progress()) + " " +
		mutedStyle.Render(fmt.Sprintf("%d/%d", m.ctrl.Position(), m.ctrl.Bound()))
}

func (m ReaderModel) renderButtons() string {
	label := "Start"
	if m.ctrl.Playing() {
		label = "Pause"
	}

	row := buttonPrimaryStyle.Render(label) + buttonStyle.Render("Reset")
	if m.status != "" {
		style := copiedStyle
		if m.statusIsErr {
			style = errorStyle
		}
		row += "  " + style.Render(m.status)
	}
	return row
}

func (m ReaderModel) renderPanel() string {
	text := m.ctrl.Text()
	return boxStyle.Width(m.contentWidth() - 2).Render(
		panelTitleStyle.Render(text.Title) + "\n" + m.panel.View(),
	)
}
