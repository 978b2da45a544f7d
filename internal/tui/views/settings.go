package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/f3rmion/speedread/internal/config"
	"github.com/f3rmion/speedread/internal/reader"
)

// Settings view styles
var (
	settingsPathStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#666666")).
				Italic(true).
				MarginBottom(1)

	settingsLabelStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#a8dadc")).
				Width(16)

	settingsCursorStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("#ffe66d"))
)

// SettingsSavedMsg reports the result of writing config.yaml.
type SettingsSavedMsg struct {
	Err error
}

type settingField int

const (
	fieldSpeed settingField = iota
	fieldMode
	fieldScrollOnly
	fieldScrollWidth
	fieldBigWords
	fieldHistory
	fieldCount
)

var fieldLabels = [fieldCount]string{
	fieldSpeed:       "Default speed",
	fieldMode:        "Display mode",
	fieldScrollOnly:  "Scroll only",
	fieldScrollWidth: "Scroll width",
	fieldBigWords:    "Big words",
	fieldHistory:     "Record history",
}

// scrollWidthStep is the change per key press of the scroll width setting.
const scrollWidthStep = 10

// SettingsModel edits the startup defaults stored in config.yaml.
type SettingsModel struct {
	cfg       config.Config
	configDir string // empty disables saving
	ctrl      *reader.Controller

	cursor settingField
	dirty  bool
	status string
	err    error

	keys SettingsKeyMap
	help help.Model

	width  int
	height int
}

// NewSettingsModel creates a settings editor for cfg stored in configDir.
func NewSettingsModel(cfg config.Config, configDir string, ctrl *reader.Controller) SettingsModel {
	cfg.Normalize()
	return SettingsModel{
		cfg:       cfg,
		configDir: configDir,
		ctrl:      ctrl,
		keys:      DefaultSettingsKeys(),
		help:      help.New(),
	}
}

// SetSize updates the view dimensions.
func (m *SettingsModel) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.help.Width = width
}

// Config returns the edited configuration.
func (m SettingsModel) Config() config.Config {
	return m.cfg
}

// Update handles messages.
func (m SettingsModel) Update(msg tea.Msg) (SettingsModel, tea.Cmd) {
	switch msg := msg.(type) {
	case SettingsSavedMsg:
		m.err = msg.Err
		if msg.Err == nil {
			m.dirty = false
			m.status = "Saved"
		}
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Down):
			if m.cursor < fieldCount-1 {
				m.cursor++
			}
		case key.Matches(msg, m.keys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
		case key.Matches(msg, m.keys.Inc):
			m.adjust(1)
		case key.Matches(msg, m.keys.Dec):
			m.adjust(-1)
		case key.Matches(msg, m.keys.Current):
			m.useCurrent()
		case key.Matches(msg, m.keys.Save):
			return m, m.save()
		}
	}
	return m, nil
}

func (m *SettingsModel) adjust(dir int) {
	switch m.cursor {
	case fieldSpeed:
		m.cfg.Speed = max(m.cfg.Speed+dir*reader.SpeedStep, reader.MinSpeed)
	case fieldMode:
		if m.cfg.ReaderMode() == reader.ModeWords {
			m.cfg.Mode = reader.ModeScroll.String()
		} else {
			m.cfg.Mode = reader.ModeWords.String()
		}
	case fieldScrollOnly:
		m.cfg.ScrollOnly = !m.cfg.ScrollOnly
	case fieldScrollWidth:
		m.cfg.ScrollWidth += dir * scrollWidthStep
	case fieldBigWords:
		m.cfg.BigWords = !m.cfg.BigWords
	case fieldHistory:
		m.cfg.History = !m.cfg.History
	}
	m.cfg.Normalize()
	m.dirty = true
	m.status = ""
}

// useCurrent copies the reader's speed, mode and text into the defaults.
func (m *SettingsModel) useCurrent() {
	if m.ctrl == nil {
		return
	}
	m.cfg.Speed = m.ctrl.Speed()
	if !m.cfg.ScrollOnly {
		m.cfg.Mode = m.ctrl.Mode().String()
	}
	m.cfg.TextID = m.ctrl.Text().ID
	m.cfg.Normalize()
	m.dirty = true
	m.status = "Copied from reader"
}

func (m SettingsModel) save() tea.Cmd {
	if m.configDir == "" {
		return nil
	}
	dir, cfg := m.configDir, m.cfg
	return func() tea.Msg {
		if err := config.EnsureConfigDir(dir); err != nil {
			return SettingsSavedMsg{Err: err}
		}
		err := config.Save(dir, cfg)
		if err != nil {
			log.Warn("could not save settings", "err", err)
		} else {
			log.Debug("settings saved", "dir", dir)
		}
		return SettingsSavedMsg{Err: err}
	}
}

func (m SettingsModel) value(f settingField) string {
	onOff := func(b bool) string {
		if b {
			return "on"
		}
		return "off"
	}

	switch f {
	case fieldSpeed:
		return fmt.Sprintf("%d %s", m.cfg.Speed, m.cfg.ReaderMode().Unit())
	case fieldMode:
		return m.cfg.ReaderMode().Label()
	case fieldScrollOnly:
		return onOff(m.cfg.ScrollOnly)
	case fieldScrollWidth:
		if m.cfg.ScrollWidth == 0 {
			return "fit window"
		}
		return fmt.Sprintf("%d cells", m.cfg.ScrollWidth)
	case fieldBigWords:
		return onOff(m.cfg.BigWords)
	case fieldHistory:
		return onOff(m.cfg.History)
	}
	return ""
}

// View renders the settings view.
func (m SettingsModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Settings"))
	b.WriteString("\n")

	if m.configDir == "" {
		b.WriteString(settingsPathStyle.Render("No config directory, changes apply to this session only"))
	} else {
		b.WriteString(settingsPathStyle.Render("Config: " + m.configDir))
	}
	b.WriteString("\n\n")

	for f := settingField(0); f < fieldCount; f++ {
		prefix := "  "
		style := valueStyle
		if f == m.cursor {
			prefix = settingsCursorStyle.Render("> ")
			style = rowSelectedStyle
		}
		b.WriteString(prefix)
		b.WriteString(settingsLabelStyle.Render(fieldLabels[f]))
		b.WriteString(style.Render(m.value(f)))
		b.WriteString("\n")
	}

	if t, ok := m.registryText(); ok {
		b.WriteString("\n")
		b.WriteString(mutedStyle.Render("  Startup text: " + t.Title))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	switch {
	case m.err != nil:
		b.WriteString(errorStyle.Render("Save failed: " + m.err.Error()))
	case m.status != "":
		b.WriteString(copiedStyle.Render(m.status))
	case m.dirty:
		b.WriteString(mutedStyle.Render("Unsaved changes"))
	}
	b.WriteString("\n")
	b.WriteString(mutedStyle.Render("Defaults apply the next time speedread starts."))
	b.WriteString("\n")

	b.WriteString(helpStyle.Render(m.help.View(m.keys)))
	return b.String()
}

func (m SettingsModel) registryText() (reader.SampleText, bool) {
	if m.ctrl == nil || m.cfg.TextID == 0 {
		return reader.SampleText{}, false
	}
	return m.ctrl.Registry().Get(m.cfg.TextID)
}
