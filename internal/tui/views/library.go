package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/f3rmion/speedread/internal/reader"
	"github.com/mattn/go-runewidth"
	"github.com/muesli/reflow/truncate"
	"github.com/sahilm/fuzzy"
)

// TextChosenMsg is sent when a text is picked in the library.
type TextChosenMsg struct {
	ID int
}

// titles adapts a text list to fuzzy.Source.
type titles []reader.SampleText

func (t titles) String(i int) string { return t[i].Title }
func (t titles) Len() int            { return len(t) }

// padTitle truncates title to width cells and pads it to exactly width.
func padTitle(title string, width int) string {
	return runewidth.FillRight(truncate.StringWithTail(title, uint(width), "…"), width)
}

// LibraryModel lists the available texts.
type LibraryModel struct {
	registry *reader.Registry
	texts    []reader.SampleText
	shown    []reader.SampleText // texts matching the filter
	selected int
	current  int // id of the text open in the reader
	scrollY  int

	filter    textinput.Model
	filtering bool

	keys ListKeyMap
	help help.Model

	width  int
	height int
}

// NewLibraryModel creates a library over the registry texts.
func NewLibraryModel(reg *reader.Registry) LibraryModel {
	ti := textinput.New()
	ti.Prompt = "/ "
	ti.Placeholder = "filter titles"
	ti.CharLimit = 64
	ti.PromptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#4ecdc4"))
	ti.TextStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#ffe66d"))

	m := LibraryModel{
		registry: reg,
		current:  reg.First().ID,
		filter:   ti,
		keys:     DefaultListKeys(),
		help:     help.New(),
	}
	m.reload()
	return m
}

// SetSize updates the view dimensions.
func (m *LibraryModel) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.help.Width = width
	m.filter.Width = max(width-6, 10)
	m.adjustScroll()
}

// SetCurrent marks the text open in the reader and moves the cursor to it.
// The list is reloaded so texts opened from disk show up.
func (m *LibraryModel) SetCurrent(id int) {
	m.current = id
	m.reload()
	for i, t := range m.shown {
		if t.ID == id {
			m.selected = i
			break
		}
	}
	m.adjustScroll()
}

// Filtering reports whether the filter input has focus.
func (m LibraryModel) Filtering() bool {
	return m.filtering
}

// Selected returns the text under the cursor.
func (m LibraryModel) Selected() (reader.SampleText, bool) {
	if m.selected < 0 || m.selected >= len(m.shown) {
		return reader.SampleText{}, false
	}
	return m.shown[m.selected], true
}

func (m *LibraryModel) reload() {
	m.texts = m.registry.List()
	m.applyFilter()
}

// applyFilter ranks texts by fuzzy title match. An empty query shows all
// texts in registry order.
func (m *LibraryModel) applyFilter() {
	query := strings.TrimSpace(m.filter.Value())
	if query == "" {
		m.shown = m.texts
	} else {
		matches := fuzzy.FindFrom(query, titles(m.texts))
		m.shown = make([]reader.SampleText, 0, len(matches))
		for _, match := range matches {
			m.shown = append(m.shown, m.texts[match.Index])
		}
	}
	if m.selected >= len(m.shown) {
		m.selected = max(len(m.shown)-1, 0)
	}
	m.adjustScroll()
}

func (m LibraryModel) visibleHeight() int {
	return max(m.height-10, 3)
}

func (m *LibraryModel) adjustScroll() {
	visible := m.visibleHeight()
	if m.selected < m.scrollY {
		m.scrollY = m.selected
	}
	if m.selected >= m.scrollY+visible {
		m.scrollY = m.selected - visible + 1
	}
}

// Update handles messages.
func (m LibraryModel) Update(msg tea.Msg) (LibraryModel, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if m.filtering {
		return m.updateFilter(keyMsg)
	}

	switch {
	case key.Matches(keyMsg, m.keys.Down):
		if m.selected < len(m.shown)-1 {
			m.selected++
			m.adjustScroll()
		}
	case key.Matches(keyMsg, m.keys.Up):
		if m.selected > 0 {
			m.selected--
			m.adjustScroll()
		}
	case key.Matches(keyMsg, m.keys.Top):
		m.selected = 0
		m.scrollY = 0
	case key.Matches(keyMsg, m.keys.Filter):
		m.filtering = true
		return m, m.filter.Focus()
	case key.Matches(keyMsg, m.keys.Select):
		t, ok := m.Selected()
		if !ok {
			return m, nil
		}
		m.current = t.ID
		return m, func() tea.Msg { return TextChosenMsg{ID: t.ID} }
	}
	return m, nil
}

func (m LibraryModel) updateFilter(msg tea.KeyMsg) (LibraryModel, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.filtering = false
		m.filter.Blur()
		m.filter.Reset()
		m.applyFilter()
		return m, nil
	case tea.KeyEnter:
		m.filtering = false
		m.filter.Blur()
		return m, nil
	case tea.KeyUp, tea.KeyDown:
		m.filtering = false
		m.filter.Blur()
		return m.Update(msg)
	}

	var cmd tea.Cmd
	m.filter, cmd = m.filter.Update(msg)
	m.selected = 0
	m.scrollY = 0
	m.applyFilter()
	return m, cmd
}

// View renders the library.
func (m LibraryModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Library"))
	b.WriteString("\n")

	if len(m.texts) == 0 {
		b.WriteString(mutedStyle.Render("No texts available"))
		return b.String()
	}

	if m.filtering || m.filter.Value() != "" {
		b.WriteString(m.filter.View())
		b.WriteString("\n")
	}

	b.WriteString(mutedStyle.Render(fmt.Sprintf("%-4s %-32s %6s %6s", "ID", "Title", "Words", "Chars")))
	b.WriteString("\n")
	b.WriteString(mutedStyle.Render(strings.Repeat("─", min(max(m.width-4, 10), 52))))
	b.WriteString("\n")

	if len(m.shown) == 0 {
		b.WriteString(mutedStyle.Render("No titles match"))
		b.WriteString("\n")
	}

	end := min(m.scrollY+m.visibleHeight(), len(m.shown))
	for i := m.scrollY; i < end; i++ {
		t := m.shown[i]
		row := fmt.Sprintf("%-4d %s %6d %6d",
			t.ID, padTitle(t.Title, 32), len(strings.Fields(t.Body)), reader.ScrollLength(t.Body))

		var style lipgloss.Style
		switch {
		case i == m.selected:
			style = rowSelectedStyle
		case t.ID == m.current:
			style = rowCurrentStyle
		default:
			style = rowStyle
		}
		b.WriteString(style.Render(row))
		b.WriteString("\n")
	}

	if len(m.shown) > m.visibleHeight() {
		b.WriteString("\n")
		b.WriteString(mutedStyle.Render(fmt.Sprintf("Showing %d-%d of %d", m.scrollY+1, end, len(m.shown))))
		b.WriteString("\n")
	}

	if t, ok := m.Selected(); ok {
		b.WriteString("\n")
		preview := reader.Wrap(t.Body, max(m.width-8, 20))
		lines := strings.Split(preview, "\n")
		if len(lines) > 4 {
			lines = append(lines[:4], "…")
		}
		b.WriteString(boxStyle.Render(strings.Join(lines, "\n")))
		b.WriteString("\n")
	}

	b.WriteString(helpStyle.Render(m.help.View(m.keys)))
	return b.String()
}
