package views

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// FileSelectedMsg is sent when a file is selected
type FileSelectedMsg struct {
	Path string
}

// TextExtensions are the file types offered by the picker.
var TextExtensions = []string{".txt", ".text", ".md", ".markdown", ".gz", ".zst"}

var (
	fpPathStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666")).
			Italic(true).
			MarginBottom(1)

	fpDirStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#4ecdc4")).
			Bold(true)

	fpRuleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#3d5a80"))
)

// FileEntry represents a file or directory
type FileEntry struct {
	Name  string
	IsDir bool
	Path  string
}

// FilePickerModel browses the filesystem for a text to open.
type FilePickerModel struct {
	currentDir string
	entries    []FileEntry
	selected   int
	offset     int // For scrolling

	extensions []string // Filter to these extensions

	err     error
	loadErr error // Last failed open, shown until the next selection

	width  int
	height int
}

// NewFilePickerModel creates a picker rooted at dir, or the working
// directory when dir is empty.
func NewFilePickerModel(dir string) FilePickerModel {
	if dir == "" {
		dir, _ = os.Getwd()
	}
	if dir == "" {
		dir, _ = os.UserHomeDir()
	}
	if dir == "" {
		dir = "/"
	}

	m := FilePickerModel{
		currentDir: dir,
		extensions: TextExtensions,
	}
	m.loadDir()
	return m
}

// SetSize updates the view dimensions.
func (m *FilePickerModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// SetError shows err for the last opened file.
func (m *FilePickerModel) SetError(err error) {
	m.loadErr = err
}

// Dir returns the directory being shown.
func (m FilePickerModel) Dir() string {
	return m.currentDir
}

// Entries returns the listed entries.
func (m FilePickerModel) Entries() []FileEntry {
	return m.entries
}

// loadDir loads the entries from the current directory
func (m *FilePickerModel) loadDir() {
	m.entries = nil
	m.selected = 0
	m.offset = 0
	m.err = nil

	entries, err := os.ReadDir(m.currentDir)
	if err != nil {
		m.err = err
		return
	}

	if parent := filepath.Dir(m.currentDir); parent != m.currentDir {
		m.entries = append(m.entries, FileEntry{
			Name:  "..",
			IsDir: true,
			Path:  parent,
		})
	}

	var dirs, files []FileEntry

	for _, entry := range entries {
		if strings.HasPrefix(entry.Name(), ".") {
			continue
		}

		fe := FileEntry{
			Name:  entry.Name(),
			IsDir: entry.IsDir(),
			Path:  filepath.Join(m.currentDir, entry.Name()),
		}

		if entry.IsDir() {
			dirs = append(dirs, fe)
		} else if m.matchesExtension(entry.Name()) {
			files = append(files, fe)
		}
	}

	sort.Slice(dirs, func(i, j int) bool {
		return strings.ToLower(dirs[i].Name) < strings.ToLower(dirs[j].Name)
	})
	sort.Slice(files, func(i, j int) bool {
		return strings.ToLower(files[i].Name) < strings.ToLower(files[j].Name)
	})

	// Dirs first, then files
	m.entries = append(m.entries, dirs...)
	m.entries = append(m.entries, files...)
}

func (m *FilePickerModel) matchesExtension(name string) bool {
	if len(m.extensions) == 0 {
		return true
	}
	ext := strings.ToLower(filepath.Ext(name))
	for _, e := range m.extensions {
		if ext == e {
			return true
		}
	}
	return false
}

func (m *FilePickerModel) chdir(dir string) {
	m.currentDir = dir
	m.loadErr = nil
	m.loadDir()
}

// Update handles messages.
func (m FilePickerModel) Update(msg tea.Msg) (FilePickerModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "j", "down":
			if m.selected < len(m.entries)-1 {
				m.selected++
				m.adjustScroll()
			}
		case "k", "up":
			if m.selected > 0 {
				m.selected--
				m.adjustScroll()
			}
		case "enter", "l", "right":
			if m.selected < len(m.entries) {
				entry := m.entries[m.selected]
				if entry.IsDir {
					m.chdir(entry.Path)
					return m, nil
				}
				m.loadErr = nil
				return m, func() tea.Msg {
					return FileSelectedMsg{Path: entry.Path}
				}
			}
		case "backspace", "h":
			if parent := filepath.Dir(m.currentDir); parent != m.currentDir {
				m.chdir(parent)
			}
		case "~":
			if home, _ := os.UserHomeDir(); home != "" {
				m.chdir(home)
			}
		case "g":
			m.selected = 0
			m.offset = 0
		case "G":
			m.selected = max(len(m.entries)-1, 0)
			m.adjustScroll()
		case "ctrl+d":
			m.selected = min(m.selected+m.getVisibleHeight()/2, max(len(m.entries)-1, 0))
			m.adjustScroll()
		case "ctrl+u":
			m.selected = max(m.selected-m.getVisibleHeight()/2, 0)
			m.adjustScroll()
		}
	}

	return m, nil
}

func (m *FilePickerModel) getVisibleHeight() int {
	return max(m.height-8, 5)
}

func (m *FilePickerModel) adjustScroll() {
	visibleHeight := m.getVisibleHeight()

	if m.selected < m.offset {
		m.offset = m.selected
	}
	if m.selected >= m.offset+visibleHeight {
		m.offset = m.selected - visibleHeight + 1
	}
}

// View renders the file picker.
func (m FilePickerModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Open Text File"))
	b.WriteString("\n")
	b.WriteString(fpPathStyle.Render(m.currentDir))
	b.WriteString("\n")

	if m.err != nil {
		b.WriteString(errorStyle.Render("Error: " + m.err.Error()))
		b.WriteString("\n\n")
	}
	if m.loadErr != nil {
		b.WriteString(errorStyle.Render("Could not open: " + m.loadErr.Error()))
		b.WriteString("\n\n")
	}

	rule := fpRuleStyle.Render(strings.Repeat("─", min(max(m.width-4, 10), 60)))
	b.WriteString(rule)
	b.WriteString("\n")

	if len(m.entries) == 0 {
		b.WriteString(mutedStyle.Render("  (no text files found)"))
		b.WriteString("\n")
	}

	end := min(m.offset+m.getVisibleHeight(), len(m.entries))
	for i := m.offset; i < end; i++ {
		entry := m.entries[i]

		icon := "[FILE] "
		if entry.IsDir {
			icon = "[DIR]  "
		}

		var style lipgloss.Style
		switch {
		case i == m.selected:
			style = rowSelectedStyle
		case entry.IsDir:
			style = fpDirStyle
		default:
			style = rowStyle
		}

		prefix := "  "
		if i == m.selected {
			prefix = "> "
		}

		b.WriteString(prefix)
		b.WriteString(style.Render(icon + entry.Name))
		b.WriteString("\n")
	}

	if len(m.entries) > m.getVisibleHeight() {
		b.WriteString(mutedStyle.Render(strings.Repeat(" ", 50) + "↕ scroll"))
		b.WriteString("\n")
	}

	b.WriteString(rule)
	b.WriteString("\n")
	b.WriteString(helpStyle.Render("enter: open • backspace: parent • ~: home • g/G: top/bottom"))

	return b.String()
}
