package views

import "github.com/charmbracelet/bubbles/key"

// ReaderKeyMap holds the reader view bindings.
type ReaderKeyMap struct {
	PlayPause key.Binding
	Reset     key.Binding
	Mode      key.Binding
	NextText  key.Binding
	PrevText  key.Binding
	Preset    key.Binding
	Faster    key.Binding
	Slower    key.Binding
	ScrollUp  key.Binding
	ScrollDn  key.Binding
	BigWords  key.Binding
	Copy      key.Binding
}

// DefaultReaderKeys returns the reader bindings.
func DefaultReaderKeys() ReaderKeyMap {
	return ReaderKeyMap{
		PlayPause: key.NewBinding(key.WithKeys(" ", "enter"), key.WithHelp("space", "play/pause")),
		Reset:     key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reset")),
		Mode:      key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "display mode")),
		NextText:  key.NewBinding(key.WithKeys("n", "]"), key.WithHelp("n", "next text")),
		PrevText:  key.NewBinding(key.WithKeys("p", "["), key.WithHelp("p", "previous text")),
		Preset:    key.NewBinding(key.WithKeys("1", "2", "3", "4", "5"), key.WithHelp("1-5", "speed preset")),
		Faster:    key.NewBinding(key.WithKeys("right", "l", "+"), key.WithHelp("→", "faster")),
		Slower:    key.NewBinding(key.WithKeys("left", "h", "-"), key.WithHelp("←", "slower")),
		ScrollUp:  key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "scroll text")),
		ScrollDn:  key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "scroll text")),
		BigWords:  key.NewBinding(key.WithKeys("b"), key.WithHelp("b", "big words")),
		Copy:      key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "copy text")),
	}
}

// ShortHelp implements help.KeyMap.
func (k ReaderKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.PlayPause, k.Reset, k.Mode, k.NextText, k.Preset, k.Slower, k.Faster}
}

// FullHelp implements help.KeyMap.
func (k ReaderKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.PlayPause, k.Reset, k.Mode},
		{k.NextText, k.PrevText, k.Preset, k.Slower, k.Faster},
		{k.ScrollUp, k.ScrollDn, k.BigWords, k.Copy},
	}
}

// ListKeyMap holds bindings for the list views.
type ListKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Top    key.Binding
	Filter key.Binding
	Select key.Binding
}

// DefaultListKeys returns the list bindings.
func DefaultListKeys() ListKeyMap {
	return ListKeyMap{
		Up:     key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:   key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Top:    key.NewBinding(key.WithKeys("g", "home"), key.WithHelp("g", "top")),
		Filter: key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "filter")),
		Select: key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "select")),
	}
}

// ShortHelp implements help.KeyMap.
func (k ListKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Top, k.Filter, k.Select}
}

// FullHelp implements help.KeyMap.
func (k ListKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// SettingsKeyMap holds the settings view bindings.
type SettingsKeyMap struct {
	Up      key.Binding
	Down    key.Binding
	Inc     key.Binding
	Dec     key.Binding
	Current key.Binding
	Save    key.Binding
}

// DefaultSettingsKeys returns the settings bindings.
func DefaultSettingsKeys() SettingsKeyMap {
	return SettingsKeyMap{
		Up:      key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:    key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Inc:     key.NewBinding(key.WithKeys("right", "l", "+", "enter", " "), key.WithHelp("→", "increase/toggle")),
		Dec:     key.NewBinding(key.WithKeys("left", "h", "-"), key.WithHelp("←", "decrease/toggle")),
		Current: key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "use reader settings")),
		Save:    key.NewBinding(key.WithKeys("s", "ctrl+s"), key.WithHelp("s", "save")),
	}
}

// ShortHelp implements help.KeyMap.
func (k SettingsKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Inc, k.Dec, k.Current, k.Save}
}

// FullHelp implements help.KeyMap.
func (k SettingsKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}
