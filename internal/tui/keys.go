package tui

import "github.com/charmbracelet/bubbles/key"

type appKeyMap struct {
	Quit     key.Binding
	Help     key.Binding
	Back     key.Binding
	Sidebar  key.Binding
	Reader   key.Binding
	Library  key.Binding
	History  key.Binding
	Open     key.Binding
	Settings key.Binding
}

func defaultAppKeys() appKeyMap {
	return appKeyMap{
		Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
		Help:     key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "show this help")),
		Back:     key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "sidebar / quit")),
		Sidebar:  key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "toggle sidebar focus")),
		Reader:   key.NewBinding(key.WithKeys("f1"), key.WithHelp("F1", "reader")),
		Library:  key.NewBinding(key.WithKeys("f2"), key.WithHelp("F2", "library")),
		History:  key.NewBinding(key.WithKeys("f3"), key.WithHelp("F3", "history")),
		Open:     key.NewBinding(key.WithKeys("f4"), key.WithHelp("F4", "open file")),
		Settings: key.NewBinding(key.WithKeys("f5"), key.WithHelp("F5", "settings")),
	}
}

func (k appKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Help, k.Quit}
}

func (k appKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Reader, k.Library, k.History, k.Open, k.Settings},
		{k.Sidebar, k.Back, k.Help, k.Quit},
	}
}
