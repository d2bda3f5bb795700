package tui

import (
	"github.com/charmbracelet/bubbles/key"

	"github.com/jask/datatable/internal/table"
)

type keyMap struct {
	table.KeyMap
	Quit      key.Binding
	ForceQuit key.Binding
	Help      key.Binding
	Reload    key.Binding
}

func newKeyMap(tk table.KeyMap) keyMap {
	return keyMap{
		KeyMap:    tk,
		Quit:      key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
		ForceQuit: key.NewBinding(key.WithKeys("ctrl+c")),
		Help:      key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Reload:    key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reload")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return append(k.KeyMap.ShortHelp(), k.Help, k.Quit)
}

func (k keyMap) FullHelp() [][]key.Binding {
	return append([][]key.Binding{{k.Reload, k.Help, k.Quit}}, k.KeyMap.FullHelp()...)
}
