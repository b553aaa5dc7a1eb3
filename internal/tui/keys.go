package tui

import "github.com/charmbracelet/bubbles/key"

// keyMap lists the key bindings of the grid editor.
type keyMap struct {
	Up        key.Binding
	Down      key.Binding
	Left      key.Binding
	Right     key.Binding
	Toggle    key.Binding
	Start     key.Binding
	Goal      key.Binding
	Algorithm key.Binding
	Clear     key.Binding
	Help      key.Binding
	Quit      key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up:        key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:      key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Left:      key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "left")),
		Right:     key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "right")),
		Toggle:    key.NewBinding(key.WithKeys(" ", "space", "enter"), key.WithHelp("space/click", "toggle obstacle")),
		Start:     key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "move start")),
		Goal:      key.NewBinding(key.WithKeys("g"), key.WithHelp("g", "move goal")),
		Algorithm: key.NewBinding(key.WithKeys("a", "tab"), key.WithHelp("a", "next algorithm")),
		Clear:     key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "clear obstacles")),
		Help:      key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:      key.NewBinding(key.WithKeys("q", "ctrl+c", "esc"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Toggle, k.Algorithm, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Toggle, k.Start, k.Goal},
		{k.Algorithm, k.Clear, k.Help, k.Quit},
	}
}
