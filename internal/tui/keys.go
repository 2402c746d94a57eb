package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Up, Down           key.Binding
	Add, Toggle, Del   key.Binding
	Edit, Due          key.Binding
	Filter, Search     key.Binding
	MarkAll, ClearDone key.Binding
	Grab, MoveUp, Drop key.Binding
	MoveDown           key.Binding
	Theme, Help, Quit  key.Binding
	Cancel, Next       key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Up:        key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:      key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Add:       key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add")),
		Toggle:    key.NewBinding(key.WithKeys(" ", "x"), key.WithHelp("space", "toggle")),
		Del:       key.NewBinding(key.WithKeys("d", "delete"), key.WithHelp("d", "delete")),
		Edit:      key.NewBinding(key.WithKeys("e", "enter"), key.WithHelp("e", "edit")),
		Due:       key.NewBinding(key.WithKeys("D"), key.WithHelp("D", "due date")),
		Filter:    key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "filter")),
		Search:    key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search")),
		MarkAll:   key.NewBinding(key.WithKeys("A"), key.WithHelp("A", "mark all done")),
		ClearDone: key.NewBinding(key.WithKeys("C"), key.WithHelp("C", "delete completed")),
		Grab:      key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "move")),
		MoveUp:    key.NewBinding(key.WithKeys("K", "shift+up"), key.WithHelp("K", "move up")),
		MoveDown:  key.NewBinding(key.WithKeys("J", "shift+down"), key.WithHelp("J", "move down")),
		Drop:      key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "drop")),
		Theme:     key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "dark/light")),
		Help:      key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "more")),
		Quit:      key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
		Cancel:    key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
		Next:      key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next field")),
	}
}

// ShortHelp and FullHelp implement help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Add, k.Toggle, k.Edit, k.Del, k.Filter, k.Search, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Add, k.Toggle, k.Del},
		{k.Edit, k.Due, k.Filter, k.Search},
		{k.MarkAll, k.ClearDone, k.Grab, k.MoveUp, k.MoveDown},
		{k.Theme, k.Help, k.Quit},
	}
}
