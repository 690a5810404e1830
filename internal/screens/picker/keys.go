package picker

import "charm.land/bubbles/v2/key"

type keyMap struct {
	Switch key.Binding
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Draw   key.Binding
	Open   key.Binding
	Help   key.Binding
	Quit   key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Switch: key.NewBinding(
			key.WithKeys("tab", "shift+tab", "left", "right", "h", "l"),
			key.WithHelp("Tab", "Switch"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑", "Up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓", "Down"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("Enter", "Select"),
		),
		Draw: key.NewBinding(
			key.WithKeys("space", " ", "d"),
			key.WithHelp("Space", "Draw"),
		),
		Open: key.NewBinding(
			key.WithKeys("v"),
			key.WithHelp("v", "View card"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "Help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "q"),
			key.WithHelp("Ctrl+C", "Quit"),
		),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Switch, k.Select, k.Draw, k.Open, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Select},
		{k.Switch, k.Draw, k.Open},
		{k.Help, k.Quit},
	}
}
