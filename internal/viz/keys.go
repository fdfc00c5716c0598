package viz

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Up       key.Binding
	Down     key.Binding
	Select   key.Binding
	Start    key.Binding
	Reset    key.Binding
	NextAlgo key.Binding
	PrevAlgo key.Binding
	Bigger   key.Binding
	Smaller  key.Binding
	Faster   key.Binding
	Slower   key.Binding
	Theme    key.Binding
	Code     key.Binding
	Mute     key.Binding
	Menu     key.Binding
	Help     key.Binding
	Quit     key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Select:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "select")),
		Start:    key.NewBinding(key.WithKeys(" ", "s"), key.WithHelp("space", "start")),
		Reset:    key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "new array")),
		NextAlgo: key.NewBinding(key.WithKeys("tab", "n"), key.WithHelp("tab", "next algorithm")),
		PrevAlgo: key.NewBinding(key.WithKeys("shift+tab", "p"), key.WithHelp("shift+tab", "prev algorithm")),
		Bigger:   key.NewBinding(key.WithKeys("]", "+", "="), key.WithHelp("]", "more bars")),
		Smaller:  key.NewBinding(key.WithKeys("[", "-"), key.WithHelp("[", "fewer bars")),
		Faster:   key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "faster")),
		Slower:   key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "slower")),
		Theme:    key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "theme")),
		Code:     key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "code")),
		Mute:     key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "mute")),
		Menu:     key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "menu")),
		Help:     key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// menuKeys narrows the help line to what the menu understands.
type menuKeys struct{ keyMap }

func (k menuKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Select, k.Theme, k.Quit}
}

func (k menuKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Start, k.Reset, k.NextAlgo, k.Faster, k.Slower, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Start, k.Reset, k.Menu},
		{k.NextAlgo, k.PrevAlgo, k.Bigger, k.Smaller},
		{k.Faster, k.Slower, k.Mute},
		{k.Theme, k.Code, k.Help, k.Quit},
	}
}
