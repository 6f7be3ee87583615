package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Up, Down key.Binding
	Toggle   key.Binding
	Search   key.Binding
	Theme    key.Binding
	Report   key.Binding
	Print    key.Binding
	Close    key.Binding
	Help     key.Binding
	Quit     key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Up:     key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:   key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Toggle: key.NewBinding(key.WithKeys(" ", "enter"), key.WithHelp("space", "toggle")),
		Search: key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search")),
		Theme:  key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "dark/light")),
		Report: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "report")),
		Print:  key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "print")),
		Close:  key.NewBinding(key.WithKeys("esc", "q", "r"), key.WithHelp("esc", "close")),
		Help:   key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "more")),
		Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp and FullHelp satisfy help.KeyMap for the dashboard screen.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Toggle, k.Search, k.Report, k.Theme, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Toggle},
		{k.Search, k.Theme, k.Report},
		{k.Help, k.Quit},
	}
}

// reportKeys is the help shown while the report modal is open.
type reportKeys struct{ keyMap }

func (k reportKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Print, k.Close}
}

func (k reportKeys) FullHelp() [][]key.Binding { return [][]key.Binding{k.ShortHelp()} }
