package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Up        key.Binding
	Down      key.Binding
	NextTab   key.Binding
	PrevTab   key.Binding
	Jump      key.Binding
	Invoke    key.Binding
	Fail      key.Binding
	Refresh   key.Binding
	Send      key.Binding
	Scroll    key.Binding
	Quit      key.Binding
	ForceQuit key.Binding
}

var keys = keyMap{
	Up:        key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
	Down:      key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
	NextTab:   key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next tab")),
	PrevTab:   key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("⇧tab", "prev tab")),
	Jump:      key.NewBinding(key.WithKeys("1", "2", "3", "4"), key.WithHelp("1-4", "jump")),
	Invoke:    key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "invoke tool")),
	Fail:      key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "fail selected")),
	Refresh:   key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "tick now")),
	Send:      key.NewBinding(key.WithKeys("enter"), key.WithHelp("⏎", "send")),
	Scroll:    key.NewBinding(key.WithKeys("pgup", "pgdown"), key.WithHelp("pgup/pgdn", "scroll")),
	Quit:      key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	ForceQuit: key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
}

// tabKeys adapts the key map to the help bubble for the active tab.
type tabKeys struct {
	tab Tab
}

func (t tabKeys) ShortHelp() []key.Binding {
	switch t.tab {
	case TabChat:
		return []key.Binding{keys.Send, keys.Scroll, keys.NextTab, keys.PrevTab, keys.ForceQuit}
	case TabTools:
		return []key.Binding{keys.Up, keys.Down, keys.Invoke, keys.Fail, keys.Refresh, keys.NextTab, keys.Jump, keys.Quit}
	default:
		return []key.Binding{keys.NextTab, keys.PrevTab, keys.Jump, keys.Refresh, keys.Quit}
	}
}

func (t tabKeys) FullHelp() [][]key.Binding { return [][]key.Binding{t.ShortHelp()} }
