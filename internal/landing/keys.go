package landing

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Up       key.Binding
	Down     key.Binding
	PageUp   key.Binding
	PageDown key.Binding
	Top      key.Binding
	Bottom   key.Binding
	Jump     key.Binding
	FAQPrev  key.Binding
	FAQNext  key.Binding
	Toggle   key.Binding
	Replay   key.Binding
	Theme    key.Binding
	Menu     key.Binding
	Login    key.Binding
	Chat     key.Binding
	Back     key.Binding
	Help     key.Binding
	Quit     key.Binding
}

var keys = keyMap{
	Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
	Down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
	PageUp:   key.NewBinding(key.WithKeys("pgup", "b"), key.WithHelp("pgup", "page up")),
	PageDown: key.NewBinding(key.WithKeys("pgdown", " ", "f"), key.WithHelp("pgdn", "page down")),
	Top:      key.NewBinding(key.WithKeys("home", "g"), key.WithHelp("g", "top")),
	Bottom:   key.NewBinding(key.WithKeys("end", "G"), key.WithHelp("G", "bottom")),
	Jump:     key.NewBinding(key.WithKeys("1", "2", "3", "4"), key.WithHelp("1-4", "jump to section")),
	FAQPrev:  key.NewBinding(key.WithKeys("["), key.WithHelp("[", "prev faq")),
	FAQNext:  key.NewBinding(key.WithKeys("]"), key.WithHelp("]", "next faq")),
	Toggle:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "toggle faq")),
	Replay:   key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "replay chat")),
	Theme:    key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "theme")),
	Menu:     key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "menu")),
	Login:    key.NewBinding(key.WithKeys("l"), key.WithHelp("l", "sign in")),
	Chat:     key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "open chat")),
	Back:     key.NewBinding(key.WithKeys("esc", "backspace"), key.WithHelp("esc", "back")),
	Help:     key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
	Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Down, k.Jump, k.Replay, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.PageUp, k.PageDown, k.Top, k.Bottom},
		{k.Jump, k.FAQPrev, k.FAQNext, k.Toggle},
		{k.Replay, k.Theme, k.Menu},
		{k.Login, k.Chat, k.Back, k.Help, k.Quit},
	}
}
