package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	submit  key.Binding
	credits key.Binding
	close   key.Binding
	export  key.Binding
	up      key.Binding
	down    key.Binding
	quit    key.Binding
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.submit, k.credits, k.export, k.down, k.quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.submit, k.export},
		{k.up, k.down},
		{k.credits, k.close, k.quit},
	}
}

func newKeyMap() keyMap {
	return keyMap{
		submit:  key.NewBinding(key.WithKeys("ctrl+s", "ctrl+g"), key.WithHelp("ctrl+s", "generate")),
		credits: key.NewBinding(key.WithKeys("ctrl+d"), key.WithHelp("ctrl+d", "credits")),
		close:   key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "close credits")),
		export:  key.NewBinding(key.WithKeys("ctrl+e"), key.WithHelp("ctrl+e", "save markdown")),
		up:      key.NewBinding(key.WithKeys("pgup"), key.WithHelp("pgup", "scroll up")),
		down:    key.NewBinding(key.WithKeys("pgdown"), key.WithHelp("pgdn", "scroll down")),
		quit:    key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
	}
}
