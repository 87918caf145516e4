package tui

import "github.com/charmbracelet/bubbles/key"

// keyMap holds the global bindings; scenes handle their own arrow keys
type keyMap struct {
	NextScene key.Binding
	PrevScene key.Binding
	Basics    key.Binding
	Lifestyle key.Binding
	Results   key.Binding
	Suggest   key.Binding
	Compare   key.Binding
	Reset     key.Binding
	Save      key.Binding
	Help      key.Binding
	Back      key.Binding
	Quit      key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		NextScene: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next")),
		PrevScene: key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "previous")),
		Basics:    key.NewBinding(key.WithKeys("1"), key.WithHelp("1", "basics")),
		Lifestyle: key.NewBinding(key.WithKeys("2"), key.WithHelp("2", "lifestyle")),
		Results:   key.NewBinding(key.WithKeys("3"), key.WithHelp("3", "results")),
		Suggest:   key.NewBinding(key.WithKeys("4"), key.WithHelp("4", "suggestions")),
		Compare:   key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "toggle compare")),
		Reset:     key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reset profile")),
		Save:      key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "save")),
		Help:      key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Back:      key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
		Quit:      key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp implements help.KeyMap
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.NextScene, k.Compare, k.Save, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.NextScene, k.PrevScene, k.Basics, k.Lifestyle, k.Results, k.Suggest},
		{k.Compare, k.Reset, k.Save},
		{k.Help, k.Back, k.Quit},
	}
}
