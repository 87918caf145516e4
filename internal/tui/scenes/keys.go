package scenes

import "github.com/charmbracelet/bubbles/key"

// Navigation keys shared by the editing scenes
var (
	keyUp     = key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "previous"))
	keyDown   = key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "next"))
	keyLeft   = key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "decrease"))
	keyRight  = key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "increase"))
	keyPgUp   = key.NewBinding(key.WithKeys("pgup"), key.WithHelp("pgup", "+10"))
	keyPgDown = key.NewBinding(key.WithKeys("pgdown"), key.WithHelp("pgdn", "-10"))
	keyEnter  = key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "apply"))
)
