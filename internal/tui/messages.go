package tui

import (
	"github.com/rgehrsitz/lifex/internal/tui/tuimsg"
)

// Scene represents the screens of the TUI, in tab order
type Scene int

const (
	SceneBasics Scene = iota
	SceneLifestyle
	SceneResults
	SceneSuggestions
	SceneHelp
)

var sceneOrder = []Scene{SceneBasics, SceneLifestyle, SceneResults, SceneSuggestions}

func (s Scene) String() string {
	switch s {
	case SceneBasics:
		return "Basics"
	case SceneLifestyle:
		return "Lifestyle"
	case SceneResults:
		return "Results"
	case SceneSuggestions:
		return "Suggestions"
	case SceneHelp:
		return "Help"
	default:
		return "Unknown"
	}
}

// NavigateMsg switches to a different scene
type NavigateMsg struct {
	Scene Scene
}

// Scene messages are shared with the scenes package through tuimsg
type (
	ProfileLoadedMsg = tuimsg.ProfileLoadedMsg
	ErrorMsg         = tuimsg.ErrorMsg
	BasicsChangedMsg = tuimsg.BasicsChangedMsg
	ChoiceChangedMsg = tuimsg.ChoiceChangedMsg
	SaveCompleteMsg  = tuimsg.SaveCompleteMsg
)
