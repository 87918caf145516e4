package tuimsg

import (
	"github.com/rgehrsitz/lifex/internal/domain"
)

// ProfileLoadedMsg signals a profile file has been read
type ProfileLoadedMsg struct {
	Name     string
	Path     string
	Profile  domain.Profile
	Warnings []string
}

// ErrorMsg displays an error to the user
type ErrorMsg struct {
	Err error
}

// BasicsChangedMsg sets age and sex on the baseline profile
type BasicsChangedMsg struct {
	Age int
	Sex domain.Sex
}

// ChoiceChangedMsg sets one factor on the profile being edited
type ChoiceChangedMsg struct {
	Factor domain.Factor
	Choice domain.Choice
}

// SaveCompleteMsg signals a save operation has finished
type SaveCompleteMsg struct {
	Filename string
	Err      error
}
