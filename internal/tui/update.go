package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/rgehrsitz/lifex/internal/compare"
	"github.com/rgehrsitz/lifex/internal/domain"
)

// Update handles all messages and updates the model state
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		m.setSize(msg.Width, msg.Height)
		return m, nil

	case NavigateMsg:
		m.navigate(msg.Scene)
		return m, nil

	case ErrorMsg:
		m.err = msg.Err
		return m, nil

	case ProfileLoadedMsg:
		m.baseline = msg.Profile
		m.comparison = nil
		m.profileName = msg.Name
		m.profilePath = msg.Path
		m.warnings = msg.Warnings
		m.status = "Loaded " + msg.Path
		m.refresh()
		return m, nil

	case BasicsChangedMsg:
		m.baseline.Age = msg.Age
		m.baseline.Sex = msg.Sex
		m.rebaseComparison()
		m.refresh()
		return m, nil

	case ChoiceChangedMsg:
		if m.comparison != nil {
			modified := m.comparison.With(msg.Factor, msg.Choice)
			m.comparison = &modified
		} else {
			m.baseline = m.baseline.With(msg.Factor, msg.Choice)
		}
		m.refresh()
		return m, nil

	case SaveCompleteMsg:
		if msg.Err != nil {
			m.err = msg.Err
		} else {
			m.profilePath = msg.Filename
			m.status = "Saved to " + msg.Filename
		}
		return m, nil
	}

	return m, nil
}

// rebaseComparison keeps the comparison's own factor choices after the
// baseline changed
func (m *Model) rebaseComparison() {
	if m.comparison == nil {
		return
	}
	rebased := compare.Rebase(m.baseline, *m.comparison)
	m.comparison = &rebased
}

func (m *Model) navigate(scene Scene) {
	if scene == m.currentScene {
		return
	}
	m.previousScene = m.currentScene
	m.currentScene = scene
}

// handleKeyPress processes keyboard input
func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.err != nil {
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Back):
			m.err = nil
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		if m.currentScene == SceneHelp {
			m.navigate(m.previousScene)
		} else {
			m.navigate(SceneHelp)
		}
		return m, nil

	case key.Matches(msg, m.keys.Back):
		if m.currentScene == SceneHelp {
			m.navigate(m.previousScene)
		}
		return m, nil

	case key.Matches(msg, m.keys.NextScene):
		m.navigate(m.stepScene(1))
		return m, nil

	case key.Matches(msg, m.keys.PrevScene):
		m.navigate(m.stepScene(-1))
		return m, nil

	case key.Matches(msg, m.keys.Basics):
		m.navigate(SceneBasics)
		return m, nil

	case key.Matches(msg, m.keys.Lifestyle):
		m.navigate(SceneLifestyle)
		return m, nil

	case key.Matches(msg, m.keys.Results):
		m.navigate(SceneResults)
		return m, nil

	case key.Matches(msg, m.keys.Suggest):
		m.navigate(SceneSuggestions)
		return m, nil

	case key.Matches(msg, m.keys.Compare):
		m.toggleComparison()
		return m, nil

	case key.Matches(msg, m.keys.Reset):
		m.baseline = domain.DefaultProfileFor(m.baseline.Age, m.baseline.Sex)
		m.comparison = nil
		m.status = "Profile reset to defaults"
		m.refresh()
		return m, nil

	case key.Matches(msg, m.keys.Save):
		path := m.profilePath
		if path == "" {
			path = defaultSavePath
		}
		return m, saveProfileCmd(m.parser, path, m.profileName, m.baseline)
	}

	return m.updateCurrentScene(msg)
}

func (m *Model) toggleComparison() {
	if m.comparison != nil {
		m.comparison = nil
		m.status = "Comparison reset. You can now make changes to create a new comparison."
	} else {
		modified := m.baseline
		m.comparison = &modified
		m.status = "Comparison mode active. Make changes to see how they affect your life expectancy."
	}
	m.refresh()
}

// stepScene returns the tab-order neighbour of the current scene, wrapping around
func (m Model) stepScene(delta int) Scene {
	current := m.currentScene
	if current == SceneHelp {
		current = m.previousScene
	}
	for i, s := range sceneOrder {
		if s == current {
			return sceneOrder[(i+delta+len(sceneOrder))%len(sceneOrder)]
		}
	}
	return SceneBasics
}

// updateCurrentScene delegates a message to the active scene
func (m Model) updateCurrentScene(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.currentScene {
	case SceneBasics:
		m.basicsModel, cmd = m.basicsModel.Update(msg)
	case SceneLifestyle:
		m.lifestyleModel, cmd = m.lifestyleModel.Update(msg)
	case SceneSuggestions:
		m.suggestionsModel, cmd = m.suggestionsModel.Update(msg)
	}
	return m, cmd
}
