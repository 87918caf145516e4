package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/rgehrsitz/lifex/internal/tui/tuistyles"
)

// View renders the current state of the application
func (m Model) View() string {
	if m.err != nil {
		return m.renderApp(m.renderError())
	}

	var content string
	switch m.currentScene {
	case SceneBasics:
		content = m.basicsModel.View()
	case SceneLifestyle:
		content = m.lifestyleModel.View()
	case SceneResults:
		content = m.resultsModel.View()
	case SceneSuggestions:
		content = m.suggestionsModel.View()
	case SceneHelp:
		content = m.renderHelp()
	default:
		content = "Unknown scene"
	}

	return m.renderApp(content)
}

// renderApp wraps content with title bar, tabs and status bar
func (m Model) renderApp(content string) string {
	return tuistyles.AppStyle.Render(lipgloss.JoinVertical(
		lipgloss.Left,
		m.renderTitleBar(),
		m.renderTabs(),
		"",
		content,
		"",
		m.renderStatusBar(),
	))
}

func (m Model) renderTitleBar() string {
	title := tuistyles.TitleStyle.Render("lifex - Life Expectancy Estimator")

	name := m.profileName
	if name == "" {
		name = "Your Profile"
	}
	if m.comparison != nil {
		name += " (comparing)"
	}
	return title + "  " + tuistyles.SubtitleStyle.Render(name)
}

func (m Model) renderTabs() string {
	tabs := make([]string, 0, len(sceneOrder))
	for i, s := range sceneOrder {
		label := string(rune('1'+i)) + ". " + s.String()
		if s == m.currentScene {
			tabs = append(tabs, tuistyles.ActiveTabStyle.Render(label))
		} else {
			tabs = append(tabs, tuistyles.TabStyle.Render(label))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m Model) renderStatusBar() string {
	lines := []string{}
	if m.status != "" {
		lines = append(lines, tuistyles.InfoStyle.Render(m.status))
	}
	for _, w := range m.warnings {
		lines = append(lines, tuistyles.BannerStyle.Render("warning: "+w))
	}
	lines = append(lines, tuistyles.StatusBarStyle.Render(m.help.ShortHelpView(m.keys.ShortHelp())))
	return strings.Join(lines, "\n")
}

func (m Model) renderError() string {
	return tuistyles.ErrorStyle.Render("Error: "+m.err.Error()) + "\n\n" +
		tuistyles.SubtitleStyle.Render("esc to dismiss • q to quit")
}

func (m Model) renderHelp() string {
	var b strings.Builder
	b.WriteString(tuistyles.TitleStyle.Render("Help"))
	b.WriteString("\n\n")
	b.WriteString(m.help.FullHelpView(m.keys.FullHelp()))
	b.WriteString("\n\n")
	b.WriteString(tuistyles.SubtitleStyle.Render(
		"Estimates add fixed lifestyle adjustments to an average baseline by sex.\n" +
			"Individual results vary with genetics, environment and factors not modelled here."))
	return b.String()
}
