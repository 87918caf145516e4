package scenes

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/rgehrsitz/lifex/internal/domain"
	"github.com/rgehrsitz/lifex/internal/tui/tuimsg"
	"github.com/rgehrsitz/lifex/internal/tui/tuistyles"
)

const (
	basicsFieldAge = iota
	basicsFieldSex
)

// BasicsModel edits age and sex of the baseline profile
type BasicsModel struct {
	age     int
	sex     domain.Sex
	focused int
	width   int
	height  int
}

// NewBasicsModel creates a new basics scene model
func NewBasicsModel() *BasicsModel {
	return &BasicsModel{age: domain.DefaultAge, sex: domain.DefaultSex}
}

// SetProfile copies age and sex from p
func (m *BasicsModel) SetProfile(p domain.Profile) {
	m.age = p.Age
	m.sex = p.Sex
}

// SetSize updates the scene dimensions
func (m *BasicsModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// Age returns the edited age
func (m *BasicsModel) Age() int { return m.age }

// Sex returns the edited sex
func (m *BasicsModel) Sex() domain.Sex { return m.sex }

// Update handles messages for the basics scene
func (m *BasicsModel) Update(msg tea.Msg) (*BasicsModel, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	changed := false
	switch {
	case key.Matches(keyMsg, keyUp):
		m.focused = basicsFieldAge
	case key.Matches(keyMsg, keyDown):
		m.focused = basicsFieldSex
	case key.Matches(keyMsg, keyLeft):
		changed = m.adjust(-1)
	case key.Matches(keyMsg, keyRight):
		changed = m.adjust(1)
	case key.Matches(keyMsg, keyPgUp):
		changed = m.focused == basicsFieldAge && m.adjust(10)
	case key.Matches(keyMsg, keyPgDown):
		changed = m.focused == basicsFieldAge && m.adjust(-10)
	}

	if !changed {
		return m, nil
	}
	age, sex := m.age, m.sex
	return m, func() tea.Msg {
		return tuimsg.BasicsChangedMsg{Age: age, Sex: sex}
	}
}

// adjust moves the focused field by delta and reports whether it changed
func (m *BasicsModel) adjust(delta int) bool {
	if m.focused == basicsFieldSex {
		if m.sex == domain.SexFemale {
			m.sex = domain.SexMale
		} else {
			m.sex = domain.SexFemale
		}
		return true
	}

	age := m.age + delta
	if age < domain.MinAge {
		age = domain.MinAge
	}
	if age > domain.MaxAge {
		age = domain.MaxAge
	}
	if age == m.age {
		return false
	}
	m.age = age
	return true
}

// View renders the basics scene
func (m *BasicsModel) View() string {
	var b strings.Builder

	b.WriteString(tuistyles.TitleStyle.Render("Basic Information"))
	b.WriteString("\n")
	b.WriteString(tuistyles.SubtitleStyle.Render("Your baseline comes from average life expectancy for your sex."))
	b.WriteString("\n\n")

	b.WriteString(m.field(basicsFieldAge, "Age", fmt.Sprintf("%d", m.age)))
	b.WriteString(m.field(basicsFieldSex, "Sex", sexLabel(m.sex)))

	b.WriteString("\n")
	b.WriteString(tuistyles.InfoStyle.Render("← → to adjust • pgup/pgdn ±10 years • ↑↓ to navigate"))
	return b.String()
}

func (m *BasicsModel) field(idx int, label, value string) string {
	if idx == m.focused {
		return fmt.Sprintf("▸ %s ◀ %s ▶\n", tuistyles.SelectedItemStyle.Width(8).Render(label), value)
	}
	return fmt.Sprintf("  %s   %s\n", tuistyles.UnselectedItemStyle.Width(8).Render(label), value)
}

func sexLabel(s domain.Sex) string {
	switch s {
	case domain.SexMale:
		return "Male"
	case domain.SexFemale:
		return "Female"
	default:
		return string(s)
	}
}
