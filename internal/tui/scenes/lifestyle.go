package scenes

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/rgehrsitz/lifex/internal/calculation"
	"github.com/rgehrsitz/lifex/internal/domain"
	"github.com/rgehrsitz/lifex/internal/tui/components"
	"github.com/rgehrsitz/lifex/internal/tui/tuimsg"
	"github.com/rgehrsitz/lifex/internal/tui/tuistyles"
)

// LifestyleModel edits the nine factor choices, one selector per factor
type LifestyleModel struct {
	selectors []*components.ChoiceSelector
	focused   int
	comparing bool
	width     int
	height    int
}

// NewLifestyleModel creates a selector for every factor of the table
func NewLifestyleModel(table *calculation.ImpactTable) *LifestyleModel {
	m := &LifestyleModel{}
	for _, f := range table.Factors() {
		m.selectors = append(m.selectors, components.NewChoiceSelector(table, f))
	}
	if len(m.selectors) > 0 {
		m.selectors[0].SetFocused(true)
	}
	return m
}

// SetProfile selects p's choice in every selector
func (m *LifestyleModel) SetProfile(p domain.Profile) {
	for _, s := range m.selectors {
		s.Select(p.Choice(s.Factor))
	}
}

// SetComparing marks that edits go to the comparison profile
func (m *LifestyleModel) SetComparing(comparing bool) {
	m.comparing = comparing
}

// SetSize updates the scene dimensions
func (m *LifestyleModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// Focused returns the factor under the cursor
func (m *LifestyleModel) Focused() domain.Factor {
	if len(m.selectors) == 0 {
		return ""
	}
	return m.selectors[m.focused].Factor
}

// Update handles messages for the lifestyle scene
func (m *LifestyleModel) Update(msg tea.Msg) (*LifestyleModel, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok || len(m.selectors) == 0 {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keyUp):
		m.moveFocus(-1)
	case key.Matches(keyMsg, keyDown):
		m.moveFocus(1)
	case key.Matches(keyMsg, keyLeft):
		return m, m.changed(m.selectors[m.focused].Prev())
	case key.Matches(keyMsg, keyRight):
		return m, m.changed(m.selectors[m.focused].Next())
	}
	return m, nil
}

func (m *LifestyleModel) moveFocus(delta int) {
	next := m.focused + delta
	if next < 0 || next >= len(m.selectors) {
		return
	}
	m.selectors[m.focused].SetFocused(false)
	m.focused = next
	m.selectors[m.focused].SetFocused(true)
}

func (m *LifestyleModel) changed(moved bool) tea.Cmd {
	if !moved {
		return nil
	}
	s := m.selectors[m.focused]
	f, c := s.Factor, s.Choice()
	return func() tea.Msg {
		return tuimsg.ChoiceChangedMsg{Factor: f, Choice: c}
	}
}

// View renders the lifestyle scene
func (m *LifestyleModel) View() string {
	var b strings.Builder

	b.WriteString(tuistyles.TitleStyle.Render("Lifestyle Factors"))
	b.WriteString("\n")
	if m.comparing {
		b.WriteString(tuistyles.BannerStyle.Render("Comparison mode: changes apply to the comparison profile"))
	} else {
		b.WriteString(tuistyles.SubtitleStyle.Render("Each choice adds or removes years from your baseline."))
	}
	b.WriteString("\n\n")

	for _, s := range m.selectors {
		b.WriteString(s.Render())
		b.WriteString("\n")
	}

	if len(m.selectors) > 0 {
		focused := m.selectors[m.focused]
		b.WriteString("\n")
		b.WriteString(tuistyles.SubtitleStyle.Render(calculation.FactorDescription(focused.Factor)))
		b.WriteString("\n")
		b.WriteString(focused.RenderOptions())
	}

	b.WriteString(tuistyles.InfoStyle.Render("← → to change • ↑↓ to navigate"))
	return b.String()
}
