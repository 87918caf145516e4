package scenes

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/shopspring/decimal"

	"github.com/rgehrsitz/lifex/internal/calculation"
	"github.com/rgehrsitz/lifex/internal/domain"
	"github.com/rgehrsitz/lifex/internal/tui/components"
	"github.com/rgehrsitz/lifex/internal/tui/tuimsg"
	"github.com/rgehrsitz/lifex/internal/tui/tuistyles"
)

// SuggestionsModel lists every ranked suggestion; enter applies the selected one
type SuggestionsModel struct {
	suggestions []domain.Suggestion
	current     decimal.Decimal
	best        decimal.Decimal
	cursor      int
	width       int
	height      int
}

// NewSuggestionsModel creates a new suggestions scene model
func NewSuggestionsModel() *SuggestionsModel {
	return &SuggestionsModel{}
}

// SetSuggestions replaces the list. current and best are the adjusted
// expectancy now and with every suggestion applied.
func (m *SuggestionsModel) SetSuggestions(suggestions []domain.Suggestion, current, best decimal.Decimal) {
	m.suggestions = suggestions
	m.current = current
	m.best = best
	if m.cursor >= len(suggestions) {
		m.cursor = max(0, len(suggestions)-1)
	}
}

// SetSize updates the scene dimensions
func (m *SuggestionsModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// Selected returns the suggestion under the cursor
func (m *SuggestionsModel) Selected() (domain.Suggestion, bool) {
	if len(m.suggestions) == 0 {
		return domain.Suggestion{}, false
	}
	return m.suggestions[m.cursor], true
}

// Update handles messages for the suggestions scene
func (m *SuggestionsModel) Update(msg tea.Msg) (*SuggestionsModel, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok || len(m.suggestions) == 0 {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keyUp):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(keyMsg, keyDown):
		if m.cursor < len(m.suggestions)-1 {
			m.cursor++
		}
	case key.Matches(keyMsg, keyEnter):
		s := m.suggestions[m.cursor]
		return m, func() tea.Msg {
			return tuimsg.ChoiceChangedMsg{Factor: s.Factor, Choice: s.BestChoice}
		}
	}
	return m, nil
}

// View renders the suggestions scene
func (m *SuggestionsModel) View() string {
	var b strings.Builder

	b.WriteString(tuistyles.TitleStyle.Render("Suggestions"))
	b.WriteString("\n")

	if len(m.suggestions) == 0 {
		b.WriteString(tuistyles.PositiveStyle.Render("Every factor is already at its best choice."))
		return b.String()
	}

	b.WriteString(tuistyles.SubtitleStyle.Render(fmt.Sprintf(
		"Applying all of them would take you from %s to %s years.",
		calculation.FormatYears(m.current), calculation.FormatYears(m.best))))
	b.WriteString("\n\n")

	for i, s := range m.suggestions {
		cursor := "  "
		style := tuistyles.UnselectedItemStyle
		if i == m.cursor {
			cursor = "▸ "
			style = tuistyles.SelectedItemStyle
		}
		line := fmt.Sprintf("%d. %s: %s → %s", i+1,
			calculation.FactorName(s.Factor),
			calculation.ChoiceLabel(s.Factor, s.CurrentChoice),
			calculation.ChoiceLabel(s.Factor, s.BestChoice))
		b.WriteString(cursor + style.Width(56).Render(line) + " " +
			components.NewImpactBar("", s.PotentialImprovement).Bar() + " " +
			tuistyles.Signed(s.PotentialImprovement))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(tuistyles.InfoStyle.Render("↑↓ to select • enter to apply"))
	return b.String()
}
