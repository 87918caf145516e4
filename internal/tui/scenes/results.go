package scenes

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/rgehrsitz/lifex/internal/calculation"
	"github.com/rgehrsitz/lifex/internal/compare"
	"github.com/rgehrsitz/lifex/internal/domain"
	"github.com/rgehrsitz/lifex/internal/tui/components"
	"github.com/rgehrsitz/lifex/internal/tui/tuistyles"
)

// suggestionPaneSize is how many suggestions the results pane shows
const suggestionPaneSize = 3

// ResultsModel shows either the single-profile breakdown or, in comparison
// mode, the baseline against the comparison profile
type ResultsModel struct {
	result      domain.Result
	suggestions []domain.Suggestion

	comparison *domain.ComparisonResult
	modified   domain.Profile

	width  int
	height int
}

// NewResultsModel creates a new results scene model
func NewResultsModel() *ResultsModel {
	return &ResultsModel{}
}

// SetResult updates the single-profile view
func (m *ResultsModel) SetResult(result domain.Result, suggestions []domain.Suggestion) {
	m.result = result
	m.suggestions = suggestions
}

// SetComparison switches to comparison view; nil switches back
func (m *ResultsModel) SetComparison(cmp *domain.ComparisonResult, modified domain.Profile) {
	m.comparison = cmp
	m.modified = modified
}

// SetSize updates the scene dimensions
func (m *ResultsModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// View renders the results scene
func (m *ResultsModel) View() string {
	if m.comparison != nil {
		return m.renderComparison()
	}
	return m.renderSingle()
}

func (m *ResultsModel) renderSingle() string {
	r := m.result
	var b strings.Builder

	b.WriteString(tuistyles.TitleStyle.Render("Your Life Expectancy"))
	b.WriteString("\n")
	b.WriteString(tuistyles.SubtitleStyle.Render(calculation.Summary(r)))
	b.WriteString("\n\n")

	b.WriteString(components.MetricGrid([]*components.MetricCard{
		components.NewMetricCard("Base", r.BaseLifeExpectancy),
		components.NewMetricCard("Adjusted", r.AdjustedLifeExpectancy).WithDelta(r.YearsGainedLost),
		components.NewMetricCard("Remaining", r.TotalYearsRemaining).
			WithDescription(fmt.Sprintf("from age %d", r.CurrentAge)),
	}, 3))
	b.WriteString("\n\n")

	b.WriteString(tuistyles.TableHeaderStyle.Render("Impact by factor"))
	b.WriteString("\n")
	for _, fi := range r.FactorsByMagnitude() {
		b.WriteString(components.NewImpactBar(calculation.FactorName(fi.Factor), fi.Years).Render())
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.renderSuggestionPane())
	return b.String()
}

func (m *ResultsModel) renderSuggestionPane() string {
	var b strings.Builder
	b.WriteString(tuistyles.TableHeaderStyle.Render("Top suggestions"))
	b.WriteString("\n")

	top := calculation.TopSuggestions(m.suggestions, suggestionPaneSize)
	if len(top) == 0 {
		b.WriteString(tuistyles.PositiveStyle.Render("Every factor is already at its best choice."))
		return b.String()
	}
	for _, s := range top {
		b.WriteString(fmt.Sprintf("• %s: %s → %s %s\n",
			calculation.FactorName(s.Factor),
			calculation.ChoiceLabel(s.Factor, s.CurrentChoice),
			calculation.ChoiceLabel(s.Factor, s.BestChoice),
			tuistyles.Signed(s.PotentialImprovement)))
	}
	return b.String()
}

func (m *ResultsModel) renderComparison() string {
	cmp := m.comparison
	var b strings.Builder

	b.WriteString(tuistyles.BannerStyle.Render("Comparison Mode"))
	b.WriteString(tuistyles.SubtitleStyle.Render(" comparing your baseline profile with adjusted factors"))
	b.WriteString("\n\n")

	headline := tuistyles.ToneStyle(cmp.Difference).Bold(true).Render(compare.Headline(cmp.Difference))
	b.WriteString(headline + "  " + tuistyles.Signed(cmp.Difference) + " years")
	b.WriteString("\n\n")

	b.WriteString(components.MetricGrid([]*components.MetricCard{
		components.NewMetricCard("Original", cmp.Original.AdjustedLifeExpectancy).
			WithDescription(calculation.FormatYears(cmp.Original.TotalYearsRemaining) + " years left"),
		components.NewMetricCard("Modified", cmp.Modified.AdjustedLifeExpectancy).
			WithDelta(cmp.Difference).
			WithDescription(calculation.FormatYears(cmp.Modified.TotalYearsRemaining) + " years left"),
	}, 2))
	b.WriteString("\n\n")

	b.WriteString(tuistyles.TableHeaderStyle.Render("Changed factors"))
	b.WriteString("\n")
	if len(cmp.ChangedFactors) == 0 {
		b.WriteString(tuistyles.SubtitleStyle.Render("No factors changed yet. Edit lifestyle factors to compare."))
		b.WriteString("\n")
	}
	for _, f := range cmp.ChangedFactors {
		delta := cmp.Modified.Impact(f).Sub(cmp.Original.Impact(f))
		b.WriteString(fmt.Sprintf("• %s: %s %s\n",
			calculation.FactorName(f),
			calculation.ChoiceLabel(f, m.modified.Choice(f)),
			tuistyles.Signed(delta)))
	}
	b.WriteString("\n")

	chart := components.NewTimelineChart("Survival timeline",
		compare.Timeline(*cmp, compare.DefaultTimelineStep, compare.DefaultTimelineSpan))
	b.WriteString(lipgloss.NewStyle().MarginLeft(1).Render(chart.Render()))
	return b.String()
}
