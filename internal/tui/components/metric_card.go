package components

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"

	"github.com/rgehrsitz/lifex/internal/calculation"
	"github.com/rgehrsitz/lifex/internal/tui/tuistyles"
)

// MetricCard displays a single figure in years with an optional delta
type MetricCard struct {
	Label       string
	Value       decimal.Decimal
	Delta       *decimal.Decimal
	Description string
	Width       int
}

// NewMetricCard creates a new metric card
func NewMetricCard(label string, value decimal.Decimal) *MetricCard {
	return &MetricCard{
		Label: label,
		Value: value,
		Width: 24,
	}
}

// WithDelta adds a trend line for the change behind the value
func (m *MetricCard) WithDelta(d decimal.Decimal) *MetricCard {
	m.Delta = &d
	return m
}

// WithDescription adds a description/subtitle
func (m *MetricCard) WithDescription(desc string) *MetricCard {
	m.Description = desc
	return m
}

// WithWidth sets the card width
func (m *MetricCard) WithWidth(width int) *MetricCard {
	m.Width = width
	return m
}

func (m *MetricCard) trend() string {
	if m.Delta == nil {
		return ""
	}
	return tuistyles.ToneStyle(*m.Delta).Render(
		fmt.Sprintf("%s %s", tuistyles.TrendIndicator(*m.Delta), calculation.FormatSignedYears(*m.Delta)))
}

// Render returns the bordered card
func (m *MetricCard) Render() string {
	content := tuistyles.MetricLabelStyle.Render(m.Label) + "\n" +
		tuistyles.MetricValueStyle.Render(calculation.FormatYears(m.Value)+" years")
	if t := m.trend(); t != "" {
		content += "\n" + t
	}
	if m.Description != "" {
		content += "\n" + tuistyles.SubtitleStyle.Render(m.Description)
	}

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(tuistyles.ColorBorder).
		Padding(0, 1).
		Width(m.Width).
		Render(content)
}

// RenderCompact returns an inline version without border
func (m *MetricCard) RenderCompact() string {
	out := tuistyles.MetricLabelStyle.Render(m.Label+":") + " " +
		tuistyles.MetricValueStyle.Render(calculation.FormatYears(m.Value))
	if t := m.trend(); t != "" {
		out += " " + t
	}
	return out
}

// MetricGrid renders cards in rows of the given column count
func MetricGrid(cards []*MetricCard, columns int) string {
	if len(cards) == 0 {
		return ""
	}
	if columns <= 0 {
		columns = len(cards)
	}

	rows := []string{}
	current := []string{}
	for i, card := range cards {
		current = append(current, card.Render())
		if (i+1)%columns == 0 || i == len(cards)-1 {
			rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, current...))
			current = []string{}
		}
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}
