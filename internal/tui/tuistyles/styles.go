package tuistyles

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"

	"github.com/rgehrsitz/lifex/internal/calculation"
)

// Color palette
var (
	ColorPrimary   = lipgloss.Color("#00A6A6")
	ColorSecondary = lipgloss.Color("#4C6EF5")
	ColorAccent    = lipgloss.Color("#F59F00")
	ColorSuccess   = lipgloss.Color("#2F9E44")
	ColorDanger    = lipgloss.Color("#E03131")
	ColorInfo      = lipgloss.Color("#1C7ED6")

	ColorForeground = lipgloss.Color("#E9ECEF")
	ColorMuted      = lipgloss.Color("#868E96")
	ColorBorder     = lipgloss.Color("#495057")

	ColorOriginal = lipgloss.Color("#74C0FC")
	ColorModified = lipgloss.Color("#63E6BE")
)

// Base styles
var (
	AppStyle = lipgloss.NewStyle().Padding(0, 1)

	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary)

	SubtitleStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	TabStyle = lipgloss.NewStyle().
			Foreground(ColorMuted).
			Padding(0, 1)

	ActiveTabStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorForeground).
			Background(ColorSecondary).
			Padding(0, 1)

	StatusBarStyle = lipgloss.NewStyle().
			Foreground(ColorMuted).
			Padding(0, 1)

	BannerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorAccent)

	BorderStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder).
			Padding(0, 1)

	SelectedItemStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(ColorPrimary)

	UnselectedItemStyle = lipgloss.NewStyle().
				Foreground(ColorForeground)

	MetricLabelStyle = lipgloss.NewStyle().
				Foreground(ColorMuted)

	MetricValueStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(ColorForeground)

	PositiveStyle = lipgloss.NewStyle().Foreground(ColorSuccess)
	NegativeStyle = lipgloss.NewStyle().Foreground(ColorDanger)
	NeutralStyle  = lipgloss.NewStyle().Foreground(ColorMuted)

	ErrorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorDanger)

	InfoStyle = lipgloss.NewStyle().
			Foreground(ColorInfo)

	TableHeaderStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(ColorSecondary)
)

// ToneStyle picks the style for a year delta
func ToneStyle(d decimal.Decimal) lipgloss.Style {
	switch calculation.ImpactTone(d) {
	case calculation.TonePositive:
		return PositiveStyle
	case calculation.ToneNegative:
		return NegativeStyle
	default:
		return NeutralStyle
	}
}

// TrendIndicator returns an arrow for the direction of d
func TrendIndicator(d decimal.Decimal) string {
	switch calculation.ImpactTone(d) {
	case calculation.TonePositive:
		return "↑"
	case calculation.ToneNegative:
		return "↓"
	default:
		return "→"
	}
}

// Signed renders a delta with sign and tone color
func Signed(d decimal.Decimal) string {
	return ToneStyle(d).Render(calculation.FormatSignedYears(d))
}
