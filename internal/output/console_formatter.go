package output

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/rgehrsitz/lifex/internal/calculation"
	"github.com/rgehrsitz/lifex/internal/domain"
	"github.com/shopspring/decimal"
)

// ConsoleFormatter renders the full breakdown: headline numbers, per-factor
// impacts with bars, and ranked suggestions.
type ConsoleFormatter struct {
	// Color enables lipgloss styling of signed values
	Color bool
}

func (c ConsoleFormatter) Name() string { return "console" }

const barWidth = 20

// barScale is the impact that fills a whole bar
var barScale = decimal.NewFromInt(10)

// colorRenderer always emits ANSI 256-color sequences. The formatter returns
// bytes rather than writing to a terminal, so the caller decides on color.
var colorRenderer = func() *lipgloss.Renderer {
	r := lipgloss.NewRenderer(io.Discard)
	r.SetColorProfile(termenv.ANSI256)
	return r
}()

var (
	positiveStyle = colorRenderer.NewStyle().Foreground(lipgloss.Color("42"))
	negativeStyle = colorRenderer.NewStyle().Foreground(lipgloss.Color("196"))
	headingStyle  = colorRenderer.NewStyle().Bold(true)
)

func (c ConsoleFormatter) Format(report *Report) ([]byte, error) {
	var buf bytes.Buffer
	r := report.Result

	fmt.Fprintln(&buf, "=================================================================================")
	fmt.Fprintln(&buf, c.heading("LIFE EXPECTANCY ESTIMATE"))
	fmt.Fprintln(&buf, "=================================================================================")
	fmt.Fprintf(&buf, "Profile: %s (age %d, %s)\n", report.DisplayName(), report.Profile.Age, report.Profile.Sex)
	fmt.Fprintln(&buf)

	fmt.Fprintf(&buf, "Base Life Expectancy:      %s years\n", calculation.FormatYears(r.BaseLifeExpectancy))
	fmt.Fprintf(&buf, "Lifestyle Adjustment:      %s years\n", c.signed(r.YearsGainedLost))
	fmt.Fprintf(&buf, "Adjusted Life Expectancy:  %s years\n", calculation.FormatYears(r.AdjustedLifeExpectancy))
	fmt.Fprintf(&buf, "Estimated Years Remaining: %s years\n", calculation.FormatYears(r.TotalYearsRemaining))
	fmt.Fprintf(&buf, "%s\n", calculation.Summary(r))
	fmt.Fprintln(&buf)

	fmt.Fprintln(&buf, c.heading("FACTOR IMPACTS"))
	fmt.Fprintln(&buf, strings.Repeat("-", 81))
	for _, f := range domain.Factors {
		years := r.Impact(f)
		fmt.Fprintf(&buf, "%-20s %-24s %8s  %s\n",
			calculation.FactorName(f),
			calculation.ChoiceLabel(f, report.Profile.Choice(f)),
			c.signed(years),
			impactBar(years))
	}
	fmt.Fprintln(&buf)

	fmt.Fprintln(&buf, c.heading("SUGGESTIONS"))
	fmt.Fprintln(&buf, strings.Repeat("-", 81))
	if len(report.Suggestions) == 0 {
		fmt.Fprintln(&buf, "Every factor is already at its best choice.")
	}
	for i, s := range report.Suggestions {
		fmt.Fprintf(&buf, "%d. %s: %s -> %s (%s years)\n", i+1,
			calculation.FactorName(s.Factor),
			calculation.ChoiceLabel(s.Factor, s.CurrentChoice),
			calculation.ChoiceLabel(s.Factor, s.BestChoice),
			c.signed(s.PotentialImprovement))
	}
	fmt.Fprintln(&buf)

	fmt.Fprintln(&buf, "ASSUMPTIONS:")
	for _, a := range DefaultAssumptions {
		fmt.Fprintf(&buf, "  • %s\n", a)
	}

	return buf.Bytes(), nil
}

func (c ConsoleFormatter) heading(s string) string {
	if !c.Color {
		return s
	}
	return headingStyle.Render(s)
}

func (c ConsoleFormatter) signed(d decimal.Decimal) string {
	s := calculation.FormatSignedYears(d)
	if !c.Color {
		return s
	}
	switch calculation.ImpactTone(d) {
	case calculation.TonePositive:
		return positiveStyle.Render(s)
	case calculation.ToneNegative:
		return negativeStyle.Render(s)
	}
	return s
}

// impactBar draws a bar proportional to |years|, capped at barWidth cells.
// Gains use solid blocks and losses use shaded blocks.
func impactBar(years decimal.Decimal) string {
	cells := int(years.Abs().Div(barScale).Mul(decimal.NewFromInt(barWidth)).Round(0).IntPart())
	if cells > barWidth {
		cells = barWidth
	}
	if cells == 0 {
		return ""
	}
	if years.IsNegative() {
		return strings.Repeat("░", cells)
	}
	return strings.Repeat("█", cells)
}

// ConsoleLiteFormatter provides a concise console style summary via the formatter interface.
type ConsoleLiteFormatter struct{}

func (c ConsoleLiteFormatter) Name() string { return "console-lite" }

func (c ConsoleLiteFormatter) Format(report *Report) ([]byte, error) {
	var buf bytes.Buffer
	r := report.Result
	fmt.Fprintf(&buf, "%s: %s years (base %s, %s), %s remaining\n",
		report.DisplayName(),
		calculation.FormatYears(r.AdjustedLifeExpectancy),
		calculation.FormatYears(r.BaseLifeExpectancy),
		calculation.FormatSignedYears(r.YearsGainedLost),
		calculation.FormatYears(r.TotalYearsRemaining))
	if len(report.Suggestions) > 0 {
		s := report.Suggestions[0]
		fmt.Fprintf(&buf, "Top suggestion: %s -> %s (%s)\n",
			calculation.FactorName(s.Factor),
			calculation.ChoiceLabel(s.Factor, s.BestChoice),
			calculation.FormatSignedYears(s.PotentialImprovement))
	}
	return buf.Bytes(), nil
}
