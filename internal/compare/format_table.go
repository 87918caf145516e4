package compare

import (
	"fmt"
	"strings"

	"github.com/rgehrsitz/lifex/internal/calculation"
)

// TableFormatter formats comparison results as a console table
type TableFormatter struct{}

// Format generates a formatted table comparing the base profile with each alternative
func (tf *TableFormatter) Format(compSet *ComparisonSet) string {
	var sb strings.Builder

	sb.WriteString("LIFE EXPECTANCY COMPARISON\n")
	sb.WriteString(strings.Repeat("=", 80) + "\n")
	if compSet.ProfilePath != "" {
		sb.WriteString(fmt.Sprintf("Profile: %s\n", compSet.ProfilePath))
	}
	sb.WriteString(fmt.Sprintf("Age %d, %s\n", compSet.BaseProfile.Age, compSet.BaseProfile.Sex))
	sb.WriteString("\n")

	nameWidth := 25
	numWidth := 15

	sb.WriteString(fmt.Sprintf("%-*s %*s %*s %*s\n",
		nameWidth, "Scenario",
		numWidth, "Expectancy",
		numWidth, "Years Left",
		numWidth, "Difference"))
	sb.WriteString(strings.Repeat("-", 80) + "\n")

	base := compSet.BaseResult
	sb.WriteString(fmt.Sprintf("%-*s %*s %*s %*s\n",
		nameWidth, "current (base)",
		numWidth, calculation.FormatYears(base.AdjustedLifeExpectancy),
		numWidth, calculation.FormatYears(base.TotalYearsRemaining),
		numWidth, "-"))

	if len(compSet.Alternatives) > 0 {
		sb.WriteString(strings.Repeat("-", 80) + "\n")
		for _, alt := range compSet.Alternatives {
			modified := alt.Comparison.Modified
			sb.WriteString(fmt.Sprintf("%-*s %*s %*s %*s\n",
				nameWidth, tf.truncate(alt.Name, nameWidth),
				numWidth, calculation.FormatYears(modified.AdjustedLifeExpectancy),
				numWidth, calculation.FormatYears(modified.TotalYearsRemaining),
				numWidth, calculation.FormatSignedYears(alt.Comparison.Difference)))
		}
	}

	sb.WriteString(strings.Repeat("=", 80) + "\n")

	if len(compSet.Alternatives) > 0 {
		sb.WriteString("\nCHANGES FROM BASE\n")
		sb.WriteString(strings.Repeat("-", 80) + "\n")

		for _, alt := range compSet.Alternatives {
			sb.WriteString(fmt.Sprintf("\n%s: %s\n", alt.Name, Headline(alt.Comparison.Difference)))
			if len(alt.Comparison.ChangedFactors) == 0 {
				sb.WriteString("  (no factor changes)\n")
				continue
			}
			for _, f := range alt.Comparison.ChangedFactors {
				delta := alt.Comparison.Modified.Impact(f).Sub(alt.Comparison.Original.Impact(f))
				sb.WriteString(fmt.Sprintf("  %-20s %s -> %s (%s)\n",
					calculation.FactorName(f),
					calculation.ChoiceLabel(f, compSet.BaseProfile.Choice(f)),
					calculation.ChoiceLabel(f, alt.Profile.Choice(f)),
					calculation.FormatSignedYears(delta)))
			}
		}
		sb.WriteString("\n")
	}

	if len(compSet.Recommendations) > 0 {
		sb.WriteString("\nRECOMMENDATIONS\n")
		sb.WriteString(strings.Repeat("-", 80) + "\n")
		for _, rec := range compSet.Recommendations {
			sb.WriteString(fmt.Sprintf("• %s\n", rec))
		}
		sb.WriteString("\n")
	}

	return sb.String()
}

// truncate truncates a string to maxLen
func (tf *TableFormatter) truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}

// FormatCompact creates a compact single-line summary for each alternative
func (tf *TableFormatter) FormatCompact(compSet *ComparisonSet) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Base: %s | ", calculation.FormatYears(compSet.BaseResult.AdjustedLifeExpectancy)))

	for i, alt := range compSet.Alternatives {
		if i > 0 {
			sb.WriteString(" | ")
		}
		change := "="
		if !alt.Comparison.Difference.IsZero() {
			change = calculation.FormatSignedYears(alt.Comparison.Difference)
		}
		sb.WriteString(fmt.Sprintf("%s: %s", alt.Name, change))
	}

	return sb.String()
}
