package compare

import (
	"encoding/csv"
	"strconv"
	"strings"

	"github.com/rgehrsitz/lifex/internal/domain"
)

// CSVFormatter formats comparison results as CSV
type CSVFormatter struct{}

// Format generates CSV output for comparison results
func (cf *CSVFormatter) Format(compSet *ComparisonSet) (string, error) {
	var sb strings.Builder
	writer := csv.NewWriter(&sb)

	header := []string{
		"Scenario",
		"Type",
		"Age",
		"Sex",
		"Base Life Expectancy",
		"Adjusted Life Expectancy",
		"Years Gained/Lost",
		"Years Remaining",
		"Difference from Base",
		"Changed Factors",
	}
	if err := writer.Write(header); err != nil {
		return "", err
	}

	if err := writer.Write(cf.formatRow("current", "base", compSet.BaseProfile, compSet.BaseResult, "0.0", nil)); err != nil {
		return "", err
	}

	for _, alt := range compSet.Alternatives {
		row := cf.formatRow(alt.Name, "alternative", alt.Profile, alt.Comparison.Modified,
			alt.Comparison.Difference.StringFixed(1), alt.Comparison.ChangedFactors)
		if err := writer.Write(row); err != nil {
			return "", err
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return "", err
	}

	return sb.String(), nil
}

// formatRow formats one profile result as a CSV row
func (cf *CSVFormatter) formatRow(name, kind string, p domain.Profile, r domain.Result, diff string, changed []domain.Factor) []string {
	factors := make([]string, 0, len(changed))
	for _, f := range changed {
		factors = append(factors, string(f))
	}
	return []string{
		name,
		kind,
		strconv.Itoa(p.Age),
		string(p.Sex),
		r.BaseLifeExpectancy.StringFixed(1),
		r.AdjustedLifeExpectancy.StringFixed(1),
		r.YearsGainedLost.StringFixed(1),
		r.TotalYearsRemaining.StringFixed(1),
		diff,
		strings.Join(factors, ";"),
	}
}
