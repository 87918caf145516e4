package output

import (
	"bytes"
	"encoding/csv"

	"github.com/rgehrsitz/lifex/internal/calculation"
	"github.com/rgehrsitz/lifex/internal/domain"
)

// CSVFormatter writes one row per factor followed by the totals, so the
// factor rows sum to the adjustment row.
type CSVFormatter struct{}

func (c CSVFormatter) Name() string { return "csv" }

func (c CSVFormatter) Format(report *Report) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)

	if err := w.Write([]string{"Factor", "Choice", "Label", "Years", "Best Choice", "Potential Improvement"}); err != nil {
		return nil, err
	}

	potential := make(map[domain.Factor]domain.Suggestion, len(report.Suggestions))
	for _, s := range report.Suggestions {
		potential[s.Factor] = s
	}

	for _, f := range domain.Factors {
		choice := report.Profile.Choice(f)
		best, improvement := string(choice), "0.0"
		if s, ok := potential[f]; ok {
			best, improvement = string(s.BestChoice), s.PotentialImprovement.StringFixed(1)
		}
		row := []string{
			string(f),
			string(choice),
			calculation.ChoiceLabel(f, choice),
			report.Result.Impact(f).StringFixed(1),
			best,
			improvement,
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}

	r := report.Result
	totals := [][]string{
		{"base", string(report.Profile.Sex), "", r.BaseLifeExpectancy.StringFixed(1), "", ""},
		{"adjustment", "", "", r.YearsGainedLost.StringFixed(1), "", ""},
		{"adjusted", "", "", r.AdjustedLifeExpectancy.StringFixed(1), "", ""},
		{"remaining", "", "", r.TotalYearsRemaining.StringFixed(1), "", ""},
	}
	if err := w.WriteAll(totals); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
