package output

import (
	"bytes"
	_ "embed"
	"html/template"

	"github.com/rgehrsitz/lifex/internal/calculation"
	"github.com/rgehrsitz/lifex/internal/domain"
	"github.com/shopspring/decimal"
)

// HTMLFormatter produces a standalone HTML report.
type HTMLFormatter struct{}

func (h HTMLFormatter) Name() string { return "html" }

//go:embed templates/report.html.tmpl
var htmlTemplateSource string

var htmlTemplate = template.Must(template.New("report").Funcs(template.FuncMap{
	"years":  calculation.FormatYears,
	"signed": calculation.FormatSignedYears,
	"tone":   func(d decimal.Decimal) string { return string(calculation.ImpactTone(d)) },
}).Parse(htmlTemplateSource))

type factorRow struct {
	Name        string
	Description string
	Label       string
	Years       decimal.Decimal
}

type suggestionRow struct {
	Name        string
	Current     string
	Best        string
	Improvement decimal.Decimal
}

func (h HTMLFormatter) Format(report *Report) ([]byte, error) {
	rows := make([]factorRow, 0, len(domain.Factors))
	for _, f := range domain.Factors {
		rows = append(rows, factorRow{
			Name:        calculation.FactorName(f),
			Description: calculation.FactorDescription(f),
			Label:       calculation.ChoiceLabel(f, report.Profile.Choice(f)),
			Years:       report.Result.Impact(f),
		})
	}

	suggestions := make([]suggestionRow, 0, len(report.Suggestions))
	for _, s := range report.Suggestions {
		suggestions = append(suggestions, suggestionRow{
			Name:        calculation.FactorName(s.Factor),
			Current:     calculation.ChoiceLabel(s.Factor, s.CurrentChoice),
			Best:        calculation.ChoiceLabel(s.Factor, s.BestChoice),
			Improvement: s.PotentialImprovement,
		})
	}

	data := struct {
		*Report
		Summary        string
		Rows           []factorRow
		SuggestionRows []suggestionRow
		Assumptions    []string
	}{report, calculation.Summary(report.Result), rows, suggestions, DefaultAssumptions}

	var buf bytes.Buffer
	if err := htmlTemplate.Execute(&buf, data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
