package output

import (
	"fmt"
	"io"
	"time"

	"github.com/rgehrsitz/lifex/internal/calculation"
	"github.com/rgehrsitz/lifex/internal/domain"
)

// Report bundles everything the formatters render for one profile
type Report struct {
	Name        string              `json:"name,omitempty"`
	Profile     domain.Profile      `json:"profile"`
	Result      domain.Result       `json:"result"`
	Suggestions []domain.Suggestion `json:"suggestions"`
	GeneratedAt time.Time           `json:"generatedAt"`
}

// NewReport scores the profile and ranks its suggestions. A nil engine uses
// the default impact table.
func NewReport(name string, profile domain.Profile, engine *calculation.CalculationEngine) *Report {
	if engine == nil {
		engine = calculation.NewCalculationEngine()
	}
	return &Report{
		Name:        name,
		Profile:     profile,
		Result:      engine.ComputeLifeExpectancy(profile),
		Suggestions: engine.RankSuggestions(profile),
		GeneratedAt: time.Now(),
	}
}

// DisplayName returns the report name, or a generic title when unnamed
func (r *Report) DisplayName() string {
	if r.Name != "" {
		return r.Name
	}
	return "Your Profile"
}

// GenerateReport formats the report with the named formatter and writes it to w
func GenerateReport(report *Report, format string, w io.Writer) error {
	f := GetFormatterByName(format)
	if f == nil {
		return fmt.Errorf("unsupported format: %s", format)
	}
	return WriteReport(f, report, w)
}

// WriteReport formats the report with f and writes it to w
func WriteReport(f Formatter, report *Report, w io.Writer) error {
	data, err := f.Format(report)
	if err != nil {
		return fmt.Errorf("%s formatter failed: %w", f.Name(), err)
	}
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	return nil
}
