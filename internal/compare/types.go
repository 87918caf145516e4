package compare

import (
	"fmt"
	"sort"

	"github.com/rgehrsitz/lifex/internal/calculation"
	"github.com/rgehrsitz/lifex/internal/domain"
	"github.com/shopspring/decimal"
)

// Alternative is one modified profile compared against the base
type Alternative struct {
	Name        string                  `json:"name"`
	Description string                  `json:"description"`
	Profile     domain.Profile          `json:"profile"`
	Comparison  domain.ComparisonResult `json:"comparison"`
}

// ComparisonSet represents a base profile and the alternatives compared against it
type ComparisonSet struct {
	BaseProfile     domain.Profile `json:"baseProfile"`
	BaseResult      domain.Result  `json:"baseResult"`
	Alternatives    []Alternative  `json:"alternatives"`
	Recommendations []string       `json:"recommendations"`
	ProfilePath     string         `json:"profilePath,omitempty"`
}

// ChangedFactors lists the factors whose choice differs between a and b, in
// canonical factor order. Age and sex are never reported.
func ChangedFactors(a, b domain.Profile) []domain.Factor {
	changed := []domain.Factor{}
	for _, f := range domain.Factors {
		if a.Choice(f) != b.Choice(f) {
			changed = append(changed, f)
		}
	}
	return changed
}

// Rebase re-targets a comparison profile after the baseline was edited: the
// comparison keeps its own factor choices and takes age and sex from baseline.
func Rebase(baseline, comparison domain.Profile) domain.Profile {
	rebased := baseline
	for _, f := range ChangedFactors(baseline, comparison) {
		rebased = rebased.With(f, comparison.Choice(f))
	}
	return rebased
}

// Headline summarizes the direction of a difference
func Headline(difference decimal.Decimal) string {
	switch calculation.ImpactTone(difference) {
	case calculation.TonePositive:
		return "Positive Impact"
	case calculation.ToneNegative:
		return "Negative Impact"
	default:
		return "No Change"
	}
}

// TimelinePoint is one sample of the survival chart for a comparison
type TimelinePoint struct {
	Age      decimal.Decimal `json:"age"`
	Original bool            `json:"original"`
	Modified bool            `json:"modified"`
	Label    string          `json:"label"`
}

const (
	DefaultTimelineStep = 5
	DefaultTimelineSpan = 85
)

var endpointThreshold = decimal.NewFromFloat(0.1)

// Timeline samples ages from the current age every step years up to span years
// ahead, stopping once both profiles are past their adjusted expectancy. Exact
// end points are appended for each profile and the points are sorted by age.
func Timeline(cmp domain.ComparisonResult, step, span int) []TimelinePoint {
	if step <= 0 {
		step = DefaultTimelineStep
	}
	if span < 0 {
		span = DefaultTimelineSpan
	}

	currentAge := decimal.NewFromInt(int64(cmp.Original.CurrentAge))
	original := cmp.Original.AdjustedLifeExpectancy
	modified := cmp.Modified.AdjustedLifeExpectancy

	points := []TimelinePoint{}
	for i := 0; i <= span; i += step {
		age := decimal.NewFromInt(int64(cmp.Original.CurrentAge + i))
		if age.GreaterThan(original) && age.GreaterThan(modified) {
			break
		}
		points = append(points, TimelinePoint{
			Age:      age,
			Original: age.LessThanOrEqual(original),
			Modified: age.LessThanOrEqual(modified),
			Label:    fmt.Sprintf("Age %s", age),
		})
	}

	if original.GreaterThan(currentAge) {
		points = append(points, TimelinePoint{
			Age:      original,
			Original: false,
			Modified: modified.GreaterThan(original),
			Label:    "Original End: " + calculation.FormatYears(original),
		})
	}

	if modified.GreaterThan(currentAge) && modified.Sub(original).Abs().GreaterThan(endpointThreshold) {
		points = append(points, TimelinePoint{
			Age:   modified,
			Label: "Modified End: " + calculation.FormatYears(modified),
		})
	}

	sort.SliceStable(points, func(i, j int) bool {
		return points[i].Age.LessThan(points[j].Age)
	})
	return points
}

// GenerateRecommendations creates recommendations based on comparison results
func GenerateRecommendations(compSet *ComparisonSet, suggestions []domain.Suggestion) []string {
	recommendations := []string{}

	var best *Alternative
	for i := range compSet.Alternatives {
		alt := &compSet.Alternatives[i]
		if best == nil || alt.Comparison.Difference.GreaterThan(best.Comparison.Difference) {
			best = alt
		}
	}

	if best != nil && best.Comparison.Difference.IsPositive() {
		recommendations = append(recommendations,
			fmt.Sprintf("Largest gain: %s adds %s years", best.Name,
				calculation.FormatSignedYears(best.Comparison.Difference)))
	}

	for _, alt := range compSet.Alternatives {
		if alt.Comparison.Difference.IsNegative() {
			recommendations = append(recommendations,
				fmt.Sprintf("Avoid: %s costs %s years", alt.Name,
					calculation.FormatYears(alt.Comparison.Difference.Abs())))
		}
	}

	if len(suggestions) > 0 {
		s := suggestions[0]
		recommendations = append(recommendations,
			fmt.Sprintf("Biggest single change: %s from %s to %s (%s years)",
				calculation.FactorName(s.Factor),
				calculation.ChoiceLabel(s.Factor, s.CurrentChoice),
				calculation.ChoiceLabel(s.Factor, s.BestChoice),
				calculation.FormatSignedYears(s.PotentialImprovement)))
	}

	return recommendations
}
