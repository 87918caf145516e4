package compare

import (
	"fmt"
	"strings"

	"github.com/rgehrsitz/lifex/internal/calculation"
	"github.com/rgehrsitz/lifex/internal/domain"
	"github.com/rgehrsitz/lifex/internal/transform"
)

// CompareEngine orchestrates profile comparison
type CompareEngine struct {
	CalcEngine       *calculation.CalculationEngine
	TemplateRegistry *transform.TemplateRegistry
}

// NewCompareEngine creates a new comparison engine
func NewCompareEngine(calcEngine *calculation.CalculationEngine) *CompareEngine {
	if calcEngine == nil {
		calcEngine = calculation.NewCalculationEngine()
	}
	return &CompareEngine{
		CalcEngine:       calcEngine,
		TemplateRegistry: transform.CreateBuiltInTemplates(calcEngine.Table),
	}
}

// CompareProfiles scores both profiles and reports the change in adjusted
// life expectancy (modified minus original).
func (ce *CompareEngine) CompareProfiles(original, modified domain.Profile) domain.ComparisonResult {
	originalResult := ce.CalcEngine.ComputeLifeExpectancy(original)
	modifiedResult := ce.CalcEngine.ComputeLifeExpectancy(modified)

	return domain.ComparisonResult{
		Original:       originalResult,
		Modified:       modifiedResult,
		Difference:     modifiedResult.AdjustedLifeExpectancy.Sub(originalResult.AdjustedLifeExpectancy),
		ChangedFactors: ChangedFactors(original, modified),
	}
}

// CompareOptions configures comparison behavior
type CompareOptions struct {
	Templates []string             // template names applied to the base, one alternative each
	Overrides domain.Modifications // ad hoc changes, compared as the "custom" alternative
	// Transforms are applied in order and compared as the "transforms" alternative
	Transforms []transform.ProfileTransform
}

// Compare runs the base profile against every requested template and the
// optional overrides
func (ce *CompareEngine) Compare(base domain.Profile, options CompareOptions) (*ComparisonSet, error) {
	alternatives := []Alternative{}

	for _, templateName := range options.Templates {
		template, ok := ce.TemplateRegistry.Get(templateName)
		if !ok {
			return nil, fmt.Errorf("template %s not found", templateName)
		}

		modified, err := transform.ApplyTemplate(base, template)
		if err != nil {
			return nil, fmt.Errorf("failed to apply template %s: %w", templateName, err)
		}

		alternatives = append(alternatives, Alternative{
			Name:        template.Name,
			Description: template.Description,
			Profile:     modified,
			Comparison:  ce.CompareProfiles(base, modified),
		})
	}

	if !options.Overrides.IsZero() {
		modified := base.Apply(options.Overrides)
		alternatives = append(alternatives, Alternative{
			Name:        "custom",
			Description: "Command line overrides",
			Profile:     modified,
			Comparison:  ce.CompareProfiles(base, modified),
		})
	}

	if len(options.Transforms) > 0 {
		modified, err := transform.ApplyTransforms(base, options.Transforms)
		if err != nil {
			return nil, fmt.Errorf("failed to apply transforms: %w", err)
		}
		descriptions := make([]string, 0, len(options.Transforms))
		for _, t := range options.Transforms {
			descriptions = append(descriptions, t.Description())
		}
		alternatives = append(alternatives, Alternative{
			Name:        "transforms",
			Description: strings.Join(descriptions, "; "),
			Profile:     modified,
			Comparison:  ce.CompareProfiles(base, modified),
		})
	}

	if len(alternatives) == 0 {
		return nil, fmt.Errorf("nothing to compare: specify at least one template, override or transform")
	}

	compSet := &ComparisonSet{
		BaseProfile:  base,
		BaseResult:   ce.CalcEngine.ComputeLifeExpectancy(base),
		Alternatives: alternatives,
	}
	compSet.Recommendations = GenerateRecommendations(compSet, ce.CalcEngine.RankSuggestions(base))

	return compSet, nil
}

var defaultCompareEngine = NewCompareEngine(nil)

// CompareProfiles compares two profiles against the default impact table
func CompareProfiles(original, modified domain.Profile) domain.ComparisonResult {
	return defaultCompareEngine.CompareProfiles(original, modified)
}
