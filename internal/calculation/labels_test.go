package calculation

import (
	"testing"

	"github.com/rgehrsitz/lifex/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestFactorName(t *testing.T) {
	assert.Equal(t, "Physical Activity", FactorName(domain.FactorPhysicalActivity))
	assert.Equal(t, "Alcohol Consumption", FactorName(domain.FactorAlcohol))
	assert.Equal(t, "height", FactorName("height"))
}

func TestChoiceLabel(t *testing.T) {
	assert.Equal(t, "Never Smoked", ChoiceLabel(domain.FactorSmoking, domain.SmokingNever))
	assert.Equal(t, "Optimal (7-8 hrs)", ChoiceLabel(domain.FactorSleep, domain.SleepOptimal))
	assert.Equal(t, "cigars", ChoiceLabel(domain.FactorSmoking, "cigars"))
	assert.Equal(t, "tall", ChoiceLabel("height", "tall"))
}

func TestEveryChoiceHasLabel(t *testing.T) {
	for _, f := range DefaultTable.Factors() {
		assert.NotEqual(t, string(f), FactorName(f))
		for _, ci := range DefaultTable.Choices(f) {
			_, ok := choiceLabels[f][ci.Choice]
			assert.True(t, ok, "missing label for %s/%s", f, ci.Choice)
		}
	}
}

func TestFactorOptions(t *testing.T) {
	options := FactorOptions(domain.FactorAlcohol)
	assert.Equal(t, []Option{
		{Value: domain.AlcoholNone, Label: "None"},
		{Value: domain.AlcoholModerate, Label: "Moderate"},
		{Value: domain.AlcoholHeavy, Label: "Heavy"},
	}, options)

	assert.Empty(t, FactorOptions("height"))
}

func TestFactorDescription(t *testing.T) {
	assert.Equal(t, "Impact of sleep habits on life expectancy", FactorDescription(domain.FactorSleep))
	assert.Equal(t, "Impact on life expectancy", FactorDescription("height"))
}

func TestImpactToneAndFormatting(t *testing.T) {
	assert.Equal(t, TonePositive, ImpactTone(decimal.NewFromFloat(2.5)))
	assert.Equal(t, ToneNegative, ImpactTone(decimal.NewFromFloat(-0.5)))
	assert.Equal(t, ToneNeutral, ImpactTone(decimal.Zero))

	assert.Equal(t, "81.1", FormatYears(decimal.NewFromFloat(81.1)))
	assert.Equal(t, "5.0", FormatYears(decimal.NewFromInt(5)))
	assert.Equal(t, "+2.5", FormatSignedYears(decimal.NewFromFloat(2.5)))
	assert.Equal(t, "-10.0", FormatSignedYears(decimal.NewFromInt(-10)))
	assert.Equal(t, "0.0", FormatSignedYears(decimal.Zero))
}

func TestSummary(t *testing.T) {
	assert.Equal(t, "+5.0 years from lifestyle factors", Summary(ComputeLifeExpectancy(domain.DefaultProfile())))

	smoker := baselineProfile(40, domain.SexMale)
	smoker.Smoking = domain.SmokingCurrent
	assert.Equal(t, "-10.0 years from lifestyle factors", Summary(ComputeLifeExpectancy(smoker)))

	assert.Equal(t, "Baseline expectancy for your profile", Summary(ComputeLifeExpectancy(baselineProfile(40, domain.SexMale))))
}

func TestFactorsByMagnitude(t *testing.T) {
	result := ComputeLifeExpectancy(domain.DefaultProfile())
	ordered := result.FactorsByMagnitude()

	assert.Len(t, ordered, len(domain.Factors))
	assert.Equal(t, domain.FactorPhysicalActivity, ordered[0].Factor)
	assert.Equal(t, domain.FactorSocialConnections, ordered[1].Factor)
	assert.Equal(t, domain.FactorEducation, ordered[2].Factor)
	assert.Equal(t, domain.FactorAlcohol, ordered[3].Factor)
	// zero impacts keep canonical order
	assert.Equal(t, domain.FactorSmoking, ordered[4].Factor)
	assert.Equal(t, domain.FactorDiet, ordered[5].Factor)
}
