package compare

import (
	"testing"

	"github.com/rgehrsitz/lifex/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestCompareProfiles_Identical(t *testing.T) {
	p := domain.DefaultProfile()

	cmp := CompareProfiles(p, p)

	assert.True(t, cmp.Difference.IsZero())
	assert.NotNil(t, cmp.ChangedFactors)
	assert.Empty(t, cmp.ChangedFactors)
	assert.True(t, cmp.Original.AdjustedLifeExpectancy.Equal(dec("81.1")))
}

func TestCompareProfiles_Symmetry(t *testing.T) {
	a := domain.DefaultProfile()
	b := a.With(domain.FactorSmoking, domain.SmokingCurrent).With(domain.FactorDiet, domain.DietExcellent)

	ab := CompareProfiles(a, b)
	ba := CompareProfiles(b, a)

	assert.True(t, ab.Difference.Equal(dec("-5")), "got %s", ab.Difference)
	assert.True(t, ab.Difference.Equal(ba.Difference.Neg()))
	assert.Equal(t, []domain.Factor{domain.FactorSmoking, domain.FactorDiet}, ab.ChangedFactors)
	assert.Equal(t, ab.ChangedFactors, ba.ChangedFactors)
}

func TestCompareProfiles_DifferenceIsModifiedMinusOriginal(t *testing.T) {
	a := domain.DefaultProfile()
	b := a
	b.Age = 60
	b.Sex = domain.SexFemale

	cmp := CompareProfiles(a, b)

	assert.True(t, cmp.Difference.Equal(cmp.Modified.AdjustedLifeExpectancy.Sub(cmp.Original.AdjustedLifeExpectancy)))
	assert.True(t, cmp.Difference.Equal(dec("5")))
	assert.Empty(t, cmp.ChangedFactors, "age and sex are not factors")
}

func TestChangedFactors_TableOrder(t *testing.T) {
	a := domain.DefaultProfile()
	b := a.With(domain.FactorEducation, domain.EducationAdvanced).
		With(domain.FactorSmoking, domain.SmokingFormer).
		With(domain.FactorSleep, domain.SleepOptimal)

	assert.Equal(t, []domain.Factor{domain.FactorSmoking, domain.FactorSleep, domain.FactorEducation}, ChangedFactors(a, b))
}

func TestRebase(t *testing.T) {
	baseline := domain.DefaultProfile()
	comparison := baseline.With(domain.FactorDiet, domain.DietExcellent)

	edited := baseline
	edited.Age = 50
	edited.Sex = domain.SexFemale
	edited = edited.With(domain.FactorSmoking, domain.SmokingCurrent)

	rebased := Rebase(edited, comparison)

	assert.Equal(t, 50, rebased.Age)
	assert.Equal(t, domain.SexFemale, rebased.Sex)
	assert.Equal(t, domain.DietExcellent, rebased.Diet)
	assert.Equal(t, domain.SmokingNever, rebased.Smoking, "comparison keeps its own choices")
	assert.Equal(t, comparison.Choices(), rebased.Choices())
}

func TestHeadline(t *testing.T) {
	assert.Equal(t, "Positive Impact", Headline(dec("0.5")))
	assert.Equal(t, "Negative Impact", Headline(dec("-2")))
	assert.Equal(t, "No Change", Headline(decimal.Zero))
}

func TestTimeline(t *testing.T) {
	base := domain.DefaultProfile()
	cmp := CompareProfiles(base, base.With(domain.FactorDiet, domain.DietExcellent))

	points := Timeline(cmp, DefaultTimelineStep, DefaultTimelineSpan)

	require.Len(t, points, 14)
	assert.True(t, points[0].Age.Equal(dec("30")))
	assert.True(t, points[0].Original)
	assert.True(t, points[0].Modified)

	// 80 is still within the original expectancy of 81.1
	assert.True(t, points[10].Age.Equal(dec("80")))
	assert.True(t, points[10].Original)

	assert.True(t, points[11].Age.Equal(dec("81.1")))
	assert.Equal(t, "Original End: 81.1", points[11].Label)
	assert.False(t, points[11].Original)
	assert.True(t, points[11].Modified)

	assert.True(t, points[12].Age.Equal(dec("85")))
	assert.False(t, points[12].Original)
	assert.True(t, points[12].Modified)

	last := points[13]
	assert.True(t, last.Age.Equal(dec("86.1")))
	assert.Equal(t, "Modified End: 86.1", last.Label)
	assert.False(t, last.Original)
	assert.False(t, last.Modified)

	for i := 1; i < len(points); i++ {
		assert.True(t, points[i-1].Age.LessThanOrEqual(points[i].Age), "points sorted by age")
	}
}

func TestTimeline_IdenticalProfilesHaveOneEndpoint(t *testing.T) {
	base := domain.DefaultProfile()

	points := Timeline(CompareProfiles(base, base), 0, -1)

	require.Len(t, points, 12)
	assert.Equal(t, "Original End: 81.1", points[len(points)-1].Label)
}

func TestTimeline_PastExpectancy(t *testing.T) {
	old := domain.DefaultProfile()
	old.Age = 95

	points := Timeline(CompareProfiles(old, old), DefaultTimelineStep, DefaultTimelineSpan)

	assert.Empty(t, points)
}

func TestGenerateRecommendations(t *testing.T) {
	base := domain.DefaultProfile()
	better := base.With(domain.FactorDiet, domain.DietExcellent)
	worse := base.With(domain.FactorSmoking, domain.SmokingCurrent)

	set := &ComparisonSet{
		BaseProfile: base,
		Alternatives: []Alternative{
			{Name: "eat_better", Profile: better, Comparison: CompareProfiles(base, better)},
			{Name: "start_smoking", Profile: worse, Comparison: CompareProfiles(base, worse)},
		},
	}

	recs := GenerateRecommendations(set, []domain.Suggestion{{
		Factor:               domain.FactorDiet,
		CurrentChoice:        domain.DietAverage,
		BestChoice:           domain.DietExcellent,
		PotentialImprovement: dec("5"),
	}})

	require.Len(t, recs, 3)
	assert.Equal(t, "Largest gain: eat_better adds +5.0 years", recs[0])
	assert.Equal(t, "Avoid: start_smoking costs 10.0 years", recs[1])
	assert.Equal(t, "Biggest single change: Diet from Average to Excellent (+5.0 years)", recs[2])

	assert.Empty(t, GenerateRecommendations(&ComparisonSet{}, nil))
}
