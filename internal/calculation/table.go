package calculation

import (
	"github.com/rgehrsitz/lifex/internal/domain"
	"github.com/shopspring/decimal"
)

// ChoiceImpact is the year delta for one choice of a factor
type ChoiceImpact struct {
	Choice domain.Choice   `json:"choice" yaml:"choice"`
	Years  decimal.Decimal `json:"years" yaml:"years"`
}

// FactorImpacts holds a factor's choices in declaration order
type FactorImpacts struct {
	Factor  domain.Factor  `json:"factor" yaml:"factor"`
	Choices []ChoiceImpact `json:"choices" yaml:"choices"`
}

// ImpactTable is the read-only lookup table behind every estimate.
// Declaration order of factors and choices is significant: it fixes iteration
// order and breaks ties when picking a best choice.
type ImpactTable struct {
	base    map[domain.Sex]decimal.Decimal
	factors []FactorImpacts
	index   map[domain.Factor]int
}

// NewImpactTable builds a table from base expectancies and ordered factor impacts.
// Inputs are copied; the returned table is never mutated.
func NewImpactTable(base map[domain.Sex]decimal.Decimal, factors []FactorImpacts) *ImpactTable {
	t := &ImpactTable{
		base:    make(map[domain.Sex]decimal.Decimal, len(base)),
		factors: make([]FactorImpacts, 0, len(factors)),
		index:   make(map[domain.Factor]int, len(factors)),
	}
	for sex, years := range base {
		t.base[sex] = years
	}
	for _, fi := range factors {
		choices := append([]ChoiceImpact(nil), fi.Choices...)
		t.index[fi.Factor] = len(t.factors)
		t.factors = append(t.factors, FactorImpacts{Factor: fi.Factor, Choices: choices})
	}
	return t
}

func years(v float64) decimal.Decimal {
	return decimal.NewFromFloat(v)
}

// DefaultTable is the process-wide impact table. Values are domain constants.
var DefaultTable = NewImpactTable(
	map[domain.Sex]decimal.Decimal{
		domain.SexMale:   years(76.1),
		domain.SexFemale: years(81.1),
	},
	[]FactorImpacts{
		{Factor: domain.FactorSmoking, Choices: []ChoiceImpact{
			{domain.SmokingCurrent, years(-10)},
			{domain.SmokingFormer, years(-5)},
			{domain.SmokingNever, years(0)},
		}},
		{Factor: domain.FactorPhysicalActivity, Choices: []ChoiceImpact{
			{domain.ActivityHigh, years(4.5)},
			{domain.ActivityMedium, years(2.5)},
			{domain.ActivityLow, years(0)},
			{domain.ActivitySedentary, years(-3.5)},
		}},
		{Factor: domain.FactorDiet, Choices: []ChoiceImpact{
			{domain.DietExcellent, years(5)},
			{domain.DietGood, years(2.5)},
			{domain.DietAverage, years(0)},
			{domain.DietPoor, years(-2.5)},
		}},
		{Factor: domain.FactorAlcohol, Choices: []ChoiceImpact{
			{domain.AlcoholNone, years(0)},
			{domain.AlcoholModerate, years(-0.5)},
			{domain.AlcoholHeavy, years(-5)},
		}},
		{Factor: domain.FactorBMI, Choices: []ChoiceImpact{
			{domain.BMIHealthy, years(0)},
			{domain.BMIOverweight, years(-1)},
			{domain.BMIObese, years(-4)},
			{domain.BMIUnderweight, years(-2)},
		}},
		{Factor: domain.FactorSleep, Choices: []ChoiceImpact{
			{domain.SleepOptimal, years(1.5)},
			{domain.SleepAdequate, years(0)},
			{domain.SleepInsufficient, years(-2)},
			{domain.SleepExcessive, years(-1)},
		}},
		{Factor: domain.FactorStress, Choices: []ChoiceImpact{
			{domain.StressLow, years(1.5)},
			{domain.StressAverage, years(0)},
			{domain.StressHigh, years(-2.5)},
		}},
		{Factor: domain.FactorSocialConnections, Choices: []ChoiceImpact{
			{domain.SocialStrong, years(5)},
			{domain.SocialModerate, years(2)},
			{domain.SocialWeak, years(0)},
			{domain.SocialIsolated, years(-5)},
		}},
		{Factor: domain.FactorEducation, Choices: []ChoiceImpact{
			{domain.EducationAdvanced, years(2)},
			{domain.EducationCollege, years(1)},
			{domain.EducationHighSchool, years(0)},
			{domain.EducationLessThanHighSchool, years(-1)},
		}},
	},
)

// BaseLifeExpectancy returns the base years for sex; ok is false for an unknown sex
func (t *ImpactTable) BaseLifeExpectancy(sex domain.Sex) (decimal.Decimal, bool) {
	v, ok := t.base[sex]
	if !ok {
		return decimal.Zero, false
	}
	return v, true
}

// Impact looks up the delta for a factor and choice. It is total: any key
// outside the table resolves to zero with ok=false.
func (t *ImpactTable) Impact(f domain.Factor, c domain.Choice) (decimal.Decimal, bool) {
	i, ok := t.index[f]
	if !ok {
		return decimal.Zero, false
	}
	for _, ci := range t.factors[i].Choices {
		if ci.Choice == c {
			return ci.Years, true
		}
	}
	return decimal.Zero, false
}

// Factors returns the table's factors in declaration order
func (t *ImpactTable) Factors() []domain.Factor {
	out := make([]domain.Factor, len(t.factors))
	for i, fi := range t.factors {
		out[i] = fi.Factor
	}
	return out
}

// Choices returns a copy of the factor's choices in declaration order
func (t *ImpactTable) Choices(f domain.Factor) []ChoiceImpact {
	i, ok := t.index[f]
	if !ok {
		return nil
	}
	return append([]ChoiceImpact(nil), t.factors[i].Choices...)
}

// HasChoice reports whether c is declared for factor f
func (t *ImpactTable) HasChoice(f domain.Factor, c domain.Choice) bool {
	_, ok := t.Impact(f, c)
	return ok
}

// BestChoice scans the factor's choices in declaration order and returns the
// one with the largest delta. Ties keep the first one seen.
func (t *ImpactTable) BestChoice(f domain.Factor) (ChoiceImpact, bool) {
	return t.extremeChoice(f, func(candidate, current decimal.Decimal) bool {
		return candidate.GreaterThan(current)
	})
}

// WorstChoice is the mirror of BestChoice
func (t *ImpactTable) WorstChoice(f domain.Factor) (ChoiceImpact, bool) {
	return t.extremeChoice(f, func(candidate, current decimal.Decimal) bool {
		return candidate.LessThan(current)
	})
}

func (t *ImpactTable) extremeChoice(f domain.Factor, better func(candidate, current decimal.Decimal) bool) (ChoiceImpact, bool) {
	i, ok := t.index[f]
	if !ok || len(t.factors[i].Choices) == 0 {
		return ChoiceImpact{}, false
	}
	choices := t.factors[i].Choices
	pick := choices[0]
	for _, ci := range choices[1:] {
		if better(ci.Years, pick.Years) {
			pick = ci
		}
	}
	return pick, true
}

// BaselineChoice returns the zero-delta choice of a factor
func (t *ImpactTable) BaselineChoice(f domain.Factor) (domain.Choice, bool) {
	i, ok := t.index[f]
	if !ok {
		return "", false
	}
	for _, ci := range t.factors[i].Choices {
		if ci.Years.IsZero() {
			return ci.Choice, true
		}
	}
	return "", false
}

// TableSnapshot is a serializable copy of an ImpactTable
type TableSnapshot struct {
	BaseLifeExpectancy map[domain.Sex]decimal.Decimal `json:"baseLifeExpectancy" yaml:"baseLifeExpectancy"`
	Factors            []FactorImpacts                `json:"factors" yaml:"factors"`
}

// Snapshot copies the table contents in declaration order
func (t *ImpactTable) Snapshot() TableSnapshot {
	s := TableSnapshot{
		BaseLifeExpectancy: make(map[domain.Sex]decimal.Decimal, len(t.base)),
		Factors:            make([]FactorImpacts, 0, len(t.factors)),
	}
	for sex, years := range t.base {
		s.BaseLifeExpectancy[sex] = years
	}
	for _, fi := range t.factors {
		s.Factors = append(s.Factors, FactorImpacts{
			Factor:  fi.Factor,
			Choices: append([]ChoiceImpact(nil), fi.Choices...),
		})
	}
	return s
}
