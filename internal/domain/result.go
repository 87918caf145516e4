package domain

import (
	"sort"

	"github.com/shopspring/decimal"
)

// Result is the computed life expectancy breakdown for one profile
type Result struct {
	CurrentAge             int                        `json:"currentAge"`
	BaseLifeExpectancy     decimal.Decimal            `json:"baseLifeExpectancy"`
	AdjustedLifeExpectancy decimal.Decimal            `json:"adjustedLifeExpectancy"`
	YearsGainedLost        decimal.Decimal            `json:"yearsGainedLost"`
	ImpactByFactor         map[Factor]decimal.Decimal `json:"impactByFactor"`
	TotalYearsRemaining    decimal.Decimal            `json:"totalYearsRemaining"`
}

// Impact returns the delta recorded for factor f (zero when absent)
func (r *Result) Impact(f Factor) decimal.Decimal {
	if d, ok := r.ImpactByFactor[f]; ok {
		return d
	}
	return decimal.Zero
}

// FactorImpact pairs a factor with its delta
type FactorImpact struct {
	Factor Factor          `json:"factor"`
	Years  decimal.Decimal `json:"years"`
}

// FactorsByMagnitude returns the impacts ordered by absolute size, largest first.
// Equal magnitudes keep canonical factor order.
func (r *Result) FactorsByMagnitude() []FactorImpact {
	items := make([]FactorImpact, 0, len(Factors))
	for _, f := range Factors {
		items = append(items, FactorImpact{Factor: f, Years: r.Impact(f)})
	}
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Years.Abs().GreaterThan(items[j].Years.Abs())
	})
	return items
}

// ComparisonResult holds the results for an original and a modified profile
type ComparisonResult struct {
	Original       Result          `json:"original"`
	Modified       Result          `json:"modified"`
	Difference     decimal.Decimal `json:"difference"`
	ChangedFactors []Factor        `json:"changedFactors"`
}

// Suggestion describes the best achievable change for one factor
type Suggestion struct {
	Factor               Factor          `json:"factor"`
	CurrentChoice        Choice          `json:"currentChoice"`
	CurrentImpact        decimal.Decimal `json:"currentImpact"`
	BestChoice           Choice          `json:"bestChoice"`
	PotentialImprovement decimal.Decimal `json:"potentialImprovement"`
}
