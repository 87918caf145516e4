package calculation

import (
	"sort"

	"github.com/rgehrsitz/lifex/internal/domain"
	"github.com/shopspring/decimal"
)

// Logger is the minimal logging surface the engine writes diagnostics to
type Logger interface {
	Debugf(format string, args ...any)
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)
}

// NopLogger discards everything
type NopLogger struct{}

func (NopLogger) Debugf(string, ...any) {}
func (NopLogger) Infof(string, ...any)  {}
func (NopLogger) Warnf(string, ...any)  {}
func (NopLogger) Errorf(string, ...any) {}

// CalculationEngine scores profiles against an impact table.
// It holds no mutable state beyond its logger and is safe for concurrent use.
type CalculationEngine struct {
	Table  *ImpactTable
	Logger Logger
}

// NewCalculationEngine creates an engine over DefaultTable
func NewCalculationEngine() *CalculationEngine {
	return NewCalculationEngineWithTable(DefaultTable)
}

// NewCalculationEngineWithTable creates an engine over a caller supplied table
func NewCalculationEngineWithTable(table *ImpactTable) *CalculationEngine {
	if table == nil {
		table = DefaultTable
	}
	return &CalculationEngine{
		Table:  table,
		Logger: NopLogger{},
	}
}

// SetLogger replaces the engine logger; nil restores the no-op logger
func (ce *CalculationEngine) SetLogger(l Logger) {
	if l == nil {
		ce.Logger = NopLogger{}
		return
	}
	ce.Logger = l
}

// ComputeLifeExpectancy scores a profile. It never fails: unknown choices
// contribute zero years and an unknown sex contributes a zero base.
func (ce *CalculationEngine) ComputeLifeExpectancy(profile domain.Profile) domain.Result {
	base, ok := ce.Table.BaseLifeExpectancy(profile.Sex)
	if !ok {
		ce.Logger.Warnf("no base life expectancy for sex %q, using 0", profile.Sex)
	}

	factors := ce.Table.Factors()
	impacts := make(map[domain.Factor]decimal.Decimal, len(factors))
	total := decimal.Zero
	for _, f := range factors {
		choice := profile.Choice(f)
		impact, known := ce.Table.Impact(f, choice)
		if !known {
			ce.Logger.Debugf("unrecognized choice %q for %s, treating as 0 years", choice, f)
		}
		impacts[f] = impact
		total = total.Add(impact)
	}

	adjusted := base.Add(total)
	remaining := decimal.Max(decimal.Zero, adjusted.Sub(decimal.NewFromInt(int64(profile.Age))))

	ce.Logger.Debugf("age=%d sex=%s base=%s impact=%s adjusted=%s",
		profile.Age, profile.Sex, base, total, adjusted)

	return domain.Result{
		CurrentAge:             profile.Age,
		BaseLifeExpectancy:     base,
		AdjustedLifeExpectancy: adjusted,
		YearsGainedLost:        total,
		ImpactByFactor:         impacts,
		TotalYearsRemaining:    remaining,
	}
}

// RankSuggestions finds, per factor, the best achievable choice and the gap to
// the current one. Factors already at their best are left out. The result is
// sorted by potential improvement, largest first, with ties in table order.
func (ce *CalculationEngine) RankSuggestions(profile domain.Profile) []domain.Suggestion {
	result := ce.ComputeLifeExpectancy(profile)

	suggestions := []domain.Suggestion{}
	for _, f := range ce.Table.Factors() {
		best, ok := ce.Table.BestChoice(f)
		if !ok {
			continue
		}
		current := result.Impact(f)
		gain := best.Years.Sub(current)
		if !gain.IsPositive() {
			continue
		}
		suggestions = append(suggestions, domain.Suggestion{
			Factor:               f,
			CurrentChoice:        profile.Choice(f),
			CurrentImpact:        current,
			BestChoice:           best.Choice,
			PotentialImprovement: gain,
		})
	}

	sort.SliceStable(suggestions, func(i, j int) bool {
		return suggestions[i].PotentialImprovement.GreaterThan(suggestions[j].PotentialImprovement)
	})
	return suggestions
}

// BestProfile returns p with every factor moved to its best choice
func (ce *CalculationEngine) BestProfile(p domain.Profile) domain.Profile {
	for _, f := range ce.Table.Factors() {
		if best, ok := ce.Table.BestChoice(f); ok {
			p = p.With(f, best.Choice)
		}
	}
	return p
}

var defaultEngine = NewCalculationEngine()

// ComputeLifeExpectancy scores a profile against DefaultTable
func ComputeLifeExpectancy(profile domain.Profile) domain.Result {
	return defaultEngine.ComputeLifeExpectancy(profile)
}

// RankSuggestions ranks improvement suggestions against DefaultTable
func RankSuggestions(profile domain.Profile) []domain.Suggestion {
	return defaultEngine.RankSuggestions(profile)
}

// TopSuggestions returns at most n suggestions; n <= 0 means all of them.
// Truncation is a presentation choice, the ranker itself never caps.
func TopSuggestions(suggestions []domain.Suggestion, n int) []domain.Suggestion {
	if n <= 0 || n > len(suggestions) {
		n = len(suggestions)
	}
	out := make([]domain.Suggestion, n)
	copy(out, suggestions[:n])
	return out
}
