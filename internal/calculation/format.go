package calculation

import (
	"github.com/rgehrsitz/lifex/internal/domain"
	"github.com/shopspring/decimal"
)

// Tone classifies a delta for coloring
type Tone string

const (
	TonePositive Tone = "positive"
	ToneNegative Tone = "negative"
	ToneNeutral  Tone = "neutral"
)

// ImpactTone classifies a year delta
func ImpactTone(d decimal.Decimal) Tone {
	switch {
	case d.IsPositive():
		return TonePositive
	case d.IsNegative():
		return ToneNegative
	default:
		return ToneNeutral
	}
}

// FormatYears renders years with one decimal place
func FormatYears(d decimal.Decimal) string {
	return d.StringFixed(1)
}

// FormatSignedYears renders years with one decimal and an explicit plus sign
func FormatSignedYears(d decimal.Decimal) string {
	if d.IsPositive() {
		return "+" + d.StringFixed(1)
	}
	return d.StringFixed(1)
}

// Summary is the one-line description of what lifestyle factors did to the base
func Summary(r domain.Result) string {
	switch ImpactTone(r.YearsGainedLost) {
	case TonePositive, ToneNegative:
		return FormatSignedYears(r.YearsGainedLost) + " years from lifestyle factors"
	default:
		return "Baseline expectancy for your profile"
	}
}
