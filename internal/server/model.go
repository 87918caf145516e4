package server

import (
	"github.com/rgehrsitz/lifex/internal/calculation"
	"github.com/rgehrsitz/lifex/internal/compare"
	"github.com/rgehrsitz/lifex/internal/domain"
	"github.com/shopspring/decimal"
)

// LifeExpectancyResponse is the body of POST /v1/life-expectancy
type LifeExpectancyResponse struct {
	Profile  domain.Profile `json:"profile"`
	Result   domain.Result  `json:"result"`
	Summary  string         `json:"summary"`
	Warnings []string       `json:"warnings,omitempty"`
}

// CompareRequest is the body of POST /v1/compare. Omitted factors in either
// profile fall back to the default profile.
type CompareRequest struct {
	Original domain.Profile `json:"original"`
	Modified domain.Profile `json:"modified"`
}

// CompareResponse is the body of POST /v1/compare
type CompareResponse struct {
	Comparison domain.ComparisonResult `json:"comparison"`
	Headline   string                  `json:"headline"`
	Timeline   []compare.TimelinePoint `json:"timeline"`
	Warnings   []string                `json:"warnings,omitempty"`
}

// SuggestionsResponse is the body of POST /v1/suggestions
type SuggestionsResponse struct {
	Suggestions []domain.Suggestion `json:"suggestions"`
	BestCase    decimal.Decimal     `json:"bestCase"`
}

// FactorOption is one choice of a factor with its delta
type FactorOption struct {
	calculation.Option
	Years decimal.Decimal `json:"years"`
}

// FactorInfo describes a factor for GET /v1/factors
type FactorInfo struct {
	Factor      domain.Factor  `json:"factor"`
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Options     []FactorOption `json:"options"`
}

// FactorsResponse is the body of GET /v1/factors
type FactorsResponse struct {
	BaseLifeExpectancy map[domain.Sex]decimal.Decimal `json:"baseLifeExpectancy"`
	Factors            []FactorInfo                   `json:"factors"`
}

// ErrorResponse is returned with every non-2xx status
type ErrorResponse struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
}
