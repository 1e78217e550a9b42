package compare

import (
	"fmt"

	"github.com/mwhitney/finsight/internal/calculation"
	"github.com/mwhitney/finsight/internal/domain"
	"github.com/shopspring/decimal"
)

// Result is one scenario's projection with its deltas against the baseline.
type Result struct {
	Name         string                  `json:"name"`
	Input        domain.ProjectionInput  `json:"input"`
	Projection   domain.ProjectionResult `json:"projection"`
	Delta        decimal.Decimal         `json:"delta"`
	DeltaPercent decimal.Decimal         `json:"deltaPercent"`
}

// Set is a baseline projection plus any number of alternates, with
// human-readable recommendations derived from the deltas.
type Set struct {
	BaselineName    string   `json:"baselineName"`
	Baseline        Result   `json:"baseline"`
	Alternates      []Result `json:"alternates"`
	Recommendations []string `json:"recommendations"`
	CurrencyCode    string   `json:"currencyCode"`
}

// BuildSet runs every scenario against the baseline input and assembles the
// comparison set.
func BuildSet(baselineName string, baseline domain.ProjectionInput, scenarios []domain.WhatIfScenario, currencyCode string) *Set {
	base := calculation.ProjectGrowth(baseline)

	set := &Set{
		BaselineName: baselineName,
		Baseline: Result{
			Name:       baselineName,
			Input:      baseline,
			Projection: base,
		},
		CurrencyCode: currencyCode,
	}

	for _, sc := range scenarios {
		alt := sc.Input
		if alt.AnnualRate.IsZero() {
			alt.AnnualRate = baseline.AnnualRate
		}
		if alt.Years == 0 {
			alt.Years = baseline.Years
		}
		comparison := calculation.CompareScenarios(baseline, alt)
		set.Alternates = append(set.Alternates, Result{
			Name:         sc.Name,
			Input:        alt,
			Projection:   comparison.Alternate,
			Delta:        comparison.Delta,
			DeltaPercent: comparison.DeltaPercent,
		})
	}

	set.Recommendations = GenerateRecommendations(set)
	return set
}

// GenerateRecommendations derives short recommendation strings from a set.
func GenerateRecommendations(set *Set) []string {
	recommendations := []string{}
	if len(set.Alternates) == 0 {
		return recommendations
	}

	best := set.Alternates[0]
	for _, alt := range set.Alternates[1:] {
		if alt.Delta.GreaterThan(best.Delta) {
			best = alt
		}
	}

	if best.Delta.GreaterThan(decimal.Zero) {
		recommendations = append(recommendations,
			fmt.Sprintf("Best outcome: %q adds %s over the baseline (%s%%)",
				best.Name, best.Delta.StringFixed(0), best.DeltaPercent.StringFixed(1)))
	}

	for _, alt := range set.Alternates {
		if alt.Delta.IsNegative() {
			recommendations = append(recommendations,
				fmt.Sprintf("%q ends %s below the baseline", alt.Name, alt.Delta.Abs().StringFixed(0)))
		}
	}

	return recommendations
}
