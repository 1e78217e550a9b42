package calculation

import (
	"github.com/mwhitney/finsight/internal/domain"
	"github.com/shopspring/decimal"
)

var (
	decimalZero    = decimal.Zero
	decimalOne     = decimal.NewFromInt(1)
	decimalTwelve  = decimal.NewFromInt(12)
	decimalHundred = decimal.NewFromInt(100)
)

// ProjectGrowth computes the future value of a lump sum plus a stream of
// monthly contributions.
//
// Compounding convention: the lump sum compounds annually, (1+r)^years, and
// contributions follow the future-value-of-ordinary-annuity formula at
// monthlyRate = annualRate/12. This single convention is used everywhere in
// the engine.
func ProjectGrowth(in domain.ProjectionInput) domain.ProjectionResult {
	principal := clampNonNegative(in.Principal)
	contribution := clampNonNegative(in.MonthlyContribution)
	rate := clampNonNegative(in.AnnualRate)
	years := in.Years
	if years < 0 {
		years = 0
	}

	months := int64(years) * 12
	monthsDec := decimal.NewFromInt(months)

	fvPrincipal := principal.Mul(onePlus(rate).Pow(decimal.NewFromInt(int64(years))))

	var fvContributions decimal.Decimal
	monthlyRate := rate.Div(decimalTwelve)
	if monthlyRate.IsZero() {
		// Zero rate degenerates the annuity formula; contributions just pile up.
		fvContributions = contribution.Mul(monthsDec)
	} else {
		growthFactor := onePlus(monthlyRate).Pow(monthsDec)
		fvContributions = contribution.Mul(growthFactor.Sub(decimalOne)).Div(monthlyRate)
	}

	totalValue := fvPrincipal.Add(fvContributions)
	totalContributed := principal.Add(contribution.Mul(monthsDec))

	return domain.ProjectionResult{
		FutureValueOfPrincipal:     fvPrincipal,
		FutureValueOfContributions: fvContributions,
		TotalValue:                 totalValue,
		TotalContributed:           totalContributed,
		TotalInterest:              totalValue.Sub(totalContributed),
	}
}

// ProjectGrowthSeries produces one projection per year from 0 through the
// horizon inclusive, for charting. The series is recomputed on every call,
// never cached.
func ProjectGrowthSeries(in domain.ProjectionInput) []domain.YearProjection {
	years := in.Years
	if years < 0 {
		years = 0
	}

	series := make([]domain.YearProjection, 0, years+1)
	for yr := 0; yr <= years; yr++ {
		yearInput := in
		yearInput.Years = yr
		series = append(series, domain.YearProjection{
			Year:   yr,
			Result: ProjectGrowth(yearInput),
		})
	}
	return series
}

func onePlus(value decimal.Decimal) decimal.Decimal {
	return decimalOne.Add(value)
}

func clampNonNegative(value decimal.Decimal) decimal.Decimal {
	if value.LessThan(decimalZero) {
		return decimalZero
	}
	return value
}
