package calculation

import (
	"github.com/mwhitney/finsight/internal/domain"
	"github.com/shopspring/decimal"
)

var (
	rateConservative = decimal.NewFromFloat(0.06)
	rateModerate     = decimal.NewFromFloat(0.09)
	rateAggressive   = decimal.NewFromFloat(0.11)
)

// RateForRiskProfile maps a risk category to an annual nominal return rate.
// Unrecognized profiles get the moderate rate; that is the documented default,
// not an error.
func RateForRiskProfile(profile domain.RiskProfile) decimal.Decimal {
	switch profile {
	case domain.RiskConservative:
		return rateConservative
	case domain.RiskAggressive:
		return rateAggressive
	case domain.RiskModerate:
		return rateModerate
	default:
		return rateModerate
	}
}
