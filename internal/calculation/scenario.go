package calculation

import (
	"github.com/mwhitney/finsight/internal/domain"
)

// CompareScenarios runs the growth calculator on a baseline and an alternate
// input set independently and reports the difference in total value.
// DeltaPercent is zero when the baseline total is zero.
func CompareScenarios(baseline, alternate domain.ProjectionInput) domain.ScenarioComparison {
	base := ProjectGrowth(baseline)
	alt := ProjectGrowth(alternate)

	delta := alt.TotalValue.Sub(base.TotalValue)

	deltaPercent := decimalZero
	if !base.TotalValue.IsZero() {
		deltaPercent = delta.Div(base.TotalValue).Mul(decimalHundred)
	}

	return domain.ScenarioComparison{
		Baseline:     base,
		Alternate:    alt,
		Delta:        delta,
		DeltaPercent: deltaPercent,
	}
}
