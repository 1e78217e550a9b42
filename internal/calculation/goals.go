package calculation

import (
	"github.com/mwhitney/finsight/internal/domain"
	"github.com/shopspring/decimal"
)

// EvaluateProgress compares a projected value against a target amount.
//
// The percentage is clamped to [0,100] even when the projection exceeds the
// target; the excess shows up only in SurplusOrShortfall. A non-positive
// target yields 0% with the full projected value as surplus.
func EvaluateProgress(projectedValue, targetAmount decimal.Decimal) domain.GoalProgress {
	projected := clampNonNegative(projectedValue)

	progress := domain.GoalProgress{
		ProjectedValue: projected,
		TargetAmount:   targetAmount,
	}

	if targetAmount.LessThanOrEqual(decimalZero) {
		progress.Percentage = decimalZero
		progress.SurplusOrShortfall = projected
		return progress
	}

	pct := projected.Div(targetAmount).Mul(decimalHundred)
	if pct.GreaterThan(decimalHundred) {
		pct = decimalHundred
	}
	if pct.LessThan(decimalZero) {
		pct = decimalZero
	}

	progress.Percentage = pct
	progress.SurplusOrShortfall = projected.Sub(targetAmount)
	return progress
}
