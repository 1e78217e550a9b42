package calculation

import (
	"github.com/mwhitney/finsight/internal/domain"
	"github.com/shopspring/decimal"
)

// Canonical health-score weighting. Each signal is normalized to a 0-100
// sub-score before weighting: a 25% savings rate, a fully funded goal, and
// six months of emergency coverage each max out their component.
var (
	healthBaseCredit      = decimal.NewFromInt(20) // planning credit for having a completed plan
	healthSavingsWeight   = decimal.NewFromFloat(0.3)
	healthGoalWeight      = decimal.NewFromFloat(0.3)
	healthEmergencyWeight = decimal.NewFromFloat(0.2)
	healthSavingsScale    = decimal.NewFromInt(4)             // 25% savings rate -> 100
	healthEmergencyScale  = decimal.NewFromFloat(100.0 / 6.0) // 6 months -> 100
	healthStreakCeiling   = decimal.NewFromInt(30)
	healthStreakBonus     = decimal.NewFromInt(10)
)

// ScoreHealth folds savings rate, goal progress, emergency-fund coverage and
// engagement streak into a single 0-100 score with a qualitative band.
func ScoreHealth(in domain.HealthScoreInput) domain.HealthScoreResult {
	savings := capHundred(clampNonNegative(in.SavingsRatePercent).Mul(healthSavingsScale))
	goal := capHundred(clampNonNegative(in.GoalProgressPercent))
	emergency := capHundred(clampNonNegative(in.EmergencyFundMonths).Mul(healthEmergencyScale))

	streak := decimal.NewFromInt(int64(in.StreakDays))
	streak = clampNonNegative(streak)
	if streak.GreaterThan(healthStreakCeiling) {
		streak = healthStreakCeiling
	}
	engagement := streak.Div(healthStreakCeiling).Mul(healthStreakBonus)

	score := healthBaseCredit.
		Add(savings.Mul(healthSavingsWeight)).
		Add(goal.Mul(healthGoalWeight)).
		Add(emergency.Mul(healthEmergencyWeight)).
		Add(engagement)

	if score.GreaterThan(decimalHundred) {
		score = decimalHundred
	}
	if score.LessThan(decimalZero) {
		score = decimalZero
	}

	rounded := int(score.Round(0).IntPart())

	return domain.HealthScoreResult{
		Score: rounded,
		Band:  domain.BandForScore(rounded),
	}
}

func capHundred(value decimal.Decimal) decimal.Decimal {
	if value.GreaterThan(decimalHundred) {
		return decimalHundred
	}
	return value
}
