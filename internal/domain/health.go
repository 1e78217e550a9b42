package domain

import "github.com/shopspring/decimal"

// HealthBand is the qualitative band for a financial health score.
type HealthBand string

const (
	BandExcellent        HealthBand = "Excellent"
	BandGood             HealthBand = "Good"
	BandFair             HealthBand = "Fair"
	BandNeedsImprovement HealthBand = "NeedsImprovement"
)

// HealthScoreInput carries the four signals the scorer weighs.
type HealthScoreInput struct {
	SavingsRatePercent  decimal.Decimal `json:"savingsRatePercent"`
	GoalProgressPercent decimal.Decimal `json:"goalProgressPercent"`
	EmergencyFundMonths decimal.Decimal `json:"emergencyFundMonths"`
	StreakDays          int             `json:"streakDays"`
}

// HealthScoreResult is a 0-100 composite score with its band.
type HealthScoreResult struct {
	Score int        `json:"score"`
	Band  HealthBand `json:"band"`
}

// BandForScore maps a score to its qualitative band.
func BandForScore(score int) HealthBand {
	switch {
	case score >= 80:
		return BandExcellent
	case score >= 60:
		return BandGood
	case score >= 40:
		return BandFair
	default:
		return BandNeedsImprovement
	}
}
