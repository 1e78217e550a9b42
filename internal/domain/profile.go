package domain

import "github.com/shopspring/decimal"

// RiskProfile selects the assumed annual return when a plan does not pin one
// explicitly.
type RiskProfile string

const (
	RiskConservative RiskProfile = "conservative"
	RiskModerate     RiskProfile = "moderate"
	RiskAggressive   RiskProfile = "aggressive"
)

// UserProfile is the person behind a plan: their current position, habits and
// goal. Amounts are in the profile's currency.
type UserProfile struct {
	Name                string          `json:"name" yaml:"name"`
	Age                 int             `json:"age" yaml:"age"`
	AnnualIncome        decimal.Decimal `json:"annualIncome" yaml:"annual_income"`
	CurrentSavings      decimal.Decimal `json:"currentSavings" yaml:"current_savings"`
	MonthlyContribution decimal.Decimal `json:"monthlyContribution" yaml:"monthly_contribution"`
	GoalAmount          decimal.Decimal `json:"goalAmount" yaml:"goal_amount"`
	RiskTolerance       RiskProfile     `json:"riskTolerance" yaml:"risk_tolerance"`
	CurrencyCode        string          `json:"currencyCode" yaml:"currency_code"`
	EmergencyFundMonths decimal.Decimal `json:"emergencyFundMonths" yaml:"emergency_fund_months"`
	StreakDays          int             `json:"streakDays" yaml:"streak_days"`
}

// SavingsRatePercent is the share of gross income saved each year, as a
// percentage. Zero income yields zero rather than a division error.
func (p UserProfile) SavingsRatePercent() decimal.Decimal {
	if p.AnnualIncome.IsZero() {
		return decimal.Zero
	}
	annualSavings := p.MonthlyContribution.Mul(decimal.NewFromInt(12))
	return annualSavings.Div(p.AnnualIncome).Mul(decimal.NewFromInt(100))
}
