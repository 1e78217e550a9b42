package domain

import "github.com/shopspring/decimal"

// ProjectionInput is the validated input to the compound growth calculator.
// Raw form values are converted to this type at the config boundary; by the
// time an input reaches the engine every field is non-negative.
type ProjectionInput struct {
	Principal           decimal.Decimal `json:"principal" yaml:"principal"`
	MonthlyContribution decimal.Decimal `json:"monthlyContribution" yaml:"monthly_contribution"`
	AnnualRate          decimal.Decimal `json:"annualRate" yaml:"annual_rate"`
	Years               int             `json:"years" yaml:"years"`
}

// ProjectionResult is the decomposed future value of a projection.
type ProjectionResult struct {
	FutureValueOfPrincipal     decimal.Decimal `json:"futureValueOfPrincipal"`
	FutureValueOfContributions decimal.Decimal `json:"futureValueOfContributions"`
	TotalValue                 decimal.Decimal `json:"totalValue"`
	TotalContributed           decimal.Decimal `json:"totalContributed"`
	TotalInterest              decimal.Decimal `json:"totalInterest"`
}

// YearProjection is one point of the year-by-year growth series.
type YearProjection struct {
	Year   int              `json:"year"`
	Result ProjectionResult `json:"result"`
}

// GoalProgress compares a projected value against a target amount. Percentage
// is clamped to [0,100]; overshoot is reported through SurplusOrShortfall so
// progress bars never overflow.
type GoalProgress struct {
	ProjectedValue     decimal.Decimal `json:"projectedValue"`
	TargetAmount       decimal.Decimal `json:"targetAmount"`
	Percentage         decimal.Decimal `json:"percentage"`
	SurplusOrShortfall decimal.Decimal `json:"surplusOrShortfall"`
}

// OnTrack reports whether the projection meets or exceeds the target.
func (gp GoalProgress) OnTrack() bool {
	return gp.TargetAmount.GreaterThan(decimal.Zero) && gp.SurplusOrShortfall.GreaterThanOrEqual(decimal.Zero)
}

// ScenarioComparison is the outcome of a what-if run: a baseline projection,
// an alternate projection, and the difference between their total values.
type ScenarioComparison struct {
	Baseline     ProjectionResult `json:"baseline"`
	Alternate    ProjectionResult `json:"alternate"`
	Delta        decimal.Decimal  `json:"delta"`
	DeltaPercent decimal.Decimal  `json:"deltaPercent"`
}

// PlanReport bundles everything computed from one plan file for the output
// formatters.
type PlanReport struct {
	Profile      UserProfile           `json:"profile"`
	AnnualRate   decimal.Decimal       `json:"annualRate"`
	Projection   ProjectionResult      `json:"projection"`
	Series       []YearProjection      `json:"series"`
	Goal         GoalProgress          `json:"goal"`
	Health       HealthScoreResult     `json:"health"`
	Scenarios    []NamedComparison     `json:"scenarios,omitempty"`
	Amortization *AmortizationSchedule `json:"amortization,omitempty"`
}

// NamedComparison attaches the scenario name from the plan file to its
// comparison result.
type NamedComparison struct {
	Name       string             `json:"name"`
	Comparison ScenarioComparison `json:"comparison"`
}
