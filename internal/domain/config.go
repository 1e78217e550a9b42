package domain

import "github.com/shopspring/decimal"

// GlobalAssumptions are the plan-wide knobs shared by every projection in a
// plan file.
type GlobalAssumptions struct {
	ProjectionYears    int              `json:"projectionYears" yaml:"projection_years"`
	AnnualRateOverride *decimal.Decimal `json:"annualRateOverride,omitempty" yaml:"annual_rate_override,omitempty"`
}

// LoanSpec describes an optional loan to amortize alongside the projection.
type LoanSpec struct {
	Principal  decimal.Decimal `json:"principal" yaml:"principal"`
	AnnualRate decimal.Decimal `json:"annualRate" yaml:"annual_rate"`
	TermYears  int             `json:"termYears" yaml:"term_years"`
}

// WhatIfScenario is a named alternate input set compared against the plan's
// baseline projection.
type WhatIfScenario struct {
	Name  string          `json:"name" yaml:"name"`
	Input ProjectionInput `json:"input" yaml:"input"`
}

// PlanConfig is a parsed plan file: the user profile, global assumptions and
// any number of what-if scenarios.
type PlanConfig struct {
	Profile     UserProfile       `json:"profile" yaml:"profile"`
	Assumptions GlobalAssumptions `json:"assumptions" yaml:"assumptions"`
	Loan        *LoanSpec         `json:"loan,omitempty" yaml:"loan,omitempty"`
	Scenarios   []WhatIfScenario  `json:"scenarios,omitempty" yaml:"scenarios,omitempty"`
}
