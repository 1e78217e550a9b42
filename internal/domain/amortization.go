package domain

import "github.com/shopspring/decimal"

// AmortizationRow is one period of a fixed-payment loan schedule.
type AmortizationRow struct {
	Period           int             `json:"period"`
	Payment          decimal.Decimal `json:"payment"`
	PrincipalPortion decimal.Decimal `json:"principalPortion"`
	InterestPortion  decimal.Decimal `json:"interestPortion"`
	RemainingBalance decimal.Decimal `json:"remainingBalance"`
}

// AmortizationSchedule is a full loan repayment schedule plus its totals.
// A degenerate loan (zero principal or zero term) produces a zeroed schedule
// with no rows rather than an error.
type AmortizationSchedule struct {
	Principal      decimal.Decimal   `json:"principal"`
	AnnualRate     decimal.Decimal   `json:"annualRate"`
	TermMonths     int               `json:"termMonths"`
	MonthlyPayment decimal.Decimal   `json:"monthlyPayment"`
	TotalInterest  decimal.Decimal   `json:"totalInterest"`
	TotalPayments  decimal.Decimal   `json:"totalPayments"`
	Schedule       []AmortizationRow `json:"schedule"`
}

// IsZero reports whether the schedule is the degenerate zeroed result.
func (as *AmortizationSchedule) IsZero() bool {
	return as.TermMonths == 0 && as.MonthlyPayment.IsZero() && len(as.Schedule) == 0
}
