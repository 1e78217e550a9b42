package calculation

import (
	"github.com/mwhitney/finsight/internal/domain"
	"github.com/shopspring/decimal"
)

// Amortize produces a fixed-payment loan schedule with a monthly
// principal/interest/balance decomposition.
//
// Degenerate inputs (principal <= 0 or term <= 0) return a zeroed schedule
// rather than an error; calculator inputs come from half-filled forms and
// must never crash the caller.
func Amortize(principal, annualRate decimal.Decimal, termYears int) domain.AmortizationSchedule {
	termMonths := termYears * 12
	if principal.LessThanOrEqual(decimalZero) || termMonths <= 0 {
		return domain.AmortizationSchedule{
			Principal:      decimalZero,
			AnnualRate:     clampNonNegative(annualRate),
			MonthlyPayment: decimalZero,
			TotalInterest:  decimalZero,
			TotalPayments:  decimalZero,
		}
	}

	rate := clampNonNegative(annualRate)
	monthlyRate := rate.Div(decimalTwelve)
	n := decimal.NewFromInt(int64(termMonths))

	var payment decimal.Decimal
	if monthlyRate.IsZero() {
		// Straight-line repayment, no interest.
		payment = principal.Div(n)
	} else {
		growth := onePlus(monthlyRate).Pow(n)
		payment = principal.Mul(monthlyRate).Mul(growth).Div(growth.Sub(decimalOne))
	}

	schedule := make([]domain.AmortizationRow, 0, termMonths)
	balance := principal
	totalInterest := decimalZero

	for period := 1; period <= termMonths; period++ {
		interest := balance.Mul(monthlyRate)
		principalPortion := payment.Sub(interest)
		if period == termMonths {
			// Absorb accumulated rounding so the schedule terminates at zero.
			principalPortion = balance
			payment = principalPortion.Add(interest)
		}
		balance = balance.Sub(principalPortion)
		totalInterest = totalInterest.Add(interest)

		schedule = append(schedule, domain.AmortizationRow{
			Period:           period,
			Payment:          payment,
			PrincipalPortion: principalPortion,
			InterestPortion:  interest,
			RemainingBalance: balance,
		})
	}

	return domain.AmortizationSchedule{
		Principal:      principal,
		AnnualRate:     rate,
		TermMonths:     termMonths,
		MonthlyPayment: schedule[0].Payment,
		TotalInterest:  totalInterest,
		TotalPayments:  principal.Add(totalInterest),
		Schedule:       schedule,
	}
}
