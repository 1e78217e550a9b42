package calculation

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAmortize_ReferenceLoan(t *testing.T) {
	result := Amortize(decimal.NewFromInt(25000), decimal.NewFromFloat(0.07), 5)

	require.Len(t, result.Schedule, 60)
	assert.InDelta(t, 495.03, result.MonthlyPayment.InexactFloat64(), 0.05)

	first := result.Schedule[0]
	assert.Equal(t, 1, first.Period)
	assert.InDelta(t, 145.83, first.InterestPortion.InexactFloat64(), 0.01)
	assert.InDelta(t, 349.20, first.PrincipalPortion.InexactFloat64(), 0.05)
}

func TestAmortize_Conservation(t *testing.T) {
	result := Amortize(decimal.NewFromInt(25000), decimal.NewFromFloat(0.07), 5)

	principalSum := decimal.Zero
	for _, row := range result.Schedule {
		split := row.PrincipalPortion.Add(row.InterestPortion)
		assert.InDelta(t, row.Payment.InexactFloat64(), split.InexactFloat64(), 1e-6,
			"principal + interest must equal payment in period %d", row.Period)
		principalSum = principalSum.Add(row.PrincipalPortion)
	}

	assert.InDelta(t, 25000, principalSum.InexactFloat64(), 1e-6, "schedule must repay exactly the principal")
}

func TestAmortize_BalanceMonotoneAndTerminates(t *testing.T) {
	result := Amortize(decimal.NewFromInt(180000), decimal.NewFromFloat(0.065), 30)

	prev := result.Principal
	for _, row := range result.Schedule {
		assert.True(t, row.RemainingBalance.LessThanOrEqual(prev),
			"balance must not increase in period %d", row.Period)
		prev = row.RemainingBalance
	}

	final := result.Schedule[len(result.Schedule)-1].RemainingBalance
	assert.True(t, final.IsZero(), "final balance should be exactly zero, got %s", final)
}

func TestAmortize_ZeroRate(t *testing.T) {
	result := Amortize(decimal.NewFromInt(12000), decimal.Zero, 1)

	require.Len(t, result.Schedule, 12)
	assert.True(t, result.MonthlyPayment.Equal(decimal.NewFromInt(1000)), "zero rate is straight-line repayment")
	assert.True(t, result.TotalInterest.IsZero())
	for _, row := range result.Schedule {
		assert.True(t, row.InterestPortion.IsZero())
	}
}

func TestAmortize_DegenerateInputs(t *testing.T) {
	zeroPrincipal := Amortize(decimal.Zero, decimal.NewFromFloat(0.05), 10)
	assert.True(t, zeroPrincipal.IsZero(), "zero principal should return a zeroed schedule")

	negativePrincipal := Amortize(decimal.NewFromInt(-100), decimal.NewFromFloat(0.05), 10)
	assert.True(t, negativePrincipal.IsZero())

	zeroTerm := Amortize(decimal.NewFromInt(1000), decimal.NewFromFloat(0.05), 0)
	assert.True(t, zeroTerm.IsZero(), "zero term should return a zeroed schedule")
}

func TestAmortize_TotalPayments(t *testing.T) {
	result := Amortize(decimal.NewFromInt(25000), decimal.NewFromFloat(0.07), 5)
	assert.True(t, result.TotalPayments.Equal(result.Principal.Add(result.TotalInterest)))
	assert.True(t, result.TotalInterest.GreaterThan(decimal.Zero))
}
