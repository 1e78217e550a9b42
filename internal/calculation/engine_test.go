package calculation

import (
	"testing"

	"github.com/mwhitney/finsight/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testLogger struct {
	lines int
}

func (l *testLogger) Debugf(format string, args ...any) { l.lines++ }
func (l *testLogger) Infof(format string, args ...any)  { l.lines++ }
func (l *testLogger) Warnf(format string, args ...any)  { l.lines++ }
func (l *testLogger) Errorf(format string, args ...any) { l.lines++ }

func testPlanConfig() *domain.PlanConfig {
	return &domain.PlanConfig{
		Profile: domain.UserProfile{
			Name:                "sam",
			Age:                 35,
			AnnualIncome:        decimal.NewFromInt(90000),
			CurrentSavings:      decimal.NewFromInt(10000),
			MonthlyContribution: decimal.NewFromInt(500),
			GoalAmount:          decimal.NewFromInt(100000),
			RiskTolerance:       domain.RiskModerate,
			CurrencyCode:        "USD",
			EmergencyFundMonths: decimal.NewFromInt(4),
			StreakDays:          12,
		},
		Assumptions: domain.GlobalAssumptions{ProjectionYears: 10},
		Loan: &domain.LoanSpec{
			Principal:  decimal.NewFromInt(25000),
			AnnualRate: decimal.NewFromFloat(0.07),
			TermYears:  5,
		},
		Scenarios: []domain.WhatIfScenario{
			{
				Name: "save more",
				Input: domain.ProjectionInput{
					Principal:           decimal.NewFromInt(10000),
					MonthlyContribution: decimal.NewFromInt(600),
				},
			},
		},
	}
}

func TestEngine_RunPlan(t *testing.T) {
	engine := NewEngine()
	report, err := engine.RunPlan(testPlanConfig())

	require.NoError(t, err)
	require.NotNil(t, report)

	assert.True(t, report.AnnualRate.Equal(decimal.NewFromFloat(0.09)), "moderate profile maps to 9%%")
	assert.True(t, report.Projection.TotalValue.GreaterThan(decimal.Zero))
	assert.Len(t, report.Series, 11)
	assert.True(t, report.Goal.Percentage.GreaterThan(decimal.Zero))
	assert.NotZero(t, report.Health.Score)

	require.Len(t, report.Scenarios, 1)
	sc := report.Scenarios[0]
	assert.Equal(t, "save more", sc.Name)
	assert.True(t, sc.Comparison.Delta.GreaterThan(decimal.Zero), "scenario inherits rate and horizon, so more savings wins")

	require.NotNil(t, report.Amortization)
	assert.Len(t, report.Amortization.Schedule, 60)
}

func TestEngine_RunPlan_RateOverride(t *testing.T) {
	cfg := testPlanConfig()
	override := decimal.NewFromFloat(0.05)
	cfg.Assumptions.AnnualRateOverride = &override

	report, err := NewEngine().RunPlan(cfg)
	require.NoError(t, err)
	assert.True(t, report.AnnualRate.Equal(override))
}

func TestEngine_RunPlan_NilConfig(t *testing.T) {
	report, err := NewEngine().RunPlan(nil)

	assert.Error(t, err)
	assert.Nil(t, report)
}

func TestEngine_RunPlan_DefaultsHorizon(t *testing.T) {
	cfg := testPlanConfig()
	cfg.Assumptions.ProjectionYears = 0

	report, err := NewEngine().RunPlan(cfg)
	require.NoError(t, err)
	assert.Len(t, report.Series, 2, "horizon defaults to one year")
}

func TestEngine_SetLogger(t *testing.T) {
	engine := NewEngine()

	logger := &testLogger{}
	engine.SetLogger(logger)
	assert.Equal(t, logger, engine.Logger)

	engine.SetLogger(nil)
	assert.IsType(t, NopLogger{}, engine.Logger, "nil logger falls back to no-op")
}
