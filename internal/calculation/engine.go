package calculation

import (
	"fmt"

	"github.com/mwhitney/finsight/internal/domain"
)

// Engine orchestrates the individual calculators into full plan reports. The
// calculators themselves are pure package functions; the engine only wires
// their inputs together and logs.
type Engine struct {
	Logger Logger
	Debug  bool
}

// NewEngine creates an engine with a no-op logger.
func NewEngine() *Engine {
	return &Engine{Logger: NopLogger{}}
}

// SetLogger replaces the engine logger. A nil logger falls back to NopLogger.
func (e *Engine) SetLogger(logger Logger) {
	if logger == nil {
		e.Logger = NopLogger{}
		return
	}
	e.Logger = logger
}

// RunPlan computes everything a plan file asks for: baseline projection and
// series, goal progress, health score, what-if comparisons and the optional
// loan schedule.
func (e *Engine) RunPlan(cfg *domain.PlanConfig) (*domain.PlanReport, error) {
	if cfg == nil {
		return nil, fmt.Errorf("plan config is required")
	}

	years := cfg.Assumptions.ProjectionYears
	if years <= 0 {
		years = 1
	}

	rate := RateForRiskProfile(cfg.Profile.RiskTolerance)
	if cfg.Assumptions.AnnualRateOverride != nil {
		rate = clampNonNegative(*cfg.Assumptions.AnnualRateOverride)
	}
	e.Logger.Debugf("plan %q: rate=%s years=%d", cfg.Profile.Name, rate.String(), years)

	baseline := domain.ProjectionInput{
		Principal:           cfg.Profile.CurrentSavings,
		MonthlyContribution: cfg.Profile.MonthlyContribution,
		AnnualRate:          rate,
		Years:               years,
	}

	projection := ProjectGrowth(baseline)
	goal := EvaluateProgress(projection.TotalValue, cfg.Profile.GoalAmount)
	health := ScoreHealth(domain.HealthScoreInput{
		SavingsRatePercent:  cfg.Profile.SavingsRatePercent(),
		GoalProgressPercent: goal.Percentage,
		EmergencyFundMonths: cfg.Profile.EmergencyFundMonths,
		StreakDays:          cfg.Profile.StreakDays,
	})

	report := &domain.PlanReport{
		Profile:    cfg.Profile,
		AnnualRate: rate,
		Projection: projection,
		Series:     ProjectGrowthSeries(baseline),
		Goal:       goal,
		Health:     health,
	}

	for _, sc := range cfg.Scenarios {
		alt := sc.Input
		if alt.AnnualRate.IsZero() {
			alt.AnnualRate = rate
		}
		if alt.Years == 0 {
			alt.Years = years
		}
		report.Scenarios = append(report.Scenarios, domain.NamedComparison{
			Name:       sc.Name,
			Comparison: CompareScenarios(baseline, alt),
		})
	}

	if cfg.Loan != nil {
		schedule := Amortize(cfg.Loan.Principal, cfg.Loan.AnnualRate, cfg.Loan.TermYears)
		report.Amortization = &schedule
	}

	return report, nil
}
