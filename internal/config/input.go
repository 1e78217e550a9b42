package config

import (
	"fmt"
	"os"

	"github.com/mwhitney/finsight/internal/currency"
	"github.com/mwhitney/finsight/internal/domain"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// InputParser handles parsing of plan configuration files.
type InputParser struct{}

// NewInputParser creates a new input parser.
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads a plan configuration from a YAML file.
func (ip *InputParser) LoadFromFile(filename string) (*domain.PlanConfig, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	var cfg domain.PlanConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := ip.ValidatePlan(&cfg); err != nil {
		return nil, fmt.Errorf("plan validation failed: %w", err)
	}

	ip.applyDefaults(&cfg)
	return &cfg, nil
}

// ValidatePlan validates a loaded plan configuration. Validation errors live
// here at the boundary; the calculation engine itself never rejects input.
func (ip *InputParser) ValidatePlan(cfg *domain.PlanConfig) error {
	if err := ip.validateProfile(&cfg.Profile); err != nil {
		return fmt.Errorf("profile validation failed: %w", err)
	}
	if err := ip.validateAssumptions(&cfg.Assumptions); err != nil {
		return fmt.Errorf("assumptions validation failed: %w", err)
	}
	if cfg.Loan != nil {
		if err := ip.validateLoan(cfg.Loan); err != nil {
			return fmt.Errorf("loan validation failed: %w", err)
		}
	}
	for i, sc := range cfg.Scenarios {
		if sc.Name == "" {
			return fmt.Errorf("scenario %d: name is required", i)
		}
		if sc.Input.Years < 0 {
			return fmt.Errorf("scenario %q: years cannot be negative", sc.Name)
		}
	}
	return nil
}

func (ip *InputParser) validateProfile(profile *domain.UserProfile) error {
	if profile.Name == "" {
		return fmt.Errorf("name is required")
	}
	if profile.Age < 0 || profile.Age > 120 {
		return fmt.Errorf("age must be between 0 and 120")
	}
	if profile.AnnualIncome.LessThan(decimal.Zero) {
		return fmt.Errorf("annual income cannot be negative")
	}
	if profile.CurrentSavings.LessThan(decimal.Zero) {
		return fmt.Errorf("current savings cannot be negative")
	}
	if profile.MonthlyContribution.LessThan(decimal.Zero) {
		return fmt.Errorf("monthly contribution cannot be negative")
	}
	if profile.GoalAmount.LessThan(decimal.Zero) {
		return fmt.Errorf("goal amount cannot be negative")
	}
	if profile.EmergencyFundMonths.LessThan(decimal.Zero) {
		return fmt.Errorf("emergency fund months cannot be negative")
	}
	return nil
}

func (ip *InputParser) validateAssumptions(assumptions *domain.GlobalAssumptions) error {
	if assumptions.ProjectionYears < 0 || assumptions.ProjectionYears > 100 {
		return fmt.Errorf("projection years must be between 0 and 100")
	}
	if assumptions.AnnualRateOverride != nil && assumptions.AnnualRateOverride.LessThan(decimal.Zero) {
		return fmt.Errorf("annual rate override cannot be negative")
	}
	return nil
}

func (ip *InputParser) validateLoan(loan *domain.LoanSpec) error {
	if loan.Principal.LessThan(decimal.Zero) {
		return fmt.Errorf("loan principal cannot be negative")
	}
	if loan.AnnualRate.LessThan(decimal.Zero) {
		return fmt.Errorf("loan rate cannot be negative")
	}
	if loan.TermYears < 0 || loan.TermYears > 50 {
		return fmt.Errorf("loan term must be between 0 and 50 years")
	}
	return nil
}

func (ip *InputParser) applyDefaults(cfg *domain.PlanConfig) {
	if cfg.Profile.RiskTolerance == "" {
		cfg.Profile.RiskTolerance = domain.RiskModerate
	}
	if cfg.Profile.CurrencyCode == "" {
		cfg.Profile.CurrencyCode = currency.ConfigFor("").Code
	}
	if cfg.Assumptions.ProjectionYears == 0 {
		cfg.Assumptions.ProjectionYears = 10
	}
}
