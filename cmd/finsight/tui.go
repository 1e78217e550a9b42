package main

import (
	"log"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mwhitney/finsight/internal/calculation"
	"github.com/mwhitney/finsight/internal/config"
	"github.com/mwhitney/finsight/internal/domain"
	"github.com/mwhitney/finsight/internal/tui"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

var tuiCmd = &cobra.Command{
	Use:   "tui [plan file]",
	Short: "Interactive projection dashboard",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		profile := domain.UserProfile{
			CurrentSavings:      decimal.NewFromInt(10000),
			MonthlyContribution: decimal.NewFromInt(500),
			GoalAmount:          decimal.NewFromInt(100000),
			RiskTolerance:       domain.RiskModerate,
			CurrencyCode:        "USD",
		}
		years := "10"
		var rateOverride *decimal.Decimal

		if len(args) == 1 {
			cfg, err := config.NewInputParser().LoadFromFile(args[0])
			if err != nil {
				log.Fatalf("Loading plan failed: %v", err)
			}
			profile = cfg.Profile
			years = decimal.NewFromInt(int64(cfg.Assumptions.ProjectionYears)).String()
			rateOverride = cfg.Assumptions.AnnualRateOverride
		}

		rate := calculation.RateForRiskProfile(profile.RiskTolerance)
		if rateOverride != nil {
			rate = *rateOverride
		}
		ratePercent := rate.Mul(decimal.NewFromInt(100)).String()

		program := tea.NewProgram(tui.New(profile, ratePercent, years), tea.WithAltScreen())
		if _, err := program.Run(); err != nil {
			log.Fatalf("TUI failed: %v", err)
		}
	},
}
