package main

import (
	"fmt"
	"log"
	"os"
	"runtime/debug"

	"github.com/mwhitney/finsight/internal/calculation"
	"github.com/mwhitney/finsight/internal/config"
	"github.com/mwhitney/finsight/internal/currency"
	"github.com/mwhitney/finsight/internal/domain"
	"github.com/spf13/cobra"
)

// simpleCLILogger implements calculation.Logger using the standard log package
type simpleCLILogger struct{}

func (simpleCLILogger) Debugf(format string, args ...any) { log.Printf("DEBUG: "+format, args...) }
func (simpleCLILogger) Infof(format string, args ...any)  { log.Printf("INFO: "+format, args...) }
func (simpleCLILogger) Warnf(format string, args ...any)  { log.Printf("WARN: "+format, args...) }
func (simpleCLILogger) Errorf(format string, args ...any) { log.Printf("ERROR: "+format, args...) }

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "finsight",
	Short: "Personal finance projection toolkit",
	Long:  "Compound growth projections, loan amortization, goal tracking and financial health scoring",
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(os.Stdout, "finsight %s (commit %s, built %s)\n", version, commit, date)
			if bi, ok := debug.ReadBuildInfo(); ok && bi != nil {
				fmt.Fprintln(os.Stdout, bi.Main.Path)
			}
		},
	}
}

var projectCmd = &cobra.Command{
	Use:   "project",
	Short: "Project compound growth of savings plus monthly contributions",
	Run: func(cmd *cobra.Command, args []string) {
		principal, _ := cmd.Flags().GetString("principal")
		monthly, _ := cmd.Flags().GetString("monthly")
		ratePercent, _ := cmd.Flags().GetString("rate")
		years, _ := cmd.Flags().GetString("years")
		risk, _ := cmd.Flags().GetString("risk")
		code, _ := cmd.Flags().GetString("currency")
		showSeries, _ := cmd.Flags().GetBool("series")

		in := config.ParseProjectionForm(config.FormInput{
			Principal:           principal,
			MonthlyContribution: monthly,
			AnnualRatePercent:   ratePercent,
			Years:               years,
		})
		if in.AnnualRate.IsZero() && risk != "" {
			in.AnnualRate = calculation.RateForRiskProfile(domain.RiskProfile(risk))
		}

		result := calculation.ProjectGrowth(in)
		fmt.Printf("Future value of principal:     %s\n", currency.Format(code, result.FutureValueOfPrincipal))
		fmt.Printf("Future value of contributions: %s\n", currency.Format(code, result.FutureValueOfContributions))
		fmt.Printf("Total value:                   %s\n", currency.Format(code, result.TotalValue))
		fmt.Printf("Total contributed:             %s\n", currency.Format(code, result.TotalContributed))
		fmt.Printf("Interest earned:               %s\n", currency.Format(code, result.TotalInterest))

		if showSeries {
			fmt.Println()
			for _, point := range calculation.ProjectGrowthSeries(in) {
				fmt.Printf("  year %3d  %s\n", point.Year, currency.Format(code, point.Result.TotalValue))
			}
		}
	},
}

var amortizeCmd = &cobra.Command{
	Use:   "amortize",
	Short: "Build a fixed-payment loan amortization schedule",
	Run: func(cmd *cobra.Command, args []string) {
		principal, _ := cmd.Flags().GetString("principal")
		ratePercent, _ := cmd.Flags().GetString("rate")
		years, _ := cmd.Flags().GetString("years")
		code, _ := cmd.Flags().GetString("currency")
		full, _ := cmd.Flags().GetBool("schedule")

		in := config.ParseProjectionForm(config.FormInput{
			Principal:         principal,
			AnnualRatePercent: ratePercent,
			Years:             years,
		})

		result := calculation.Amortize(in.Principal, in.AnnualRate, in.Years)
		if result.IsZero() {
			fmt.Println("Nothing to amortize: principal and term must both be positive.")
			return
		}

		fmt.Printf("Monthly payment: %s over %d months\n", currency.Format(code, result.MonthlyPayment), result.TermMonths)
		fmt.Printf("Total interest:  %s\n", currency.Format(code, result.TotalInterest))
		fmt.Printf("Total payments:  %s\n", currency.Format(code, result.TotalPayments))

		if full {
			fmt.Printf("\n%6s %14s %14s %14s %14s\n", "Period", "Payment", "Principal", "Interest", "Balance")
			for _, row := range result.Schedule {
				fmt.Printf("%6d %14s %14s %14s %14s\n",
					row.Period,
					row.Payment.StringFixed(2),
					row.PrincipalPortion.StringFixed(2),
					row.InterestPortion.StringFixed(2),
					row.RemainingBalance.StringFixed(2))
			}
		}
	},
}

var progressCmd = &cobra.Command{
	Use:   "progress",
	Short: "Evaluate projected value against a goal",
	Run: func(cmd *cobra.Command, args []string) {
		projected, _ := cmd.Flags().GetString("projected")
		target, _ := cmd.Flags().GetString("target")
		code, _ := cmd.Flags().GetString("currency")

		result := calculation.EvaluateProgress(config.ParseAmount(projected), config.ParseAmount(target))
		fmt.Printf("Progress: %s%%\n", result.Percentage.StringFixed(1))
		if result.OnTrack() {
			fmt.Printf("Surplus:  %s\n", currency.Format(code, result.SurplusOrShortfall))
		} else {
			fmt.Printf("Shortfall: %s\n", currency.Format(code, result.SurplusOrShortfall.Abs()))
		}
	},
}

var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Score financial health from savings rate, goal progress, emergency fund and streak",
	Run: func(cmd *cobra.Command, args []string) {
		savings, _ := cmd.Flags().GetString("savings-rate")
		goal, _ := cmd.Flags().GetString("goal-progress")
		emergency, _ := cmd.Flags().GetString("emergency-months")
		streak, _ := cmd.Flags().GetInt("streak")

		result := calculation.ScoreHealth(domain.HealthScoreInput{
			SavingsRatePercent:  config.ParseAmount(savings),
			GoalProgressPercent: config.ParseAmount(goal),
			EmergencyFundMonths: config.ParseAmount(emergency),
			StreakDays:          streak,
		})
		fmt.Printf("Score: %d/100 (%s)\n", result.Score, result.Band)
	},
}

func init() {
	projectCmd.Flags().String("principal", "", "starting principal")
	projectCmd.Flags().String("monthly", "", "monthly contribution")
	projectCmd.Flags().String("rate", "", "annual rate as a percentage, e.g. 8.5")
	projectCmd.Flags().String("years", "10", "projection horizon in years")
	projectCmd.Flags().String("risk", "", "risk profile used when no rate is given: conservative, moderate, aggressive")
	projectCmd.Flags().String("currency", "USD", "currency code for output")
	projectCmd.Flags().Bool("series", false, "print the year-by-year series")

	amortizeCmd.Flags().String("principal", "", "loan principal")
	amortizeCmd.Flags().String("rate", "", "annual rate as a percentage")
	amortizeCmd.Flags().String("years", "", "loan term in years")
	amortizeCmd.Flags().String("currency", "USD", "currency code for output")
	amortizeCmd.Flags().Bool("schedule", false, "print the full schedule")

	progressCmd.Flags().String("projected", "", "projected value")
	progressCmd.Flags().String("target", "", "goal target amount")
	progressCmd.Flags().String("currency", "USD", "currency code for output")

	healthCmd.Flags().String("savings-rate", "", "savings rate percent")
	healthCmd.Flags().String("goal-progress", "", "goal progress percent")
	healthCmd.Flags().String("emergency-months", "", "months of expenses in the emergency fund")
	healthCmd.Flags().Int("streak", 0, "engagement streak in days")

	rootCmd.AddCommand(versionCmd())
	rootCmd.AddCommand(projectCmd)
	rootCmd.AddCommand(amortizeCmd)
	rootCmd.AddCommand(progressCmd)
	rootCmd.AddCommand(healthCmd)
	rootCmd.AddCommand(planCmd)
	rootCmd.AddCommand(compareCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(chatCmd)
	rootCmd.AddCommand(tuiCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
