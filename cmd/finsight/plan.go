package main

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/mwhitney/finsight/internal/calculation"
	"github.com/mwhitney/finsight/internal/compare"
	"github.com/mwhitney/finsight/internal/config"
	"github.com/mwhitney/finsight/internal/domain"
	"github.com/mwhitney/finsight/internal/output"
	"github.com/spf13/cobra"
)

var planCmd = &cobra.Command{
	Use:   "plan [plan file]",
	Short: "Run a full plan file: projection, goal progress, health score, scenarios and loan",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		format, _ := cmd.Flags().GetString("format")
		debug, _ := cmd.Flags().GetBool("debug")

		report, err := runPlanFile(args[0], debug)
		if err != nil {
			log.Fatalf("Plan failed: %v", err)
		}

		formatter := output.GetFormatterByName(format)
		if formatter == nil {
			log.Fatalf("Unknown format %q (available: %s)", format, strings.Join(output.FormatterNames(), ", "))
		}

		rendered, err := formatter.Format(report)
		if err != nil {
			log.Fatalf("Formatting failed: %v", err)
		}
		os.Stdout.Write(rendered)
	},
}

var compareCmd = &cobra.Command{
	Use:   "compare [plan file]",
	Short: "Compare a plan's what-if scenarios against its baseline",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		format, _ := cmd.Flags().GetString("format")

		cfg, err := config.NewInputParser().LoadFromFile(args[0])
		if err != nil {
			log.Fatalf("Loading plan failed: %v", err)
		}
		if len(cfg.Scenarios) == 0 {
			log.Fatalf("Plan %q has no scenarios to compare", args[0])
		}

		set := compare.BuildSet(cfg.Profile.Name, baselineInput(cfg), cfg.Scenarios, cfg.Profile.CurrencyCode)

		switch format {
		case "json":
			jf := &compare.JSONFormatter{Pretty: true}
			rendered, err := jf.Format(set)
			if err != nil {
				log.Fatalf("Formatting failed: %v", err)
			}
			fmt.Println(rendered)
		case "table":
			tf := &compare.TableFormatter{}
			fmt.Print(tf.Format(set))
		default:
			log.Fatalf("Unknown format %q (available: table, json)", format)
		}
	},
}

func runPlanFile(path string, debug bool) (*domain.PlanReport, error) {
	cfg, err := config.NewInputParser().LoadFromFile(path)
	if err != nil {
		return nil, err
	}

	engine := calculation.NewEngine()
	if debug {
		engine.Debug = true
		engine.SetLogger(simpleCLILogger{})
	}
	return engine.RunPlan(cfg)
}

// baselineInput derives the baseline projection input from a plan config the
// same way the engine does: the rate comes from the override when present,
// otherwise from the profile's risk tolerance.
func baselineInput(cfg *domain.PlanConfig) domain.ProjectionInput {
	rate := calculation.RateForRiskProfile(cfg.Profile.RiskTolerance)
	if cfg.Assumptions.AnnualRateOverride != nil {
		rate = *cfg.Assumptions.AnnualRateOverride
	}
	return domain.ProjectionInput{
		Principal:           cfg.Profile.CurrentSavings,
		MonthlyContribution: cfg.Profile.MonthlyContribution,
		AnnualRate:          rate,
		Years:               cfg.Assumptions.ProjectionYears,
	}
}

func init() {
	planCmd.Flags().String("format", "table", "output format: table, csv, json")
	planCmd.Flags().Bool("debug", false, "enable verbose calculation logging")

	compareCmd.Flags().String("format", "table", "output format: table, json")
}
