package output

import (
	"fmt"
	"strings"

	"github.com/mwhitney/finsight/internal/currency"
	"github.com/mwhitney/finsight/internal/domain"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// TableFormatter renders a console report: projection summary, goal progress,
// health score, what-if comparisons and the loan schedule summary.
type TableFormatter struct{}

func (TableFormatter) Name() string { return "table" }

func (tf TableFormatter) Format(report *domain.PlanReport) ([]byte, error) {
	var sb strings.Builder
	code := report.Profile.CurrencyCode

	sb.WriteString("FINANCIAL PLAN PROJECTION\n")
	sb.WriteString(strings.Repeat("=", 72) + "\n")
	sb.WriteString(fmt.Sprintf("Profile: %s (age %d, %s risk)\n", report.Profile.Name, report.Profile.Age, report.Profile.RiskTolerance))
	sb.WriteString(fmt.Sprintf("Annual rate: %s%%\n\n", report.AnnualRate.Mul(hundred).StringFixed(2)))

	sb.WriteString("PROJECTION\n")
	sb.WriteString(strings.Repeat("-", 72) + "\n")
	sb.WriteString(fmt.Sprintf("  Future value of savings:       %s\n", currency.Format(code, report.Projection.FutureValueOfPrincipal)))
	sb.WriteString(fmt.Sprintf("  Future value of contributions: %s\n", currency.Format(code, report.Projection.FutureValueOfContributions)))
	sb.WriteString(fmt.Sprintf("  Total value:                   %s\n", currency.Format(code, report.Projection.TotalValue)))
	sb.WriteString(fmt.Sprintf("  Total contributed:             %s\n", currency.Format(code, report.Projection.TotalContributed)))
	sb.WriteString(fmt.Sprintf("  Interest earned:               %s\n\n", currency.Format(code, report.Projection.TotalInterest)))

	sb.WriteString("GOAL PROGRESS\n")
	sb.WriteString(strings.Repeat("-", 72) + "\n")
	sb.WriteString(fmt.Sprintf("  Target:    %s\n", currency.Format(code, report.Goal.TargetAmount)))
	sb.WriteString(fmt.Sprintf("  Projected: %s (%s%%)\n", currency.Format(code, report.Goal.ProjectedValue), report.Goal.Percentage.StringFixed(1)))
	label := "Shortfall"
	if report.Goal.OnTrack() {
		label = "Surplus"
	}
	sb.WriteString(fmt.Sprintf("  %s:  %s\n\n", label, currency.Format(code, report.Goal.SurplusOrShortfall.Abs())))

	sb.WriteString("FINANCIAL HEALTH\n")
	sb.WriteString(strings.Repeat("-", 72) + "\n")
	sb.WriteString(fmt.Sprintf("  Score: %d/100 (%s)\n\n", report.Health.Score, report.Health.Band))

	if len(report.Scenarios) > 0 {
		sb.WriteString("WHAT-IF SCENARIOS\n")
		sb.WriteString(strings.Repeat("-", 72) + "\n")
		sb.WriteString(fmt.Sprintf("%-28s %18s %18s\n", "Scenario", "Total Value", "vs Baseline"))
		for _, sc := range report.Scenarios {
			delta := sc.Comparison.Delta
			sign := "+"
			if delta.IsNegative() {
				sign = "-"
			}
			sb.WriteString(fmt.Sprintf("%-28s %18s %s%s (%s%%)\n",
				truncate(sc.Name, 28),
				currency.Format(code, sc.Comparison.Alternate.TotalValue),
				sign,
				currency.Format(code, delta.Abs()),
				sc.Comparison.DeltaPercent.StringFixed(1)))
		}
		sb.WriteString("\n")
	}

	if report.Amortization != nil && !report.Amortization.IsZero() {
		loan := report.Amortization
		sb.WriteString("LOAN\n")
		sb.WriteString(strings.Repeat("-", 72) + "\n")
		sb.WriteString(fmt.Sprintf("  Principal:       %s over %d months\n", currency.Format(code, loan.Principal), loan.TermMonths))
		sb.WriteString(fmt.Sprintf("  Monthly payment: %s\n", currency.Format(code, loan.MonthlyPayment)))
		sb.WriteString(fmt.Sprintf("  Total interest:  %s\n", currency.Format(code, loan.TotalInterest)))
		sb.WriteString(fmt.Sprintf("  Total payments:  %s\n", currency.Format(code, loan.TotalPayments)))
	}

	return []byte(sb.String()), nil
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}
