package compare

import (
	"fmt"
	"strings"

	"github.com/mwhitney/finsight/internal/currency"
	"github.com/shopspring/decimal"
)

// TableFormatter renders a comparison set as a console table.
type TableFormatter struct{}

// Format generates the formatted comparison table.
func (tf *TableFormatter) Format(set *Set) string {
	var sb strings.Builder

	nameWidth := 26
	numWidth := 16

	sb.WriteString("WHAT-IF SCENARIO COMPARISON\n")
	sb.WriteString(strings.Repeat("=", 76) + "\n")
	sb.WriteString(fmt.Sprintf("Baseline: %s\n\n", set.BaselineName))

	sb.WriteString(fmt.Sprintf("%-*s %*s %*s %*s\n",
		nameWidth, "Scenario",
		numWidth, "Total Value",
		numWidth, "Delta",
		numWidth, "Delta %"))
	sb.WriteString(strings.Repeat("-", 76) + "\n")

	sb.WriteString(tf.formatRow(&set.Baseline, set.CurrencyCode, nameWidth, numWidth, true))
	if len(set.Alternates) > 0 {
		sb.WriteString(strings.Repeat("-", 76) + "\n")
		for i := range set.Alternates {
			sb.WriteString(tf.formatRow(&set.Alternates[i], set.CurrencyCode, nameWidth, numWidth, false))
		}
	}
	sb.WriteString(strings.Repeat("=", 76) + "\n")

	if len(set.Recommendations) > 0 {
		sb.WriteString("\nRECOMMENDATIONS\n")
		sb.WriteString(strings.Repeat("-", 76) + "\n")
		for _, rec := range set.Recommendations {
			sb.WriteString(fmt.Sprintf("* %s\n", rec))
		}
	}

	return sb.String()
}

func (tf *TableFormatter) formatRow(result *Result, code string, nameWidth, numWidth int, isBase bool) string {
	name := result.Name
	if isBase {
		name += " (base)"
	}

	deltaStr := "-"
	pctStr := "-"
	if !isBase {
		deltaStr = tf.signed(result.Delta, code)
		pctStr = result.DeltaPercent.StringFixed(1) + "%"
	}

	return fmt.Sprintf("%-*s %*s %*s %*s\n",
		nameWidth, tf.truncate(name, nameWidth),
		numWidth, currency.Format(code, result.Projection.TotalValue),
		numWidth, deltaStr,
		numWidth, pctStr)
}

func (tf *TableFormatter) signed(d decimal.Decimal, code string) string {
	if d.IsNegative() {
		return "-" + currency.Format(code, d.Abs())
	}
	return "+" + currency.Format(code, d)
}

func (tf *TableFormatter) truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}
