package config

import (
	"strconv"
	"strings"

	"github.com/mwhitney/finsight/internal/domain"
	"github.com/shopspring/decimal"
)

// FormInput is a raw, possibly half-filled set of calculator fields as they
// arrive from a form or CLI flag. Every field is a string; parsing and
// defaulting happen here so the engine only ever sees clean numbers.
type FormInput struct {
	Principal           string
	MonthlyContribution string
	AnnualRatePercent   string
	Years               string
}

const maxProjectionYears = 100

// ParseProjectionForm converts raw form fields into a strict ProjectionInput.
// Unparseable or negative values become zero; the rate field is a percentage
// (e.g. "8" or "8.5") and is converted to a decimal fraction. Years are
// bounded to [0,100].
func ParseProjectionForm(raw FormInput) domain.ProjectionInput {
	years := parseIntField(raw.Years)
	if years < 0 {
		years = 0
	}
	if years > maxProjectionYears {
		years = maxProjectionYears
	}

	return domain.ProjectionInput{
		Principal:           parseDecimalField(raw.Principal),
		MonthlyContribution: parseDecimalField(raw.MonthlyContribution),
		AnnualRate:          parseDecimalField(raw.AnnualRatePercent).Div(decimal.NewFromInt(100)),
		Years:               years,
	}
}

// ParseAmount parses a standalone money field with the same tolerance as the
// projection form: unparseable or negative input becomes zero.
func ParseAmount(s string) decimal.Decimal {
	return parseDecimalField(s)
}

// parseDecimalField parses a money/rate field, treating anything unparseable
// or negative as zero. Common thousands separators and currency symbols are
// stripped first.
func parseDecimalField(s string) decimal.Decimal {
	cleaned := strings.TrimSpace(s)
	cleaned = strings.NewReplacer(",", "", "$", "", "%", "").Replace(cleaned)
	if cleaned == "" {
		return decimal.Zero
	}

	value, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Zero
	}
	if value.LessThan(decimal.Zero) {
		return decimal.Zero
	}
	return value
}

func parseIntField(s string) int {
	cleaned := strings.TrimSpace(s)
	if cleaned == "" {
		return 0
	}
	value, err := strconv.Atoi(cleaned)
	if err != nil {
		return 0
	}
	return value
}
