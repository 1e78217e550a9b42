package currency

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestFormat_USD(t *testing.T) {
	assert.Equal(t, "$1,234,567.89", Format("USD", decimal.NewFromFloat(1234567.89)))
	assert.Equal(t, "$0.00", Format("USD", decimal.Zero))
	assert.Equal(t, "-$512.50", Format("USD", decimal.NewFromFloat(-512.5)))
}

func TestFormat_EUR(t *testing.T) {
	assert.Equal(t, "1.234,56 €", Format("EUR", decimal.NewFromFloat(1234.56)))
}

func TestFormat_JPY_NoDecimals(t *testing.T) {
	assert.Equal(t, "¥12,000", Format("JPY", decimal.NewFromInt(12000)))
}

func TestFormat_UnknownFallsBackToUSD(t *testing.T) {
	assert.Equal(t, "$100.00", Format("XXX", decimal.NewFromInt(100)))
	assert.Equal(t, "$100.00", Format("", decimal.NewFromInt(100)))
}

func TestFormat_LowercaseCode(t *testing.T) {
	assert.Equal(t, "£1,000.00", Format("gbp", decimal.NewFromInt(1000)))
}

func TestConfigFor(t *testing.T) {
	cfg := ConfigFor("INR")
	assert.Equal(t, "INR", cfg.Code)
	assert.Equal(t, "₹", cfg.Symbol)

	fallback := ConfigFor("nope")
	assert.Equal(t, "USD", fallback.Code)
}

func TestCodes(t *testing.T) {
	codes := Codes()
	assert.Contains(t, codes, "USD")
	assert.Contains(t, codes, "EUR")
	assert.Len(t, codes, 8)
}
