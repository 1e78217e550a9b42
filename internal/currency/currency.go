package currency

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Config describes how amounts in one currency are rendered.
type Config struct {
	Code              string `json:"code"`
	Symbol            string `json:"symbol"`
	DecimalPlaces     int32  `json:"decimalPlaces"`
	ThousandSeparator string `json:"thousandSeparator"`
	DecimalSeparator  string `json:"decimalSeparator"`
	SymbolBefore      bool   `json:"symbolBefore"`
}

// Fixed table of supported currencies. Unknown codes fall back to USD.
var configs = map[string]Config{
	"USD": {Code: "USD", Symbol: "$", DecimalPlaces: 2, ThousandSeparator: ",", DecimalSeparator: ".", SymbolBefore: true},
	"EUR": {Code: "EUR", Symbol: "€", DecimalPlaces: 2, ThousandSeparator: ".", DecimalSeparator: ",", SymbolBefore: false},
	"GBP": {Code: "GBP", Symbol: "£", DecimalPlaces: 2, ThousandSeparator: ",", DecimalSeparator: ".", SymbolBefore: true},
	"INR": {Code: "INR", Symbol: "₹", DecimalPlaces: 2, ThousandSeparator: ",", DecimalSeparator: ".", SymbolBefore: true},
	"JPY": {Code: "JPY", Symbol: "¥", DecimalPlaces: 0, ThousandSeparator: ",", DecimalSeparator: ".", SymbolBefore: true},
	"CAD": {Code: "CAD", Symbol: "C$", DecimalPlaces: 2, ThousandSeparator: ",", DecimalSeparator: ".", SymbolBefore: true},
	"AUD": {Code: "AUD", Symbol: "A$", DecimalPlaces: 2, ThousandSeparator: ",", DecimalSeparator: ".", SymbolBefore: true},
	"CHF": {Code: "CHF", Symbol: "CHF", DecimalPlaces: 2, ThousandSeparator: "'", DecimalSeparator: ".", SymbolBefore: true},
}

// ConfigFor returns the rendering config for a currency code.
func ConfigFor(code string) Config {
	if cfg, ok := configs[strings.ToUpper(code)]; ok {
		return cfg
	}
	return configs["USD"]
}

// Codes lists the supported currency codes.
func Codes() []string {
	codes := make([]string, 0, len(configs))
	for code := range configs {
		codes = append(codes, code)
	}
	return codes
}

// Format renders an amount using the conventions of the given currency code.
func Format(code string, amount decimal.Decimal) string {
	cfg := ConfigFor(code)

	negative := amount.IsNegative()
	fixed := amount.Abs().StringFixed(cfg.DecimalPlaces)

	intPart := fixed
	fracPart := ""
	if idx := strings.Index(fixed, "."); idx >= 0 {
		intPart = fixed[:idx]
		fracPart = fixed[idx+1:]
	}

	var sb strings.Builder
	if negative {
		sb.WriteString("-")
	}
	if cfg.SymbolBefore {
		sb.WriteString(cfg.Symbol)
	}
	sb.WriteString(groupThousands(intPart, cfg.ThousandSeparator))
	if fracPart != "" {
		sb.WriteString(cfg.DecimalSeparator)
		sb.WriteString(fracPart)
	}
	if !cfg.SymbolBefore {
		sb.WriteString(" ")
		sb.WriteString(cfg.Symbol)
	}
	return sb.String()
}

func groupThousands(digits, separator string) string {
	if len(digits) <= 3 || separator == "" {
		return digits
	}

	var groups []string
	for len(digits) > 3 {
		groups = append([]string{digits[len(digits)-3:]}, groups...)
		digits = digits[:len(digits)-3]
	}
	groups = append([]string{digits}, groups...)
	return strings.Join(groups, separator)
}
