package collector

import (
	"fmt"
	"strconv"
	"strings"
)

// Currencies quoted with two decimals on storefront pages. For these a bare
// separator-less value of 1000+ is almost always minor units (e.g. "5999"
// meaning 59.99).
var decimalCurrencies = map[string]bool{
	"EUR": true, "USD": true, "GBP": true, "CAD": true, "AUD": true,
	"NZD": true, "CHF": true, "SGD": true, "ZAR": true, "MYR": true,
	"BRL": true, "PLN": true, "SEK": true, "NOK": true, "DKK": true,
	"TRY": true,
}

var currencySymbols = strings.NewReplacer(
	"$", "", "€", "", "£", "", "¥", "", "₹", "", "R$", "", " ", "", " ", "",
)

// parsePrice converts a scraped price string to a float, handling both
// 1,234.56 and 1.234,56 style formatting.
func parsePrice(raw, currency string) (float64, error) {
	original := strings.TrimSpace(raw)
	s := strings.TrimSpace(currencySymbols.Replace(original))
	if s == "" {
		return 0, fmt.Errorf("empty price string")
	}

	hasComma := strings.Contains(s, ",")
	hasDot := strings.Contains(s, ".")

	switch {
	case hasComma && hasDot:
		// 1,234.56 — commas are thousands separators.
		s = strings.ReplaceAll(s, ",", "")
	case hasComma:
		// 59,99 — comma is the decimal separator.
		s = strings.ReplaceAll(s, ",", ".")
	case hasDot:
		// 1.234 — a lone dot followed by 3+ digits is a thousands separator.
		parts := strings.Split(s, ".")
		if len(parts) == 2 && len(parts[1]) >= 3 {
			s = strings.ReplaceAll(s, ".", "")
		}
	}

	value, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("parse price %q: %w", raw, err)
	}
	if value <= 0 {
		return 0, fmt.Errorf("non-positive price %q", raw)
	}

	if decimalCurrencies[strings.ToUpper(currency)] && value >= 1000 &&
		!strings.ContainsAny(original, ".,") {
		value /= 100.0
	}
	return value, nil
}
